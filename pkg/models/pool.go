// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"gopkg.in/typ.v4/sync2"
)

// Pool reusable objects to reduce garbage collector
type Pool struct {
	Membership *sync2.Pool[[]bool]
}

func NewPool() *Pool {
	return &Pool{
		Membership: &sync2.Pool[[]bool]{
			New: func() []bool {
				return make([]bool, 0, 22)
			},
		},
	}
}
