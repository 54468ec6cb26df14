// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type FormationMetrics interface {
	AddFormationElapsedTimeMs(function string, elapsedTime time.Duration)
	AddMatchesFormed(numMatches int)
	SetWaitingQueueLength(function string, numPlayers int)
	AddRotation(outcome string)
	AddUnformedReason(reason string)
}

func NewMetrics(registry *prometheus.Registry) FormationMetrics {
	return setupPrometheusMetrics(registry)
}
