// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ErrInvalidPlayersPerTeam = errors.New("players per team must be a positive number")
	ErrSlotNotFound          = errors.New("match slot not found")
	ErrTieBreakRequired      = errors.New("a draw needs a tie-break choice to pick the team that leaves")
	ErrInvalidOutcome        = errors.New("outcome should be one of team_a, team_b or draw")
	ErrInvalidSide           = errors.New("side should be one of team_a or team_b")
	ErrInvalidSkillRating    = errors.New("skill rating should be between 1 and 5")
	ErrInvalidParticipant    = errors.New("participant is invalid")
)

// validation violations, reported inside Violation and never returned by the engine
var (
	ErrTeamSizeMismatch           = errors.New("team size does not match players per team")
	ErrDuplicateParticipant       = errors.New("participant appears more than once in the match slot")
	ErrParticipantInMultipleSlots = errors.New("participant appears in more than one match slot")
)

const genericValidationErrorCode = 20002

var errorCodeMap = map[error]int{
	ErrInvalidPlayersPerTeam:      520101,
	ErrSlotNotFound:               520102,
	ErrTieBreakRequired:           520103,
	ErrInvalidOutcome:             520104,
	ErrInvalidSide:                520105,
	ErrInvalidSkillRating:         520106,
	ErrInvalidParticipant:         520107,
	ErrTeamSizeMismatch:           520120,
	ErrDuplicateParticipant:       520121,
	ErrParticipantInMultipleSlots: 520122,
}

// ErrorCode returns a code for the error, unwrapping it until a registered error is found.
// It returns 20002 if the error is not registered in the map.
func ErrorCode(err error) int {
	for err != nil {
		if code, ok := errorCodeMap[err]; ok {
			return code
		}
		err = errors.Unwrap(err)
	}
	return genericValidationErrorCode
}
