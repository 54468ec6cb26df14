// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"
)

// TeamStats is the aggregate of a single team.
type TeamStats struct {
	Count        int     `json:"totalPlayers" yaml:"totalPlayers"`
	TotalSkill   int     `json:"totalSkill"   yaml:"totalSkill"`
	AverageSkill float64 `json:"averageSkill" yaml:"averageSkill"`
	TotalWins    int     `json:"totalWins"    yaml:"totalWins"`
}

// SlotSummary describes one match slot for display.
type SlotSummary struct {
	Index    int       `json:"index"    yaml:"index"`
	TeamA    TeamStats `json:"teamA"    yaml:"teamA"`
	TeamB    TeamStats `json:"teamB"    yaml:"teamB"`
	SkillGap int       `json:"skillGap" yaml:"skillGap"`
}

// Violation is a single problem found when validating a formation.
type Violation struct {
	// Slot is the zero-based position of the offending match slot.
	Slot          int
	Side          Side
	ParticipantID string
	Err           error
	Detail        string
}

func (v Violation) Error() string {
	msg := fmt.Sprintf("match %d", v.Slot+1)
	if v.Side != SideUnset {
		msg += " " + string(v.Side)
	}
	if v.ParticipantID != "" {
		msg += " participant " + v.ParticipantID
	}
	msg += ": " + v.Err.Error()
	if v.Detail != "" {
		msg += " (" + v.Detail + ")"
	}
	return msg
}

func (v Violation) Unwrap() error {
	return v.Err
}
