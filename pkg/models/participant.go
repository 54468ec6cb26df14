// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"
	"time"

	"github.com/AccelByte/extend-pelada-teams/pkg/constants"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/elliotchance/pie/v2"
)

// Participant is a player checked in to a game of a pelada.
type Participant struct {
	ID   string `json:"id"   yaml:"id"   valid:"required"`
	Name string `json:"name" yaml:"name"`

	// SkillRating is nil when the rating is unknown, a non-positive value is treated the same way.
	SkillRating *int `json:"skillRating,omitempty" yaml:"skillRating,omitempty" valid:"-"`

	// ArrivedAt is when the participant checked in, earlier arrivals play first.
	ArrivedAt time.Time `json:"checkedInAt" yaml:"checkedInAt" valid:"-"`

	Wins           int  `json:"wins"           yaml:"wins"           valid:"range(0|2147483647)"`
	Present        bool `json:"isPresent"      yaml:"isPresent"`
	CheckedInOnDay bool `json:"checkedInOnDay" yaml:"checkedInOnDay"`
}

// HasSkill reports whether the participant carries a known skill rating.
func (p Participant) HasSkill() bool {
	return p.SkillRating != nil && *p.SkillRating > 0
}

// Skill returns the skill rating, or the default rating when unknown.
func (p Participant) Skill() int {
	if !p.HasSkill() {
		return constants.DefaultSkillRating
	}
	return *p.SkillRating
}

// IsEligible is true only for participants both present and checked in on the day.
func (p Participant) IsEligible() bool {
	return p.Present && p.CheckedInOnDay
}

func (p Participant) Validate() error {
	if _, err := validator.ValidateStruct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidParticipant, err.Error())
	}

	if p.HasSkill() && *p.SkillRating > constants.MaxSkillRating {
		return fmt.Errorf("%w: participant %s has %d", ErrInvalidSkillRating, p.ID, *p.SkillRating)
	}

	return nil
}

func (p Participant) String() string {
	if p.Name == "" {
		return p.ID
	}
	return fmt.Sprintf("%s(%s)", p.Name, p.ID)
}

// ParticipantIDs returns the ids of the participants in the same order.
func ParticipantIDs(participants []Participant) []string {
	return pie.Map(participants, func(p Participant) string { return p.ID })
}

// SkillLabel gives a display name for a skill rating.
func SkillLabel(rating int) string {
	switch rating {
	case 1:
		return "Beginner"
	case 2:
		return "Basic"
	case 3:
		return "Intermediate"
	case 4:
		return "Advanced"
	case 5:
		return "Expert"
	default:
		return "Unknown"
	}
}
