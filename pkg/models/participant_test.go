// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
)

func TestParticipant_Skill(t *testing.T) {
	tests := []struct {
		name      string
		rating    *int
		wantSkill int
		wantKnown bool
	}{
		{name: "unknown", rating: nil, wantSkill: 3, wantKnown: false},
		{name: "zero", rating: swag.Int(0), wantSkill: 3, wantKnown: false},
		{name: "negative", rating: swag.Int(-2), wantSkill: 3, wantKnown: false},
		{name: "lowest", rating: swag.Int(1), wantSkill: 1, wantKnown: true},
		{name: "highest", rating: swag.Int(5), wantSkill: 5, wantKnown: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Participant{ID: "p", SkillRating: tt.rating}
			assert.Equal(t, tt.wantSkill, p.Skill())
			assert.Equal(t, tt.wantKnown, p.HasSkill())
		})
	}
}

func TestParticipant_IsEligible(t *testing.T) {
	assert.True(t, Participant{Present: true, CheckedInOnDay: true}.IsEligible())
	assert.False(t, Participant{Present: true}.IsEligible())
	assert.False(t, Participant{CheckedInOnDay: true}.IsEligible())
	assert.False(t, Participant{}.IsEligible())
}

func TestParticipant_Validate(t *testing.T) {
	tests := []struct {
		name        string
		participant Participant
		wantErr     error
	}{
		{name: "valid", participant: Participant{ID: "p1", SkillRating: swag.Int(5)}},
		{name: "valid_without_skill", participant: Participant{ID: "p1"}},
		{name: "zero_skill_is_unknown", participant: Participant{ID: "p1", SkillRating: swag.Int(0)}},
		{name: "missing_id", participant: Participant{Name: "nobody"}, wantErr: ErrInvalidParticipant},
		{name: "skill_too_high", participant: Participant{ID: "p1", SkillRating: swag.Int(6)}, wantErr: ErrInvalidSkillRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.participant.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParticipant_String(t *testing.T) {
	assert.Equal(t, "p1", Participant{ID: "p1"}.String())
	assert.Equal(t, "Romário(p1)", Participant{ID: "p1", Name: "Romário"}.String())
}

func TestParticipantIDs(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, ParticipantIDs([]Participant{{ID: "b"}, {ID: "a"}}))
	assert.Empty(t, ParticipantIDs(nil))
}

func TestSkillLabel(t *testing.T) {
	labels := map[int]string{
		0: "Unknown",
		1: "Beginner",
		2: "Basic",
		3: "Intermediate",
		4: "Advanced",
		5: "Expert",
		6: "Unknown",
	}
	for rating, want := range labels {
		assert.Equal(t, want, SkillLabel(rating), "rating %d", rating)
	}
}
