// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package formation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-pelada-teams/pkg/models"
)

func TestValidateFormation(t *testing.T) {
	tests := []struct {
		name           string
		matches        []models.MatchSlot
		playersPerTeam int
		wantErrs       []error
	}{
		{
			name:           "no_matches",
			matches:        nil,
			playersPerTeam: 3,
		},
		{
			name: "valid",
			matches: []models.MatchSlot{
				{TeamA: team("a1", "a2"), TeamB: team("b1", "b2")},
				{TeamA: team("c1", "c2"), TeamB: team("d1", "d2")},
			},
			playersPerTeam: 2,
		},
		{
			name: "team_sizes",
			matches: []models.MatchSlot{
				{TeamA: team("a1", "a2", "a3"), TeamB: team("b1")},
			},
			playersPerTeam: 2,
			wantErrs:       []error{models.ErrTeamSizeMismatch, models.ErrTeamSizeMismatch},
		},
		{
			name: "duplicate_in_slot",
			matches: []models.MatchSlot{
				{TeamA: team("a1", "a2"), TeamB: team("a1", "b2")},
			},
			playersPerTeam: 2,
			wantErrs:       []error{models.ErrDuplicateParticipant},
		},
		{
			name: "participant_in_two_slots",
			matches: []models.MatchSlot{
				{TeamA: team("a1", "a2"), TeamB: team("b1", "b2")},
				{TeamA: team("c1", "b2"), TeamB: team("d1", "d2")},
				{TeamA: team("b2", "e2"), TeamB: team("f1", "f2")},
			},
			playersPerTeam: 2,
			wantErrs:       []error{models.ErrParticipantInMultipleSlots, models.ErrParticipantInMultipleSlots},
		},
		{
			name: "everything_reported",
			matches: []models.MatchSlot{
				{TeamA: team("a1", "a1"), TeamB: team("b1", "b2", "b3")},
			},
			playersPerTeam: 2,
			wantErrs:       []error{models.ErrTeamSizeMismatch, models.ErrDuplicateParticipant},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, violations := ValidateFormation(tt.matches, tt.playersPerTeam)

			assert.Equal(t, len(tt.wantErrs) == 0, valid)
			require.Len(t, violations, len(tt.wantErrs))
			for i, wantErr := range tt.wantErrs {
				assert.True(t, errors.Is(violations[i], wantErr), "violation %d: %v", i, violations[i])
			}
		})
	}
}

func TestValidateFormation_ViolationDetails(t *testing.T) {
	matches := []models.MatchSlot{
		{TeamA: team("a1", "a2"), TeamB: team("b1")},
		{TeamA: team("c1", "a2"), TeamB: team("d1", "d2")},
	}

	valid, violations := ValidateFormation(matches, 2)

	assert.False(t, valid)
	require.Len(t, violations, 2)

	assert.Equal(t, models.Violation{
		Slot:   0,
		Side:   models.SideTeamB,
		Err:    models.ErrTeamSizeMismatch,
		Detail: "has 1 players, expected 2",
	}, violations[0])
	assert.Equal(t, "match 1 team_b: team size does not match players per team (has 1 players, expected 2)", violations[0].Error())

	assert.Equal(t, 1, violations[1].Slot)
	assert.Equal(t, "a2", violations[1].ParticipantID)
	assert.Equal(t, "match 2 participant a2: participant appears in more than one match slot (already in match 1)", violations[1].Error())
}

func TestValidateFormation_FormedTeamsAreValid(t *testing.T) {
	matches := []models.MatchSlot{
		{TeamA: team("a1", "a2", "a3"), TeamB: team("b1", "b2", "b3")},
	}

	valid, violations := ValidateFormation(matches, 3)

	assert.True(t, valid)
	assert.Empty(t, violations)
}
