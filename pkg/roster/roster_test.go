// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roster

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/testsetup"
)

const yamlRoster = `
playersPerTeam: 2
participants:
  - id: p1
    name: Zico
    skillRating: 5
    checkedInAt: 2025-03-08T09:00:00Z
    wins: 2
    isPresent: true
    checkedInOnDay: true
  - name: Sócrates
    checkedInAt: 2025-03-08T09:05:00Z
    isPresent: true
    checkedInOnDay: false
`

const jsonRoster = `{
  "playersPerTeam": 3,
  "participants": [
    {"id": "p1", "name": "Zico", "skillRating": 4, "checkedInAt": "2025-03-08T09:00:00Z", "wins": 1, "isPresent": true, "checkedInOnDay": true}
  ]
}`

func TestDecodeParticipants_YAML(t *testing.T) {
	file, err := DecodeParticipants(strings.NewReader(yamlRoster))
	require.NoError(t, err)

	assert.Equal(t, 2, file.PlayersPerTeam)
	require.Len(t, file.Participants, 2)

	zico := file.Participants[0]
	assert.Equal(t, "p1", zico.ID)
	assert.Equal(t, "Zico", zico.Name)
	assert.Equal(t, swag.Int(5), zico.SkillRating)
	assert.True(t, zico.ArrivedAt.Equal(testsetup.BaseArrival))
	assert.Equal(t, 2, zico.Wins)
	assert.True(t, zico.IsEligible())

	socrates := file.Participants[1]
	assert.Len(t, socrates.ID, 32)
	assert.Nil(t, socrates.SkillRating)
	assert.False(t, socrates.IsEligible())
}

func TestDecodeParticipants_JSON(t *testing.T) {
	file, err := DecodeParticipants(strings.NewReader(jsonRoster))
	require.NoError(t, err)

	assert.Equal(t, 3, file.PlayersPerTeam)
	require.Len(t, file.Participants, 1)
	assert.Equal(t, 4, file.Participants[0].Skill())
	assert.True(t, file.Participants[0].ArrivedAt.Equal(testsetup.BaseArrival))
}

func TestDecodeParticipants_Empty(t *testing.T) {
	file, err := DecodeParticipants(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, file.Participants)
}

func TestDecodeParticipants_ReportsEveryInvalidParticipant(t *testing.T) {
	input := `
participants:
  - id: p1
    skillRating: 9
  - id: p2
    skillRating: 3
  - id: p3
    skillRating: 7
`
	_, err := DecodeParticipants(strings.NewReader(input))

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidSkillRating), "got %v", err)
	assert.Contains(t, err.Error(), "participant 1")
	assert.Contains(t, err.Error(), "participant 3")
	assert.NotContains(t, err.Error(), "participant 2")
}

func TestDecodeParticipants_Malformed(t *testing.T) {
	_, err := DecodeParticipants(strings.NewReader("participants: [ {id: p1"))
	assert.Error(t, err)
}

func TestLoadParticipants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonRoster), 0o600))

	file, err := LoadParticipants(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, models.ParticipantIDs(file.Participants))

	_, err = LoadParticipants(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestState_RoundTrip(t *testing.T) {
	players := testsetup.PlayersWithSkills(5, 1, 3, 4, 2)
	players[4].SkillRating = nil
	players[1].Wins = 3
	state := State{
		FormationResult: models.FormationResult{
			Matches: []models.MatchSlot{
				{TeamA: players[0:2], TeamB: players[2:4]},
			},
			WaitingQueue: players[4:],
		},
		PlayersPerTeam: 2,
	}

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, WriteState(path, state))

	loaded, err := LoadState(path)
	require.NoError(t, err)

	assert.Equal(t, 2, loaded.PlayersPerTeam)
	require.Len(t, loaded.Matches, 1)
	assert.Equal(t, []string{"p0", "p1"}, models.ParticipantIDs(loaded.Matches[0].TeamA))
	assert.Equal(t, []string{"p2", "p3"}, models.ParticipantIDs(loaded.Matches[0].TeamB))
	assert.Equal(t, []string{"p4"}, models.ParticipantIDs(loaded.WaitingQueue))

	for i, p := range loaded.Participants() {
		want := players[i]
		assert.Equal(t, want.Name, p.Name)
		assert.Equal(t, want.SkillRating, p.SkillRating)
		assert.Equal(t, want.Wins, p.Wins)
		assert.True(t, want.ArrivedAt.Equal(p.ArrivedAt), "%s arrived %s, want %s", p.ID, p.ArrivedAt, want.ArrivedAt)
		assert.True(t, p.IsEligible())
	}
}

func TestEncodeState_Layout(t *testing.T) {
	state := State{
		FormationResult: models.FormationResult{
			Matches: []models.MatchSlot{{
				TeamA: []models.Participant{{ID: "a", ArrivedAt: testsetup.BaseArrival}},
				TeamB: []models.Participant{{ID: "b", ArrivedAt: testsetup.BaseArrival.Add(time.Minute)}},
			}},
			WaitingQueue: []models.Participant{},
		},
		PlayersPerTeam: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeState(&buf, state))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "teams:\n"), out)
	assert.Contains(t, out, "teamA:")
	assert.Contains(t, out, "checkedInAt: 2025-03-08T09:01:00Z")
	assert.Contains(t, out, "waitingQueue: []")
	assert.Contains(t, out, "playersPerTeam: 1")
	assert.NotContains(t, out, "skillRating")
}

func TestDecodeState_Empty(t *testing.T) {
	state, err := DecodeState(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, state.Matches)
}
