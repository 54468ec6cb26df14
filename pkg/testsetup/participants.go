// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"github.com/AccelByte/extend-pelada-teams/pkg/models"
)

var (
	// BaseArrival is the arrival time of the first fixture participant.
	BaseArrival = time.Date(2025, time.March, 8, 9, 0, 0, 0, time.UTC)

	entropy   = ulid.Monotonic(rand.New(rand.NewSource(BaseArrival.UnixNano())), 0)
	ulidMutex = sync.Mutex{}
)

// NewID returns a monotonic ulid, ids generated later sort after earlier ones.
func NewID(t time.Time) string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Player returns an eligible participant with id "p<index>" arriving index minutes after BaseArrival.
// A nil skill leaves the rating unknown.
func Player(index int, skill *int) models.Participant {
	return models.Participant{
		ID:             fmt.Sprintf("p%d", index),
		Name:           fmt.Sprintf("player %d", index),
		SkillRating:    skill,
		ArrivedAt:      BaseArrival.Add(time.Duration(index) * time.Minute),
		Present:        true,
		CheckedInOnDay: true,
	}
}

// Players returns count eligible participants p0..p<count-1>, all with the same skill.
func Players(count int, skill *int) []models.Participant {
	participants := make([]models.Participant, 0, count)
	for i := 0; i < count; i++ {
		participants = append(participants, Player(i, skill))
	}
	return participants
}

// PlayersWithSkills returns one eligible participant per skill, p0 with skills[0] and so on.
func PlayersWithSkills(skills ...int) []models.Participant {
	participants := make([]models.Participant, 0, len(skills))
	for i, skill := range skills {
		s := skill
		participants = append(participants, Player(i, &s))
	}
	return participants
}

// RandomPlayers returns count eligible participants with ulid ids, random skill (sometimes unknown)
// and random arrival within the first hour after BaseArrival.
func RandomPlayers(r *rand.Rand, count int) []models.Participant {
	participants := make([]models.Participant, 0, count)
	for i := 0; i < count; i++ {
		arrival := BaseArrival.Add(time.Duration(r.Intn(3600)) * time.Second)
		p := models.Participant{
			ID:             NewID(arrival),
			ArrivedAt:      arrival,
			Wins:           r.Intn(4),
			Present:        true,
			CheckedInOnDay: true,
		}
		if r.Intn(4) > 0 {
			skill := r.Intn(5) + 1
			p.SkillRating = &skill
		}
		participants = append(participants, p)
	}
	return participants
}
