// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rebalance

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-pelada-teams/pkg/mathutil"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
)

// pool reusable object to reduce garbage collection
var pool = models.NewPool()

/*
ExactSearch looks for a partition with a strictly smaller skill gap than the given teams.

Both teams are merged back into skill order (team A is expected to hold the strongest player, as the draft does),
then every combination of playersPerTeam participants that keeps the strongest player on team A is checked.
The first combination with the smallest gap wins, so the result is deterministic.
Returns the given teams and false when no better partition exists.

For example: with 3 players per team and skills [5 4 3 3 2 1] (index 0..5) the candidates are

[0 1 2], [0 1 3], [0 1 4], [0 1 5], [0 2 3], ... [0 4 5]

and team B is always the complement.
*/
func ExactSearch(teamA, teamB []models.Participant) (newTeamA, newTeamB []models.Participant, improved bool) {
	playersPerTeam := len(teamA)
	if playersPerTeam == 0 || playersPerTeam != len(teamB) {
		return teamA, teamB, false
	}

	merged := make([]models.Participant, 0, 2*playersPerTeam)
	merged = append(merged, teamA...)
	merged = append(merged, teamB...)
	sorted := SortBySkillDESC(merged)
	if sorted[0].ID != teamA[0].ID {
		return teamA, teamB, false
	}

	skills := make([]int, len(sorted))
	total := 0
	for i, p := range sorted {
		skills[i] = p.Skill()
		total += skills[i]
	}

	bestGap := SkillGap(teamA, teamB)
	var best []int

	generator := combin.NewCombinationGenerator(len(sorted), playersPerTeam)
	combination := make([]int, playersPerTeam)
	for generator.Next() {
		generator.Combination(combination)
		if combination[0] != 0 {
			// lexicographic order, every remaining combination leaves the strongest player on team B
			break
		}
		sumA := 0
		for _, idx := range combination {
			sumA += skills[idx]
		}
		if gap := mathutil.Abs(2*sumA - total); gap < bestGap {
			bestGap = gap
			best = append(best[:0], combination...)
		}
		if bestGap == 0 {
			break
		}
	}

	if best == nil {
		return teamA, teamB, false
	}

	inTeamA := pool.Membership.Get()[:0]
	for range sorted {
		inTeamA = append(inTeamA, false)
	}
	defer func() { pool.Membership.Put(inTeamA[:0]) }()
	for _, idx := range best {
		inTeamA[idx] = true
	}

	newTeamA = make([]models.Participant, 0, playersPerTeam)
	newTeamB = make([]models.Participant, 0, playersPerTeam)
	for i, p := range sorted {
		if inTeamA[i] {
			newTeamA = append(newTeamA, p)
		} else {
			newTeamB = append(newTeamB, p)
		}
	}
	return newTeamA, newTeamB, true
}
