// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rebalance

import (
	"sort"

	"github.com/AccelByte/extend-pelada-teams/pkg/mathutil"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
)

// SumSkill sums the skill ratings of a team, unknown ratings count as the default rating.
func SumSkill(team []models.Participant) int {
	total := 0
	for _, p := range team {
		total += p.Skill()
	}
	return total
}

// SkillGap is the absolute difference between the summed skill of both teams.
func SkillGap(teamA, teamB []models.Participant) int {
	return mathutil.Abs(SumSkill(teamA) - SumSkill(teamB))
}

// AnySkill reports whether at least one participant carries a known skill rating.
func AnySkill(participants []models.Participant) bool {
	for _, p := range participants {
		if p.HasSkill() {
			return true
		}
	}
	return false
}

// SortBySkillDESC returns a copy sorted by skill, highest first. Ties keep their original order.
func SortBySkillDESC(participants []models.Participant) []models.Participant {
	sorted := make([]models.Participant, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skill() > sorted[j].Skill()
	})
	return sorted
}

// SortByArrivalASC returns a copy sorted by arrival time, earliest first. Ties keep their original order.
func SortByArrivalASC(participants []models.Participant) []models.Participant {
	sorted := make([]models.Participant, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivedAt.Before(sorted[j].ArrivedAt)
	})
	return sorted
}
