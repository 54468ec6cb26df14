// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package formation

import (
	"github.com/AccelByte/extend-pelada-teams/pkg/mathutil"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/rebalance"
)

// ComputeTeamStats aggregates a team, unknown skill counts as the default rating
// and the average is rounded to one decimal place.
func ComputeTeamStats(team []models.Participant) models.TeamStats {
	stats := models.TeamStats{
		Count:      len(team),
		TotalSkill: rebalance.SumSkill(team),
	}
	for _, p := range team {
		stats.TotalWins += p.Wins
	}
	if stats.Count > 0 {
		stats.AverageSkill = mathutil.Round(float64(stats.TotalSkill)/float64(stats.Count), 1)
	}
	return stats
}

func Summarize(result models.FormationResult) []models.SlotSummary {
	summaries := make([]models.SlotSummary, 0, len(result.Matches))
	for i, match := range result.Matches {
		summaries = append(summaries, models.SlotSummary{
			Index:    i,
			TeamA:    ComputeTeamStats(match.TeamA),
			TeamB:    ComputeTeamStats(match.TeamB),
			SkillGap: rebalance.SkillGap(match.TeamA, match.TeamB),
		})
	}
	return summaries
}
