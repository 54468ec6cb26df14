// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rebalance

import (
	"github.com/AccelByte/extend-pelada-teams/pkg/envelope"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
)

/*
BalanceTwoTeams splits a chunk of 2*playersPerTeam participants into two teams.

When nobody in the chunk has a known skill rating the chunk is alternated in its given order:
even index goes to team A, odd index goes to team B.

Otherwise it is a draft: participants are sorted by skill descending (stable),
then each one joins the team with the lower summed skill.
On an exact tie the draft alternates by pick index (even to team A, odd to team B),
and a team that is already full forces the pick onto the other team.
It balances the running totals only, it does not look for the optimal partition.
*/
func BalanceTwoTeams(chunk []models.Participant, playersPerTeam int) (teamA, teamB []models.Participant) {
	if !AnySkill(chunk) {
		return alternate(chunk, playersPerTeam)
	}
	return draft(SortBySkillDESC(chunk), playersPerTeam)
}

// Balance runs BalanceTwoTeams and, when exactSearch is set, tries to improve the draft by exhaustive search.
// Param label is used for logging purpose only.
func Balance(
	rootScope *envelope.Scope,
	label string,
	chunk []models.Participant,
	playersPerTeam int,
	exactSearch bool,
) (teamA, teamB []models.Participant) {
	scope := rootScope.NewChildScope("Balance")
	defer scope.Finish()

	if !AnySkill(chunk) {
		scope.Log.Debugf("[rebalance] %s no skill data, alternating %d players", label, len(chunk))
		return alternate(chunk, playersPerTeam)
	}

	teamA, teamB = draft(SortBySkillDESC(chunk), playersPerTeam)
	gap := SkillGap(teamA, teamB)
	if !exactSearch || gap == 0 {
		scope.Log.Debugf("[rebalance] %s draft done gap: %d", label, gap)
		return teamA, teamB
	}

	newTeamA, newTeamB, improved := ExactSearch(teamA, teamB)
	if !improved {
		scope.Log.Debugf("[rebalance] %s draft gap: %d already minimal", label, gap)
		return teamA, teamB
	}

	scope.Log.Debugf("[rebalance] %s previous gap: %d new gap: %d", label, gap, SkillGap(newTeamA, newTeamB))
	return newTeamA, newTeamB
}

func alternate(chunk []models.Participant, playersPerTeam int) (teamA, teamB []models.Participant) {
	teamA = make([]models.Participant, 0, playersPerTeam)
	teamB = make([]models.Participant, 0, playersPerTeam)
	for i, p := range chunk {
		if i%2 == 0 {
			teamA = append(teamA, p)
		} else {
			teamB = append(teamB, p)
		}
	}
	return teamA, teamB
}

func draft(sortedBySkill []models.Participant, playersPerTeam int) (teamA, teamB []models.Participant) {
	teamA = make([]models.Participant, 0, playersPerTeam)
	teamB = make([]models.Participant, 0, playersPerTeam)
	skillA, skillB := 0, 0

	for i, p := range sortedBySkill {
		pickTeamA := skillA < skillB || (skillA == skillB && i%2 == 0)

		switch {
		case pickTeamA && len(teamA) < playersPerTeam:
			teamA = append(teamA, p)
			skillA += p.Skill()
		case len(teamB) < playersPerTeam:
			teamB = append(teamB, p)
			skillB += p.Skill()
		default:
			teamA = append(teamA, p)
			skillA += p.Skill()
		}
	}
	return teamA, teamB
}
