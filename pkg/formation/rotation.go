// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package formation

import (
	"fmt"
	"time"

	"github.com/AccelByte/extend-pelada-teams/pkg/constants"
	"github.com/AccelByte/extend-pelada-teams/pkg/envelope"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/rebalance"
)

// losingSide picks the team that leaves the field. On a draw the tie-break choice leaves,
// without a choice team B leaves unless strict reporting is configured.
func (e *Engine) losingSide(winner models.Outcome, tieBreak models.Side) (models.Side, error) {
	switch winner {
	case models.OutcomeTeamA:
		return models.SideTeamB, nil
	case models.OutcomeTeamB:
		return models.SideTeamA, nil
	case models.OutcomeDraw:
		switch tieBreak {
		case models.SideTeamA, models.SideTeamB:
			return tieBreak, nil
		case models.SideUnset:
			if e.cfg.StrictResultReporting {
				return models.SideUnset, models.ErrTieBreakRequired
			}
			return models.SideTeamB, nil
		}
		return models.SideUnset, fmt.Errorf("%w: got %q", models.ErrInvalidSide, tieBreak)
	}
	return models.SideUnset, fmt.Errorf("%w: got %q", models.ErrInvalidOutcome, winner)
}

/*
ReportMatchResult rotates the losing team of matches[matchIndex] to the back of the waiting queue.

When the extended queue holds at least as many participants as the winning team,
the first ones (FIFO) are pulled out and balanced together with the winners into the new occupant of the slot.
Otherwise the winners stay seated and the slot is returned unchanged with the extended queue.
Only matchIndex changes, the other slots are returned as they are.

An out of range matchIndex returns the inputs unchanged,
or models.ErrSlotNotFound when strict reporting is configured.
*/
func (e *Engine) ReportMatchResult(
	rootScope *envelope.Scope,
	matches []models.MatchSlot,
	queue []models.Participant,
	matchIndex int,
	winner models.Outcome,
	tieBreak models.Side,
) ([]models.MatchSlot, []models.Participant, error) {
	scope := rootScope.NewChildScope("ReportMatchResult")
	defer scope.Finish()
	start := time.Now()

	scope.SetAttributes(envelope.MatchIndexTag, matchIndex)
	scope.SetAttributes(envelope.OutcomeTag, string(winner))

	if matchIndex < 0 || matchIndex >= len(matches) {
		e.metrics.AddUnformedReason(constants.ReasonSlotNotFound)
		if e.cfg.StrictResultReporting {
			return nil, nil, fmt.Errorf("%w: index %d of %d matches", models.ErrSlotNotFound, matchIndex, len(matches))
		}
		scope.Log.Warnf("[formation] ignored result for match index %d, only %d matches", matchIndex, len(matches))
		return matches, queue, nil
	}

	losing, err := e.losingSide(winner, tieBreak)
	if err != nil {
		scope.Log.Warnf("[formation] rejected result for match %d: %s", matchIndex+1, err)
		return nil, nil, err
	}

	snapshot := models.FormationResult{Matches: matches, WaitingQueue: queue}.Copy()
	match := snapshot.Matches[matchIndex]
	winningTeam := match.Team(losing.Other())
	playersPerTeam := len(winningTeam)

	newQueue := make([]models.Participant, 0, len(snapshot.WaitingQueue)+len(match.Team(losing)))
	newQueue = append(newQueue, snapshot.WaitingQueue...)
	newQueue = append(newQueue, match.Team(losing)...)

	e.metrics.AddRotation(string(winner))
	defer func() {
		e.metrics.AddFormationElapsedTimeMs(constants.ReportMatchResultFunction, time.Since(start))
	}()

	if len(newQueue) < playersPerTeam {
		scope.Log.Infof("[formation] match %d keeps its winners, waiting queue has %d players, %d needed",
			matchIndex+1, len(newQueue), playersPerTeam)
		e.metrics.AddUnformedReason(constants.ReasonQueueTooShort)
		e.metrics.SetWaitingQueueLength(constants.ReportMatchResultFunction, len(newQueue))
		return snapshot.Matches, newQueue, nil
	}

	nextPlayers := newQueue[:playersPerTeam]
	remainingQueue := make([]models.Participant, 0, len(newQueue)-playersPerTeam)
	remainingQueue = append(remainingQueue, newQueue[playersPerTeam:]...)

	combined := make([]models.Participant, 0, 2*playersPerTeam)
	combined = append(combined, winningTeam...)
	combined = append(combined, nextPlayers...)

	label := fmt.Sprintf("match %d", matchIndex+1)
	teamA, teamB := rebalance.Balance(scope, label, combined, playersPerTeam, e.cfg.UseExactSearch(playersPerTeam))
	snapshot.Matches[matchIndex] = models.MatchSlot{TeamA: teamA, TeamB: teamB}

	scope.Log.Infof("[formation] match %d rotated %s out, %d players pulled from queue, waiting queue: %d",
		matchIndex+1, losing, playersPerTeam, len(remainingQueue))
	e.metrics.AddMatchesFormed(1)
	e.metrics.SetWaitingQueueLength(constants.ReportMatchResultFunction, len(remainingQueue))

	return snapshot.Matches, remainingQueue, nil
}
