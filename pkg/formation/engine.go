// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package formation turns a roster of checked-in players into balanced match slots and a waiting queue,
// and rotates the losing team out after each reported result.
//
// The engine keeps no formation state. Every call borrows its input and returns a fresh snapshot,
// the caller owns and persists the snapshot and must adopt it before computing the next change.
package formation

import (
	"fmt"
	"time"

	"github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-pelada-teams/pkg/config"
	"github.com/AccelByte/extend-pelada-teams/pkg/constants"
	"github.com/AccelByte/extend-pelada-teams/pkg/envelope"
	"github.com/AccelByte/extend-pelada-teams/pkg/metrics"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/rebalance"
)

type Engine struct {
	cfg     config.Config
	metrics metrics.FormationMetrics
}

func New(cfg config.Config, metrics metrics.FormationMetrics) *Engine {
	return &Engine{
		cfg:     cfg,
		metrics: metrics,
	}
}

func (e *Engine) validatePlayersPerTeam(playersPerTeam int) error {
	if playersPerTeam <= 0 {
		return fmt.Errorf("%w: got %d", models.ErrInvalidPlayersPerTeam, playersPerTeam)
	}
	if e.cfg.EnforceProductBounds && (playersPerTeam < constants.MinPlayersPerTeam || playersPerTeam > constants.MaxPlayersPerTeam) {
		return fmt.Errorf("%w: got %d, expected between %d and %d", models.ErrInvalidPlayersPerTeam,
			playersPerTeam, constants.MinPlayersPerTeam, constants.MaxPlayersPerTeam)
	}
	return nil
}

/*
FormTeams builds match slots from the eligible participants (present and checked in on the day).

Eligible participants are ordered by arrival (stable) and consumed in chunks of 2*playersPerTeam,
each chunk becomes one match slot through rebalance.Balance.
Whatever is left (less than a full chunk) becomes the waiting queue in arrival order.
Having fewer than 2*playersPerTeam eligible participants is not an error, the result simply has no match slot.
*/
func (e *Engine) FormTeams(rootScope *envelope.Scope, participants []models.Participant, playersPerTeam int) (models.FormationResult, error) {
	scope := rootScope.NewChildScope("FormTeams")
	defer scope.Finish()
	start := time.Now()

	if err := e.validatePlayersPerTeam(playersPerTeam); err != nil {
		scope.Log.Warnf("[formation] rejected form teams: %s", err)
		return models.FormationResult{}, err
	}

	eligible := models.CopyParticipants(pie.Filter(participants, models.Participant.IsEligible))
	sorted := rebalance.SortByArrivalASC(eligible)
	scope.SetAttributes(envelope.PlayersPerTeamTag, playersPerTeam)
	scope.SetAttributes(envelope.EligiblePlayersTag, len(sorted))

	playersPerMatch := playersPerTeam * constants.TeamsPerMatch
	result := models.FormationResult{Matches: make([]models.MatchSlot, 0, len(sorted)/playersPerMatch)}

	if len(sorted) < playersPerMatch {
		scope.Log.Infof("[formation] not enough players: %d eligible, %d needed", len(sorted), playersPerMatch)
		e.metrics.AddUnformedReason(constants.ReasonNotEnoughPlayers)
	}

	exactSearch := e.cfg.UseExactSearch(playersPerTeam)
	currentIndex := 0
	for currentIndex+playersPerMatch <= len(sorted) {
		chunk := sorted[currentIndex : currentIndex+playersPerMatch]
		label := fmt.Sprintf("match %d", len(result.Matches)+1)
		teamA, teamB := rebalance.Balance(scope, label, chunk, playersPerTeam, exactSearch)
		result.Matches = append(result.Matches, models.MatchSlot{TeamA: teamA, TeamB: teamB})
		currentIndex += playersPerMatch
	}

	result.WaitingQueue = make([]models.Participant, 0, len(sorted)-currentIndex)
	result.WaitingQueue = append(result.WaitingQueue, sorted[currentIndex:]...)

	scope.SetAttributes(envelope.MatchSlotsTag, len(result.Matches))
	scope.SetAttributes(envelope.WaitingQueueTag, len(result.WaitingQueue))
	scope.Log.Infof("[formation] formed %d matches of %dv%d from %d players, waiting queue: %d",
		len(result.Matches), playersPerTeam, playersPerTeam, len(participants), len(result.WaitingQueue))

	e.metrics.AddMatchesFormed(len(result.Matches))
	e.metrics.SetWaitingQueueLength(constants.FormTeamsFunction, len(result.WaitingQueue))
	e.metrics.AddFormationElapsedTimeMs(constants.FormTeamsFunction, time.Since(start))

	return result, nil
}
