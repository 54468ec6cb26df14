// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	// DefaultSkillRating is used for any participant without a known rating.
	DefaultSkillRating = 3
	MinSkillRating     = 1
	MaxSkillRating     = 5
)

const (
	// product bounds for players per team, only enforced when configured
	MinPlayersPerTeam = 3
	MaxPlayersPerTeam = 11

	// TeamsPerMatch is always two, one match slot is team A versus team B.
	TeamsPerMatch = 2
)

const (
	BalanceStrategyGreedy = "greedy"
	BalanceStrategyExact  = "exact"

	DefaultExactSearchMaxPlayersPerTeam = 6
)

const (
	FormTeamsFunction         = "formTeams"
	ReportMatchResultFunction = "reportMatchResult"

	// unformed reason constants.
	ReasonNotEnoughPlayers = "not_enough_players"
	ReasonSlotNotFound     = "slot_not_found"
	ReasonQueueTooShort    = "queue_too_short"
)
