// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"

	"github.com/AccelByte/extend-pelada-teams/pkg/constants"
)

type Config struct {
	BalanceStrategy              string `env:"BALANCE_STRATEGY"                  envDefault:"greedy" envDocs:"team balancing strategy, greedy draft or exact (greedy draft improved by exhaustive search for small teams)"`
	ExactSearchMaxPlayersPerTeam int    `env:"EXACT_SEARCH_MAX_PLAYERS_PER_TEAM" envDefault:"6"      envDocs:"largest team size searched exhaustively when strategy is exact"`
	StrictResultReporting        bool   `env:"STRICT_RESULT_REPORTING"           envDefault:"false"  envDocs:"return errors for unknown match slot and for a draw without tie-break choice"`
	EnforceProductBounds         bool   `env:"ENFORCE_PRODUCT_BOUNDS"            envDefault:"false"  envDocs:"restrict players per team to the product range 3..11"`
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		BalanceStrategy:              constants.BalanceStrategyGreedy,
		ExactSearchMaxPlayersPerTeam: constants.DefaultExactSearchMaxPlayersPerTeam,
	}
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UseExactSearch reports whether a team of the given size should be searched exhaustively.
func (c Config) UseExactSearch(playersPerTeam int) bool {
	return c.BalanceStrategy == constants.BalanceStrategyExact && playersPerTeam <= c.ExactSearchMaxPlayersPerTeam
}
