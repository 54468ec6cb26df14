// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-pelada-teams/pkg/config"
	"github.com/AccelByte/extend-pelada-teams/pkg/envelope"
	"github.com/AccelByte/extend-pelada-teams/pkg/formation"
	"github.com/AccelByte/extend-pelada-teams/pkg/metrics"
	"github.com/AccelByte/extend-pelada-teams/pkg/models"
	"github.com/AccelByte/extend-pelada-teams/pkg/roster"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	var engine *formation.Engine

	return &cli.App{
		Name:      "pelada-teams",
		Usage:     "form balanced teams for a pelada and rotate the losing team out",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warning", Usage: "logrus level"},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetFormatter(&logrus.JSONFormatter{})

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			engine = formation.New(*cfg, metrics.NewMetrics(prometheus.NewRegistry()))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "form",
				Usage: "form match slots and a waiting queue from a roster file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "roster", Required: true, Usage: "roster file (yaml or json)"},
					&cli.IntFlag{Name: "players-per-team", Usage: "overrides playersPerTeam of the roster file"},
					&cli.StringFlag{Name: "out", Usage: "state file to write, stdout when empty"},
				},
				Action: func(c *cli.Context) error {
					return runForm(c, engine)
				},
			},
			{
				Name:  "rotate",
				Usage: "report a match result and rotate the losing team out",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "state", Required: true, Usage: "state file written by form"},
					&cli.IntFlag{Name: "match", Required: true, Usage: "match number, starting at 1"},
					&cli.StringFlag{Name: "winner", Required: true, Usage: "team_a, team_b or draw"},
					&cli.StringFlag{Name: "tie-break", Usage: "on a draw, the team that leaves: team_a or team_b"},
					&cli.StringFlag{Name: "out", Usage: "state file to write, stdout when empty"},
				},
				Action: func(c *cli.Context) error {
					return runRotate(c, engine)
				},
			},
			{
				Name:  "validate",
				Usage: "check team sizes and duplicated players of a state file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "state", Required: true},
					&cli.IntFlag{Name: "players-per-team", Usage: "overrides playersPerTeam of the state file"},
				},
				Action: runValidate,
			},
			{
				Name:  "stats",
				Usage: "print skill and win totals per match slot of a state file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "state", Required: true},
				},
				Action: runStats,
			},
		},
	}
}

func runForm(c *cli.Context, engine *formation.Engine) error {
	scope := envelope.NewRootScope(c.Context, "pelada-teams.form", "")
	defer scope.Finish()

	file, err := roster.LoadParticipants(c.String("roster"))
	if err != nil {
		return err
	}

	playersPerTeam := file.PlayersPerTeam
	if c.IsSet("players-per-team") {
		playersPerTeam = c.Int("players-per-team")
	}

	result, err := engine.FormTeams(scope, file.Participants, playersPerTeam)
	if err != nil {
		return err
	}
	return writeState(c, roster.State{FormationResult: result, PlayersPerTeam: playersPerTeam})
}

func runRotate(c *cli.Context, engine *formation.Engine) error {
	scope := envelope.NewRootScope(c.Context, "pelada-teams.rotate", "")
	defer scope.Finish()

	state, err := roster.LoadState(c.String("state"))
	if err != nil {
		return err
	}
	winner, err := models.ParseOutcome(c.String("winner"))
	if err != nil {
		return err
	}
	tieBreak, err := models.ParseSide(c.String("tie-break"))
	if err != nil {
		return err
	}

	matches, queue, err := engine.ReportMatchResult(scope, state.Matches, state.WaitingQueue, c.Int("match")-1, winner, tieBreak)
	if err != nil {
		return err
	}
	state.Matches, state.WaitingQueue = matches, queue
	return writeState(c, state)
}

func runValidate(c *cli.Context) error {
	state, err := roster.LoadState(c.String("state"))
	if err != nil {
		return err
	}

	playersPerTeam := state.PlayersPerTeam
	if c.IsSet("players-per-team") {
		playersPerTeam = c.Int("players-per-team")
	}

	valid, violations := formation.ValidateFormation(state.Matches, playersPerTeam)
	if valid {
		fmt.Fprintln(c.App.Writer, "formation is valid")
		return nil
	}

	errs := make([]error, 0, len(violations))
	for _, v := range violations {
		fmt.Fprintln(c.App.Writer, v.Error())
		errs = append(errs, v)
	}
	return cli.Exit(errors.Join(errs...), 1)
}

func runStats(c *cli.Context) error {
	state, err := roster.LoadState(c.String("state"))
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(c.App.Writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(formation.Summarize(state.FormationResult)); err != nil {
		return err
	}
	return encoder.Close()
}

func writeState(c *cli.Context, state roster.State) error {
	if path := c.String("out"); path != "" {
		return roster.WriteState(path, state)
	}
	return roster.EncodeState(c.App.Writer, state)
}
