// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"testing"
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.AddFormationElapsedTimeMs("formTeams", 12*time.Millisecond)
	m.AddMatchesFormed(3)
	m.AddMatchesFormed(1)
	m.SetWaitingQueueLength("formTeams", 5)
	m.SetWaitingQueueLength("formTeams", 2)
	m.AddRotation("draw")
	m.AddUnformedReason("not_enough_players")

	families, err := registry.Gather()
	require.NoError(t, err)

	names := pie.Map(families, func(f *dto.MetricFamily) string { return f.GetName() })
	assert.ElementsMatch(t, []string{
		"pelada_teams_formation_elapsed_time_ms",
		"pelada_teams_matches_formed",
		"pelada_teams_waiting_queue_length",
		"pelada_teams_rotations",
		"pelada_teams_unformed_reasons",
	}, names)

	for _, f := range families {
		switch f.GetName() {
		case "pelada_teams_matches_formed":
			assert.Equal(t, 4.0, f.GetMetric()[0].GetCounter().GetValue())
		case "pelada_teams_waiting_queue_length":
			assert.Equal(t, 2.0, f.GetMetric()[0].GetGauge().GetValue())
		case "pelada_teams_formation_elapsed_time_ms":
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
