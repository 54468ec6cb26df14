// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	formationElapsedTime prometheus.HistogramVec
	matchesFormed        prometheus.Counter
	waitingQueueLength   prometheus.GaugeVec
	rotations            prometheus.CounterVec
	unformedReasons      prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	//nolint:promlinter
	formationElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pelada_teams_formation_elapsed_time_ms",
			Help:    "A histogram of team formation functions elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"function"})

	matchesFormed := factory.NewCounter(
		prometheus.CounterOpts{
			Name: "pelada_teams_matches_formed",
			Help: "A counter of match slots created by team formation and rotation",
		})

	waitingQueueLength := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pelada_teams_waiting_queue_length",
			Help: "Number of players left in the waiting queue by the last call of each function",
		}, []string{"function"})

	rotations := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pelada_teams_rotations",
			Help: "A counter of reported match results by outcome",
		}, []string{"outcome"})

	unformedReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pelada_teams_unformed_reasons",
			Help: "A counter of reasons a match slot could not be formed or replaced",
		}, []string{"reason"})

	return prometheusMetrics{
		formationElapsedTime: *formationElapsedTime,
		matchesFormed:        matchesFormed,
		waitingQueueLength:   *waitingQueueLength,
		rotations:            *rotations,
		unformedReasons:      *unformedReasons,
	}
}

func (metrics prometheusMetrics) AddFormationElapsedTimeMs(function string, elapsedTime time.Duration) {
	metrics.formationElapsedTime.With(prometheus.Labels{"function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddMatchesFormed(numMatches int) {
	metrics.matchesFormed.Add(float64(numMatches))
}

func (metrics prometheusMetrics) SetWaitingQueueLength(function string, numPlayers int) {
	metrics.waitingQueueLength.With(prometheus.Labels{"function": function}).Set(float64(numPlayers))
}

func (metrics prometheusMetrics) AddRotation(outcome string) {
	metrics.rotations.With(prometheus.Labels{"outcome": outcome}).Inc()
}

func (metrics prometheusMetrics) AddUnformedReason(reason string) {
	metrics.unformedReasons.With(prometheus.Labels{"reason": reason}).Inc()
}
