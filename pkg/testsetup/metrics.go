package testsetup

import (
	"time"

	"github.com/AccelByte/extend-pelada-teams/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) AddFormationElapsedTimeMs(function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddMatchesFormed(numMatches int) {
}

func (s stubMetricsCollection) SetWaitingQueueLength(function string, numPlayers int) {
}

func (s stubMetricsCollection) AddRotation(outcome string) {
}

func (s stubMetricsCollection) AddUnformedReason(reason string) {
}

func NewMetrics() metrics.FormationMetrics {
	return stubMetricsCollection{}
}
