package tournamentmetrics

import (
	"context"
	"time"
)

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() TournamentMetrics {
	return &NoOpMetrics{}
}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoOpMetrics) RecordMatchesRecorded(context.Context, int)                             {}
func (NoOpMetrics) RecordPairingsGenerated(context.Context, int)                           {}
