// Package tournamentmetrics records tournament service metrics.
package tournamentmetrics

import (
	"context"
	"time"
)

// TournamentMetrics is implemented by every metrics backend the service can use.
type TournamentMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)

	// RecordMatchesRecorded counts committed match results.
	RecordMatchesRecorded(ctx context.Context, count int)
	// RecordPairingsGenerated counts pairings handed out for a round.
	RecordPairingsGenerated(ctx context.Context, count int)
}
