package tournamentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/swiss-tournament/observability/attr"
	tournamentmetrics "github.com/Black-And-White-Club/swiss-tournament/observability/metrics/tournament"
	"github.com/Black-And-White-Club/swiss-tournament/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "TournamentService"

// TournamentService implements the Service interface.
type TournamentService struct {
	repo    tournamentdb.Repository
	logger  *slog.Logger
	metrics tournamentmetrics.TournamentMetrics
	tracer  trace.Tracer
	db      *bun.DB
	palette ChartPalette
}

// NewTournamentService creates a new TournamentService. A nil db runs every
// operation directly against the repository's own handle.
func NewTournamentService(
	repo tournamentdb.Repository,
	logger *slog.Logger,
	metrics tournamentmetrics.TournamentMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = tournamentmetrics.NewNoop()
	}
	return &TournamentService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
		palette: DefaultChartPalette(),
	}
}

// unwrap turns an operation result into the (value, error) pair callers see.
func unwrap[S any](operationName string, result results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if result.IsFailure() {
		return zero, fmt.Errorf("%s: %w", operationName, *result.Failure)
	}
	if result.Success == nil {
		return zero, fmt.Errorf("%s: empty result", operationName)
	}
	return *result.Success, nil
}

// -----------------------------------------------------------------------------
// Generic Helpers (Defined as functions because methods cannot have type params)
// -----------------------------------------------------------------------------

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, correlation
// and panic recovery.
func withTelemetry[S any, F any](
	s *TournamentService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	if attr.CorrelationID(ctx) == "" {
		ctx = attr.WithCorrelationID(ctx, uuid.NewString())
	}

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
			attribute.String("correlation_id", attr.CorrelationID(ctx)),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, "Operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.String("identifier", identifier),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)

	return result, nil
}

// errRollbackFailure aborts a transaction whose operation returned a failure result.
var errRollbackFailure = errors.New("rollback: operation returned failure result")

// runInTx runs fn in a transaction. The transaction commits only when fn
// succeeds; an infrastructure error or a failure result rolls it back.
func runInTx[S any, F any](
	s *TournamentService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr != nil {
			return txErr
		}
		if result.IsFailure() {
			return errRollbackFailure
		}
		return nil
	})
	if errors.Is(err, errRollbackFailure) {
		return result, nil
	}
	if err != nil {
		return results.OperationResult[S, F]{}, err
	}

	return result, nil
}
