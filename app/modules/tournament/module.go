package tournament

import (
	"context"
	"fmt"
	"net/http"

	tournamentservice "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/application"
	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/swiss-tournament/observability"
	tournamentmetrics "github.com/Black-And-White-Club/swiss-tournament/observability/metrics/tournament"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
)

// Module represents the tournament module.
type Module struct {
	TournamentService tournamentservice.Service
	observability     observability.Observability
}

// NewTournamentModule checks the database is reachable and wires the
// repository, metrics and service together.
func NewTournamentModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer

	logger.InfoContext(ctx, "tournament.NewTournamentModule initializing")

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("tournament module: %w: %w", tournamentdb.ErrStoreUnavailable, err)
	}

	// 1. Initialize Repository
	repo := tournamentdb.NewRepository(db)

	// 2. Initialize Metrics
	var metrics tournamentmetrics.TournamentMetrics = tournamentmetrics.NewNoop()
	if obs.Registry != nil {
		promMetrics, err := tournamentmetrics.NewPrometheus(obs.Registry)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tournament metrics: %w", err)
		}
		metrics = promMetrics
	}

	// 3. Initialize Service
	service := tournamentservice.NewTournamentService(repo, logger, metrics, tracer, db)

	return &Module{
		TournamentService: service,
		observability:     obs,
	}, nil
}

// MetricsHandler serves the module's Prometheus registry. It returns
// http.NotFoundHandler when no registry was configured.
func (m *Module) MetricsHandler() http.Handler {
	if m.observability.Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.observability.Registry, promhttp.HandlerOpts{})
}

// Close shuts down the tournament module. The database handle belongs to the
// caller and stays open.
func (m *Module) Close() error {
	m.observability.Logger.Info("Tournament module stopped")
	return nil
}
