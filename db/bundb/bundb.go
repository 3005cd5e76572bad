// Package bundb opens the bun handle the tournament module runs on.
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/swiss-tournament/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
)

// NewBunDB opens a pool with the configured driver, pings it and registers
// the tournament models. A failed ping is reported as
// tournamentdb.ErrStoreUnavailable.
func NewBunDB(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*bun.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sqldb, err := openSQL(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w: %w", tournamentdb.ErrStoreUnavailable, err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*tournamentdb.Player)(nil),
		(*tournamentdb.Match)(nil),
		(*tournamentdb.MatchParticipant)(nil),
	)

	logger.InfoContext(ctx, "Database connection established",
		slog.String("driver", driverName(cfg)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return db, nil
}

func openSQL(cfg config.PostgresConfig) (*sql.DB, error) {
	switch driverName(cfg) {
	case config.DriverPGX:
		connCfg, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DSN: %w", err)
		}
		return stdlib.OpenDB(*connCfg), nil
	case config.DriverPG:
		return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN))), nil
	default:
		return nil, fmt.Errorf("unknown postgres driver %q", cfg.Driver)
	}
}

func driverName(cfg config.PostgresConfig) string {
	if cfg.Driver == "" {
		return config.DriverPG
	}
	return cfg.Driver
}
