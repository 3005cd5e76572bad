package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Black-And-White-Club/swiss-tournament/config"
	"github.com/Black-And-White-Club/swiss-tournament/integration_tests/containers"
)

// TestEnvironment holds all resources needed for integration testing
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	Config        *config.Config
}

// NewTestEnvironment starts Postgres, connects through pgx and applies the
// tournament migrations.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(ctx)

	env := &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
	}

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	env.DB = bun.NewDB(sqlDB, pgdialect.New())

	if err := RunMigrations(ctx, env.DB); err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	env.Config = &config.Config{
		Postgres: config.PostgresConfig{DSN: pgConnStr, Driver: config.DriverPGX},
	}

	return env, nil
}

// Reset empties every tournament table and restarts the id sequences.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	if err := env.CheckContainerHealth(); err != nil {
		return err
	}
	return CleanTournamentTables(ctx, env.DB)
}

// CheckContainerHealth verifies that the container is running and responsive
func (env *TestEnvironment) CheckContainerHealth() error {
	ctx, cancel := context.WithTimeout(env.Ctx, 10*time.Second)
	defer cancel()

	if env.PgContainer != nil {
		state, err := env.PgContainer.State(ctx)
		if err != nil || !state.Running {
			return fmt.Errorf("PostgreSQL container not healthy: err=%v", err)
		}
	}

	if env.DB != nil {
		var result int
		if err := env.DB.NewSelect().ColumnExpr("1").Scan(ctx, &result); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
	}

	return nil
}

// Cleanup tears down all resources created for testing
func (env *TestEnvironment) Cleanup() {
	log.Println("Cleaning up test environment...")
	if env.CancelContext != nil {
		env.CancelContext()
	}
	if env.DB != nil {
		env.DB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
	log.Println("Cleanup complete.")
}
