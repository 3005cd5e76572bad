package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	tournamentmigrations "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories/migrations"
)

// tournamentTables lists every table the tournament migrations create.
var tournamentTables = []string{"match_participants", "matches", "players"}

// RunMigrations creates the bun migration tables and applies the tournament migrations.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, tournamentmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to run tournament migrations: %w", err)
	}
	if group.IsZero() {
		log.Println("No tournament migrations to run")
	} else {
		log.Printf("Ran tournament migrations group #%d", group.ID)
	}
	return nil
}

// TruncateTables truncates the specified tables and restarts their sequences.
func TruncateTables(ctx context.Context, db bun.IDB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CleanTournamentTables truncates players, matches and participants.
func CleanTournamentTables(ctx context.Context, db bun.IDB) error {
	return TruncateTables(ctx, db, tournamentTables...)
}

// CountRows returns the row count of table.
func CountRows(ctx context.Context, db bun.IDB, table string) (int, error) {
	return db.NewSelect().TableExpr(table).Count(ctx)
}
