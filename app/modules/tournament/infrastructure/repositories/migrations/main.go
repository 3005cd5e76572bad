package tournamentmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the tournament schema history.
var Migrations = migrate.NewMigrations()
