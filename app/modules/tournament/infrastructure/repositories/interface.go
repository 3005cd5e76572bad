package tournamentdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for tournament persistence.
// Every method accepts a bun.IDB so it can run against the pool or inside a
// transaction; a nil db falls back to the repository's own handle.
//
// Error semantics:
//   - ErrStoreUnavailable: the database could not be reached
//   - ErrForeignKeyViolation: a write referenced a missing player or match
//   - Other errors: query failures
type Repository interface {
	// CreatePlayer inserts a player and returns the store-assigned id.
	CreatePlayer(ctx context.Context, db bun.IDB, name string) (int64, error)

	// CountPlayers returns the number of registered players.
	CountPlayers(ctx context.Context, db bun.IDB) (int, error)

	// CountPlayersByID returns how many of ids belong to registered players.
	CountPlayersByID(ctx context.Context, db bun.IDB, ids []int64) (int, error)

	// ListPlayersWithStats returns every player with win and match counts,
	// ordered by wins descending then id ascending.
	ListPlayersWithStats(ctx context.Context, db bun.IDB) ([]PlayerStats, error)

	// ListPlayersWithWins returns every player with its win count, ordered by
	// wins descending then id ascending.
	ListPlayersWithWins(ctx context.Context, db bun.IDB) ([]PlayerWins, error)

	// InsertMatch records a match won by winnerID and returns its id.
	InsertMatch(ctx context.Context, db bun.IDB, winnerID int64) (int64, error)

	// InsertMatchParticipants links both players to matchID.
	InsertMatchParticipants(ctx context.Context, db bun.IDB, matchID, playerA, playerB int64) error

	// DeleteAllMatches removes every match and participant row.
	DeleteAllMatches(ctx context.Context, db bun.IDB) error

	// DeleteAllPlayers removes every player row.
	DeleteAllPlayers(ctx context.Context, db bun.IDB) error
}
