package tournamentdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new tournament repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreatePlayer inserts a player and returns the store-assigned id.
func (r *Impl) CreatePlayer(ctx context.Context, db bun.IDB, name string) (int64, error) {
	db = r.resolveDB(db)
	player := &Player{Name: name}
	if _, err := db.NewInsert().Model(player).Returning("id").Exec(ctx); err != nil {
		return 0, wrapErr("CreatePlayer", err)
	}
	return player.ID, nil
}

// CountPlayers returns the number of registered players.
func (r *Impl) CountPlayers(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().Model((*Player)(nil)).Count(ctx)
	if err != nil {
		return 0, wrapErr("CountPlayers", err)
	}
	return count, nil
}

// CountPlayersByID returns how many of ids belong to registered players.
func (r *Impl) CountPlayersByID(ctx context.Context, db bun.IDB, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Player)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Count(ctx)
	if err != nil {
		return 0, wrapErr("CountPlayersByID", err)
	}
	return count, nil
}

// ListPlayersWithStats aggregates wins and matches played per player with a
// left outer join, so players without matches report zero for both.
func (r *Impl) ListPlayersWithStats(ctx context.Context, db bun.IDB) ([]PlayerStats, error) {
	db = r.resolveDB(db)
	var rows []PlayerStats
	err := db.NewSelect().
		TableExpr("players AS p").
		ColumnExpr("p.id, p.name").
		ColumnExpr("COUNT(won.id) AS wins").
		ColumnExpr("COUNT(mp.match_id) AS matches").
		Join("LEFT JOIN match_participants AS mp ON mp.player_id = p.id").
		Join("LEFT JOIN matches AS won ON won.id = mp.match_id AND won.winner_id = p.id").
		GroupExpr("p.id, p.name").
		OrderExpr("wins DESC, p.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, wrapErr("ListPlayersWithStats", err)
	}
	return rows, nil
}

// ListPlayersWithWins returns every player with its win count.
func (r *Impl) ListPlayersWithWins(ctx context.Context, db bun.IDB) ([]PlayerWins, error) {
	db = r.resolveDB(db)
	var rows []PlayerWins
	err := db.NewSelect().
		TableExpr("players AS p").
		ColumnExpr("p.id, p.name").
		ColumnExpr("COUNT(m.id) AS wins").
		Join("LEFT JOIN matches AS m ON m.winner_id = p.id").
		GroupExpr("p.id, p.name").
		OrderExpr("wins DESC, p.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, wrapErr("ListPlayersWithWins", err)
	}
	return rows, nil
}

// InsertMatch records a match won by winnerID and returns its id.
func (r *Impl) InsertMatch(ctx context.Context, db bun.IDB, winnerID int64) (int64, error) {
	db = r.resolveDB(db)
	match := &Match{WinnerID: winnerID}
	if _, err := db.NewInsert().Model(match).Returning("id").Exec(ctx); err != nil {
		return 0, wrapErr("InsertMatch", err)
	}
	return match.ID, nil
}

// InsertMatchParticipants links both players to matchID.
func (r *Impl) InsertMatchParticipants(ctx context.Context, db bun.IDB, matchID, playerA, playerB int64) error {
	db = r.resolveDB(db)
	participants := []MatchParticipant{
		{MatchID: matchID, PlayerID: playerA},
		{MatchID: matchID, PlayerID: playerB},
	}
	if _, err := db.NewInsert().Model(&participants).Exec(ctx); err != nil {
		return wrapErr("InsertMatchParticipants", err)
	}
	return nil
}

// DeleteAllMatches removes every participant row and then every match.
func (r *Impl) DeleteAllMatches(ctx context.Context, db bun.IDB) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().Model((*MatchParticipant)(nil)).Where("TRUE").Exec(ctx); err != nil {
		return wrapErr("DeleteAllMatches", err)
	}
	if _, err := db.NewDelete().Model((*Match)(nil)).Where("TRUE").Exec(ctx); err != nil {
		return wrapErr("DeleteAllMatches", err)
	}
	return nil
}

// DeleteAllPlayers removes every player row. Matches must be removed first.
func (r *Impl) DeleteAllPlayers(ctx context.Context, db bun.IDB) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().Model((*Player)(nil)).Where("TRUE").Exec(ctx); err != nil {
		return wrapErr("DeleteAllPlayers", err)
	}
	return nil
}
