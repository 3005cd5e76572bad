package tournamentservice

import (
	"context"
	"time"

	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Tournament Repo
// ------------------------

type FakeTournamentRepo struct {
	trace []string

	CreatePlayerFunc            func(ctx context.Context, db bun.IDB, name string) (int64, error)
	CountPlayersFunc            func(ctx context.Context, db bun.IDB) (int, error)
	CountPlayersByIDFunc        func(ctx context.Context, db bun.IDB, ids []int64) (int, error)
	ListPlayersWithStatsFunc    func(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerStats, error)
	ListPlayersWithWinsFunc     func(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerWins, error)
	InsertMatchFunc             func(ctx context.Context, db bun.IDB, winnerID int64) (int64, error)
	InsertMatchParticipantsFunc func(ctx context.Context, db bun.IDB, matchID, playerA, playerB int64) error
	DeleteAllMatchesFunc        func(ctx context.Context, db bun.IDB) error
	DeleteAllPlayersFunc        func(ctx context.Context, db bun.IDB) error
}

func NewFakeTournamentRepo() *FakeTournamentRepo {
	return &FakeTournamentRepo{
		trace: []string{},
	}
}

func (f *FakeTournamentRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeTournamentRepo) CreatePlayer(ctx context.Context, db bun.IDB, name string) (int64, error) {
	f.record("CreatePlayer")
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, db, name)
	}
	return 1, nil
}

func (f *FakeTournamentRepo) CountPlayers(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountPlayers")
	if f.CountPlayersFunc != nil {
		return f.CountPlayersFunc(ctx, db)
	}
	return 0, nil
}

func (f *FakeTournamentRepo) CountPlayersByID(ctx context.Context, db bun.IDB, ids []int64) (int, error) {
	f.record("CountPlayersByID")
	if f.CountPlayersByIDFunc != nil {
		return f.CountPlayersByIDFunc(ctx, db, ids)
	}
	return len(ids), nil
}

func (f *FakeTournamentRepo) ListPlayersWithStats(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerStats, error) {
	f.record("ListPlayersWithStats")
	if f.ListPlayersWithStatsFunc != nil {
		return f.ListPlayersWithStatsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTournamentRepo) ListPlayersWithWins(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerWins, error) {
	f.record("ListPlayersWithWins")
	if f.ListPlayersWithWinsFunc != nil {
		return f.ListPlayersWithWinsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTournamentRepo) InsertMatch(ctx context.Context, db bun.IDB, winnerID int64) (int64, error) {
	f.record("InsertMatch")
	if f.InsertMatchFunc != nil {
		return f.InsertMatchFunc(ctx, db, winnerID)
	}
	return 1, nil
}

func (f *FakeTournamentRepo) InsertMatchParticipants(ctx context.Context, db bun.IDB, matchID, playerA, playerB int64) error {
	f.record("InsertMatchParticipants")
	if f.InsertMatchParticipantsFunc != nil {
		return f.InsertMatchParticipantsFunc(ctx, db, matchID, playerA, playerB)
	}
	return nil
}

func (f *FakeTournamentRepo) DeleteAllMatches(ctx context.Context, db bun.IDB) error {
	f.record("DeleteAllMatches")
	if f.DeleteAllMatchesFunc != nil {
		return f.DeleteAllMatchesFunc(ctx, db)
	}
	return nil
}

func (f *FakeTournamentRepo) DeleteAllPlayers(ctx context.Context, db bun.IDB) error {
	f.record("DeleteAllPlayers")
	if f.DeleteAllPlayersFunc != nil {
		return f.DeleteAllPlayersFunc(ctx, db)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeTournamentRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ tournamentdb.Repository = (*FakeTournamentRepo)(nil)

// ------------------------
// Recording metrics
// ------------------------

type fakeMetrics struct {
	attempts, successes, failures map[string]int
	matchesRecorded               int
	pairingsGenerated             int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		attempts:  map[string]int{},
		successes: map[string]int{},
		failures:  map[string]int{},
	}
}

func (m *fakeMetrics) RecordOperationAttempt(_ context.Context, op, _ string) { m.attempts[op]++ }
func (m *fakeMetrics) RecordOperationSuccess(_ context.Context, op, _ string) { m.successes[op]++ }
func (m *fakeMetrics) RecordOperationFailure(_ context.Context, op, _ string) { m.failures[op]++ }
func (m *fakeMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {
}
func (m *fakeMetrics) RecordMatchesRecorded(_ context.Context, n int)   { m.matchesRecorded += n }
func (m *fakeMetrics) RecordPairingsGenerated(_ context.Context, n int) { m.pairingsGenerated += n }
