package tournamentintegrationtests

import (
	"context"
	"log"
	"log/slog"
	"sync"
	"testing"
	"time"

	tournamentservice "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/application"
	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/swiss-tournament/integration_tests/testutils"
	tournamentmetrics "github.com/Black-And-White-Club/swiss-tournament/observability/metrics/tournament"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

// Global variables for the test environment, initialized once.
var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx     context.Context
	Repo    tournamentdb.Repository
	BunDB   *bun.DB
	Service tournamentservice.Service
	Data    *testutils.TestDataGenerator
}

func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testEnvOnce.Do(func() {
		log.Println("Initializing tournament test environment...")
		testEnv, testEnvErr = testutils.NewTestEnvironment(context.Background())
	})

	if testEnvErr != nil {
		t.Fatalf("Tournament test environment initialization failed: %v", testEnvErr)
	}

	return testEnv
}

func SetupTestTournamentService(t *testing.T) TestDeps {
	t.Helper()

	env := GetTestEnv(t)

	resetCtx, resetCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer resetCancel()
	if err := env.Reset(resetCtx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	repo := tournamentdb.NewRepository(env.DB)
	testLogger := slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	service := tournamentservice.NewTournamentService(
		repo,
		testLogger,
		tournamentmetrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test_tournament_service"),
		env.DB,
	)

	return TestDeps{
		Ctx:     env.Ctx,
		Repo:    repo,
		BunDB:   env.DB,
		Service: service,
		Data:    testutils.NewTestDataGenerator(),
	}
}

// registerPlayers registers names in order and returns their ids.
func registerPlayers(t *testing.T, deps TestDeps, names ...string) []tournamentdomain.PlayerID {
	t.Helper()
	ids := make([]tournamentdomain.PlayerID, len(names))
	for i, name := range names {
		p, err := deps.Service.RegisterPlayer(deps.Ctx, name)
		if err != nil {
			t.Fatalf("RegisterPlayer(%q) failed: %v", name, err)
		}
		ids[i] = p.ID
	}
	return ids
}

// standingsByID indexes standings by player id.
func standingsByID(t *testing.T, deps TestDeps) map[tournamentdomain.PlayerID]tournamentdomain.Standing {
	t.Helper()
	standings, err := deps.Service.PlayerStandings(deps.Ctx)
	if err != nil {
		t.Fatalf("PlayerStandings failed: %v", err)
	}
	out := make(map[tournamentdomain.PlayerID]tournamentdomain.Standing, len(standings))
	for _, st := range standings {
		if _, dup := out[st.PlayerID]; dup {
			t.Fatalf("player %d listed twice in standings", st.PlayerID)
		}
		out[st.PlayerID] = st
	}
	return out
}

// testWriter wraps a testing.T to implement io.Writer for slog
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}
