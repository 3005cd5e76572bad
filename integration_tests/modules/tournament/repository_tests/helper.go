package tournamentrepositorytests

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/swiss-tournament/integration_tests/testutils"
	"github.com/uptrace/bun"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx   context.Context
	BunDB *bun.DB
	Repo  tournamentdb.Repository
	Data  *testutils.TestDataGenerator
}

func SetupTestRepository(t *testing.T) TestDeps {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testEnvOnce.Do(func() {
		log.Println("Initializing tournament repository test environment...")
		testEnv, testEnvErr = testutils.NewTestEnvironment(context.Background())
	})
	if testEnvErr != nil {
		t.Fatalf("Tournament test environment initialization failed: %v", testEnvErr)
	}

	resetCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := testEnv.Reset(resetCtx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	return TestDeps{
		Ctx:   testEnv.Ctx,
		BunDB: testEnv.DB,
		Repo:  tournamentdb.NewRepository(testEnv.DB),
		Data:  testutils.NewTestDataGenerator(),
	}
}
