package tournamentservice

import (
	"bytes"
	"context"
	"testing"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	tournamentmetrics "github.com/Black-And-White-Club/swiss-tournament/observability/metrics/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestBuildStandingsWorkbook(t *testing.T) {
	standings := []tournamentdomain.Standing{
		{PlayerID: 1, Name: "Alice", Wins: 1, Matches: 1},
		{PlayerID: 3, Name: "Carol", Wins: 1, Matches: 1},
	}
	pairings := []tournamentdomain.Pairing{
		{Player1ID: 1, Player1Name: "Alice", Player2ID: 3, Player2Name: "Carol"},
	}

	t.Run("with pairings", func(t *testing.T) {
		data, err := BuildStandingsWorkbook(standings, pairings)
		require.NoError(t, err)

		f := openWorkbook(t, data)
		assert.Equal(t, []string{"Standings", "Pairings"}, f.GetSheetList())

		rows, err := f.GetRows("Standings")
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Rank", "Player ID", "Name", "Wins", "Matches"},
			{"1", "1", "Alice", "1", "1"},
			{"2", "3", "Carol", "1", "1"},
		}, rows)

		rows, err = f.GetRows("Pairings")
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Table", "Player 1 ID", "Player 1", "Player 2 ID", "Player 2"},
			{"1", "1", "Alice", "3", "Carol"},
		}, rows)
	})

	t.Run("without pairings", func(t *testing.T) {
		data, err := BuildStandingsWorkbook(standings[:1], nil)
		require.NoError(t, err)

		f := openWorkbook(t, data)
		assert.Equal(t, []string{"Standings"}, f.GetSheetList())
	})
}

func TestExportStandings(t *testing.T) {
	tests := []struct {
		name       string
		rows       []tournamentdb.PlayerStats
		wantSheets []string
	}{
		{
			name: "even count includes pairings",
			rows: []tournamentdb.PlayerStats{
				{ID: 1, Name: "Alice", Wins: 1, Matches: 1},
				{ID: 2, Name: "Bob", Wins: 0, Matches: 1},
			},
			wantSheets: []string{"Standings", "Pairings"},
		},
		{
			name: "odd count omits pairings",
			rows: []tournamentdb.PlayerStats{
				{ID: 1, Name: "Alice"},
				{ID: 2, Name: "Bob"},
				{ID: 3, Name: "Carol"},
			},
			wantSheets: []string{"Standings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTournamentRepo()
			repo.ListPlayersWithStatsFunc = func(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerStats, error) {
				return tt.rows, nil
			}
			svc := newTestService(repo, tournamentmetrics.NewNoop())

			data, err := svc.ExportStandings(context.Background())
			require.NoError(t, err)

			f := openWorkbook(t, data)
			assert.Equal(t, tt.wantSheets, f.GetSheetList())
			rows, err := f.GetRows("Standings")
			require.NoError(t, err)
			assert.Len(t, rows, len(tt.rows)+1)
		})
	}
}

func TestExportStandingsStoreFailure(t *testing.T) {
	repo := NewFakeTournamentRepo()
	repo.ListPlayersWithStatsFunc = func(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerStats, error) {
		return nil, errStoreDown
	}
	svc := newTestService(repo, tournamentmetrics.NewNoop())

	_, err := svc.ExportStandings(context.Background())
	assert.ErrorIs(t, err, tournamentdb.ErrStoreUnavailable)
}

func TestGenerateStandingsChart(t *testing.T) {
	tests := []struct {
		name      string
		standings []tournamentdomain.Standing
	}{
		{name: "no players renders placeholder"},
		{
			name: "fresh tournament with no wins",
			standings: []tournamentdomain.Standing{
				{PlayerID: 1, Name: "Alice"},
				{PlayerID: 2, Name: "Bob"},
			},
		},
		{
			name: "mixed results",
			standings: []tournamentdomain.Standing{
				{PlayerID: 1, Name: "Alice", Wins: 2, Matches: 2},
				{PlayerID: 3, Name: "Carol", Wins: 1, Matches: 2},
				{PlayerID: 2, Name: "Bob", Wins: 1, Matches: 2},
				{PlayerID: 4, Name: "Dave", Wins: 0, Matches: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := GenerateStandingsChart(tt.standings, DefaultChartPalette())
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngSignature))
		})
	}
}

func TestStandingsChart(t *testing.T) {
	repo := NewFakeTournamentRepo()
	repo.ListPlayersWithStatsFunc = func(ctx context.Context, db bun.IDB) ([]tournamentdb.PlayerStats, error) {
		return []tournamentdb.PlayerStats{{ID: 1, Name: "Alice", Wins: 1, Matches: 1}, {ID: 2, Name: "Bob", Matches: 1}}, nil
	}
	svc := newTestService(repo, tournamentmetrics.NewNoop())

	png, err := svc.StandingsChart(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))
}
