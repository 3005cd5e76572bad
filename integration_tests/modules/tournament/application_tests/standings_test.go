package tournamentintegrationtests

import (
	"bytes"
	"testing"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFourPlayerScenario(t *testing.T) {
	deps := SetupTestTournamentService(t)

	ids := registerPlayers(t, deps, "Alice", "Bob", "Carol", "Dave")
	alice, bob, carol, dave := ids[0], ids[1], ids[2], ids[3]

	_, err := deps.Service.ReportMatch(deps.Ctx, alice, bob)
	require.NoError(t, err)
	_, err = deps.Service.ReportMatch(deps.Ctx, carol, dave)
	require.NoError(t, err)

	standings, err := deps.Service.PlayerStandings(deps.Ctx)
	require.NoError(t, err)
	assert.Equal(t, []tournamentdomain.Standing{
		{PlayerID: alice, Name: "Alice", Wins: 1, Matches: 1},
		{PlayerID: carol, Name: "Carol", Wins: 1, Matches: 1},
		{PlayerID: bob, Name: "Bob", Wins: 0, Matches: 1},
		{PlayerID: dave, Name: "Dave", Wins: 0, Matches: 1},
	}, standings)

	pairings, err := deps.Service.SwissPairings(deps.Ctx)
	require.NoError(t, err)
	assert.Equal(t, []tournamentdomain.Pairing{
		{Player1ID: alice, Player1Name: "Alice", Player2ID: carol, Player2Name: "Carol"},
		{Player1ID: bob, Player1Name: "Bob", Player2ID: dave, Player2Name: "Dave"},
	}, pairings)
}

func TestNewPlayersStartAtZero(t *testing.T) {
	deps := SetupTestTournamentService(t)

	registerPlayers(t, deps, deps.Data.PlayerNames(3)...)

	for _, st := range standingsByID(t, deps) {
		assert.Zero(t, st.Wins)
		assert.Zero(t, st.Matches)
	}
}

func TestSwissPairingsCoverEveryPlayerOnce(t *testing.T) {
	deps := SetupTestTournamentService(t)

	ids := registerPlayers(t, deps, deps.Data.PlayerNames(8)...)
	_, err := deps.Service.ReportRound(deps.Ctx, []tournamentdomain.MatchOutcome{
		{WinnerID: ids[7], LoserID: ids[0]},
		{WinnerID: ids[5], LoserID: ids[2]},
	})
	require.NoError(t, err)

	standings, err := deps.Service.PlayerStandings(deps.Ctx)
	require.NoError(t, err)
	pairings, err := deps.Service.SwissPairings(deps.Ctx)
	require.NoError(t, err)
	require.Len(t, pairings, len(ids)/2)

	seen := map[tournamentdomain.PlayerID]int{}
	for i, p := range pairings {
		seen[p.Player1ID]++
		seen[p.Player2ID]++
		assert.Equal(t, standings[2*i].PlayerID, p.Player1ID)
		assert.Equal(t, standings[2*i+1].PlayerID, p.Player2ID)
	}
	assert.Len(t, seen, len(ids))
	for id, n := range seen {
		assert.Equal(t, 1, n, "player %d", id)
	}
}

func TestSwissPairingsOddCount(t *testing.T) {
	deps := SetupTestTournamentService(t)

	registerPlayers(t, deps, deps.Data.PlayerNames(3)...)

	_, err := deps.Service.SwissPairings(deps.Ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, tournamentdomain.ErrOddPlayerCount)
}

func TestSwissPairingsNoPlayers(t *testing.T) {
	deps := SetupTestTournamentService(t)

	pairings, err := deps.Service.SwissPairings(deps.Ctx)
	require.NoError(t, err)
	assert.Empty(t, pairings)
}

func TestExportStandingsWorkbook(t *testing.T) {
	deps := SetupTestTournamentService(t)

	ids := registerPlayers(t, deps, "Alice", "Bob")
	_, err := deps.Service.ReportMatch(deps.Ctx, ids[1], ids[0])
	require.NoError(t, err)

	data, err := deps.Service.ExportStandings(deps.Ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Standings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bob", rows[1][2])
	assert.Equal(t, "1", rows[1][3])

	rows, err = f.GetRows("Pairings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", rows[1][1], "Bob", rows[1][3], "Alice"}, rows[1])

	png, err := deps.Service.StandingsChart(deps.Ctx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
