package tournamentservice

import (
	"context"
	"errors"
	"fmt"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	"github.com/Black-And-White-Club/swiss-tournament/pkg/results"
	"github.com/uptrace/bun"
)

// PlayerStandings lists every player with wins and matches played, ranked by
// wins and then by id.
func (s *TournamentService) PlayerStandings(ctx context.Context) ([]tournamentdomain.Standing, error) {
	standingsTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]tournamentdomain.Standing, error], error) {
		return s.standingsLogic(ctx, db)
	}

	result, err := withTelemetry(s, ctx, "PlayerStandings", "", func(ctx context.Context) (results.OperationResult[[]tournamentdomain.Standing, error], error) {
		return runInTx(s, ctx, standingsTx)
	})
	return unwrap("PlayerStandings", result, err)
}

func (s *TournamentService) standingsLogic(ctx context.Context, db bun.IDB) (results.OperationResult[[]tournamentdomain.Standing, error], error) {
	rows, err := s.repo.ListPlayersWithStats(ctx, db)
	if err != nil {
		return results.OperationResult[[]tournamentdomain.Standing, error]{}, fmt.Errorf("failed to list standings: %w", err)
	}

	standings := make([]tournamentdomain.Standing, len(rows))
	for i, row := range rows {
		standings[i] = tournamentdomain.Standing{
			PlayerID: tournamentdomain.PlayerID(row.ID),
			Name:     row.Name,
			Wins:     row.Wins,
			Matches:  row.Matches,
		}
	}

	return results.SuccessResult[[]tournamentdomain.Standing, error](tournamentdomain.RankStandings(standings)), nil
}

// SwissPairings pairs players of adjacent rank for the next round. An odd
// number of players is refused with tournamentdomain.ErrOddPlayerCount.
func (s *TournamentService) SwissPairings(ctx context.Context) ([]tournamentdomain.Pairing, error) {
	pairingsTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]tournamentdomain.Pairing, error], error) {
		rows, err := s.repo.ListPlayersWithWins(ctx, db)
		if err != nil {
			return results.OperationResult[[]tournamentdomain.Pairing, error]{}, fmt.Errorf("failed to list wins: %w", err)
		}

		standings := make([]tournamentdomain.Standing, len(rows))
		for i, row := range rows {
			standings[i] = tournamentdomain.Standing{
				PlayerID: tournamentdomain.PlayerID(row.ID),
				Name:     row.Name,
				Wins:     row.Wins,
			}
		}

		pairings, err := tournamentdomain.SwissPairings(standings)
		if err != nil {
			return results.FailureResult[[]tournamentdomain.Pairing, error](err), nil
		}
		return results.SuccessResult[[]tournamentdomain.Pairing, error](pairings), nil
	}

	result, err := withTelemetry(s, ctx, "SwissPairings", "", func(ctx context.Context) (results.OperationResult[[]tournamentdomain.Pairing, error], error) {
		return runInTx(s, ctx, pairingsTx)
	})

	pairings, err := unwrap("SwissPairings", result, err)
	if err == nil {
		s.metrics.RecordPairingsGenerated(ctx, len(pairings))
	}
	return pairings, err
}

// ExportStandings builds an XLSX workbook from the current standings.
func (s *TournamentService) ExportStandings(ctx context.Context) ([]byte, error) {
	result, err := withTelemetry(s, ctx, "ExportStandings", "", func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		standings, err := runInTx(s, ctx, s.standingsLogic)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}

		pairings, err := tournamentdomain.PairAdjacent(*standings.Success)
		if err != nil && !errors.Is(err, tournamentdomain.ErrOddPlayerCount) {
			return results.OperationResult[[]byte, error]{}, err
		}

		workbook, err := BuildStandingsWorkbook(*standings.Success, pairings)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to build workbook: %w", err)
		}
		return results.SuccessResult[[]byte, error](workbook), nil
	})
	return unwrap("ExportStandings", result, err)
}

// StandingsChart renders wins per player as a PNG bar chart.
func (s *TournamentService) StandingsChart(ctx context.Context) ([]byte, error) {
	result, err := withTelemetry(s, ctx, "StandingsChart", "", func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		standings, err := runInTx(s, ctx, s.standingsLogic)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}

		png, err := GenerateStandingsChart(*standings.Success, s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to render chart: %w", err)
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
	return unwrap("StandingsChart", result, err)
}
