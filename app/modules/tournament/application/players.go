package tournamentservice

import (
	"context"
	"fmt"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	"github.com/Black-And-White-Club/swiss-tournament/pkg/results"
	"github.com/uptrace/bun"
)

// RegisterPlayer adds a player under a trimmed, validated name.
func (s *TournamentService) RegisterPlayer(ctx context.Context, name string) (tournamentdomain.Player, error) {
	registerTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[tournamentdomain.Player, error], error) {
		return s.registerPlayerLogic(ctx, db, name)
	}

	result, err := withTelemetry(s, ctx, "RegisterPlayer", name, func(ctx context.Context) (results.OperationResult[tournamentdomain.Player, error], error) {
		return runInTx(s, ctx, registerTx)
	})
	return unwrap("RegisterPlayer", result, err)
}

func (s *TournamentService) registerPlayerLogic(ctx context.Context, db bun.IDB, name string) (results.OperationResult[tournamentdomain.Player, error], error) {
	normalized, err := tournamentdomain.NormalizePlayerName(name)
	if err != nil {
		return results.FailureResult[tournamentdomain.Player, error](err), nil
	}

	id, err := s.repo.CreatePlayer(ctx, db, normalized)
	if err != nil {
		return results.OperationResult[tournamentdomain.Player, error]{}, fmt.Errorf("failed to create player: %w", err)
	}

	return results.SuccessResult[tournamentdomain.Player, error](tournamentdomain.Player{
		ID:   tournamentdomain.PlayerID(id),
		Name: normalized,
	}), nil
}

// CountPlayers returns the number of registered players.
func (s *TournamentService) CountPlayers(ctx context.Context) (int, error) {
	countTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
		count, err := s.repo.CountPlayers(ctx, db)
		if err != nil {
			return results.OperationResult[int, error]{}, fmt.Errorf("failed to count players: %w", err)
		}
		return results.SuccessResult[int, error](count), nil
	}

	result, err := withTelemetry(s, ctx, "CountPlayers", "", func(ctx context.Context) (results.OperationResult[int, error], error) {
		return runInTx(s, ctx, countTx)
	})
	return unwrap("CountPlayers", result, err)
}

// DeleteMatches clears the match history and keeps the players.
func (s *TournamentService) DeleteMatches(ctx context.Context) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		if err := s.repo.DeleteAllMatches(ctx, db); err != nil {
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete matches: %w", err)
		}
		return results.SuccessResult[bool, error](true), nil
	}

	result, err := withTelemetry(s, ctx, "DeleteMatches", "", func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, deleteTx)
	})
	_, err = unwrap("DeleteMatches", result, err)
	return err
}

// DeletePlayers clears the match history and then every player.
func (s *TournamentService) DeletePlayers(ctx context.Context) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		if err := s.repo.DeleteAllMatches(ctx, db); err != nil {
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete matches: %w", err)
		}
		if err := s.repo.DeleteAllPlayers(ctx, db); err != nil {
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete players: %w", err)
		}
		return results.SuccessResult[bool, error](true), nil
	}

	result, err := withTelemetry(s, ctx, "DeletePlayers", "", func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, deleteTx)
	})
	_, err = unwrap("DeletePlayers", result, err)
	return err
}
