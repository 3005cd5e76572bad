package tournamentservice

import (
	"context"
	"errors"
	"fmt"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/swiss-tournament/pkg/results"
	"github.com/uptrace/bun"
)

// ReportMatch records a single result. The match row and both participant
// rows are written together or not at all.
func (s *TournamentService) ReportMatch(ctx context.Context, winnerID, loserID tournamentdomain.PlayerID) (tournamentdomain.Match, error) {
	outcome := tournamentdomain.MatchOutcome{WinnerID: winnerID, LoserID: loserID}

	reportTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[tournamentdomain.Match, error], error) {
		if err := tournamentdomain.ValidateOutcome(outcome); err != nil {
			return results.FailureResult[tournamentdomain.Match, error](err), nil
		}

		recorded, err := s.recordOutcomesLogic(ctx, db, []tournamentdomain.MatchOutcome{outcome})
		if err != nil || recorded.IsFailure() {
			return results.OperationResult[tournamentdomain.Match, error]{Failure: recorded.Failure}, err
		}
		return results.SuccessResult[tournamentdomain.Match, error]((*recorded.Success)[0]), nil
	}

	identifier := fmt.Sprintf("winner=%d loser=%d", winnerID, loserID)
	result, err := withTelemetry(s, ctx, "ReportMatch", identifier, func(ctx context.Context) (results.OperationResult[tournamentdomain.Match, error], error) {
		return runInTx(s, ctx, reportTx)
	})

	match, err := unwrap("ReportMatch", result, err)
	if err == nil {
		s.metrics.RecordMatchesRecorded(ctx, 1)
	}
	return match, err
}

// ReportRound records a whole round in one transaction. A player may appear
// in at most one outcome.
func (s *TournamentService) ReportRound(ctx context.Context, outcomes []tournamentdomain.MatchOutcome) ([]tournamentdomain.Match, error) {
	if len(outcomes) == 0 {
		return []tournamentdomain.Match{}, nil
	}

	reportTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[[]tournamentdomain.Match, error], error) {
		if err := tournamentdomain.ValidateRound(outcomes); err != nil {
			return results.FailureResult[[]tournamentdomain.Match, error](err), nil
		}
		return s.recordOutcomesLogic(ctx, db, outcomes)
	}

	identifier := fmt.Sprintf("matches=%d", len(outcomes))
	result, err := withTelemetry(s, ctx, "ReportRound", identifier, func(ctx context.Context) (results.OperationResult[[]tournamentdomain.Match, error], error) {
		return runInTx(s, ctx, reportTx)
	})

	matches, err := unwrap("ReportRound", result, err)
	if err == nil {
		s.metrics.RecordMatchesRecorded(ctx, len(matches))
	}
	return matches, err
}

// recordOutcomesLogic checks that every referenced player exists and writes
// one match plus two participant rows per outcome. Outcomes must already be
// validated.
func (s *TournamentService) recordOutcomesLogic(ctx context.Context, db bun.IDB, outcomes []tournamentdomain.MatchOutcome) (results.OperationResult[[]tournamentdomain.Match, error], error) {
	ids := tournamentdomain.OutcomePlayerIDs(outcomes)
	rawIDs := make([]int64, len(ids))
	for i, id := range ids {
		rawIDs[i] = int64(id)
	}

	found, err := s.repo.CountPlayersByID(ctx, db, rawIDs)
	if err != nil {
		return results.OperationResult[[]tournamentdomain.Match, error]{}, fmt.Errorf("failed to look up players: %w", err)
	}
	if found != len(ids) {
		return results.FailureResult[[]tournamentdomain.Match, error](
			fmt.Errorf("%w: %d of %d players registered", tournamentdomain.ErrPlayerNotFound, found, len(ids)),
		), nil
	}

	matches := make([]tournamentdomain.Match, 0, len(outcomes))
	for _, o := range outcomes {
		matchID, err := s.repo.InsertMatch(ctx, db, int64(o.WinnerID))
		if err != nil {
			return playerFailureOrError(err, "failed to insert match")
		}
		if err := s.repo.InsertMatchParticipants(ctx, db, matchID, int64(o.WinnerID), int64(o.LoserID)); err != nil {
			return playerFailureOrError(err, "failed to insert match participants")
		}
		matches = append(matches, tournamentdomain.Match{
			ID:       matchID,
			WinnerID: o.WinnerID,
			LoserID:  o.LoserID,
		})
	}

	return results.SuccessResult[[]tournamentdomain.Match, error](matches), nil
}

// playerFailureOrError maps a foreign key violation to ErrPlayerNotFound; a
// player removed between the lookup and the insert lands here.
func playerFailureOrError(err error, msg string) (results.OperationResult[[]tournamentdomain.Match, error], error) {
	if errors.Is(err, tournamentdb.ErrForeignKeyViolation) {
		return results.FailureResult[[]tournamentdomain.Match, error](
			fmt.Errorf("%w: %w", tournamentdomain.ErrPlayerNotFound, err),
		), nil
	}
	return results.OperationResult[[]tournamentdomain.Match, error]{}, fmt.Errorf("%s: %w", msg, err)
}
