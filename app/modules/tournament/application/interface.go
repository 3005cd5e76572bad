package tournamentservice

import (
	"context"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
)

// Service defines the tournament operations.
//
// Errors matching tournamentdomain.ErrIntegrityViolation mean the request was
// refused and nothing was written. Errors matching
// tournamentdb.ErrStoreUnavailable mean the database could not be reached.
type Service interface {
	// RegisterPlayer adds a player and returns it with its assigned id.
	RegisterPlayer(ctx context.Context, name string) (tournamentdomain.Player, error)
	CountPlayers(ctx context.Context) (int, error)

	// DeleteMatches removes every recorded match. Players remain.
	DeleteMatches(ctx context.Context) error
	// DeletePlayers removes every player together with the match history.
	DeletePlayers(ctx context.Context) error

	ReportMatch(ctx context.Context, winnerID, loserID tournamentdomain.PlayerID) (tournamentdomain.Match, error)
	// ReportRound records every outcome or none of them.
	ReportRound(ctx context.Context, outcomes []tournamentdomain.MatchOutcome) ([]tournamentdomain.Match, error)

	PlayerStandings(ctx context.Context) ([]tournamentdomain.Standing, error)
	SwissPairings(ctx context.Context) ([]tournamentdomain.Pairing, error)

	// ExportStandings renders standings, and pairings when possible, as an XLSX workbook.
	ExportStandings(ctx context.Context) ([]byte, error)
	// StandingsChart renders wins per player as a PNG.
	StandingsChart(ctx context.Context) ([]byte, error)
}
