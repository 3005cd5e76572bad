package tournamentdomain

import (
	"errors"
	"fmt"
)

// ErrIntegrityViolation is the parent of every input the engine refuses to
// act on. Match it with errors.Is.
var ErrIntegrityViolation = errors.New("integrity violation")

var (
	// ErrOddPlayerCount is returned when pairings are requested for an odd
	// number of players.
	ErrOddPlayerCount = fmt.Errorf("%w: odd number of players cannot be paired", ErrIntegrityViolation)

	// ErrInvalidPlayerName is returned for empty, oversized or non-printable names.
	ErrInvalidPlayerName = fmt.Errorf("%w: invalid player name", ErrIntegrityViolation)

	// ErrSelfMatch is returned when a player is reported as both winner and loser.
	ErrSelfMatch = fmt.Errorf("%w: player cannot play against themselves", ErrIntegrityViolation)

	// ErrPlayerNotFound is returned when a match references an unregistered player.
	ErrPlayerNotFound = fmt.Errorf("%w: player not registered", ErrIntegrityViolation)

	// ErrDuplicatePlayer is returned when a player appears in more than one
	// match of the same round.
	ErrDuplicatePlayer = fmt.Errorf("%w: player appears in more than one match", ErrIntegrityViolation)
)
