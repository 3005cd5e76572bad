package tournamentdomain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPlayerNameLength matches the width of players.name.
const MaxPlayerNameLength = 255

// NormalizePlayerName trims surrounding whitespace and checks the result can
// be stored and displayed.
func NormalizePlayerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidPlayerName)
	}
	if !utf8.ValidString(trimmed) {
		return "", fmt.Errorf("%w: name is not valid UTF-8", ErrInvalidPlayerName)
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxPlayerNameLength {
		return "", fmt.Errorf("%w: name has %d characters, limit is %d", ErrInvalidPlayerName, n, MaxPlayerNameLength)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: name contains control character %U", ErrInvalidPlayerName, r)
		}
	}
	return trimmed, nil
}

// ValidateOutcome checks a single result before it reaches the store.
func ValidateOutcome(o MatchOutcome) error {
	if o.WinnerID <= 0 || o.LoserID <= 0 {
		return fmt.Errorf("%w: ids must be positive (winner=%d, loser=%d)", ErrPlayerNotFound, o.WinnerID, o.LoserID)
	}
	if o.WinnerID == o.LoserID {
		return fmt.Errorf("%w (id=%d)", ErrSelfMatch, o.WinnerID)
	}
	return nil
}

// ValidateRound checks every outcome and that no player plays twice.
func ValidateRound(outcomes []MatchOutcome) error {
	seen := make(map[PlayerID]struct{}, len(outcomes)*2)
	for i, o := range outcomes {
		if err := ValidateOutcome(o); err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}
		for _, id := range []PlayerID{o.WinnerID, o.LoserID} {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("match %d: %w (id=%d)", i+1, ErrDuplicatePlayer, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// OutcomePlayerIDs lists the distinct players referenced by outcomes.
func OutcomePlayerIDs(outcomes []MatchOutcome) []PlayerID {
	seen := make(map[PlayerID]struct{}, len(outcomes)*2)
	ids := make([]PlayerID, 0, len(outcomes)*2)
	for _, o := range outcomes {
		for _, id := range []PlayerID{o.WinnerID, o.LoserID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
