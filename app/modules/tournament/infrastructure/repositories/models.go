package tournamentdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Player is a registered entrant.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull,type:varchar(255)"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Match records the winner of a single game. Both players are linked through
// MatchParticipant rows written in the same transaction.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID        int64     `bun:"id,pk,autoincrement"`
	WinnerID  int64     `bun:"winner_id,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// MatchParticipant links a player to a match regardless of outcome.
type MatchParticipant struct {
	bun.BaseModel `bun:"table:match_participants,alias:mp"`

	MatchID  int64 `bun:"match_id,pk"`
	PlayerID int64 `bun:"player_id,pk"`
}

// PlayerStats is a row of the standings aggregate.
type PlayerStats struct {
	ID      int64  `bun:"id"`
	Name    string `bun:"name"`
	Wins    int    `bun:"wins"`
	Matches int    `bun:"matches"`
}

// PlayerWins is a row of the wins-only aggregate used for pairing.
type PlayerWins struct {
	ID   int64  `bun:"id"`
	Name string `bun:"name"`
	Wins int    `bun:"wins"`
}
