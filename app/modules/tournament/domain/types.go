package tournamentdomain

// PlayerID is the store-assigned identifier of a registered player.
type PlayerID int64

// Player is a registered tournament entrant. Names need not be unique.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// Match is a recorded result between two players.
type Match struct {
	ID       int64    `json:"id"`
	WinnerID PlayerID `json:"winner_id"`
	LoserID  PlayerID `json:"loser_id"`
}

// MatchOutcome is a result waiting to be recorded.
type MatchOutcome struct {
	WinnerID PlayerID `json:"winner_id"`
	LoserID  PlayerID `json:"loser_id"`
}

// Standing is one row of the ranked standings table.
type Standing struct {
	PlayerID PlayerID `json:"player_id"`
	Name     string   `json:"name"`
	Wins     int      `json:"wins"`
	Matches  int      `json:"matches"`
}

// Pairing is one match of the next round.
type Pairing struct {
	Player1ID   PlayerID `json:"player1_id"`
	Player1Name string   `json:"player1_name"`
	Player2ID   PlayerID `json:"player2_id"`
	Player2Name string   `json:"player2_name"`
}
