package tournamentdomain

import (
	"fmt"
	"sort"
)

// RankStandings returns a copy of rows ordered by wins descending. Players
// with equal wins keep registration order (ascending id), so the ranking is
// deterministic whatever order the store produced.
func RankStandings(rows []Standing) []Standing {
	ranked := make([]Standing, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	return ranked
}

// PairAdjacent groups ranked players two by two: rank 1 with rank 2, rank 3
// with rank 4 and so on. The input must already be ranked.
func PairAdjacent(ranked []Standing) ([]Pairing, error) {
	if len(ranked)%2 != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrOddPlayerCount, len(ranked))
	}

	pairings := make([]Pairing, 0, len(ranked)/2)
	for i := 0; i < len(ranked); i += 2 {
		p1, p2 := ranked[i], ranked[i+1]
		pairings = append(pairings, Pairing{
			Player1ID:   p1.PlayerID,
			Player1Name: p1.Name,
			Player2ID:   p2.PlayerID,
			Player2Name: p2.Name,
		})
	}

	return pairings, nil
}

// SwissPairings ranks rows and pairs adjacent ranks.
func SwissPairings(rows []Standing) ([]Pairing, error) {
	return PairAdjacent(RankStandings(rows))
}
