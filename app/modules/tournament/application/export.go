package tournamentservice

import (
	"fmt"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	"github.com/xuri/excelize/v2"
)

const (
	standingsSheet = "Standings"
	pairingsSheet  = "Pairings"
)

var (
	standingsHeader = []any{"Rank", "Player ID", "Name", "Wins", "Matches"}
	pairingsHeader  = []any{"Table", "Player 1 ID", "Player 1", "Player 2 ID", "Player 2"}
)

// BuildStandingsWorkbook writes ranked standings to a "Standings" sheet and,
// when pairings is non-nil, the next round to a "Pairings" sheet.
func BuildStandingsWorkbook(standings []tournamentdomain.Standing, pairings []tournamentdomain.Pairing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := setRow(f, standingsSheet, 1, standingsHeader); err != nil {
		return nil, err
	}
	for i, st := range standings {
		row := []any{i + 1, int64(st.PlayerID), st.Name, st.Wins, st.Matches}
		if err := setRow(f, standingsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if pairings != nil {
		if _, err := f.NewSheet(pairingsSheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet %q: %w", pairingsSheet, err)
		}
		if err := setRow(f, pairingsSheet, 1, pairingsHeader); err != nil {
			return nil, err
		}
		for i, p := range pairings {
			row := []any{i + 1, int64(p.Player1ID), p.Player1Name, int64(p.Player2ID), p.Player2Name}
			if err := setRow(f, pairingsSheet, i+2, row); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	axis, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, axis, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
