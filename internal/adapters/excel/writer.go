package excel

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

// ErrNoRecords means there was nothing to write; no file gets created.
var ErrNoRecords = errors.New("no matches to export")

// Header row, fixed column order.
var columns = []string{
	"Nickname", "Match ID", "Date", "Map", "Score",
	"Kills", "Deaths", "Assists", "K/D Ratio", "Headshots %", "MVPs", "Result",
}

// Writer serializes match records into an .xlsx workbook under dir.
type Writer struct {
	dir string
}

// NewWriter writes files into dir; empty means the working directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Write saves one row per record to "<nickname>'s faceit_games.xlsx" and
// returns the file path.
func (w *Writer) Write(records []domain.MatchRecord, nickname string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		row := []string{
			r.Nickname, r.MatchID, r.Date, r.Map, r.Score,
			r.Kills, r.Deaths, r.Assists, r.KDRatio, r.HeadshotsPct, r.MVPs, r.Result,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s's faceit_games.xlsx", nickname))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
