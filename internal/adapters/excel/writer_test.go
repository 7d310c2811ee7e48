package excel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kevzip/FaceIt-Stats/internal/domain"
)

func TestWrite_EmptyRecords(t *testing.T) {
	dir := t.TempDir()

	_, err := NewWriter(dir).Write(nil, "Kevzip")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no file must be written for empty input, found %d entries", len(entries))
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := []domain.MatchRecord{
		{
			Nickname: "Kevzip", MatchID: "m1", Date: "2025-07-15 16:04:05",
			Map: "de_ancient", Score: "13 / 9",
			Kills: "21", Deaths: "14", Assists: "5",
			KDRatio: "1.5", HeadshotsPct: "48", MVPs: "3", Result: "1",
		},
		{
			Nickname: "Kevzip", MatchID: "m2", Date: "2025-07-16 20:30:00",
			Map: "N/A", Score: "N/A",
			Kills: "0", Deaths: "0", Assists: "0",
			KDRatio: "0", HeadshotsPct: "0", MVPs: "0", Result: "N/A",
		},
	}

	path, err := NewWriter(dir).Write(records, "Kevzip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "Kevzip's faceit_games.xlsx" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("rows = %d, want header + %d records", len(rows), len(records))
	}

	wantHeader := []string{
		"Nickname", "Match ID", "Date", "Map", "Score",
		"Kills", "Deaths", "Assists", "K/D Ratio", "Headshots %", "MVPs", "Result",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][1] != "m1" || rows[1][2] != "2025-07-15 16:04:05" || rows[1][5] != "21" {
		t.Errorf("first record row = %v", rows[1])
	}
	if rows[2][3] != "N/A" || rows[2][11] != "N/A" {
		t.Errorf("second record row = %v", rows[2])
	}
}
