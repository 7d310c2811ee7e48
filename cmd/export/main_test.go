package main

import (
	"encoding/json"
	"testing"

	"github.com/kevzip/FaceIt-Stats/internal/adapters/excel"
)

func TestErrorJSON(t *testing.T) {
	got := errorJSON(excel.ErrNoRecords)

	var parsed errorSummary
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("summary is not valid JSON: %v\n%s", err, got)
	}
	if parsed.Error != "no matches to export" {
		t.Errorf("error = %q, want the writer's message", parsed.Error)
	}

	want := "{\n  \"error\": \"no matches to export\"\n}"
	if got != want {
		t.Errorf("summary = %q, want indented JSON %q", got, want)
	}
}
