package lead_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	model "github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
	lead "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
)

func testLead() model.Lead {
	return model.Lead{
		ID:               "abc12345",
		Timestamp:        time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC),
		IP:               "203.0.113.9",
		Name:             "Pat Doe",
		Phone:            "7135551234",
		Email:            "pat@example.com",
		AddressOrZip:     "77339",
		PreferredContact: "text",
		ProjectDetails:   "120 feet of cedar privacy fence, one walk gate",
		Status:           "new",
	}
}

func TestCSVWriterCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")

	if _, err := lead.NewCSVWriter(path); err != nil {
		t.Fatalf("NewCSVWriter err: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][len(rows[0])-1] != "status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
}

func TestCSVWriterKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")

	w, err := lead.NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter err: %v", err)
	}
	if err := w.Append(testLead()); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	// Reopening must not rewrite the header or drop rows.
	if _, err := lead.NewCSVWriter(path); err != nil {
		t.Fatalf("reopen err: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 lead", len(rows))
	}
	if rows[1][2] != "Pat Doe" || rows[1][8] != "abc12345" {
		t.Fatalf("unexpected lead row: %v", rows[1])
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}
