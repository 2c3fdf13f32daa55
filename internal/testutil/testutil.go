// Package testutil provides test utilities and helpers.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"rejectmonitor/internal/models"
	"rejectmonitor/internal/store"
)

// TestStore creates an initialized store in a temp directory.
// The directory is removed when the test finishes.
func TestStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "reject_data.xlsx"))
	if _, err := s.InitIfAbsent(context.Background()); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return s
}

// CreateTestRecord appends a record for process with the given quantity.
func CreateTestRecord(t *testing.T, s *store.Store, process string, qty int) models.Record {
	t.Helper()

	record := models.Record{
		Date:        "2024-01-01",
		Process:     process,
		ProblemType: fmt.Sprintf("Test problem %d", qty),
		Quantity:    qty,
		Customer:    "ACME",
		Workcenter:  "W1",
	}
	if err := s.Append(context.Background(), record); err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}

// Workbook builds an xlsx file with rows written to the first sheet,
// starting at A1.
func Workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to address row %d: %v", i+1, err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}
	return buf.Bytes()
}
