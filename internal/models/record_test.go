package models

import "testing"

func TestRowFromCells(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected Row
	}{
		{
			name:     "exact width",
			cells:    []string{"2024-01-01", "LINE 1", "scratch", "5", "ACME", "W1"},
			expected: Row{"2024-01-01", "LINE 1", "scratch", "5", "ACME", "W1"},
		},
		{
			name:     "short row is padded",
			cells:    []string{"2024-01-01", "LINE 1"},
			expected: Row{"2024-01-01", "LINE 1", "", "", "", ""},
		},
		{
			name:     "extra columns are dropped",
			cells:    []string{"a", "b", "c", "d", "e", "f", "g", "h"},
			expected: Row{"a", "b", "c", "d", "e", "f"},
		},
		{
			name:     "nil cells",
			cells:    nil,
			expected: Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowFromCells(tt.cells); got != tt.expected {
				t.Errorf("RowFromCells(%q) = %q, want %q", tt.cells, got, tt.expected)
			}
		})
	}
}

func TestRecord_Row(t *testing.T) {
	r := Record{
		Date:        "2024-01-01",
		Process:     "LINE 1",
		ProblemType: "scratch",
		Quantity:    5,
		Customer:    "ACME",
		Workcenter:  "W1",
	}

	row := r.Row()
	if row.Process() != "LINE 1" {
		t.Errorf("Process() = %q, want %q", row.Process(), "LINE 1")
	}
	if row.Quantity() != "5" {
		t.Errorf("Quantity() = %q, want %q", row.Quantity(), "5")
	}
	if row[ColWorkcenter] != "W1" {
		t.Errorf("workcenter = %q, want %q", row[ColWorkcenter], "W1")
	}
}

func TestRow_IsBlank(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected bool
	}{
		{"zero row", Row{}, true},
		{"whitespace only", Row{" ", "\t", "", "", "", ""}, true},
		{"one cell set", Row{"", "", "", "N/A", "", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.IsBlank(); got != tt.expected {
				t.Errorf("IsBlank() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSummary_TotalAndLookup(t *testing.T) {
	s := Summary{Totals: []ProcessTotal{
		{Process: "LINE 1", Total: 8},
		{Process: "PH 2", Total: 4.5},
	}}

	if got := s.Total(); got != 12.5 {
		t.Errorf("Total() = %v, want 12.5", got)
	}
	if got, ok := s.Lookup("PH 2"); !ok || got != 4.5 {
		t.Errorf("Lookup(PH 2) = %v, %v, want 4.5, true", got, ok)
	}
	if _, ok := s.Lookup("line 1"); ok {
		t.Error("Lookup should be case sensitive")
	}
}

func TestTable_Len(t *testing.T) {
	var nilTable *Table
	if nilTable.Len() != 0 {
		t.Error("nil table should have zero rows")
	}
	table := &Table{Header: Headers, Rows: []Row{{}, {}}}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}
