package models

// ProcessTotal is the summed reject quantity of one process.
type ProcessTotal struct {
	Process string  `json:"process"`
	Total   float64 `json:"total"`
}

// Summary is the aggregate of a table.
// Empty is set only when the table had no data rows, which is distinct from
// a table whose totals are all zero.
type Summary struct {
	Empty  bool           `json:"empty"`
	Totals []ProcessTotal `json:"totals"`
}

// Total returns the sum over all processes.
func (s Summary) Total() float64 {
	var sum float64
	for _, t := range s.Totals {
		sum += t.Total
	}
	return sum
}

// Lookup returns the total for a process and whether it is present.
func (s Summary) Lookup(process string) (float64, bool) {
	for _, t := range s.Totals {
		if t.Process == process {
			return t.Total, true
		}
	}
	return 0, false
}

// SummaryResponse is the JSON body of the summary API.
type SummaryResponse struct {
	Empty  bool           `json:"empty"`
	Total  float64        `json:"total"`
	Totals []ProcessTotal `json:"totals"`
}

// RecordsResponse is the JSON body of the records API.
// Each entry keeps the row's current position so it can be deleted.
type RecordsResponse struct {
	Header []string        `json:"header"`
	Count  int             `json:"count"`
	Rows   []PositionedRow `json:"rows"`
}

// PositionedRow pairs a row with its 0-indexed data position.
type PositionedRow struct {
	Position int      `json:"position"`
	Cells    []string `json:"cells"`
}
