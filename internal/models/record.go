package models

import (
	"strconv"
	"strings"
)

// NumColumns is the fixed width of every stored row.
const NumColumns = 6

// Column positions within a Row.
const (
	ColDate = iota
	ColProcess
	ColProblemType
	ColQuantity
	ColCustomer
	ColWorkcenter
)

// Headers are the column names written to the first row of the data file.
var Headers = []string{
	"Date", "Process", "Problem Type",
	"Reject Quantity", "Main Customer", "Workcenter",
}

// Record is a reject event entered through the manual form.
type Record struct {
	Date        string `json:"date"`
	Process     string `json:"process"`
	ProblemType string `json:"problem_type"`
	Quantity    int    `json:"reject_quantity"`
	Customer    string `json:"main_customer"`
	Workcenter  string `json:"workcenter"`
}

// Row converts the record to its stored form.
func (r Record) Row() Row {
	return Row{
		r.Date,
		r.Process,
		r.ProblemType,
		strconv.Itoa(r.Quantity),
		r.Customer,
		r.Workcenter,
	}
}

// Row is a stored row. Cells hold whatever text the spreadsheet contains;
// uploaded rows are never validated, so Quantity may not be numeric.
type Row [NumColumns]string

// RowFromCells builds a Row from a variable-width slice of cells.
// Short input is padded with empty cells, extra columns are dropped.
func RowFromCells(cells []string) Row {
	var row Row
	copy(row[:], cells)
	return row
}

// Process returns the category cell.
func (r Row) Process() string {
	return r[ColProcess]
}

// Quantity returns the raw quantity cell.
func (r Row) Quantity() string {
	return r[ColQuantity]
}

// IsBlank reports whether every cell is empty or whitespace.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Table is the full content of the data file: header plus data rows in
// insertion order. A row's position is its index in Rows.
type Table struct {
	Header []string `json:"header"`
	Rows   []Row    `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
