package store

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"rejectmonitor/internal/models"
)

// ParseUpload reads the first worksheet of an uploaded workbook.
// The first row is a header and is skipped. Columns are taken by position,
// not by header name, and cells are returned as text without validation.
func ParseUpload(r io.Reader) ([]models.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrInvalidUpload)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	if len(cells) <= 1 {
		return nil, nil
	}

	rows := make([]models.Row, 0, len(cells)-1)
	for _, c := range cells[1:] {
		row := models.RowFromCells(c)
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
