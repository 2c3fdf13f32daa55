// Package store persists reject records in a single-sheet xlsx workbook.
//
// Every operation opens the file, works on it and, for mutations, writes it
// back atomically. Nothing is cached between calls.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"rejectmonitor/internal/fileutil"
	"rejectmonitor/internal/models"
)

// headerRow is the 1-based sheet row holding the column names.
const headerRow = 1

// Store is the file-backed record table.
type Store struct {
	path string

	// mu keeps a load/persist pair from interleaving with another writer.
	mu sync.RWMutex
}

// New creates a store for the workbook at path. The file is not touched.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the workbook.
func (s *Store) Path() string {
	return s.path
}

// InitIfAbsent creates a header-only workbook when none exists.
// An existing file is left as is.
func (s *Store) InitIfAbsent(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat data file: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(models.Headers))
	for i, h := range models.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(f.GetSheetName(0), "A1", &header); err != nil {
		return false, fmt.Errorf("failed to write header: %w", err)
	}
	if err := s.persist(f); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the whole table.
func (s *Store) Load(ctx context.Context) (*models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, _, rows, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := &models.Table{
		Header: rows[0],
		Rows:   make([]models.Row, 0, len(rows)-1),
	}
	for _, cells := range rows[1:] {
		table.Rows = append(table.Rows, models.RowFromCells(cells))
	}
	return table, nil
}

// Count returns the number of data rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	return table.Len(), nil
}

// Append adds one record as the new last row.
func (s *Store) Append(ctx context.Context, record models.Record) error {
	return s.mutate(ctx, func(f *excelize.File, sheet string, rows [][]string) error {
		return writeRow(f, sheet, len(rows)+1, rowValues(record.Row()))
	})
}

// BulkAppend adds rows in order with a single write. Cells are stored
// verbatim; nothing is validated. Fully blank rows hold no data and are
// skipped, so they never occupy a position.
func (s *Store) BulkAppend(ctx context.Context, rows []models.Row) error {
	kept := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if !row.IsBlank() {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return s.mutate(ctx, func(f *excelize.File, sheet string, existing [][]string) error {
		next := len(existing) + 1
		for i, row := range kept {
			if err := writeRow(f, sheet, next+i, rowValues(row)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAt removes the data row at position (0-indexed, header excluded).
// Rows below it move up by one. A position that does not address a data row
// returns ErrOutOfRange and leaves the file unchanged.
func (s *Store) DeleteAt(ctx context.Context, position int) error {
	return s.mutate(ctx, func(f *excelize.File, sheet string, rows [][]string) error {
		dataRows := len(rows) - 1
		if position < 0 || position >= dataRows {
			return fmt.Errorf("%w: position %d, %d rows", ErrOutOfRange, position, dataRows)
		}
		return f.RemoveRow(sheet, position+headerRow+1)
	})
}

// DeleteAll removes every data row and keeps the header.
// The workbook is rebuilt header-only in one write; an unreadable file is
// reported and left alone.
func (s *Store) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, sheet, rows, err := s.open()
	if err != nil {
		return err
	}
	header := rows[0]
	old.Close()

	f := excelize.NewFile()
	defer f.Close()

	if name := f.GetSheetName(0); name != sheet {
		if err := f.SetSheetName(name, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}
	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return s.persist(f)
}

// Open returns the stored file for download, byte for byte.
// The caller must close it.
func (s *Store) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	return file, nil
}

// mutate runs fn against a freshly opened workbook and persists the result.
// When fn fails nothing is written.
func (s *Store) mutate(ctx context.Context, fn func(f *excelize.File, sheet string, rows [][]string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, sheet, rows, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f, sheet, rows); err != nil {
		return err
	}
	return s.persist(f)
}

// open reads the workbook and its rows. rows always has the header first.
func (s *Store) open() (*excelize.File, string, [][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", nil, ErrNotInitialized
		}
		return nil, "", nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, "", nil, fmt.Errorf("%w: no worksheet", ErrStorageCorrupt)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, "", nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, "", nil, fmt.Errorf("%w: missing header row", ErrStorageCorrupt)
	}
	return f, sheet, rows, nil
}

func (s *Store) persist(f *excelize.File) error {
	err := fileutil.WriteAtomic(s.path, 0o644, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save data file: %w", err)
	}
	return nil
}

// maxNumericDigits is the precision excelize keeps when reading a number
// back; longer integers would come back rounded in E notation.
const maxNumericDigits = 15

// rowValues turns a row into sheet values. A quantity holding a canonical
// integer becomes a number so spreadsheet tools can sum it; every other
// cell is kept as text and reads back unchanged. Empty cells stay empty.
func rowValues(row models.Row) []any {
	values := make([]any, models.NumColumns)
	for i, cell := range row {
		switch {
		case cell == "":
			values[i] = nil
		case i == models.ColQuantity && isNumericSafe(cell):
			n, _ := strconv.Atoi(cell)
			values[i] = n
		default:
			values[i] = cell
		}
	}
	return values
}

// isNumericSafe reports whether s is a canonical integer short enough to be
// read back exactly.
func isNumericSafe(s string) bool {
	if len(strings.TrimPrefix(s, "-")) > maxNumericDigits {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && strconv.Itoa(n) == s
}

func writeRow(f *excelize.File, sheet string, sheetRow int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, sheetRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write row %d: %w", sheetRow, err)
		}
	}
	return nil
}
