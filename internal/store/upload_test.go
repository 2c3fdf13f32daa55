package store

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rejectmonitor/internal/models"
)

// workbook builds an in-memory xlsx with the given rows on its first sheet.
func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseUpload(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Date", "Process", "Problem Type", "Reject Quantity", "Main Customer", "Workcenter"},
		{"2024-01-01", "LINE 1", "scratch", 5, "ACME", "W1"},
		{"2024-01-02", "LINE 1", "dent", "N/A", "ACME", "W1"},
		{"2024-01-03", "PH 2"},
		{"2024-01-04", "PH 2", "tear", 1, "ACME", "W3", "extra", "columns"},
	})

	rows, err := ParseUpload(buf)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, models.Row{"2024-01-01", "LINE 1", "scratch", "5", "ACME", "W1"}, rows[0])
	assert.Equal(t, "N/A", rows[1].Quantity())
	assert.Equal(t, models.Row{"2024-01-03", "PH 2", "", "", "", ""}, rows[2])
	assert.Equal(t, "W3", rows[3][models.ColWorkcenter])
}

func TestParseUpload_HeaderNamesIgnored(t *testing.T) {
	buf := workbook(t, [][]any{
		{"whatever", "columns", "are", "named"},
		{"2024-01-01", "VARNISH", "smudge", 2, "ACME", "W1"},
	})

	rows, err := ParseUpload(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VARNISH", rows[0].Process())
}

func TestParseUpload_HeaderOnly(t *testing.T) {
	buf := workbook(t, [][]any{{"Date", "Process"}})

	rows, err := ParseUpload(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseUpload_NotAWorkbook(t *testing.T) {
	_, err := ParseUpload(strings.NewReader("date,process\n2024-01-01,LINE 1\n"))
	assert.ErrorIs(t, err, ErrInvalidUpload)
}

func TestUploadThenAppend_KeepsGarbageVerbatim(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	buf := workbook(t, [][]any{
		{"Date", "Process", "Problem Type", "Reject Quantity", "Main Customer", "Workcenter"},
		{"2024-01-01", "LINE 1", "scratch", "N/A", "ACME", "W1"},
	})
	rows, err := ParseUpload(buf)
	require.NoError(t, err)
	require.NoError(t, s.BulkAppend(ctx, rows))

	table, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "N/A", table.Rows[0].Quantity())
}
