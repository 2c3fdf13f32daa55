package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"rejectmonitor/internal/models"
	"rejectmonitor/internal/store"
	"rejectmonitor/internal/summary"
)

// RecordsHandler exposes the reject table and its summary as JSON.
type RecordsHandler struct {
	store *store.Store
}

// NewRecordsHandler creates a new API records handler.
func NewRecordsHandler(s *store.Store) *RecordsHandler {
	return &RecordsHandler{store: s}
}

// List returns every data row with its current position.
func (h *RecordsHandler) List(c fiber.Ctx) error {
	table, err := h.store.Load(c.Context())
	if err != nil {
		return loadError(c, err)
	}

	rows := make([]models.PositionedRow, 0, table.Len())
	for i, row := range table.Rows {
		rows = append(rows, models.PositionedRow{Position: i, Cells: row[:]})
	}

	return jsonSuccess(c, models.RecordsResponse{
		Header: table.Header,
		Count:  table.Len(),
		Rows:   rows,
	})
}

// Summary returns the per-process totals.
func (h *RecordsHandler) Summary(c fiber.Ctx) error {
	table, err := h.store.Load(c.Context())
	if err != nil {
		return loadError(c, err)
	}

	s := summary.Summarize(table)
	totals := s.Totals
	if totals == nil {
		totals = []models.ProcessTotal{}
	}
	return jsonSuccess(c, models.SummaryResponse{
		Empty:  s.Empty,
		Total:  s.Total(),
		Totals: totals,
	})
}

// Health reports whether the data file can be read.
func (h *RecordsHandler) Health(c fiber.Ctx) error {
	count, err := h.store.Count(c.Context())
	if err != nil {
		slog.Error("health check failed", "error", err)
		return jsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return jsonSuccess(c, fiber.Map{"records": count})
}

func loadError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrStorageCorrupt):
		slog.Error("data file is corrupt", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "data file is unreadable")
	case errors.Is(err, store.ErrNotInitialized):
		return jsonError(c, fiber.StatusInternalServerError, "data file is missing")
	default:
		return jsonError(c, fiber.StatusInternalServerError, "failed to load records")
	}
}
