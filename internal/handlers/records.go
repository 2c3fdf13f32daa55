package handlers

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"rejectmonitor/internal/config"
	"rejectmonitor/internal/metrics"
	"rejectmonitor/internal/render"
	"rejectmonitor/internal/store"
	"rejectmonitor/internal/summary"
	"rejectmonitor/internal/validation"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RecordHandler serves the reject page and its form actions.
type RecordHandler struct {
	store     *store.Store
	renderer  *render.Renderer
	processes []string
	cfg       *config.Config
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(s *store.Store, renderer *render.Renderer, processes []string, cfg *config.Config) *RecordHandler {
	return &RecordHandler{store: s, renderer: renderer, processes: processes, cfg: cfg}
}

// Index renders the page: entry form, upload form, chart and table.
func (h *RecordHandler) Index(c fiber.Ctx) error {
	table, err := h.store.Load(c.Context())
	if err != nil {
		return storeError(err)
	}

	return c.Render("index", pageData(fiber.Map{
		"Headers":   table.Header,
		"Rows":      table.Rows,
		"Count":     table.Len(),
		"Processes": h.processes,
	}, h.cfg))
}

// Create appends one manually entered record.
// A bad quantity rejects the whole submission before anything is written.
func (h *RecordHandler) Create(c fiber.Ctx) error {
	record, err := validation.RecordFromForm(func(key string) string {
		return c.FormValue(key)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(validationMessage(err))
	}

	err = h.store.Append(c.Context(), record)
	metrics.RecordOperation("append", err)
	if err != nil {
		return storeError(err)
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

// Upload appends every row of an uploaded workbook as is.
func (h *RecordHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "an .xlsx file is required")
	}

	file, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read the uploaded file")
	}
	defer file.Close()

	rows, err := store.ParseUpload(file)
	if err != nil {
		if errors.Is(err, store.ErrInvalidUpload) {
			return fiber.NewError(fiber.StatusBadRequest, store.ErrInvalidUpload.Error())
		}
		return err
	}

	err = h.store.BulkAppend(c.Context(), rows)
	metrics.RecordOperation("bulk_append", err)
	if err != nil {
		return storeError(err)
	}

	slog.Info("upload appended", "file", fh.Filename, "rows", len(rows))
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

// Delete removes the row at the position given in the URL.
func (h *RecordHandler) Delete(c fiber.Ctx) error {
	position, ok := validation.ParsePosition(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid row position")
	}

	err := h.store.DeleteAt(c.Context(), position)
	metrics.RecordOperation("delete", err)
	if err != nil {
		return storeError(err)
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

// DeleteAll removes every data row.
func (h *RecordHandler) DeleteAll(c fiber.Ctx) error {
	err := h.store.DeleteAll(c.Context())
	metrics.RecordOperation("delete_all", err)
	if err != nil {
		return storeError(err)
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

// Download sends the stored workbook byte for byte.
func (h *RecordHandler) Download(c fiber.Ctx) error {
	rc, err := h.store.Open(c.Context())
	if err != nil {
		return storeError(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	c.Attachment(filepath.Base(h.store.Path()))
	c.Set(fiber.HeaderContentType, xlsxMIME)
	return c.Send(data)
}

// Chart renders the per-process totals and returns the PNG.
func (h *RecordHandler) Chart(c fiber.Ctx) error {
	table, err := h.store.Load(c.Context())
	if err != nil {
		return storeError(err)
	}

	data, err := h.renderer.Render(c.Context(), summary.Summarize(table))
	if err != nil {
		slog.Error("failed to render chart", "error", err)
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(data)
}
