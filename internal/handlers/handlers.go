package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"rejectmonitor/internal/config"
	"rejectmonitor/internal/store"
	"rejectmonitor/internal/validation"
)

// validationMessage returns the text shown for a rejected manual entry.
func validationMessage(err error) string {
	if errors.Is(err, validation.ErrQuantityNotNumeric) {
		return validation.ErrQuantityNotNumeric.Error()
	}
	return err.Error()
}

// storeError maps store errors to HTTP errors. A corrupt data file is
// reported, never replaced.
func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrOutOfRange):
		return fiber.NewError(fiber.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrStorageCorrupt):
		slog.Error("data file is corrupt", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "The reject data file could not be read. It has not been modified.")
	case errors.Is(err, store.ErrNotInitialized):
		slog.Error("data file is missing", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "The reject data file is missing.")
	default:
		return err
	}
}

// pageData adds the site title every page layout expects.
func pageData(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	return data
}
