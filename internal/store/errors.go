package store

import "errors"

// Store error sentinels.
var (
	// ErrOutOfRange is returned when a delete position does not address a data row.
	ErrOutOfRange = errors.New("row position out of range")

	// ErrStorageCorrupt is returned when the data file exists but is not a usable workbook.
	ErrStorageCorrupt = errors.New("data file is not a valid reject table")

	// ErrNotInitialized is returned when the data file is missing.
	ErrNotInitialized = errors.New("data file does not exist")

	// ErrInvalidUpload is returned when an uploaded file cannot be read as a workbook.
	ErrInvalidUpload = errors.New("uploaded file is not a readable xlsx workbook")
)
