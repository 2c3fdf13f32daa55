package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rejectmonitor/internal/models"
)

// Validation errors returned for manual entries.
var (
	ErrQuantityNotNumeric = errors.New("Reject Quantity must be numeric")
	ErrMissingField       = errors.New("missing required field")
)

// Form field names used by the manual entry form.
const (
	FieldDate       = "date"
	FieldProcess    = "process"
	FieldProblem    = "problem"
	FieldQuantity   = "qty"
	FieldCustomer   = "customer"
	FieldWorkcenter = "workcenter"
)

// RequiredFields lists every form field a manual entry must carry.
var RequiredFields = []string{
	FieldDate, FieldProcess, FieldProblem, FieldQuantity, FieldCustomer, FieldWorkcenter,
}

// ParseQuantity parses a reject quantity as an integer.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrQuantityNotNumeric
	}
	return n, nil
}

// RecordFromForm builds a record from form values looked up with get.
// The quantity is checked before anything else so a bad number is always
// reported as such. Process is not checked against the process list.
func RecordFromForm(get func(key string) string) (models.Record, error) {
	qty, err := ParseQuantity(get(FieldQuantity))
	if err != nil {
		return models.Record{}, err
	}

	for _, field := range RequiredFields {
		if strings.TrimSpace(get(field)) == "" {
			return models.Record{}, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	return models.Record{
		Date:        get(FieldDate),
		Process:     get(FieldProcess),
		ProblemType: get(FieldProblem),
		Quantity:    qty,
		Customer:    get(FieldCustomer),
		Workcenter:  get(FieldWorkcenter),
	}, nil
}

// ParsePosition parses a row position from a URL parameter.
func ParsePosition(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
