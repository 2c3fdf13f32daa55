// Package summary aggregates reject quantities per process.
package summary

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"rejectmonitor/internal/models"
)

// Summarize sums the quantity column grouped by the process column.
//
// Quantities that do not parse as numbers count as zero. Process labels are
// grouped by exact text; a row with an empty process has no group. Totals
// come back sorted by process label. A table with no data rows yields the
// empty signal.
func Summarize(table *models.Table) models.Summary {
	if table.Len() == 0 {
		return models.Summary{Empty: true}
	}

	totals := make(map[string]float64)
	for _, row := range table.Rows {
		process := row.Process()
		if process == "" {
			continue
		}
		totals[process] += Quantity(row.Quantity())
	}

	out := make([]models.ProcessTotal, 0, len(totals))
	for process, total := range totals {
		out = append(out, models.ProcessTotal{Process: process, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Process < out[j].Process
	})

	return models.Summary{Totals: out}
}

// Quantity coerces a raw quantity cell to a number, returning 0 when the
// cell is not a finite number.
func Quantity(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
