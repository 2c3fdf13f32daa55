package jobs

import (
	"context"
	"log"
	"time"

	"rejectmonitor/internal/metrics"
)

// RecordCounter counts the data rows of the reject table.
type RecordCounter interface {
	Count(ctx context.Context) (int, error)
}

// IntegrityChecker periodically verifies that the data file can be read.
// It never repairs or replaces the file.
type IntegrityChecker struct {
	store    RecordCounter
	interval time.Duration
}

// NewIntegrityChecker creates a new integrity checker.
func NewIntegrityChecker(store RecordCounter, interval time.Duration) *IntegrityChecker {
	return &IntegrityChecker{
		store:    store,
		interval: interval,
	}
}

// Start begins the background check loop. It returns when ctx is done.
func (h *IntegrityChecker) Start(ctx context.Context) {
	log.Printf("Integrity checker started (interval: %v)", h.interval)

	// Run immediately on start
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Integrity checker stopped")
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check reads the data file once and publishes the outcome.
func (h *IntegrityChecker) Check(ctx context.Context) error {
	count, err := h.store.Count(ctx)
	metrics.SetDataFileReadable(err == nil)
	if err != nil {
		log.Printf("Integrity checker: data file unreadable: %v", err)
		return err
	}

	log.Printf("Integrity checker: %d records", count)
	return nil
}
