package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"rejectmonitor/internal/models"
	"rejectmonitor/internal/summary"
)

var (
	rejectQuantityDesc = prometheus.NewDesc(
		"rejectmonitor_reject_quantity",
		"Total reject quantity by process as currently stored",
		[]string{"process"},
		nil,
	)
	recordsDesc = prometheus.NewDesc(
		"rejectmonitor_records",
		"Number of reject records currently stored",
		nil,
		nil,
	)

	storeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejectmonitor_store_operations_total",
			Help: "Record store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	dataFileReadable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rejectmonitor_data_file_readable",
			Help: "1 if the last integrity check could read the data file, 0 otherwise",
		},
	)
)

// TableLoader loads the current reject table.
type TableLoader interface {
	Load(ctx context.Context) (*models.Table, error)
}

// RejectCollector is a custom Prometheus collector that reads the reject
// table on each scrape.
type RejectCollector struct {
	store TableLoader
}

// NewRejectCollector creates a collector over store.
func NewRejectCollector(store TableLoader) *RejectCollector {
	return &RejectCollector{store: store}
}

// Describe sends the metric descriptors to the channel.
func (c *RejectCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- rejectQuantityDesc
	ch <- recordsDesc
}

// Collect loads the table and emits per-process totals.
func (c *RejectCollector) Collect(ch chan<- prometheus.Metric) {
	table, err := c.store.Load(context.Background())
	if err != nil {
		slog.Error("failed to collect reject metrics", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(table.Len()))

	for _, t := range summary.Summarize(table).Totals {
		ch <- prometheus.MustNewConstMetric(
			rejectQuantityDesc,
			prometheus.GaugeValue,
			t.Total,
			t.Process,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(store TableLoader) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewRejectCollector(store), storeOperations, dataFileReadable)
	})
}

// RecordOperation counts a store operation. A nil err is a success.
func RecordOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	storeOperations.WithLabelValues(operation, outcome).Inc()
}

// SetDataFileReadable records the outcome of the latest integrity check.
func SetDataFileReadable(ok bool) {
	if ok {
		dataFileReadable.Set(1)
		return
	}
	dataFileReadable.Set(0)
}
