// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	// Registry holds only musort's collectors so a textfile dump carries no
	// Go runtime noise.
	Registry = prometheus.NewRegistry()

	foldersClassified = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "folders_classified_total",
		Help:      "Total number of album folders classified",
	})
	directoriesMoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "directories_moved_total",
		Help:      "Total number of album folders moved to their target path",
	})
	filesRenamed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "files_renamed_total",
		Help:      "Total number of music files renamed",
	})
	duplicatesRemoved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "duplicates_removed_total",
		Help:      "Total number of sources deleted because the target already existed, by type",
	}, []string{"type"})
	ledgerEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "ledger_entries_total",
		Help:      "Total number of recorded problems by kind",
	}, []string{"kind"})
	emptyDirsRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "musort",
		Name:      "empty_directories_removed_total",
		Help:      "Total number of empty directories removed by cleanup",
	})
	runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "musort",
		Name:      "run_duration_seconds",
		Help:      "Histogram of run durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})
)

// Register adds the collectors to Registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		Registry.MustRegister(foldersClassified, directoriesMoved, filesRenamed,
			duplicatesRemoved, ledgerEntries, emptyDirsRemoved, runDuration)
	})
}

// Counters
func IncFoldersClassified()            { foldersClassified.Inc() }
func IncDirectoriesMoved()             { directoriesMoved.Inc() }
func IncFilesRenamed()                 { filesRenamed.Inc() }
func IncDuplicatesRemoved(kind string) { duplicatesRemoved.WithLabelValues(kind).Inc() }
func IncLedgerEntry(kind string)       { ledgerEntries.WithLabelValues(kind).Inc() }
func AddEmptyDirsRemoved(n int)        { emptyDirsRemoved.Add(float64(n)) }
func ObserveRunDuration(d time.Duration) {
	runDuration.Observe(d.Seconds())
}

// WriteTextfile dumps Registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	Register()
	return prometheus.WriteToTextfile(path, Registry)
}
