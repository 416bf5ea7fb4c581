// Package healthdata decodes Health Auto Export documents and extracts
// the per-day values the notes are built from.
//
// # Documents
//
// Two export documents exist per day, in separate folders:
//
//	Metrics:  {"data": {"metrics":  [{"name": "...", "data": [{"qty": 1.0}, ...]}]}}
//	Workouts: {"data": {"workouts": [{"name": "...", "duration": 1800, ...}]}}
//
// Both are decoded into schema structs. Every optional value is a pointer;
// nil means the export did not carry it.
//
// # Extraction
//
// The metric helpers mirror how the export app reports each metric:
//
//	healthdata.Sum(metrics, MetricStepCount)       // additive counters
//	healthdata.Average(metrics, MetricBloodOxygen) // sampled rates
//	healthdata.Latest(metrics, MetricRestingHR)    // once-a-day readings
//
// Lookups never fail. A missing series yields nil and the note renders a
// placeholder.
//
// # Files
//
// Export files follow the naming convention HealthAutoExport-YYYY-MM-DD.json.
// ListExports, LatestExport and ExportForDate locate them in a folder.
package healthdata
