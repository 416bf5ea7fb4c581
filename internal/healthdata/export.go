package healthdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Metric names used by Health Auto Export.
const (
	MetricSleepAnalysis   = "sleep_analysis"
	MetricStepCount       = "step_count"
	MetricActiveEnergy    = "active_energy"
	MetricExerciseTime    = "apple_exercise_time"
	MetricFlightsClimbed  = "flights_climbed"
	MetricRestingHR       = "resting_heart_rate"
	MetricHRV             = "heart_rate_variability"
	MetricRespiratoryRate = "respiratory_rate"
	MetricBloodOxygen     = "blood_oxygen_saturation"
	MetricWeight          = "weight_body_mass"
	MetricBMI             = "body_mass_index"
)

// MetricsExport is a daily metrics export document.
// Series are kept raw and decoded one at a time by Metrics, so a series
// of an unexpected shape cannot fail the whole document.
type MetricsExport struct {
	Data struct {
		Metrics []json.RawMessage `json:"metrics"`
	} `json:"data"`
}

// Metrics decodes the metric series of the export, in document order.
// A series that does not decode keeps its name but carries no samples,
// so every lookup on it comes back absent.
func (e *MetricsExport) Metrics() []Metric {
	if e == nil {
		return nil
	}
	metrics := make([]Metric, 0, len(e.Data.Metrics))
	for _, raw := range e.Data.Metrics {
		metrics = append(metrics, decodeMetric(raw))
	}
	return metrics
}

func decodeMetric(raw json.RawMessage) Metric {
	var m Metric
	if err := json.Unmarshal(raw, &m); err == nil {
		return m
	}
	var named struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(raw, &named) //nolint:errcheck // a series without a readable name never matches
	return Metric{Name: named.Name}
}

// Metric is one named series of samples.
type Metric struct {
	Name string    `json:"name"`
	Data []*Sample `json:"data"`
}

// Sample is one data point of a series. Most series only carry Qty;
// sleep_analysis carries the pre-aggregated stage durations instead.
type Sample struct {
	Qty *float64 `json:"qty,omitempty"`

	TotalSleep *float64 `json:"totalSleep,omitempty"`
	Deep       *float64 `json:"deep,omitempty"`
	REM        *float64 `json:"rem,omitempty"`
	Core       *float64 `json:"core,omitempty"`
	Awake      *float64 `json:"awake,omitempty"`
	SleepStart *string  `json:"sleepStart,omitempty"`
	SleepEnd   *string  `json:"sleepEnd,omitempty"`
}

// quantity returns the sample quantity, counting a missing qty as 0.
func (s *Sample) quantity() float64 {
	if s == nil || s.Qty == nil {
		return 0
	}
	return *s.Qty
}

// WorkoutsExport is a daily workouts export document.
type WorkoutsExport struct {
	Data struct {
		Workouts []RawWorkout `json:"workouts"`
	} `json:"data"`
}

// Workouts returns the raw workout records, in document order.
func (e *WorkoutsExport) Workouts() []RawWorkout {
	if e == nil {
		return nil
	}
	return e.Data.Workouts
}

// RawWorkout is a workout record as exported.
type RawWorkout struct {
	Name          *string         `json:"name,omitempty"`
	Start         *string         `json:"start,omitempty"`
	Duration      *float64        `json:"duration,omitempty"` // seconds
	Distance      json.RawMessage `json:"distance,omitempty"`
	ActiveEnergy  []*Sample       `json:"activeEnergy,omitempty"`
	HeartRateData []*Sample       `json:"heartRateData,omitempty"`
}

// ParseMetrics decodes a metrics export document.
func ParseMetrics(data []byte) (*MetricsExport, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}
	var doc MetricsExport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing metrics export: %w", err)
	}
	return &doc, nil
}

// ParseWorkouts decodes a workouts export document.
func ParseWorkouts(data []byte) (*WorkoutsExport, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}
	var doc WorkoutsExport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing workouts export: %w", err)
	}
	return &doc, nil
}

// LoadMetrics reads and decodes a metrics export file.
func LoadMetrics(path string) (*MetricsExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := ParseMetrics(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadWorkouts reads and decodes a workouts export file.
func LoadWorkouts(path string) (*WorkoutsExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := ParseWorkouts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
