package healthdata

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Sleep is the pre-aggregated sleep breakdown for one night.
// Stage durations are in hours and are not checked against Total.
type Sleep struct {
	Total *float64 `json:"total_hours,omitempty"`
	Deep  *float64 `json:"deep_hours,omitempty"`
	REM   *float64 `json:"rem_hours,omitempty"`
	Core  *float64 `json:"core_hours,omitempty"`
	Awake *float64 `json:"awake_hours,omitempty"`
	Start *string  `json:"start,omitempty"`
	End   *string  `json:"end,omitempty"`
}

// Day holds every value a note needs from one metrics export.
type Day struct {
	Sleep Sleep `json:"sleep"`

	Steps           *float64 `json:"steps,omitempty"`
	ActiveCalories  *float64 `json:"active_calories,omitempty"`
	ExerciseMinutes *float64 `json:"exercise_minutes,omitempty"`
	FlightsClimbed  *float64 `json:"flights_climbed,omitempty"`

	RestingHR       *float64 `json:"resting_hr,omitempty"`
	HRV             *float64 `json:"hrv,omitempty"`
	RespiratoryRate *float64 `json:"respiratory_rate,omitempty"`
	BloodOxygen     *float64 `json:"blood_oxygen,omitempty"`

	Weight *float64 `json:"weight,omitempty"`
	BMI    *float64 `json:"bmi,omitempty"`
}

// Workout is the note-ready summary of one workout record.
type Workout struct {
	Name            string   `json:"name"`
	Start           string   `json:"start,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	DistanceKM      *float64 `json:"distance_km,omitempty"`
	Calories        *int     `json:"calories,omitempty"`
	AvgHeartRate    *int     `json:"avg_heart_rate,omitempty"`
	MaxHeartRate    *int     `json:"max_heart_rate,omitempty"`
}

// findMetric returns the first series with the given name.
// Names are not guaranteed unique; the first match wins.
func findMetric(metrics []Metric, name string) (Metric, bool) {
	i := slices.IndexFunc(metrics, func(m Metric) bool { return m.Name == name })
	if i < 0 {
		return Metric{}, false
	}
	return metrics[i], true
}

// Sum adds up every sample of the named series.
//
// Legacy behavior: a total <= 0 is reported as absent, so a day whose
// counters never filled in renders the placeholder rather than 0.
func Sum(metrics []Metric, name string) *float64 {
	m, ok := findMetric(metrics, name)
	if !ok {
		return nil
	}
	total := sumSamples(m.Data)
	if total <= 0 {
		return nil
	}
	return &total
}

// Average returns the arithmetic mean of the named series.
func Average(metrics []Metric, name string) *float64 {
	m, ok := findMetric(metrics, name)
	if !ok || len(m.Data) == 0 {
		return nil
	}
	avg := sumSamples(m.Data) / float64(len(m.Data))
	return &avg
}

// Latest returns the quantity of the last sample of the named series.
// The series is taken to be in chronological order already.
func Latest(metrics []Metric, name string) *float64 {
	m, ok := findMetric(metrics, name)
	if !ok || len(m.Data) == 0 {
		return nil
	}
	last := m.Data[len(m.Data)-1]
	if last == nil || last.Qty == nil {
		return nil
	}
	v := *last.Qty
	return &v
}

func sumSamples(samples []*Sample) float64 {
	var total float64
	for _, s := range samples {
		total += s.quantity()
	}
	return total
}

// ExtractSleep reads the sleep breakdown from the sleep_analysis series.
// The export carries one sample per night, so only the first sample of a
// series is read. If several sleep series are present, the last non-empty
// one wins.
func ExtractSleep(metrics []Metric) Sleep {
	var sleep Sleep
	for _, m := range metrics {
		if m.Name != MetricSleepAnalysis || len(m.Data) == 0 {
			continue
		}
		item := m.Data[0]
		if item == nil {
			item = &Sample{}
		}
		sleep = Sleep{
			Total: item.TotalSleep,
			Deep:  item.Deep,
			REM:   item.REM,
			Core:  item.Core,
			Awake: item.Awake,
			Start: item.SleepStart,
			End:   item.SleepEnd,
		}
	}
	return sleep
}

// ExtractDay pulls all note values out of a metrics export.
func ExtractDay(doc *MetricsExport) Day {
	metrics := doc.Metrics()
	return Day{
		Sleep: ExtractSleep(metrics),

		Steps:           Sum(metrics, MetricStepCount),
		ActiveCalories:  Sum(metrics, MetricActiveEnergy),
		ExerciseMinutes: Sum(metrics, MetricExerciseTime),
		FlightsClimbed:  Sum(metrics, MetricFlightsClimbed),

		RestingHR:       Latest(metrics, MetricRestingHR),
		HRV:             Latest(metrics, MetricHRV),
		RespiratoryRate: Average(metrics, MetricRespiratoryRate),
		BloodOxygen:     Average(metrics, MetricBloodOxygen),

		Weight: Latest(metrics, MetricWeight),
		BMI:    Latest(metrics, MetricBMI),
	}
}

// ExtractWorkouts summarizes each workout record, preserving input order.
func ExtractWorkouts(doc *WorkoutsExport) []Workout {
	raw := doc.Workouts()
	workouts := make([]Workout, 0, len(raw))
	for i := range raw {
		workouts = append(workouts, summarizeWorkout(&raw[i]))
	}
	return workouts
}

func summarizeWorkout(w *RawWorkout) Workout {
	out := Workout{Name: "Unknown"}
	if w.Name != nil && *w.Name != "" {
		out.Name = *w.Name
	}
	if w.Start != nil {
		out.Start = *w.Start
	}

	// Zero seconds and zero kcal read as "not recorded".
	if w.Duration != nil && *w.Duration != 0 {
		out.DurationMinutes = intPtr(int(*w.Duration / 60))
	}
	if len(w.ActiveEnergy) > 0 {
		if kcal := sumSamples(w.ActiveEnergy); kcal != 0 {
			out.Calories = intPtr(int(kcal))
		}
	}

	out.DistanceKM = distanceQty(w.Distance)
	out.AvgHeartRate, out.MaxHeartRate = heartRateStats(w.HeartRateData)
	return out
}

// distanceQty reads distance.qty when distance is a JSON object.
func distanceQty(raw json.RawMessage) *float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var q struct {
		Qty *float64 `json:"qty"`
	}
	if err := json.Unmarshal(trimmed, &q); err != nil {
		return nil
	}
	return q.Qty
}

// heartRateStats returns the truncated average and peak of a heart-rate
// series. Both are nil for an empty series, and a zero result is nil too.
func heartRateStats(samples []*Sample) (avg, peak *int) {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s == nil {
			continue
		}
		values = append(values, s.quantity())
	}
	if len(values) == 0 {
		return nil, nil
	}

	var total float64
	for _, v := range values {
		total += v
	}
	mean := total / float64(len(values))
	highest := slices.Max(values)

	if mean != 0 {
		avg = intPtr(int(mean))
	}
	if highest != 0 {
		peak = intPtr(int(highest))
	}
	return avg, peak
}

func intPtr(v int) *int {
	return &v
}
