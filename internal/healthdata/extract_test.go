package healthdata

import (
	"testing"
)

func f64(v float64) *float64 { return &v }

func series(name string, qtys ...float64) Metric {
	m := Metric{Name: name}
	for _, q := range qtys {
		m.Data = append(m.Data, &Sample{Qty: f64(q)})
	}
	return m
}

func assertFloat(t *testing.T, label string, got *float64, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", label, fmtPtr(got), fmtPtr(want))
	case *got != *want:
		t.Errorf("%s = %v, want %v", label, *got, *want)
	}
}

func assertInt(t *testing.T, label string, got *int, want *int) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", label, fmtIntPtr(got), fmtIntPtr(want))
	case *got != *want:
		t.Errorf("%s = %d, want %d", label, *got, *want)
	}
}

func fmtPtr(v *float64) any {
	if v == nil {
		return "<absent>"
	}
	return *v
}

func fmtIntPtr(v *int) any {
	if v == nil {
		return "<absent>"
	}
	return *v
}

func TestSum(t *testing.T) {
	tests := []struct {
		name    string
		metrics []Metric
		metric  string
		want    *float64
	}{
		{name: "empty collection is absent", metrics: nil, metric: MetricStepCount, want: nil},
		{name: "missing series is absent", metrics: []Metric{series("other", 5)}, metric: MetricStepCount, want: nil},
		{name: "sums samples", metrics: []Metric{series(MetricStepCount, 1000, 2500.5)}, metric: MetricStepCount, want: f64(3500.5)},
		{name: "zero total is absent", metrics: []Metric{series(MetricStepCount, 0, 0)}, metric: MetricStepCount, want: nil},
		{name: "empty series is absent", metrics: []Metric{{Name: MetricStepCount}}, metric: MetricStepCount, want: nil},
		{
			name:    "missing qty counts as zero",
			metrics: []Metric{{Name: MetricStepCount, Data: []*Sample{{Qty: f64(10)}, {}, nil}}},
			metric:  MetricStepCount,
			want:    f64(10),
		},
		{
			name:    "first matching series wins",
			metrics: []Metric{series(MetricStepCount, 1), series(MetricStepCount, 100)},
			metric:  MetricStepCount,
			want:    f64(1),
		},
		{
			name:    "first match with zero total does not fall through",
			metrics: []Metric{series(MetricStepCount, 0), series(MetricStepCount, 100)},
			metric:  MetricStepCount,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloat(t, "Sum()", Sum(tt.metrics, tt.metric), tt.want)
		})
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		metrics []Metric
		want    *float64
	}{
		{name: "missing series", metrics: nil, want: nil},
		{name: "empty series", metrics: []Metric{{Name: MetricBloodOxygen}}, want: nil},
		{name: "mean of samples", metrics: []Metric{series(MetricBloodOxygen, 96, 98)}, want: f64(97)},
		{name: "zero average is present", metrics: []Metric{series(MetricBloodOxygen, 0, 0)}, want: f64(0)},
		{
			name:    "missing qty counts as zero",
			metrics: []Metric{{Name: MetricBloodOxygen, Data: []*Sample{{Qty: f64(10)}, {}}}},
			want:    f64(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloat(t, "Average()", Average(tt.metrics, MetricBloodOxygen), tt.want)
		})
	}
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name    string
		metrics []Metric
		want    *float64
	}{
		{name: "missing series", metrics: nil, want: nil},
		{name: "empty series", metrics: []Metric{{Name: MetricRestingHR}}, want: nil},
		{name: "last sample in document order", metrics: []Metric{series(MetricRestingHR, 60, 52, 55)}, want: f64(55)},
		{
			name:    "last sample without qty is absent",
			metrics: []Metric{{Name: MetricRestingHR, Data: []*Sample{{Qty: f64(50)}, {}}}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFloat(t, "Latest()", Latest(tt.metrics, MetricRestingHR), tt.want)
		})
	}
}

func TestExtractSleep(t *testing.T) {
	start := "2026-01-14 23:10:00 +0100"
	end := "2026-01-15 06:45:00 +0100"

	t.Run("reads first sample fields", func(t *testing.T) {
		metrics := []Metric{{
			Name: MetricSleepAnalysis,
			Data: []*Sample{
				{TotalSleep: f64(7.2), Deep: f64(1.1), REM: f64(1.6), Core: f64(4.5), Awake: f64(0.3), SleepStart: &start, SleepEnd: &end},
				{TotalSleep: f64(1)},
			},
		}}
		sleep := ExtractSleep(metrics)
		assertFloat(t, "Total", sleep.Total, f64(7.2))
		assertFloat(t, "Deep", sleep.Deep, f64(1.1))
		assertFloat(t, "REM", sleep.REM, f64(1.6))
		assertFloat(t, "Core", sleep.Core, f64(4.5))
		assertFloat(t, "Awake", sleep.Awake, f64(0.3))
		if sleep.Start == nil || *sleep.Start != start {
			t.Errorf("Start = %v, want %q", sleep.Start, start)
		}
		if sleep.End == nil || *sleep.End != end {
			t.Errorf("End = %v, want %q", sleep.End, end)
		}
	})

	t.Run("absent fields stay absent", func(t *testing.T) {
		sleep := ExtractSleep([]Metric{{Name: MetricSleepAnalysis, Data: []*Sample{{TotalSleep: f64(6)}}}})
		assertFloat(t, "Total", sleep.Total, f64(6))
		assertFloat(t, "Deep", sleep.Deep, nil)
		if sleep.Start != nil {
			t.Errorf("Start = %q, want absent", *sleep.Start)
		}
	})

	t.Run("no sleep series", func(t *testing.T) {
		sleep := ExtractSleep([]Metric{series(MetricStepCount, 1)})
		if sleep != (Sleep{}) {
			t.Errorf("ExtractSleep() = %+v, want zero value", sleep)
		}
	})

	t.Run("last non-empty sleep series wins", func(t *testing.T) {
		metrics := []Metric{
			{Name: MetricSleepAnalysis, Data: []*Sample{{TotalSleep: f64(5)}}},
			{Name: MetricSleepAnalysis, Data: []*Sample{{TotalSleep: f64(8)}}},
			{Name: MetricSleepAnalysis},
		}
		assertFloat(t, "Total", ExtractSleep(metrics).Total, f64(8))
	})
}

func TestExtractDay(t *testing.T) {
	doc, err := ParseMetrics([]byte(`{"data":{"metrics":[
		{"name":"step_count","units":"count","data":[{"qty":4000},{"qty":6500}]},
		{"name":"resting_heart_rate","data":[{"qty":58},{"qty":54}]},
		{"name":"respiratory_rate","data":[{"qty":14},{"qty":16}]},
		{"name":"sleep_analysis","data":[{"totalSleep":7.5,"deep":1.2}]}
	]}}`))
	if err != nil {
		t.Fatalf("ParseMetrics() error = %v", err)
	}

	day := ExtractDay(doc)
	assertFloat(t, "Steps", day.Steps, f64(10500))
	assertFloat(t, "RestingHR", day.RestingHR, f64(54))
	assertFloat(t, "RespiratoryRate", day.RespiratoryRate, f64(15))
	assertFloat(t, "Sleep.Total", day.Sleep.Total, f64(7.5))
	assertFloat(t, "HRV", day.HRV, nil)
	assertFloat(t, "Weight", day.Weight, nil)
}

func TestExtractDay_NoMetrics(t *testing.T) {
	for _, raw := range []string{`{}`, `{"data":{}}`, `{"data":{"metrics":[]}}`} {
		doc, err := ParseMetrics([]byte(raw))
		if err != nil {
			t.Fatalf("ParseMetrics(%s) error = %v", raw, err)
		}
		if day := ExtractDay(doc); day != (Day{}) {
			t.Errorf("ExtractDay(%s) = %+v, want zero value", raw, day)
		}
	}
}

func TestExtractDay_UnexpectedSeries(t *testing.T) {
	tests := []struct {
		name   string
		series string
	}{
		{name: "string quantity", series: `{"name":"symptom","data":[{"qty":"mild"}]}`},
		{name: "numeric units", series: `{"name":"symptom","units":7,"data":[{"qty":1}]}`},
		{name: "numeric sample date", series: `{"name":"symptom","data":[{"qty":1,"date":20240115}]}`},
		{name: "data is an object", series: `{"name":"symptom","data":{"qty":1}}`},
		{name: "series is not an object", series: `"symptom"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseMetrics([]byte(`{"data":{"metrics":[` + tt.series + `,
				{"name":"step_count","data":[{"qty":4000},{"qty":6500}]},
				{"name":"sleep_analysis","data":[{"totalSleep":7.5,"inBed":"n/a"}]}
			]}}`))
			if err != nil {
				t.Fatalf("ParseMetrics() error = %v", err)
			}

			day := ExtractDay(doc)
			assertFloat(t, "Steps", day.Steps, f64(10500))
			assertFloat(t, "Sleep.Total", day.Sleep.Total, f64(7.5))
		})
	}
}

func TestExtractDay_UndecodableSeriesIsAbsent(t *testing.T) {
	// The first step_count series still wins the lookup and reads as absent.
	doc, err := ParseMetrics([]byte(`{"data":{"metrics":[
		{"name":"step_count","data":[{"qty":"many"}]},
		{"name":"step_count","data":[{"qty":100}]},
		{"name":"heart_rate_variability","data":[{"qty":61.5}]}
	]}}`))
	if err != nil {
		t.Fatalf("ParseMetrics() error = %v", err)
	}

	day := ExtractDay(doc)
	assertFloat(t, "Steps", day.Steps, nil)
	assertFloat(t, "HRV", day.HRV, f64(61.5))
}

func TestParseMetrics_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "not JSON", data: "{not json"},
		{name: "wrong shape", data: `{"data":{"metrics":"nope"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMetrics([]byte(tt.data)); err == nil {
				t.Error("ParseMetrics() should return an error")
			}
		})
	}
}

func TestExtractWorkouts(t *testing.T) {
	doc, err := ParseWorkouts([]byte(`{"data":{"workouts":[
		{
			"name":"Outdoor Run",
			"start":"2026-01-15 07:00:00 +0100",
			"duration":1859,
			"distance":{"qty":5.234,"units":"km"},
			"activeEnergy":[{"qty":120.4},{"qty":200.9}],
			"heartRateData":[{"qty":140},{"qty":151},{"qty":165}]
		},
		{
			"name":"Yoga",
			"duration":0,
			"distance":12,
			"activeEnergy":[],
			"heartRateData":[]
		},
		{
			"distance":null
		}
	]}}`))
	if err != nil {
		t.Fatalf("ParseWorkouts() error = %v", err)
	}

	workouts := ExtractWorkouts(doc)
	if len(workouts) != 3 {
		t.Fatalf("ExtractWorkouts() returned %d workouts, want 3", len(workouts))
	}

	run := workouts[0]
	if run.Name != "Outdoor Run" {
		t.Errorf("Name = %q, want %q", run.Name, "Outdoor Run")
	}
	if run.Start != "2026-01-15 07:00:00 +0100" {
		t.Errorf("Start = %q", run.Start)
	}
	minutes, kcal, avg, peak := 30, 321, 152, 165
	assertInt(t, "DurationMinutes", run.DurationMinutes, &minutes)
	assertFloat(t, "DistanceKM", run.DistanceKM, f64(5.234))
	assertInt(t, "Calories", run.Calories, &kcal)
	assertInt(t, "AvgHeartRate", run.AvgHeartRate, &avg)
	assertInt(t, "MaxHeartRate", run.MaxHeartRate, &peak)

	yoga := workouts[1]
	assertInt(t, "yoga DurationMinutes", yoga.DurationMinutes, nil)
	assertFloat(t, "yoga DistanceKM (non-object)", yoga.DistanceKM, nil)
	assertInt(t, "yoga Calories", yoga.Calories, nil)
	assertInt(t, "yoga AvgHeartRate", yoga.AvgHeartRate, nil)
	assertInt(t, "yoga MaxHeartRate", yoga.MaxHeartRate, nil)

	unnamed := workouts[2]
	if unnamed.Name != "Unknown" {
		t.Errorf("Name = %q, want %q", unnamed.Name, "Unknown")
	}
	assertFloat(t, "null distance", unnamed.DistanceKM, nil)
	assertInt(t, "missing heart rate avg", unnamed.AvgHeartRate, nil)
}

func TestExtractWorkouts_Empty(t *testing.T) {
	doc, err := ParseWorkouts([]byte(`{"data":{}}`))
	if err != nil {
		t.Fatalf("ParseWorkouts() error = %v", err)
	}
	if got := ExtractWorkouts(doc); len(got) != 0 {
		t.Errorf("ExtractWorkouts() = %v, want empty", got)
	}
}
