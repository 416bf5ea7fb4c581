package note

import (
	"fmt"
	"time"

	"github.com/gorewood/healthnote/internal/healthdata"
)

// TypeSummary is the front-matter type of summary notes.
const TypeSummary = "health-data"

// RenderSummary renders the plain health-data note for one day.
// Absent workout distance and heart rate lines are left out.
func RenderSummary(day healthdata.Day, workouts []healthdata.Workout, date, generatedAt time.Time) string {
	dateStr := date.Format(healthdata.DateLayout)
	doc := &Document{}

	doc.Meta("date", dateStr).
		Meta("type", TypeSummary)

	doc.List("# Health Data - " + dateStr)

	doc.Section("## 🌙 Sleep",
		"- **Duration:** "+FormatNumber(day.Sleep.Total, 1)+"h",
		"- **Deep Sleep:** "+FormatNumber(day.Sleep.Deep, 1)+"h",
		"- **REM Sleep:** "+FormatNumber(day.Sleep.REM, 1)+"h",
		"- **Core Sleep:** "+FormatNumber(day.Sleep.Core, 1)+"h",
		"- **Awake:** "+FormatNumber(day.Sleep.Awake, 1)+"h",
	)

	doc.Section("## 👟 Activity",
		"- **Steps:** "+FormatNumber(day.Steps, 0),
		"- **Exercise:** "+FormatNumber(day.ExerciseMinutes, 0)+" min",
		"- **Active Calories:** "+FormatNumber(day.ActiveCalories, 0)+" kcal",
		"- **Flights Climbed:** "+FormatNumber(day.FlightsClimbed, 0),
	)

	doc.Section("## ❤️ Vitals",
		"- **Resting Heart Rate:** "+FormatNumber(day.RestingHR, 0)+" bpm",
		"- **HRV:** "+FormatNumber(day.HRV, 1)+" ms",
		"- **Respiratory Rate:** "+FormatNumber(day.RespiratoryRate, 1)+" breaths/min",
		"- **Blood Oxygen:** "+FormatNumber(day.BloodOxygen, 1)+"%",
	)

	doc.Section("## 📏 Body",
		"- **Weight:** "+FormatNumber(day.Weight, 1)+" kg",
		"- **BMI:** "+FormatNumber(day.BMI, 1),
	)

	if len(workouts) > 0 {
		doc.List("## 🏃 Workouts")
		for i, w := range workouts {
			doc.Section(fmt.Sprintf("### %d. %s", i+1, w.Name), workoutLines(w)...)
		}
	}

	doc.Footer("*Auto-generated from Health Auto Export • " + generatedAt.Format("2006-01-02 15:04") + "*")

	return doc.String()
}

func workoutLines(w healthdata.Workout) []string {
	start := w.Start
	if start == "" {
		start = Placeholder
	}

	lines := []string{
		"- **Time:** " + start,
		"- **Duration:** " + FormatInt(w.DurationMinutes) + " min",
	}
	if w.DistanceKM != nil {
		lines = append(lines, "- **Distance:** "+FormatNumber(w.DistanceKM, 2)+" km")
	}
	lines = append(lines, "- **Calories:** "+FormatInt(w.Calories)+" kcal")
	if w.AvgHeartRate != nil && *w.AvgHeartRate != 0 {
		lines = append(lines, "- **Avg HR:** "+FormatInt(w.AvgHeartRate)+" bpm")
	}
	if w.MaxHeartRate != nil && *w.MaxHeartRate != 0 {
		lines = append(lines, "- **Max HR:** "+FormatInt(w.MaxHeartRate)+" bpm")
	}
	return lines
}
