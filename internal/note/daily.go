package note

import (
	"fmt"
	"time"

	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/score"
)

// TypeDaily is the front-matter type of daily notes.
const TypeDaily = "daily-health"

// DefaultTrendSource is the folder the trends query reads from.
const DefaultTrendSource = "Daily Notes"

// DailyOptions tunes the daily template.
type DailyOptions struct {
	// TrendSource is the vault folder queried by the 7-day trends table.
	TrendSource string
}

var readinessEmoji = map[score.Readiness]string{
	score.ReadinessHigh:     "🔥",
	score.ReadinessModerate: "💪",
	score.ReadinessLow:      "😴",
	score.ReadinessUnknown:  "❓",
}

// RenderDaily renders the daily note with scores, recommendations and
// the journaling scaffold.
func RenderDaily(day healthdata.Day, scores score.Bundle, date, generatedAt time.Time, opts DailyOptions) string {
	dateStr := date.Format(healthdata.DateLayout)
	sleepHours := day.Sleep.Total
	if opts.TrendSource == "" {
		opts.TrendSource = DefaultTrendSource
	}

	doc := &Document{}

	doc.Meta("date", dateStr).
		Meta("type", TypeDaily).
		Meta("sleep_score", scoreOrZero(scores.Sleep)).
		Meta("recovery_score", scoreOrZero(scores.Recovery)).
		Meta("readiness", string(scores.Readiness)).
		Meta("hrv", FormatNumber(day.HRV, 1)).
		Meta("resting_hr", FormatNumber(day.RestingHR, 0)).
		Meta("steps", FormatNumber(day.Steps, 0))

	doc.List("# " + dateStr + " - " + date.Format("Monday"))

	doc.Section("## 💪 Recovery & Readiness",
		"**Recovery Score:** "+scoreOrPlaceholder(scores.Recovery)+"/100",
		"**Readiness Level:** "+readinessEmoji[scores.Readiness]+" "+string(scores.Readiness),
	)
	doc.List("### Vitals",
		"- **HRV:** "+FormatNumber(day.HRV, 1)+" ms",
		"- **Resting HR:** "+FormatNumber(day.RestingHR, 0)+" bpm",
		"- **Respiratory Rate:** "+FormatNumber(day.RespiratoryRate, 1)+" breaths/min",
		"- **Blood Oxygen:** "+FormatNumber(day.BloodOxygen, 1)+"%",
	)

	doc.Section("## 🌙 Schlaf (Letzte Nacht)",
		"**Score:** "+scoreOrPlaceholder(scores.Sleep)+"/100 "+gradeInt(scores.Sleep, 80, 60),
		"**Dauer:** "+FormatNumber(sleepHours, 1)+" Stunden",
	)
	doc.List("### Schlafphasen",
		"- **Tiefschlaf:** "+FormatNumber(day.Sleep.Deep, 1)+"h",
		"- **REM:** "+FormatNumber(day.Sleep.REM, 1)+"h",
		"- **Kernschlaf:** "+FormatNumber(day.Sleep.Core, 1)+"h",
		"- **Wach:** "+FormatNumber(day.Sleep.Awake, 1)+"h",
	)

	doc.Section("## 📊 Aktivität (Gestern)",
		"**Schritte:** "+FormatNumber(day.Steps, 0)+" / 10,000 "+gradeFloat(day.Steps, 10000, 5000),
		"**Training:** "+FormatNumber(day.ExerciseMinutes, 0)+" Minuten",
		"**Aktive Kalorien:** "+FormatNumber(day.ActiveCalories, 0)+" kcal",
	)

	doc.Section("## 📏 Körper",
		"- **Gewicht:** "+FormatNumber(day.Weight, 1)+" kg",
		"- **BMI:** "+FormatNumber(day.BMI, 1),
	)

	doc.List("## 🎯 Heute's Empfehlungen")
	doc.List("### 💪 Training", trainingAdvice(scores.Readiness)...)
	doc.List("### 🌙 Schlaf Optimierung", sleepAdvice(sleepHours))

	doc.Section("### 💊 Supplements (Blueprint)",
		"- [ ] Blueprint Essentials (morgens)",
		"- [ ] Omega-3 EPA/DHA (2g)",
		"- [ ] Vitamin D3 (2000 IU)",
		"- [ ] Magnesium (400mg, abends)",
		"- [ ] Kreatin (5g)",
	)

	doc.Section("### 🥗 Ernährung",
		"**Meal 1 (7:00)** - Super Veggie",
		"- [ ] 500g Gemüse",
		"- [ ] Olivenöl extra virgin",
		"- [ ] Nüsse & Samen",
		"",
		"**Meal 2 (11:00)** - Nutty Pudding",
		"- [ ] Walnüsse",
		"- [ ] Leinsamen",
		"- [ ] Beeren",
		"",
		"**Meal 3 (17:00)** - Hauptmahlzeit",
		"- [ ] Gemüse (500g+)",
		"- [ ] Hülsenfrüchte/Tofu",
		"- [ ] Vollkorngetreide",
	)

	doc.Section("## 📊 7-Tage Trends",
		"```dataview",
		"TABLE",
		`    sleep_score as "💤 Schlaf",`,
		`    recovery_score as "🎯 Recovery",`,
		`    steps as "👟 Schritte",`,
		`    hrv as "❤️ HRV"`,
		fmt.Sprintf("FROM %q", opts.TrendSource),
		fmt.Sprintf("WHERE type = %q", TypeDaily),
		"SORT date DESC",
		"LIMIT 7",
		"```",
	)

	doc.List("## 📝 Notizen & Reflexionen")
	doc.List("### Wie fühle ich mich heute?", "")
	doc.List("### Was ist heute wichtig?", "")
	doc.List("### Learnings", "")

	doc.Footer(
		"*Automatisch generiert von Health Auto Export → Obsidian*",
		"*Exportiert: "+generatedAt.Format("2006-01-02 15:04")+"*",
	)

	return doc.String()
}

func trainingAdvice(readiness score.Readiness) []string {
	switch readiness {
	case score.ReadinessHigh:
		return []string{
			"- Intensives Training empfohlen - Du bist gut erholt! 🔥",
			"- Ideal für: HIIT, Heavy Lifting, Long Runs",
		}
	case score.ReadinessModerate:
		return []string{
			"- Moderates Training empfohlen - Höre auf deinen Körper 💪",
			"- Ideal für: Techniktraining, moderates Cardio",
		}
	default:
		return []string{
			"- Leichtes Training oder Ruhetag empfohlen 😴",
			"- Fokus auf Recovery: Mobility, Yoga, Spaziergang",
		}
	}
}

func sleepAdvice(hours *float64) string {
	switch {
	case ptrTrue(hours) && *hours < 7:
		return "- Ziel: Früher ins Bett (aktuell " + FormatNumber(hours, 1) + "h → Ziel: 7-8h)"
	case ptrTrue(hours) && *hours > 9:
		return "- Du hast viel geschlafen (" + FormatNumber(hours, 1) + "h) - Achte auf Schlafqualität"
	default:
		return "- Schlaf war gut - Routine beibehalten ✅"
	}
}

// gradeInt and gradeFloat pick the traffic-light emoji for a value.
// Zero and absent values are red.
func gradeInt(value *int, good, fair int) string {
	if value == nil {
		return "🔴"
	}
	v := float64(*value)
	return gradeFloat(&v, float64(good), float64(fair))
}

func gradeFloat(value *float64, good, fair float64) string {
	switch {
	case ptrTrue(value) && *value >= good:
		return "✅"
	case ptrTrue(value) && *value >= fair:
		return "🟡"
	default:
		return "🔴"
	}
}
