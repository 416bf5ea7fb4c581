// Package score derives the sleep score, recovery score and readiness level
// shown in daily notes.
package score

import "math"

// Readiness is the training readiness derived from the recovery score.
type Readiness string

const (
	ReadinessHigh     Readiness = "HIGH"
	ReadinessModerate Readiness = "MODERATE"
	ReadinessLow      Readiness = "LOW"
	ReadinessUnknown  Readiness = "UNKNOWN"
)

// Recovery score weights and baselines.
const (
	sleepWeight     = 0.4
	hrvWeight       = 0.3
	restingHRWeight = 0.3

	hrvBaselineMS     = 60.0
	restingHRBaseline = 50.0
)

// Bundle holds the derived scores for one day.
type Bundle struct {
	Sleep     *int      `json:"sleep_score,omitempty"`
	Recovery  *int      `json:"recovery_score,omitempty"`
	Readiness Readiness `json:"readiness"`
}

// Compute derives the full score bundle from the day's inputs.
func Compute(sleepHours, hrv, restingHR *float64) Bundle {
	recovery := RecoveryScore(sleepHours, hrv, restingHR)
	return Bundle{
		Sleep:     SleepScore(sleepHours),
		Recovery:  recovery,
		Readiness: DetermineReadiness(recovery),
	}
}

// SleepScore rates a night's sleep duration on a 0-100 scale.
// 7-8h scores 100; shorter and longer nights taper off.
func SleepScore(hours *float64) *int {
	if hours == nil {
		return nil
	}
	s := truncate(sleepScore(*hours))
	return &s
}

func sleepScore(h float64) float64 {
	switch {
	case h >= 7 && h <= 8:
		return 100
	case h >= 6 && h < 7:
		return 75 + (h-6)*25
	case h > 8 && h <= 9:
		return 100 - (h-8)*10
	case h > 9:
		return 90 - (h-9)*5
	default:
		return math.Max(30, h/6*75)
	}
}

// RecoveryScore blends sleep (40%), HRV (30%) and resting heart rate (30%).
// Each component only counts when its input is present and non-zero; a
// zero reading is treated as missing, matching the legacy notes. Returns
// nil when no component is present.
func RecoveryScore(sleepHours, hrv, restingHR *float64) *int {
	var total float64
	present := false

	if sleepHours != nil && *sleepHours != 0 {
		if s := truncate(sleepScore(*sleepHours)); s != 0 {
			total += float64(s) * sleepWeight
			present = true
		}
	}

	if hrv != nil && *hrv != 0 {
		hrvScore := math.Min(100, *hrv/hrvBaselineMS*100)
		total += hrvScore * hrvWeight
		present = true
	}

	if restingHR != nil && *restingHR != 0 {
		hrScore := math.Max(0, 100-(*restingHR-restingHRBaseline)*2)
		total += hrScore * restingHRWeight
		present = true
	}

	if !present {
		return nil
	}
	r := truncate(total)
	return &r
}

// DetermineReadiness maps a recovery score to a readiness level.
func DetermineReadiness(recovery *int) Readiness {
	switch {
	case recovery == nil:
		return ReadinessUnknown
	case *recovery >= 80:
		return ReadinessHigh
	case *recovery >= 60:
		return ReadinessModerate
	default:
		return ReadinessLow
	}
}

// truncate rounds toward zero.
func truncate(v float64) int {
	return int(v)
}
