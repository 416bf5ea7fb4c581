package note

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered wherever a value is absent.
const Placeholder = "—"

// grouping formats integers with thousands separators.
var grouping = message.NewPrinter(language.English)

// FormatNumber renders an optional value. With zero decimals the value is
// truncated and grouped ("12,345"); otherwise it is fixed-point.
func FormatNumber(value *float64, decimals int) string {
	if value == nil {
		return Placeholder
	}
	if decimals <= 0 {
		return grouping.Sprintf("%d", int64(*value))
	}
	return strconv.FormatFloat(*value, 'f', decimals, 64)
}

// FormatInt renders an optional integer with thousands separators.
func FormatInt(value *int) string {
	if value == nil {
		return Placeholder
	}
	return grouping.Sprintf("%d", *value)
}

// scoreOrPlaceholder renders a score, treating 0 like a missing score.
func scoreOrPlaceholder(value *int) string {
	if value == nil || *value == 0 {
		return Placeholder
	}
	return strconv.Itoa(*value)
}

// scoreOrZero renders a score for front-matter, where absent reads as 0.
func scoreOrZero(value *int) string {
	if value == nil {
		return "0"
	}
	return strconv.Itoa(*value)
}

func ptrTrue(value *float64) bool {
	return value != nil && *value != 0
}
