// Package note renders Obsidian Markdown notes from extracted health data.
//
// Two templates exist:
//
//   - Summary: a plain listing of the day's values, the default
//   - Daily: scores, readiness, recommendations and a journaling scaffold
//
// Both templates are byte-stable for the same input and generation time.
// The generation time is passed in, never read from the clock.
//
// Example summary output:
//
//	---
//	date: 2024-01-15
//	type: health-data
//	---
//
//	# Health Data - 2024-01-15
//
//	## 🌙 Sleep
//
//	- **Duration:** 7.5h
//	...
//
//	---
//	*Auto-generated from Health Auto Export • 2024-01-16 08:30*
package note
