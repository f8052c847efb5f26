// Package renderer turns cryptofolio reports into markdown, ready to be
// printed raw or rendered to the terminal.
package renderer

import "strings"

// barLength is the width of the goal progress bar, in characters.
const barLength = 30

// ProgressBar renders pct as a fixed-width bar. The numeric percentage is
// unclamped elsewhere; only the drawing clamps to [0,100].
func ProgressBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(barLength * pct / 100)
	return strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
}
