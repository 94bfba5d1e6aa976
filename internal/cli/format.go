// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats a dollar amount with thousands separators and no
// decimals. Negative values keep the sign after the dollar symbol.
// e.g., 600000 -> "$600,000", -200000 -> "$-200,000"
func FormatCurrency(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return "$" + humanize.Commaf(r)
}

// FormatIndex formats a performance index the way the report prints it:
// whole values keep one decimal ("1.0"), others print their shortest form ("0.75").
func FormatIndex(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%.1f", v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// IndexHealth classifies a performance index: 1 means on target,
// above is ahead, below is behind.
func IndexHealth(v float64) string {
	switch {
	case v >= 1:
		return "on track"
	case v >= 0.9:
		return "slipping"
	default:
		return "behind"
	}
}
