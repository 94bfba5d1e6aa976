package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxBarWidth = 18
	minBarGap   = 2
)

// eighths are the partial-cell glyphs used for the top of a bar.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders a vertical bar chart of a few categories over a y-axis.
// Each category gets an equal slot with its bar centered and its label
// underneath. Bar i is drawn in colors[i%len(colors)]; with no colors the
// accent is used. Areas too small for an axis fall back to one row per bar.
func BarChart(values []float64, labels []string, colors []lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if len(colors) == 0 {
		colors = []lipgloss.Color{theme.Active.Accent}
	}
	if width < 15 || height < 3 {
		return compactBars(values, labels, colors)
	}

	t := theme.Active
	ax := newAxis(values, height)

	yLabelW := max(len(axisLabel(ax.ceiling))+1, 4)
	n := len(values)
	slotW := max((width-yLabelW-1)/n, 3)
	barW := min(slotW-minBarGap, maxBarWidth)
	if barW < 1 {
		barW = 1
	}
	plotW := slotW * n

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := ax.rows; row >= 1; row-- {
		top := ax.ceiling * float64(row) / float64(ax.rows)
		bottom := ax.ceiling * float64(row-1) / float64(ax.rows)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, ax.tickAt(row))))
		for i, v := range values {
			left := (slotW - barW) / 2
			right := slotW - barW - left
			cell := barCell(v, top, bottom)
			style := lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Background(t.Surface)

			b.WriteString(blank.Render(strings.Repeat(" ", left)))
			b.WriteString(style.Render(strings.Repeat(string(cell), barW)))
			b.WriteString(blank.Render(strings.Repeat(" ", right)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", plotW))))

	if len(labels) == n {
		var row strings.Builder
		for _, lbl := range labels {
			row.WriteString(centerIn(lbl, slotW))
		}
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(row.String(), " ")))
	}

	return b.String()
}

// barCell returns the glyph a bar of value v shows in the row [bottom, top].
func barCell(v, top, bottom float64) rune {
	switch {
	case v >= top:
		return eighths[8]
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		return eighths[min(max(idx, 1), 8)]
	default:
		return ' '
	}
}

// centerIn centers s in a field of width w, truncating it to leave one
// column of separation.
func centerIn(s string, w int) string {
	if len(s) > w-1 {
		s = s[:max(w-1, 0)]
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

// compactBars lists each bar on its own row as a colored block, its label and
// its value.
func compactBars(values []float64, labels []string, colors []lipgloss.Color) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	rows := make([]string, len(values))
	for i, v := range values {
		label := strconv.Itoa(i + 1)
		if i < len(labels) {
			label = labels[i]
		}
		block := lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Background(t.Surface).Render("█")
		rows[i] = block + textStyle.Render(" "+label+" "+axisLabel(v))
	}
	return strings.Join(rows, "\n")
}

// axis is the y scale of a chart: a round ceiling split into ticks, each
// tick spanning rowsPerTick rows.
type axis struct {
	ceiling     float64
	step        float64
	ticks       int
	rowsPerTick int
	rows        int
}

func newAxis(values []float64, height int) axis {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	step := chartTickStep(peak)
	maxTicks := max(height/2, 2)
	for math.Ceil(peak/step) > float64(maxTicks) {
		step *= 2
	}

	ticks := max(int(math.Ceil(peak/step)), 1)
	rowsPerTick := max(height/ticks, 2)
	return axis{
		ceiling:     float64(ticks) * step,
		step:        step,
		ticks:       ticks,
		rowsPerTick: rowsPerTick,
		rows:        rowsPerTick * ticks,
	}
}

// tickAt returns the y label for row, or "" between ticks.
func (a axis) tickAt(row int) string {
	if row%a.rowsPerTick != 0 {
		return ""
	}
	return axisLabel(a.step * float64(row/a.rowsPerTick))
}

// chartTickStep picks a 1/2/5 x 10^k interval giving about five ticks.
func chartTickStep(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	rough := peak / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))

	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// axisLabel abbreviates v with a k/M/B suffix and at most one decimal.
func axisLabel(v float64) string {
	units := []struct {
		size   float64
		suffix string
	}{{1e9, "B"}, {1e6, "M"}, {1e3, "k"}}

	for _, u := range units {
		if v >= u.size {
			return strconv.FormatFloat(math.Round(v/u.size*10)/10, 'f', -1, 64) + u.suffix
		}
	}
	if v >= 1 {
		return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
