package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/tui/components"
	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRisksTab(cw int) string {
	t := theme.Active
	risks := a.view.Risks

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	highStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	lowStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	numW := 4
	sevW := 8
	descW := innerW - numW - sevW - 2
	if descW < 10 {
		descW = 10
	}

	title := fmt.Sprintf("Risk Register (%d, %d high)", len(risks), a.view.Report.HighRiskCount())

	if len(risks) == 0 {
		return components.ContentCard(title, dimStyle.Render("No risks recorded."), cw)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", numW, "#")))
	b.WriteString(spaceStyle.Render(" "))
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", descW, "Risk Description")))
	b.WriteString(spaceStyle.Render(" "))
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", sevW, "Severity")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))

	for i, r := range risks {
		sev := lowStyle
		if r.Severity == model.SeverityHigh {
			sev = highStyle
		}

		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-*d", numW, i+1)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(r.Description, descW))))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(sev.Render(fmt.Sprintf("%-*s", sevW, string(r.Severity))))
	}

	return components.ContentCard(title, b.String(), cw)
}
