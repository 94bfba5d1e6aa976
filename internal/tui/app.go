// Package tui provides the interactive Bubble Tea dashboard for pdash.
package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/report"
	"github.com/theirongolddev/pdash/internal/tui/components"
	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ExportDoneMsg is sent when a PDF export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

const (
	tabOverview = iota
	tabRisks
)

// App is the root Bubble Tea model.
type App struct {
	// Current submission and everything derived from it
	inputs  model.ProjectInputs
	view    report.View
	calcErr error

	// Input form (huh), shown on start and on `i`
	form     *huh.Form
	formVals *formValues
	editing  bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Export state
	exportDir string
	exporting bool
	spinner   spinner.Model

	// Status bar message
	status    string
	statusErr bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model prefilled with in. The input form is
// shown first; exports are written to exportDir.
func NewApp(in model.ProjectInputs, exportDir string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		inputs:    in,
		exportDir: exportDir,
		spinner:   sp,
	}
	a.recompute()
	if a.calcErr != nil {
		a.setStatus(a.calcErr.Error(), true)
	}
	a.openForm()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// recompute derives the report from the current inputs. Nothing is carried
// over from the previous report.
func (a *App) recompute() {
	a.view, a.calcErr = report.Generate(a.inputs)
}

func (a *App) openForm() {
	a.formVals = newFormValues(a.inputs)
	a.form = newInputForm(a.formVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	a.editing = true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.editing || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The input form intercepts all keys while open
		if a.editing && a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "i":
			a.openForm()
			return a, a.form.Init()
		case "e":
			if a.exporting {
				return a, nil
			}
			if a.calcErr != nil {
				a.setStatus("nothing to export: "+a.calcErr.Error(), true)
				return a, nil
			}
			a.exporting = true
			a.status = ""
			return a, tea.Batch(a.spinner.Tick, exportCmd(a.exportDir, a.view))
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case ExportDoneMsg:
		a.exporting = false
		if msg.Err != nil {
			a.setStatus("export failed: "+msg.Err.Error(), true)
		} else {
			a.setStatus("saved "+msg.Path, false)
		}
		return a, nil

	case spinner.TickMsg:
		if a.exporting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.editing && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm()
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}

	return a, cmd
}

// submitForm replaces the inputs with the form values and recomputes the
// report. Values the form could not parse leave the previous inputs in place.
func (a *App) submitForm() {
	in, err := a.formVals.inputs(a.inputs)
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.inputs = in
	a.recompute()
	if a.calcErr != nil {
		a.setStatus(a.calcErr.Error(), true)
		return
	}
	a.setStatus("report updated", false)
}

func (a *App) closeForm() {
	a.form = nil
	a.formVals = nil
	a.editing = false
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.editing && a.form != nil {
		return a.viewForm()
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("◈ Project Risk & Performance Dashboard"))
	b.WriteString("\n  ")
	b.WriteString(subStyle.Render("Monitor budget, schedule, and risks."))
	b.WriteString("\n\n")
	b.WriteString(a.form.View())
	return b.String()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pdash needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o r", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"i", "Edit project inputs"},
		{"e", "Export PDF report"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Exports go to %s", filepath.Join(a.exportDir, report.FileName))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + project title
	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true).
		Width(w).
		Padding(0, 1)

	title := "Project Report: " + a.inputs.Name
	if a.view.Title != "" {
		title = a.view.Title
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" + titleStyle.Render(title)

	// 2. Status bar
	status := a.status
	if a.exporting {
		status = a.spinner.View() + " exporting " + report.FileName
	}
	statusBar := components.RenderStatusBar(w, status, a.statusErr && !a.exporting)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch {
	case a.calcErr != nil:
		content = a.renderError(cw)
	case a.activeTab == tabRisks:
		content = a.renderRisksTab(cw)
	default:
		content = a.renderOverviewTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines, fill background
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderError(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := errStyle.Render(a.calcErr.Error())
	if errors.Is(a.calcErr, metrics.ErrZeroBudget) {
		body += "\n" + hintStyle.Render("Set a budget above zero or clear the spent amount.")
	}
	body += "\n\n" + hintStyle.Render("Press i to edit the inputs.")
	return components.ContentCard("Cannot compute report", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func exportCmd(dir string, v report.View) tea.Cmd {
	return func() tea.Msg {
		path, err := report.ExportPDF(filepath.Join(dir, report.FileName), v)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
