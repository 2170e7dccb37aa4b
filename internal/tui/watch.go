// Package tui provides the live statistics view. It re-reads the watched
// input on a timer, recomputes the full report, and renders it with the
// same styling the one-shot commands use.
package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/byteskew/internal/input"
	"github.com/mwiater/byteskew/internal/render"
)

// reportMsg is sent when a fresh report has been computed.
type reportMsg struct{ report render.Report }

// reportErr is sent when reading or computing fails.
type reportErr error

// tickMsg triggers the next re-read of the watched input.
type tickMsg time.Time

// model is the Bubble Tea model for the watch view.
type model struct {
	// Path of the watched input file.
	path string
	// Interval between re-reads.
	interval time.Duration
	// Decimal places used when rendering statistics.
	precision int

	// Most recently computed report.
	report render.Report
	// Whether at least one report has been computed.
	hasReport bool
	// Indicates a read/compute is in flight.
	isLoading bool
	// Stores any error from the last read.
	err error

	// Bubble Tea spinner shown while loading.
	spinner spinner.Model
	// Current terminal dimensions.
	width, height int
}

// initialModel builds the watch model with its spinner configured the way
// the rest of the application styles loading states.
func initialModel(path string, interval time.Duration, precision int) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		path:      path,
		interval:  interval,
		precision: precision,
		isLoading: true,
		spinner:   s,
	}
}

// readReportCmd reads the watched file and computes a report off the UI
// loop, delivering either a reportMsg or a reportErr.
func readReportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := input.ReadSequence(path)
		if err != nil {
			return reportErr(err)
		}
		r, ok := render.BuildReport(data)
		if !ok {
			return reportErr(errors.New("input is empty, nothing to compute"))
		}
		return reportMsg{report: r}
	}
}

// tickCmd schedules the next refresh.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the spinner, the first read, and the refresh timer.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, readReportCmd(m.path), tickCmd(m.interval))
}

// Update handles incoming messages and advances the watch state.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case reportMsg:
		m.report = msg.report
		m.hasReport = true
		m.isLoading = false
		m.err = nil
		return m, nil

	case reportErr:
		m.isLoading = false
		m.err = msg
		return m, nil

	case tickMsg:
		m.isLoading = true
		return m, tea.Batch(m.spinner.Tick, readReportCmd(m.path), tickCmd(m.interval))
	}

	if m.isLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current report, an error, or the initial loading state.
func (m *model) View() string {
	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	help := lipgloss.NewStyle().Faint(true).Render(" (q to quit)")

	var builder strings.Builder
	builder.WriteString(headerStyle.Render(fmt.Sprintf("Watching: %s", m.path)) + help + "\n\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		builder.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		return builder.String()
	}

	if !m.hasReport {
		builder.WriteString(fmt.Sprintf("  %s Reading %s...\n", m.spinner.View(), m.path))
		return builder.String()
	}

	builder.WriteString(render.Summary(m.report, m.precision))
	if m.isLoading {
		builder.WriteString("\n" + m.spinner.View() + " refreshing...")
	}
	return builder.String()
}

// StartWatch runs the live statistics view for the file at path until the
// user quits. It logs diagnostics to debug.log while the alternate screen
// is active.
func StartWatch(path string, interval time.Duration, precision int) error {
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Printf("could not open log file: %v", err)
	} else {
		defer f.Close()
	}

	m := initialModel(path, interval, precision)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
