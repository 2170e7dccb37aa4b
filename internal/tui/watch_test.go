package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/byteskew/internal/render"
)

func TestWatch_StateTransitions_And_View(t *testing.T) {
	m := initialModel("seq.bin", time.Second, 2)

	// Set a window size so View() renders
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if !m.isLoading || m.hasReport {
		t.Fatalf("expected initial loading state; loading=%v hasReport=%v", m.isLoading, m.hasReport)
	}
	if !strings.Contains(m.View(), "Reading seq.bin") {
		t.Fatalf("expected loading view, got:\n%s", m.View())
	}

	// Deliver a computed report
	m2, _ := m.Update(reportMsg{report: render.Report{Count: 5, Mean: 3, Median: 0, StdDev: 4, Skew: 2.25}})
	m = m2.(*model)
	if m.isLoading || !m.hasReport {
		t.Fatalf("expected settled report state; loading=%v hasReport=%v", m.isLoading, m.hasReport)
	}
	for _, want := range []string{"Watching: seq.bin", "Mean", "2.25"} {
		if !strings.Contains(m.View(), want) {
			t.Fatalf("report view missing %q:\n%s", want, m.View())
		}
	}

	// A tick kicks off the next refresh
	m2, cmd := m.Update(tickMsg(time.Now()))
	m = m2.(*model)
	if !m.isLoading || cmd == nil {
		t.Fatalf("expected refresh in flight after tick; loading=%v cmd=%v", m.isLoading, cmd)
	}

	// Errors replace the report view
	m2, _ = m.Update(reportErr(errors.New("boom")))
	m = m2.(*model)
	if !strings.Contains(m.View(), "Error: boom") {
		t.Fatalf("expected error view, got:\n%s", m.View())
	}

	// q quits
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
}

func TestReadReportCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seq.bin")
	if err := os.WriteFile(path, []byte{0, 0, 0, 5, 10}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	msg := readReportCmd(path)()
	rep, ok := msg.(reportMsg)
	if !ok {
		t.Fatalf("expected reportMsg, got %T: %v", msg, msg)
	}
	if rep.report.Count != 5 || rep.report.Mean != 3 {
		t.Fatalf("unexpected report %+v", rep.report)
	}

	// Empty file surfaces as an error message, not a zeroed report.
	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, ok := readReportCmd(empty)().(reportErr); !ok {
		t.Fatal("expected reportErr for empty input")
	}

	if _, ok := readReportCmd(filepath.Join(dir, "missing"))().(reportErr); !ok {
		t.Fatal("expected reportErr for missing file")
	}
}
