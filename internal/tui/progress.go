package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/featsweep/featsweep/internal/core"
)

// ========================================
// Bubbletea Progress Model
// ========================================

// progressModel is a bubbletea model for rendering quiet-mode sweep progress
type progressModel struct {
	current int
	total   int
	label   string
	message string
	done    bool
	failed  bool
	err     error
	width   int
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case progressIncrementMsg:
		m.current++
		m.message = msg.message
	case progressCompleteMsg:
		m.done = true
		return m, tea.Quit
	case progressFailMsg:
		m.failed = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return styleSuccess.Render(fmt.Sprintf("✔ %s (completed: %d/%d)", m.label, m.current, m.total))
	}

	if m.failed {
		return styleErr.Render(fmt.Sprintf("✖ %s (failed: %v)", m.label, m.err))
	}

	// Render progress bar
	percent := float64(m.current) / float64(m.total)
	barWidth := 40
	if m.width < 80 {
		barWidth = 20
	}
	filled := int(percent * float64(barWidth))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	status := fmt.Sprintf("[%s] %d/%d", bar, m.current, m.total)
	if m.message != "" {
		status += fmt.Sprintf(" - %s", m.message)
	}

	return fmt.Sprintf("%s\n%s", styleTitle.Render(m.label), status)
}

// ========================================
// Bubbletea Messages
// ========================================

type progressIncrementMsg struct {
	message string
}

type progressCompleteMsg struct{}

type progressFailMsg struct {
	err error
}

// ========================================
// SweepProgressTracker Implementation
// ========================================

// SweepProgressTracker renders per-flag progress with bubbletea during
// quiet-mode sweeps, where child output is captured instead of streamed.
type SweepProgressTracker struct {
	program *tea.Program
}

// NewSweepProgressTracker creates a tracker for total flags.
func NewSweepProgressTracker(total int, label string) *SweepProgressTracker {
	m := progressModel{
		current: 0,
		total:   total,
		label:   label,
		width:   80,
	}

	p := tea.NewProgram(m)

	tracker := &SweepProgressTracker{
		program: p,
	}

	// Start program in background
	go func() {
		_, _ = p.Run()
	}()

	return tracker
}

// Increment advances the bar by one flag.
func (t *SweepProgressTracker) Increment(message string) {
	t.program.Send(progressIncrementMsg{message: message})
}

// Complete marks the sweep finished and stops the program.
func (t *SweepProgressTracker) Complete() {
	t.program.Send(progressCompleteMsg{})
	t.program.Wait()
}

// Fail marks the sweep failed and stops the program.
func (t *SweepProgressTracker) Fail(err error) {
	t.program.Send(progressFailMsg{err: err})
	t.program.Wait()
}

// ========================================
// Text Progress (Non-TTY)
// ========================================

// TextProgressTracker provides simple text-based progress
type TextProgressTracker struct {
	current int
	total   int
	label   string
}

// NewTextProgressTracker creates a new text progress tracker
func NewTextProgressTracker(total int, label string) *TextProgressTracker {
	fmt.Printf("Starting: %s (0/%d)\n", label, total)
	return &TextProgressTracker{
		current: 0,
		total:   total,
		label:   label,
	}
}

// Increment updates progress with a message.
func (t *TextProgressTracker) Increment(message string) {
	t.current++
	msg := fmt.Sprintf("  [%d/%d]", t.current, t.total)
	if message != "" {
		msg += " " + message
	}
	fmt.Println(msg)
}

// Complete marks the sweep as complete.
func (t *TextProgressTracker) Complete() {
	fmt.Printf("✔ %s: Completed (%d/%d)\n", t.label, t.current, t.total)
}

// Fail marks the sweep as failed with an error.
func (t *TextProgressTracker) Fail(err error) {
	fmt.Printf("✖ %s: Failed - %v\n", t.label, err)
}

// ========================================
// No-Op Progress (JSON/Testing)
// ========================================

// NoOpProgressTracker does nothing (for JSON/testing modes)
type NoOpProgressTracker struct{}

// NewNoOpProgressTracker creates a new no-op progress tracker
func NewNoOpProgressTracker() *NoOpProgressTracker {
	return &NoOpProgressTracker{}
}

// Increment does nothing (no-op implementation).
func (t *NoOpProgressTracker) Increment(_ string) {}

// Complete does nothing (no-op implementation).
func (t *NoOpProgressTracker) Complete() {}

// Fail does nothing (no-op implementation).
func (t *NoOpProgressTracker) Fail(_ error) {}

// NewProgressTracker picks the bubbletea tracker on a TTY and the plain
// text tracker everywhere else (CI logs, piped output).
func NewProgressTracker(total int, label string) core.ProgressTracker {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return NewSweepProgressTracker(total, label)
	}
	return NewTextProgressTracker(total, label)
}
