package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	progressStyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	progressStyleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// ========================================
// Bubbletea Progress Model
// ========================================

// progressModel renders the position of a verification batch
type progressModel struct {
	current int
	total   int
	label   string
	message string
	done    bool
	failed  bool
	paused  bool
	err     error
	width   int
	started time.Time
	elapsed time.Duration
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
	case progressSetTotalMsg:
		m.total = msg.total
	case progressCompleteMsg:
		m.done = true
		m.elapsed = time.Since(m.started)
		return m, tea.Quit
	case progressPauseMsg:
		m.paused = true
		return m, tea.Quit
	case progressFailMsg:
		m.failed = true
		m.err = msg.err
		m.elapsed = time.Since(m.started)
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return progressStyleSuccess.Render(fmt.Sprintf("✓ %s (%d/%d in %s)", m.label, m.current, m.total, m.elapsed.Round(time.Second)))
	}

	if m.failed {
		return progressStyleErr.Render(fmt.Sprintf("✗ %s (%d/%d: %v)", m.label, m.current, m.total, m.err))
	}

	// One line stays behind while another program owns the terminal.
	if m.paused {
		return fmt.Sprintf("%s %d/%d", progressStyleTitle.Render(m.label), m.current, m.total)
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}
	if percent > 1 {
		percent = 1
	}
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

	return fmt.Sprintf("%s\n%s", progressStyleTitle.Render(m.label), status)
}

// ========================================
// Bubbletea Messages
// ========================================

type progressIncrementMsg struct {
	message string
}

type progressSetTotalMsg struct {
	total int
}

type progressCompleteMsg struct{}

type progressPauseMsg struct{}

type progressFailMsg struct {
	err error
}

// ========================================
// BubbleteaProgressTracker Implementation
// ========================================

// BubbleteaProgressTracker draws a progress bar on the terminal. Pause ends
// the running program so a prompt can take the terminal; Resume starts a
// new one from the same position.
type BubbleteaProgressTracker struct {
	mu      sync.Mutex
	out     io.Writer
	state   progressModel // mirrors the model inside program
	program *tea.Program  // nil while paused
	done    chan struct{}
}

// NewBubbleteaProgressTracker creates a new bubbletea progress tracker.
// The program does not read stdin so confirmation prompts keep working.
func NewBubbleteaProgressTracker(total int, label string) *BubbleteaProgressTracker {
	return newBubbleteaProgressTracker(os.Stdout, total, label)
}

func newBubbleteaProgressTracker(out io.Writer, total int, label string) *BubbleteaProgressTracker {
	t := &BubbleteaProgressTracker{
		out: out,
		state: progressModel{
			total:   total,
			label:   label,
			width:   80,
			started: time.Now(),
		},
	}
	t.start()
	return t
}

// start runs a program for the current state. Callers hold mu.
func (t *BubbleteaProgressTracker) start() {
	p := tea.NewProgram(t.state, tea.WithInput(nil), tea.WithOutput(t.out))
	done := make(chan struct{})
	t.program = p
	t.done = done

	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
}

// send applies msg to the mirrored state and to the program, restarting a
// paused program first. Callers hold mu.
func (t *BubbleteaProgressTracker) send(msg tea.Msg) {
	if t.finished() {
		return
	}
	if t.program == nil {
		t.state.paused = false
		t.start()
	}
	next, _ := t.state.Update(msg)
	t.state = next.(progressModel)
	t.program.Send(msg)
}

func (t *BubbleteaProgressTracker) finished() bool {
	return t.state.done || t.state.failed
}

// Increment updates progress with a message.
func (t *BubbleteaProgressTracker) Increment(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(progressIncrementMsg{message: message})
}

// SetTotal sets the total count for the progress tracker.
func (t *BubbleteaProgressTracker) SetTotal(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(progressSetTotalMsg{total: total})
}

// Complete marks the batch as complete and waits for the final render.
func (t *BubbleteaProgressTracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(progressCompleteMsg{})
	t.wait()
}

// Fail marks the batch as failed and waits for the final render.
func (t *BubbleteaProgressTracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(progressFailMsg{err: err})
	t.wait()
}

// Pause stops drawing and returns once the program has released the
// terminal. It does nothing when already paused or finished.
func (t *BubbleteaProgressTracker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.program == nil || t.finished() {
		return
	}
	t.state.paused = true
	t.program.Send(progressPauseMsg{})
	t.wait()
	t.program = nil
}

// Resume redraws a paused bar. The next Increment resumes implicitly.
func (t *BubbleteaProgressTracker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.program != nil || t.finished() {
		return
	}
	t.state.paused = false
	t.start()
}

// wait blocks until the current program exits, giving up after a second.
// Callers hold mu.
func (t *BubbleteaProgressTracker) wait() {
	select {
	case <-t.done:
	case <-time.After(time.Second):
	}
}

// ========================================
// Text Progress (Non-TTY)
// ========================================

// TextProgressTracker prints one line per artifact
type TextProgressTracker struct {
	mu      sync.Mutex
	w       io.Writer
	current int
	total   int
	label   string
}

// NewTextProgressTracker creates a text progress tracker writing to stdout
func NewTextProgressTracker(total int, label string) *TextProgressTracker {
	return newTextProgressTracker(os.Stdout, total, label)
}

func newTextProgressTracker(w io.Writer, total int, label string) *TextProgressTracker {
	_, _ = fmt.Fprintf(w, "Starting: %s (0/%d)\n", label, total)
	return &TextProgressTracker{
		w:     w,
		total: total,
		label: label,
	}
}

// Increment updates progress with a message.
func (t *TextProgressTracker) Increment(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	msg := fmt.Sprintf("  [%d/%d]", t.current, t.total)
	if message != "" {
		msg += " " + message
	}
	_, _ = fmt.Fprintln(t.w, msg)
}

// SetTotal sets the total count for the progress tracker.
func (t *TextProgressTracker) SetTotal(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = total
}

// Complete marks the operation as complete.
func (t *TextProgressTracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, "✓ %s: Completed (%d/%d)\n", t.label, t.current, t.total)
}

// Fail marks the operation as failed with an error.
func (t *TextProgressTracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, "✗ %s: Failed - %v\n", t.label, err)
}

// ========================================
// No-Op Progress (Quiet/JSON)
// ========================================

// NoOpProgressTracker does nothing (for quiet/JSON/testing modes)
type NoOpProgressTracker struct{}

// NewNoOpProgressTracker creates a new no-op progress tracker
func NewNoOpProgressTracker() *NoOpProgressTracker {
	return &NoOpProgressTracker{}
}

// Increment does nothing (no-op implementation).
func (t *NoOpProgressTracker) Increment(_ string) {}

// SetTotal does nothing (no-op implementation).
func (t *NoOpProgressTracker) SetTotal(_ int) {}

// Complete does nothing (no-op implementation).
func (t *NoOpProgressTracker) Complete() {}

// Fail does nothing (no-op implementation).
func (t *NoOpProgressTracker) Fail(_ error) {}
