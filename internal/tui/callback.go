package tui

import (
	"sync"

	"github.com/charmbracelet/huh"

	"github.com/EmundoT/repro-verify/internal/core"
)

// pausable is a progress display that can hand the terminal to another
// program for a while.
type pausable interface {
	Pause()
	Resume()
}

// TUICallback implements UICallback for interactive terminal use with styled output.
// While a batch runs, the progress bar is paused for every prompt and
// message so two programs never draw over each other.
//
//nolint:revive // Name TUICallback is intentional and descriptive
type TUICallback struct {
	mu       sync.Mutex
	progress pausable
	confirm  func(title, message string) (bool, error)
}

// NewTUICallback creates a new interactive terminal UI callback.
func NewTUICallback() *TUICallback {
	return &TUICallback{confirm: huhConfirm}
}

func huhConfirm(title, message string) (bool, error) {
	var confirm bool
	err := huh.NewConfirm().
		Title(title).
		Description(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()
	return confirm, err
}

// withTerminal runs fn with the progress bar, if any, paused.
func (t *TUICallback) withTerminal(fn func()) {
	t.mu.Lock()
	progress := t.progress
	t.mu.Unlock()

	if progress != nil {
		progress.Pause()
		defer progress.Resume()
	}
	fn()
}

// ShowError prints a styled error above the progress bar.
func (t *TUICallback) ShowError(title, message string) {
	t.withTerminal(func() { PrintError(title, message) })
}

// ShowSuccess prints a styled success line above the progress bar.
func (t *TUICallback) ShowSuccess(message string) {
	t.withTerminal(func() { PrintSuccess(message) })
}

// ShowWarning prints a styled warning above the progress bar.
func (t *TUICallback) ShowWarning(title, message string) {
	t.withTerminal(func() { PrintWarning(title, message) })
}

// AskConfirmation asks a yes/no question. Any prompt error counts as no.
func (t *TUICallback) AskConfirmation(title, message string) bool {
	var answer bool
	t.withTerminal(func() {
		ok, err := t.confirm(title, message)
		answer = ok && err == nil
	})
	return answer
}

// StyleTitle returns a styled title string for terminal output.
func (t *TUICallback) StyleTitle(title string) string {
	return StyleTitle(title)
}

// StartProgress shows a progress bar for a batch of total artifacts and
// remembers it so prompts can pause it.
func (t *TUICallback) StartProgress(total int, label string) core.ProgressTracker {
	if total == 0 {
		return NewNoOpProgressTracker()
	}
	tracker := NewBubbleteaProgressTracker(total, label)

	t.mu.Lock()
	t.progress = tracker
	t.mu.Unlock()
	return tracker
}

// GetOutputMode always reports OutputNormal.
func (t *TUICallback) GetOutputMode() core.OutputMode {
	return core.OutputNormal
}

// IsAutoApprove is false: an interactive user answers prompts.
func (t *TUICallback) IsAutoApprove() bool {
	return false
}

// FormatJSON is not used in interactive mode
func (t *TUICallback) FormatJSON(_ core.JSONOutput) error {
	return nil
}
