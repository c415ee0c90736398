package core

// UICallback handles user interaction during verification runs
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string
	StartProgress(total int, label string) ProgressTracker

	GetOutputMode() OutputMode
	IsAutoApprove() bool
	FormatJSON(output JSONOutput) error
}

// ProgressTracker reports batch progress to the user.
type ProgressTracker interface {
	Increment(message string)
	SetTotal(total int)
	Complete()
	Fail(err error)
}

// SilentUICallback is a no-op implementation (for testing/CI)
type SilentUICallback struct{}

func (s *SilentUICallback) ShowError(title, message string)        {}
func (s *SilentUICallback) ShowSuccess(message string)             {}
func (s *SilentUICallback) ShowWarning(title, message string)      {}
func (s *SilentUICallback) AskConfirmation(title, msg string) bool { return false }
func (s *SilentUICallback) StyleTitle(title string) string         { return title }
func (s *SilentUICallback) GetOutputMode() OutputMode              { return OutputNormal }
func (s *SilentUICallback) IsAutoApprove() bool                    { return false }
func (s *SilentUICallback) FormatJSON(output JSONOutput) error     { return nil }

func (s *SilentUICallback) StartProgress(total int, label string) ProgressTracker {
	return noopProgress{}
}

type noopProgress struct{}

func (noopProgress) Increment(string) {}
func (noopProgress) SetTotal(int)     {}
func (noopProgress) Complete()        {}
func (noopProgress) Fail(error)       {}

// OutputMode selects how messages reach the user.
type OutputMode int

// Output modes.
const (
	OutputNormal OutputMode = iota // styled text
	OutputQuiet                    // errors only
	OutputJSON                     // one JSON object per message on stderr
)

// NonInteractiveFlags configures the callback used when stdout is not a
// terminal or a non-normal mode was requested.
type NonInteractiveFlags struct {
	Yes  bool // answer yes to every confirmation
	Mode OutputMode
}

// JSONOutput is a single message in OutputJSON mode.
type JSONOutput struct {
	Status  string                 `json:"status"` // "success", "error", "warning"
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *JSONError             `json:"error,omitempty"`
}

// JSONError is the error part of a JSONOutput.
type JSONError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
