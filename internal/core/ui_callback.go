package core

// UICallback decouples services from the terminal layer. The tui
// package provides interactive, non-interactive, and JSON
// implementations; tests inject fakes.
type UICallback interface {
	// ShowCommand echoes one fully-quoted command line before it runs,
	// visually distinguished from the tool's own output.
	ShowCommand(command string)
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	GetOutputMode() OutputMode
	FormatJSON(output JSONOutput) error
}

// SilentUICallback discards all output. Default for embedding the
// engine without a terminal, and convenient in tests.
type SilentUICallback struct{}

// ShowCommand implements UICallback
func (s *SilentUICallback) ShowCommand(string) {}

// ShowError implements UICallback
func (s *SilentUICallback) ShowError(string, string) {}

// ShowSuccess implements UICallback
func (s *SilentUICallback) ShowSuccess(string) {}

// ShowWarning implements UICallback
func (s *SilentUICallback) ShowWarning(string, string) {}

// AskConfirmation implements UICallback; silent mode never approves.
func (s *SilentUICallback) AskConfirmation(string, string) bool { return false }

// GetOutputMode implements UICallback
func (s *SilentUICallback) GetOutputMode() OutputMode { return OutputQuiet }

// FormatJSON implements UICallback
func (s *SilentUICallback) FormatJSON(JSONOutput) error { return nil }

// ProgressTracker receives per-flag progress during quiet-mode sweeps.
type ProgressTracker interface {
	Increment(message string)
	Complete()
	Fail(err error)
}
