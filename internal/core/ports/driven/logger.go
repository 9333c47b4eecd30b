package driven

// Fields is structured context attached to a log entry.
type Fields map[string]any

// Logger emits leveled developer-facing log entries.
// Entries written here are never shown to end users.
type Logger interface {
	// Debug logs detail that is only useful while diagnosing.
	Debug(msg string, fields Fields)

	// Info logs progress.
	Info(msg string, fields Fields)

	// Warn logs a recoverable problem.
	Warn(msg string, fields Fields)

	// Error logs a failure together with its underlying error.
	Error(msg string, err error, fields Fields)

	// With returns a logger that adds fields to every entry.
	With(fields Fields) Logger
}

// NopLogger discards everything.
type NopLogger struct{}

// Ensure NopLogger implements the interface.
var _ Logger = NopLogger{}

func (NopLogger) Debug(string, Fields)        {}
func (NopLogger) Info(string, Fields)         {}
func (NopLogger) Warn(string, Fields)         {}
func (NopLogger) Error(string, error, Fields) {}
func (n NopLogger) With(Fields) Logger        { return n }
