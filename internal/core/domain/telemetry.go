package domain

// LogLevel is the severity of a line written to a telemetry vertex.
type LogLevel int

const (
	// LogLevelInfo marks progress and summary lines.
	LogLevelInfo LogLevel = iota
	// LogLevelWarn marks build diagnostics and skipped work.
	LogLevelWarn
	// LogLevelError marks the failure of a transfer or build step.
	LogLevelError
)

// String returns the lower-case name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}
