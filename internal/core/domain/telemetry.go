package domain

// PassStatus represents the lifecycle state of one computation pass over a grid.
type PassStatus string

const (
	// PassStatusPending indicates parameters were accepted but no column was computed yet.
	PassStatusPending PassStatus = "pending"
	// PassStatusRunning indicates the pass has computed some but not all columns.
	PassStatusRunning PassStatus = "running"
	// PassStatusCompleted indicates every cell of the grid is available.
	PassStatusCompleted PassStatus = "completed"
	// PassStatusFailed indicates the pass was halted by an error.
	PassStatusFailed PassStatus = "failed"
	// PassStatusCached indicates every cell was served from the cache.
	PassStatusCached PassStatus = "cached"
	// PassStatusSuperseded indicates newer parameters replaced the pass before it finished.
	PassStatusSuperseded PassStatus = "superseded"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// IsTerminal reports whether no further columns will be computed for the pass.
func (s PassStatus) IsTerminal() bool {
	switch s {
	case PassStatusCompleted, PassStatusFailed, PassStatusCached, PassStatusSuperseded:
		return true
	default:
		return false
	}
}
