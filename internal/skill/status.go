package skill

// Status is the closed result type of a dispatch. Exactly one Status is
// produced per dispatch call. The numeric values are internal; callers
// compare against the named constants.
type Status int

const (
	// StatusRunning means the skill has started but not yet reached a
	// terminal state. Only the tick engine produces it; a direct
	// Execute always returns a terminal status.
	StatusRunning Status = iota

	// StatusSuccess is a recognized skill completing successfully.
	StatusSuccess

	// StatusFailure is a recognized skill completing unsuccessfully.
	// This is a normal business outcome, not a dispatch fault.
	StatusFailure

	// StatusError is a dispatch-level fault, reserved for cases like an
	// unknown skill name or an interrupted simulated wait.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the status ends a skill's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure || s == StatusError
}

// Retryable reports whether an orchestrator's retry policy should apply.
// ERROR is a dispatch fault and may be retried; FAILURE is the skill's
// own outcome and retrying it would just replay the same result.
func (s Status) Retryable() bool {
	return s == StatusError
}
