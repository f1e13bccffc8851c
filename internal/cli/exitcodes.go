package cli

// Exit codes for the reqline CLI
const (
	// ExitSuccess indicates every line parsed
	ExitSuccess = 0

	// ExitParseError indicates at least one line was rejected
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
