package ddmin

import "fmt"

// ContractViolationError reports a fatal breach of the oracle, Splitter, or
// Indexer contract documented in the package doc. These are programmer
// errors, not recoverable run-time conditions, so DDMIN panics with one
// rather than returning it — mirroring the bare `assert` the algorithm this
// package implements uses for the same purpose.
type ContractViolationError struct {
	// Kind names which contract was violated: "oracle", "splitter", or
	// "iterator".
	Kind string
	// ConfigID is the test in progress when the violation was detected,
	// if any.
	ConfigID ConfigID
	Message  string
}

func (e *ContractViolationError) Error() string {
	if len(e.ConfigID) == 0 {
		return fmt.Sprintf("ddmin: %s contract violated: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("ddmin: %s contract violated at [%s]: %s", e.Kind, e.ConfigID, e.Message)
}

// violate panics with a *ContractViolationError describing the breach.
func violate(kind string, id ConfigID, format string, args ...any) {
	panic(&ContractViolationError{Kind: kind, ConfigID: id, Message: fmt.Sprintf(format, args...)})
}
