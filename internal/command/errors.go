// Package command implements the bot's command table: parsing raw input,
// the per-command handlers, and the boundary that converts recoverable
// failures into user-facing text.
package command

import (
	"errors"
	"fmt"
)

// OperationalError indicates a handler's argument validation or business
// rule check failed. It is recoverable: the boundary converts it to text
// and the bot keeps running.
type OperationalError struct {
	Reason string
}

func (e *OperationalError) Error() string {
	return e.Reason
}

// NotSupportedError indicates the parsed command name is absent from the
// command table. Recoverable, same as OperationalError.
type NotSupportedError struct {
	Command string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("command '%s' is not supported!", e.Command)
}

// StopSignal is not a failure: it unwinds the run loop for a clean
// shutdown, carrying the farewell message. It implements error so it can
// travel the handler return path, but it is never caught by the
// recoverable-error boundary; only the run loop matches it.
type StopSignal struct {
	Message string
}

func (e *StopSignal) Error() string {
	return e.Message
}

// ErrEmptyInput indicates a raw input line held no tokens at all. It is
// deliberately unclassified: the run loop treats it as fatal, matching
// the fail-fast policy for input the dispatcher cannot shape.
var ErrEmptyInput = errors.New("command: empty input line")

// recoverable reports whether err is one of the kinds the wrapping
// boundary converts to text rather than propagating.
func recoverable(err error) bool {
	var opErr *OperationalError
	var nsErr *NotSupportedError
	return errors.As(err, &opErr) || errors.As(err, &nsErr)
}
