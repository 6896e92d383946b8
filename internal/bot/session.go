// Package bot wires the contact book and command table into a session and
// drives it from a line-in/line-out loop.
package bot

import (
	"fmt"

	"github.com/smileynet/phonebook/internal/command"
	"github.com/smileynet/phonebook/internal/contact"
)

// Session owns the per-run state: one contact book and the immutable
// command table. The book lives exactly as long as the session and is
// never persisted.
type Session struct {
	book     *contact.Book
	registry *command.Registry
}

// NewSession creates a Session with an empty contact book.
func NewSession() *Session {
	return &Session{
		book:     contact.NewBook(),
		registry: command.NewRegistry(),
	}
}

// Reply is the successful outcome of one handled input line.
type Reply struct {
	Command string
	Output  string
}

// String renders the reply in the success frame printed after each
// command.
func (r Reply) String() string {
	return fmt.Sprintf("Command '%s' executed successfully. Result is:\n%s", r.Command, r.Output)
}

// HandleLine performs one loop iteration's worth of work: parse the raw
// line, execute the command, and return the framed reply. A StopSignal
// or an unclassified failure is returned as an error for the caller to
// unwind on.
func (s *Session) HandleLine(line string) (Reply, error) {
	cmd, args, err := command.Parse(line)
	if err != nil {
		return Reply{}, err
	}

	out, err := s.registry.Execute(s.book, cmd, args)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: cmd, Output: out}, nil
}

// Commands returns the supported command names in sorted order.
func (s *Session) Commands() []string {
	return s.registry.Commands()
}
