package command

import (
	"fmt"
	"sort"

	"github.com/smileynet/phonebook/internal/contact"
)

// Registry is the immutable command table, built once at startup. The
// validating handlers (add, change, phone) are registered pre-wrapped
// with their per-command failure labels, so their operational errors
// surface as text at the call site that owns the wording.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds the command table with all supported commands.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{
		"close":  stopBot,
		"exit":   stopBot,
		"hello":  sayHello,
		"add":    wrapRecoverable("Command 'add' failed", addContact),
		"change": wrapRecoverable("Command 'update' failed", changeContact),
		"phone":  wrapRecoverable("Command 'phone' failed", getContact),
		"all":    listContacts,
	}}
}

// Execute looks up cmd and invokes its handler against book. An unknown
// command surfaces as "Command execution failed: ..." text rather than an
// error; StopSignal and unclassified failures propagate to the run loop.
func (r *Registry) Execute(book *contact.Book, cmd string, args []string) (string, error) {
	out, err := r.dispatch(book, cmd, args)
	if err != nil && recoverable(err) {
		return fmt.Sprintf("Command execution failed: %s", err), nil
	}
	return out, err
}

func (r *Registry) dispatch(book *contact.Book, cmd string, args []string) (string, error) {
	h, ok := r.handlers[cmd]
	if !ok {
		return "", &NotSupportedError{Command: cmd}
	}
	return h(book, args)
}

// Commands returns the supported command names in sorted order.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
