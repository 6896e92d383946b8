package command

import (
	"fmt"
	"strings"

	"github.com/smileynet/phonebook/internal/contact"
)

// Handler implements one command's behavior and validation. It receives
// the shared contact book and the parsed arguments, and returns the
// command output or a failure from the error taxonomy.
type Handler func(book *contact.Book, args []string) (string, error)

// wrapRecoverable bounds a handler so that OperationalError and
// NotSupportedError become display text of the form "<label>: <message>"
// instead of propagating. StopSignal and unclassified errors pass through
// untouched.
func wrapRecoverable(label string, h Handler) Handler {
	return func(book *contact.Book, args []string) (string, error) {
		out, err := h(book, args)
		if err != nil && recoverable(err) {
			return fmt.Sprintf("%s: %s", label, err), nil
		}
		return out, err
	}
}

// sayHello returns the greeting. Extra arguments are tolerated but called
// out with a warning line.
func sayHello(_ *contact.Book, args []string) (string, error) {
	return unexpectedArgsWarning(args) + "How can I help you?", nil
}

// addContact creates a contact from exactly two arguments: username and
// phone. Duplicate usernames are rejected and pointed at 'change'.
func addContact(book *contact.Book, args []string) (string, error) {
	if len(args) != 2 {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"command expects an input of two arguments: username and phone, separated by a space. Received: %s",
			strings.Join(args, " "))}
	}

	username, phone := args[0], args[1]
	if book.Contains(username) {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"user with username %s already exist. If you want to update number, please use 'change' command.",
			username)}
	}

	book.Set(username, phone)
	return fmt.Sprintf("Contact %s created with phone: %s.", username, phone), nil
}

// changeContact updates an existing contact's phone. Unknown usernames
// are rejected and pointed at 'add'.
func changeContact(book *contact.Book, args []string) (string, error) {
	if len(args) != 2 {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"command expects an input of two arguments: username and phone, separated by a space. Received: %s",
			strings.Join(args, " "))}
	}

	username, phone := args[0], args[1]
	if !book.Contains(username) {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"user with username %s doesn't exist. If you want to add number, please use 'add' command.",
			username)}
	}

	book.Set(username, phone)
	return fmt.Sprintf("Contact %s updated with phone: %s.", username, phone), nil
}

// getContact looks up one contact by username.
func getContact(book *contact.Book, args []string) (string, error) {
	if len(args) != 1 {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"command expects an input of one argument: username. Received: %s",
			strings.Join(args, " "))}
	}

	username := args[0]
	phone, ok := book.Get(username)
	if !ok {
		return "", &OperationalError{Reason: fmt.Sprintf(
			"user with username %s doesn't exist. Try another username.", username)}
	}

	return fmt.Sprintf("Record found: \n%s", formatUserPhone(username, phone)), nil
}

// listContacts renders every stored contact under a header, in insertion
// order. An empty book yields just the header. Extra arguments are
// tolerated but called out with a warning line.
func listContacts(book *contact.Book, args []string) (string, error) {
	var sb strings.Builder
	sb.WriteString(unexpectedArgsWarning(args))
	sb.WriteString("All Records: \n")
	for _, c := range book.Entries() {
		sb.WriteString("\n")
		sb.WriteString(formatUserPhone(c.Username, c.Phone))
	}
	return sb.String(), nil
}

// stopBot always fails with a StopSignal carrying the farewell message
// the parser synthesized. A missing message means the handler was invoked
// outside the parse path; that is a programming error and stays fatal.
func stopBot(_ *contact.Book, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("command: stop expects a single farewell message, got %d arguments", len(args))
	}
	return "", &StopSignal{Message: args[0]}
}

// unexpectedArgsWarning returns a warning line for commands that take no
// arguments, or "" when none were supplied.
func unexpectedArgsWarning(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprintf("Warning: Command doesn't expect any arguments. Received: %s\n",
		strings.Join(args, " "))
}

// formatUserPhone renders one contact as an output line.
func formatUserPhone(username, phone string) string {
	return fmt.Sprintf("User %s phone: %s", username, phone)
}
