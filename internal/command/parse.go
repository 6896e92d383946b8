package command

import (
	"fmt"
	"strings"
)

// Parse splits a raw console line into a case-folded command name and its
// whitespace-separated arguments.
//
// For the stop commands (close, exit) any user-supplied arguments are
// discarded and replaced with a single synthetic farewell message, so the
// stop handler receives the text it should say goodbye with.
func Parse(line string) (string, []string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil, ErrEmptyInput
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	if cmd == "close" || cmd == "exit" {
		args = []string{fmt.Sprintf("Command '%s' received. Good buy!", cmd)}
	}

	return cmd, args, nil
}
