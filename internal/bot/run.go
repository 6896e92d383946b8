package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/smileynet/phonebook/internal/command"
)

// ErrInputClosed indicates the input stream ended before a stop command
// arrived. The loop cannot continue without input, so this counts as an
// unclassified (fatal) failure, like an interrupted console read.
var ErrInputClosed = errors.New("bot: input closed before a stop command")

// Run reads lines from in until a StopSignal unwinds the loop or an
// unclassified failure aborts it. Each iteration prints the prompt,
// handles one line, and prints either the framed reply or the
// recoverable failure text the command boundary produced.
//
// On StopSignal the farewell is printed and Run returns nil. On any
// other failure a diagnostic is printed and the error is returned for
// the caller to exit non-zero on.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *Session, prompt string) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			err := scanner.Err()
			if err == nil {
				err = ErrInputClosed
			} else {
				err = fmt.Errorf("bot: reading input: %w", err)
			}
			printFatal(out, err)
			return err
		}

		reply, err := s.HandleLine(scanner.Text())
		if err != nil {
			var stop *command.StopSignal
			if errors.As(err, &stop) {
				fmt.Fprintln(out, stop.Message)
				return nil
			}
			printFatal(out, err)
			return err
		}

		fmt.Fprintln(out, reply)
	}
}

// FatalMessage renders the diagnostic for an unclassified failure. Both
// the plain loop and the TUI print it right before terminating.
func FatalMessage(err error) string {
	return fmt.Sprintf("Unknown exception was encountered during execution: %v. The bot will stop ...", err)
}

// printFatal reports an unclassified failure before the loop aborts.
func printFatal(out io.Writer, err error) {
	fmt.Fprintln(out, FatalMessage(err))
}
