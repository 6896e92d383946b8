package bot

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/smileynet/phonebook/internal/command"
)

const testPrompt = "Enter a command with arguments separated with a ' ' character: "

func runScript(t *testing.T, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader(script), &out, NewSession(), testPrompt)
	return out.String(), err
}

func TestRun_EndToEnd(t *testing.T) {
	// Given a scripted session adding two contacts and listing them
	script := "add alice 111\nadd bob 222\nall\nexit\n"

	// When the loop runs to completion
	out, err := runScript(t, script)

	// Then it stops cleanly
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// And both contacts are listed in insertion order
	aliceIdx := strings.Index(out, "User alice phone: 111")
	bobIdx := strings.Index(out, "User bob phone: 222")
	if aliceIdx < 0 || bobIdx < 0 {
		t.Fatalf("output missing contact lines:\n%s", out)
	}
	if aliceIdx > bobIdx {
		t.Errorf("alice listed after bob, want insertion order:\n%s", out)
	}

	// And the farewell is the last line
	if !strings.HasSuffix(out, "Command 'exit' received. Good buy!\n") {
		t.Errorf("output does not end with farewell:\n%s", out)
	}
}

func TestRun_SuccessFramePerCommand(t *testing.T) {
	out, err := runScript(t, "hello\nclose\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "Command 'hello' executed successfully. Result is:\nHow can I help you?\n"
	if !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

func TestRun_PromptEachIteration(t *testing.T) {
	out, err := runScript(t, "hello\nhello\nexit\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := strings.Count(out, testPrompt); got != 3 {
		t.Errorf("prompt printed %d times, want 3", got)
	}
}

func TestRun_RecoverableFailureKeepsLooping(t *testing.T) {
	// Given a script with a bad add, a recovery, and a stop
	script := "add bob\nadd bob 123\nexit\n"

	// When the loop runs
	out, err := runScript(t, script)

	// Then the arity failure is printed as text and the loop continues
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Command 'add' failed: command expects an input of two arguments") {
		t.Errorf("output missing failure text:\n%s", out)
	}
	if !strings.Contains(out, "Contact bob created with phone: 123.") {
		t.Errorf("output missing recovery confirmation:\n%s", out)
	}
}

func TestRun_UnsupportedCommandKeepsLooping(t *testing.T) {
	out, err := runScript(t, "foo\nexit\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Command execution failed: command 'foo' is not supported!") {
		t.Errorf("output missing not-supported text:\n%s", out)
	}
}

func TestRun_EmptyLineIsFatal(t *testing.T) {
	// Given a script whose first line is empty
	out, err := runScript(t, "\nhello\n")

	// Then the loop aborts with the unclassified diagnostic
	if !errors.Is(err, command.ErrEmptyInput) {
		t.Fatalf("Run() error = %v, want ErrEmptyInput", err)
	}
	if !strings.Contains(out, "Unknown exception was encountered during execution:") {
		t.Errorf("output missing fatal diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "The bot will stop ...") {
		t.Errorf("output missing stop notice:\n%s", out)
	}
	// The line after the fatal one must not have been handled.
	if strings.Contains(out, "How can I help you?") {
		t.Errorf("loop continued past fatal failure:\n%s", out)
	}
}

func TestRun_InputClosedIsFatal(t *testing.T) {
	// Given input that ends without a stop command
	out, err := runScript(t, "hello\n")

	// Then the loop aborts with ErrInputClosed and prints the diagnostic
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
	if !strings.Contains(out, "Unknown exception was encountered during execution:") {
		t.Errorf("output missing fatal diagnostic:\n%s", out)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("hello\nexit\n"), &out, NewSession(), testPrompt)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
