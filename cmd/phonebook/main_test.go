package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/smileynet/phonebook/internal/bot"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

func TestCLI_VersionFlag(t *testing.T) {
	// Given a CLI parser with version metadata
	var cli CLI
	var buf bytes.Buffer
	versionStr := "v1.0.0 abc1234 2026-01-01T00:00:00Z"
	k, err := kong.New(&cli,
		kong.Vars{"version": versionStr},
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) { panic(errExitCalled) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// When --version is passed
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from --version flag")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, errExitCalled) {
			panic(r)
		}

		// Then version, commit, and date are all present in output
		output := buf.String()
		for _, want := range []string{"v1.0.0", "abc1234", "2026-01-01T00:00:00Z"} {
			if !strings.Contains(output, want) {
				t.Errorf("version output = %q, want to contain %q", output, want)
			}
		}
	}()

	k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
}

func TestCLI_RunIsDefaultCommand(t *testing.T) {
	var cli CLI
	k, err := kong.New(&cli, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := k.Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := ctx.Command(); got != "run" {
		t.Errorf("Command() = %q, want %q", got, "run")
	}
}

func TestCLI_RunFlags(t *testing.T) {
	var cli CLI
	k, err := kong.New(&cli, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = k.Parse([]string{"run", "--no-tui", "--prompt", "> "})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cli.Run.NoTUI {
		t.Error("NoTUI = false, want true")
	}
	if cli.Run.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cli.Run.Prompt, "> ")
	}
}

func TestLoadConfig_ExtraPathApplied(t *testing.T) {
	// Given an extra config file enabling plain mode
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  plain: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// When config is loaded with the extra path
	cfg, err := loadConfig(path)

	// Then the extra layer wins over defaults
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !cfg.UI.Plain {
		t.Error("plain = false, want true from extra layer")
	}
}

func TestSessionError_Unwrap(t *testing.T) {
	err := &sessionError{err: bot.ErrInputClosed}

	if !errors.Is(err, bot.ErrInputClosed) {
		t.Error("errors.Is() = false, want unwrap to inner error")
	}
	if err.Error() != bot.ErrInputClosed.Error() {
		t.Errorf("Error() = %q, want inner message", err.Error())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "clean stop", err: nil, want: exitSuccess},
		{name: "session failure", err: &sessionError{err: bot.ErrInputClosed}, want: exitFatal},
		{name: "setup failure", err: errors.New("run: config: parsing"), want: exitSetup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
