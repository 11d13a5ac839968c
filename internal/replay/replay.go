// Package replay implements fuzzcheck's interactive REPL: a
// readline-style loop where a developer types a hex-encoded byte buffer
// and immediately sees the outcome of running it through a named test's
// generator tree and property, without a file round-trip.
//
// The loop itself is grounded directly on cmd/sloty/main.go's REPL:
// github.com/peterh/liner for prompt/history, a trimmed line matched
// whole against a few commands (anything else is decoded as hex), and a
// persistent history file under the user's home directory.
package replay

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// Runner is the subset of fuzzprop's registry this package needs,
// kept as an interface so replay does not import the root package, which
// itself imports replay (harness.go) and would form an import cycle.
type Runner interface {
	// Run decodes buf through the named test's generator tree, invokes
	// its property, and returns a human-readable outcome line.
	Run(testName string, buf []byte) (outcomeLine string, err error)
}

// REPL is the interactive session state.
type REPL struct {
	runner   Runner
	testName string
	out      io.Writer
	liner    *liner.State
}

// New builds a REPL bound to a single test name.
func New(runner Runner, testName string, out io.Writer) *REPL {
	return &REPL{runner: runner, testName: testName, out: out}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".fuzzcheck_history")
}

// Run starts the prompt loop; it returns when the user exits or stdin
// reaches EOF.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprintf(r.out, "fuzzcheck replay - test %q\n", r.testName)
	fmt.Fprintln(r.out, "Type a hex-encoded byte buffer, or 'help'/'exit'.")

	for {
		line, err := r.liner.Prompt("fuzzcheck> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Fprintln(r.out, "bye")
				return nil
			}

			return fmt.Errorf("replay: reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			r.saveHistory()
			return nil
		case "help", "?":
			fmt.Fprintln(r.out, "commands: <hex bytes>, help, exit")
			continue
		}

		buf, err := hex.DecodeString(strings.ReplaceAll(line, " ", ""))
		if err != nil {
			fmt.Fprintf(r.out, "invalid hex: %v\n", err)
			continue
		}

		outcomeLine, err := r.runner.Run(r.testName, buf)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}

		fmt.Fprintln(r.out, outcomeLine)
	}
}

func (r *REPL) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = r.liner.WriteHistory(f)
}
