package fuzzprop

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/calvinalkan/fuzzprop/internal/afl"
	"github.com/calvinalkan/fuzzprop/internal/artifact"
	"github.com/calvinalkan/fuzzprop/internal/replay"

	flag "github.com/spf13/pflag"
)

// Exit codes RunHarness returns. OutcomeFail and OutcomeCrash are not
// reported through a returned code: RunHarness writes the failure to
// errOut and then panics, aborting the process, so ExitFail is never
// returned by RunHarness itself. Skip is a small, nonzero value disjoint
// from ExitFail, by the convention
// spec.md §6 asks for: "a small nonzero value chosen to be disjoint
// from 'fail' and reserved by the fuzzer collaborator for 'skip'".
const (
	ExitPass  = 0
	ExitSkip  = 77
	ExitFail  = 1
	ExitUsage = 2
)

// RunHarness is the Harness Loop's entry point (spec.md §4.5, §6): it
// parses the flags a thin CLI wrapper would expose, resolves which
// registered test to run, and drives the fuzzer-integration contract
// for either a single classic execution or an AFL-style persistent-mode
// session. Its signature mirrors internal/cli/run.go's Run(stdin, out,
// errOut, args, env, sigCh) int.
func RunHarness(in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	flags := flag.NewFlagSet("fuzzcheck", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)

	flagList := flags.Bool("list", false, "list registered tests and exit")
	flagTest := flags.StringP("test", "t", "", "name of the registered test to run")
	flagPersistent := flags.Bool("persistent", false, "speak AFL-style persistent-mode framing on stdin")
	flagConfig := flags.StringP("config", "c", "", "use the specified harness config file")
	flagCrashDir := flags.String("crash-dir", "", "directory to save crash artifacts to (single-shot mode)")
	flagReplay := flags.Bool("replay", false, "start an interactive replay REPL instead of reading stdin")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return ExitUsage
	}

	workDir := env["PWD"]
	if workDir == "" {
		workDir = "."
	}

	cfg, err := LoadHarnessConfig(workDir, *flagConfig, env)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return ExitUsage
	}

	if *flagPersistent {
		cfg.Persistent = true
	}

	if *flagCrashDir != "" {
		cfg.CrashDir = *flagCrashDir
	}

	defaultRegistry.freeze()

	if *flagList {
		for _, name := range TestNames() {
			fmt.Fprintln(out, name)
		}

		return ExitPass
	}

	testName := *flagTest
	if testName == "" {
		testName = cfg.DefaultTest
	}

	entry, ok := resolveTest(testName)
	if !ok {
		fmt.Fprintln(errOut, "error:", unresolvedTestMessage(testName))
		return ExitUsage
	}

	if *flagReplay {
		repl := replay.New(harnessRunner{entry: entry}, entry.name, out)
		if err := repl.Run(); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return ExitUsage
		}

		return ExitPass
	}

	if cfg.Persistent {
		return runPersistent(in, out, errOut, entry, cfg)
	}

	return runSingleShot(in, errOut, entry, cfg)
}

func resolveTest(name string) (testEntry, bool) {
	if name != "" {
		return defaultRegistry.byName(name)
	}

	names := TestNames()
	if len(names) == 1 {
		return defaultRegistry.byName(names[0])
	}

	return testEntry{}, false
}

func unresolvedTestMessage(requested string) string {
	names := TestNames()
	sort.Strings(names)

	if requested == "" {
		return fmt.Sprintf("no test specified and registry has %d tests; pass -test, one of: %s",
			len(names), strings.Join(names, ", "))
	}

	return fmt.Sprintf("no registered test named %q; registered tests: %s", requested, strings.Join(names, ", "))
}

// runSingleShot reads the whole input once, runs the test once, and
// reports the outcome via its process exit code - the classic
// (non-persistent) AFL/libFuzzer-compatible invocation shape.
func runSingleShot(in io.Reader, errOut io.Writer, entry testEntry, cfg HarnessConfig) int {
	buf, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(errOut, "error: reading input:", err)
		return ExitUsage
	}

	result := runBuffer(entry, buf)

	switch result.Outcome {
	case OutcomePass:
		return ExitPass
	case OutcomeInvalid:
		return ExitSkip
	default: // OutcomeFail, OutcomeCrash
		reportFailure(errOut, entry.name, result, buf, cfg.CrashDir)
		panic(fmt.Sprintf("fuzzprop: %s: %s: %s", result.Outcome, entry.name, result.Message))
	}
}

// runPersistent speaks the persistent-mode protocol in internal/afl:
// one readiness handshake, then one buffer per loop iteration served
// from the control channel's framing on stdin, for as long as the
// forkserver shim keeps the channel open. An OutcomeFail/OutcomeCrash outcome aborts
// the whole process (so the forkserver relaunches a fresh child);
// OutcomeInvalid is the dedicated skip path and simply continues the loop.
func runPersistent(in io.Reader, out, errOut io.Writer, entry testEntry, cfg HarnessConfig) int {
	if afl.Available() {
		if err := afl.Handshake(); err != nil {
			fmt.Fprintln(errOut, "error: afl handshake:", err)
			return ExitUsage
		}
	}

	var iterations int

	err := afl.Loop(in, func(buf []byte) bool {
		iterations++

		result := runBuffer(entry, buf)

		switch result.Outcome {
		case OutcomePass, OutcomeInvalid:
			return true
		default: // OutcomeFail, OutcomeCrash
			reportFailure(errOut, entry.name, result, buf, "")
			panic(fmt.Sprintf("fuzzprop: %s: %s: %s", result.Outcome, entry.name, result.Message))
		}
	})
	if err != nil && err != afl.ErrStopped {
		fmt.Fprintln(errOut, "error: persistent loop:", err)
		return ExitUsage
	}

	fmt.Fprintf(out, "fuzzprop: %d iterations served\n", iterations)

	return ExitPass
}

func runBuffer(entry testEntry, buf []byte) Result {
	return entry.run(NewSource(buf))
}

func reportFailure(errOut io.Writer, testName string, result Result, buf []byte, crashDir string) {
	fmt.Fprintf(errOut, "FAIL %s: %s\n", testName, result.Message)

	if crashDir == "" {
		return
	}

	path, err := artifact.Save(crashDir, testName, buf)
	if err != nil {
		fmt.Fprintln(errOut, "warning: could not save crash artifact:", err)
		return
	}

	fmt.Fprintln(errOut, "crash artifact saved to", path)
}

// harnessRunner adapts a single testEntry to internal/replay.Runner.
type harnessRunner struct {
	entry testEntry
}

func (h harnessRunner) Run(testName string, buf []byte) (string, error) {
	result := runBuffer(h.entry, buf)
	return fmt.Sprintf("%s: %s", result.Outcome, result.Message), nil
}
