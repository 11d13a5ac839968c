// Command fuzzcheck is a thin reference binary wiring process stdio and
// arguments into fuzzprop.RunHarness - the Harness Loop. examples.go
// registers a handful of dogfood tests so the binary runs out of the
// box; a real user deletes that file and registers their own tests with
// fuzzprop.AddTestN the same way, from this binary or their own.
package main

import (
	"os"
	"strings"

	"github.com/calvinalkan/fuzzprop"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	os.Exit(fuzzprop.RunHarness(os.Stdin, os.Stdout, os.Stderr, os.Args, env))
}
