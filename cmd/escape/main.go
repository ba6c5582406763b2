// Command escape plans rescues through a station of timed corridors and
// computes absorption probabilities of absorbing Markov chains.
//
//	escape plan refund.yaml --route
//	escape plan unit.jsonc --time-limit 5 --output json
//	escape absorb fuel.yml
//
// Configuration is read from --config or $ESCAPE_CONFIG; flags override it.
// Set ESCAPE_DEBUG (or pass --verbose) for debug logs on stderr.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.errorPrinter().Error(err)
		return 1
	}

	return 0
}
