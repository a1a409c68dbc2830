// Command void runs a single Void source file end-to-end: lex, parse,
// evaluate, with header/footer/error decoration applied only at this
// layer so that program-visible echo/write output stays byte-stable.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin))
}

// run builds and executes the cobra command tree against args, returning
// the process exit code. Split out from main for testability, in the
// teacher's os.Exit(run(args)) style.
func run(args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	root := newRootCmd(stdout, stderr, stdin)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
