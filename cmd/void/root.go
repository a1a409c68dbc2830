package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/voidlang/void/pkg/driver"
	"github.com/voidlang/void/pkg/interpreter"
	"github.com/voidlang/void/pkg/theme"
)

// versionString is printed by --version/-v.
const versionString = "void 0.1.0"

// newRootCmd builds the cobra command tree. stdout/stderr/stdin are
// threaded through explicitly (rather than read from the os package
// directly) so tests can run the CLI against buffers.
func newRootCmd(stdout, stderr io.Writer, stdin io.Reader) *cobra.Command {
	root := &cobra.Command{
		Use:           "void [path.void]",
		Short:         "Void — a small imperative scripting language interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				fmt.Fprintln(stdout, versionString)
				return nil
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFile(args[0], stdout, stderr, stdin)
		},
	}
	root.Flags().BoolP("version", "v", false, "print the version and exit")

	runCmd := &cobra.Command{
		Use:           "run <path.void>",
		Short:         "Run a .void program",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], stdout, stderr, stdin)
		},
	}
	root.AddCommand(runCmd)

	return root
}

// runFile loads, lexes, parses, and evaluates the program at path, writing
// header/footer/error decoration through the resolved style theme. It
// returns a non-nil error for exactly the cases spec.md §6 calls out:
// missing file, wrong extension, or any lexer/parser/runtime error.
func runFile(path string, stdout, stderr io.Writer, stdin io.Reader) error {
	if ext := filepath.Ext(path); ext != driver.RequiredExt {
		err := fmt.Errorf("%s: source file must have a %s extension", path, driver.RequiredExt)
		fmt.Fprintln(stderr, theme.ErrorLine(err.Error()))
		return err
	}

	prog, err := driver.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, theme.ErrorLine(err.Error()))
		return err
	}

	th := theme.Resolve(prog.Style)
	fmt.Fprintln(stdout, th.HeaderLine(prog.AppName))

	reader := bufio.NewReader(stdin)
	prompt := func() (string, error) {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	interp := interpreter.New(stdout, prompt, time.Now().UnixNano())
	if err := interp.Run(prog); err != nil {
		fmt.Fprintln(stderr, theme.ErrorLine(err.Error()))
		return err
	}

	fmt.Fprintln(stdout, th.FooterLine())
	return nil
}
