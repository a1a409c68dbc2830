// Package interpreter walks a Void program tree against a lexically
// nested environment stack, producing stdout lines, stdin reads, and a
// dynamic value.
package interpreter

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/runtime"
)

// RuntimeError covers every evaluation-time failure: unknown identifier,
// redefinition, type mismatch, divide by zero, out-of-range index,
// missing dict key, unknown builtin, wrong arity, non-numeric coercion
// failure, rand misuse, and iteration-ceiling overrun.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError: %s", e.Message)
}

func runtimeErr(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// maxLoopIterations bounds while/for execution as a denial-of-service
// guard, per spec.
const maxLoopIterations = 1_000_000

// Prompter is the blocking collaborator write(...) reads from: a single
// line of input, already stripped of its trailing newline.
type Prompter func() (string, error)

// Interpreter holds the output sink and input collaborator the evaluator
// needs; it owns no other external resources.
type Interpreter struct {
	Out    io.Writer
	Prompt Prompter
	rng    *rand.Rand
}

// New creates an Interpreter writing to out and reading prompts via
// readLine. seed fixes the random source for deterministic runs (tests
// pass a fixed seed; production callers may seed from time).
func New(out io.Writer, readLine Prompter, seed int64) *Interpreter {
	return &Interpreter{Out: out, Prompt: readLine, rng: rand.New(rand.NewSource(seed))}
}

// Run executes a parsed program's sole Main form in a fresh global
// environment. It does not print any header/footer decoration — that is
// cmd/void's job, so that stripping ANSI from captured output leaves only
// program-visible text.
func (interp *Interpreter) Run(prog *ast.Program) error {
	global := runtime.NewEnvironment(nil)
	for _, top := range prog.Body {
		main, ok := top.(*ast.Main)
		if !ok {
			continue
		}
		if err := interp.execBlockIn(main.Body, global); err != nil {
			return err
		}
	}
	return nil
}
