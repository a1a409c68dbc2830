package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/voidlang/void/pkg/lexer"
	"github.com/voidlang/void/pkg/parser"
)

func runProgram(t *testing.T, src string, stdin string) (string, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	lines := strings.Split(stdin, "\n")
	idx := 0
	prompt := func() (string, error) {
		if idx >= len(lines) {
			return "", nil
		}
		line := lines[idx]
		idx++
		return line, nil
	}
	interp := New(&out, prompt, 1)
	err = interp.Run(prog)
	return out.String(), err
}

func TestHelloWorld(t *testing.T) {
	out, err := runProgram(t, `@VoidApp "H"; main(){ echo("Hello, World!"); }`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello, World!\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestArithmeticPrecedenceAndRightAssociativePower(t *testing.T) {
	out, err := runProgram(t, `@VoidApp "H"; main(){ echo(1 + 2 * 3); echo(2 ** 3 ** 2); }`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "7\n512\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestForLoopSum(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:int s = 0;
		for (create:int i = 1; i <= 5; i = i + 1) { s = s + i; }
		echo(s);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("got %q, want 15", out)
	}
}

func TestListAddDeleteClearAndStringify(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:list L = [1, 2, 3];
		L.add:list(4);
		echo(L);
		L.delete:list(0);
		echo(L);
		L.clear:list();
		echo(L);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[1, 2, 3, 4]\n[2, 3, 4]\n[]\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDictAddDeleteClearAndKeyUniqueness(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:dict D = {};
		D.add:dict("a":1);
		D.add:dict("b":2);
		D.add:dict("a":99);
		echo(D);
		D.delete:dict("b");
		echo(D);
		D.clear:dict();
		echo(D);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "a" is re-set in place (not duplicated), keeping its original
	// position ahead of "b".
	want := "{a:99, b:2}\n{a:99}\n{}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestStringNegativeIndexing(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:string s = "hello";
		echo(s[-1]);
		echo(s[0]);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "o\nh\n" {
		t.Fatalf("got %q, want o then h", out)
	}
}

func TestDivideByZeroIsRuntimeError(t *testing.T) {
	src := `@VoidApp "H"; main(){ create:int x = 1 / 0; }`
	_, err := runProgram(t, src, "")
	if err == nil {
		t.Fatalf("expected a runtime error for division by zero")
	}
	if !strings.Contains(err.Error(), "RuntimeError") {
		t.Fatalf("expected a RuntimeError, got %v", err)
	}
}

func TestScopeDisciplineBlockLocalsDoNotLeak(t *testing.T) {
	src := `@VoidApp "H"; main(){
		if (true) { create:int x = 1; }
		echo(x);
	}`
	_, err := runProgram(t, src, "")
	if err == nil {
		t.Fatalf("expected undefined-variable error after block scope ends")
	}
}

func TestReferenceSharingBetweenListBindings(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:list L = [1, 2];
		create:list M = L;
		M.add:list(3);
		echo(L);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[1, 2, 3]\n" {
		t.Fatalf("expected aliased list mutation visible through L, got %q", out)
	}
}

func TestIndexAssignRoundTrip(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:list L = [1, 2, 3];
		L[1] = 99;
		echo(L);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[1, 99, 3]\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStringifyScalarInjectivity(t *testing.T) {
	cases := map[string]string{
		`echo(1);`:     "1",
		`echo(1.5);`:   "1.5",
		`echo(true);`:  "true",
		`echo(false);`: "false",
		`echo("x");`:   "x",
	}
	for stmt, want := range cases {
		out, err := runProgram(t, `@VoidApp "H"; main(){ `+stmt+` }`, "")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", stmt, err)
		}
		if strings.TrimSuffix(out, "\n") != want {
			t.Fatalf("stmt %q: got %q, want %q", stmt, out, want)
		}
	}
}

func TestWriteReadsAPromptedLineFromStdin(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:string name = write("name? ");
		echo(name);
	}`
	out, err := runProgram(t, src, "Ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Ada") {
		t.Fatalf("expected echoed input Ada, got %q", out)
	}
}

func TestWhileLoopIterationCeilingTrips(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:int i = 0;
		while (true) { i = i + 1; }
	}`
	_, err := runProgram(t, src, "")
	if err == nil {
		t.Fatalf("expected the iteration ceiling to trip on an infinite loop")
	}
	if !strings.Contains(err.Error(), "exceeded") {
		t.Fatalf("expected an iteration-ceiling error, got %v", err)
	}
}

func TestElseIfChainSelectsCorrectBranch(t *testing.T) {
	src := `@VoidApp "H"; main(){
		create:int x = 2;
		if (x == 1) { echo("one"); } else if (x == 2) { echo("two"); } else { echo("other"); }
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "two\n" {
		t.Fatalf("got %q, want two", out)
	}
}

func TestBuiltinFunctions(t *testing.T) {
	src := `@VoidApp "H"; main(){
		echo(abs(-5));
		echo(length("hello"));
		echo(upper("hi"));
		echo(toString(42));
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "5\n5\nHI\n42\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestArithmeticCoercesStringAndBoolOperands(t *testing.T) {
	src := `@VoidApp "H"; main(){
		echo(5 - "2");
		echo(true * 3);
		echo("6" / 2);
	}`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n3\n3\n" {
		t.Fatalf("got %q, want 3/3/3", out)
	}
}

func TestToIntYieldsZeroOnNonIntegerString(t *testing.T) {
	src := `@VoidApp "H"; main(){ echo(toInt("3.7")); }`
	out, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n" {
		t.Fatalf("got %q, want 0", out)
	}
}
