package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeVoidFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

func TestRunHelloWorld(t *testing.T) {
	dir := t.TempDir()
	path := writeVoidFile(t, dir, "hello.void", `@VoidApp "H"; main(){ echo("Hello"); } @VoidEnd;`)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Hello") {
		t.Fatalf("expected stdout to contain Hello, got %q", stdout.String())
	}
}

func TestRunRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeVoidFile(t, dir, "hello.txt", `@VoidApp "H"; main(){ echo("Hello"); }`)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr, strings.NewReader(""))
	if code == 0 {
		t.Fatalf("expected non-zero exit for wrong extension")
	}
}

func TestRunRejectsMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.void")}, &stdout, &stderr, strings.NewReader(""))
	if code == 0 {
		t.Fatalf("expected non-zero exit for missing file")
	}
}

func TestRunRuntimeErrorExitsNonZeroWithoutFooter(t *testing.T) {
	dir := t.TempDir()
	path := writeVoidFile(t, dir, "bad.void", `@VoidApp "H"; main(){ create:int x = 1/0; } @VoidEnd;`)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr, strings.NewReader(""))
	if code == 0 {
		t.Fatalf("expected non-zero exit for a runtime error")
	}
	if !strings.Contains(stderr.String(), "RuntimeError") {
		t.Fatalf("expected a RuntimeError diagnostic, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "Конец") {
		t.Fatalf("footer must not be printed after a fatal error, got %q", stdout.String())
	}
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("expected exit 0 for --version, got %d", code)
	}
	if !strings.Contains(stdout.String(), "void") {
		t.Fatalf("expected version string in stdout, got %q", stdout.String())
	}
}

func TestRunSubcommand(t *testing.T) {
	dir := t.TempDir()
	path := writeVoidFile(t, dir, "sum.void", `@VoidApp "Sum"; main(){ create:int s = 0; for(create:int i = 1; i <= 5; i = i + 1){ s = s + i; } echo(s); }`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"run", path}, &stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "15") {
		t.Fatalf("expected stdout to contain 15, got %q", stdout.String())
	}
}

func TestRunWriteReadsFromStdin(t *testing.T) {
	dir := t.TempDir()
	path := writeVoidFile(t, dir, "ask.void", `@VoidApp "Ask"; main(){ create:string name = write("name? "); echo(name); }`)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr, strings.NewReader("Ada\n"))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Ada") {
		t.Fatalf("expected stdout to echo the input Ada, got %q", stdout.String())
	}
}
