// Package driver glues the lexer, parser, and preprocessing together for a
// single Void source file, in the spirit of the teacher's pkg/driver
// Loader (which aggregated multi-file able packages into one Program).
// Void has no module system, so the whole job collapses to one file in,
// one *ast.Program out.
package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/lexer"
	"github.com/voidlang/void/pkg/parser"
)

// EndMarker is the end-of-program directive the driver truncates source
// at, per spec.md §6. The parser also tolerates a trailing `@VoidEnd;` of
// its own, so truncated-away and left-in-place markers are both legal
// input to Parse.
const EndMarker = "@VoidEnd;"

// RequiredExt is the source file extension the CLI front end enforces.
const RequiredExt = ".void"

// Truncate cuts src at the first occurrence of EndMarker, inclusive of the
// marker itself being dropped. Source with no marker passes through
// unchanged.
func Truncate(src string) string {
	if idx := strings.Index(src, EndMarker); idx >= 0 {
		return src[:idx]
	}
	return src
}

// ParseSource truncates, lexes, and parses src, returning the resulting
// program tree or the first lex/parse error encountered.
func ParseSource(src string) (*ast.Program, error) {
	truncated := Truncate(src)
	tokens, err := lexer.Tokenize(truncated)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Load reads path from disk and parses it as a Void program.
func Load(path string) (*ast.Program, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseSource(string(raw))
}
