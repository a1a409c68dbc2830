package lexer

import (
	"testing"

	"github.com/voidlang/void/pkg/token"
)

func kinds(t *testing.T, toks []token.Token) []token.Kind {
	t.Helper()
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", src, err)
	}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) kind count = %d, want %d (%v vs %v)", src, len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q) token %d kind = %s, want %s", src, i, got[i], want[i])
		}
	}
	return toks
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected exactly one EOF token, got %v", toks)
	}
}

func TestTokenizeDirectives(t *testing.T) {
	assertKinds(t, `@VoidApp @VoidEnd`, token.DirectiveApp, token.DirectiveEnd, token.EOF)
}

func TestTokenizeUnknownDirectiveFails(t *testing.T) {
	if _, err := Tokenize(`@Unknown`); err == nil {
		t.Fatalf("expected an error for an unknown directive")
	}
}

func TestTokenizeCreateCompound(t *testing.T) {
	toks := assertKinds(t, `create:int`, token.CreateType, token.TypeInt, token.EOF)
	if toks[0].Lexeme != "create:" {
		t.Fatalf("expected lexeme 'create:', got %q", toks[0].Lexeme)
	}
}

func TestTokenizeBareCreateIsNotSpecial(t *testing.T) {
	// "create" not immediately followed by ':' is a plain identifier.
	assertKinds(t, `create x`, token.Ident, token.Ident, token.EOF)
}

func TestTokenizeTwoCharOperatorsPreferredOverOneChar(t *testing.T) {
	assertKinds(t, `** == != <= >= && ||`,
		token.StarStar, token.Eq, token.NotEq, token.LtEq, token.GtEq, token.And, token.Or, token.EOF)
}

func TestTokenizeSingleCharOperators(t *testing.T) {
	assertKinds(t, `= + - * / % < > !`,
		token.Assign, token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Lt, token.Gt, token.Not, token.EOF)
}

func TestTokenizeIntLiteral(t *testing.T) {
	toks := assertKinds(t, `42`, token.Int, token.EOF)
	if toks[0].Lexeme != "42" {
		t.Fatalf("expected lexeme 42, got %q", toks[0].Lexeme)
	}
}

func TestTokenizeFloatLiteral(t *testing.T) {
	toks := assertKinds(t, `3.14`, token.Float, token.EOF)
	if toks[0].Lexeme != "3.14" {
		t.Fatalf("expected lexeme 3.14, got %q", toks[0].Lexeme)
	}
}

func TestTokenizeDotWithoutDigitIsNotFloat(t *testing.T) {
	// "5." with no following digit: the '.' is punctuation, not part of the number.
	assertKinds(t, `5.`, token.Int, token.Dot, token.EOF)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\\d\"e"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\tc\\d\"e"
	if toks[0].Lexeme != want {
		t.Fatalf("escapes: got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestTokenizeUnknownEscapeYieldsLiteralChar(t *testing.T) {
	toks, err := Tokenize(`"a\zb"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Lexeme != "azb" {
		t.Fatalf("expected azb, got %q", toks[0].Lexeme)
	}
}

func TestTokenizeUnterminatedStringFails(t *testing.T) {
	if _, err := Tokenize(`"abc`); err == nil {
		t.Fatalf("expected unterminated string error")
	}
}

func TestTokenizeSingleQuoteString(t *testing.T) {
	toks, err := Tokenize(`'hi'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.String || toks[0].Lexeme != "hi" {
		t.Fatalf("expected string token 'hi', got %v", toks[0])
	}
}

func TestTokenizeLineComment(t *testing.T) {
	assertKinds(t, "echo(1); // trailing comment\necho(2);",
		token.Echo, token.LParen, token.Int, token.RParen, token.Semi,
		token.Echo, token.LParen, token.Int, token.RParen, token.Semi, token.EOF)
}

func TestTokenizeBlockComment(t *testing.T) {
	assertKinds(t, "echo(#* skip me *#1);", token.Echo, token.LParen, token.Int, token.RParen, token.Semi, token.EOF)
}

func TestTokenizeUnterminatedBlockCommentFails(t *testing.T) {
	if _, err := Tokenize(`#* never closes`); err == nil {
		t.Fatalf("expected unterminated block comment error")
	}
}

func TestTokenizeUnexpectedCharacterFails(t *testing.T) {
	lerr := func() *LexError {
		_, err := Tokenize("`")
		le, ok := err.(*LexError)
		if !ok {
			t.Fatalf("expected *LexError, got %T (%v)", err, err)
		}
		return le
	}()
	if lerr.Line != 1 || lerr.Column != 1 {
		t.Fatalf("expected position 1:1, got %d:%d", lerr.Line, lerr.Column)
	}
}

func TestTokenizeLineColumnTrackingAcrossNewlines(t *testing.T) {
	toks, err := Tokenize("echo(1);\necho(2);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// second "echo" keyword token should be on line 2, column 1.
	var secondEcho token.Token
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.Echo {
			count++
			if count == 2 {
				secondEcho = tok
			}
		}
	}
	if secondEcho.Line != 2 || secondEcho.Column != 1 {
		t.Fatalf("expected second echo at 2:1, got %d:%d", secondEcho.Line, secondEcho.Column)
	}
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "using style main echo write if else while for rand add delete clear",
		token.Using, token.Style, token.Main, token.Echo, token.Write, token.If, token.Else,
		token.While, token.For, token.Rand, token.Add, token.Delete, token.Clear, token.EOF)
}

func TestTokenizeBoolLiterals(t *testing.T) {
	toks := assertKinds(t, "true false", token.Bool, token.Bool, token.EOF)
	if toks[0].Lexeme != "true" || toks[1].Lexeme != "false" {
		t.Fatalf("unexpected bool lexemes: %q %q", toks[0].Lexeme, toks[1].Lexeme)
	}
}
