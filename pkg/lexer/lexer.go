// Package lexer turns Void source text into a token stream.
package lexer

import (
	"fmt"
	"strings"

	"github.com/voidlang/void/pkg/token"
)

// LexError is returned for any unexpected character, unterminated string,
// unterminated block comment, or unknown directive. It carries the
// 1-based line/column of the offending rune.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LexerError: %s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func newErr(line, col int, format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

// Lexer is a single-pass, single-use scanner over source text.
type Lexer struct {
	src    string
	pos    int // byte offset of current rune
	line   int
	column int
}

// New creates a Lexer over src. Line/column start at 1.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, column: 1}
}

// Tokenize scans the whole input, returning every token up to and
// including exactly one EOF marker, or the first lex error encountered.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	var out []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEnd() {
		ch := l.peekByte()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekByteAt(1) == '/':
			for !l.atEnd() && l.peekByte() != '\n' {
				l.advance()
			}
		case ch == '#' && l.peekByteAt(1) == '*':
			startLine, startCol := l.line, l.column
			l.advance()
			l.advance()
			closed := false
			for !l.atEnd() {
				if l.peekByte() == '*' && l.peekByteAt(1) == '#' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return newErr(startLine, startCol, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// Next scans and returns the next token.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	if l.atEnd() {
		return token.Token{Kind: token.EOF, Line: l.line, Column: l.column}, nil
	}

	line, col := l.line, l.column
	ch := l.peekByte()

	switch {
	case ch == '"' || ch == '\'':
		return l.readString(ch)
	case isDigit(ch):
		return l.readNumber()
	case isIdentStart(ch):
		return l.readIdentOrKeyword()
	case ch == '@':
		return l.readDirective()
	}

	// Two-character operators take priority over their one-character prefix.
	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "**":
		l.advance()
		l.advance()
		return token.Token{Kind: token.StarStar, Lexeme: "**", Line: line, Column: col}, nil
	case "==":
		l.advance()
		l.advance()
		return token.Token{Kind: token.Eq, Lexeme: "==", Line: line, Column: col}, nil
	case "!=":
		l.advance()
		l.advance()
		return token.Token{Kind: token.NotEq, Lexeme: "!=", Line: line, Column: col}, nil
	case "<=":
		l.advance()
		l.advance()
		return token.Token{Kind: token.LtEq, Lexeme: "<=", Line: line, Column: col}, nil
	case ">=":
		l.advance()
		l.advance()
		return token.Token{Kind: token.GtEq, Lexeme: ">=", Line: line, Column: col}, nil
	case "&&":
		l.advance()
		l.advance()
		return token.Token{Kind: token.And, Lexeme: "&&", Line: line, Column: col}, nil
	case "||":
		l.advance()
		l.advance()
		return token.Token{Kind: token.Or, Lexeme: "||", Line: line, Column: col}, nil
	}

	single, ok := singleCharKinds[ch]
	if !ok {
		l.advance()
		return token.Token{}, newErr(line, col, "unexpected character %q", string(ch))
	}
	l.advance()
	return token.Token{Kind: single, Lexeme: string(ch), Line: line, Column: col}, nil
}

var singleCharKinds = map[byte]token.Kind{
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'<': token.Lt,
	'>': token.Gt,
	'!': token.Not,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semi,
	',': token.Comma,
	':': token.Colon,
	'.': token.Dot,
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

func (l *Lexer) readString(quote byte) (token.Token, error) {
	line, col := l.line, l.column
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.atEnd() {
			return token.Token{}, newErr(line, col, "unterminated string literal")
		}
		ch := l.peekByte()
		if ch == quote {
			l.advance()
			return token.Token{Kind: token.String, Lexeme: b.String(), Line: line, Column: col}, nil
		}
		if ch == '\\' {
			l.advance()
			if l.atEnd() {
				return token.Token{}, newErr(line, col, "unterminated string literal")
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			default:
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(l.advance())
	}
}

func (l *Lexer) readNumber() (token.Token, error) {
	line, col := l.line, l.column
	start := l.pos
	for !l.atEnd() && isDigit(l.peekByte()) {
		l.advance()
	}
	if !l.atEnd() && l.peekByte() == '.' && isDigit(l.peekByteAt(1)) {
		l.advance() // '.'
		for !l.atEnd() && isDigit(l.peekByte()) {
			l.advance()
		}
		return token.Token{Kind: token.Float, Lexeme: l.src[start:l.pos], Line: line, Column: col}, nil
	}
	return token.Token{Kind: token.Int, Lexeme: l.src[start:l.pos], Line: line, Column: col}, nil
}

func (l *Lexer) readIdentOrKeyword() (token.Token, error) {
	line, col := l.line, l.column
	start := l.pos
	for !l.atEnd() && isIdentPart(l.peekByte()) {
		l.advance()
	}
	word := l.src[start:l.pos]

	if word == "create" && l.peekByte() == ':' {
		l.advance()
		return token.Token{Kind: token.CreateType, Lexeme: "create:", Line: line, Column: col}, nil
	}

	if kind, ok := token.Keywords[word]; ok {
		return token.Token{Kind: kind, Lexeme: word, Line: line, Column: col}, nil
	}
	return token.Token{Kind: token.Ident, Lexeme: word, Line: line, Column: col}, nil
}

func (l *Lexer) readDirective() (token.Token, error) {
	line, col := l.line, l.column
	start := l.pos
	l.advance() // '@'
	for !l.atEnd() && isIdentPart(l.peekByte()) {
		l.advance()
	}
	word := l.src[start:l.pos]
	switch word {
	case "@VoidApp":
		return token.Token{Kind: token.DirectiveApp, Lexeme: word, Line: line, Column: col}, nil
	case "@VoidEnd":
		return token.Token{Kind: token.DirectiveEnd, Lexeme: word, Line: line, Column: col}, nil
	default:
		return token.Token{}, newErr(line, col, "unknown directive %q", word)
	}
}
