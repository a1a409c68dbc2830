// Package parser is a recursive-descent parser that turns a Void token
// stream into a Program tree.
package parser

import (
	"fmt"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/token"
)

// ParseError carries the line/column of the offending token along with a
// description of what was expected.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: %s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func newErr(tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Line: tok.Line, Column: tok.Column}
}

// Parser consumes a fixed token slice and builds a Program.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a Parser over toks, which must end with exactly one EOF
// token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses a full program and returns its tree.
func Parse(toks []token.Token) (*ast.Program, error) {
	return New(toks).parseProgram()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) match(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, newErr(p.cur(), "expected %s but found %s %q", k, p.cur().Kind, p.cur().Lexeme)
}

func posOf(tok token.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

//-----------------------------------------------------------------------------
// Top level
//-----------------------------------------------------------------------------

func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.cur()

	if _, err := p.expect(token.DirectiveApp); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	style := ""
	hasStyle := false
	if _, ok := p.match(token.Using); ok {
		if _, err := p.expect(token.Style); err != nil {
			return nil, err
		}
		styleTok, err := p.expect(token.String)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		style = styleTok.Lexeme
		hasStyle = true
	}

	var body []ast.TopLevel
	for !p.check(token.DirectiveEnd) && !p.check(token.EOF) {
		top, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		body = append(body, top)
	}

	if _, ok := p.match(token.DirectiveEnd); ok {
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}

	if !p.check(token.EOF) {
		return nil, newErr(p.cur(), "unexpected trailing token %s %q after program end", p.cur().Kind, p.cur().Lexeme)
	}

	return ast.NewProgram(nameTok.Lexeme, style, hasStyle, body, posOf(start)), nil
}

func (p *Parser) parseTopLevel() (ast.TopLevel, error) {
	if !p.check(token.Main) {
		return nil, newErr(p.cur(), "expected top-level form 'main' but found %s %q", p.cur().Kind, p.cur().Lexeme)
	}
	start := p.advance()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewMain(body, posOf(start)), nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return ast.NewBlock(stmts, posOf(start)), nil
}
