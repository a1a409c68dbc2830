package parser

import (
	"strconv"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/token"
)

// parseExpression is the entry point, starting at the lowest precedence
// level (||).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.match(token.Or)
		if !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(ast.OpOr, left, right, posOf(tok))
	}
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.match(token.And)
		if !ok {
			return left, nil
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(ast.OpAnd, left, right, posOf(tok))
	}
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		var tok token.Token
		var ok bool
		if tok, ok = p.match(token.Eq); ok {
			op = ast.OpEq
		} else if tok, ok = p.match(token.NotEq); ok {
			op = ast.OpNotEq
		} else {
			return left, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right, posOf(tok))
	}
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		var tok token.Token
		var ok bool
		if tok, ok = p.match(token.LtEq); ok {
			op = ast.OpLtEq
		} else if tok, ok = p.match(token.GtEq); ok {
			op = ast.OpGtEq
		} else if tok, ok = p.match(token.Lt); ok {
			op = ast.OpLt
		} else if tok, ok = p.match(token.Gt); ok {
			op = ast.OpGt
		} else {
			return left, nil
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right, posOf(tok))
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		var tok token.Token
		var ok bool
		if tok, ok = p.match(token.Plus); ok {
			op = ast.OpAdd
		} else if tok, ok = p.match(token.Minus); ok {
			op = ast.OpSub
		} else {
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right, posOf(tok))
	}
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		var tok token.Token
		var ok bool
		if tok, ok = p.match(token.Star); ok {
			op = ast.OpMul
		} else if tok, ok = p.match(token.Slash); ok {
			op = ast.OpDiv
		} else if tok, ok = p.match(token.Percent); ok {
			op = ast.OpMod
		} else {
			return left, nil
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right, posOf(tok))
	}
}

// parsePower is right-associative: 2 ** 3 ** 2 == 2 ** (3 ** 2).
func (p *Parser) parsePower() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.match(token.StarStar); ok {
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.OpPow, left, right, posOf(tok)), nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if tok, ok := p.match(token.Minus); ok {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.OpNeg, x, posOf(tok)), nil
	}
	if tok, ok := p.match(token.Not); ok {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.OpNot, x, posOf(tok)), nil
	}
	return p.parsePostfix()
}

// parsePostfix handles chained `[ expr ]` indexing on any primary.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.match(token.LBracket)
		if !ok {
			return expr, nil
		}
		idx, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		expr = ast.NewIndexAccess(expr, idx, posOf(tok))
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Int:
		p.advance()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, newErr(tok, "invalid integer literal %q", tok.Lexeme)
		}
		return ast.NewIntLiteral(v, posOf(tok)), nil

	case token.Float:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, newErr(tok, "invalid float literal %q", tok.Lexeme)
		}
		return ast.NewFloatLiteral(v, posOf(tok)), nil

	case token.String:
		p.advance()
		return ast.NewStringLiteral(tok.Lexeme, posOf(tok)), nil

	case token.Bool:
		p.advance()
		return ast.NewBoolLiteral(tok.Lexeme == "true", posOf(tok)), nil

	case token.LBracket:
		return p.parseListLiteral()

	case token.LBrace:
		return p.parseDictLiteral()

	case token.LParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case token.Write:
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		prompt, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.NewWrite(prompt, posOf(tok)), nil

	case token.Rand:
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		min, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Comma); err != nil {
			return nil, err
		}
		max, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.NewRandCall(min, max, posOf(tok)), nil

	case token.Ident:
		p.advance()
		if p.check(token.LParen) {
			return p.parseCallArgs(tok)
		}
		return ast.NewIdentifier(tok.Lexeme, posOf(tok)), nil

	default:
		return nil, newErr(tok, "unexpected token %s %q in expression", tok.Kind, tok.Lexeme)
	}
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	start := p.advance() // [
	var elems []ast.Expression
	if !p.check(token.RBracket) {
		for {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, expr)
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return ast.NewListLiteral(elems, posOf(start)), nil
}

func (p *Parser) parseDictLiteral() (ast.Expression, error) {
	start := p.advance() // {
	var entries []ast.DictEntry
	if !p.check(token.RBrace) {
		for {
			key, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.DictEntry{Key: key, Value: value})
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return ast.NewDictLiteral(entries, posOf(start)), nil
}
