package parser

import (
	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/token"
)

var typeNameKinds = map[token.Kind]string{
	token.TypeString: "string",
	token.TypeInt:    "int",
	token.TypeFloat:  "float",
	token.TypeBool:   "bool",
	token.TypeList:   "list",
	token.TypeDict:   "dict",
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Kind {
	case token.Echo:
		return p.parseEcho()
	case token.CreateType:
		return p.parseCreateVar()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.For:
		return p.parseFor()
	case token.Ident:
		return p.parseIdentLedStatement()
	default:
		return nil, newErr(p.cur(), "unexpected token %s %q at start of statement", p.cur().Kind, p.cur().Lexeme)
	}
}

func (p *Parser) parseEcho() (ast.Statement, error) {
	start := p.advance() // echo
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if !p.check(token.RParen) {
		for {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return ast.NewEcho(args, posOf(start)), nil
}

// parseTypeName consumes one of the type-name keyword tokens and returns
// its string form.
func (p *Parser) parseTypeName() (string, error) {
	name, ok := typeNameKinds[p.cur().Kind]
	if !ok {
		return "", newErr(p.cur(), "expected a type name but found %s %q", p.cur().Kind, p.cur().Lexeme)
	}
	p.advance()
	return name, nil
}

// parseCreateVarCore parses `create:<type> <ident> = expr` starting at the
// CreateType token. It never consumes the trailing `;`: parseCreateVar
// expects it for the statement form, and the `for` init clause consumes
// it itself.
func (p *Parser) parseCreateVarCore() (*ast.CreateVar, error) {
	start := p.advance() // create:
	declaredType, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewCreateVar(declaredType, nameTok.Lexeme, init, posOf(start)), nil
}

func (p *Parser) parseCreateVar() (ast.Statement, error) {
	cv, err := p.parseCreateVarCore()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return cv, nil
}

// parseIdentLedStatement disambiguates the four statement forms that
// start with an identifier: plain assignment, indexed assignment, method
// call, and statement-position function call.
func (p *Parser) parseIdentLedStatement() (ast.Statement, error) {
	start := p.cur()
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case token.Assign:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		return ast.NewAssignVar(nameTok.Lexeme, value, posOf(start)), nil

	case token.LBracket:
		stmt, err := p.parseIndexAssignCore(nameTok)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		return stmt, nil

	case token.Dot:
		stmt, err := p.parseMethodCallCore(nameTok)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		return stmt, nil

	case token.LParen:
		call, err := p.parseCallArgs(nameTok)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		return ast.NewExprStatement(call, posOf(start)), nil

	default:
		return nil, newErr(p.cur(), "expected '=', '[', '.', or '(' after identifier %q", nameTok.Lexeme)
	}
}

func (p *Parser) parseIndexAssignCore(nameTok token.Token) (ast.Statement, error) {
	start := p.advance() // [
	idx, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	obj := ast.NewIdentifier(nameTok.Lexeme, posOf(nameTok))
	return ast.NewIndexAssign(obj, idx, value, posOf(start)), nil
}

var methodNameKinds = map[token.Kind]string{
	token.Add:    "add",
	token.Delete: "delete",
	token.Clear:  "clear",
}

func (p *Parser) parseMethodCallCore(nameTok token.Token) (ast.Statement, error) {
	start := p.advance() // .
	methodName, ok := methodNameKinds[p.cur().Kind]
	if !ok {
		return nil, newErr(p.cur(), "expected add, delete, or clear after '.' but found %s %q", p.cur().Kind, p.cur().Lexeme)
	}
	p.advance()
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	collection, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if collection != "list" && collection != "dict" {
		return nil, newErr(p.cur(), "method call collection must be 'list' or 'dict', got %q", collection)
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var args []ast.Expression
	if !p.check(token.RParen) {
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		if methodName == "add" && collection == "dict" {
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, value)
		}
		for {
			if _, ok := p.match(token.Comma); !ok {
				break
			}
			extra, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, extra)
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	return ast.NewMethodCall(nameTok.Lexeme, methodName, collection, args, posOf(start)), nil
}

func (p *Parser) parseCallArgs(nameTok token.Token) (*ast.FunctionCall, error) {
	p.advance() // (
	var args []ast.Expression
	if !p.check(token.RParen) {
		for {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(nameTok.Lexeme, args, posOf(nameTok)), nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	start := p.advance() // if
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els ast.ElseBranch
	if _, ok := p.match(token.Else); ok {
		if p.check(token.If) {
			nested, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			els = nested.(*ast.If)
		} else {
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			els = block
		}
	}
	return ast.NewIf(cond, then, els, posOf(start)), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	start := p.advance() // while
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body, posOf(start)), nil
}

// parseForInit parses the `for` header's init clause (create:... or
// ident = expr), consuming the `;` that terminates it itself, or returns
// nil if the clause is empty (a bare `;`).
func (p *Parser) parseForInit() (ast.Statement, error) {
	if _, ok := p.match(token.Semi); ok {
		return nil, nil
	}
	var stmt ast.Statement
	var err error
	if p.check(token.CreateType) {
		stmt, err = p.parseCreateVarCore()
	} else {
		nameTok, e := p.expect(token.Ident)
		if e != nil {
			return nil, e
		}
		if _, e := p.expect(token.Assign); e != nil {
			return nil, e
		}
		value, e := p.parseExpression()
		if e != nil {
			return nil, e
		}
		stmt, err = ast.NewAssignVar(nameTok.Lexeme, value, posOf(nameTok)), nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseForUpdate parses the `for` header's update clause: ident = expr or
// ident[idx] = expr, with no terminating punctuation (the header's `)`
// follows directly).
func (p *Parser) parseForUpdate() (ast.Statement, error) {
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if p.check(token.LBracket) {
		return p.parseIndexAssignCore(nameTok)
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignVar(nameTok.Lexeme, value, posOf(nameTok)), nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	start := p.advance() // for
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	init, err := p.parseForInit()
	if err != nil {
		return nil, err
	}

	var cond ast.Expression
	if !p.check(token.Semi) {
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	var update ast.Statement
	if !p.check(token.RParen) {
		update, err = p.parseForUpdate()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(init, cond, update, body, posOf(start)), nil
}
