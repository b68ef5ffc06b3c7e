/*
File    : lumen/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a Pratt (top-down operator-precedence) parser
over the token stream produced by lexer.Lexer. Construction primes two
tokens of lookahead (current, peek); parsing combines a prefix-dispatch
table with an infix loop keyed by a minimum precedence to get correct
associativity out of ordinary recursive descent.

There is no constant folding and no embedded evaluation environment
here: ParseProgram returns a pure *ast.Program, and all evaluation
happens later, in package eval.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/token"
)

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser holds the lexer and its own two-token lookahead window.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over src, priming curToken/peekToken with two
// reads from a fresh lexer, and registers every prefix/infix parse
// function.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it matches t, otherwise reports
// UnexpectedToken without advancing.
func (p *Parser) expectPeek(t token.Type) error {
	if p.peekTokenIs(t) {
		p.nextToken()
		return nil
	}
	return unexpectedToken(t, p.peekToken)
}

// ParseProgram parses the whole token stream into a Program, failing fast
// on the first error encountered (parse or lex-surfaced).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement: `let` IDENT `=` expression `;`?
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt, nil
}

// parseReturnStatement: `return` expression `;`
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value

	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpressionStatement: expression, with an optional trailing `;`.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt, nil
}

// parseExpression is the Pratt core: a prefix dispatch followed by an
// infix loop that keeps consuming operators more tightly bound than
// precedence. Recursing at the operator's own precedence (not
// precedence-1) on the right-hand side is what makes `+`/`-`/`*`/`/`
// left-associative.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		return nil, invalidToken(p.curToken)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < precedenceOf(p.peekToken) {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, &Error{Kind: InvalidIntegerKind, Actual: p.curToken}
	}
	lit.Value = value
	return lit, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}, nil
}

// parsePrefixExpression: `!`/`-` followed by an operand binding at PREFIX
// precedence.
func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseInfixExpression recurses at the operator's own precedence, which
// is the deliberate choice that makes `a+b+c` parse as `(a+b)+c` rather
// than `a+(b+c)`.
func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	curPrecedence := precedenceOf(p.curToken)
	p.nextToken()

	right, err := p.parseExpression(curPrecedence)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseGroupedExpression: `(` expression `)`.
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIfExpression: `if` `(` condition `)` `{` consequence `}` [`else`
// `{` alternative `}`].
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expr := &ast.IfExpression{Token: p.curToken}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	p.nextToken()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expr.Consequence = consequence

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		alternative, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		expr.Alternative = alternative
	}

	return expr, nil
}

// parseBlockStatement: sequence of statements up to (not including) the
// closing `}`. Assumes curToken is the opening `{`.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block, nil
}

// parseFunctionLiteral: `fn` `(` parameters `)` `{` body `}`.
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	lit.Parameters = params

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	lit.Body = body

	return lit, nil
}

// parseFunctionParameters: comma-separated identifiers between the `(`
// (already consumed by the caller's expectPeek) and `)`.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers, nil
	}

	p.nextToken()
	if err := p.expectCurIdent(); err != nil {
		return nil, err
	}
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if err := p.expectCurIdent(); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	return identifiers, nil
}

// expectCurIdent reports InvalidToken if curToken isn't an identifier.
// Used by parameter-list parsing, where a non-identifier in parameter
// position can't be recovered by expectPeek (the token has already been
// advanced onto).
func (p *Parser) expectCurIdent() error {
	if !p.curTokenIs(token.IDENT) {
		return invalidToken(p.curToken)
	}
	return nil
}

// parseCallExpression: `(` arguments `)`, called when curToken is `(`
// immediately after an already-parsed function expression.
func (p *Parser) parseCallExpression(function ast.Expression) (ast.Expression, error) {
	expr := &ast.CallExpression{Token: p.curToken, Function: function}

	args, err := p.parseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	expr.Arguments = args
	return expr, nil
}

// parseExpressionList parses a comma-separated list of full expressions
// terminated by end, structurally identical to parseFunctionParameters
// except each item is a whole expression rather than a bare identifier.
func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, error) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, nil
	}

	p.nextToken()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if err := p.expectPeek(end); err != nil {
		return nil, err
	}

	return list, nil
}
