// Package parser implements a Pratt parser for shape expressions.
package parser

import (
	"fmt"
	"strconv"

	"github.com/funvibe/symshape/internal/ast"
	"github.com/funvibe/symshape/internal/lexer"
	"github.com/funvibe/symshape/internal/token"
)

const (
	_ int = iota
	LOWEST
	COMPARISON // == != < <= > >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // -x
	CALL       // min(a, b)
)

var precedences = map[token.TokenType]int{
	token.EQ:       COMPARISON,
	token.NOT_EQ:   COMPARISON,
	token.LT:       COMPARISON,
	token.LE:       COMPARISON,
	token.GT:       COMPARISON,
	token.GE:       COMPARISON,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.INT:    p.parseIntegerLiteral,
		token.IDENT:  p.parseIdentifier,
		token.MINUS:  p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{}
	for _, t := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LT, token.LE, token.GT, token.GE,
	} {
		p.infixParseFns[t] = p.parseInfixExpression
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete expression and requires the input to be fully
// consumed.
func Parse(input string) (ast.Expression, error) {
	p := New(lexer.New(input))
	expr := p.parseExpression(LOWEST)
	if !p.peekTokenIs(token.EOF) && len(p.errors) == 0 {
		p.errors = append(p.errors, fmt.Sprintf("unexpected token %q at %d:%d",
			p.peekToken.Lexeme, p.peekToken.Line, p.peekToken.Column))
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parser: %s", p.errors[0])
	}
	if expr == nil {
		return nil, fmt.Errorf("parser: empty expression")
	}
	return expr, nil
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, fmt.Sprintf("expected %q, got %q at %d:%d",
		t, p.peekToken.Lexeme, p.peekToken.Line, p.peekToken.Column))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, fmt.Sprintf("unexpected token %q at %d:%d",
			p.curToken.Lexeme, p.curToken.Line, p.curToken.Column))
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}
	return leftExp
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.curToken.Lexeme))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseIdentifier() ast.Expression {
	name := p.curToken.Lexeme
	tok := p.curToken

	// min(a, b) / max(a, b)
	if (name == "min" || name == "max") && p.peekTokenIs(token.LPAREN) {
		return p.parseCallExpression(tok, name)
	}
	return &ast.Identifier{Token: tok, Value: name}
}

func (p *Parser) parseCallExpression(tok token.Token, name string) ast.Expression {
	p.nextToken() // consume '('
	p.nextToken() // first argument

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	p.nextToken()
	second := p.parseExpression(LOWEST)
	if second == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.CallExpression{Token: tok, Function: name, Args: []ast.Expression{first, second}}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpression{Token: tok, Operator: "-", Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := p.curToken.Lexeme
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}
