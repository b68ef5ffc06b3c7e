/*
File    : lumen/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import "github.com/akashmaji946/lumen/token"

// Operator precedence levels, lowest to highest. Unlike a general-purpose
// language's long precedence ladder (assignment, logical, bitwise,
// relational, shift, additive, multiplicative, unary, member access...),
// this language's total order is exactly seven levels wide.
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x or !x
	CALL        // myFunction(x)
)

// precedences maps each infix-capable token to its binding level. Tokens
// absent from this table are treated as LOWEST, which is exactly what
// stops the infix loop in parseExpression.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// precedenceOf returns tok's infix binding level, or LOWEST if tok is
// never an infix operator.
func precedenceOf(tok token.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}
