/*
File    : lumen/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import (
	"fmt"

	"github.com/akashmaji946/lumen/token"
)

// Kind identifies the category of a parser error. Errors are plain,
// equality-comparable structs rather than formatted strings, so tests
// can assert directly on Kind and the structured fields.
type Kind string

const (
	// UnexpectedTokenKind is raised by expectPeek when a specific token
	// was demanded but a different one was found.
	UnexpectedTokenKind Kind = "UnexpectedToken"
	// InvalidTokenKind is raised when the current token has no
	// registered prefix parse function, i.e. it cannot begin an
	// expression.
	InvalidTokenKind Kind = "InvalidToken"
	// InvalidIntegerKind is raised when an INT token's literal fails to
	// parse as an int64 (overflow). The lexer already rejects runs that
	// don't even fit int64 as ILLEGAL; this covers any INT literal the
	// parser is handed directly, e.g. via tooling that bypasses the
	// lexer's own check.
	InvalidIntegerKind Kind = "InvalidInteger"
)

// Error is a structured, position-carrying parse error. Two Errors of
// the same Kind with the same Expected/Actual fields compare equal.
type Error struct {
	Kind     Kind
	Expected token.Type // set for UnexpectedTokenKind
	Actual   token.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedTokenKind:
		return fmt.Sprintf("[%d:%d] PARSER ERROR: expected next token to be %s, got %s instead",
			e.Actual.Line, e.Actual.Column, e.Expected, e.Actual.Type)
	case InvalidTokenKind:
		return fmt.Sprintf("[%d:%d] PARSER ERROR: no prefix parse function for %s found",
			e.Actual.Line, e.Actual.Column, e.Actual.Type)
	case InvalidIntegerKind:
		return fmt.Sprintf("[%d:%d] PARSER ERROR: could not parse %q as integer",
			e.Actual.Line, e.Actual.Column, e.Actual.Literal)
	default:
		return fmt.Sprintf("[%d:%d] PARSER ERROR: unknown error near %q",
			e.Actual.Line, e.Actual.Column, e.Actual.Literal)
	}
}

func unexpectedToken(expected token.Type, actual token.Token) *Error {
	return &Error{Kind: UnexpectedTokenKind, Expected: expected, Actual: actual}
}

func invalidToken(actual token.Token) *Error {
	return &Error{Kind: InvalidTokenKind, Actual: actual}
}
