/*
File    : lumen/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lumen/object"
)

// Kind tags the evaluator's fixed error taxonomy. Every Kind is
// equality-comparable via its Error struct so tests can assert on it
// directly instead of scraping a message string.
type Kind string

const (
	// IdentifierNotFoundKind is raised by identifier lookup on a miss in
	// the whole environment chain.
	IdentifierNotFoundKind Kind = "IdentifierNotFound"

	// UnknownOperatorKind is raised for operand/operator combinations that
	// are well-typed but meaningless, e.g. true + false.
	UnknownOperatorKind Kind = "UnknownOperator"

	// TypeMismatchKind is raised when an infix operator is applied across
	// two incompatible value types, e.g. 5 + true.
	TypeMismatchKind Kind = "TypeMismatch"

	// IncorrectNumberOfArgumentsKind is raised when a call supplies a
	// different number of arguments than the function declares parameters.
	IncorrectNumberOfArgumentsKind Kind = "IncorrectNumberOfArguments"

	// UnknownKind is the catch-all for paths left undefined at the value
	// level (for example, calling a non-function).
	UnknownKind Kind = "Unknown"
)

// Error is the evaluator's single error type. Only the fields relevant to
// its Kind are populated.
type Error struct {
	Kind     Kind
	Name     string // IdentifierNotFoundKind
	Operator string // UnknownOperatorKind, TypeMismatchKind
	Left     object.Type
	Right    object.Type
	Expected int // IncorrectNumberOfArgumentsKind
	Actual   int
	Message  string // UnknownKind
}

func (e *Error) Error() string {
	switch e.Kind {
	case IdentifierNotFoundKind:
		return fmt.Sprintf("identifier not found: %s", e.Name)
	case UnknownOperatorKind:
		return fmt.Sprintf("unknown operator: %s %s %s", e.Left, e.Operator, e.Right)
	case TypeMismatchKind:
		return fmt.Sprintf("type mismatch: %s %s %s", e.Left, e.Operator, e.Right)
	case IncorrectNumberOfArgumentsKind:
		return fmt.Sprintf("wrong number of arguments: expected %d, got %d", e.Expected, e.Actual)
	default:
		if e.Message != "" {
			return e.Message
		}
		return "unknown error"
	}
}

func identifierNotFound(name string) *Error {
	return &Error{Kind: IdentifierNotFoundKind, Name: name}
}

func unknownOperator(operator string, left, right object.Type) *Error {
	return &Error{Kind: UnknownOperatorKind, Operator: operator, Left: left, Right: right}
}

func typeMismatch(operator string, left, right object.Type) *Error {
	return &Error{Kind: TypeMismatchKind, Operator: operator, Left: left, Right: right}
}

func incorrectNumberOfArguments(expected, actual int) *Error {
	return &Error{Kind: IncorrectNumberOfArgumentsKind, Expected: expected, Actual: actual}
}

func unknownf(format string, a ...interface{}) *Error {
	return &Error{Kind: UnknownKind, Message: fmt.Sprintf(format, a...)}
}
