/*
File    : lumen/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines Lumen's runtime value sum type. Unlike a design
// that threads runtime failures through a value type, Lumen reports
// evaluation failures as Go errors (see package eval), not as a runtime
// value that has to be threaded and type-switched on at every call site.
package object

import "strconv"

// Type is the trimmed tag mirror of Object, carrying only the kind and no
// payload. It is used when building TypeMismatch/UnknownOperator error
// messages (see eval.Error).
type Type string

const (
	IntegerType  Type = "INTEGER"
	BooleanType  Type = "BOOLEAN"
	StringType   Type = "STRING"
	NullType     Type = "NULL"
	ReturnType   Type = "RETURN_VALUE"
	FunctionType Type = "FUNCTION"
)

// Object is implemented by every Lumen runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer is a 64-bit two's-complement integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return IntegerType }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Boolean is one of the two truth values.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type { return BooleanType }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// String is a Lumen string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return StringType }
func (s *String) Inspect() string { return s.Value }

// Null is the single absent-value instance. It is safe to compare Null
// pointers with ==; the evaluator always hands back the shared NULL
// instance (see eval.NULL) rather than allocating fresh ones.
type Null struct{}

func (n *Null) Type() Type      { return NullType }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps a value to signal that block evaluation should
// unwind to the nearest function-call boundary. It is never observable
// outside the evaluator; see eval's block-propagation rule.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return ReturnType }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// IsTruthy reports the truthiness of a value for use in `if` conditions
// and the `!` operator: Null is false, Boolean is itself, everything
// else is true.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *Null:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}
