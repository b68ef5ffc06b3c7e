/*
File    : lumen/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function ties together the pieces that make up a first-class
// Lumen function value: its parameter list and body (both AST nodes) plus
// a reference to the environment active at its construction. That
// environment reference is what makes closures work: it is shared, not
// copied, so bindings made after the function is built remain visible.
package function

import (
	"strings"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

// Function is the runtime representation of a Function{parameters, body,
// captured_env} value. It implements object.Object so it can flow through
// the evaluator like any other value.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.Type { return object.FunctionType }

// Inspect renders the function as fn(p1,p2,...){body}, with the body
// rendered as its statements concatenated, exactly what
// ast.BlockStatement.String() already produces.
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}

	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ","))
	out.WriteString("){")
	out.WriteString(f.Body.String())
	out.WriteString("}")
	return out.String()
}
