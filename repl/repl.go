/*
File    : lumen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for Lumen. It is a thin
shell collaborator, not part of the interpreter core: it reads a line,
hands it to the parser and evaluator, and prints whichever of {value,
error} comes back, maintaining one environment across the whole session
so that `let` bindings and function definitions persist between lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with the given banner and prompt configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against writer until the user exits or
// input reaches EOF. One environment is created up front and shared
// across every line read, so bindings made on one line are visible on
// the next.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Bye.\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Bye.\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from any
// panic (for example, native integer division by zero) so the session
// keeps running instead of crashing the whole process.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	program, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := eval.Eval(program, env)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
