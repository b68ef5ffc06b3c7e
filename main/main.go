/*
File    : lumen/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lumen interpreter. It supports:
1. REPL mode (default): interactive read-eval-print loop.
2. File mode: execute a Lumen source file given as the first argument.
3. Server mode: `lumen server <port>` runs a REPL on each accepted TCP
   connection.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/repl"
	"github.com/fatih/color"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	PROMPT  = "lumen >>> "
)

var BANNER = `
 ██╗     ██╗   ██╗███╗   ███╗███████╗███╗   ██╗
 ██║     ██║   ██║████╗ ████║██╔════╝████╗  ██║
 ██║     ██║   ██║██╔████╔██║█████╗  ██╔██╗ ██║
 ██║     ██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║
 ███████╗╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║
 ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on os.Args: no arguments starts the REPL, --help/-h and
// --version/-v print informational text, `server <port>` starts a TCP
// REPL server, and anything else is treated as a source file to run.
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: lumen server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Lumen - a small expression-oriented interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumen                      Start interactive REPL mode")
	yellowColor.Println("  lumen <path-to-file>        Execute a Lumen source file")
	yellowColor.Println("  lumen server <port>         Start a REPL server on the given port")
	yellowColor.Println("  lumen --help                Display this help message")
	yellowColor.Println("  lumen --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                       Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Lumen - a small expression-oriented interpreted language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and evaluates a whole source file in one fresh
// environment, exiting nonzero on any parse or evaluation error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeWithRecovery(string(source))
}

// evalSource parses and evaluates a whole source file in one fresh
// environment. It is kept free of os.Exit/printing so it can be tested
// directly; executeWithRecovery is the thin process-facing wrapper.
func evalSource(source string) (object.Object, error) {
	p := parser.New(source)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return eval.Eval(program, environment.New())
}

func executeWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	result, err := evalSource(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %s\n", err)
		os.Exit(1)
	}

	if result != nil {
		fmt.Println(result.Inspect())
	}
}

// startServer listens on port and runs one REPL session per accepted
// connection, each with its own environment.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Lumen REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
