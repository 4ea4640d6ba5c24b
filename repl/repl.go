/*
File    : tron/repl/repl.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron

Package repl implements the Read-Eval-Print Loop for Tron. It reads one
line of source at a time, parses and evaluates it against a persistent
Evaluator so variables and functions defined on one line remain visible
on the next, and reports parse/runtime errors without exiting.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/tron-lang/tron/eval"
	"github.com/tron-lang/tron/parser"
)

// Color definitions for REPL output: errors in red, the version line in
// yellow, banner and separators in green/cyan/blue.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// Evaluator is the persistent interpreter state shared across lines.
	// Callers construct it via eval.New() (or eval.NewWithIO) and apply
	// any config.Config overrides before Start.
	Evaluator *eval.Evaluator
}

// NewRepl builds a Repl ready for Start.
func NewRepl(banner, version, author, line, license, prompt string, evaluator *eval.Evaluator) *Repl {
	return &Repl{
		Banner:    banner,
		Version:   version,
		Author:    author,
		Line:      line,
		License:   license,
		Prompt:    prompt,
		Evaluator: evaluator,
	}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Tron!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until '.exit', EOF (Ctrl+D), or a readline
// error is encountered.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses and runs one line against r.Evaluator,
// recovering from any panic escaping the evaluator so one bad line never
// kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	prog := p.Parse()
	if len(p.Errors) > 0 {
		for _, msg := range p.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	if err := r.Evaluator.Run(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
