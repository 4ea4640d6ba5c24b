/*
File    : tron/cmd/tron/main.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron

Package main is the entry point for the Tron interpreter. It has two
modes of operation:
  - REPL mode (no arguments): interactive read-eval-print loop
  - File mode (one argument): execute a Tron source file

There is no flag-parsing library; os.Args is read directly.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/tron-lang/tron/config"
	"github.com/tron-lang/tron/eval"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/repl"
)

var (
	version = "v0.1.0"
	author  = "tron-lang"
	license = "MIT"
	prompt  = "tron >>> "
)

var banner = `
 ▀████▀▄▄              ▄█    ▄▄█▀▀▀█▄▄
   ██   ▀▀▄▄▄▄▄▄▄▄▄▄▄▄▄██  ▄██▀      ▀██▄
   ██    ▄▄▄▄▄▄▄▄▄▄▄▄▄  █▄█████▄    ▄████▄
   ██                   ██▀   ▀██▄▄██▀  ▀██
   ██     T R O N       ██      ▀███      ██
   ██                   ▀██▄    ▄██▄     ▄██
   ██                     ▀█████▀ ▀███████▀
`

var line = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[config error] %s\n", err.Error())
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
		runFile(arg, cfg)
		return
	}

	ev := eval.New()
	applyConfig(ev, cfg)
	repler := repl.NewRepl(banner, version, author, line, license, prompt, ev)
	repler.Start(os.Stdout)
}

func applyConfig(ev *eval.Evaluator, cfg *config.Config) {
	ev.SetPointer(cfg.PrintPointer)
	ev.MaxCallDepth = cfg.MaxCallDepth
	ev.ImportPaths = cfg.ImportPaths
}

func showHelp() {
	cyanColor.Println("Tron - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  tron                    Start interactive REPL mode")
	yellowColor.Println("  tron <path-to-file>     Execute a Tron file (.tron)")
	yellowColor.Println("  tron --help             Display this help message")
	yellowColor.Println("  tron --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("Preferences are read from .tronrc.yaml in the current directory,")
	cyanColor.Println("if present (print_pointer, import_paths, max_call_depth).")
}

func showVersion() {
	cyanColor.Println("Tron - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile reads and executes a Tron source file, exiting with status 1
// on a read error, parse error, or unrecovered runtime error.
func runFile(fileName string, cfg *config.Config) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[runtime error] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.NewParser(string(source))
	prog := p.Parse()
	if len(p.Errors) > 0 {
		for _, msg := range p.Errors {
			redColor.Fprintf(os.Stderr, "[parse error] %s\n", msg)
		}
		os.Exit(1)
	}

	ev := eval.New()
	applyConfig(ev, cfg)
	if err := ev.Run(prog); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
