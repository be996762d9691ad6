// Package main implements the luaugen command, which translates a syntax
// tree in JSON form into Luau source.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/you-not-fish/luaugen/internal/codegen"
	"github.com/you-not-fish/luaugen/internal/syntax"
)

// Command flags
var (
	output    = flag.String("o", "", "Output file (default stdout)")
	indent    = flag.String("indent", "    ", "Indentation unit: a string, a number of spaces, or \"tab\"")
	emitAST   = flag.Bool("emit-ast", false, "Output AST instead of Luau")
	astFormat = flag.String("ast-format", "text", "AST output format (text or json)")
	quiet     = flag.Bool("q", false, "Suppress warnings")
	version   = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "luaugen %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: luaugen [options] <file.json>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("luaugen version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: luaugen [options] <file.json>")
		os.Exit(1)
	}

	filename := args[0]

	if *emitAST {
		os.Exit(runEmitAST(filename))
	}
	os.Exit(runGenerate(filename))
}

// readAST decodes the JSON syntax tree in filename.
func readAST(filename string) (*syntax.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return syntax.ReadJSON(filename, f)
}

// runEmitAST decodes the input file and outputs the AST.
func runEmitAST(filename string) int {
	ast, err := readAST(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, ast); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(os.Stdout, ast)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", *astFormat)
		return 1
	}
	return 0
}

// runGenerate translates the input file and writes the Luau program to
// the output file or stdout.
func runGenerate(filename string) int {
	ast, err := readAST(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	conf := &codegen.Config{Indent: indentUnit(*indent)}
	if !*quiet {
		conf.Warn = func(pos syntax.Pos, msg string) {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", pos, msg)
		}
	}

	if *output == "" {
		if err := codegen.Generate(os.Stdout, ast, conf); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	src, err := codegen.GenerateString(ast, conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(*output, []byte(src), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// indentUnit interprets the -indent flag.
func indentUnit(s string) string {
	if s == "tab" {
		return "\t"
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return fmt.Sprintf("%*s", n, "")
	}
	return s
}
