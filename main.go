package main

// implements a lisp repl

import (
	"flag"
	"fmt"
	"io/ioutil"
	"lisp/eval"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var VERSION string
var LOGO = `
 | |  (_)___ _ __    | minimal lisp
 | |__| (_-< '_ \    | version: $VERSION
 |____|_/__/ .__/    |
           |_|       |
`

const historyFile = ".lisp_history"

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
}

// runFile evaluates a whole source file as one program.
func runFile(ic *eval.InteractiveContext, path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := ic.Run(string(src)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func main() {
	var (
		expr        = flag.String("e", "", "evaluate `expr`, print the result and exit")
		interactive = flag.Bool("i", false, "start the REPL after running -e and files")
		maxDepth    = flag.Int("max-depth", eval.DefaultMaxDepth, "maximum evaluation depth, 0 for unlimited")
		history     = flag.String("history", defaultHistoryPath(), "REPL history `file`, empty to disable")
		version     = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(VERSION)
		return
	}

	ic := eval.NewInteractiveContext()
	ic.Context().MaxDepth = *maxDepth

	for _, path := range flag.Args() {
		if err := runFile(ic, path); err != nil {
			reportError(err)
			os.Exit(1)
		}
	}
	if *expr != "" {
		v, err := ic.Run(*expr)
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		fmt.Println(ic.Inspect(v))
	}
	if (*expr != "" || flag.NArg() > 0) && !*interactive {
		return
	}

	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	if err := repl(ic, *history); err != nil {
		log.Fatalf("repl: %v", err)
	}
}
