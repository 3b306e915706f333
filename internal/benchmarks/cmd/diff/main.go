// diff is a small CLI to manually run the diffing implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/htmldiff/internal/benchmarks"
)

type config struct {
	lib      string
	old, new string
	txtar    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "htmldiff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <old> <new>\n")
			os.Exit(1)
		}
		cfg.old = flag.CommandLine.Arg(0)
		cfg.new = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var old, new string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "old":
				old = string(f.Data)
			case "new":
				new = string(f.Data)
			}
		}
	} else {
		b, err := os.ReadFile(cfg.old)
		if err != nil {
			return err
		}
		old = string(b)
		b, err = os.ReadFile(cfg.new)
		if err != nil {
			return err
		}
		new = string(b)
	}

	out := lib.Diff(old, new)
	os.Stdout.Write([]byte(out))
	if !strings.HasSuffix(out, "\n") {
		os.Stdout.Write([]byte("\n"))
	}
	return nil
}
