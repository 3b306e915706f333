// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command htmldiff renders a word-level comparison of two HTML documents.
//
// The output is the new document with <ins> and <del> markers around the changes:
//
//	htmldiff old.html new.html
//
// With --standalone the diff is wrapped in a complete HTML page with inline styles, ready to
// open in a browser:
//
//	htmldiff old.html new.html --standalone -o diff.html
//
// Inputs can also be Markdown, converted to HTML before comparing:
//
//	htmldiff --markdown old.md new.md
//
// One input may be read from stdin by passing '-' as its filename.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/yuin/goldmark"

	"znkr.io/htmldiff"
	"znkr.io/htmldiff/css"
)

var cli struct {
	Old string `arg:"" help:"Old version of the document ('-' reads stdin)."`
	New string `arg:"" help:"New version of the document ('-' reads stdin)."`

	Output string `short:"o" placeholder:"FILE" help:"Write the diff to FILE instead of stdout."`

	Markdown   bool `help:"Treat the inputs as Markdown and convert them to HTML before comparing."`
	Standalone bool `help:"Wrap the diff in a complete HTML page with inline styles."`

	StrictWhitespace       bool     `help:"Compare whitespace exactly instead of treating all whitespace runs as equal."`
	Atomic                 []string `placeholder:"REGEXP" help:"Never split a match of REGEXP into multiple tokens. May be repeated."`
	RepeatingWordsAccuracy float64  `default:"1" help:"Accuracy for matching on frequently repeating words, between 0 and 1."`
	OrphanMatchThreshold   float64  `default:"0" help:"Drop interior matches shorter than this fraction of the change they interrupt, between 0 and 1."`

	InsertedClass string `default:"diffins" help:"Class attribute for <ins> markers of insertions."`
	DeletedClass  string `default:"diffdel" help:"Class attribute for <del> markers of deletions."`
	ModifiedClass string `default:"diffmod" help:"Class attribute for <ins> and <del> markers of modifications."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("htmldiff"),
		kong.Description("Render a word-level comparison of two HTML documents."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	if cli.Old == "-" && cli.New == "-" {
		return fmt.Errorf("only one input can be read from stdin")
	}
	old, err := readInput(cli.Old)
	if err != nil {
		return err
	}
	new, err := readInput(cli.New)
	if err != nil {
		return err
	}
	if cli.Markdown {
		if old, err = markdown(old); err != nil {
			return err
		}
		if new, err = markdown(new); err != nil {
			return err
		}
	}

	opts, err := options()
	if err != nil {
		return err
	}
	merged, err := htmldiff.Diff(old, new, opts...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if cli.Standalone {
		writePage(&buf, merged)
	} else {
		buf.WriteString(merged)
		if !strings.HasSuffix(merged, "\n") {
			buf.WriteByte('\n')
		}
	}
	if cli.Output != "" {
		if err := os.WriteFile(cli.Output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing output: %v", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %v", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", arg, err)
	}
	return string(b), nil
}

func markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %v", err)
	}
	return buf.String(), nil
}

func options() ([]htmldiff.Option, error) {
	var opts []htmldiff.Option
	if cli.StrictWhitespace {
		opts = append(opts, htmldiff.StrictWhitespace())
	}
	for _, p := range cli.Atomic {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid --atomic pattern: %v", err)
		}
		opts = append(opts, htmldiff.Atomic(re))
	}
	opts = append(opts,
		htmldiff.RepeatingWordsAccuracy(cli.RepeatingWordsAccuracy),
		htmldiff.OrphanMatchThreshold(cli.OrphanMatchThreshold),
		htmldiff.InsertedClass(cli.InsertedClass),
		htmldiff.DeletedClass(cli.DeletedClass),
		htmldiff.ModifiedClass(cli.ModifiedClass),
	)
	return opts, nil
}

func writePage(w *bytes.Buffer, merged string) {
	rules := css.Rules(css.Classes(cli.InsertedClass, cli.DeletedClass, cli.ModifiedClass))
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
%s</style>
</head>
<body>
%s
</body>
</html>
`, rules, merged)
}
