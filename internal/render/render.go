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

// Package render turns edit operations into the merged HTML document.
//
// Unchanged regions flow through verbatim from the new input. Changed regions are wrapped in
// <ins> and <del> markers with configurable class attributes. Tags inside a changed region are
// never wrapped: a run of tokens is split into sub-runs of tags and non-tags, the non-tags get
// one marker each, the tags pass through as they are. Nesting a <p> inside a <del> would produce
// markup no browser renders the way the diff means it.
//
// Inline formatting tags are the exception to "tags pass through". Deleting "<b>" while keeping
// the bold text would leave a dangling opener, so recognized formatting tags are consumed
// instead of emitted during a delete pass, tracked on a stack, and compensated with synthetic
// <ins> markers that carry the modified class: the opener arms a marker that opens after the tag
// run, the matching closer arms the closing marker before its tag run. For an inserted
// "<b>bold</b>" this wraps the bold content inside the <b> element,
//
//	<b><ins class="diffmod"><ins class="diffins">bold</ins></ins></b>
//
// and for a deleted pair around matching text it marks the text whose formatting changed. The
// stack lives for one whole render: formatting tags regularly open in one operation and close
// in a later one.
package render

import (
	"strings"

	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/ops"
	"znkr.io/htmldiff/internal/token"
)

// specialTags are the inline formatting elements that get the stack treatment.
var specialTags = map[string]bool{
	"b":      true,
	"big":    true,
	"em":     true,
	"i":      true,
	"s":      true,
	"small":  true,
	"span":   true,
	"strike": true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"u":      true,
}

// HTML renders operations over the two token sequences into the merged document.
func HTML(operations []ops.Operation, old, new []token.Token, cfg config.Config) string {
	r := renderer{cfg: cfg}
	for _, op := range operations {
		switch op.Kind {
		case ops.Equal:
			for _, t := range new[op.StartInNew:op.EndInNew] {
				r.out.WriteString(t.Text)
			}
		case ops.Insert:
			r.wrap("ins", cfg.InsertedClass, texts(new[op.StartInNew:op.EndInNew]))
		case ops.Delete:
			r.wrap("del", cfg.DeletedClass, texts(old[op.StartInOld:op.EndInOld]))
		case ops.Replace:
			r.wrap("del", cfg.ModifiedClass, texts(old[op.StartInOld:op.EndInOld]))
			r.wrap("ins", cfg.ModifiedClass, texts(new[op.StartInNew:op.EndInNew]))
		default:
			panic("never reached")
		}
	}
	return r.out.String()
}

type renderer struct {
	out   strings.Builder
	cfg   config.Config
	stack []string // names of special tags opened inside changed regions
}

// wrap emits one changed token run, wrapping non-tag sub-runs in an elem marker with the given
// class and handling tag sub-runs as described in the package documentation.
func (r *renderer) wrap(elem, class string, words []string) {
	for len(words) > 0 {
		// A lone space leading a sub-run is kept visible as a non-breaking space, otherwise it
		// collapses against the markup around the marker.
		if words[0] == " " {
			words[0] = "&nbsp;"
		}

		plain, rest := splitLeading(words, func(s string) bool { return !isTag(s) })
		if len(plain) > 0 {
			r.marker(elem, class, strings.Join(plain, ""))
			words = rest
			continue
		}

		var inject string
		injectBefore := false
		if name, ok := specialOpening(words[0]); ok {
			r.stack = append(r.stack, name)
			inject = `<ins class="` + r.cfg.ModifiedClass + `">`
			if elem == "del" {
				words = consumeLeading(words, specialOpening)
			}
		} else if _, ok := specialClosing(words[0]); ok {
			var opened string
			if n := len(r.stack); n > 0 {
				opened, r.stack = r.stack[n-1], r.stack[:n-1]
			}
			// The last token of the run is the closer that belongs to the opener on the stack
			// when the run closes a well-nested group.
			if opened != "" && opened == token.TagName(words[len(words)-1]) {
				inject = "</ins>"
				injectBefore = true
			}
			if elem == "del" {
				words = consumeLeading(words, specialClosing)
			}
		}
		if len(words) == 0 && inject == "" {
			break
		}

		tags, rest := splitLeading(words, isTag)
		if injectBefore {
			r.out.WriteString(inject)
			r.out.WriteString(strings.Join(tags, ""))
		} else {
			r.out.WriteString(strings.Join(tags, ""))
			r.out.WriteString(inject)
		}
		words = rest
	}
}

func (r *renderer) marker(elem, class, text string) {
	r.out.WriteString("<")
	r.out.WriteString(elem)
	r.out.WriteString(` class="`)
	r.out.WriteString(class)
	r.out.WriteString(`">`)
	r.out.WriteString(text)
	r.out.WriteString("</")
	r.out.WriteString(elem)
	r.out.WriteString(">")
}

// splitLeading splits words into the longest prefix for which keep is true and the rest.
func splitLeading(words []string, keep func(string) bool) (prefix, rest []string) {
	i := 0
	for i < len(words) && keep(words[i]) {
		i++
	}
	return words[:i], words[i:]
}

// consumeLeading drops the leading token and any directly following tokens matched by ok.
func consumeLeading(words []string, ok func(string) (string, bool)) []string {
	words = words[1:]
	for len(words) > 0 {
		if _, drop := ok(words[0]); !drop {
			break
		}
		words = words[1:]
	}
	return words
}

func isTag(s string) bool {
	return len(s) > 0 && s[0] == '<'
}

// specialOpening reports whether s opens one of the special formatting elements and returns its
// name. Self-closing tags open nothing.
func specialOpening(s string) (name string, ok bool) {
	if !isTag(s) || token.IsClosing(s) || strings.HasSuffix(s, "/>") {
		return "", false
	}
	name = token.TagName(s)
	return name, specialTags[name]
}

// specialClosing reports whether s closes one of the special formatting elements.
func specialClosing(s string) (name string, ok bool) {
	if !token.IsClosing(s) {
		return "", false
	}
	name = token.TagName(s)
	return name, specialTags[name]
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
