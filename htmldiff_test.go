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

package htmldiff

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/htmldiff/internal/restore"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		opts     []Option
		want     string
	}{
		{
			name: "identical",
			old:  "<p>Hello world</p>",
			new:  "<p>Hello world</p>",
			want: "<p>Hello world</p>",
		},
		{
			name: "identical-malformed",
			old:  "<b><i>unbalanced",
			new:  "<b><i>unbalanced",
			want: "<b><i>unbalanced",
		},
		{
			name: "empty",
			old:  "",
			new:  "",
			want: "",
		},
		{
			name: "old-empty",
			old:  "",
			new:  "<p>new</p>",
			want: `<p><ins class="diffins">new</ins></p>`,
		},
		{
			name: "new-empty",
			old:  "<p>old</p>",
			new:  "",
			want: `<p><del class="diffdel">old</del></p>`,
		},
		{
			name: "insert-word",
			old:  "<p>Hello world</p>",
			new:  "<p>Hello there world</p>",
			want: `<p>Hello <ins class="diffins">there </ins>world</p>`,
		},
		{
			name: "delete-word",
			old:  "<p>Hello there world</p>",
			new:  "<p>Hello world</p>",
			want: `<p>Hello <del class="diffdel">there </del>world</p>`,
		},
		{
			name: "replace-word",
			old:  "cat",
			new:  "dog",
			want: `<del class="diffmod">cat</del><ins class="diffmod">dog</ins>`,
		},
		{
			name: "replace-inside-sentence",
			old:  "<p>The quick brown fox</p>",
			new:  "<p>The quick red fox</p>",
			want: `<p>The quick <del class="diffmod">brown</del><ins class="diffmod">red</ins> fox</p>`,
		},
		{
			name: "attribute-change-is-equal",
			old:  `<p class="a">x</p>`,
			new:  `<p class="b">x</p>`,
			want: `<p class="b">x</p>`,
		},
		{
			name: "formatting-added",
			old:  "Hello world",
			new:  "<b>Hello world</b>",
			want: `<b><ins class="diffmod">Hello world</ins></b>`,
		},
		{
			name: "formatting-removed",
			old:  "<b>Hello</b> world",
			new:  "Hello world",
			want: `<ins class="diffmod">Hello</ins> world`,
		},
		{
			name: "formatting-replaced-with-text",
			old:  "<b>cat</b>",
			new:  "dog",
			want: `<ins class="diffmod"><del class="diffmod">cat</del></ins><ins class="diffmod">dog</ins>`,
		},
		{
			name: "change-inside-formatting",
			old:  "<b>a b</b>",
			new:  "<b>a c</b>",
			want: `<b>a <del class="diffmod">b</del><ins class="diffmod">c</ins></b>`,
		},
		{
			name: "entity-kept",
			old:  "fish &amp; chips",
			new:  "fish &amp; fries",
			want: `fish &amp; <del class="diffmod">chips</del><ins class="diffmod">fries</ins>`,
		},
		{
			name: "nbsp-equals-space",
			old:  "a b",
			new:  "a&nbsp;b",
			want: "a&nbsp;b",
		},
		{
			name: "whitespace-ignored",
			old:  "a  b",
			new:  "a b",
			want: "a b",
		},
		{
			name: "strict-whitespace",
			old:  "a b",
			new:  "a  b",
			opts: []Option{StrictWhitespace()},
			want: `a<del class="diffmod">&nbsp;</del><ins class="diffmod">  </ins>b`,
		},
		{
			name: "atomic",
			old:  "Hi {{name}}, bye",
			new:  "Hi {{user}}, bye",
			opts: []Option{Atomic(regexp.MustCompile(`\{\{[a-z]+\}\}`))},
			want: `Hi<del class="diffmod"> {{name}}</del><ins class="diffmod"> {{user}}</ins>, bye`,
		},
		{
			name: "no-atomic-splits-placeholder",
			old:  "Hi {{name}}, bye",
			new:  "Hi {{user}}, bye",
			want: `Hi {{<del class="diffmod">name</del><ins class="diffmod">user</ins>}}, bye`,
		},
		{
			name: "marker-classes",
			old:  "cat",
			new:  "dog",
			opts: []Option{ModifiedClass("changed")},
			want: `<del class="changed">cat</del><ins class="changed">dog</ins>`,
		},
		{
			name: "orphan-threshold",
			old:  "aaaa bbbb k cccc dddd",
			new:  "eeee ffff k gggg hhhh",
			opts: []Option{OrphanMatchThreshold(0.5)},
			want: `<del class="diffmod">aaaa</del><ins class="diffmod">eeee</ins> ` +
				`<del class="diffmod">bbbb k cccc dddd</del><ins class="diffmod">ffff k gggg hhhh</ins>`,
		},
		{
			name: "orphan-threshold-keeps-by-default",
			old:  "aaaa bbbb k cccc dddd",
			new:  "eeee ffff k gggg hhhh",
			want: `<del class="diffmod">aaaa</del><ins class="diffmod">eeee</ins> ` +
				`<del class="diffmod">bbbb</del><ins class="diffmod">ffff</ins> k ` +
				`<del class="diffmod">cccc</del><ins class="diffmod">gggg</ins> ` +
				`<del class="diffmod">dddd</del><ins class="diffmod">hhhh</ins>`,
		},
		{
			name: "accuracy-zero-disables-matching",
			old:  "a x b",
			new:  "a y b",
			opts: []Option{RepeatingWordsAccuracy(0)},
			want: `<del class="diffmod">a x b</del><ins class="diffmod">a y b</ins>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(tt.old, tt.new, tt.opts...)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestDiffOverlappingAtomicPatterns(t *testing.T) {
	opts := []Option{Atomic(regexp.MustCompile(`ab`), regexp.MustCompile(`bc`))}
	if _, err := Diff("abc x", "abc y", opts...); err == nil {
		t.Errorf("Diff with overlapping atomic patterns: no error")
	}
	if _, err := Edits("abc x", "abc y", opts...); err == nil {
		t.Errorf("Edits with overlapping atomic patterns: no error")
	}
	// Identical inputs take the fast path before tokenization has a chance to fail.
	if got, err := Diff("abc", "abc", opts...); err != nil || got != "abc" {
		t.Errorf("Diff with identical inputs: got %q, %v, want %q, nil", got, err, "abc")
	}
}

func TestEdits(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		opts     []Option
		want     []Edit
	}{
		{
			name: "identical",
			old:  "<p>Hello</p>",
			new:  "<p>Hello</p>",
			want: []Edit{
				{Equal, "<p>Hello</p>", "<p>Hello</p>"},
			},
		},
		{
			name: "empty",
		},
		{
			name: "old-empty",
			new:  "<p>new</p>",
			want: []Edit{
				{Insert, "", "<p>new</p>"},
			},
		},
		{
			name: "new-empty",
			old:  "<p>old</p>",
			want: []Edit{
				{Delete, "<p>old</p>", ""},
			},
		},
		{
			name: "insert",
			old:  "<p>Hello world</p>",
			new:  "<p>Hello there world</p>",
			want: []Edit{
				{Equal, "<p>Hello ", "<p>Hello "},
				{Insert, "", "there "},
				{Equal, "world</p>", "world</p>"},
			},
		},
		{
			name: "delete",
			old:  "<p>Hello there world</p>",
			new:  "<p>Hello world</p>",
			want: []Edit{
				{Equal, "<p>Hello ", "<p>Hello "},
				{Delete, "there ", ""},
				{Equal, "world</p>", "world</p>"},
			},
		},
		{
			name: "replace",
			old:  "cat",
			new:  "dog",
			want: []Edit{
				{Replace, "cat", "dog"},
			},
		},
		{
			name: "equal-but-not-identical-whitespace",
			old:  "a  b",
			new:  "a b",
			want: []Edit{
				{Equal, "a  b", "a b"},
			},
		},
		{
			name: "equal-but-not-identical-attributes",
			old:  `<p class="a">x</p>`,
			new:  `<p class="b">x</p>`,
			want: []Edit{
				{Equal, `<p class="a">x</p>`, `<p class="b">x</p>`},
			},
		},
		{
			name: "strict-whitespace",
			old:  "a b",
			new:  "a  b",
			opts: []Option{StrictWhitespace()},
			want: []Edit{
				{Equal, "a", "a"},
				{Replace, " ", "  "},
				{Equal, "b", "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Edits(tt.old, tt.new, tt.opts...)
			if err != nil {
				t.Fatalf("Edits(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Edits result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

// Edits must cover both inputs completely no matter how mangled the markup is: concatenating
// the old sides yields old, concatenating the new sides yields new.
func TestEditsCover(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"plain", "the quick brown fox", "the quick red fox"},
		{"tags", "<p>Hello world</p>", "<p>Hello there world</p>"},
		{"formatting", "<b>Hello</b> world", "Hello world"},
		{"malformed", "<b><i>unbalanced", "<i>unbalanced</i>"},
		{"unterminated-tag", "before <a href=", "after <a href="},
		{"entities", "AT&T works &amp; plays", "AT&T sleeps &amp; plays"},
		{"nbsp", "a&nbsp;&nbsp;b", "b&nbsp;a"},
		{"punctuation", "a, b!", "a. b?"},
		{"unicode", "héllo wörld", "héllo world"},
		{"old-empty", "", "<p>x</p>"},
		{"new-empty", "<p>x</p>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, err := Edits(tt.old, tt.new)
			if err != nil {
				t.Fatalf("Edits(...) failed: %v", err)
			}
			var old, new strings.Builder
			for _, e := range edits {
				old.WriteString(e.Old)
				new.WriteString(e.New)
			}
			if got := old.String(); got != tt.old {
				t.Errorf("edits don't cover old: got %q, want %q", got, tt.old)
			}
			if got := new.String(); got != tt.new {
				t.Errorf("edits don't cover new: got %q, want %q", got, tt.new)
			}
		})
	}
}

func TestEditsDisallowsMarkerClasses(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Edits with a marker class option: no panic")
		}
	}()
	_, _ = Edits("a", "b", InsertedClass("added"))
}

// The merged document always contains the complete new document: removing the <del> markers
// with their content and unwrapping the <ins> markers must yield new again, up to the
// non-breaking spaces substituted at marker boundaries.
func TestDiffRestoresNewDocument(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		opts     []Option
	}{
		{name: "insert", old: "<p>Hello world</p>", new: "<p>Hello there world</p>"},
		{name: "delete", old: "<p>Hello there world</p>", new: "<p>Hello world</p>"},
		{name: "replace", old: "<p>The quick brown fox</p>", new: "<p>The quick red fox</p>"},
		{name: "append", old: "a b", new: "a b c"},
		{name: "formatting-added", old: "Hello world", new: "<b>Hello world</b>"},
		{name: "formatting-removed", old: "<b>Hello</b> world", new: "Hello world"},
		{name: "formatting-replaced", old: "<b>cat</b>", new: "dog"},
		{name: "whitespace", old: "a b", new: "a  b"},
		{
			name: "strict-whitespace",
			old:  "a b",
			new:  "a  b",
			opts: []Option{StrictWhitespace()},
		},
		{name: "rewrite", old: "aaaa bbbb k cccc dddd", new: "eeee ffff k gggg hhhh"},
		{
			name: "rewrite-orphan-threshold",
			old:  "aaaa bbbb k cccc dddd",
			new:  "eeee ffff k gggg hhhh",
			opts: []Option{OrphanMatchThreshold(0.5)},
		},
		{
			name: "atomic",
			old:  "Hi {{name}}, bye",
			new:  "Hi {{user}}, bye",
			opts: []Option{Atomic(regexp.MustCompile(`\{\{[a-z]+\}\}`))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Diff(tt.old, tt.new, tt.opts...)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}
			got := restore.Normalize(restore.Document(merged))
			want := restore.Normalize(tt.new)
			if got != want {
				t.Errorf("restoring new from the merged document:\ngot:    %q\nwant:   %q\nmerged: %q", got, want, merged)
			}
		})
	}
}

func BenchmarkDiff(b *testing.B) {
	params := []struct {
		N int // number of words in the old document
		D int // number of replaced words
	}{
		{50, 5},
		{500, 50},
		{5000, 50},
		{5000, 500},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_D=%d", p.N, p.D)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))

			// Construct two documents that share everything except D replaced words. The
			// vocabulary is small on purpose, repeated words are the expensive case for the
			// matcher.
			words := make([]string, p.N)
			for i := range words {
				words[i] = fmt.Sprintf("w%d", rng.IntN(100))
			}
			old := renderParagraphs(words)

			changed := append([]string(nil), words...)
			for d := p.D; d > 0; {
				i := rng.IntN(len(changed))
				if !strings.HasPrefix(changed[i], "c") {
					changed[i] = "c" + changed[i]
					d--
				}
			}
			new := renderParagraphs(changed)

			for b.Loop() {
				if _, err := Diff(old, new); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// renderParagraphs joins words into paragraphs of forty words each.
func renderParagraphs(words []string) string {
	var sb strings.Builder
	for i, w := range words {
		switch {
		case i == 0:
			sb.WriteString("<p>")
		case i%40 == 0:
			sb.WriteString("</p>\n<p>")
		default:
			sb.WriteString(" ")
		}
		sb.WriteString(w)
	}
	if len(words) > 0 {
		sb.WriteString("</p>")
	}
	return sb.String()
}
