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

// Package restore recovers the new document from a merged diff, the way a unified diff is
// checked by applying it with patch(1).
//
// A merged document carries the complete new version: dropping every <del> marker together with
// its content and unwrapping every <ins> marker leaves the new text behind. Two caveats bound
// what this can check: inputs that contain <ins> or <del> markup of their own are
// indistinguishable from markers, and deleted non-formatting tags are emitted outside the
// markers, so deletions spanning such tags leave them behind. Tests must pick their inputs
// accordingly.
//
// This package is only for testing.
package restore

import (
	"strings"

	"znkr.io/htmldiff/internal/token"
)

// Document returns the new document encoded in the merged diff.
func Document(merged string) string {
	tokens, err := token.Tokenize(merged, nil)
	if err != nil {
		panic("never reached") // only atomic patterns can fail tokenization
	}
	var sb strings.Builder
	depth := 0 // <del> nesting depth
	for _, t := range tokens {
		if t.Kind == token.Tag {
			switch name := token.TagName(t.Text); {
			case name == "del" && !token.IsClosing(t.Text):
				depth++
				continue
			case name == "del":
				depth--
				continue
			case name == "ins":
				continue
			}
		}
		if depth == 0 {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// Normalize replaces non-breaking space entities with plain spaces. Rendering substitutes
// &nbsp; for spaces that lead a marked run, comparisons against the raw input must erase that
// difference on both sides.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "&nbsp;", " ")
}
