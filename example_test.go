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

package htmldiff_test

import (
	"fmt"
	"regexp"

	"znkr.io/htmldiff"
)

// Merge two versions of a fragment into a single document that marks the changes.
func ExampleDiff() {
	out, err := htmldiff.Diff(
		"<p>The quick brown fox</p>",
		"<p>The quick red fox</p>",
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <p>The quick <del class="diffmod">brown</del><ins class="diffmod">red</ins> fox</p>
}

// Template expressions mean nothing when split into pieces, marking them as atomic keeps every
// placeholder in one piece.
func ExampleDiff_atomic() {
	placeholder := regexp.MustCompile(`\{\{[a-z]+\}\}`)
	out, err := htmldiff.Diff(
		"Hi {{name}}, bye",
		"Hi {{user}}, bye",
		htmldiff.Atomic(placeholder),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// Hi<del class="diffmod"> {{name}}</del><ins class="diffmod"> {{user}}</ins>, bye
}

// List the changes between two versions of a fragment.
func ExampleEdits() {
	edits, err := htmldiff.Edits(
		"<p>Hello world</p>",
		"<p>Hello there world</p>",
	)
	if err != nil {
		panic(err)
	}
	for _, edit := range edits {
		fmt.Printf("%v %q -> %q\n", edit.Op, edit.Old, edit.New)
	}
	// Output:
	// Equal "<p>Hello " -> "<p>Hello "
	// Insert "" -> "there "
	// Equal "world</p>" -> "world</p>"
}
