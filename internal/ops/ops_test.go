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

package ops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/match"
	"znkr.io/htmldiff/internal/token"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		matches []match.Match
		want    []Operation
	}{
		{
			name: "all-equal",
			matches: []match.Match{
				{StartInOld: 0, StartInNew: 0, Size: 3},
				{StartInOld: 3, StartInNew: 3, Size: 0},
			},
			want: []Operation{
				{Kind: Equal, StartInOld: 0, EndInOld: 3, StartInNew: 0, EndInNew: 3},
			},
		},
		{
			name: "all-replaced",
			matches: []match.Match{
				{StartInOld: 1, StartInNew: 1, Size: 0},
			},
			want: []Operation{
				{Kind: Replace, StartInOld: 0, EndInOld: 1, StartInNew: 0, EndInNew: 1},
			},
		},
		{
			name: "insert-between-matches",
			matches: []match.Match{
				{StartInOld: 0, StartInNew: 0, Size: 3},
				{StartInOld: 3, StartInNew: 5, Size: 2},
				{StartInOld: 5, StartInNew: 7, Size: 0},
			},
			want: []Operation{
				{Kind: Equal, StartInOld: 0, EndInOld: 3, StartInNew: 0, EndInNew: 3},
				{Kind: Insert, StartInOld: 3, EndInOld: 3, StartInNew: 3, EndInNew: 5},
				{Kind: Equal, StartInOld: 3, EndInOld: 5, StartInNew: 5, EndInNew: 7},
			},
		},
		{
			name: "delete-at-front",
			matches: []match.Match{
				{StartInOld: 2, StartInNew: 0, Size: 1},
				{StartInOld: 3, StartInNew: 1, Size: 0},
			},
			want: []Operation{
				{Kind: Delete, StartInOld: 0, EndInOld: 2, StartInNew: 0, EndInNew: 0},
				{Kind: Equal, StartInOld: 2, EndInOld: 3, StartInNew: 0, EndInNew: 1},
			},
		},
		{
			name: "trailing-replace-closed-by-sentinel",
			matches: []match.Match{
				{StartInOld: 0, StartInNew: 0, Size: 1},
				{StartInOld: 3, StartInNew: 2, Size: 0},
			},
			want: []Operation{
				{Kind: Equal, StartInOld: 0, EndInOld: 1, StartInNew: 0, EndInNew: 1},
				{Kind: Replace, StartInOld: 1, EndInOld: 3, StartInNew: 1, EndInNew: 2},
			},
		},
		{
			name: "empty-inputs",
			matches: []match.Match{
				{StartInOld: 0, StartInNew: 0, Size: 0},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.matches)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

// Operations must tile both token index spaces in order with no gaps or overlaps.
func TestBuildPartitionsBothSequences(t *testing.T) {
	pairs := [][2]string{
		{"<p>Hello world</p>", "<p>Hello there world</p>"},
		{"cat", "dog"},
		{"a b c d e", "a x c y e"},
		{"", "added"},
		{"removed", ""},
		{"one two three four", "four three two one"},
	}
	for _, pair := range pairs {
		old, err := token.Tokenize(pair[0], nil)
		if err != nil {
			t.Fatal(err)
		}
		new, err := token.Tokenize(pair[1], nil)
		if err != nil {
			t.Fatal(err)
		}
		operations := Build(match.Blocks(old, new, config.Default))
		posOld, posNew := 0, 0
		for _, op := range operations {
			if op.StartInOld != posOld || op.StartInNew != posNew {
				t.Errorf("Build(%q, %q): operation %+v doesn't start at cursor (%d, %d)", pair[0], pair[1], op, posOld, posNew)
			}
			switch op.Kind {
			case Equal, Replace:
				if op.EndInOld <= op.StartInOld || op.EndInNew <= op.StartInNew {
					t.Errorf("Build(%q, %q): %v operation %+v must cover both sequences", pair[0], pair[1], op.Kind, op)
				}
			case Insert:
				if op.EndInOld != op.StartInOld || op.EndInNew <= op.StartInNew {
					t.Errorf("Build(%q, %q): insert operation %+v must cover only new", pair[0], pair[1], op)
				}
			case Delete:
				if op.EndInOld <= op.StartInOld || op.EndInNew != op.StartInNew {
					t.Errorf("Build(%q, %q): delete operation %+v must cover only old", pair[0], pair[1], op)
				}
			}
			posOld, posNew = op.EndInOld, op.EndInNew
		}
		if posOld != len(old) || posNew != len(new) {
			t.Errorf("Build(%q, %q): operations end at (%d, %d), want (%d, %d)", pair[0], pair[1], posOld, posNew, len(old), len(new))
		}
	}
}
