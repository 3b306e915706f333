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
	"strings"

	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/match"
	"znkr.io/htmldiff/internal/ops"
	"znkr.io/htmldiff/internal/render"
	"znkr.io/htmldiff/internal/token"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal   Op = iota // Content is the same in both documents
	Insert            // Content was inserted into the new document
	Delete            // Content was deleted from the old document
	Replace           // Content of the old document was replaced with new content
)

// Edit describes a single edit of a diff.
//
//   - For Equal, Old and New contain the matching content of both documents.
//   - For Insert, New contains the inserted content and Old is empty.
//   - For Delete, Old contains the deleted content and New is empty.
//   - For Replace, Old contains the replaced content and New its replacement.
//
// Whitespace that compares equal without being identical is reported as Equal with different Old
// and New contents, the New side is what [Diff] renders.
type Edit struct {
	Op       Op
	Old, New string
}

// Diff compares two HTML fragments word by word and merges them into a single fragment in which
// content that appears only in new is wrapped in <ins> markers and content that appears only in
// old is wrapped in <del> markers. The class attribute of a marker records whether the content
// was inserted, deleted, or replaced, so that the three cases can be styled differently, see
// [znkr.io/htmldiff/css].
//
// Inputs are compared as token sequences, not as trees: tags take part in the comparison like
// words do, but their attributes are ignored, and for matching content the new version is
// authoritative. Deleted formatting tags like <b> or <em> are never moved into the output,
// instead the text they covered is marked as modified. Malformed HTML is diffed as-is, whatever
// markup the inputs carry ends up in the output, so Diff must not be used as a sanitizer.
//
// If old and new are identical, the result is new. Diff returns an error only when patterns
// passed to [Atomic] match overlapping text.
//
// The following options are supported: [Atomic], [StrictWhitespace], [RepeatingWordsAccuracy],
// [OrphanMatchThreshold], [InsertedClass], [DeletedClass], [ModifiedClass]
//
// Important: The output is not guaranteed to be stable and may change with minor version
// upgrades. DO NOT rely on the output being stable.
func Diff(old, new string, opts ...Option) (string, error) {
	cfg := config.FromOptions(opts, config.AtomicPatterns|
		config.StrictWhitespace|
		config.RepeatingWordsAccuracy|
		config.OrphanMatchThreshold|
		config.MarkerClasses)
	if old == new {
		return new, nil
	}
	oldTokens, newTokens, err := tokenize(old, new, cfg)
	if err != nil {
		return "", err
	}
	operations := operations(oldTokens, newTokens, cfg)
	return render.HTML(operations, oldTokens, newTokens, cfg), nil
}

// Edits compares two HTML fragments word by word and returns the changes necessary to convert
// from one to the other.
//
// Edits covers both inputs completely: concatenating the Old fields of all edits yields old and
// concatenating the New fields yields new. Identical inputs result in a single Equal edit.
//
// Unlike [Diff], Edits always runs the full comparison, so that equal-but-not-identical content
// (e.g. whitespace that is ignored by default, or tags with changed attributes) is reported as
// Equal with both versions of the content.
//
// Edits returns an error only when patterns passed to [Atomic] match overlapping text.
//
// The following options are supported: [Atomic], [StrictWhitespace], [RepeatingWordsAccuracy],
// [OrphanMatchThreshold]
//
// Important: The output is not guaranteed to be stable and may change with minor version
// upgrades. DO NOT rely on the output being stable.
func Edits(old, new string, opts ...Option) ([]Edit, error) {
	cfg := config.FromOptions(opts, config.AtomicPatterns|
		config.StrictWhitespace|
		config.RepeatingWordsAccuracy|
		config.OrphanMatchThreshold)
	oldTokens, newTokens, err := tokenize(old, new, cfg)
	if err != nil {
		return nil, err
	}
	operations := operations(oldTokens, newTokens, cfg)
	if len(operations) == 0 {
		return nil, nil
	}
	edits := make([]Edit, 0, len(operations))
	for _, op := range operations {
		edits = append(edits, Edit{
			Op:  opOf(op.Kind),
			Old: concat(oldTokens[op.StartInOld:op.EndInOld]),
			New: concat(newTokens[op.StartInNew:op.EndInNew]),
		})
	}
	return edits, nil
}

func tokenize(old, new string, cfg config.Config) (oldTokens, newTokens []token.Token, err error) {
	oldTokens, err = token.Tokenize(old, cfg.AtomicPatterns)
	if err != nil {
		return nil, nil, err
	}
	newTokens, err = token.Tokenize(new, cfg.AtomicPatterns)
	if err != nil {
		return nil, nil, err
	}
	return oldTokens, newTokens, nil
}

func operations(old, new []token.Token, cfg config.Config) []ops.Operation {
	matches := match.Blocks(old, new, cfg)
	matches = match.RemoveOrphans(matches, old, new, cfg.OrphanMatchThreshold)
	return ops.Build(matches)
}

func opOf(kind ops.Kind) Op {
	switch kind {
	case ops.Equal:
		return Equal
	case ops.Insert:
		return Insert
	case ops.Delete:
		return Delete
	case ops.Replace:
		return Replace
	default:
		panic("never reached")
	}
}

func concat(tokens []token.Token) string {
	var sb strings.Builder
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	sb.Grow(n)
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}
