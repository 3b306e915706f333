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

// Package css provides a stylesheet for the change markers produced by [znkr.io/htmldiff].
//
// The rules returned by [Rules] render insertions on a light green background and deletions
// struck through on a light red background. For example, to style a diff that was produced
// with custom marker classes:
//
//	Rules(Classes("add", "rm", "chg"))
//
// Colors are emitted verbatim. It's the responsibility of the caller to ensure that they are
// valid CSS color values.
package css

import (
	"fmt"
	"strings"

	"znkr.io/htmldiff/internal/config"
)

// A Option makes it possible to configure the stylesheet returned by [Rules].
type Option func(*style)

type style struct {
	inserted, deleted, modified string
	insertedBackground          string
	deletedBackground           string
}

// Classes sets the marker classes the rules select on. They must match the classes the diff
// was rendered with, see [znkr.io/htmldiff.InsertedClass] and friends.
func Classes(inserted, deleted, modified string) Option {
	return func(s *style) {
		s.inserted = inserted
		s.deleted = deleted
		s.modified = modified
	}
}

// InsertedBackground sets the background color for inserted content.
func InsertedBackground(color string) Option {
	return func(s *style) {
		s.insertedBackground = color
	}
}

// DeletedBackground sets the background color for deleted content.
func DeletedBackground(color string) Option {
	return func(s *style) {
		s.deletedBackground = color
	}
}

// Rules returns CSS rules that style the <ins> and <del> markers of a rendered diff.
func Rules(opts ...Option) string {
	s := style{
		inserted:           config.Default.InsertedClass,
		deleted:            config.Default.DeletedClass,
		modified:           config.Default.ModifiedClass,
		insertedBackground: "#e6ffe6",
		deletedBackground:  "#ffe6e6",
	}
	for _, opt := range opts {
		opt(&s)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "ins.%s, ins.%s {\n", s.inserted, s.modified)
	fmt.Fprintf(&sb, "  background-color: %s;\n", s.insertedBackground)
	sb.WriteString("  text-decoration: none;\n")
	sb.WriteString("}\n\n")
	fmt.Fprintf(&sb, "del.%s, del.%s {\n", s.deleted, s.modified)
	fmt.Fprintf(&sb, "  background-color: %s;\n", s.deletedBackground)
	sb.WriteString("  text-decoration: line-through;\n")
	sb.WriteString("}\n")
	return sb.String()
}
