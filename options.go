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
	"regexp"

	"znkr.io/htmldiff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Atomic marks every substring matched by one of the patterns as indivisible: the matched text
// becomes a single token that can only ever match as a whole, together with any text that was
// pending when the match began. This is useful for template expressions and other placeholders
// whose parts mean nothing in isolation, e.g. `\{\{[^}]+\}\}` keeps "{{name}}" from being
// compared brace by brace.
//
// Patterns must not match overlapping regions of an input. [Diff] and [Edits] return an error if
// they do. Repeated Atomic options accumulate.
func Atomic(patterns ...*regexp.Regexp) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AtomicPatterns = append(cfg.AtomicPatterns, patterns...)
		return config.AtomicPatterns
	}
}

// StrictWhitespace makes whitespace significant for the comparison: two whitespace runs are only
// equal if they consist of the same characters. By default all whitespace runs compare equal to
// each other, so reflowing a paragraph doesn't show up as a change.
func StrictWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = false
		return config.StrictWhitespace
	}
}

// RepeatingWordsAccuracy controls how repeated words take part in matching: a word that occurs
// more than v times the length of the new document is ignored as a match candidate. Lowering the
// value keeps documents that consist largely of the same few words from producing a myriad of
// tiny matches. The default is 1, which ignores nothing; 0 disables matching entirely. v is
// clamped to [0, 1].
func RepeatingWordsAccuracy(v float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.RepeatingWordsAccuracy = min(max(v, 0), 1)
		return config.RepeatingWordsAccuracy
	}
}

// OrphanMatchThreshold removes small matches stranded inside otherwise changed text: a match
// whose content is at most v times as long as the changed content around it is treated as part
// of the change. This trades precision for readability, a handful of coincidentally equal words
// inside a rewritten paragraph usually isn't worth fragmenting the markers for. The first match
// of a comparison and matches that directly border another match are always kept. The default
// is 0, which keeps every match. v is clamped to [0, 1].
func OrphanMatchThreshold(v float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.OrphanMatchThreshold = min(max(v, 0), 1)
		return config.OrphanMatchThreshold
	}
}

// InsertedClass sets the class attribute of markers around inserted content. The default is
// "diffins".
func InsertedClass(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.InsertedClass = name
		return config.InsertedClass
	}
}

// DeletedClass sets the class attribute of markers around deleted content. The default is
// "diffdel".
func DeletedClass(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.DeletedClass = name
		return config.DeletedClass
	}
}

// ModifiedClass sets the class attribute of markers around replaced content and around content
// whose formatting changed. The default is "diffmod".
func ModifiedClass(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ModifiedClass = name
		return config.ModifiedClass
	}
}
