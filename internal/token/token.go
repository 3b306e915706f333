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

// Package token splits HTML fragments into the tokens the diff algorithm operates on: words,
// whitespace runs, tags, and entities. Tokenization is lossless, concatenating the text of all
// tokens reproduces the input byte for byte.
//
// This package is an implementation detail, the user facing API is provided by package htmldiff.
package token

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind

// Kind describes the class of a token. It is derived from the token text: a leading '<' makes a
// tag, text consisting only of whitespace (counting the non-breaking space entity) makes a
// whitespace run, a leading '&' makes an entity, everything else is a word.
type Kind int

const (
	Word Kind = iota
	Whitespace
	Tag
	Entity
)

// Token is a single unit of an HTML fragment. Text is always a substring of the input.
type Token struct {
	Kind Kind
	Text string
}

// span is a half-open byte range [s, e) of the input that must become a single token.
type span struct {
	s, e int
	pat  string
}

// tokenizer states.
const (
	stateText = iota
	stateTag
	stateWhitespace
	stateEntity
)

// Tokenize splits s into tokens. Substrings matching one of the atomic patterns are never split,
// every occurrence glues onto the token under construction and flushes at the end of the
// occurrence. Tokenize returns an error if occurrences of two atomic patterns overlap.
func Tokenize(s string, atomic []*regexp.Regexp) ([]Token, error) {
	spans, err := atomicSpans(s, atomic)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	state := stateText
	start := 0 // start of the token under construction, start == i means no pending text
	nspan := 0 // next atomic span ahead of the scan
	for i := 0; i < len(s); {
		// Atomic spans override the state machine: every byte of the span is appended to the
		// token under construction and the token flushes exactly at the span end.
		if nspan < len(spans) && i == spans[nspan].s {
			e := spans[nspan].e
			nspan++
			tokens = appendToken(tokens, s[start:e])
			start, i = e, e
			state = stateText
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch state {
		case stateText:
			switch {
			case r == '<':
				if start < i {
					tokens = appendToken(tokens, s[start:i])
				}
				start = i
				state = stateTag
				i += size
			case r == '&':
				if start < i {
					tokens = appendToken(tokens, s[start:i])
				}
				start = i
				state = stateEntity
				i += size
			case unicode.IsSpace(r):
				if start < i {
					tokens = appendToken(tokens, s[start:i])
				}
				start = i
				state = stateWhitespace
				i += size
			case isWordChar(r):
				i += size
			default:
				// Any other character becomes a token on its own.
				if start < i {
					tokens = appendToken(tokens, s[start:i])
				}
				tokens = appendToken(tokens, s[i:i+size])
				start = i + size
				i += size
			}

		case stateTag:
			i += size
			if r == '>' {
				tokens = appendToken(tokens, s[start:i])
				start = i
				state = stateText
			}

		case stateWhitespace:
			switch {
			case r == '<':
				tokens = appendToken(tokens, s[start:i])
				start = i
				state = stateTag
				i += size
			case r == '&':
				tokens = appendToken(tokens, s[start:i])
				start = i
				state = stateEntity
				i += size
			case unicode.IsSpace(r):
				i += size
			default:
				tokens = appendToken(tokens, s[start:i])
				start = i
				state = stateText // reprocess r as text
			}

		case stateEntity:
			switch {
			case r == ';':
				i += size
				tokens = appendToken(tokens, s[start:i])
				start = i
				state = stateText
				// A whitespace entity stays glued to adjacent literal whitespace: merge the two
				// most recent tokens back into the accumulator and keep collecting whitespace.
				if n := len(tokens); n >= 2 && tokens[n-1].Kind == Whitespace && tokens[n-2].Kind == Whitespace {
					start = i - len(tokens[n-1].Text) - len(tokens[n-2].Text)
					tokens = tokens[:n-2]
					state = stateWhitespace
				}
			case isWordChar(r):
				i += size
			default:
				state = stateText // not an entity after all, reprocess r as text
			}

		default:
			panic("never reached")
		}
	}
	if start < len(s) {
		tokens = appendToken(tokens, s[start:])
	}
	return tokens, nil
}

// atomicSpans locates all occurrences of the atomic patterns in s and returns them ordered by
// position. Overlapping occurrences of different patterns make the token boundaries ambiguous
// and are reported as an error.
func atomicSpans(s string, atomic []*regexp.Regexp) ([]span, error) {
	if len(atomic) == 0 {
		return nil, nil
	}
	var spans []span
	for _, re := range atomic {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if loc[0] == loc[1] {
				continue // an empty occurrence cannot form a token
			}
			spans = append(spans, span{s: loc[0], e: loc[1], pat: re.String()})
		}
	}
	slices.SortFunc(spans, func(a, b span) int {
		if a.s != b.s {
			return a.s - b.s
		}
		return a.e - b.e
	})
	for i := 1; i < len(spans); i++ {
		if spans[i].s < spans[i-1].e {
			return nil, fmt.Errorf("htmldiff: atomic patterns %s and %s match overlapping text at offset %d", spans[i-1].pat, spans[i].pat, spans[i].s)
		}
	}
	return spans, nil
}

func appendToken(tokens []Token, text string) []Token {
	return append(tokens, Token{Kind: kindOf(text), Text: text})
}

func kindOf(text string) Kind {
	switch {
	case text[0] == '<':
		return Tag
	case IsWhitespace(text):
		return Whitespace
	case text[0] == '&':
		return Entity
	default:
		return Word
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '#' || r == '@'
}

// IsWhitespace reports whether s consists entirely of whitespace, counting the non-breaking
// space entity "&nbsp;" as whitespace.
func IsWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for len(s) > 0 {
		if strings.HasPrefix(s, "&nbsp;") {
			s = s[len("&nbsp;"):]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		if !unicode.IsSpace(r) {
			return false
		}
		s = s[size:]
	}
	return true
}

// IsClosing reports whether s is a closing tag token.
func IsClosing(s string) bool {
	return len(s) >= 2 && s[0] == '<' && s[1] == '/'
}

// TagName returns the lowercase element name of a tag token, ignoring attributes and the
// closing-tag slash, or "" if s has none.
func TagName(s string) string {
	if len(s) < 2 || s[0] != '<' {
		return ""
	}
	s = strings.TrimPrefix(s[1:], "/")
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == '>' || r == '/' || unicode.IsSpace(r)
	})
	if end < 0 {
		end = len(s)
	}
	return strings.ToLower(s[:end])
}

// StripAttributes reduces a tag token to its bare form, "<name>" or "<name/>" for self-closing
// tags, dropping all attributes. Non-tag tokens are returned unchanged.
func StripAttributes(s string) string {
	if len(s) == 0 || s[0] != '<' {
		return s
	}
	i := 1
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '>' || unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if strings.HasSuffix(s, "/>") {
		return strings.TrimSuffix(s[:i], "/") + "/>"
	}
	if i == len(s)-1 && s[i] == '>' {
		return s // already bare
	}
	return s[:i] + ">"
}
