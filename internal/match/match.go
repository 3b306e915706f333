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

// Package match finds the blocks of tokens that two HTML fragments have in common.
//
// The algorithm is a greedy divide and conquer: find the largest common block of the two token
// sequences, then repeat on the unmatched tokens before the block and on the unmatched tokens
// after it. Everything that ends up outside a match is a difference. This is deliberately not an
// optimal LCS: the greedy order decides which of several equally long candidates anchors the
// diff, and downstream behavior (orphan filtering, rendering) is tuned to the blocks this order
// produces. Changing the order changes outputs for inputs with repeated content even when an
// optimal algorithm would find a diff of the same size.
//
// # Finding the largest common block
//
// A single search works on a window of blockSize consecutive tokens. Every token is normalized
// first: tags lose their attributes and, by default, whitespace runs collapse to a single space.
// The key of a window is the concatenation of its normalized tokens.
//
// The search indexes all windows of the new range by key, recording the position where each
// window ends. It then slides the same window over the old range and chains hits: if the old
// window ending at i has the same key as a new window ending at j, and the previous old window
// matched the new window ending at j-1, the common run grows by one window. With L[j] the number
// of consecutive window hits ending at j,
//
//	L[j] = L[j-1] + 1
//
// and the largest L seen decides the result. A run of L consecutive windows of width blockSize
// covers L + blockSize - 1 tokens.
//
// For example, with blockSize = 2 and normalized token sequences
//
//	old: the quick fox       new: a quick fox
//
// the new windows are "aquick" (ending at 1) and "quickfox" (ending at 2). Sliding over old
// produces "thequick" (no hit) and "quickfox", which hits j = 2 with L[1] unset, so L[2] = 1:
// the block covers 1+2-1 = 2 tokens, "quick fox" on both sides.
//
// Windows whose key repeats very often in the new range (long runs of the same word, rows of
// identical tags) chain into quadratically many candidates and anchor matches on content that
// carries no meaning. Such keys are dropped from the index before the scan when their occurrence
// count exceeds len(newRange) scaled by the repeating-words accuracy.
//
// Window keys are plain concatenations rather than rolling hashes so that block boundaries are
// exactly the boundaries of key equality. A hash would be cheaper for wide windows but admits
// collisions, and a collision would silently move a match boundary.
//
// # Granularity
//
// The divide and conquer tries wide windows first: block sizes from min(4, len(old), len(new))
// down to 1, taking the first block size that produces a match. Wide windows anchor on long
// identical runs before single tokens get a say, which keeps matches from locking onto stray
// words inside otherwise rewritten text. The granularity is fixed once per diff from the full
// sequence lengths, not per range.
package match

import (
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/token"
)

// granularityMax is the widest block window ever tried.
const granularityMax = 4

// Match describes a block of tokens that old and new have in common: Size tokens starting at
// StartInOld and StartInNew compare equal after normalization. The display text can still
// differ, e.g. in tag attributes or whitespace, the new side is authoritative for rendering.
type Match struct {
	StartInOld int
	StartInNew int
	Size       int
}

func (m Match) EndInOld() int { return m.StartInOld + m.Size }
func (m Match) EndInNew() int { return m.StartInNew + m.Size }

// Blocks returns all matching blocks between old and new, ordered by position on both axes,
// terminated by the sentinel match of size zero at the end of both sequences. The sentinel lets
// consumers close trailing differences without a special case.
func Blocks(old, new []token.Token, cfg config.Config) []Match {
	granularity := min(granularityMax, len(old), len(new))

	// In-order traversal with an explicit work list instead of call recursion: examining a range
	// either discards it or splits it into prefix range, match, and suffix range. The stack
	// bounds memory by the number of matches instead of tying it to recursion depth.
	type item struct {
		match    Match
		startOld int
		endOld   int
		startNew int
		endNew   int
		emit     bool
	}
	var matches []Match
	stack := []item{{startOld: 0, endOld: len(old), startNew: 0, endNew: len(new)}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.emit {
			matches = append(matches, it.match)
			continue
		}
		m := find(old, new, it.startOld, it.endOld, it.startNew, it.endNew, granularity, cfg)
		if m.Size == 0 {
			continue
		}
		// Push in reverse order, the prefix must pop first.
		if m.EndInOld() < it.endOld && m.EndInNew() < it.endNew {
			stack = append(stack, item{
				startOld: m.EndInOld(),
				endOld:   it.endOld,
				startNew: m.EndInNew(),
				endNew:   it.endNew,
			})
		}
		stack = append(stack, item{match: m, emit: true})
		if it.startOld < m.StartInOld && it.startNew < m.StartInNew {
			stack = append(stack, item{
				startOld: it.startOld,
				endOld:   m.StartInOld,
				startNew: it.startNew,
				endNew:   m.StartInNew,
			})
		}
	}
	matches = append(matches, Match{StartInOld: len(old), StartInNew: len(new)})
	return matches
}

// find returns the largest match in the given range, trying coarse block sizes before finer
// ones. The first block size with a match wins.
func find(old, new []token.Token, startOld, endOld, startNew, endNew, granularity int, cfg config.Config) Match {
	for blockSize := granularity; blockSize > 0; blockSize-- {
		f := finder{
			old:        old,
			new:        new,
			startInOld: startOld,
			endInOld:   endOld,
			startInNew: startNew,
			endInNew:   endNew,
			blockSize:  blockSize,
			ignoreWS:   cfg.IgnoreWhitespace,
			accuracy:   cfg.RepeatingWordsAccuracy,
		}
		if m := f.find(); m.Size != 0 {
			return m
		}
	}
	return Match{}
}
