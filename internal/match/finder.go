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

package match

import (
	"strings"

	"znkr.io/htmldiff/internal/token"
)

// finder locates the largest common block between a range of old and a range of new for one
// fixed block size. See the package documentation for the algorithm.
type finder struct {
	old, new             []token.Token
	startInOld, endInOld int
	startInNew, endInNew int
	blockSize            int
	ignoreWS             bool
	accuracy             float64

	index map[string][]int // window key -> positions in new where such a window ends
}

// find returns the largest match in the range, or the zero Match if the range has no common
// block of at least blockSize tokens.
func (f *finder) find() Match {
	f.indexNew()
	f.removeRepeating()
	if len(f.index) == 0 {
		return Match{}
	}

	var best Match
	bestLen := 0                // best chain length in windows, best.Size is in tokens
	chain := make(map[int]int)  // L: window end position in new -> consecutive window hits
	win := newWindow(f.blockSize)
	for i := f.startInOld; i < f.endInOld; i++ {
		key, full := win.push(f.normalize(f.old[i]))
		if !full {
			continue
		}
		positions, hit := f.index[key]
		if !hit {
			if len(chain) > 0 {
				chain = make(map[int]int)
			}
			continue
		}
		next := make(map[int]int, len(positions))
		for _, j := range positions {
			length := chain[j-1] + 1 // L[j] = L[j-1] + 1
			next[j] = length
			if length > bestLen {
				bestLen = length
				best = Match{
					StartInOld: i - length - f.blockSize + 2,
					StartInNew: j - length - f.blockSize + 2,
					Size:       length + f.blockSize - 1,
				}
			}
		}
		chain = next
	}
	return best
}

// indexNew records the end position of every window in the new range under its key.
func (f *finder) indexNew() {
	f.index = make(map[string][]int)
	win := newWindow(f.blockSize)
	for i := f.startInNew; i < f.endInNew; i++ {
		key, full := win.push(f.normalize(f.new[i]))
		if !full {
			continue
		}
		f.index[key] = append(f.index[key], i)
	}
}

// removeRepeating drops keys that occur too often in the new range to anchor a meaningful
// match, e.g. long runs of the same word or rows of identical tags. The cutoff scales with the
// range length: accuracy 1 can never drop a key, accuracy 0 drops all of them.
func (f *finder) removeRepeating() {
	cutoff := float64(f.endInNew-f.startInNew) * f.accuracy
	for key, positions := range f.index {
		if float64(len(positions)) > cutoff {
			delete(f.index, key)
		}
	}
}

// normalize maps a token to the text used for comparison: tags lose their attributes and, when
// whitespace differences are ignored, whitespace runs collapse to a single space.
func (f *finder) normalize(t token.Token) string {
	text := t.Text
	if t.Kind == token.Tag {
		text = token.StripAttributes(text)
	}
	if f.ignoreWS && token.IsWhitespace(text) {
		return " "
	}
	return text
}

// window keeps the normalized tokens of the sliding block window. push returns the key of the
// window ending at the pushed token once the window is full.
type window struct {
	size int
	ring []string
	n    int
}

func newWindow(size int) *window {
	return &window{size: size, ring: make([]string, size)}
}

func (w *window) push(s string) (key string, full bool) {
	w.ring[w.n%w.size] = s
	w.n++
	if w.n < w.size {
		return "", false
	}
	var sb strings.Builder
	for i := w.n - w.size; i < w.n; i++ {
		sb.WriteString(w.ring[i%w.size])
	}
	return sb.String(), true
}
