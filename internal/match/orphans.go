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

import "znkr.io/htmldiff/internal/token"

// RemoveOrphans filters out interior matches that are too small for the changed regions around
// them. A tiny match inside a large rewrite, a single stray word or tag both versions happen to
// contain, splits one coherent replacement into a noisy delete-keep-insert sequence; dropping it
// merges the changed regions.
//
// A match is an orphan candidate only when it has changed tokens on both flanks of at least one
// side: matches contiguous with a positional neighbor on both axes are kept, and so are the
// first and the last match. A candidate survives when its new-side character length exceeds the
// prev-to-next character distance, the larger of the two sides, scaled by threshold. With
// threshold 0 every match survives, with threshold 1 no candidate does.
//
// matches must be ordered and terminated by the sentinel, as returned by [Blocks]. Neighbors are
// positional, a dropped match still serves as prev for the one after it.
func RemoveOrphans(matches []Match, old, new []token.Token, threshold float64) []Match {
	if threshold <= 0 || len(matches) <= 2 {
		return matches
	}
	kept := make([]Match, 0, len(matches))
	kept = append(kept, matches[0])
	for i := 1; i < len(matches)-1; i++ {
		prev, curr, next := matches[i-1], matches[i], matches[i+1]
		if prev.EndInOld() == curr.StartInOld && prev.EndInNew() == curr.StartInNew ||
			curr.EndInOld() == next.StartInOld && curr.EndInNew() == next.StartInNew {
			kept = append(kept, curr)
			continue
		}
		oldDist := textLen(old[prev.EndInOld():next.StartInOld])
		newDist := textLen(new[prev.EndInNew():next.StartInNew])
		matchChars := textLen(new[curr.StartInNew:curr.EndInNew()])
		if float64(matchChars) > max(float64(oldDist), float64(newDist))*threshold {
			kept = append(kept, curr)
		}
	}
	kept = append(kept, matches[len(matches)-1])
	return kept
}

func textLen(tokens []token.Token) int {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	return n
}
