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

// Package ops turns the matched blocks into the edit operations that drive rendering. The
// operations partition both token sequences completely: every token of both inputs is covered
// by exactly one operation.
package ops

import (
	"fmt"

	"znkr.io/htmldiff/internal/match"
)

// Kind describes what an operation does to the token ranges it covers.
type Kind uint8

const (
	// The ranges match, content is carried over from new.
	Equal Kind = iota

	// The new range was inserted, the old range is empty.
	Insert

	// The old range was deleted, the new range is empty.
	Delete

	// The old range was replaced by the new range, both are non-empty.
	Replace
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// Operation covers a half-open token range in old and a half-open token range in new.
type Operation struct {
	Kind       Kind
	StartInOld int
	EndInOld   int
	StartInNew int
	EndInNew   int
}

// Build walks the matches with a cursor per sequence and fills the space before each match with
// an Insert, Delete, or Replace operation, followed by an Equal operation for the match itself.
// The sentinel match closes trailing differences. matches must be ordered and terminated by the
// sentinel, as returned by [match.Blocks].
func Build(matches []match.Match) []Operation {
	var operations []Operation
	posOld, posNew := 0, 0
	for _, m := range matches {
		gapOld := posOld < m.StartInOld
		gapNew := posNew < m.StartInNew
		var kind Kind
		switch {
		case gapOld && gapNew:
			kind = Replace
		case gapOld:
			kind = Delete
		case gapNew:
			kind = Insert
		}
		if gapOld || gapNew {
			operations = append(operations, Operation{
				Kind:       kind,
				StartInOld: posOld,
				EndInOld:   m.StartInOld,
				StartInNew: posNew,
				EndInNew:   m.StartInNew,
			})
		}
		if m.Size != 0 {
			operations = append(operations, Operation{
				Kind:       Equal,
				StartInOld: m.StartInOld,
				EndInOld:   m.EndInOld(),
				StartInNew: m.StartInNew,
				EndInNew:   m.EndInNew(),
			})
		}
		posOld, posNew = m.EndInOld(), m.EndInNew()
	}
	return operations
}
