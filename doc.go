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

// Package htmldiff compares two versions of an HTML fragment and shows what changed between
// them, similar to what word processors show in change-tracking mode.
//
// The main functions are [Diff], which merges both versions into a single fragment with the
// differences wrapped in <ins> and <del> markers, and [Edits], which returns every individual
// change. Inputs are compared word by word on their token sequence rather than on a parsed
// tree: this keeps the comparison robust against malformed markup and makes the output a
// faithful merge of the inputs, but it also means the inputs are never validated or sanitized.
//
// Formatting tags like <b> and <em> receive special treatment so that removing or adding pure
// formatting never produces markup that crosses element boundaries: the affected text is marked
// as modified instead.
//
// Note: For a line-by-line diff of text or other non-HTML content, please see [znkr.io/diff].
//
// [znkr.io/diff]: https://pkg.go.dev/znkr.io/diff
package htmldiff
