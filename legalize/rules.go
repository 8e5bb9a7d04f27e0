// Copyright 2023-2026 The Lumen Language Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package legalize

import (
	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token/keyword"
)

// rule is a specialized recognizer, keyed on a node kind. A rule inspects
// the node's immediate recovery slots; when it matches, it emits a targeted
// diagnostic and marks exactly the identities it explained. When it does
// not match, it marks nothing and the generic rules take over.
type rule func(w *walker, n ast.Node)

// rules registers specialized recognizers by the node kind they fire at.
// Adding a recognizer here never requires touching the generic walk.
var rules = map[ast.Kind][]rule{
	ast.KindStmtFor:  {legalizeCStyleFor},
	ast.KindDeclFunc: {legalizeThrowsPlacement},
}

// legalizeCStyleFor recognizes the removed three-clause loop: a for
// statement whose header junk is exactly two semicolons.
//
//	for ; ; { }
//
// One diagnostic covers the whole condition region; the header bucket and
// the missing in keyword are claimed so the generic rules stay silent
// about them.
func legalizeCStyleFor(w *walker, n ast.Node) {
	stmt := n.(*ast.StmtFor)
	header := stmt.Header()
	if header == nil {
		return
	}

	semis := 0
	for _, child := range header.Children() {
		if child.Token.Text() == ";" {
			semis++
		}
	}
	if semis != 2 {
		return
	}

	region := report.Join(stmt.Pattern(), header, stmt.Seq())
	w.Errorf("C-style for statement is not supported").With(
		report.Snippet(region),
		report.Help("use a `for PATTERN in SEQUENCE { }` loop instead"),
	)
	w.mark(header)
	if stmt.In().IsMissing() {
		w.mark(stmt.In())
	}
}

// legalizeThrowsPlacement recognizes a throws qualifier written after the
// return arrow instead of before it.
//
//	func f() -> throws Int
//
// The diagnostic is anchored at the qualifier itself, with the arrow as a
// secondary snippet; the whole prefix bucket is claimed.
func legalizeThrowsPlacement(w *walker, n ast.Node) {
	decl := n.(*ast.DeclFunc)
	bucket := decl.ReturnPrefix()
	if bucket == nil {
		return
	}

	for _, child := range bucket.Children() {
		if child.Token.Keyword() != keyword.Throws {
			continue
		}

		w.Errorf("`throws` must precede `->`").With(
			report.Snippet(child.Token),
			report.Snippet(decl.Arrow(), "move `throws` before this `->`"),
		)
		w.mark(bucket, child.Token)
		return
	}
}
