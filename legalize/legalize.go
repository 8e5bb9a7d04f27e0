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

// Package legalize generates diagnostics from finished Lumen syntax trees.
//
// The pass is a pure function of the tree: it knows nothing about how the
// tree was parsed, and reads only the two recovery markers the tree carries,
// missing tokens and [ast.Unexpected] buckets. Specialized rules recognize
// patterns of those markers at specific node kinds and claim them before
// the generic rules can, so each error site is explained exactly once.
package legalize

import (
	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Generate walks file in pre-order and appends one diagnostic per
// unexplained recovery marker to errs, in source order.
//
// Generate is deterministic and idempotent: generating twice from the same
// tree produces the same diagnostics in the same order.
func Generate(file *ast.File, errs *report.Report) {
	w := &walker{
		Report:  errs,
		handled: make(map[any]struct{}),
	}
	w.walk(file)
	errs.Canonicalize()
}

// walker carries the state of one generation pass.
type walker struct {
	*report.Report

	// Identities (token handles and node pointers) already explained by a
	// rule. Anything in here is skipped entirely by the generic walk.
	handled map[any]struct{}
}

// mark records ids as already explained. A rule must only mark identities
// it has actually diagnosed, or errors are silently dropped.
func (w *walker) mark(ids ...any) {
	for _, id := range ids {
		w.handled[id] = struct{}{}
	}
}

func (w *walker) done(id any) bool {
	_, ok := w.handled[id]
	return ok
}

func (w *walker) walk(n ast.Node) {
	if n == nil || w.done(n) {
		return
	}

	// Specialized rules run before the node's subtree is examined, so they
	// can claim children ahead of the generic rules.
	for _, rule := range rules[n.Kind()] {
		rule(w, n)
	}
	if w.done(n) {
		return
	}

	if bucket, ok := n.(*ast.Unexpected); ok {
		w.legalizeBucket(bucket)
		return
	}

	for _, child := range n.Children() {
		if child.Node != nil {
			w.walk(child.Node)
			continue
		}
		w.legalizeToken(child.Token)
	}
}

// legalizeBucket applies the generic rule for unexpected-token buckets: one
// diagnostic for the whole bucket, with its contents never re-diagnosed
// individually.
func (w *walker) legalizeBucket(bucket *ast.Unexpected) {
	if bucket.IsEmpty() {
		return
	}
	w.Errorf("unexpected tokens %s", bucket.Where.In()).With(
		report.Snippet(bucket.Span()),
	)
}

// legalizeToken applies the generic rule for missing tokens.
func (w *walker) legalizeToken(tok token.Token) {
	if tok.IsZero() || !tok.IsMissing() || w.done(tok) {
		return
	}
	w.Errorf("expected %s", expectation(tok)).With(
		report.Snippet(tok.Span()),
	)
}

// expectation phrases what the parser was looking for when it minted a
// missing token.
func expectation(tok token.Token) string {
	text := tok.ExpectedText()
	if text == "identifier" {
		return text
	}
	return "`" + text + "`"
}
