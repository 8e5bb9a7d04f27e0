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

package ast

import (
	"github.com/lumenlang/lumencompile/internal/taxa"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Unexpected is a bucket of source tokens the parser could not incorporate
// into any production at the position where they occurred.
//
// Unexpected nodes can appear anywhere a node can, so they implement every
// node category. They preserve the skipped tokens in order, which keeps the
// tree total over the input: every source token is reachable from the root.
type Unexpected struct {
	// Where in the grammar the tokens were skipped. This is what the
	// surrounding construct expected, not what the tokens are.
	Where taxa.Noun

	children []token.Token
}

// UnexpectedArgs is the arguments for [NewUnexpected].
type UnexpectedArgs struct {
	Where  taxa.Noun
	Tokens []token.Token
}

// NewUnexpected creates a new Unexpected node. The token slice may be empty;
// parsers mint empty buckets eagerly and fill them on demand.
func NewUnexpected(args UnexpectedArgs) *Unexpected {
	return &Unexpected{
		Where:    args.Where,
		children: args.Tokens,
	}
}

// Append adds a token to the end of this bucket. This is the only mutation
// the tree permits, and only the parser performs it, before the tree is
// handed out.
func (u *Unexpected) Append(tok token.Token) {
	u.children = append(u.children, tok)
}

// IsEmpty returns whether this bucket holds no tokens.
func (u *Unexpected) IsEmpty() bool {
	return len(u.children) == 0
}

// Kind implements [Node].
func (u *Unexpected) Kind() Kind { return KindUnexpected }

// Span implements [report.Spanner].
func (u *Unexpected) Span() report.Span {
	return joinSpan(u)
}

// Children implements [Node].
func (u *Unexpected) Children() []Child {
	children := make([]Child, len(u.children))
	for i, tok := range u.children {
		children[i] = tokenChild("tokens", tok)
	}
	return children
}

func (u *Unexpected) isDecl() {}
func (u *Unexpected) isStmt() {}
func (u *Unexpected) isExpr() {}
func (u *Unexpected) isType() {}
