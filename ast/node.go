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
	"fmt"
	"iter"
	"slices"

	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Node is a node in a Lumen syntax tree.
//
// Nodes are immutable after construction. The identity of a node is its
// pointer; two structurally identical nodes at different tree positions are
// distinct identities.
type Node interface {
	report.Spanner

	// Kind returns which grammar production this node represents.
	Kind() Kind

	// Children returns this node's child slots, in schema order. Every slot
	// the node's schema names is present, including optional slots that are
	// empty; an empty optional slot has a zero Token and a nil Node.
	Children() []Child
}

// Decl is a Lumen declaration. Declarations can appear in statement
// position, so every Decl is also a [Stmt].
type Decl interface {
	Stmt
	isDecl()
}

// Stmt is a Lumen statement. Declarations and expressions can appear in
// statement position, so they implement Stmt as well.
type Stmt interface {
	Node
	isStmt()
}

// Expr is a Lumen expression.
type Expr interface {
	Stmt
	isExpr()
}

// Type is a Lumen type.
type Type interface {
	Node
	isType()
}

// Child is one named slot of a node: either a token or a child node
// (possibly empty, for optional slots).
type Child struct {
	// The slot's name, per the node's schema.
	Slot string

	// Exactly one of these is set, unless the slot is an empty optional.
	Token token.Token
	Node  Node
}

// IsEmpty returns whether this is an empty optional slot.
func (c Child) IsEmpty() bool {
	return c.Token.IsZero() && c.Node == nil
}

// Span implements [report.Spanner].
func (c Child) Span() report.Span {
	if c.Node != nil {
		return c.Node.Span()
	}
	return c.Token.Span()
}

// tokenChild and nodeChild build [Child] values; a nil node yields an empty
// slot rather than a typed-nil interface.
func tokenChild(slot string, tok token.Token) Child {
	return Child{Slot: slot, Token: tok}
}

func nodeChild[N Node](slot string, n N) Child {
	// Comparing against the zero value of N catches typed nils for the
	// pointer node types without reflection.
	var zero N
	if any(n) == any(zero) {
		return Child{Slot: slot}
	}
	return Child{Slot: slot, Node: n}
}

// joinSpan computes a node's span as the join of its children's spans.
func joinSpan(n Node) report.Span {
	return report.JoinSeq(slices.Values(n.Children()))
}

// Tokens returns an iterator over all tokens in the subtree rooted at n, in
// source order.
func Tokens(n Node) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		walkTokens(n, yield)
	}
}

func walkTokens(n Node, yield func(token.Token) bool) bool {
	for _, c := range n.Children() {
		switch {
		case c.Node != nil:
			if !walkTokens(c.Node, yield) {
				return false
			}
		case !c.Token.IsZero():
			if !yield(c.Token) {
				return false
			}
		}
	}
	return true
}

// required panics if tok is the zero token. Constructors use it to enforce
// that required slots hold at least a missing token.
func required(kind Kind, slot string, tok token.Token) token.Token {
	if tok.IsZero() {
		panic(fmt.Sprintf("lumencompile/ast: New%v() requires the %q slot; pass a missing token instead", kind, slot))
	}
	return tok
}
