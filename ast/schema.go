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

// SlotType classifies what a schema slot can hold.
type SlotType byte

const (
	// TokenSlot holds a single token; when required, an absent token is a
	// missing token, never a zero one.
	TokenSlot SlotType = iota
	// NodeSlot holds a single child node.
	NodeSlot
	// BucketSlot holds an [Unexpected] recovery bucket.
	BucketSlot
	// RepeatedSlot holds zero or more tokens or nodes.
	RepeatedSlot
)

// String implements [fmt.Stringer].
func (t SlotType) String() string {
	switch t {
	case TokenSlot:
		return "token"
	case NodeSlot:
		return "node"
	case BucketSlot:
		return "bucket"
	case RepeatedSlot:
		return "repeated"
	default:
		return "unknown"
	}
}

// Slot describes one named child slot of a node kind.
type Slot struct {
	Name     string
	Type     SlotType
	Optional bool
	Doc      string
}

// NodeSchema describes the shape of one node kind: its ordered child slots.
//
// The schema is the contract for tooling that generates code from the tree
// shape, such as tree builders; it exposes no parsing behavior.
type NodeSchema struct {
	Kind  Kind
	Slots []Slot
}

// Schemas returns the schema for every node kind, ordered by kind.
//
// The result is freshly allocated; callers may modify it.
func Schemas() []NodeSchema {
	return []NodeSchema{
		{KindFile, []Slot{
			{"decls", RepeatedSlot, true, "top-level declarations"},
			{"eof", TokenSlot, false, "end-of-input token"},
		}},
		{KindUnexpected, []Slot{
			{"tokens", RepeatedSlot, true, "skipped source tokens, in order"},
		}},
		{KindModifier, []Slot{
			{"keyword", TokenSlot, false, "the modifier keyword"},
			{"detail", NodeSlot, true, "parenthesized detail"},
		}},
		{KindModifierDetail, []Slot{
			{"lparen", TokenSlot, false, "open parenthesis"},
			{"before", BucketSlot, false, "strays before the detail token"},
			{"detail", TokenSlot, false, "the detail word; missing if absent"},
			{"after", BucketSlot, false, "strays after the detail token"},
			{"rparen", TokenSlot, false, "close parenthesis"},
		}},
		{KindDeclFunc, []Slot{
			{"modifiers", RepeatedSlot, true, "declaration modifiers"},
			{"keyword", TokenSlot, false, "the func keyword"},
			{"name", TokenSlot, false, "function name"},
			{"params", NodeSlot, true, "parameter list"},
			{"effect", TokenSlot, true, "the throws qualifier"},
			{"arrow", TokenSlot, true, "the return-type arrow"},
			{"return_prefix", BucketSlot, true, "strays between arrow and return type"},
			{"return", NodeSlot, true, "return type"},
			{"body", NodeSlot, true, "function body"},
		}},
		{KindDeclVar, []Slot{
			{"modifiers", RepeatedSlot, true, "declaration modifiers"},
			{"keyword", TokenSlot, false, "the var or let keyword"},
			{"name", TokenSlot, false, "declared name"},
			{"colon", TokenSlot, true, "colon before the type"},
			{"type", NodeSlot, true, "type annotation"},
			{"equals", TokenSlot, true, "initializer equals sign"},
			{"value", NodeSlot, true, "initializer expression"},
		}},
		{KindDeclClass, []Slot{
			{"modifiers", RepeatedSlot, true, "declaration modifiers"},
			{"keyword", TokenSlot, false, "the class keyword"},
			{"name", TokenSlot, false, "class name"},
			{"body", NodeSlot, true, "class body"},
		}},
		{KindDeclBody, []Slot{
			{"lbrace", TokenSlot, false, "open brace"},
			{"decls", RepeatedSlot, true, "member declarations"},
			{"rbrace", TokenSlot, false, "close brace"},
		}},
		{KindParamList, []Slot{
			{"lparen", TokenSlot, false, "open parenthesis"},
			{"params", RepeatedSlot, true, "parameters, comma-separated"},
			{"rparen", TokenSlot, false, "close parenthesis"},
		}},
		{KindParam, []Slot{
			{"name", TokenSlot, false, "parameter name"},
			{"colon", TokenSlot, true, "colon before the type"},
			{"type", NodeSlot, true, "parameter type"},
		}},
		{KindBlock, []Slot{
			{"lbrace", TokenSlot, false, "open brace"},
			{"stmts", RepeatedSlot, true, "statements"},
			{"rbrace", TokenSlot, false, "close brace"},
		}},
		{KindStmtFor, []Slot{
			{"keyword", TokenSlot, false, "the for keyword"},
			{"pattern", NodeSlot, true, "loop pattern"},
			{"in", TokenSlot, false, "the in keyword; missing if absent"},
			{"seq", NodeSlot, true, "sequence expression"},
			{"header", BucketSlot, true, "strays before the body"},
			{"body", NodeSlot, true, "loop body"},
		}},
		{KindStmtIf, []Slot{
			{"keyword", TokenSlot, false, "the if keyword"},
			{"cond", NodeSlot, true, "condition"},
			{"body", NodeSlot, true, "then-body"},
		}},
		{KindStmtReturn, []Slot{
			{"keyword", TokenSlot, false, "the return keyword"},
			{"value", NodeSlot, true, "returned value"},
		}},
		{KindExprPath, []Slot{
			{"components", RepeatedSlot, false, "identifiers and dots"},
		}},
		{KindExprLiteral, []Slot{
			{"token", TokenSlot, false, "the literal token"},
		}},
		{KindExprCall, []Slot{
			{"callee", NodeSlot, false, "expression being called"},
			{"lparen", TokenSlot, false, "open parenthesis"},
			{"args", RepeatedSlot, true, "arguments, comma-separated"},
			{"rparen", TokenSlot, false, "close parenthesis"},
		}},
		{KindTypePath, []Slot{
			{"components", RepeatedSlot, false, "identifiers and dots"},
		}},
	}
}
