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
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Block is a braced list of statements.
type Block struct {
	lbrace token.Token
	stmts  []Stmt
	rbrace token.Token
}

// BlockArgs is the arguments for [NewBlock].
type BlockArgs struct {
	LBrace token.Token
	Stmts  []Stmt
	RBrace token.Token
}

// NewBlock creates a new Block node.
func NewBlock(args BlockArgs) *Block {
	return &Block{
		lbrace: required(KindBlock, "lbrace", args.LBrace),
		stmts:  args.Stmts,
		rbrace: required(KindBlock, "rbrace", args.RBrace),
	}
}

// LBrace returns this block's open brace.
func (b *Block) LBrace() token.Token { return b.lbrace }

// Stmts returns this block's statements, in source order.
func (b *Block) Stmts() []Stmt { return b.stmts }

// RBrace returns this block's close brace; missing when the source omits it.
func (b *Block) RBrace() token.Token { return b.rbrace }

// Kind implements [Node].
func (b *Block) Kind() Kind { return KindBlock }

// Span implements [report.Spanner].
func (b *Block) Span() report.Span { return joinSpan(b) }

// Children implements [Node].
func (b *Block) Children() []Child {
	children := []Child{tokenChild("lbrace", b.lbrace)}
	for _, stmt := range b.stmts {
		children = append(children, nodeChild("stmts", stmt))
	}
	return append(children, tokenChild("rbrace", b.rbrace))
}

func (b *Block) isStmt() {}

// StmtFor is a for-in loop.
//
//	for x in xs { ... }
//
// The in keyword is always present, as a missing token when the source
// omits it. The header bucket collects tokens between the for keyword and
// the body that could not be parsed as the pattern/in/sequence triple, such
// as the semicolons of a C-style header.
type StmtFor struct {
	keyword token.Token
	pattern Expr
	in      token.Token
	seq     Expr
	header  *Unexpected
	body    *Block
}

// StmtForArgs is the arguments for [NewStmtFor].
type StmtForArgs struct {
	Keyword token.Token
	Pattern Expr
	In      token.Token
	Seq     Expr
	Header  *Unexpected
	Body    *Block
}

// NewStmtFor creates a new StmtFor node.
func NewStmtFor(args StmtForArgs) *StmtFor {
	return &StmtFor{
		keyword: required(KindStmtFor, "keyword", args.Keyword),
		pattern: args.Pattern,
		in:      required(KindStmtFor, "in", args.In),
		seq:     args.Seq,
		header:  args.Header,
		body:    args.Body,
	}
}

// KeywordToken returns the introducing for keyword.
func (s *StmtFor) KeywordToken() token.Token { return s.keyword }

// Pattern returns the loop pattern, or nil if absent.
func (s *StmtFor) Pattern() Expr { return s.pattern }

// In returns the in keyword; missing when the source omits it.
func (s *StmtFor) In() token.Token { return s.in }

// Seq returns the sequence expression being iterated, or nil if absent.
func (s *StmtFor) Seq() Expr { return s.seq }

// Header returns the bucket of stray header tokens, or nil when there were
// none.
func (s *StmtFor) Header() *Unexpected { return s.header }

// Body returns the loop body, or nil if absent.
func (s *StmtFor) Body() *Block { return s.body }

// Kind implements [Node].
func (s *StmtFor) Kind() Kind { return KindStmtFor }

// Span implements [report.Spanner].
func (s *StmtFor) Span() report.Span { return joinSpan(s) }

// Children implements [Node].
func (s *StmtFor) Children() []Child {
	return []Child{
		tokenChild("keyword", s.keyword),
		nodeChild("pattern", s.pattern),
		tokenChild("in", s.in),
		nodeChild("seq", s.seq),
		nodeChild("header", s.header),
		nodeChild("body", s.body),
	}
}

func (s *StmtFor) isStmt() {}

// StmtIf is an if statement.
type StmtIf struct {
	keyword token.Token
	cond    Expr
	body    *Block
}

// StmtIfArgs is the arguments for [NewStmtIf].
type StmtIfArgs struct {
	Keyword token.Token
	Cond    Expr
	Body    *Block
}

// NewStmtIf creates a new StmtIf node.
func NewStmtIf(args StmtIfArgs) *StmtIf {
	return &StmtIf{
		keyword: required(KindStmtIf, "keyword", args.Keyword),
		cond:    args.Cond,
		body:    args.Body,
	}
}

// KeywordToken returns the introducing if keyword.
func (s *StmtIf) KeywordToken() token.Token { return s.keyword }

// Cond returns the condition, or nil if absent.
func (s *StmtIf) Cond() Expr { return s.cond }

// Body returns the then-body, or nil if absent.
func (s *StmtIf) Body() *Block { return s.body }

// Kind implements [Node].
func (s *StmtIf) Kind() Kind { return KindStmtIf }

// Span implements [report.Spanner].
func (s *StmtIf) Span() report.Span { return joinSpan(s) }

// Children implements [Node].
func (s *StmtIf) Children() []Child {
	return []Child{
		tokenChild("keyword", s.keyword),
		nodeChild("cond", s.cond),
		nodeChild("body", s.body),
	}
}

func (s *StmtIf) isStmt() {}

// StmtReturn is a return statement.
type StmtReturn struct {
	keyword token.Token
	value   Expr
}

// StmtReturnArgs is the arguments for [NewStmtReturn].
type StmtReturnArgs struct {
	Keyword token.Token
	Value   Expr
}

// NewStmtReturn creates a new StmtReturn node.
func NewStmtReturn(args StmtReturnArgs) *StmtReturn {
	return &StmtReturn{
		keyword: required(KindStmtReturn, "keyword", args.Keyword),
		value:   args.Value,
	}
}

// KeywordToken returns the introducing return keyword.
func (s *StmtReturn) KeywordToken() token.Token { return s.keyword }

// Value returns the returned value, or nil if absent.
func (s *StmtReturn) Value() Expr { return s.value }

// Kind implements [Node].
func (s *StmtReturn) Kind() Kind { return KindStmtReturn }

// Span implements [report.Spanner].
func (s *StmtReturn) Span() report.Span { return joinSpan(s) }

// Children implements [Node].
func (s *StmtReturn) Children() []Child {
	return []Child{
		tokenChild("keyword", s.keyword),
		nodeChild("value", s.value),
	}
}

func (s *StmtReturn) isStmt() {}
