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

// ExprPath is a dotted name in expression position, such as `x` or
// `self.count`. Components alternate identifiers and dots, in source order.
type ExprPath struct {
	components []token.Token
}

// ExprPathArgs is the arguments for [NewExprPath].
type ExprPathArgs struct {
	Components []token.Token
}

// NewExprPath creates a new ExprPath node.
func NewExprPath(args ExprPathArgs) *ExprPath {
	if len(args.Components) == 0 {
		panic("lumencompile/ast: NewExprPath() requires at least one component")
	}
	return &ExprPath{components: args.Components}
}

// Components returns this path's tokens, in source order.
func (e *ExprPath) Components() []token.Token { return e.components }

// Kind implements [Node].
func (e *ExprPath) Kind() Kind { return KindExprPath }

// Span implements [report.Spanner].
func (e *ExprPath) Span() report.Span { return joinSpan(e) }

// Children implements [Node].
func (e *ExprPath) Children() []Child {
	children := make([]Child, len(e.components))
	for i, tok := range e.components {
		children[i] = tokenChild("components", tok)
	}
	return children
}

func (e *ExprPath) isStmt() {}
func (e *ExprPath) isExpr() {}

// ExprLiteral is a number or string literal.
type ExprLiteral struct {
	tok token.Token
}

// ExprLiteralArgs is the arguments for [NewExprLiteral].
type ExprLiteralArgs struct {
	Token token.Token
}

// NewExprLiteral creates a new ExprLiteral node.
func NewExprLiteral(args ExprLiteralArgs) *ExprLiteral {
	return &ExprLiteral{tok: required(KindExprLiteral, "token", args.Token)}
}

// Token returns the literal's token.
func (e *ExprLiteral) Token() token.Token { return e.tok }

// Kind implements [Node].
func (e *ExprLiteral) Kind() Kind { return KindExprLiteral }

// Span implements [report.Spanner].
func (e *ExprLiteral) Span() report.Span { return joinSpan(e) }

// Children implements [Node].
func (e *ExprLiteral) Children() []Child {
	return []Child{tokenChild("token", e.tok)}
}

func (e *ExprLiteral) isStmt() {}
func (e *ExprLiteral) isExpr() {}

// ExprCall is a call expression, `f(a, b)`.
type ExprCall struct {
	callee Expr
	lparen token.Token
	args   []Expr
	commas []token.Token
	rparen token.Token
}

// ExprCallArgs is the arguments for [NewExprCall].
type ExprCallArgs struct {
	Callee Expr
	LParen token.Token
	Args   []Expr
	Commas []token.Token
	RParen token.Token
}

// NewExprCall creates a new ExprCall node.
func NewExprCall(args ExprCallArgs) *ExprCall {
	if args.Callee == nil {
		panic("lumencompile/ast: NewExprCall() requires the \"callee\" slot")
	}
	return &ExprCall{
		callee: args.Callee,
		lparen: required(KindExprCall, "lparen", args.LParen),
		args:   args.Args,
		commas: args.Commas,
		rparen: required(KindExprCall, "rparen", args.RParen),
	}
}

// Callee returns the expression being called.
func (e *ExprCall) Callee() Expr { return e.callee }

// LParen returns the argument list's open parenthesis.
func (e *ExprCall) LParen() token.Token { return e.lparen }

// Args returns the call's arguments, in source order.
func (e *ExprCall) Args() []Expr { return e.args }

// RParen returns the argument list's close parenthesis; missing when the
// source omits it.
func (e *ExprCall) RParen() token.Token { return e.rparen }

// Kind implements [Node].
func (e *ExprCall) Kind() Kind { return KindExprCall }

// Span implements [report.Spanner].
func (e *ExprCall) Span() report.Span { return joinSpan(e) }

// Children implements [Node].
func (e *ExprCall) Children() []Child {
	children := []Child{
		nodeChild("callee", e.callee),
		tokenChild("lparen", e.lparen),
	}
	for i, arg := range e.args {
		children = append(children, nodeChild("args", arg))
		if i < len(e.commas) {
			children = append(children, tokenChild("commas", e.commas[i]))
		}
	}
	return append(children, tokenChild("rparen", e.rparen))
}

func (e *ExprCall) isStmt() {}
func (e *ExprCall) isExpr() {}

// TypePath is a dotted name in type position, such as `Int` or `Foo.Bar`.
type TypePath struct {
	components []token.Token
}

// TypePathArgs is the arguments for [NewTypePath].
type TypePathArgs struct {
	Components []token.Token
}

// NewTypePath creates a new TypePath node.
func NewTypePath(args TypePathArgs) *TypePath {
	if len(args.Components) == 0 {
		panic("lumencompile/ast: NewTypePath() requires at least one component")
	}
	return &TypePath{components: args.Components}
}

// Components returns this path's tokens, in source order.
func (t *TypePath) Components() []token.Token { return t.components }

// Kind implements [Node].
func (t *TypePath) Kind() Kind { return KindTypePath }

// Span implements [report.Spanner].
func (t *TypePath) Span() report.Span { return joinSpan(t) }

// Children implements [Node].
func (t *TypePath) Children() []Child {
	children := make([]Child, len(t.components))
	for i, tok := range t.components {
		children[i] = tokenChild("components", tok)
	}
	return children
}

func (t *TypePath) isType() {}
