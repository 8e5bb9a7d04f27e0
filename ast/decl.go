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

// DeclFunc is a function declaration.
//
//	public func f(x: Int) throws -> Int { ... }
type DeclFunc struct {
	modifiers    []*Modifier
	keyword      token.Token
	name         token.Token
	params       *ParamList
	effect       token.Token // The throws qualifier, if any.
	arrow        token.Token
	returnPrefix *Unexpected // Strays between the arrow and the return type.
	ret          Type
	body         *Block
}

// DeclFuncArgs is the arguments for [NewDeclFunc].
type DeclFuncArgs struct {
	Modifiers    []*Modifier
	Keyword      token.Token
	Name         token.Token
	Params       *ParamList
	Effect       token.Token
	Arrow        token.Token
	ReturnPrefix *Unexpected
	Return       Type
	Body         *Block
}

// NewDeclFunc creates a new DeclFunc node.
func NewDeclFunc(args DeclFuncArgs) *DeclFunc {
	return &DeclFunc{
		modifiers:    args.Modifiers,
		keyword:      required(KindDeclFunc, "keyword", args.Keyword),
		name:         required(KindDeclFunc, "name", args.Name),
		params:       args.Params,
		effect:       args.Effect,
		arrow:        args.Arrow,
		returnPrefix: args.ReturnPrefix,
		ret:          args.Return,
		body:         args.Body,
	}
}

// Modifiers returns this declaration's modifiers, in source order. Nil when
// the declaration has none.
func (d *DeclFunc) Modifiers() []*Modifier { return d.modifiers }

// KeywordToken returns the introducing func keyword.
func (d *DeclFunc) KeywordToken() token.Token { return d.keyword }

// Name returns this function's name. It is a missing token when the source
// omits it.
func (d *DeclFunc) Name() token.Token { return d.name }

// Params returns this function's parameter list, or nil if the source has
// none at all.
func (d *DeclFunc) Params() *ParamList { return d.params }

// Effect returns the throws qualifier, or the zero token if absent.
func (d *DeclFunc) Effect() token.Token { return d.effect }

// Arrow returns the return-type arrow, or the zero token if absent.
func (d *DeclFunc) Arrow() token.Token { return d.arrow }

// ReturnPrefix returns the bucket of stray tokens that appeared between the
// arrow and the return type, or nil when there were none.
func (d *DeclFunc) ReturnPrefix() *Unexpected { return d.returnPrefix }

// Return returns this function's return type, or nil if absent.
func (d *DeclFunc) Return() Type { return d.ret }

// Body returns this function's body, or nil if absent.
func (d *DeclFunc) Body() *Block { return d.body }

// Kind implements [Node].
func (d *DeclFunc) Kind() Kind { return KindDeclFunc }

// Span implements [report.Spanner].
func (d *DeclFunc) Span() report.Span { return joinSpan(d) }

// Children implements [Node].
func (d *DeclFunc) Children() []Child {
	var children []Child
	for _, mod := range d.modifiers {
		children = append(children, nodeChild("modifiers", mod))
	}
	return append(children,
		tokenChild("keyword", d.keyword),
		tokenChild("name", d.name),
		nodeChild("params", d.params),
		tokenChild("effect", d.effect),
		tokenChild("arrow", d.arrow),
		nodeChild("return_prefix", d.returnPrefix),
		nodeChild("return", d.ret),
		nodeChild("body", d.body),
	)
}

func (d *DeclFunc) isDecl() {}
func (d *DeclFunc) isStmt() {}

// DeclVar is a var or let declaration.
//
//	private(set) var count: Int = 0
type DeclVar struct {
	modifiers []*Modifier
	keyword   token.Token
	name      token.Token
	colon     token.Token
	ty        Type
	equals    token.Token
	value     Expr
}

// DeclVarArgs is the arguments for [NewDeclVar].
type DeclVarArgs struct {
	Modifiers []*Modifier
	Keyword   token.Token
	Name      token.Token
	Colon     token.Token
	Type      Type
	Equals    token.Token
	Value     Expr
}

// NewDeclVar creates a new DeclVar node.
func NewDeclVar(args DeclVarArgs) *DeclVar {
	return &DeclVar{
		modifiers: args.Modifiers,
		keyword:   required(KindDeclVar, "keyword", args.Keyword),
		name:      required(KindDeclVar, "name", args.Name),
		colon:     args.Colon,
		ty:        args.Type,
		equals:    args.Equals,
		value:     args.Value,
	}
}

// Modifiers returns this declaration's modifiers. Nil when it has none.
func (d *DeclVar) Modifiers() []*Modifier { return d.modifiers }

// KeywordToken returns the introducing var or let keyword.
func (d *DeclVar) KeywordToken() token.Token { return d.keyword }

// Name returns the declared name; missing when the source omits it.
func (d *DeclVar) Name() token.Token { return d.name }

// Colon returns the colon before the type annotation, or the zero token.
func (d *DeclVar) Colon() token.Token { return d.colon }

// Type returns the type annotation, or nil if absent.
func (d *DeclVar) Type() Type { return d.ty }

// Equals returns the initializer's equals sign, or the zero token.
func (d *DeclVar) Equals() token.Token { return d.equals }

// Value returns the initializer expression, or nil if absent.
func (d *DeclVar) Value() Expr { return d.value }

// Kind implements [Node].
func (d *DeclVar) Kind() Kind { return KindDeclVar }

// Span implements [report.Spanner].
func (d *DeclVar) Span() report.Span { return joinSpan(d) }

// Children implements [Node].
func (d *DeclVar) Children() []Child {
	var children []Child
	for _, mod := range d.modifiers {
		children = append(children, nodeChild("modifiers", mod))
	}
	return append(children,
		tokenChild("keyword", d.keyword),
		tokenChild("name", d.name),
		tokenChild("colon", d.colon),
		nodeChild("type", d.ty),
		tokenChild("equals", d.equals),
		nodeChild("value", d.value),
	)
}

func (d *DeclVar) isDecl() {}
func (d *DeclVar) isStmt() {}

// DeclClass is a class declaration.
type DeclClass struct {
	modifiers []*Modifier
	keyword   token.Token
	name      token.Token
	body      *DeclBody
}

// DeclClassArgs is the arguments for [NewDeclClass].
type DeclClassArgs struct {
	Modifiers []*Modifier
	Keyword   token.Token
	Name      token.Token
	Body      *DeclBody
}

// NewDeclClass creates a new DeclClass node.
func NewDeclClass(args DeclClassArgs) *DeclClass {
	return &DeclClass{
		modifiers: args.Modifiers,
		keyword:   required(KindDeclClass, "keyword", args.Keyword),
		name:      required(KindDeclClass, "name", args.Name),
		body:      args.Body,
	}
}

// Modifiers returns this declaration's modifiers. Nil when it has none.
func (d *DeclClass) Modifiers() []*Modifier { return d.modifiers }

// KeywordToken returns the introducing class keyword.
func (d *DeclClass) KeywordToken() token.Token { return d.keyword }

// Name returns the class's name; missing when the source omits it.
func (d *DeclClass) Name() token.Token { return d.name }

// Body returns the class's body, or nil if absent.
func (d *DeclClass) Body() *DeclBody { return d.body }

// Kind implements [Node].
func (d *DeclClass) Kind() Kind { return KindDeclClass }

// Span implements [report.Spanner].
func (d *DeclClass) Span() report.Span { return joinSpan(d) }

// Children implements [Node].
func (d *DeclClass) Children() []Child {
	var children []Child
	for _, mod := range d.modifiers {
		children = append(children, nodeChild("modifiers", mod))
	}
	return append(children,
		tokenChild("keyword", d.keyword),
		tokenChild("name", d.name),
		nodeChild("body", d.body),
	)
}

func (d *DeclClass) isDecl() {}
func (d *DeclClass) isStmt() {}

// DeclBody is a braced list of declarations, the body of a class.
type DeclBody struct {
	lbrace token.Token
	decls  []Decl
	rbrace token.Token
}

// DeclBodyArgs is the arguments for [NewDeclBody].
type DeclBodyArgs struct {
	LBrace token.Token
	Decls  []Decl
	RBrace token.Token
}

// NewDeclBody creates a new DeclBody node.
func NewDeclBody(args DeclBodyArgs) *DeclBody {
	return &DeclBody{
		lbrace: required(KindDeclBody, "lbrace", args.LBrace),
		decls:  args.Decls,
		rbrace: required(KindDeclBody, "rbrace", args.RBrace),
	}
}

// LBrace returns this body's open brace.
func (b *DeclBody) LBrace() token.Token { return b.lbrace }

// Decls returns this body's declarations, in source order.
func (b *DeclBody) Decls() []Decl { return b.decls }

// RBrace returns this body's close brace; missing when the source omits it.
func (b *DeclBody) RBrace() token.Token { return b.rbrace }

// Kind implements [Node].
func (b *DeclBody) Kind() Kind { return KindDeclBody }

// Span implements [report.Spanner].
func (b *DeclBody) Span() report.Span { return joinSpan(b) }

// Children implements [Node].
func (b *DeclBody) Children() []Child {
	children := []Child{tokenChild("lbrace", b.lbrace)}
	for _, decl := range b.decls {
		children = append(children, nodeChild("decls", decl))
	}
	return append(children, tokenChild("rbrace", b.rbrace))
}

// ParamList is a parenthesized function parameter list.
type ParamList struct {
	lparen token.Token
	params []*Param
	commas []token.Token
	rparen token.Token
}

// ParamListArgs is the arguments for [NewParamList].
type ParamListArgs struct {
	LParen token.Token
	Params []*Param
	Commas []token.Token
	RParen token.Token
}

// NewParamList creates a new ParamList node.
func NewParamList(args ParamListArgs) *ParamList {
	return &ParamList{
		lparen: required(KindParamList, "lparen", args.LParen),
		params: args.Params,
		commas: args.Commas,
		rparen: required(KindParamList, "rparen", args.RParen),
	}
}

// LParen returns this list's open parenthesis.
func (p *ParamList) LParen() token.Token { return p.lparen }

// Params returns this list's parameters, in source order.
func (p *ParamList) Params() []*Param { return p.params }

// RParen returns this list's close parenthesis; missing when the source
// omits it.
func (p *ParamList) RParen() token.Token { return p.rparen }

// Kind implements [Node].
func (p *ParamList) Kind() Kind { return KindParamList }

// Span implements [report.Spanner].
func (p *ParamList) Span() report.Span { return joinSpan(p) }

// Children implements [Node].
func (p *ParamList) Children() []Child {
	children := []Child{tokenChild("lparen", p.lparen)}
	for i, param := range p.params {
		children = append(children, nodeChild("params", param))
		if i < len(p.commas) {
			children = append(children, tokenChild("commas", p.commas[i]))
		}
	}
	return append(children, tokenChild("rparen", p.rparen))
}

// Param is a single function parameter, `name: Type`.
type Param struct {
	name  token.Token
	colon token.Token
	ty    Type
}

// ParamArgs is the arguments for [NewParam].
type ParamArgs struct {
	Name  token.Token
	Colon token.Token
	Type  Type
}

// NewParam creates a new Param node.
func NewParam(args ParamArgs) *Param {
	return &Param{
		name:  required(KindParam, "name", args.Name),
		colon: args.Colon,
		ty:    args.Type,
	}
}

// Name returns this parameter's name; missing when the source omits it.
func (p *Param) Name() token.Token { return p.name }

// Colon returns the colon before the type, or the zero token.
func (p *Param) Colon() token.Token { return p.colon }

// Type returns this parameter's type, or nil if absent.
func (p *Param) Type() Type { return p.ty }

// Kind implements [Node].
func (p *Param) Kind() Kind { return KindParam }

// Span implements [report.Spanner].
func (p *Param) Span() report.Span { return joinSpan(p) }

// Children implements [Node].
func (p *Param) Children() []Child {
	return []Child{
		tokenChild("name", p.name),
		tokenChild("colon", p.colon),
		nodeChild("type", p.ty),
	}
}
