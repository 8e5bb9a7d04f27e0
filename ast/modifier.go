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
	"github.com/lumenlang/lumencompile/token/keyword"
)

// Modifier is a single declaration modifier, such as `private` or
// `static`, with an optional parenthesized detail such as `(set)`.
type Modifier struct {
	keyword token.Token
	detail  *ModifierDetail
}

// ModifierArgs is the arguments for [NewModifier].
type ModifierArgs struct {
	Keyword token.Token
	Detail  *ModifierDetail // Optional.
}

// NewModifier creates a new Modifier node.
func NewModifier(args ModifierArgs) *Modifier {
	return &Modifier{
		keyword: required(KindModifier, "keyword", args.Keyword),
		detail:  args.Detail,
	}
}

// KeywordToken returns the token that spells this modifier.
func (m *Modifier) KeywordToken() token.Token { return m.keyword }

// Keyword returns which modifier keyword this is.
func (m *Modifier) Keyword() keyword.Keyword { return m.keyword.Keyword() }

// Detail returns this modifier's parenthesized detail, or nil if there
// isn't one.
func (m *Modifier) Detail() *ModifierDetail { return m.detail }

// Kind implements [Node].
func (m *Modifier) Kind() Kind { return KindModifier }

// Span implements [report.Spanner].
func (m *Modifier) Span() report.Span { return joinSpan(m) }

// Children implements [Node].
func (m *Modifier) Children() []Child {
	return []Child{
		tokenChild("keyword", m.keyword),
		nodeChild("detail", m.detail),
	}
}

// ModifierDetail is the parenthesized detail of a modifier, such as the
// `(set)` of `private(set)`.
//
// The Before and After buckets flank the detail token and are always
// present, usually empty; they absorb stray tokens inside the parentheses,
// such as the `get,` of `private(get, set)`. The detail token itself is
// always present too, as a missing token when the source provides none.
type ModifierDetail struct {
	lparen token.Token
	before *Unexpected
	detail token.Token
	after  *Unexpected
	rparen token.Token
}

// ModifierDetailArgs is the arguments for [NewModifierDetail].
type ModifierDetailArgs struct {
	LParen token.Token
	Before *Unexpected
	Detail token.Token
	After  *Unexpected
	RParen token.Token // Required; missing when the source omits it.
}

// NewModifierDetail creates a new ModifierDetail node.
func NewModifierDetail(args ModifierDetailArgs) *ModifierDetail {
	if args.Before == nil || args.After == nil {
		panic("lumencompile/ast: NewModifierDetail() requires both buckets; pass empty ones")
	}
	return &ModifierDetail{
		lparen: required(KindModifierDetail, "lparen", args.LParen),
		before: args.Before,
		detail: required(KindModifierDetail, "detail", args.Detail),
		after:  args.After,
		rparen: required(KindModifierDetail, "rparen", args.RParen),
	}
}

// LParen returns this detail's open parenthesis.
func (d *ModifierDetail) LParen() token.Token { return d.lparen }

// Before returns the bucket of stray tokens before the detail token.
func (d *ModifierDetail) Before() *Unexpected { return d.before }

// DetailToken returns the detail token, such as the `set` of
// `private(set)`. It is a missing token when the source omits it.
func (d *ModifierDetail) DetailToken() token.Token { return d.detail }

// After returns the bucket of stray tokens after the detail token.
func (d *ModifierDetail) After() *Unexpected { return d.after }

// RParen returns this detail's close parenthesis.
func (d *ModifierDetail) RParen() token.Token { return d.rparen }

// Kind implements [Node].
func (d *ModifierDetail) Kind() Kind { return KindModifierDetail }

// Span implements [report.Spanner].
func (d *ModifierDetail) Span() report.Span { return joinSpan(d) }

// Children implements [Node].
func (d *ModifierDetail) Children() []Child {
	return []Child{
		tokenChild("lparen", d.lparen),
		nodeChild("before", d.before),
		tokenChild("detail", d.detail),
		nodeChild("after", d.after),
		tokenChild("rparen", d.rparen),
	}
}
