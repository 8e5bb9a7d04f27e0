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

package parser

import (
	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/internal/taxa"
	"github.com/lumenlang/lumencompile/token"
	"github.com/lumenlang/lumencompile/token/keyword"
)

// parseModifiers parses zero or more declaration modifiers, stopping at the
// first token that can neither continue a modifier nor begin a declaration.
//
// Returns nil, rather than an empty slice, when no modifiers were parsed.
// This function never diagnoses anything; whatever it cannot make sense of
// it leaves for the caller.
func parseModifiers(p *parser, c *token.Cursor) []*ast.Modifier {
	var mods []*ast.Modifier
	var mark token.CursorMark
	for {
		if !ensureProgress(c, &mark) {
			break
		}

		next := c.Peek()
		switch kw := next.Keyword(); {
		case kw.IsAccessLevel():
			// Access-level modifiers take an optional (set) detail, as in
			// private(set).
			mod := ast.ModifierArgs{Keyword: c.Next()}
			if c.Peek().Text() == "(" {
				mod.Detail = parseModifierDetail(p, c, "set")
			}
			mods = append(mods, ast.NewModifier(mod))

		case kw == keyword.Static:
			mods = append(mods, ast.NewModifier(ast.ModifierArgs{Keyword: c.Next()}))

		case kw == keyword.Class:
			// Ambiguous: class can modify a following declaration or
			// introduce one. Probe past it; if a declaration can start
			// there, or the contextual override keyword follows, it was a
			// modifier. Otherwise it belongs to the caller.
			lookahead := c.Mark()
			classTok := c.Next()
			after := c.Peek()
			if !canStartDecl(after) && after.Keyword() != keyword.Override {
				c.Rewind(lookahead)
				return mods
			}
			mods = append(mods, ast.NewModifier(ast.ModifierArgs{Keyword: classTok}))

		case kw.IsContextual():
			// A plain identifier spelling a contextual modifier. Of these,
			// only unowned takes a detail, and its detail word is free-form:
			// unowned(safe), unowned(unsafe).
			mod := ast.ModifierArgs{Keyword: c.Next()}
			if kw == keyword.Unowned && c.Peek().Text() == "(" {
				mod.Detail = parseModifierDetail(p, c, "")
			}
			mods = append(mods, ast.NewModifier(mod))

		default:
			return mods
		}
	}
	return mods
}

// parseModifierDetail parses a parenthesized modifier detail, starting at
// the open parenthesis.
//
// If want is non-empty, the detail token is the first token inside the
// parentheses whose text is exactly want, whether it lexes as an identifier
// or as a contextual keyword; otherwise it is simply the first token. Every
// other token inside the parentheses lands in the before or after bucket,
// and a detail that never shows up is minted missing, so all three middle
// slots are always populated.
func parseModifierDetail(p *parser, c *token.Cursor, want string) *ast.ModifierDetail {
	args := ast.ModifierDetailArgs{
		LParen: c.Next(),
		Before: ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.ModifierDetail}),
		After:  ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.ModifierDetail}),
	}

	// Tokens scanned before the detail is found are staged: they become the
	// before bucket if the detail shows up, and the after bucket of a missing
	// detail if it never does.
	var staged []token.Token
	var mark token.CursorMark
	for !c.Done() && c.Peek().Text() != ")" {
		if !ensureProgress(c, &mark) {
			break
		}
		// A reserved keyword or brace means the closing paren is long gone;
		// stop scanning rather than eat the next declaration.
		if next := c.Peek(); next.Keyword().IsReserved() || next.Text() == "{" || next.Text() == "}" {
			break
		}

		tok := c.Next()
		switch {
		case !args.Detail.IsZero():
			args.After.Append(tok)
		case want == "" || tok.Text() == want:
			args.Detail = tok
			for _, stray := range staged {
				args.Before.Append(stray)
			}
			staged = nil
		default:
			staged = append(staged, tok)
		}
	}

	if args.Detail.IsZero() {
		expected := want
		if expected == "" {
			expected = "identifier"
		}
		args.Detail = p.NewMissing(token.Ident, expected, args.LParen.Span().End)
		for _, stray := range staged {
			args.After.Append(stray)
		}
	}
	args.RParen = punct(p, c, ")")

	return ast.NewModifierDetail(args)
}
