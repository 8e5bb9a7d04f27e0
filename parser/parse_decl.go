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

// parseDecl parses any Lumen declaration.
//
// This function always advances the cursor if it is not done. Returns nil
// only when the cursor is done.
func parseDecl(p *parser, c *token.Cursor, in taxa.Noun) ast.Decl {
	if c.Done() {
		return nil
	}

	// Tokens that cannot even start a modifier list get swept into a bucket,
	// which is itself a declaration. Inside a braced body the sweep must not
	// eat the body's own close brace.
	stop := func(tok token.Token) bool {
		return canStartDeclPrefix(tok) || (in != taxa.TopLevel && tok.Text() == "}")
	}
	if !stop(c.Peek()) {
		bucket := ast.NewUnexpected(ast.UnexpectedArgs{Where: in})
		for !c.Done() && !stop(c.Peek()) {
			bucket.Append(c.Next())
		}
		return bucket
	}

	mods := parseModifiers(p, c)

	switch c.Peek().Keyword() {
	case keyword.Func:
		return parseDeclFunc(p, c, mods)
	case keyword.Var, keyword.Let:
		return parseDeclVar(p, c, mods)
	case keyword.Class:
		return parseDeclClass(p, c, mods)
	}

	// Modifiers with nothing to modify: hang them on a var declaration whose
	// introducer is missing, so the tree keeps them and the legalizer has
	// something concrete to point at.
	return ast.NewDeclVar(ast.DeclVarArgs{
		Modifiers: mods,
		Keyword:   p.NewMissing(token.Ident, "var", c.Offset()),
		Name:      p.NewMissing(token.Ident, "identifier", c.Offset()),
	})
}

// parseDeclFunc parses a function declaration, starting at the func keyword.
func parseDeclFunc(p *parser, c *token.Cursor, mods []*ast.Modifier) *ast.DeclFunc {
	args := ast.DeclFuncArgs{
		Modifiers: mods,
		Keyword:   c.Next(),
	}
	args.Name = ident(p, c)

	if c.Peek().Text() == "(" {
		args.Params = parseParamList(p, c)
	}
	if c.Peek().Keyword() == keyword.Throws {
		args.Effect = c.Next()
	}
	if c.Peek().Text() == "->" {
		args.Arrow = c.Next()

		// Anything between the arrow and the return type that cannot be the
		// return type goes into the prefix bucket; a misplaced throws is the
		// classic occupant.
		for next := c.Peek(); !canStartType(next) && !canStartBlock(next) &&
			next.Text() != "}" && !c.Done(); next = c.Peek() {
			if args.ReturnPrefix == nil {
				args.ReturnPrefix = ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.ReturnType})
			}
			args.ReturnPrefix.Append(c.Next())
		}
		if canStartType(c.Peek()) {
			args.Return = parseType(p, c)
		}
	}
	if canStartBlock(c.Peek()) {
		args.Body = parseBlock(p, c)
	}

	return ast.NewDeclFunc(args)
}

// parseParamList parses a parenthesized parameter list, starting at the
// open parenthesis.
func parseParamList(p *parser, c *token.Cursor) *ast.ParamList {
	args := ast.ParamListArgs{LParen: c.Next()}

	var mark token.CursorMark
	for !c.Done() && c.Peek().Text() != ")" {
		if !ensureProgress(c, &mark) {
			break
		}
		if c.Peek().Kind() != token.Ident || c.Peek().Keyword().IsReserved() {
			break
		}

		param := ast.ParamArgs{Name: c.Next()}
		if c.Peek().Text() == ":" {
			param.Colon = c.Next()
		}
		if canStartType(c.Peek()) {
			param.Type = parseType(p, c)
		}
		args.Params = append(args.Params, ast.NewParam(param))

		if c.Peek().Text() == "," {
			args.Commas = append(args.Commas, c.Next())
		}
	}

	args.RParen = punct(p, c, ")")
	return ast.NewParamList(args)
}

// parseDeclVar parses a var or let declaration, starting at the keyword.
func parseDeclVar(p *parser, c *token.Cursor, mods []*ast.Modifier) *ast.DeclVar {
	args := ast.DeclVarArgs{
		Modifiers: mods,
		Keyword:   c.Next(),
	}
	args.Name = ident(p, c)

	if c.Peek().Text() == ":" {
		args.Colon = c.Next()
		if canStartType(c.Peek()) {
			args.Type = parseType(p, c)
		}
	}
	if c.Peek().Text() == "=" {
		args.Equals = c.Next()
		if canStartExpr(c.Peek()) {
			args.Value = parseExpr(p, c)
		}
	}

	return ast.NewDeclVar(args)
}

// parseDeclClass parses a class declaration, starting at the class keyword.
func parseDeclClass(p *parser, c *token.Cursor, mods []*ast.Modifier) *ast.DeclClass {
	args := ast.DeclClassArgs{
		Modifiers: mods,
		Keyword:   c.Next(),
	}
	args.Name = ident(p, c)

	if canStartBlock(c.Peek()) {
		args.Body = parseDeclBody(p, c)
	}

	return ast.NewDeclClass(args)
}

// parseDeclBody parses a braced list of member declarations, starting at
// the open brace.
func parseDeclBody(p *parser, c *token.Cursor) *ast.DeclBody {
	args := ast.DeclBodyArgs{LBrace: c.Next()}

	var mark token.CursorMark
	for !c.Done() && c.Peek().Text() != "}" {
		if !ensureProgress(c, &mark) {
			break
		}
		if decl := parseDecl(p, c, taxa.ClassBody); decl != nil {
			args.Decls = append(args.Decls, decl)
		}
	}

	args.RBrace = punct(p, c, "}")
	return ast.NewDeclBody(args)
}
