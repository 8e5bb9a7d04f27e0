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
	"github.com/lumenlang/lumencompile/token"
)

// parseExpr parses an expression. The caller must have checked canStartExpr
// on the current token.
func parseExpr(p *parser, c *token.Cursor) ast.Expr {
	var expr ast.Expr
	switch c.Peek().Kind() {
	case token.Number, token.String:
		expr = ast.NewExprLiteral(ast.ExprLiteralArgs{Token: c.Next()})
	default:
		expr = parseExprPath(p, c)
	}

	// Call suffixes bind tighter than anything else in this grammar.
	for c.Peek().Text() == "(" {
		expr = parseExprCall(p, c, expr)
	}
	return expr
}

// parseExprPath parses a dotted name, starting at its first identifier.
func parseExprPath(p *parser, c *token.Cursor) *ast.ExprPath {
	components := []token.Token{c.Next()}
	for c.Peek().Text() == "." {
		components = append(components, c.Next()) // The dot.
		components = append(components, ident(p, c))
	}
	return ast.NewExprPath(ast.ExprPathArgs{Components: components})
}

// parseExprCall parses one call suffix, starting at the open parenthesis.
func parseExprCall(p *parser, c *token.Cursor, callee ast.Expr) *ast.ExprCall {
	args := ast.ExprCallArgs{
		Callee: callee,
		LParen: c.Next(),
	}

	var mark token.CursorMark
	for !c.Done() && c.Peek().Text() != ")" {
		if !ensureProgress(c, &mark) {
			break
		}
		if !canStartExpr(c.Peek()) {
			break
		}

		args.Args = append(args.Args, parseExpr(p, c))
		if c.Peek().Text() == "," {
			args.Commas = append(args.Commas, c.Next())
		}
	}

	args.RParen = punct(p, c, ")")
	return ast.NewExprCall(args)
}

// parseType parses a type. The caller must have checked canStartType on the
// current token.
func parseType(p *parser, c *token.Cursor) ast.Type {
	components := []token.Token{c.Next()}
	for c.Peek().Text() == "." {
		components = append(components, c.Next()) // The dot.
		components = append(components, ident(p, c))
	}
	return ast.NewTypePath(ast.TypePathArgs{Components: components})
}
