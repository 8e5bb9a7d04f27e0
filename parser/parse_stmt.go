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

// parseBlock parses a braced statement list, starting at the open brace.
func parseBlock(p *parser, c *token.Cursor) *ast.Block {
	args := ast.BlockArgs{LBrace: c.Next()}

	var mark token.CursorMark
	for !c.Done() && c.Peek().Text() != "}" {
		if !ensureProgress(c, &mark) {
			break
		}
		if stmt := parseStmt(p, c); stmt != nil {
			args.Stmts = append(args.Stmts, stmt)
		}
	}

	args.RBrace = punct(p, c, "}")
	return ast.NewBlock(args)
}

// parseStmt parses a single statement.
//
// This function always advances the cursor if it is not done and not
// resting on a close brace.
func parseStmt(p *parser, c *token.Cursor) ast.Stmt {
	next := c.Peek()
	switch next.Keyword() {
	case keyword.For:
		return parseStmtFor(p, c)
	case keyword.If:
		return parseStmtIf(p, c)
	case keyword.Return:
		return parseStmtReturn(p, c)
	}

	switch {
	case canStartDecl(next), looksLikeDecl(c):
		return parseDecl(p, c, taxa.Block)
	case canStartExpr(next):
		return parseExpr(p, c)
	case canStartBlock(next):
		return parseBlock(p, c)
	}

	// Statement-position junk.
	bucket := ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.Block})
	for !c.Done() && !canStartStmt(c.Peek()) && c.Peek().Text() != "}" {
		bucket.Append(c.Next())
	}
	return bucket
}

// looksLikeDecl resolves contextual modifier spellings in statement
// position: `lazy var x` opens a declaration, while `lazy.init()` is an
// expression. Probes past any run of contextual spellings and checks
// whether a declaration can start there.
func looksLikeDecl(c *token.Cursor) bool {
	if !c.Peek().Keyword().IsContextual() {
		return false
	}

	mark := c.Mark()
	defer c.Rewind(mark)
	for c.Peek().Keyword().IsContextual() {
		c.Next()
	}
	return canStartDecl(c.Peek())
}

// parseStmtFor parses a for-in loop, starting at the for keyword.
func parseStmtFor(p *parser, c *token.Cursor) *ast.StmtFor {
	args := ast.StmtForArgs{Keyword: c.Next()}

	if canStartExpr(c.Peek()) {
		args.Pattern = parseExpr(p, c)
	}
	if c.Peek().Keyword() == keyword.In {
		args.In = c.Next()
		if canStartExpr(c.Peek()) {
			args.Seq = parseExpr(p, c)
		}
	}

	// Everything else before the body is header junk; the semicolons of a
	// C-style header end up here.
	for !c.Done() && !canStartBlock(c.Peek()) && c.Peek().Text() != "}" {
		if args.Header == nil {
			args.Header = ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.ForHeader})
		}
		args.Header.Append(c.Next())
	}

	if args.In.IsZero() {
		args.In = p.NewMissing(token.Ident, "in", c.Offset())
	}
	if canStartBlock(c.Peek()) {
		args.Body = parseBlock(p, c)
	}

	return ast.NewStmtFor(args)
}

// parseStmtIf parses an if statement, starting at the if keyword.
func parseStmtIf(p *parser, c *token.Cursor) *ast.StmtIf {
	args := ast.StmtIfArgs{Keyword: c.Next()}

	if canStartExpr(c.Peek()) {
		args.Cond = parseExpr(p, c)
	}
	if canStartBlock(c.Peek()) {
		args.Body = parseBlock(p, c)
	}

	return ast.NewStmtIf(args)
}

// parseStmtReturn parses a return statement, starting at the return keyword.
func parseStmtReturn(p *parser, c *token.Cursor) *ast.StmtReturn {
	args := ast.StmtReturnArgs{Keyword: c.Next()}

	if canStartExpr(c.Peek()) {
		args.Value = parseExpr(p, c)
	}

	return ast.NewStmtReturn(args)
}
