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
	"github.com/lumenlang/lumencompile/token"
	"github.com/lumenlang/lumencompile/token/keyword"
)

// canStartDecl returns whether tok can start a declaration proper: a
// declaration introducer, or a reserved modifier keyword.
//
// Contextual modifier spellings are deliberately excluded; from the
// grammar's point of view they are ordinary identifiers until the modifier
// parser promotes them.
func canStartDecl(tok token.Token) bool {
	switch kw := tok.Keyword(); {
	case kw == keyword.Func, kw == keyword.Var, kw == keyword.Let,
		kw == keyword.Class, kw == keyword.Static:
		return true
	case kw.IsAccessLevel():
		return true
	default:
		return false
	}
}

// canStartDeclPrefix returns whether tok can start the modifiers-then-
// declaration sequence; unlike [canStartDecl] it admits contextual modifier
// spellings.
func canStartDeclPrefix(tok token.Token) bool {
	return canStartDecl(tok) || tok.Keyword().IsContextual()
}

// canStartExpr returns whether tok can start an expression.
func canStartExpr(tok token.Token) bool {
	switch tok.Kind() {
	case token.Number, token.String:
		return true
	case token.Ident:
		return !tok.Keyword().IsReserved()
	default:
		return false
	}
}

// canStartType returns whether tok can start a type.
func canStartType(tok token.Token) bool {
	return tok.Kind() == token.Ident && !tok.Keyword().IsReserved()
}

// canStartBlock returns whether tok opens a braced block.
func canStartBlock(tok token.Token) bool {
	return tok.Text() == "{"
}

// canStartStmt returns whether tok can start a statement that [parseStmt]
// has a production for.
//
// while is reserved but has no production yet, so it is deliberately not
// here; a stray while gets swept as statement junk like any other reserved
// keyword.
func canStartStmt(tok token.Token) bool {
	switch tok.Keyword() {
	case keyword.For, keyword.If, keyword.Return:
		return true
	}
	return canStartDeclPrefix(tok) || canStartExpr(tok) || canStartBlock(tok)
}
