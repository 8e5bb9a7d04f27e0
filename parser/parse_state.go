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
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// parser is a Lumen parser.
type parser struct {
	*token.Stream
	*report.Report
}

// ensureProgress is a guard for turning infinite parse loops into clean
// terminations. Each loop iteration calls it once; it reports false when the
// cursor has not advanced since the previous call, which the loop must treat
// as "stop now".
func ensureProgress(c *token.Cursor, prev *token.CursorMark) bool {
	next := c.Mark()
	if next == *prev {
		return false
	}
	*prev = next
	return true
}

// punct consumes the next token if its text is want; otherwise it mints a
// missing token at the current position without consuming anything.
func punct(p *parser, c *token.Cursor, want string) token.Token {
	if next := c.Peek(); next.Text() == want {
		return c.Next()
	}
	return p.NewMissing(token.Punct, want, c.Offset())
}

// ident consumes the next token if it is an identifier (including contextual
// keywords, which lex as identifiers); otherwise it mints a missing token at
// the current position.
func ident(p *parser, c *token.Cursor) token.Token {
	if next := c.Peek(); next.Kind() == token.Ident && !next.Keyword().IsReserved() {
		return c.Next()
	}
	return p.NewMissing(token.Ident, "identifier", c.Offset())
}
