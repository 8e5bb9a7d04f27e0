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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/internal/taxa"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// declVar builds the tree for "var x = 1" by hand.
func declVar(t *testing.T) (*token.Stream, *ast.DeclVar) {
	t.Helper()

	s := token.NewStream(report.NewFile("test", "var x = 1"))
	kw := s.Push(3, token.Ident)
	_ = s.Push(1, token.Space)
	name := s.Push(1, token.Ident)
	_ = s.Push(1, token.Space)
	equals := s.Push(1, token.Punct)
	_ = s.Push(1, token.Space)
	one := s.Push(1, token.Number)
	s.Freeze()

	return s, ast.NewDeclVar(ast.DeclVarArgs{
		Keyword: kw,
		Name:    name,
		Equals:  equals,
		Value:   ast.NewExprLiteral(ast.ExprLiteralArgs{Token: one}),
	})
}

func TestSpanJoinsChildren(t *testing.T) {
	t.Parallel()

	_, decl := declVar(t)
	span := decl.Span()
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, 9, span.End)
	assert.Equal(t, "var x = 1", span.Text())

	// Empty optional slots do not perturb the join.
	assert.True(t, decl.Colon().IsZero())
	assert.Nil(t, decl.Type())
}

func TestChildrenFollowSchema(t *testing.T) {
	t.Parallel()

	_, decl := declVar(t)

	var schema ast.NodeSchema
	for _, s := range ast.Schemas() {
		if s.Kind == ast.KindDeclVar {
			schema = s
		}
	}
	require.NotNil(t, schema.Slots)

	slotIndex := make(map[string]int)
	for i, s := range schema.Slots {
		slotIndex[s.Name] = i
	}

	// Children come out in schema order; a repeated slot may contribute any
	// number of children, including none.
	prev := -1
	for _, c := range decl.Children() {
		i, ok := slotIndex[c.Slot]
		require.True(t, ok, "slot %q is not in the schema", c.Slot)
		assert.GreaterOrEqual(t, i, prev, "slot %q out of order", c.Slot)
		prev = i
	}
}

func TestRequiredSlots(t *testing.T) {
	t.Parallel()

	s := token.NewStream(report.NewFile("test", "var"))
	kw := s.Push(3, token.Ident)

	assert.Panics(t, func() {
		ast.NewDeclVar(ast.DeclVarArgs{Keyword: kw})
	}, "missing name")
	assert.Panics(t, func() {
		ast.NewExprPath(ast.ExprPathArgs{})
	}, "empty path")
	assert.Panics(t, func() {
		ast.NewModifierDetail(ast.ModifierDetailArgs{})
	}, "nil buckets")
}

func TestUnexpected(t *testing.T) {
	t.Parallel()

	s := token.NewStream(report.NewFile("test", "; ;"))
	semi1 := s.Push(1, token.Punct)
	_ = s.Push(1, token.Space)
	semi2 := s.Push(1, token.Punct)

	bucket := ast.NewUnexpected(ast.UnexpectedArgs{Where: taxa.ForHeader})
	assert.True(t, bucket.IsEmpty())
	assert.True(t, bucket.Span().IsZero())

	bucket.Append(semi1)
	bucket.Append(semi2)
	assert.False(t, bucket.IsEmpty())

	span := bucket.Span()
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, 3, span.End)

	// A bucket is accepted anywhere in the tree.
	var (
		_ ast.Decl = bucket
		_ ast.Stmt = bucket
		_ ast.Expr = bucket
		_ ast.Type = bucket
	)
}

func TestDeclIsStmt(t *testing.T) {
	t.Parallel()

	// Declarations stand in statement position without an assertion; this
	// fails to compile if Decl ever stops embedding Stmt.
	var _ ast.Stmt = ast.Decl(nil)

	_, decl := declVar(t)
	var stmt ast.Stmt = decl
	assert.Equal(t, ast.KindDeclVar, stmt.Kind())
}

func TestTokens(t *testing.T) {
	t.Parallel()

	_, decl := declVar(t)

	var texts []string
	for tok := range ast.Tokens(decl) {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"var", "x", "=", "1"}, texts)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	_, decl := declVar(t)
	printed := ast.Print(decl)

	assert.Contains(t, printed, "DeclVar\n")
	assert.Contains(t, printed, "value: ExprLiteral\n")
	// Elided: no colon or type rows.
	assert.NotContains(t, printed, "colon")
}
