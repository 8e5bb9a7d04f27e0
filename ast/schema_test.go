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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/lumenlang/lumencompile/ast"
)

func TestSchemasAreWellFormed(t *testing.T) {
	t.Parallel()

	seen := make(map[ast.Kind]bool)
	for _, schema := range ast.Schemas() {
		assert.False(t, seen[schema.Kind], "duplicate schema for %v", schema.Kind)
		seen[schema.Kind] = true
		assert.NotEmpty(t, schema.Slots, "%v", schema.Kind)

		names := make(map[string]bool)
		for _, slot := range schema.Slots {
			assert.NotEmpty(t, slot.Name, "%v", schema.Kind)
			assert.False(t, names[slot.Name], "duplicate slot %v.%s", schema.Kind, slot.Name)
			names[slot.Name] = true
		}
	}
}

func TestModifierDetailSchema(t *testing.T) {
	t.Parallel()

	var got ast.NodeSchema
	for _, schema := range ast.Schemas() {
		if schema.Kind == ast.KindModifierDetail {
			got = schema
		}
	}

	want := ast.NodeSchema{
		Kind: ast.KindModifierDetail,
		Slots: []ast.Slot{
			{Name: "lparen", Type: ast.TokenSlot},
			{Name: "before", Type: ast.BucketSlot},
			{Name: "detail", Type: ast.TokenSlot},
			{Name: "after", Type: ast.BucketSlot},
			{Name: "rparen", Type: ast.TokenSlot},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(ast.Slot{}, "Doc")); diff != "" {
		t.Errorf("unexpected schema (-want +got):\n%s", diff)
	}
}
