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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenlang/lumencompile/internal/interval"
)

func collect(m *interval.Map[int, string]) []interval.Interval[int, string] {
	var out []interval.Interval[int, string]
	for i := range m.All() {
		out = append(out, i)
	}
	return out
}

func concat(old, new string) string { return old + new }

func TestInsertDisjoint(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(10, 20, "b", concat)
	m.Insert(0, 5, "a", concat)
	m.Insert(30, 40, "c", concat)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []interval.Interval[int, string]{
		{Start: 0, End: 5, Value: "a"},
		{Start: 10, End: 20, Value: "b"},
		{Start: 30, End: 40, Value: "c"},
	}, collect(&m))
}

func TestInsertOverlap(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(0, 10, "a", concat)
	m.Insert(5, 15, "b", concat)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []interval.Interval[int, string]{
		{Start: 0, End: 15, Value: "ab"},
	}, collect(&m))
}

func TestInsertBridges(t *testing.T) {
	t.Parallel()

	// One insertion can swallow several existing intervals.
	var m interval.Map[int, string]
	m.Insert(0, 2, "a", concat)
	m.Insert(4, 6, "b", concat)
	m.Insert(8, 10, "c", concat)
	m.Insert(1, 9, "x", concat)

	assert.Equal(t, 1, m.Len())
	got := collect(&m)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 10, got[0].End)
	// Each merge folds one existing value into the accumulating one.
	assert.Len(t, got[0].Value, 4)
}

func TestInsertTouching(t *testing.T) {
	t.Parallel()

	// Half-open intervals that merely touch do not merge.
	var m interval.Map[int, string]
	m.Insert(0, 5, "a", concat)
	m.Insert(5, 10, "b", concat)
	assert.Equal(t, 2, m.Len())
}

func TestInsertEmpty(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(5, 5, "a", concat)
	m.Insert(5, 3, "b", concat)
	assert.Equal(t, 0, m.Len())
}
