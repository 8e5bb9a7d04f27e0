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

// Package interval provides an interval map that coalesces overlapping
// intervals as they are inserted.
package interval

import (
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Map is an interval map with half-open [start, end) intervals keyed in K.
//
// Inserting an interval that overlaps intervals already in the map merges
// them into one. A zero value is ready to use.
type Map[K constraints.Integer, V any] struct {
	// Keys in this tree are the starts of intervals in the map.
	tree btree.Map[K, entry[K, V]]
}

// Interval is an entry yielded by [Map.All].
type Interval[K constraints.Integer, V any] struct {
	// The half-open range for this interval.
	Start, End K

	// The value associated with it.
	Value V
}

type entry[K constraints.Integer, V any] struct {
	end   K
	value V
}

// Len returns the number of distinct intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Insert adds [start, end) to the map. Every interval already in the map
// that overlaps it is fused into the new interval; merge combines the
// existing value (first argument) with the incoming one.
//
// Empty intervals (end <= start) are ignored.
func (m *Map[K, V]) Insert(start, end K, value V, merge func(old, new V) V) {
	if end <= start {
		return
	}

	for {
		var (
			hitStart K
			hit      entry[K, V]
			found    bool
		)

		// The only candidates for overlap are the interval starting at or
		// before start, and those starting before end.
		m.tree.Descend(start, func(k K, e entry[K, V]) bool {
			if e.end > start {
				hitStart, hit, found = k, e, true
			}
			return false
		})
		if !found {
			m.tree.Ascend(start, func(k K, e entry[K, V]) bool {
				if k < end {
					hitStart, hit, found = k, e, true
				}
				return false
			})
		}
		if !found {
			break
		}

		m.tree.Delete(hitStart)
		start = min(start, hitStart)
		end = max(end, hit.end)
		value = merge(hit.value, value)
	}

	m.tree.Set(start, entry[K, V]{end: end, value: value})
}

// All returns an iterator over the intervals in the map, in ascending order
// of start.
func (m *Map[K, V]) All() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		m.tree.Scan(func(k K, e entry[K, V]) bool {
			return yield(Interval[K, V]{Start: k, End: e.end, Value: e.value})
		})
	}
}
