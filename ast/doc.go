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

// Package ast provides the syntax tree for Lumen source files.
//
// The tree is total: the parser assigns a tree of the requested kind to any
// input, including empty or garbage input. Uncertainty is represented inside
// the tree rather than as a parse failure, using two recovery primitives:
//
//   - A missing token (see [token.Token.IsMissing]) stands in wherever the
//     grammar required a token that was not present. Structural slots are
//     therefore never literally absent.
//
//   - An [Unexpected] bucket holds source content that did not match any
//     expected slot at the point it was encountered. It is itself a node, so
//     it can occupy any recovery slot the schema designates.
//
// Nodes are constructed bottom-up and never mutated afterwards; the whole
// tree is a persistent value. Per-node bookkeeping, like the diagnostics
// pass's handled set, lives in side tables keyed by node identity (pointer
// identity for nodes, handle identity for tokens), never inside the nodes.
//
// Every node kind's shape is described by [Schemas], which is the only
// contract the builder-API code generator consumes.
package ast
