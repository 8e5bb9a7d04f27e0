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

// Package lumencompile is a compiler front-end for the Lumen language.
//
// The pipeline runs in one direction: source text is lexed into a token
// stream, parsed into a complete syntax tree, and the tree is walked to
// produce diagnostics. The parser is error-tolerant and total; it cannot
// fail, only produce trees rich in recovery markers. See the parser and
// legalize packages for the two halves, and [Compile] for the whole
// pipeline over one file.
package lumencompile
