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

// Package keyword provides an enum of every Lumen keyword, reserved or
// contextual.
//
// Reserved keywords are recognized by the lexer anywhere an identifier could
// occur. Contextual keywords lex as ordinary identifiers and are promoted to
// keywords only in positions where the grammar consults them by exact
// spelling, such as the modifier list before a declaration.
package keyword

//go:generate go run github.com/lumenlang/lumencompile/internal/enum keyword.yaml
