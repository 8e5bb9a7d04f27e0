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

package lumencompile

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/legalize"
	"github.com/lumenlang/lumencompile/parser"
	"github.com/lumenlang/lumencompile/report"
)

// Compiler parses and legalizes batches of Lumen files.
//
// Parses of distinct files share nothing, so they run in parallel; within
// one file, parsing and diagnostics generation are strictly sequential.
// The zero value is ready to use.
type Compiler struct {
	// Parallelism caps the number of files processed concurrently.
	// Non-positive means one per available CPU.
	Parallelism int
}

// Result is the outcome of compiling one file.
//
// There is no error case: parsing is total, so every input produces a tree.
// Whether the input was well-formed is a property of the Report.
type Result struct {
	// The parsed file. Never nil.
	File *ast.File

	// Diagnostics for this file, in source order.
	Report report.Report
}

// Compile processes each file and returns one Result per file, in input
// order.
//
// Returns a non-nil error only when ctx is canceled; in that case the
// results are discarded.
func (c *Compiler) Compile(ctx context.Context, files ...*report.File) ([]Result, error) {
	limit := int64(c.Parallelism)
	if limit <= 0 {
		limit = int64(runtime.GOMAXPROCS(0))
	}

	sem := semaphore.NewWeighted(limit)
	results := make([]Result, len(files))
	for i, file := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func() {
			defer sem.Release(1)
			results[i] = Compile(file)
		}()
	}

	// Wait for stragglers by draining the whole semaphore.
	if err := sem.Acquire(ctx, limit); err != nil {
		return nil, err
	}
	return results, nil
}

// Compile parses and legalizes a single file.
func Compile(file *report.File) Result {
	var r Result
	r.File = parser.Parse(file, &r.Report)
	legalize.Generate(r.File, &r.Report)
	return r
}
