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

package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
//
// We can't just use uniseg.StringWidth, because that doesn't respect
// tabstops.
func stringWidth(column int, text string) int {
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}

// padToColumn writes enough spaces to out to advance the render position
// from the given column to the target column.
func padToColumn(out *strings.Builder, column, target int) int {
	for column < target {
		out.WriteByte(' ')
		column++
	}
	return column
}

// expandTabs replaces tabs in text with spaces, respecting tabstops, so that
// underline rows rendered beneath it line up.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}

	var out strings.Builder
	column := 0
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		next := text
		if nextTab != -1 {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		out.WriteString(next)
		column = stringWidth(column, next)
		if nextTab != -1 {
			tab := TabstopWidth - (column % TabstopWidth)
			column = padToColumn(&out, column, column+tab)
		}
	}
	return out.String()
}
