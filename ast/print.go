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

package ast

import (
	"fmt"
	"strings"
)

// Print renders n as an indented debug tree, one slot per line. Empty
// optional slots are elided. The output is stable across runs, which makes
// it suitable for golden tests.
func Print(n Node) string {
	var buf strings.Builder
	printNode(&buf, n, "", "")
	return buf.String()
}

func printNode(buf *strings.Builder, n Node, slot, indent string) {
	buf.WriteString(indent)
	if slot != "" {
		buf.WriteString(slot)
		buf.WriteString(": ")
	}
	buf.WriteString(n.Kind().String())
	buf.WriteString("\n")

	for _, c := range n.Children() {
		switch {
		case c.Node != nil:
			printNode(buf, c.Node, c.Slot, indent+"  ")
		case !c.Token.IsZero():
			fmt.Fprintf(buf, "%s  %s: %s\n", indent, c.Slot, c.Token)
		}
	}
}
