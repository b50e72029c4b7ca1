// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// String renders the rows as a nested list, e.g. "[[1, 2, 3], [4, 5, 6]]".
// Elements are formatted with %v. An empty grid renders as "[]".
// Complexity: O(r*c).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
