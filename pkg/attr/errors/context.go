package errors

import (
	"fmt"
	"strconv"
	"strings"

	"mercator-hq/attrq/pkg/attr/ast"
)

// ExtractContext returns the lines of src within contextLines of location,
// numbered, with the location's line marked "->" and a caret under its
// column. It returns "" when the line is outside src.
func ExtractContext(src []byte, location ast.Location, contextLines int) string {
	lines := strings.Split(strings.TrimSuffix(string(src), "\n"), "\n")

	target := location.Line - 1
	if target < 0 || target >= len(lines) {
		return ""
	}
	first := max(target-contextLines, 0)
	last := min(target+contextLines, len(lines)-1)
	width := len(strconv.Itoa(last + 1))

	var sb strings.Builder
	for i := first; i <= last; i++ {
		marker := "  "
		if i == target {
			marker = "->"
		}
		fmt.Fprintf(&sb, "%s %*d | %s\n", marker, width, i+1, lines[i])

		if i == target && location.Column > 0 {
			fmt.Fprintf(&sb, "   %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", location.Column-1))
		}
	}
	return sb.String()
}
