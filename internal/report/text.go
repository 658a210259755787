package report

import (
	"fmt"
	"strings"

	"hooklint/internal/engine/hookstate"
)

// FileResult pairs a file with its diagnostics, in document order.
type FileResult struct {
	Path        string
	Diagnostics []hookstate.Diagnostic
}

// FormatText renders results the way compilers do: path:line:col: message,
// with proposed fixes indented underneath.
func FormatText(results []FileResult) string {
	var b strings.Builder
	total := 0
	for _, res := range results {
		for _, d := range res.Diagnostics {
			total++
			fmt.Fprintf(&b, "%s:%d:%d: %s\n", d.Location.File, d.Location.Line, d.Location.Column, d.Message)
			for i, fix := range d.Fixes {
				label := fix.Description
				if label == "" {
					label = "Rename to the conventional value + setter pair"
				}
				fmt.Fprintf(&b, "    fix %d: %s\n", i+1, label)
			}
		}
	}
	if total == 0 {
		b.WriteString("no issues found\n")
	} else {
		fmt.Fprintf(&b, "%d issue(s) found\n", total)
	}
	return b.String()
}
