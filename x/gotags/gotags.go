// Package gotags writes capability flags as a go build -tags argument.
package gotags

import (
	"fmt"
	"io"
	"strings"

	"github.com/goplus/capcheck/compat"
)

// Tags returns the flag names of the enabled checks with duplicates
// removed, in first-seen order.
func Tags(enabled []compat.Check, prefix string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, f := range compat.Flags(enabled, prefix) {
		if !seen[f] {
			seen[f] = true
			tags = append(tags, f)
		}
	}
	return tags
}

// Arg returns the -tags argument, or "" when no check is enabled.
func Arg(enabled []compat.Check, prefix string) string {
	tags := Tags(enabled, prefix)
	if len(tags) == 0 {
		return ""
	}
	return "-tags=" + strings.Join(tags, ",")
}

// Emit writes the -tags argument to w as a single line. Nothing is
// written when no check is enabled.
func Emit(w io.Writer, enabled []compat.Check, prefix string) error {
	arg := Arg(enabled, prefix)
	if arg == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, arg)
	return err
}
