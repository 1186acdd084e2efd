package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Plural formats a count with the singular or plural noun.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// CommentCountLabel renders a story's comment count, or "discuss" when the
// item carries none.
func CommentCountLabel(n *int) string {
	if n == nil {
		return "discuss"
	}
	return Plural(*n, "comment", "comments")
}

// Truncate shortens s to width cells, appending an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// WrapLines word-wraps text to width and drops blank lines.
func WrapLines(text string, width int) []string {
	width = max(width, 8)
	var out []string
	for para := range strings.SplitSeq(text, "\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		out = append(out, strings.Split(ansi.Wrap(para, width, ""), "\n")...)
	}
	return out
}

// LineCount counts the rendered lines of s.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
