package hackernews

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

// Comment bodies use <p> as a paragraph separator (usually unclosed).
var (
	paragraphRe = regexp.MustCompile(`(?i)<p\s*/?>|</p>|<br\s*/?>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	stripPolicy = bluemonday.StrictPolicy()
)

// stripHTML turns an item's HTML body into plain text: paragraphs become
// line breaks, tags are dropped and entities decoded.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = paragraphRe.ReplaceAllString(s, "\n\n")
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = sanitizeForTerminal(s)
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// sanitizeForTerminal removes escape sequences and control characters that
// would let remote content drive the terminal.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r < 0xa0:
			return -1
		}
		return r
	}, s)
}
