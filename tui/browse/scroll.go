package browse

import "github.com/CrestNiraj12/terminalhn/tui/common"

// lineSpan is the rendered line range of one comment block.
type lineSpan struct {
	top    int
	bottom int
}

// ensureVisible returns the scroll offset closest to offset that keeps
// [top, bottom] inside a viewport of the given height, clamped to
// [0, max(total-viewport, 0)]. Blocks taller than the viewport show their top.
func ensureVisible(offset, top, bottom, viewport, total int) int {
	viewport = max(viewport, 1)
	switch {
	case top < offset:
		offset = top
	case bottom >= offset+viewport:
		offset = bottom - viewport + 1
		if bottom-top+1 > viewport {
			offset = top
		}
	}
	maxOffset := max(total-viewport, 0)
	return min(max(offset, 0), maxOffset)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// Chrome around each list: header plus the status bar, plus the root's
// transient status line.
const (
	storiesChrome  = 2 + 2 + 2
	commentsChrome = 3 + 2 + 2
)

func (m Model) storyViewportLines() int {
	return max(m.height-storiesChrome, storyRows)
}

// storyViewportRows is the number of whole stories that fit.
func (m Model) storyViewportRows() int {
	return max(m.storyViewportLines()/storyRows, 1)
}

func (m Model) commentViewportLines() int {
	return max(m.height-commentsChrome, 4)
}

func (m *Model) ensureStoryVisible() {
	s := &m.stories
	if len(s.stories) == 0 {
		s.scroll = 0
		return
	}
	s.scroll = ensureVisible(s.scroll, s.selected, s.selected, m.storyViewportRows(), len(s.stories))
}

func (m Model) commentSpans() []lineSpan {
	blocks := m.commentBlocks()
	spans := make([]lineSpan, len(blocks))
	line := 0
	for i, b := range blocks {
		n := max(common.LineCount(b), 1)
		spans[i] = lineSpan{top: line, bottom: line + n - 1}
		line += n
	}
	return spans
}

func (m *Model) ensureCommentVisible() {
	c := &m.comments
	spans := m.commentSpans()
	if len(spans) == 0 || c.cursor < 0 || c.cursor >= len(spans) {
		c.scroll = 0
		return
	}
	total := spans[len(spans)-1].bottom + 1
	sel := spans[c.cursor]
	c.scroll = ensureVisible(c.scroll, sel.top, sel.bottom, m.commentViewportLines(), total)
}
