package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/tui/common"
	"github.com/CrestNiraj12/terminalhn/tui/thread"
)

func (m Model) renderCommentsView() string {
	height := m.commentViewportLines()
	c := m.comments

	var body string
	switch {
	case c.load.loading() && c.tree.Len() == 0:
		body = m.centered(m.spinnerFrame()+" Loading comments...", height)
	case c.load.err != nil && c.tree.Len() == 0:
		body = m.centered(m.errorLine(c.load.err), height)
	case c.tree.Len() == 0:
		body = m.centered(common.TimestampStyle.Render("No comments yet"), height)
	default:
		var lines []string
		for _, b := range m.commentBlocks() {
			lines = append(lines, strings.Split(b, "\n")...)
		}
		body = window(lines, c.scroll, height)
	}

	return m.renderCommentsHeader() + "\n" + body + "\n" + m.renderCommentsStatus()
}

func (m Model) renderCommentsHeader() string {
	width := m.contentWidth()
	title := common.AppTitleStyle.Render(" Comments: ") +
		common.StoryTitleStyle.Render(common.Truncate(m.view.StoryTitle, width-12))
	count := " " + common.Plural(m.comments.tree.Len(), "comment", "comments")
	if m.ShouldShowLoading() {
		count += " " + common.LoadingStyle.Render(m.spinnerFrame()+" Loading...")
	}
	return title + "\n" + common.TimestampStyle.Render(count) + "\n"
}

func (m Model) renderCommentsStatus() string {
	var segments []string
	if m.ShouldShowLoading() {
		segments = append(segments, common.LoadingStyle.Render(m.spinnerFrame()+" loading comments"))
	}
	if err := m.comments.load.err; err != nil && m.comments.tree.Len() > 0 {
		segments = append(segments, common.ErrorStyle.Render(err.Error()))
	}
	segments = append(segments, m.help.ShortHelpView(m.keys.Comments.ShortHelp()))
	return common.StatusBarStyle.Render(common.Truncate(strings.Join(segments, " │ "), m.contentWidth()))
}

// commentBlocks renders every visible comment as a block of lines. Block
// heights drive comment scrolling.
func (m Model) commentBlocks() []string {
	entries := m.comments.tree.Visible()
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = m.renderComment(e, i == m.comments.cursor)
	}
	return blocks
}

func (m Model) renderComment(e thread.Entry, selected bool) string {
	c := e.Comment
	guide := common.GuideStyle(e.Depth())
	stem := guide.Render(guidePrefix(e.Guides, true))
	indent := guidePrefix(e.Guides, false)
	textPrefix := guide.Render(indent)

	indicator := m.stateIndicator(c)
	var header string
	if c.Deleted {
		header = common.DeletedStyle.Render("[deleted]")
	} else {
		author := common.AuthorStyle
		if selected {
			author = common.SelectedTitleStyle
		}
		header = author.Render(c.Author) + " " + common.TimestampStyle.Render("• "+c.TimeAgo)
	}
	if selected {
		header = lipgloss.NewStyle().Reverse(true).Render(ansi.Strip(header))
	}
	lines := []string{stem + indicator + header}

	if !c.Deleted {
		width := m.contentWidth() - ansi.StringWidth(indent)
		for _, ln := range common.WrapLines(c.Text, width) {
			lines = append(lines, textPrefix+common.ContentStyle.Render(ln))
		}
	}

	if c.HasChildren() {
		lines = append(lines, textPrefix+m.repliesFooter(c))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m Model) stateIndicator(c domain.Comment) string {
	switch c.State {
	case domain.Loading:
		return common.LoadingStyle.Render(m.spinnerFrame() + " ")
	case domain.Expanded:
		return common.ExpandedStyle.Render("▾ ")
	default:
		return common.CollapsedStyle.Render("▸ ")
	}
}

func (m Model) repliesFooter(c domain.Comment) string {
	switch c.State {
	case domain.Loading:
		return common.LoadingStyle.Render(m.spinnerFrame() + " Loading replies...")
	case domain.Expanded:
		return common.ExpandedStyle.Render("▾ Collapse")
	default:
		return common.CollapsedStyle.Render("▸ " + common.Plural(c.ChildCount(), "reply", "replies"))
	}
}

// guidePrefix draws branch guides from Entry.Guides. With elbow the last
// level gets a branch (├─ or └─), otherwise a continuation (│ or blank).
func guidePrefix(guides []bool, elbow bool) string {
	var b strings.Builder
	for i, last := range guides {
		final := i == len(guides)-1
		switch {
		case final && elbow && last:
			b.WriteString("└─")
		case final && elbow:
			b.WriteString("├─")
		case last:
			b.WriteString("  ")
		default:
			b.WriteString("│ ")
		}
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	return b.String()
}
