package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalhn/tui/common"
)

// View renders the active screen, or the help overlay on top of it.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.view.Kind == CommentsView {
		return m.renderCommentsView()
	}
	return m.renderStoriesView()
}

// centered places a single message in the middle of the list area.
func (m Model) centered(msg string, height int) string {
	return lipgloss.Place(m.contentWidth(), height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) errorLine(err error) string {
	return common.ErrorStyle.Render("Error: " + err.Error())
}

// window returns lines[offset:offset+height], padded to height.
func window(lines []string, offset, height int) string {
	offset = min(max(offset, 0), len(lines))
	end := min(offset+height, len(lines))
	out := make([]string, 0, height)
	out = append(out, lines[offset:end]...)
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m Model) renderHelp() string {
	var (
		title string
		body  string
	)
	if m.view.Kind == CommentsView {
		title = "Comments View"
		body = m.help.FullHelpView(m.keys.Comments.FullHelp())
	} else {
		title = "Stories View"
		body = m.help.FullHelpView(m.keys.Stories.FullHelp())
	}
	box := common.HelpBoxStyle.Render(
		common.AppTitleStyle.Render(title) + "\n\n" + body + "\n\n" +
			common.TimestampStyle.Render("? or esc to close"),
	)
	height := max(m.height, lipgloss.Height(box))
	return lipgloss.Place(m.contentWidth(), height, lipgloss.Center, lipgloss.Center, box)
}
