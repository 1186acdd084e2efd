package browse

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/tui/common"
)

func (m Model) renderStoriesView() string {
	height := m.storyViewportLines()
	s := m.stories

	var body string
	switch {
	case s.load.loading() && len(s.stories) == 0:
		body = m.centered(m.spinnerFrame()+" Loading stories...", height)
	case s.load.err != nil && len(s.stories) == 0:
		body = m.centered(m.errorLine(s.load.err), height)
	case len(s.stories) == 0:
		body = m.centered("No stories found", height)
	default:
		body = window(m.renderStoryLines(), s.scroll*storyRows, height)
	}

	return m.renderStoriesHeader() + "\n\n" + body + "\n" + m.renderStoriesStatus()
}

func (m Model) renderStoriesHeader() string {
	kind, page := m.displayedContext()
	parts := []string{
		common.AppTitleStyle.Render(" HN: ") +
			common.KindStyle.Render(kind.DisplayName()+" stories") +
			fmt.Sprintf(" │ Page %d", page),
	}
	if m.isStale() {
		parts = append(parts, common.FetchingStyle.Render(
			fmt.Sprintf("fetching %s p%d", m.stories.kind.DisplayName(), m.stories.page)))
	}
	return strings.Join(parts, " │ ")
}

func (m Model) renderStoryLines() []string {
	s := m.stories
	_, page := m.displayedContext()
	width := m.contentWidth()
	dim := s.load.loading()

	lines := make([]string, 0, len(s.stories)*storyRows)
	for idx, story := range s.stories {
		selected := idx == s.selected
		globalIdx := (page-1)*s.pageSize + idx + 1
		lines = append(lines, renderStoryTitle(story, globalIdx, selected, dim, width))
		lines = append(lines, renderStoryMeta(story, width))
		lines = append(lines, "")
	}
	return lines
}

func renderStoryTitle(story domain.Story, n int, selected, dim bool, width int) string {
	marker := "  "
	style := common.StoryTitleStyle
	if selected {
		marker = common.CursorStyle.Render("▸ ")
		style = common.SelectedTitleStyle
	}
	if dim && !selected {
		style = common.DimStyle
	}
	prefix := fmt.Sprintf("%d. ", n)
	title := common.Truncate(story.Title, width-2-len(prefix))
	return marker + style.Render(prefix+title)
}

func renderStoryMeta(story domain.Story, width int) string {
	sep := common.TimestampStyle.Render(" │ ")
	meta := "     " + common.TimestampStyle.Render("by ") +
		common.AuthorStyle.Render(story.Author) + sep +
		common.ScoreStyle.Render(common.Plural(story.Score, "point", "points")) + sep +
		common.CommentCountStyle.Render(common.CommentCountLabel(story.Comments))
	if story.TimeAgo != "" {
		meta += sep + common.TimestampStyle.Render(story.TimeAgo)
	}
	return common.Truncate(meta, width)
}

// renderStoriesStatus renders what is shown and what is being fetched,
// then the debounced loading indicator and key hints.
func (m Model) renderStoriesStatus() string {
	kind, page := m.displayedContext()
	stale := m.isStale()
	s := m.stories

	var segments []string
	showing := common.ShowingStyle.Render(fmt.Sprintf("showing %s · p%d", kind.DisplayName(), page))
	if stale {
		verb := "fetching"
		style := common.FetchingStyle
		if s.load.err != nil {
			verb = "failed"
			style = common.ErrorStyle
		}
		showing += " → " + style.Render(fmt.Sprintf("%s %s · p%d", verb, s.kind.DisplayName(), s.page))
	}
	segments = append(segments, showing)

	if m.ShouldShowLoading() {
		word := "loading"
		if stale {
			word = "updating"
		}
		segments = append(segments, common.LoadingStyle.Render(m.spinnerFrame()+" "+word))
	}
	if s.load.err != nil && !stale && len(s.stories) > 0 && m.showRefreshErrors {
		segments = append(segments, common.ErrorStyle.Render("refresh failed: "+s.load.err.Error()))
	}
	segments = append(segments, m.help.ShortHelpView(m.keys.Stories.ShortHelp()))

	return common.StatusBarStyle.Render(common.Truncate(strings.Join(segments, " │ "), m.contentWidth()))
}
