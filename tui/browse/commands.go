package browse

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/debug"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

func (m Model) fetchStories(key pageKey) tea.Cmd {
	items := m.items
	pageSize := m.stories.pageSize
	return func() tea.Msg {
		start := time.Now()
		stories, err := app.LoadStoriesPage(context.Background(), items, key.kind, pageSize, key.page)
		debug.LogTiming("stories "+key.kind.String(), time.Since(start))
		return StoriesLoadedMsg{Kind: key.kind, Page: key.page, Stories: stories, Err: err}
	}
}

func (m Model) fetchComments(storyID, session int) tea.Cmd {
	items := m.items
	return func() tea.Msg {
		comments, err := app.LoadTopLevelComments(context.Background(), items, storyID)
		return CommentsLoadedMsg{StoryID: storyID, Session: session, Comments: comments, Err: err}
	}
}

func (m Model) fetchChildren(storyID, session, parentID, depth int, ids []int) tea.Cmd {
	items := m.items
	return func() tea.Msg {
		children, err := app.LoadComments(context.Background(), items, ids, depth)
		return ChildrenLoadedMsg{
			StoryID:  storyID,
			Session:  session,
			ParentID: parentID,
			Depth:    depth,
			Children: children,
			Err:      err,
		}
	}
}

func (m Model) openURL(rawURL string) tea.Cmd {
	opener := m.opener
	if opener == nil || rawURL == "" {
		return nil
	}
	return func() tea.Msg {
		if err := opener.Open(rawURL); err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Text: "Opened " + rawURL}
	}
}

func copyURL(rawURL string) tea.Cmd {
	if rawURL == "" {
		return nil
	}
	return func() tea.Msg {
		if err := writeClipboard(rawURL); err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Text: "Copied " + rawURL}
	}
}

func kindChanged(kind domain.StoryKind) tea.Cmd {
	return func() tea.Msg {
		return KindChangedMsg{Kind: kind}
	}
}
