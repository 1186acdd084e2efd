package browse

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/domain"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Stories.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	if m.view.Kind == CommentsView {
		return m.handleCommentKey(msg)
	}
	return m.handleStoryKey(msg)
}

func (m Model) handleStoryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys.Stories
	switch {
	case key.Matches(msg, k.Down):
		m.nextStory()
	case key.Matches(msg, k.Up):
		m.prevStory()
	case key.Matches(msg, k.NextPage):
		return m, m.nextPage()
	case key.Matches(msg, k.PrevPage):
		return m, m.prevPage()
	case key.Matches(msg, k.Top):
		return m, m.setKind(domain.KindTop)
	case key.Matches(msg, k.New):
		return m, m.setKind(domain.KindNew)
	case key.Matches(msg, k.Best):
		return m, m.setKind(domain.KindBest)
	case key.Matches(msg, k.Refresh):
		return m, m.refresh()
	case key.Matches(msg, k.Open):
		if story, ok := m.SelectedStory(); ok {
			return m, m.openURL(story.URL)
		}
	case key.Matches(msg, k.Yank):
		if story, ok := m.SelectedStory(); ok {
			return m, copyURL(story.URL)
		}
	case key.Matches(msg, k.Comments):
		return m, m.openComments()
	case key.Matches(msg, k.Help):
		m.showHelp = true
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys.Comments
	switch {
	case key.Matches(msg, k.Down):
		m.nextComment()
	case key.Matches(msg, k.Up):
		m.prevComment()
	case key.Matches(msg, k.NextSibling):
		m.nextSibling()
	case key.Matches(msg, k.PrevSibling):
		m.prevSibling()
	case key.Matches(msg, k.Parent):
		m.parentComment()
	case key.Matches(msg, k.First):
		m.firstComment()
	case key.Matches(msg, k.Last):
		m.lastComment()
	case key.Matches(msg, k.Toggle):
		return m, m.toggleComment()
	case key.Matches(msg, k.CollapseThread):
		m.collapseThread()
	case key.Matches(msg, k.Open):
		return m, m.openURL(m.view.StoryURL)
	case key.Matches(msg, k.Yank):
		return m, copyURL(m.view.StoryURL)
	case key.Matches(msg, k.Help):
		m.showHelp = true
	case key.Matches(msg, k.Back):
		m.closeComments()
	}
	return m, nil
}
