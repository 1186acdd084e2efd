package browse

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureStoryVisible()
		m.ensureCommentVisible()
		return m, nil

	case tickMsg:
		m.frame++
		return m, tick()

	case StoriesLoadedMsg, CommentsLoadedMsg, ChildrenLoadedMsg:
		return m.handleLoadedMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
