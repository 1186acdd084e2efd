package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/debug"
)

// --- Stories ---

func (m *Model) nextStory() {
	if m.stories.selected < len(m.stories.stories)-1 {
		m.stories.selected++
		m.ensureStoryVisible()
	}
}

func (m *Model) prevStory() {
	if m.stories.selected > 0 {
		m.stories.selected--
		m.ensureStoryVisible()
	}
}

func (m *Model) resetStoryCursor() {
	m.stories.selected = 0
	m.stories.scroll = 0
}

func (m *Model) nextPage() tea.Cmd {
	m.stories.page++
	m.resetStoryCursor()
	return m.requestStories(false)
}

func (m *Model) prevPage() tea.Cmd {
	if m.stories.page <= 1 {
		return nil
	}
	m.stories.page--
	m.resetStoryCursor()
	return m.requestStories(false)
}

// setKind switches story list and goes back to page 1.
func (m *Model) setKind(kind domain.StoryKind) tea.Cmd {
	if kind == m.stories.kind {
		return nil
	}
	m.stories.kind = kind
	m.stories.page = 1
	m.resetStoryCursor()
	return tea.Batch(m.requestStories(false), kindChanged(kind))
}

func (m *Model) refresh() tea.Cmd {
	return m.requestStories(true)
}

// --- View switching ---

// openComments switches to the selected story's comments and fetches them.
func (m *Model) openComments() tea.Cmd {
	story, ok := m.SelectedStory()
	if !ok {
		return nil
	}
	m.view = View{
		Kind:       CommentsView,
		StoryID:    story.ID,
		StoryTitle: story.Title,
		StoryURL:   story.URL,
	}
	m.clearComments()
	m.comments.load.start(m.now())
	debug.Log("comments for story %d: fetching", story.ID)
	return m.fetchComments(story.ID, m.comments.session)
}

func (m *Model) closeComments() {
	m.view = View{Kind: StoriesView}
	m.clearComments()
}

func (m *Model) clearComments() {
	m.comments.tree.Reset()
	m.comments.cursor = 0
	m.comments.scroll = 0
	m.comments.load = loadState{}
	m.comments.session++
}

// --- Comments ---

func (m *Model) setCommentCursor(idx int) {
	m.comments.cursor = m.comments.tree.Clamp(idx)
	m.ensureCommentVisible()
}

func (m *Model) nextComment() {
	if m.comments.cursor < m.comments.tree.Len()-1 {
		m.setCommentCursor(m.comments.cursor + 1)
	}
}

func (m *Model) prevComment() {
	if m.comments.cursor > 0 {
		m.setCommentCursor(m.comments.cursor - 1)
	}
}

func (m *Model) firstComment() { m.setCommentCursor(0) }

func (m *Model) lastComment() { m.setCommentCursor(m.comments.tree.Len() - 1) }

func (m *Model) nextSibling() { m.setCommentCursor(m.comments.tree.NextSibling(m.comments.cursor)) }

func (m *Model) prevSibling() { m.setCommentCursor(m.comments.tree.PrevSibling(m.comments.cursor)) }

func (m *Model) parentComment() { m.setCommentCursor(m.comments.tree.Parent(m.comments.cursor)) }

// toggleComment expands or collapses the selected comment, fetching its
// replies when it enters Loading.
func (m *Model) toggleComment() tea.Cmd {
	req, changed := m.comments.tree.Toggle(m.comments.cursor)
	if !changed {
		return nil
	}
	m.setCommentCursor(m.comments.cursor)
	if req == nil {
		return nil
	}
	m.comments.load.start(m.now())
	debug.Log("replies of %d: fetching %d ids", req.ParentID, len(req.IDs))
	return m.fetchChildren(m.view.StoryID, m.comments.session, req.ParentID, req.Depth, req.IDs)
}

func (m *Model) collapseThread() {
	cursor, changed := m.comments.tree.CollapseThread(m.comments.cursor)
	if changed {
		m.setCommentCursor(cursor)
	}
}
