package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/infra/debug"
)

func (m Model) handleLoadedMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StoriesLoadedMsg:
		key := pageKey{kind: msg.Kind, page: msg.Page}
		if msg.Err != nil {
			if key != m.target() {
				debug.Log("stories %s p%d: dropping stale error: %v", key.kind, key.page, msg.Err)
				return m, nil
			}
			debug.Log("stories %s p%d: %v", key.kind, key.page, msg.Err)
			m.stories.load.stop()
			m.stories.load.err = msg.Err
			return m, nil
		}
		shown := m.applyPage(key, msg.Stories)
		debug.LogIf(!shown, "stories %s p%d: cached, not displayed", key.kind, key.page)
		return m, nil

	case CommentsLoadedMsg:
		if !m.ownsComments(msg.StoryID, msg.Session) {
			debug.Log("comments for story %d: dropping, view changed", msg.StoryID)
			return m, nil
		}
		m.comments.load.done()
		if msg.Err != nil {
			debug.Log("comments for story %d: %v", msg.StoryID, msg.Err)
			m.comments.load.err = fmt.Errorf("loading comments: %w", msg.Err)
			m.comments.tree.Reset()
			m.setCommentCursor(0)
			return m, nil
		}
		m.comments.tree.SetTopLevel(msg.Comments)
		m.setCommentCursor(m.comments.cursor)
		return m, nil

	case ChildrenLoadedMsg:
		if !m.ownsComments(msg.StoryID, msg.Session) {
			debug.Log("replies of %d: dropping, view changed", msg.ParentID)
			return m, nil
		}
		m.comments.load.done()
		selectedID := -1
		if e, ok := m.comments.tree.At(m.comments.cursor); ok {
			selectedID = e.Comment.ID
		}
		if msg.Err != nil {
			debug.Log("replies of %d at depth %d: %v", msg.ParentID, msg.Depth, msg.Err)
			if m.comments.tree.RevertChildren(msg.ParentID) {
				m.comments.load.err = fmt.Errorf("loading replies: %w", msg.Err)
			}
		} else if !m.comments.tree.ApplyChildren(msg.ParentID, msg.Children) {
			debug.Log("replies of %d: comment gone or collapsed, ignoring", msg.ParentID)
		}
		// Replies inserted above the cursor must not move the selection.
		if idx := m.comments.tree.IndexOfID(selectedID); idx >= 0 {
			m.comments.cursor = idx
		}
		m.setCommentCursor(m.comments.cursor)
		return m, nil
	}

	return m, nil
}

// ownsComments reports whether a comment result belongs to the comments
// screen as it is now: same story, same visit.
func (m Model) ownsComments(storyID, session int) bool {
	return m.view.Kind == CommentsView &&
		m.view.StoryID == storyID &&
		m.comments.session == session
}
