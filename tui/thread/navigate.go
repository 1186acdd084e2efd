package thread

import (
	"slices"

	"github.com/CrestNiraj12/terminalhn/domain"
)

// ChildRequest asks for the replies of a comment that just entered Loading.
type ChildRequest struct {
	ParentID int
	Depth    int // Nesting depth of the replies
	IDs      []int
}

// NextSibling returns the index of the next entry sharing the cursor's
// parent, skipping the cursor's own descendants. The cursor is returned
// unchanged when there is none.
func (t *Tree) NextSibling(cursor int) int {
	cur, ok := t.At(cursor)
	if !ok {
		return cursor
	}
	parent := cur.Path.Parent()
	for i := cursor + 1; i < len(t.visible); i++ {
		p := t.visible[i].Path
		if len(p) < len(cur.Path) {
			break
		}
		if len(p) == len(cur.Path) && p.HasPrefix(parent) {
			return i
		}
	}
	return cursor
}

// PrevSibling is NextSibling scanning backwards.
func (t *Tree) PrevSibling(cursor int) int {
	cur, ok := t.At(cursor)
	if !ok {
		return cursor
	}
	parent := cur.Path.Parent()
	for i := cursor - 1; i >= 0; i-- {
		p := t.visible[i].Path
		if len(p) < len(cur.Path) {
			break
		}
		if len(p) == len(cur.Path) && p.HasPrefix(parent) {
			return i
		}
	}
	return cursor
}

// Parent returns the index of the cursor's parent entry. Top-level comments
// have none.
func (t *Tree) Parent(cursor int) int {
	cur, ok := t.At(cursor)
	if !ok || len(cur.Path) <= 1 {
		return cursor
	}
	if idx := t.IndexOf(cur.Path.Parent()); idx >= 0 {
		return idx
	}
	return cursor
}

// Toggle flips the expansion of the comment under the cursor. When the
// comment enters Loading it returns the request for its replies. Comments
// without replies and comments already loading are left alone.
func (t *Tree) Toggle(cursor int) (*ChildRequest, bool) {
	cur, ok := t.At(cursor)
	if !ok {
		return nil, false
	}
	node := t.Locate(cur.Path)
	if node == nil {
		return nil, false
	}

	switch node.State {
	case domain.Expanded:
		node.Collapse()
		t.Rebuild()
		return nil, true
	case domain.Collapsed:
		if !node.StartLoading() {
			return nil, false
		}
		t.Rebuild()
		return &ChildRequest{
			ParentID: node.ID,
			Depth:    node.Depth + 1,
			IDs:      slices.Clone(node.ChildIDs),
		}, true
	}
	return nil, false
}

// CollapseThread collapses the nearest Expanded or Loading comment on the
// cursor's path, starting with the cursor itself, and returns the cursor
// clamped to the shorter projection.
func (t *Tree) CollapseThread(cursor int) (int, bool) {
	cur, ok := t.At(cursor)
	if !ok {
		return t.Clamp(cursor), false
	}
	for n := len(cur.Path); n > 0; n-- {
		node := t.Locate(cur.Path[:n])
		if node == nil || !node.IsOpen() {
			continue
		}
		node.Collapse()
		t.Rebuild()
		return t.Clamp(cursor), true
	}
	return cursor, false
}

// ApplyChildren expands the comment parentID with its fetched replies.
// It reports whether the tree changed.
func (t *Tree) ApplyChildren(parentID int, children []domain.Comment) bool {
	var changed bool
	t.Update(parentID, func(c *domain.Comment) {
		changed = c.Expand(children)
	})
	if changed {
		t.Rebuild()
	}
	return changed
}

// RevertChildren returns a Loading comment to Collapsed after its replies
// failed to load.
func (t *Tree) RevertChildren(parentID int) bool {
	var changed bool
	t.Update(parentID, func(c *domain.Comment) {
		changed = c.RevertLoading()
	})
	if changed {
		t.Rebuild()
	}
	return changed
}
