// Package thread holds a story's comment tree and its flattened, visible
// projection used for cursor movement and rendering.
package thread

import (
	"slices"

	"github.com/CrestNiraj12/terminalhn/domain"
)

// Path addresses a comment by its index in the top-level list followed by
// its index in each enclosing Expanded parent's Children. Paths are only
// valid until the next Rebuild.
type Path []int

// Parent returns the path without its last index.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) Equal(other Path) bool { return slices.Equal(p, other) }

// HasPrefix reports whether p extends prefix (or equals it).
func (p Path) HasPrefix(prefix Path) bool {
	return len(p) >= len(prefix) && slices.Equal(p[:len(prefix)], prefix)
}

// Entry is one row of the visible projection.
type Entry struct {
	Path    Path
	Comment domain.Comment // Detached copy; mutating it never touches the tree
	// Guides[i] reports whether the ancestor at depth i (the comment itself
	// at the last index) is the last of its siblings.
	Guides []bool
}

func (e Entry) Depth() int { return len(e.Path) - 1 }

// Tree owns a story's comments. Every mutation goes through the tree and is
// followed by Rebuild.
type Tree struct {
	roots   []domain.Comment
	visible []Entry
}

func New() *Tree {
	return &Tree{}
}

// SetTopLevel replaces the top-level comments and rebuilds the projection.
func (t *Tree) SetTopLevel(nodes []domain.Comment) {
	t.roots = nodes
	t.Rebuild()
}

// Reset drops every comment.
func (t *Tree) Reset() {
	t.roots = nil
	t.visible = nil
}

// Locate walks path from the top-level list. It returns nil when an index is
// out of range or an intermediate comment is not Expanded.
func (t *Tree) Locate(path Path) *domain.Comment {
	if len(path) == 0 {
		return nil
	}
	level := t.roots
	var node *domain.Comment
	for depth, idx := range path {
		if depth > 0 && !node.IsExpanded() {
			return nil
		}
		if idx < 0 || idx >= len(level) {
			return nil
		}
		node = &level[idx]
		level = node.Children
	}
	return node
}

// FindByID searches depth-first through materialized comments.
func (t *Tree) FindByID(id int) *domain.Comment {
	return findIn(t.roots, id)
}

func findIn(nodes []domain.Comment, id int) *domain.Comment {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if nodes[i].IsExpanded() {
			if found := findIn(nodes[i].Children, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Update applies fn to the comment with the given id. It reports whether the
// comment was found; a missing comment is not an error. The caller rebuilds.
func (t *Tree) Update(id int, fn func(*domain.Comment)) bool {
	node := t.FindByID(id)
	if node == nil {
		return false
	}
	fn(node)
	return true
}

// Rebuild recomputes the visible projection in pre-order: a comment, then
// (only when Expanded) its children.
func (t *Tree) Rebuild() {
	t.visible = make([]Entry, 0, len(t.visible))
	t.appendVisible(t.roots, nil, nil)
}

func (t *Tree) appendVisible(nodes []domain.Comment, parent Path, guides []bool) {
	for i := range nodes {
		path := append(slices.Clone(parent), i)
		g := append(slices.Clone(guides), i == len(nodes)-1)
		t.visible = append(t.visible, Entry{
			Path:    path,
			Comment: nodes[i].Detached(),
			Guides:  g,
		})
		if nodes[i].IsExpanded() {
			t.appendVisible(nodes[i].Children, path, g)
		}
	}
}

// Visible returns the current projection. Callers must not modify it.
func (t *Tree) Visible() []Entry { return t.visible }

func (t *Tree) Len() int { return len(t.visible) }

// At returns the entry at index i.
func (t *Tree) At(i int) (Entry, bool) {
	if i < 0 || i >= len(t.visible) {
		return Entry{}, false
	}
	return t.visible[i], true
}

// IndexOf returns the visible index of the entry at path, or -1.
func (t *Tree) IndexOf(path Path) int {
	for i, e := range t.visible {
		if e.Path.Equal(path) {
			return i
		}
	}
	return -1
}

// IndexOfID returns the visible index of the comment with id, or -1.
func (t *Tree) IndexOfID(id int) int {
	for i, e := range t.visible {
		if e.Comment.ID == id {
			return i
		}
	}
	return -1
}

// Clamp bounds a cursor to the projection.
func (t *Tree) Clamp(cursor int) int {
	if len(t.visible) == 0 {
		return 0
	}
	return min(max(cursor, 0), len(t.visible)-1)
}
