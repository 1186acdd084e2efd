package thread

import (
	"reflect"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/CrestNiraj12/terminalhn/domain"
)

// genForest draws a random comment forest of at least minN nodes. Expanded
// comments carry one or more children whose IDs match their ChildIDs;
// collapsed ones only carry IDs.
func genForest(t *rapid.T, depth int, nextID *int, label string, minN int) []domain.Comment {
	n := rapid.IntRange(minN, 4).Draw(t, label+"-n")
	nodes := make([]domain.Comment, n)
	for i := range nodes {
		*nextID++
		c := domain.Comment{ID: *nextID, Depth: depth}
		kids := rapid.IntRange(0, 3).Draw(t, label+"-kids")
		if kids > 0 && depth < 3 && rapid.Bool().Draw(t, label+"-open") {
			c.State = domain.Expanded
			c.Children = genForest(t, depth+1, nextID, label+"c", 1)
			for _, ch := range c.Children {
				c.ChildIDs = append(c.ChildIDs, ch.ID)
			}
		}
		if c.State == domain.Collapsed {
			for range kids {
				*nextID++
				c.ChildIDs = append(c.ChildIDs, *nextID)
			}
		}
		nodes[i] = c
	}
	return nodes
}

func genTree(t *rapid.T) *Tree {
	id := 0
	tree := New()
	tree.SetTopLevel(genForest(t, 0, &id, "root", 0))
	return tree
}

func TestProperty_RebuildIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		before := slices.Clone(tree.Visible())
		tree.Rebuild()
		if !reflect.DeepEqual(before, tree.Visible()) {
			t.Fatalf("rebuild changed the projection")
		}
	})
}

func TestProperty_NoChildrenNeverLeavesCollapsed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		for i, e := range tree.Visible() {
			if e.Comment.HasChildren() {
				continue
			}
			req, changed := tree.Toggle(i)
			if changed || req != nil {
				t.Fatalf("toggle on %d without replies changed state", e.Comment.ID)
			}
			if tree.FindByID(e.Comment.ID).State != domain.Collapsed {
				t.Fatalf("comment %d left collapsed", e.Comment.ID)
			}
		}
	})
}

func TestProperty_ExpandCollapseKeepsChildIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		if tree.Len() == 0 {
			t.Skip("empty forest")
		}
		idx := rapid.IntRange(0, tree.Len()-1).Draw(t, "idx")
		e, _ := tree.At(idx)
		if e.Comment.State != domain.Collapsed || !e.Comment.HasChildren() {
			t.Skip("not a collapsed comment with replies")
		}
		ids := slices.Clone(e.Comment.ChildIDs)

		req, _ := tree.Toggle(idx)
		children := make([]domain.Comment, len(req.IDs))
		for i, id := range req.IDs {
			children[i] = domain.Comment{ID: id, Depth: req.Depth}
		}
		tree.ApplyChildren(req.ParentID, children)
		if !tree.FindByID(req.ParentID).IsExpanded() {
			t.Fatalf("expected expanded comment")
		}
		tree.Toggle(tree.IndexOfID(req.ParentID))

		after := tree.FindByID(req.ParentID)
		if after.State != domain.Collapsed || !slices.Equal(after.ChildIDs, ids) {
			t.Fatalf("child ids changed: %v -> %v", ids, after.ChildIDs)
		}
	})
}

func TestProperty_SiblingAndParentJumps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		if tree.Len() == 0 {
			t.Skip("empty forest")
		}
		idx := rapid.IntRange(0, tree.Len()-1).Draw(t, "idx")
		cur, _ := tree.At(idx)

		next := tree.NextSibling(idx)
		if next != idx {
			e, _ := tree.At(next)
			if next < idx || len(e.Path) != len(cur.Path) || !e.Path.HasPrefix(cur.Path.Parent()) {
				t.Fatalf("next sibling %v is not a sibling of %v", e.Path, cur.Path)
			}
			for i := idx + 1; i < next; i++ {
				mid, _ := tree.At(i)
				if len(mid.Path) == len(cur.Path) {
					t.Fatalf("skipped sibling %v", mid.Path)
				}
			}
		}

		parent := tree.Parent(idx)
		if len(cur.Path) == 1 {
			if parent != idx {
				t.Fatalf("top-level parent should be a no-op")
			}
		} else {
			p, _ := tree.At(parent)
			if !p.Path.Equal(cur.Path.Parent()) {
				t.Fatalf("parent of %v landed on %v", cur.Path, p.Path)
			}
		}
	})
}

func TestProperty_ExpandedCommentIsFollowedByItsFirstReply(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		for i, e := range tree.Visible() {
			if !e.Comment.IsExpanded() {
				continue
			}
			if !e.Comment.HasChildren() {
				t.Fatalf("expanded comment %d has no reply ids", e.Comment.ID)
			}
			next, ok := tree.At(i + 1)
			if !ok || next.Comment.ID != e.Comment.ChildIDs[0] || next.Depth() != e.Depth()+1 {
				t.Fatalf("comment %d is not followed by its first reply", e.Comment.ID)
			}
		}
	})
}
