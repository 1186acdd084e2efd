package domain

import (
	"slices"
	"time"
)

// CommentState is the expansion state of a comment's replies.
type CommentState int

const (
	// Collapsed: replies not materialized. ChildIDs are still known.
	Collapsed CommentState = iota
	// Loading: a fetch for the replies is in flight.
	Loading
	// Expanded: Children holds the fetched replies.
	Expanded
)

func (s CommentState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Expanded:
		return "expanded"
	default:
		return "collapsed"
	}
}

// Comment is a node of a story's comment tree.
//
// ChildIDs is fixed when the comment is built and is the source of truth for
// HasChildren and ChildCount whatever the State. Children is only non-nil
// while State is Expanded; use the transition methods to change State.
type Comment struct {
	ID       int
	Author   string
	Text     string
	TimeAgo  string
	Depth    int
	Deleted  bool
	ChildIDs []int
	State    CommentState
	Children []Comment
}

// NewComment builds a collapsed comment at the given nesting depth.
func NewComment(it Item, depth int, now time.Time) Comment {
	return Comment{
		ID:       it.ID,
		Author:   it.Author,
		Text:     it.Text,
		TimeAgo:  TimeAgo(it.Time, now),
		Depth:    depth,
		Deleted:  it.Deleted || it.Dead,
		ChildIDs: slices.Clone(it.Kids),
		State:    Collapsed,
	}
}

func (c Comment) HasChildren() bool { return len(c.ChildIDs) > 0 }

func (c Comment) ChildCount() int { return len(c.ChildIDs) }

func (c Comment) IsExpanded() bool { return c.State == Expanded }

func (c Comment) IsLoading() bool { return c.State == Loading }

// IsOpen reports whether the comment is Expanded or Loading.
func (c Comment) IsOpen() bool { return c.State != Collapsed }

// StartLoading moves a collapsed comment with replies to Loading. It reports
// whether the transition happened.
func (c *Comment) StartLoading() bool {
	if c.State != Collapsed || !c.HasChildren() {
		return false
	}
	c.State = Loading
	c.Children = nil
	return true
}

// Expand materializes fetched replies. Only a Loading comment accepts them;
// a comment collapsed while its fetch was in flight stays collapsed.
func (c *Comment) Expand(children []Comment) bool {
	if c.State != Loading {
		return false
	}
	if children == nil {
		children = []Comment{}
	}
	c.State = Expanded
	c.Children = children
	return true
}

// RevertLoading returns a Loading comment to Collapsed after a failed fetch.
func (c *Comment) RevertLoading() bool {
	if c.State != Loading {
		return false
	}
	c.State = Collapsed
	c.Children = nil
	return true
}

// Collapse drops materialized replies. ChildIDs are kept so a later toggle
// re-fetches them.
func (c *Comment) Collapse() {
	c.State = Collapsed
	c.Children = nil
}

// Detached returns a copy that shares no memory with c and carries no
// children. Used for render snapshots.
func (c Comment) Detached() Comment {
	c.ChildIDs = slices.Clone(c.ChildIDs)
	c.Children = nil
	return c
}
