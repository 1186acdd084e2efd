package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// StoryKind selects one of the ranked story lists.
type StoryKind int

const (
	KindBest StoryKind = iota
	KindNew
	KindTop
)

// StoryKinds lists every kind in hotkey order.
var StoryKinds = []StoryKind{KindTop, KindNew, KindBest}

// String returns the API slug ("best", "new", "top").
func (k StoryKind) String() string {
	switch k {
	case KindNew:
		return "new"
	case KindTop:
		return "top"
	default:
		return "best"
	}
}

// DisplayName returns the capitalised label used in the UI.
func (k StoryKind) DisplayName() string {
	switch k {
	case KindNew:
		return "New"
	case KindTop:
		return "Top"
	default:
		return "Best"
	}
}

// ParseStoryKind accepts the API slug in any case.
func ParseStoryKind(s string) (StoryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best":
		return KindBest, nil
	case "new":
		return KindNew, nil
	case "top":
		return KindTop, nil
	}
	return KindBest, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Story is a fetched story as shown in the list. Never mutated after creation.
type Story struct {
	ID       int
	Title    string
	URL      string // External link, or the discussion page when there is none
	Author   string
	Time     string // Absolute, "2006-01-02 15:04:05" UTC
	TimeAgo  string
	Score    int
	Comments *int // Nil for items that carry no descendant count
}

const absoluteTimeLayout = "2006-01-02 15:04:05"

// NewStory builds a Story from a fetched item. url is the already resolved
// link for the item.
func NewStory(it Item, url string, now time.Time) Story {
	return Story{
		ID:       it.ID,
		Title:    it.Title,
		URL:      url,
		Author:   it.Author,
		Time:     it.Time.UTC().Format(absoluteTimeLayout),
		TimeAgo:  TimeAgo(it.Time, now),
		Score:    it.Score,
		Comments: it.Descendants,
	}
}

// TimeAgo renders a relative label such as "3 hours ago".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.After(now) {
		t = now
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
