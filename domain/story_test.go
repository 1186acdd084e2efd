package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseStoryKind(t *testing.T) {
	tests := []struct {
		in   string
		want StoryKind
	}{
		{"best", KindBest},
		{"NEW", KindNew},
		{" top ", KindTop},
	}
	for _, tc := range tests {
		got, err := ParseStoryKind(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseStoryKind(%q) = %v, %v", tc.in, got, err)
		}
		if back, _ := ParseStoryKind(got.String()); back != got {
			t.Fatalf("String/Parse mismatch for %v", got)
		}
	}

	if _, err := ParseStoryKind("ask"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestStoryKind_Labels(t *testing.T) {
	if KindTop.String() != "top" || KindTop.DisplayName() != "Top" {
		t.Fatalf("unexpected labels for top")
	}
	if KindBest.DisplayName() != "Best" || KindNew.DisplayName() != "New" {
		t.Fatalf("unexpected display names")
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := TimeAgo(now.Add(-3*time.Hour), now); got != "3 hours ago" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := TimeAgo(time.Time{}, now); got != "" {
		t.Fatalf("zero time should be blank, got %q", got)
	}
	if got := TimeAgo(now.Add(time.Hour), now); got != "now" {
		t.Fatalf("future times should clamp to now, got %q", got)
	}
}

func TestNewStory(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 42
	s := NewStory(Item{
		ID:          7,
		Title:       "Show HN",
		Author:      "pg",
		Time:        now.Add(-2 * time.Minute),
		Score:       100,
		Descendants: &n,
	}, "https://news.ycombinator.com/item?id=7", now)

	if s.ID != 7 || s.Title != "Show HN" || s.Author != "pg" || s.Score != 100 {
		t.Fatalf("fields not copied: %+v", s)
	}
	if s.Time != "2026-05-01 11:58:00" || s.TimeAgo != "2 minutes ago" {
		t.Fatalf("unexpected time labels %q %q", s.Time, s.TimeAgo)
	}
	if s.Comments == nil || *s.Comments != 42 {
		t.Fatalf("comment count not carried")
	}
}
