package browse

import (
	"testing"

	"github.com/CrestNiraj12/terminalhn/domain"
)

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name                                 string
		offset, top, bottom, viewport, total int
		want                                 int
	}{
		{"already visible", 0, 2, 3, 10, 50, 0},
		{"above viewport", 10, 4, 5, 10, 50, 4},
		{"below viewport", 0, 12, 14, 10, 50, 5},
		{"taller than viewport shows top", 0, 20, 40, 10, 50, 20},
		{"clamped to content end", 45, 48, 49, 10, 50, 40},
		{"content shorter than viewport", 3, 1, 1, 10, 5, 0},
		{"zero viewport treated as one", 0, 3, 3, 0, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ensureVisible(tt.offset, tt.top, tt.bottom, tt.viewport, tt.total)
			if got != tt.want {
				t.Fatalf("ensureVisible(%d, %d, %d, %d, %d) = %d, want %d",
					tt.offset, tt.top, tt.bottom, tt.viewport, tt.total, got, tt.want)
			}
		})
	}
}

func TestCommentScroll_FollowsCursor(t *testing.T) {
	svc := newStubItems()
	var kids []int
	for id := 100; id < 130; id++ {
		kids = append(kids, id)
		svc.addComment(id)
	}
	svc.addStory(1, kids...)

	m, _ := newTestModel(svc)
	m = openCommentsFor(t, m, svc, 1)

	m, _ = m.Update(runeKey('G'))
	spans := m.commentSpans()
	last := spans[len(spans)-1]
	viewport := m.commentViewportLines()
	if m.comments.scroll+viewport <= last.bottom {
		t.Fatalf("last comment should be visible: scroll=%d viewport=%d bottom=%d",
			m.comments.scroll, viewport, last.bottom)
	}
	if m.comments.scroll > last.top {
		t.Fatalf("last comment top should be visible")
	}

	m, _ = m.Update(runeKey('g'))
	if m.comments.scroll != 0 {
		t.Fatalf("first comment should scroll to top, got %d", m.comments.scroll)
	}
}

func TestStoryScroll_ResetOnEmptyPage(t *testing.T) {
	m, _ := newTestModel(newStubItems())
	m.stories.scroll = 4
	m.showPage(pageKey{domain.KindBest, 1}, nil)
	if m.stories.scroll != 0 || m.stories.selected != 0 {
		t.Fatalf("empty page should reset scroll")
	}
}
