package browse

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
)

type stubItems struct {
	ids   map[domain.StoryKind][]int
	items map[int]domain.Item
	fail  map[int]bool
}

func newStubItems() *stubItems {
	return &stubItems{
		ids:   make(map[domain.StoryKind][]int),
		items: make(map[int]domain.Item),
		fail:  make(map[int]bool),
	}
}

func (s *stubItems) ListIDs(_ context.Context, kind domain.StoryKind) ([]int, error) {
	return s.ids[kind], nil
}

func (s *stubItems) FetchItems(_ context.Context, ids []int) []app.ItemResult {
	out := make([]app.ItemResult, len(ids))
	for i, id := range ids {
		switch it, ok := s.items[id]; {
		case s.fail[id]:
			out[i] = app.ItemResult{ID: id, Err: fmt.Errorf("item %d: %w", id, domain.ErrFetch)}
		case !ok:
			out[i] = app.ItemResult{ID: id, Err: fmt.Errorf("item %d: %w", id, domain.ErrNotFound)}
		default:
			out[i] = app.ItemResult{ID: id, Item: it}
		}
	}
	return out
}

func (s *stubItems) ItemURL(it domain.Item) string {
	if it.URL != "" {
		return it.URL
	}
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%d", it.ID)
}

func (s *stubItems) addStory(id int, kids ...int) {
	s.items[id] = domain.Item{ID: id, Type: "story", Title: fmt.Sprintf("Story %d", id), Author: "pg", Kids: kids}
}

func (s *stubItems) addComment(id int, kids ...int) {
	s.items[id] = domain.Item{ID: id, Type: "comment", Author: "user", Text: fmt.Sprintf("comment %d", id), Kids: kids}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(svc app.ItemService) (Model, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := New(svc, Options{Kind: domain.KindBest, PageSize: 10})
	m.now = clock.now
	m.stories.load = loadState{}
	m.stories.load.start(clock.now())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, clock
}

func makeStories(ids ...int) []domain.Story {
	out := make([]domain.Story, len(ids))
	for i, id := range ids {
		out[i] = domain.Story{ID: id, Title: fmt.Sprintf("Story %d", id), Author: "pg", URL: fmt.Sprintf("https://example.com/%d", id)}
	}
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd synchronously, flattening batches. Nil commands and
// nil messages are skipped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// applyAll feeds msgs back through Update.
func applyAll(m Model, msgs []tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
