package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/debug"
)

func (m Model) target() pageKey {
	return pageKey{kind: m.stories.kind, page: m.stories.page}
}

// requestStories shows the target page from cache, or starts fetching it.
// force evicts the cached page first.
func (m *Model) requestStories(force bool) tea.Cmd {
	key := m.target()
	if force {
		delete(m.stories.cache, key)
	} else if cached, ok := m.stories.cache[key]; ok {
		debug.Log("stories %s p%d: cache hit", key.kind, key.page)
		m.showPage(key, cached)
		return nil
	}
	debug.Log("stories %s p%d: fetching (force=%v)", key.kind, key.page, force)
	m.stories.load.start(m.now())
	return m.fetchStories(key)
}

// applyPage caches a fetched page and displays it only when it is still the
// target. It reports whether the page was displayed.
func (m *Model) applyPage(key pageKey, stories []domain.Story) bool {
	m.stories.cache[key] = stories
	if key != m.target() {
		return false
	}
	m.showPage(key, stories)
	return true
}

func (m *Model) showPage(key pageKey, stories []domain.Story) {
	s := &m.stories
	s.stories = stories
	s.displayed = key
	s.hasDisplayed = true
	s.load.stop()
	s.load.err = nil
	s.selected = min(s.selected, max(len(stories)-1, 0))
	m.ensureStoryVisible()
}

// displayedContext returns the list and page currently on screen. Before
// anything was shown it is the target.
func (m Model) displayedContext() (domain.StoryKind, int) {
	if !m.stories.hasDisplayed {
		return m.stories.kind, m.stories.page
	}
	return m.stories.displayed.kind, m.stories.displayed.page
}

// isStale reports whether the screen shows something other than the target.
func (m Model) isStale() bool {
	return m.stories.hasDisplayed && m.stories.displayed != m.target()
}
