// Package browse is the story list and comment tree model: cache, selection,
// navigation, scrolling and application of async fetch results.
package browse

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/tui/common"
	"github.com/CrestNiraj12/terminalhn/tui/thread"
)

const (
	// loadingDelay hides the loading indicator for fast responses.
	loadingDelay = 150 * time.Millisecond
	tickInterval = 250 * time.Millisecond
	defaultWidth = 80
	storyRows    = 3 // title, meta, spacer
)

// StoriesLoadedMsg carries one fetched page of a story list.
type StoriesLoadedMsg struct {
	Kind    domain.StoryKind
	Page    int
	Stories []domain.Story
	Err     error
}

// CommentsLoadedMsg carries the top-level comments of a story. Session
// identifies the comments screen visit that asked for them.
type CommentsLoadedMsg struct {
	StoryID  int
	Session  int
	Comments []domain.Comment
	Err      error
}

// ChildrenLoadedMsg carries the replies of one comment.
type ChildrenLoadedMsg struct {
	StoryID  int
	Session  int
	ParentID int
	Depth    int
	Children []domain.Comment
	Err      error
}

// KindChangedMsg is emitted when the user switches story list, so the root
// can persist it.
type KindChangedMsg struct {
	Kind domain.StoryKind
}

// StatusMsg reports the outcome of a side action (open, copy) for the
// root's transient status line.
type StatusMsg struct {
	Text string
	Err  error
}

type tickMsg time.Time

// ViewKind selects the active screen.
type ViewKind int

const (
	StoriesView ViewKind = iota
	CommentsView
)

// View is the active screen. Story fields are set only for CommentsView.
type View struct {
	Kind       ViewKind
	StoryID    int
	StoryTitle string
	StoryURL   string
}

// URLOpener opens links outside the terminal.
type URLOpener interface {
	Open(rawURL string) error
}

type pageKey struct {
	kind domain.StoryKind
	page int
}

// loadState counts the requests in flight for one screen and keeps its last
// error.
type loadState struct {
	pending      int
	loadingSince time.Time
	err          error
}

type modelServices struct {
	items  app.ItemService
	opener URLOpener
	now    func() time.Time
}

type storyState struct {
	kind         domain.StoryKind // Selected target
	page         int
	pageSize     int
	stories      []domain.Story // Displayed set
	displayed    pageKey
	hasDisplayed bool
	cache        map[pageKey][]domain.Story
	selected     int
	scroll       int // First visible story
	load         loadState
}

type commentState struct {
	tree    *thread.Tree
	cursor  int
	scroll  int // First visible line
	load    loadState
	session int // Bumped whenever the tree is cleared
}

type uiState struct {
	keys              common.KeyMap
	help              help.Model
	width             int
	height            int
	frame             int
	showHelp          bool
	showRefreshErrors bool
}

// Model holds the browsing state. It is driven exclusively by Update.
type Model struct {
	modelServices
	view     View
	stories  storyState
	comments commentState
	uiState
}

// Options configures a new Model.
type Options struct {
	Kind              domain.StoryKind
	PageSize          int
	ShowRefreshErrors bool
	Opener            URLOpener
}

// New creates a browse model on page 1 of opts.Kind. The first page is
// marked loading; Init issues its fetch.
func New(items app.ItemService, opts Options) Model {
	m := Model{
		modelServices: modelServices{
			items:  items,
			opener: opts.Opener,
			now:    time.Now,
		},
		view: View{Kind: StoriesView},
		stories: storyState{
			kind:     opts.Kind,
			page:     1,
			pageSize: app.ClampPageSize(opts.PageSize),
			cache:    make(map[pageKey][]domain.Story),
		},
		comments: commentState{
			tree: thread.New(),
		},
		uiState: uiState{
			keys:              common.DefaultKeyMap(),
			help:              help.New(),
			showRefreshErrors: opts.ShowRefreshErrors,
		},
	}
	m.stories.load.start(m.now())
	return m
}

// Init fetches the first page and starts the render tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStories(m.target()), tick())
}

// Update handles messages for the browse screens.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) spinnerFrame() string {
	frames := spinner.MiniDot.Frames
	return frames[m.frame%len(frames)]
}

// ActiveView returns the current screen.
func (m Model) ActiveView() View { return m.view }

// Target returns the story list and page the user selected.
func (m Model) Target() (domain.StoryKind, int) { return m.stories.kind, m.stories.page }

// Stories returns the displayed stories.
func (m Model) Stories() []domain.Story { return m.stories.stories }

// SelectedStory returns the story under the cursor.
func (m Model) SelectedStory() (domain.Story, bool) {
	s := m.stories
	if s.selected < 0 || s.selected >= len(s.stories) {
		return domain.Story{}, false
	}
	return s.stories[s.selected], true
}

// VisibleComments returns the comment projection. Callers must not modify it.
func (m Model) VisibleComments() []thread.Entry { return m.comments.tree.Visible() }

// CommentCursor returns the index of the selected comment.
func (m Model) CommentCursor() int { return m.comments.cursor }

// Err returns the error of the active screen.
func (m Model) Err() error { return m.activeLoad().err }

// Loading reports whether the active screen has a request in flight.
func (m Model) Loading() bool { return m.activeLoad().loading() }
