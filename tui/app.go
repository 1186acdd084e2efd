package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/debug"
	"github.com/CrestNiraj12/terminalhn/tui/browse"
	"github.com/CrestNiraj12/terminalhn/tui/common"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Items             app.ItemService
	Opener            browse.URLOpener
	Kind              domain.StoryKind
	PageSize          int
	ShowRefreshErrors bool
	// SaveUIState persists the selected story kind. Optional.
	SaveUIState func(domain.StoryKind) error
}

// App is the root Bubble Tea model. It owns the transient status line and
// delegates everything else to the browse model.
type App struct {
	deps   Deps
	browse browse.Model
	keys   common.KeyMap
	status string
	isErr  bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps: deps,
		browse: browse.New(deps.Items, browse.Options{
			Kind:              deps.Kind,
			PageSize:          deps.PageSize,
			ShowRefreshErrors: deps.ShowRefreshErrors,
			Opener:            deps.Opener,
		}),
		keys: common.DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return a.browse.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		a.status = ""

	case browse.StatusMsg:
		if msg.Err != nil {
			a.status, a.isErr = "Error: "+msg.Err.Error(), true
		} else {
			a.status, a.isErr = msg.Text, false
		}
		return a, nil

	case browse.KindChangedMsg:
		if a.deps.SaveUIState != nil {
			if err := a.deps.SaveUIState(msg.Kind); err != nil {
				debug.Log("saving ui state: %v", err)
			}
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.browse, cmd = a.browse.Update(msg)
	return a, cmd
}

// View renders the browse model with the transient status appended.
func (a App) View() string {
	s := a.browse.View()
	if a.status != "" {
		style := common.SuccessStyle
		if a.isErr {
			style = common.ErrorStyle
		}
		s += "\n" + style.Render(a.status)
	}
	return s
}
