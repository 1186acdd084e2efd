package common

import "github.com/charmbracelet/bubbles/key"

// StoryKeyMap defines the bindings of the story list.
type StoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding // n / →
	PrevPage key.Binding // p / ←
	Top      key.Binding // 1
	New      key.Binding // 2
	Best     key.Binding // 3
	Open     key.Binding // enter / o: open in browser
	Comments key.Binding
	Refresh  key.Binding
	Yank     key.Binding // y: copy URL
	Help     key.Binding
	Quit     key.Binding
}

// CommentKeyMap defines the bindings of the comment view.
type CommentKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextSibling    key.Binding
	PrevSibling    key.Binding
	Parent         key.Binding
	First          key.Binding
	Last           key.Binding
	Toggle         key.Binding
	CollapseThread key.Binding
	Open           key.Binding
	Yank           key.Binding
	Help           key.Binding
	Back           key.Binding
}

// KeyMap groups every binding. ForceQuit works everywhere.
type KeyMap struct {
	Stories   StoryKeyMap
	Comments  CommentKeyMap
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Stories: StoryKeyMap{
			Up: key.NewBinding(
				key.WithKeys("k", "up"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("j", "down"),
				key.WithHelp("↓/j", "down"),
			),
			NextPage: key.NewBinding(
				key.WithKeys("n", "right"),
				key.WithHelp("n/→", "next page"),
			),
			PrevPage: key.NewBinding(
				key.WithKeys("p", "left"),
				key.WithHelp("p/←", "prev page"),
			),
			Top: key.NewBinding(
				key.WithKeys("1"),
				key.WithHelp("1", "top"),
			),
			New: key.NewBinding(
				key.WithKeys("2"),
				key.WithHelp("2", "new"),
			),
			Best: key.NewBinding(
				key.WithKeys("3"),
				key.WithHelp("3", "best"),
			),
			Open: key.NewBinding(
				key.WithKeys("enter", "o"),
				key.WithHelp("o", "open"),
			),
			Comments: key.NewBinding(
				key.WithKeys("c"),
				key.WithHelp("c", "comments"),
			),
			Refresh: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "refresh"),
			),
			Yank: key.NewBinding(
				key.WithKeys("y"),
				key.WithHelp("y", "copy url"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "help"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
		Comments: CommentKeyMap{
			Up: key.NewBinding(
				key.WithKeys("k", "up"),
				key.WithHelp("↑/k", "prev"),
			),
			Down: key.NewBinding(
				key.WithKeys("j", "down"),
				key.WithHelp("↓/j", "next"),
			),
			NextSibling: key.NewBinding(
				key.WithKeys("]"),
				key.WithHelp("]", "next sibling"),
			),
			PrevSibling: key.NewBinding(
				key.WithKeys("["),
				key.WithHelp("[", "prev sibling"),
			),
			Parent: key.NewBinding(
				key.WithKeys("u"),
				key.WithHelp("u", "parent"),
			),
			First: key.NewBinding(
				key.WithKeys("g"),
				key.WithHelp("g", "top"),
			),
			Last: key.NewBinding(
				key.WithKeys("G"),
				key.WithHelp("G", "bottom"),
			),
			Toggle: key.NewBinding(
				key.WithKeys("enter", "l", "right"),
				key.WithHelp("enter/l", "expand"),
			),
			CollapseThread: key.NewBinding(
				key.WithKeys("c"),
				key.WithHelp("c", "collapse thread"),
			),
			Open: key.NewBinding(
				key.WithKeys("o"),
				key.WithHelp("o", "open"),
			),
			Yank: key.NewBinding(
				key.WithKeys("y"),
				key.WithHelp("y", "copy url"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "help"),
			),
			Back: key.NewBinding(
				key.WithKeys("q", "esc", "h", "left"),
				key.WithHelp("esc", "back"),
			),
		},
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the status line.
func (k StoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextPage, k.Open, k.Comments, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k StoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.NextPage, k.PrevPage},
		{k.Top, k.New, k.Best, k.Refresh},
		{k.Open, k.Comments, k.Yank, k.Help, k.Quit},
	}
}

func (k CommentKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Toggle, k.CollapseThread, k.Open, k.Back, k.Help}
}

func (k CommentKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.First, k.Last},
		{k.NextSibling, k.PrevSibling, k.Parent},
		{k.Toggle, k.CollapseThread, k.Open, k.Yank, k.Back},
	}
}
