package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600"))

	// KindStyle styles the story list name in the header.
	KindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Bold(true)

	// StoryTitleStyle styles story titles in the list.
	StoryTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedTitleStyle highlights the selected story.
	SelectedTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6600")).
				Bold(true)

	// CursorStyle styles the selection marker.
	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F"))

	// AuthorStyle styles usernames.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95"))

	CommentCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EED49F"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// DimStyle renders the list while it is being replaced.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	DeletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Italic(true)

	// Reply indicator colors per expansion state.
	CollapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EED49F"))
	LoadingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))
	ExpandedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ShowingStyle marks what the list currently displays.
	ShowingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F"))

	// FetchingStyle marks the list being fetched when it differs from the shown one.
	FetchingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BD5CA"))

	// HelpBoxStyle frames the help overlay.
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(1, 2)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)

// depthColors cycles branch guide colors by nesting depth.
var depthColors = []lipgloss.Color{
	"#939AB7",
	"#8BD5CA",
	"#A6DA95",
	"#EED49F",
	"#C6A0F6",
	"#8AADF4",
}

// GuideStyle returns the branch guide style for a nesting depth.
func GuideStyle(depth int) lipgloss.Style {
	if depth < 0 {
		depth = 0
	}
	return lipgloss.NewStyle().Foreground(depthColors[depth%len(depthColors)])
}
