package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	Violet      = lipgloss.Color("#AB8BFF")
	VioletLight = lipgloss.Color("#D6C7FF")
	Night       = lipgloss.Color("#030014")
	NightLight  = lipgloss.Color("#221F3D")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#A8B5DB")
	White       = lipgloss.Color("#F9FAFB")
	Gold        = lipgloss.Color("#FACC15")
	Red         = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(VioletLight).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	SectionStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginTop(1)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Violet)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Gold)
)

// Card styles
var (
	SelectedCardStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(NightLight).
				Padding(0, 1)

	NormalCardStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	RankStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)
)

// Detail pane
var (
	InspectorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(NightLight).
		Padding(0, 1)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Violet)

	// SpinnerFrames are used outside the TUI, e.g. during setup
	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)
)

// Match highlight styles for result titles
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Violet).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(VioletLight).
					Background(NightLight).
					Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Violet)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Truncate shortens s to the given display width with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
