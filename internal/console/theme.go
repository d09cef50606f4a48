package console

import "github.com/charmbracelet/lipgloss"

var (
	Green     = lipgloss.Color("#00FF41")
	Cyan      = lipgloss.Color("#00D4AA")
	Gold      = lipgloss.Color("#FFD700")
	Red       = lipgloss.Color("#FF5555")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")

	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true)

	ReplyStyle = lipgloss.NewStyle().
			Foreground(White)

	NotifyStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)
