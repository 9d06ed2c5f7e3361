package style

import "github.com/charmbracelet/lipgloss"

var (
	Container = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1,
		2).BorderForeground(lipgloss.Color("#1B9C85")) //nolint:mnd
	cliHeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1B9C85")).
			Padding(0, 2). //nolint:mnd
			Bold(true).
			Italic(true).
			Align(lipgloss.Center).
			Width(40) //nolint:mnd

	BoldText = lipgloss.NewStyle().Bold(true)

	PositiveText = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	NegativeText = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func CLIHeader(title string, description string) string {
	return cliHeaderStyle.Render(title) + "\n" + description
}

// ForegroundPrint renders text in the given terminal color.
func ForegroundPrint(text string, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// ChangeText colors a percentage-change string green or red based on its sign.
func ChangeText(change string) string {
	if len(change) > 0 && change[0] == '-' {
		return NegativeText.Render(change)
	}
	return PositiveText.Render(change)
}
