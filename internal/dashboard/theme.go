package dashboard

import "charm.land/lipgloss/v2"

const accentHex = "#63b3ed"

var (
	textColor = lipgloss.Color("#e2e8f0")
	dimColor  = lipgloss.Color("#a0aec0")
	trackBg   = lipgloss.Color("#2d3748")
	accent    = lipgloss.Color(accentHex)
	alertRed  = lipgloss.Color("#e53e3e")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			MarginTop(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(textColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	emergencyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(alertRed).
			Border(lipgloss.ThickBorder()).
			BorderForeground(alertRed).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(trackBg).
			Padding(0, 1)
)

// tint colours s with one of the hex colours carried on assessment records.
func tint(hex, s string) string {
	if hex == "" {
		return bodyStyle.Render(s)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}
