package viz

import "github.com/charmbracelet/lipgloss"

func statusStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(th.Text).
		Background(lipgloss.Color(th.Palette.Background))
}

func mutedStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(th.Muted).
		Background(lipgloss.Color(th.Palette.Background))
}

func accentStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Accent).
		Background(lipgloss.Color(th.Palette.Background))
}

func helpBoxStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Foreground(th.Text).
		Background(lipgloss.Color(th.Palette.Background)).
		Padding(1, 3)
}
