package packs

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	pack     lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	detail   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		pack:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
