package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	premium   lipgloss.Style
	free      lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	key       lipgloss.Style
	meta      lipgloss.Style
	unlocked  lipgloss.Style
	locked    lipgloss.Style
	action    lipgloss.Style
	badge     lipgloss.Style
	highlight lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		premium:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		free:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		unlocked:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		locked:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		action:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		highlight: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("39")).PaddingLeft(1),
	}
}
