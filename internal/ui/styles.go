package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/priotasks/internal/config"
	"github.com/nibzard/priotasks/internal/task"
)

type styles struct {
	title      lipgloss.Style
	section    lipgloss.Style
	sortActive lipgloss.Style
	sortIdle   lipgloss.Style
	cursor     lipgloss.Style
	completed  lipgloss.Style
	label      lipgloss.Style
	hint       lipgloss.Style
	priority   map[task.Priority]lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	s := styles{
		title:      lipgloss.NewStyle().Bold(true),
		section:    lipgloss.NewStyle().Bold(true).Underline(true),
		sortActive: lipgloss.NewStyle().Bold(true).Reverse(true),
		sortIdle:   lipgloss.NewStyle().Faint(true),
		cursor:     lipgloss.NewStyle().Bold(true),
		completed:  lipgloss.NewStyle().Faint(true).Strikethrough(true),
		label:      lipgloss.NewStyle().Bold(true),
		hint:       lipgloss.NewStyle().Faint(true),
		priority:   make(map[task.Priority]lipgloss.Style),
	}
	for _, p := range task.Priorities() {
		style := lipgloss.NewStyle().Bold(true)
		if color := cfg.PriorityColor(p); color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		s.priority[p] = style
	}
	return s
}

func (s styles) priorityStyle(p task.Priority) lipgloss.Style {
	if style, ok := s.priority[p]; ok {
		return style
	}
	return lipgloss.NewStyle().Bold(true)
}
