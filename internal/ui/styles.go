package ui

import (
	"github.com/bitgrid/cli/internal/grid"
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by both front ends
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Square  lipgloss.Style
	Help    lipgloss.Style
	Faint   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the stock palette
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Faint(true),
		Value:   lipgloss.NewStyle().Bold(true),
		Square:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Faint:   lipgloss.NewStyle().Faint(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Message returns the style for a message of the given severity
func (s Styles) Message(sev grid.Severity) lipgloss.Style {
	switch sev {
	case grid.SeveritySuccess:
		return s.Success
	case grid.SeverityError:
		return s.Error
	default:
		return s.Info
	}
}

// messageIcon prefixes messages the way the rest of the CLI does
func messageIcon(sev grid.Severity) string {
	switch sev {
	case grid.SeveritySuccess:
		return "✓ "
	case grid.SeverityError:
		return "✗ "
	default:
		return ""
	}
}

// RenderMessage styles text for sev
func (s Styles) RenderMessage(text string, sev grid.Severity) string {
	return s.Message(sev).Render(messageIcon(sev) + text)
}
