package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"dhtview/internal/model"
)

// Styles holds the panel colors and the colors of the setup prompts.
type Styles struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Comfort  lipgloss.Style
	Moisture lipgloss.Style
	Pressure lipgloss.Style
	Log      lipgloss.Style
	LogTitle lipgloss.Style
	Banner   lipgloss.Style

	Plain   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
	Option  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }
	return Styles{
		Border:   fg("4"),
		Title:    fg("7").Bold(true),
		Comfort:  fg("2"),
		Moisture: fg("5"),
		Pressure: fg("6"),
		Log:      fg("3"),
		LogTitle: fg("3").Bold(true),
		Banner:   fg("5"),

		Plain:   fg("7"),
		Info:    fg("6"),
		Success: fg("2"),
		Error:   fg("1"),
		Prompt:  fg("6"),
		Option:  fg("3"),
	}
}

// ForKind returns the style for a log entry kind.
func (s Styles) ForKind(k model.LogKind) lipgloss.Style {
	switch k {
	case model.LogInfo:
		return s.Info
	case model.LogSuccess:
		return s.Success
	case model.LogError:
		return s.Error
	default:
		return s.Plain
	}
}
