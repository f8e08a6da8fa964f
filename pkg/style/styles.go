// Package style holds the terminal styles used by the loadfile CLI.
package style

import (
	"strings"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// LocationStyle colors a location by how long its values live.
func LocationStyle(loc types.Location) lipgloss.Style {
	if loc.IsSession() {
		return lipgloss.NewStyle().Foreground(SessionColor)
	}
	return lipgloss.NewStyle().Foreground(PersistentColor)
}

// RenderError formats err for the terminal. The code prefix of a coded
// error is dimmed; it appears once.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		prefix := "[" + string(code) + "]"
		if rest, ok := strings.CutPrefix(msg, prefix+" "); ok {
			msg = MutedStyle.Render(prefix) + " " + rest
		}
	}
	return ErrorStyle.Render("Error:") + " " + msg
}
