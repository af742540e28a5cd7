package ui

import "github.com/charmbracelet/lipgloss"

// dialog is a transient modal message dismissed by any key.
type dialog struct {
	message string
	failed  bool
}

func (d *dialog) Show(message string, failed bool) {
	d.message = message
	d.failed = failed
}

func (d *dialog) Active() bool { return d.message != "" }
func (d *dialog) Dismiss()     { d.message = "" }

func (d *dialog) View() string {
	text := styles.ok.Render(d.message)
	if d.failed {
		text = styles.err.Render(d.message)
	}
	return styles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left, text, "", styles.help.Render("press any key")))
}
