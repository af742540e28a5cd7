package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/callx/internal/columns"
	"github.com/desertthunder/callx/internal/formatter"
)

// renderPanel draws the column selection panel: a scrolling checkbox list above the button row.
func renderPanel(p *columns.Panel, width int) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Call List columns"))
	b.WriteString("\n")

	descWidth := max(width-42, 20)
	for i, item := range p.Visible() {
		idx := p.Offset() + i
		line := fmt.Sprintf("%s %s %s", item.Label(), formatter.Cell(item.Attr.Name, 12), formatter.Cell(item.Attr.Description, descWidth))
		switch {
		case idx == p.Cursor() && p.Mode() == columns.ModeList:
			line = styles.cursor.Render(line)
		case !item.Enabled:
			line = styles.disabled.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if p.Len() > p.PageSize() {
		b.WriteString(styles.help.Render(fmt.Sprintf("%d-%d of %d", p.Offset()+1, p.Offset()+len(p.Visible()), p.Len())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderButtons(p))

	return styles.panel.Render(b.String())
}

func renderButtons(p *columns.Panel) string {
	buttons := make([]string, 0, len(columns.Controls()))
	for _, c := range columns.Controls() {
		label := "[" + c.String() + "]"
		if p.Mode() == columns.ModeControls && p.Focus() == c {
			buttons = append(buttons, styles.focused.Render(label))
		} else {
			buttons = append(buttons, styles.button.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
