package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/callx/internal/models"
)

// callList is the call table whose columns follow the active attribute set.
type callList struct {
	table  table.Model
	active []models.Attribute
	calls  []*models.Call
}

func newCallList(active []models.Attribute) *callList {
	t := table.New(table.WithFocused(true), table.WithHeight(10))
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true)
	s.Selected = s.Selected.Bold(true)
	t.SetStyles(s)

	l := &callList{table: t}
	l.Replace(active)
	return l
}

// Active returns a copy of the displayed attributes in column order.
func (l *callList) Active() []models.Attribute {
	out := make([]models.Attribute, len(l.active))
	copy(out, l.active)
	return out
}

// Replace swaps the whole column set and rebuilds the table.
func (l *callList) Replace(attrs []models.Attribute) {
	l.active = make([]models.Attribute, len(attrs))
	copy(l.active, attrs)

	cols := make([]table.Column, len(l.active))
	for i, a := range l.active {
		cols[i] = table.Column{Title: a.Title, Width: a.Width}
	}

	// rows must match the column count before the table re-renders
	l.table.SetRows(nil)
	l.table.SetColumns(cols)
	l.table.SetRows(l.rows())
}

// SetCalls replaces the displayed calls.
func (l *callList) SetCalls(calls []*models.Call) {
	l.calls = calls
	l.table.SetRows(l.rows())
}

func (l *callList) Len() int { return len(l.calls) }

func (l *callList) SetSize(width, height int) {
	l.table.SetWidth(width)
	l.table.SetHeight(height)
}

func (l *callList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return cmd
}

func (l *callList) View() string { return l.table.View() }

func (l *callList) rows() []table.Row {
	rows := make([]table.Row, len(l.calls))
	for i, c := range l.calls {
		row := make(table.Row, len(l.active))
		for j, a := range l.active {
			row[j] = c.Value(a.Name)
		}
		rows[i] = row
	}
	return rows
}
