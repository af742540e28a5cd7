// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [CallListView] : a table of stored calls whose columns follow the active attribute set
//  2. [ColumnSelectView] : the column selection panel, opened with F3 or c
//
// Key presses in the panel are translated into candidate [columns.Action] values and handed to [columns.Panel.Dispatch].
// When the panel reports a finished outcome the model applies it to the call list and, for Save, writes the rc file
// through a [Saver]. Save results are shown in a dialog that any key dismisses.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, tab, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
