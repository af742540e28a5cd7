package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/callx/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCallsLoaded MsgKind = iota
)

type callsLoaded struct {
	calls []*models.Call
	err   error
}

// callsLoadedMsg is the constructor for [MsgCallsLoaded]
func callsLoadedMsg(calls []*models.Call, err error) Msg {
	return Msg{kind: MsgCallsLoaded, data: callsLoaded{calls, err}}
}
