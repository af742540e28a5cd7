package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/callx/internal/catalog"
	"github.com/desertthunder/callx/internal/columns"
	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/rcfile"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CallListView ViewState = iota
	ColumnSelectView
)

// Saver persists a committed column selection and returns where it was written.
type Saver interface {
	Save(selection []models.Attribute) (string, error)
}

// Options holds the dependencies of [Model].
type Options struct {
	Repo     models.Repository
	Catalog  *catalog.Catalog
	Saver    Saver
	Logger   *log.Logger
	Active   []models.Attribute // Initial call list columns
	PageSize int                // Visible rows of the column panel
	Limit    int                // Maximum calls loaded, zero for all
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	repo     models.Repository
	catalog  *catalog.Catalog
	saver    Saver
	logger   *log.Logger
	pageSize int
	limit    int
	width    int
	height   int
	list     *callList
	panel    *columns.Panel
	dialog   dialog
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.PageSize < 1 {
		opts.PageSize = columns.DefaultPageSize
	}

	return &Model{
		ctx:      ctx,
		view:     CallListView,
		repo:     opts.Repo,
		catalog:  opts.Catalog,
		saver:    opts.Saver,
		logger:   opts.Logger,
		pageSize: opts.PageSize,
		limit:    opts.Limit,
		list:     newCallList(opts.Active),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init loads the stored calls.
func (m *Model) Init() tea.Cmd {
	return m.loadCalls()
}

// ViewState returns the current view.
func (m *Model) ViewState() ViewState { return m.view }

// Active returns the columns currently shown in the call list.
func (m *Model) Active() []models.Attribute { return m.list.Active() }

// Panel returns the open column panel, or nil outside [ColumnSelectView].
func (m *Model) Panel() *columns.Panel { return m.panel }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, max(msg.Height-8, 3))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		if m.dialog.Active() {
			m.dialog.Dismiss()
			return m, nil
		}

		switch m.view {
		case CallListView:
			return m.handleCallListKeys(msg)
		case ColumnSelectView:
			return m.handlePanelKeys(msg)
		}

	case Msg:
		if msg.kind == MsgCallsLoaded {
			loaded := msg.data.(callsLoaded)
			if loaded.err != nil {
				m.err = loaded.err
				m.logger.Error("failed to load calls", "error", loaded.err)
				return m, nil
			}
			m.list.SetCalls(loaded.calls)
			m.logger.Debug("calls loaded", "count", len(loaded.calls))
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var content string
	switch m.view {
	case ColumnSelectView:
		content = m.renderColumnSelect()
	default:
		content = m.renderCallList()
	}

	if !m.dialog.Active() {
		return content
	}
	if m.width == 0 || m.height == 0 {
		return fmt.Sprintf("%s\n\n%s", content, m.dialog.View())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
}

func (m *Model) handleCallListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.columns):
		m.openPanel()
		return m, nil
	}

	return m, m.list.Update(msg)
}

func (m *Model) handlePanelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := m.keys.actions(msg)
	if len(actions) == 0 {
		return m, nil
	}

	outcome, handled := m.panel.Dispatch(actions)
	if !handled {
		m.logger.Debug("key not handled by column panel", "key", msg.String(), "mode", m.panel.Mode())
		return m, nil
	}
	if outcome.Done() {
		m.closePanel(outcome)
	}
	return m, nil
}

func (m *Model) openPanel() {
	m.panel = columns.Open(m.catalog.Enumerate(), m.list.Active())
	m.panel.SetPageSize(m.pageSize)
	m.view = ColumnSelectView
}

// closePanel applies the outcome of a finished panel session and returns to the call list.
func (m *Model) closePanel(outcome columns.Outcome) {
	selection := m.panel.Commit()
	m.panel = nil
	m.view = CallListView

	switch outcome {
	case columns.OutcomeCommit:
		m.list.Replace(selection)
		m.logger.Info("columns applied", "columns", m.catalog.Tokens(selection))
	case columns.OutcomeCommitAndSave:
		m.list.Replace(selection)
		m.save(selection)
	case columns.OutcomeCancel:
		m.logger.Debug("column selection discarded")
	}
}

func (m *Model) save(selection []models.Attribute) {
	if m.saver == nil {
		return
	}

	path, err := m.saver.Save(selection)
	var saveErr *rcfile.SaveError
	switch {
	case err == nil:
		m.logger.Info("column layout saved", "path", path, "columns", len(selection))
		m.dialog.Show(fmt.Sprintf("Column layout successfully saved to %s", path), false)
	case errors.Is(err, rcfile.ErrPathUnresolved):
		m.logger.Debug("no rc file location, layout not saved")
	case errors.As(err, &saveErr):
		m.logger.Error("failed to save column layout", "path", saveErr.Path, "step", saveErr.Action(), "error", saveErr.Err)
		m.dialog.Show(fmt.Sprintf("Unable to %s %s: %v", saveErr.Action(), saveErr.Path, saveErr.Err), true)
	default:
		m.logger.Error("failed to save column layout", "error", err)
		m.dialog.Show(err.Error(), true)
	}
}

func (m *Model) loadCalls() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := m.ctx.Err(); err != nil {
			return callsLoadedMsg(nil, err)
		}
		calls, err := m.repo.List(m.limit)
		return callsLoadedMsg(calls, err)
	}
}

func (m *Model) renderCallList() string {
	title := styles.title.Render(fmt.Sprintf("Call List (%d calls)", m.list.Len()))
	helpView := m.help.ShortHelpView(m.keys.callListHelp())
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.list.View(), helpView)
}

func (m *Model) renderColumnSelect() string {
	helpView := m.help.ShortHelpView(m.keys.panelHelp())
	return fmt.Sprintf("%s\n\n%s", renderPanel(m.panel, m.width), helpView)
}
