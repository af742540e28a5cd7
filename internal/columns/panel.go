package columns

import "github.com/desertthunder/callx/internal/models"

// DefaultPageSize is the number of list rows visible at once.
const DefaultPageSize = 10

// Panel holds the state of one column selection session.
//
// A Panel is created by [Open] and dropped once [Panel.HandleAction] returns an outcome for which [Outcome.Done] is true.
type Panel struct {
	items    ItemList
	mode     Mode
	focus    Control
	cursor   int
	offset   int
	pageSize int
}

// Open starts a session seeded from the active columns of the call list.
func Open(catalog, active []models.Attribute) *Panel {
	return &Panel{
		items:    NewItemList(catalog, active),
		mode:     ModeList,
		focus:    ControlAccept,
		pageSize: DefaultPageSize,
	}
}

// SetPageSize changes the number of visible rows. Values below 1 are ignored.
func (p *Panel) SetPageSize(n int) {
	if n < 1 {
		return
	}
	p.pageSize = n
	p.scroll()
}

func (p *Panel) Items() ItemList   { return p.items }
func (p *Panel) Mode() Mode        { return p.mode }
func (p *Panel) Focus() Control    { return p.focus }
func (p *Panel) Cursor() int       { return p.cursor }
func (p *Panel) Offset() int       { return p.offset }
func (p *Panel) PageSize() int     { return p.pageSize }
func (p *Panel) Len() int          { return len(p.items) }
func (p *Panel) Toggle(i int) bool { return p.items.Toggle(i) }

// Move swaps the items at i and target; see [ItemList.Move].
func (p *Panel) Move(i, target int) bool { return p.items.Move(i, target) }

// Commit returns the enabled attributes in their current order.
func (p *Panel) Commit() []models.Attribute { return p.items.Commit() }

// Visible returns the window of items starting at the scroll offset.
func (p *Panel) Visible() ItemList {
	end := min(p.offset+p.pageSize, len(p.items))
	return p.items[p.offset:end]
}

// Dispatch tries each candidate action in priority order and stops at the first one handled.
func (p *Panel) Dispatch(actions []Action) (Outcome, bool) {
	for _, a := range actions {
		if outcome, ok := p.HandleAction(a); ok {
			return outcome, true
		}
	}
	return OutcomeContinue, false
}

// HandleAction processes one action to completion.
//
// The bool is false when the action means nothing in the current mode; state is left untouched in that case.
func (p *Panel) HandleAction(a Action) (Outcome, bool) {
	var (
		outcome Outcome
		handled bool
	)
	if p.mode == ModeControls {
		outcome, handled = p.handleControls(a)
	} else {
		outcome, handled = p.handleList(a)
	}
	if handled {
		p.scroll()
	}
	return outcome, handled
}

func (p *Panel) handleList(a Action) (Outcome, bool) {
	switch a {
	case NavigateUp:
		p.setCursor(p.cursor - 1)
	case NavigateDown:
		p.setCursor(p.cursor + 1)
	case PageUp:
		p.setCursor(p.cursor - p.pageSize)
	case PageDown:
		p.setCursor(p.cursor + p.pageSize)
	case Toggle:
		p.items.Toggle(p.cursor)
	case MoveUp:
		if p.items.Move(p.cursor, p.cursor-1) {
			p.cursor--
		}
	case MoveDown:
		if p.items.Move(p.cursor, p.cursor+1) {
			p.cursor++
		}
	case ModeSwitch:
		p.mode = ModeControls
		p.focus = ControlAccept
	case Confirm:
		return OutcomeCommit, true
	case Cancel:
		return OutcomeCancel, true
	default:
		return OutcomeContinue, false
	}
	return OutcomeContinue, true
}

func (p *Panel) handleControls(a Action) (Outcome, bool) {
	switch a {
	case FocusRight, ModeSwitch:
		if p.focus == ControlCancel {
			// Wrapping forward hands input back to the list.
			p.focus = ControlAccept
			p.mode = ModeList
			break
		}
		p.focus++
	case FocusLeft:
		p.focus = (p.focus + controlCount - 1) % controlCount
	case Select, Confirm:
		switch p.focus {
		case ControlSave:
			return OutcomeCommitAndSave, true
		case ControlCancel:
			return OutcomeCancel, true
		default:
			return OutcomeCommit, true
		}
	case Cancel:
		return OutcomeCancel, true
	default:
		return OutcomeContinue, false
	}
	return OutcomeContinue, true
}

func (p *Panel) setCursor(i int) {
	p.cursor = max(0, min(i, len(p.items)-1))
}

// scroll keeps the cursor inside the visible window.
func (p *Panel) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.pageSize {
		p.offset = p.cursor - p.pageSize + 1
	}
	p.offset = max(0, min(p.offset, len(p.items)-p.pageSize))
}
