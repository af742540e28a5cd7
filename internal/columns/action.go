package columns

// Action is an abstract input the panel reacts to.
//
// Raw keys are mapped to actions by the host; a single key may produce several candidate actions.
type Action int

const (
	NavigateUp Action = iota
	NavigateDown
	PageUp
	PageDown
	Toggle
	MoveUp
	MoveDown
	ModeSwitch
	FocusLeft
	FocusRight
	Select
	Confirm
	Cancel
)

var actionNames = [...]string{
	"navigate-up", "navigate-down", "page-up", "page-down", "toggle", "move-up",
	"move-down", "mode-switch", "focus-left", "focus-right", "select", "confirm", "cancel",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Outcome tells the host what to do after an action was handled.
type Outcome int

const (
	OutcomeContinue      Outcome = iota // Keep the session open
	OutcomeCommit                       // Apply the selection to the call list
	OutcomeCommitAndSave                // Apply and persist the selection
	OutcomeCancel                       // Discard every change
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommit:
		return "commit"
	case OutcomeCommitAndSave:
		return "commit-and-save"
	case OutcomeCancel:
		return "cancel"
	default:
		return "continue"
	}
}

// Done reports whether the outcome ends the panel session.
func (o Outcome) Done() bool { return o != OutcomeContinue }

// Mode selects which half of the panel receives input.
type Mode int

const (
	ModeList     Mode = iota // Navigating the attribute list
	ModeControls             // Focus on the Accept/Save/Cancel buttons
)

// Control identifies one of the panel buttons.
type Control int

const (
	ControlAccept Control = iota
	ControlSave
	ControlCancel
	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlAccept:
		return "Accept"
	case ControlSave:
		return "Save"
	case ControlCancel:
		return "Cancel"
	default:
		return "unknown"
	}
}

// Controls lists every button in focus order.
func Controls() []Control {
	return []Control{ControlAccept, ControlSave, ControlCancel}
}
