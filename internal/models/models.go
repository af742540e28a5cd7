package models

import (
	"fmt"
	"strconv"
	"time"
)

// Attribute is a displayable field of a [Call].
//
// Attributes are owned by the catalog and never mutated after registration.
type Attribute struct {
	ID          int    // Ordinal position in the catalog
	Name        string // Persistence token written to the rc file
	Description string
	Title       string // Column header
	Width       int    // Preferred column width
}

func (a Attribute) String() string { return a.Name }

// Call is a single SIP dialog as shown in the call list.
type Call struct {
	ID         string     `json:"id"`
	Sequence   int        `json:"sequence"`
	CallID     string     `json:"call_id"`
	XCallID    string     `json:"x_call_id,omitempty"`
	From       string     `json:"from"`
	FromUser   string     `json:"from_user,omitempty"`
	To         string     `json:"to"`
	ToUser     string     `json:"to_user,omitempty"`
	Source     string     `json:"source"`
	Dest       string     `json:"destination"`
	Method     string     `json:"method"`
	Transport  string     `json:"transport,omitempty"`
	State      string     `json:"state,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Warning    string     `json:"warning,omitempty"`
	MsgCount   int        `json:"msg_count"`
	StartedAt  time.Time  `json:"started_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Validate checks required fields before persisting.
func (c *Call) Validate() error {
	if c.CallID == "" {
		return fmt.Errorf("call_id is required")
	}
	if c.StartedAt.IsZero() {
		return fmt.Errorf("started_at is required for call %s", c.CallID)
	}
	return nil
}

// TotalDuration is the time between the first and last message of the call.
func (c *Call) TotalDuration() time.Duration {
	if c.EndedAt == nil {
		return 0
	}
	return c.EndedAt.Sub(c.StartedAt)
}

// ConvDuration is the time between answer and hang-up.
func (c *Call) ConvDuration() time.Duration {
	if c.AnsweredAt == nil || c.EndedAt == nil {
		return 0
	}
	return c.EndedAt.Sub(*c.AnsweredAt)
}

// Value renders the call field identified by the attribute token.
//
// Unknown tokens render as an empty string.
func (c *Call) Value(token string) string {
	switch token {
	case "index":
		return strconv.Itoa(c.Sequence)
	case "sipfrom":
		return c.From
	case "sipfromuser":
		return c.FromUser
	case "sipto":
		return c.To
	case "siptouser":
		return c.ToUser
	case "src":
		return c.Source
	case "dst":
		return c.Dest
	case "callid":
		return c.CallID
	case "xcallid":
		return c.XCallID
	case "date":
		return c.StartedAt.Format("2006/01/02")
	case "time":
		return c.StartedAt.Format("15:04:05")
	case "method":
		return c.Method
	case "transport":
		return c.Transport
	case "msgcnt":
		return strconv.Itoa(c.MsgCount)
	case "state":
		return c.State
	case "convdur":
		return formatDuration(c.ConvDuration())
	case "totaldur":
		return formatDuration(c.TotalDuration())
	case "reason":
		return c.Reason
	case "warning":
		return c.Warning
	default:
		return ""
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Repository defines the data access operations for persisted calls.
type Repository interface {
	Create(call *Call) error                  // Create inserts a call and assigns its ID and sequence
	Get(id string) (*Call, error)             // Get retrieves a call by its ID
	Delete(id string) error                   // Delete removes a call by its ID
	List(limit int) ([]*Call, error)          // List returns calls ordered by sequence, limit <= 0 returns all
	GetByCallID(callID string) (*Call, error) // GetByCallID retrieves a call by its SIP Call-ID header
}
