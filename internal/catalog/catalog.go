// package catalog registers every call attribute the list can display
package catalog

import (
	"strings"

	"github.com/desertthunder/callx/internal/models"
)

// DefaultColumns are the tokens shown when neither the rc file nor the config name any.
var DefaultColumns = []string{"index", "method", "sipfrom", "sipto", "msgcnt", "src", "dst", "state"}

var attributes = []models.Attribute{
	{Name: "index", Title: "Idx", Width: 4, Description: "Call index"},
	{Name: "sipfrom", Title: "SIP From", Width: 25, Description: "SIP From header"},
	{Name: "sipfromuser", Title: "SIP From User", Width: 20, Description: "SIP From user"},
	{Name: "sipto", Title: "SIP To", Width: 25, Description: "SIP To header"},
	{Name: "siptouser", Title: "SIP To User", Width: 20, Description: "SIP To user"},
	{Name: "src", Title: "Source", Width: 22, Description: "Source address"},
	{Name: "dst", Title: "Destination", Width: 22, Description: "Destination address"},
	{Name: "callid", Title: "Call-ID", Width: 50, Description: "Call-ID header"},
	{Name: "xcallid", Title: "X-Call-ID", Width: 50, Description: "X-Call-ID header"},
	{Name: "date", Title: "Date", Width: 10, Description: "Date of first message"},
	{Name: "time", Title: "Time", Width: 8, Description: "Time of first message"},
	{Name: "method", Title: "Method", Width: 10, Description: "Request method"},
	{Name: "transport", Title: "Trans", Width: 3, Description: "Transport protocol"},
	{Name: "msgcnt", Title: "Msgs", Width: 5, Description: "Message count"},
	{Name: "state", Title: "Call State", Width: 12, Description: "Call state"},
	{Name: "convdur", Title: "ConvDur", Width: 7, Description: "Conversation duration"},
	{Name: "totaldur", Title: "TotalDur", Width: 8, Description: "Total duration"},
	{Name: "reason", Title: "Reason Text", Width: 25, Description: "Reason text"},
	{Name: "warning", Title: "Warning", Width: 4, Description: "Warning header"},
}

// Catalog is the fixed, ordered registry of known attributes.
type Catalog struct {
	attrs   []models.Attribute
	byToken map[string]models.Attribute
}

// New builds the SIP attribute catalog.
func New() *Catalog {
	return newCatalog(attributes)
}

func newCatalog(attrs []models.Attribute) *Catalog {
	c := &Catalog{
		attrs:   make([]models.Attribute, len(attrs)),
		byToken: make(map[string]models.Attribute, len(attrs)),
	}
	for i, a := range attrs {
		a.ID = i
		c.attrs[i] = a
		c.byToken[strings.ToLower(a.Name)] = a
	}
	return c
}

// Enumerate returns every attribute in catalog order.
//
// The slice is a copy; order and length are stable across calls.
func (c *Catalog) Enumerate() []models.Attribute {
	out := make([]models.Attribute, len(c.attrs))
	copy(out, c.attrs)
	return out
}

// Len is the number of registered attributes.
func (c *Catalog) Len() int { return len(c.attrs) }

// TokenOf returns the persistence token of an attribute.
func (c *Catalog) TokenOf(a models.Attribute) string { return a.Name }

// Lookup finds an attribute by token, case-insensitively.
func (c *Catalog) Lookup(token string) (models.Attribute, bool) {
	a, ok := c.byToken[strings.ToLower(strings.TrimSpace(token))]
	return a, ok
}

// Resolve maps tokens to attributes in order, skipping unknown and repeated tokens.
func (c *Catalog) Resolve(tokens []string) []models.Attribute {
	seen := make(map[int]bool, len(tokens))
	out := make([]models.Attribute, 0, len(tokens))
	for _, t := range tokens {
		a, ok := c.Lookup(t)
		if !ok || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

// Defaults returns the [DefaultColumns] attributes.
func (c *Catalog) Defaults() []models.Attribute {
	return c.Resolve(DefaultColumns)
}

// Tokens maps attributes back to their persistence tokens.
func (c *Catalog) Tokens(attrs []models.Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = c.TokenOf(a)
	}
	return out
}
