package catalog

import (
	"testing"

	"github.com/desertthunder/callx/internal/models"
)

func TestCatalog(t *testing.T) {
	c := New()

	t.Run("Enumerate is stable and ordered", func(t *testing.T) {
		first := c.Enumerate()
		second := c.Enumerate()

		if len(first) != c.Len() || len(first) != len(attributes) {
			t.Fatalf("expected %d attributes, got %d", len(attributes), len(first))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("attribute %d differs between calls: %v vs %v", i, first[i], second[i])
			}
			if first[i].ID != i {
				t.Errorf("expected attribute %s to have ID %d, got %d", first[i].Name, i, first[i].ID)
			}
		}
	})

	t.Run("Enumerate returns a copy", func(t *testing.T) {
		attrs := c.Enumerate()
		attrs[0].Name = "changed"

		if c.Enumerate()[0].Name != "index" {
			t.Error("mutating the returned slice should not affect the catalog")
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		tc := []struct {
			name  string
			token string
			want  string
			ok    bool
		}{
			{name: "exact", token: "sipfrom", want: "sipfrom", ok: true},
			{name: "mixed case", token: "SipTo", want: "sipto", ok: true},
			{name: "padded", token: " state ", want: "state", ok: true},
			{name: "unknown", token: "nope", ok: false},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := c.Lookup(tt.token)
				if ok != tt.ok {
					t.Fatalf("Lookup(%q) ok = %v, want %v", tt.token, ok, tt.ok)
				}
				if ok && got.Name != tt.want {
					t.Errorf("Lookup(%q) = %s, want %s", tt.token, got.Name, tt.want)
				}
			})
		}
	})

	t.Run("Resolve skips unknown and repeated tokens", func(t *testing.T) {
		got := c.Resolve([]string{"dst", "bogus", "src", "DST"})

		if len(got) != 2 {
			t.Fatalf("expected 2 attributes, got %d", len(got))
		}
		if got[0].Name != "dst" || got[1].Name != "src" {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		got := c.Tokens(c.Defaults())
		if len(got) != len(DefaultColumns) {
			t.Fatalf("expected %d defaults, got %d", len(DefaultColumns), len(got))
		}
		for i := range got {
			if got[i] != DefaultColumns[i] {
				t.Errorf("default %d = %s, want %s", i, got[i], DefaultColumns[i])
			}
		}
	})

	t.Run("TokenOf", func(t *testing.T) {
		a := models.Attribute{Name: "callid"}
		if c.TokenOf(a) != "callid" {
			t.Errorf("expected callid, got %s", c.TokenOf(a))
		}
	})
}
