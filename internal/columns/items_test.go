package columns

import (
	"testing"

	"github.com/desertthunder/callx/internal/models"
)

func testCatalog(names ...string) []models.Attribute {
	attrs := make([]models.Attribute, len(names))
	for i, n := range names {
		attrs[i] = models.Attribute{ID: i, Name: n, Title: n, Description: n, Width: 10}
	}
	return attrs
}

func names(attrs []models.Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.Name
	}
	return out
}

func listNames(l ItemList) []string {
	out := make([]string, len(l))
	for i, it := range l {
		out[i] = it.Attr.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// subsets enumerates every subset of attrs in catalog order.
func subsets(attrs []models.Attribute) [][]models.Attribute {
	var out [][]models.Attribute
	for mask := 0; mask < 1<<len(attrs); mask++ {
		var s []models.Attribute
		for i, a := range attrs {
			if mask&(1<<i) != 0 {
				s = append(s, a)
			}
		}
		out = append(out, s)
	}
	return out
}

func TestNewItemList(t *testing.T) {
	catalog := testCatalog("A", "B", "C")
	a, b, c := catalog[0], catalog[1], catalog[2]

	t.Run("active attributes come first", func(t *testing.T) {
		l := NewItemList(catalog, []models.Attribute{b})

		if got := listNames(l); !equal(got, []string{"B", "A", "C"}) {
			t.Fatalf("unexpected order: %v", got)
		}
		want := []bool{true, false, false}
		for i, it := range l {
			if it.Enabled != want[i] {
				t.Errorf("item %d enabled = %v, want %v", i, it.Enabled, want[i])
			}
		}
	})

	t.Run("keeps active relative order", func(t *testing.T) {
		l := NewItemList(catalog, []models.Attribute{c, a})
		if got := listNames(l); !equal(got, []string{"C", "A", "B"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("empty active set disables everything", func(t *testing.T) {
		l := NewItemList(catalog, nil)
		if got := listNames(l); !equal(got, []string{"A", "B", "C"}) {
			t.Errorf("unexpected order: %v", got)
		}
		if l.EnabledCount() != 0 {
			t.Errorf("expected no enabled items, got %d", l.EnabledCount())
		}
	})

	t.Run("ignores repeated and unknown attributes", func(t *testing.T) {
		stranger := models.Attribute{ID: 99, Name: "Z"}
		l := NewItemList(catalog, []models.Attribute{b, stranger, b})

		if got := listNames(l); !equal(got, []string{"B", "A", "C"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("length and uniqueness for every subset", func(t *testing.T) {
		big := testCatalog("a", "b", "c", "d", "e")
		for _, active := range subsets(big) {
			l := NewItemList(big, active)
			if len(l) != len(big) {
				t.Fatalf("active %v: expected length %d, got %d", names(active), len(big), len(l))
			}
			seen := map[int]bool{}
			for _, it := range l {
				if seen[it.Attr.ID] {
					t.Fatalf("active %v: duplicate attribute %s", names(active), it.Attr.Name)
				}
				seen[it.Attr.ID] = true
			}
			if l.EnabledCount() != len(active) {
				t.Errorf("active %v: expected %d enabled, got %d", names(active), len(active), l.EnabledCount())
			}
		}
	})
}

func TestItemList(t *testing.T) {
	catalog := testCatalog("A", "B", "C")

	t.Run("Toggle is self-inverse", func(t *testing.T) {
		l := NewItemList(catalog, catalog[:1])
		for i := range l {
			before := l[i]
			l.Toggle(i)
			if l[i].Enabled == before.Enabled {
				t.Errorf("toggle %d did not flip enabled", i)
			}
			l.Toggle(i)
			if l[i] != before {
				t.Errorf("double toggle %d changed item: %+v -> %+v", i, before, l[i])
			}
		}
	})

	t.Run("Toggle out of range", func(t *testing.T) {
		l := NewItemList(catalog, nil)
		if l.Toggle(-1) || l.Toggle(3) {
			t.Error("expected out of range toggle to report false")
		}
		if l.EnabledCount() != 0 {
			t.Error("out of range toggle should not change state")
		}
	})

	t.Run("Toggle then Commit", func(t *testing.T) {
		l := NewItemList(catalog, []models.Attribute{catalog[1]})
		l.Toggle(1)

		if got := names(l.Commit()); !equal(got, []string{"B", "A"}) {
			t.Errorf("expected [B A], got %v", got)
		}
	})

	t.Run("Move no-ops", func(t *testing.T) {
		tc := []struct {
			name      string
			i, target int
		}{
			{name: "same index", i: 1, target: 1},
			{name: "past end", i: 0, target: 5},
			{name: "at length", i: 2, target: 3},
			{name: "negative target", i: 0, target: -1},
			{name: "negative index", i: -1, target: 0},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				l := NewItemList(catalog, nil)
				if l.Move(tt.i, tt.target) {
					t.Error("expected Move to report a no-op")
				}
				if got := listNames(l); !equal(got, []string{"A", "B", "C"}) {
					t.Errorf("list changed: %v", got)
				}
			})
		}
	})

	t.Run("Move swaps and is its own inverse", func(t *testing.T) {
		big := testCatalog("a", "b", "c", "d", "e")
		for i := range big {
			for j := range big {
				l := NewItemList(big, big[1:3])
				orig := listNames(l)
				l.Move(i, j)
				if i != j && (l[i].Attr.Name != orig[j] || l[j].Attr.Name != orig[i]) {
					t.Fatalf("Move(%d, %d) did not swap: %v -> %v", i, j, orig, listNames(l))
				}
				l.Move(i, j)
				if got := listNames(l); !equal(got, orig) {
					t.Errorf("Move(%d, %d) twice: expected %v, got %v", i, j, orig, got)
				}
			}
		}
	})

	t.Run("Move swaps rather than shifting", func(t *testing.T) {
		l := NewItemList(catalog, nil)
		l.Move(0, 2)
		if got := listNames(l); !equal(got, []string{"C", "B", "A"}) {
			t.Errorf("expected [C B A], got %v", got)
		}
	})

	t.Run("Commit is stable and omits disabled", func(t *testing.T) {
		l := NewItemList(catalog, []models.Attribute{catalog[2], catalog[0]})
		first := names(l.Commit())
		second := names(l.Commit())

		if !equal(first, []string{"C", "A"}) {
			t.Errorf("expected [C A], got %v", first)
		}
		if !equal(first, second) {
			t.Errorf("commit not stable: %v vs %v", first, second)
		}
	})

	t.Run("Label", func(t *testing.T) {
		if (Item{Enabled: true}).Label() != "[*]" {
			t.Error("enabled label should be [*]")
		}
		if (Item{}).Label() != "[ ]" {
			t.Error("disabled label should be [ ]")
		}
	})
}
