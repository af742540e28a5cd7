package columns

import "github.com/desertthunder/callx/internal/models"

// Item is one attribute entry of the panel list.
type Item struct {
	Attr    models.Attribute
	Enabled bool
}

// Label renders the checkbox marker for the item.
func (i Item) Label() string {
	if i.Enabled {
		return "[*]"
	}
	return "[ ]"
}

// ItemList is the ordered working copy of every catalog attribute.
//
// Its length never changes and it never holds the same attribute twice.
type ItemList []Item

// NewItemList seeds a list from the catalog and the currently active attributes.
//
// Active attributes come first in their given order and are enabled.
// The rest follow in catalog order, disabled. Active entries unknown to the catalog or repeated are ignored.
func NewItemList(catalog, active []models.Attribute) ItemList {
	known := make(map[int]bool, len(catalog))
	for _, a := range catalog {
		known[a.ID] = true
	}

	placed := make(map[int]bool, len(catalog))
	list := make(ItemList, 0, len(catalog))
	for _, a := range active {
		if !known[a.ID] || placed[a.ID] {
			continue
		}
		placed[a.ID] = true
		list = append(list, Item{Attr: lookup(catalog, a.ID), Enabled: true})
	}

	for _, a := range catalog {
		if placed[a.ID] {
			continue
		}
		placed[a.ID] = true
		list = append(list, Item{Attr: a})
	}
	return list
}

func lookup(catalog []models.Attribute, id int) models.Attribute {
	for _, a := range catalog {
		if a.ID == id {
			return a
		}
	}
	return models.Attribute{}
}

func (l ItemList) valid(i int) bool { return i >= 0 && i < len(l) }

// Toggle flips the enabled flag at i. Out of range indexes are a no-op.
func (l ItemList) Toggle(i int) bool {
	if !l.valid(i) {
		return false
	}
	l[i].Enabled = !l[i].Enabled
	return true
}

// Move swaps the entries at i and target.
//
// This is a pairwise swap, not an insertion: the item at target travels to i.
// It is a no-op when either index is out of range or both are equal.
func (l ItemList) Move(i, target int) bool {
	if !l.valid(i) || !l.valid(target) || i == target {
		return false
	}
	l[i], l[target] = l[target], l[i]
	return true
}

// Commit returns the enabled attributes in list order.
func (l ItemList) Commit() []models.Attribute {
	out := make([]models.Attribute, 0, len(l))
	for _, it := range l {
		if it.Enabled {
			out = append(out, it.Attr)
		}
	}
	return out
}

// EnabledCount is the number of enabled items.
func (l ItemList) EnabledCount() int {
	n := 0
	for _, it := range l {
		if it.Enabled {
			n++
		}
	}
	return n
}
