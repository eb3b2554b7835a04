package surface

import (
	"maps"
	"slices"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// Canvas is an in-memory Surface. It is not safe for concurrent use.
type Canvas struct {
	items map[ItemID]*Item
	next  ItemID
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{items: make(map[ItemID]*Item), next: 1}
}

func (c *Canvas) Create(it Item) ItemID {
	it.ID = c.next
	c.next++
	c.items[it.ID] = &it
	return it.ID
}

func (c *Canvas) Delete(ids ...ItemID) {
	for _, id := range ids {
		delete(c.items, id)
	}
}

func (c *Canvas) Move(id ItemID, dx, dy int) {
	if it, ok := c.items[id]; ok {
		it.Rect = it.Rect.Translate(dx, dy)
	}
}

func (c *Canvas) Item(id ItemID) (Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

func (c *Canvas) Find(r models.Rect, match Match, kinds ...Kind) []ItemID {
	return c.filter(func(it *Item) bool {
		if !hasKind(kinds, it.Kind) {
			return false
		}
		if match == Enclosed {
			return r.Encloses(it.Rect)
		}
		return r.Overlaps(it.Rect)
	})
}

func (c *Canvas) All(kinds ...Kind) []ItemID {
	return c.filter(func(it *Item) bool { return hasKind(kinds, it.Kind) })
}

func (c *Canvas) SetHidden(id ItemID, hidden bool) {
	if it, ok := c.items[id]; ok {
		it.Hidden = hidden
	}
}

func (c *Canvas) SetHighlighted(id ItemID, on bool) {
	if it, ok := c.items[id]; ok {
		it.Highlighted = on
	}
}

func (c *Canvas) Clear() {
	clear(c.items)
}

// Items returns copies of the items of the given kinds in creation order.
func (c *Canvas) Items(kinds ...Kind) []Item {
	ids := c.All(kinds...)
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, *c.items[id])
	}
	return out
}

// Counts returns the number of items per kind name.
func (c *Canvas) Counts() map[string]int {
	out := make(map[string]int)
	for _, it := range c.items {
		out[it.Kind.String()]++
	}
	return out
}

// Len returns the number of items.
func (c *Canvas) Len() int {
	return len(c.items)
}

func (c *Canvas) filter(keep func(*Item) bool) []ItemID {
	var out []ItemID
	for _, id := range slices.Sorted(maps.Keys(c.items)) {
		if keep(c.items[id]) {
			out = append(out, id)
		}
	}
	return out
}

func hasKind(kinds []Kind, k Kind) bool {
	return len(kinds) == 0 || slices.Contains(kinds, k)
}
