// Package surface defines the drawing capability the grid engine renders
// into, and an in-memory retained implementation of it.
package surface

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Kind classifies drawable items.
type Kind int

const (
	KindCorner Kind = iota
	KindColHeading
	KindRowHeading
	KindCell
	KindSelection
	KindActiveCell
	KindFreezeLine
	KindDrawnArea
)

var kindNames = [...]string{
	KindCorner:     "corner",
	KindColHeading: "col_heading",
	KindRowHeading: "row_heading",
	KindCell:       "cell",
	KindSelection:  "selection",
	KindActiveCell: "active_cell",
	KindFreezeLine: "freeze_line",
	KindDrawnArea:  "drawn_area",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ContentKinds are the kinds the engine moves and deletes while scrolling.
var ContentKinds = []Kind{KindColHeading, KindRowHeading, KindCell}

// ItemID identifies an item on a surface.
type ItemID int

// Item is a retained drawable.
type Item struct {
	ID   ItemID
	Kind Kind
	// Rect is the item's pixel area.
	Rect models.Rect
	// Text is drawn centred in Rect.
	Text string
	// Index is the heading index for heading items.
	Index int
	// Cell is the address a cell item was drawn for, matching Text. Items
	// shifted by a row or column insert or delete keep it until redrawn.
	Cell models.CellAddress
	// Quadrant is the quadrant a cell item was drawn for.
	Quadrant models.Quadrant
	// Hidden items are kept but not rendered.
	Hidden bool
	// Highlighted headings belong to the selection.
	Highlighted bool
}

// Match selects how Find compares an item with the query rectangle.
type Match int

const (
	// Enclosed matches items lying entirely inside the query.
	Enclosed Match = iota
	// Overlapping matches items sharing at least one pixel with the query.
	Overlapping
)

// Surface is the drawing capability used by the engine. Find and All
// return IDs in creation order. An empty kinds list matches every kind.
type Surface interface {
	Create(it Item) ItemID
	Delete(ids ...ItemID)
	Move(id ItemID, dx, dy int)
	Item(id ItemID) (Item, bool)
	Find(r models.Rect, match Match, kinds ...Kind) []ItemID
	All(kinds ...Kind) []ItemID
	SetHidden(id ItemID, hidden bool)
	SetHighlighted(id ItemID, on bool)
	Clear()
}
