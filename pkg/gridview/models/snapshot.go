package models

// Snapshot is a serializable view of the engine state.
type Snapshot struct {
	// Surface is the drawing surface size in pixels.
	Surface Point `json:"surface"`
	// Viewport is the scrollable region.
	Viewport Viewport `json:"viewport"`
	// Frozen is the frozen pane descriptor.
	Frozen FrozenPane `json:"frozen"`
	// State holds the display toggles.
	State PaneState `json:"state"`
	// Active is the active cell.
	Active CellAddress `json:"active"`
	// Selection is the selected range.
	Selection CellRange `json:"selection"`
	// Cols describes column widths.
	Cols AxisLayout `json:"cols"`
	// Rows describes row heights.
	Rows AxisLayout `json:"rows"`
	// Items counts drawn surface items by kind.
	Items map[string]int `json:"items,omitempty"`
}
