package models

// AxisLayout holds the non-default heading sizes of one axis.
type AxisLayout struct {
	// Default is the size of a heading with no explicit entry.
	Default int `json:"default"`
	// Sizes maps heading index to an explicit size.
	Sizes map[int]int `json:"sizes,omitempty"`
	// Hidden maps hidden heading index to the size it had before hiding.
	Hidden map[int]int `json:"hidden,omitempty"`
}

// SheetLayout represents the imported geometry of a single sheet.
type SheetLayout struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Cols describes column widths.
	Cols AxisLayout `json:"cols"`
	// Rows describes row heights.
	Rows AxisLayout `json:"rows"`
	// Freeze is the first scrollable cell when panes are frozen, nil otherwise.
	Freeze *CellAddress `json:"freeze,omitempty"`
	// TopLeft is the first visible scrollable cell.
	TopLeft *CellAddress `json:"top_left,omitempty"`
	// DataRange is the bounding box of non-empty cells.
	DataRange *CellRange `json:"data_range,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []CellRange `json:"print_areas,omitempty"`
}

// WorkbookLayout represents the imported geometry of a workbook.
type WorkbookLayout struct {
	// BookName is the workbook file name.
	BookName string `json:"book_name"`
	// Sheets contains layouts in workbook order.
	Sheets []SheetLayout `json:"sheets"`
	// Names maps defined names to the ranges they refer to.
	Names map[string]NamedRange `json:"names,omitempty"`
}

// NamedRange is a defined name resolved to a sheet range.
type NamedRange struct {
	// Sheet is the sheet the range refers to.
	Sheet string `json:"sheet"`
	// Range is the referenced cells.
	Range CellRange `json:"range"`
}

// Sheet returns the layout for name, or nil.
func (w *WorkbookLayout) Sheet(name string) *SheetLayout {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}
