package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// ExtractLayout reads the column widths, row heights, hidden headings and
// pane split of a sheet. Only headings inside the geometry limits are read.
func ExtractLayout(f *excelize.File, sheetName string, g Geometry) (*models.SheetLayout, error) {
	cols, err := extractCols(f, sheetName, g)
	if err != nil {
		return nil, err
	}
	rows, err := extractRows(f, sheetName, g)
	if err != nil {
		return nil, err
	}
	layout := &models.SheetLayout{Name: sheetName, Cols: cols, Rows: rows}
	if err := extractPanes(f, sheetName, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func extractCols(f *excelize.File, sheetName string, g Geometry) (models.AxisLayout, error) {
	out := models.AxisLayout{Default: g.ColWidth}
	for col := 1; col <= g.MaxCols; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return out, err
		}
		width, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return out, err
		}
		visible, err := f.GetColVisible(sheetName, name)
		if err != nil {
			return out, err
		}
		record(&out, col, g.ColUnits(width), visible)
	}
	return out, nil
}

// extractRows walks the row elements of the sheet. GetRowVisible reports
// rows past the last stored row as hidden, so the iterator is used instead.
func extractRows(f *excelize.File, sheetName string, g Geometry) (models.AxisLayout, error) {
	out := models.AxisLayout{Default: g.RowHeight}
	rows, err := f.Rows(sheetName)
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for row := 1; row <= g.MaxRows && rows.Next(); row++ {
		opts := rows.GetRowOpts()
		record(&out, row, g.RowUnits(opts.Height), !opts.Hidden)
	}
	return out, rows.Error()
}

// record stores size for heading i when it differs from the default or the
// heading is hidden.
func record(l *models.AxisLayout, i, size int, visible bool) {
	if !visible {
		if l.Hidden == nil {
			l.Hidden = make(map[int]int)
		}
		l.Hidden[i] = size
		return
	}
	if size == l.Default {
		return
	}
	if l.Sizes == nil {
		l.Sizes = make(map[int]int)
	}
	l.Sizes[i] = size
}

// extractPanes maps a frozen split to the first scrollable cell. The top
// left cell of the scrollable pane becomes the viewport origin.
func extractPanes(f *excelize.File, sheetName string, layout *models.SheetLayout) error {
	panes, err := f.GetPanes(sheetName)
	if err != nil {
		return err
	}
	if panes.Freeze && (panes.XSplit > 0 || panes.YSplit > 0) {
		layout.Freeze = &models.CellAddress{Col: panes.XSplit + 1, Row: panes.YSplit + 1}
	}
	if panes.TopLeftCell != "" {
		col, row, err := excelize.CellNameToCoordinates(panes.TopLeftCell)
		if err != nil {
			return err
		}
		layout.TopLeft = &models.CellAddress{Col: col, Row: row}
	}
	return nil
}
