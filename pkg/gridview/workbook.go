package gridview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/parser"
)

// Range keywords understood by Workbook.Resolve.
const (
	RefDataRange = "data"
	RefPrintArea = "print"
)

// Workbook is an imported xlsx file: the geometry of every sheet and the
// text of its cells.
type Workbook struct {
	Layout *models.WorkbookLayout
	cells  map[string]map[models.CellAddress]string
	// Warnings holds the parts of sheets that failed to import.
	Warnings []error
}

// OpenWorkbook imports the workbook at path, scaling its sizes to the
// geometry of opts. A sheet part that fails to import is logged and left
// at its defaults.
func OpenWorkbook(path string, opts Options) (*Workbook, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	g := parser.Geometry{
		ColWidth:  opts.ColWidth,
		RowHeight: opts.RowHeight,
		MaxCols:   opts.MaxCols,
		MaxRows:   opts.MaxRows,
	}
	w := &Workbook{
		Layout: &models.WorkbookLayout{
			BookName: filepath.Base(path),
			Names:    parser.ExtractNames(f),
		},
		cells: make(map[string]map[models.CellAddress]string),
	}
	warn := func(sheetName, component string, err error) {
		ie := NewImportError(sheetName, component, err)
		opts.Logger.Warn("sheet import incomplete", "error", ie)
		w.Warnings = append(w.Warnings, ie)
	}
	printAreas := parser.ExtractPrintAreas(f)

	for _, sheetName := range f.GetSheetList() {
		layout, err := parser.ExtractLayout(f, sheetName, g)
		if err != nil {
			warn(sheetName, "layout", err)
			layout = &models.SheetLayout{
				Name: sheetName,
				Cols: models.AxisLayout{Default: g.ColWidth},
				Rows: models.AxisLayout{Default: g.RowHeight},
			}
		}
		cells, err := parser.ExtractCells(f, sheetName, g)
		if err != nil {
			warn(sheetName, "cells", err)
		}
		w.cells[sheetName] = cells

		layout.DataRange, err = parser.DetectDataRange(f, sheetName)
		if err != nil {
			warn(sheetName, "data_range", err)
		}
		layout.PrintAreas = printAreas[sheetName]
		w.Layout.Sheets = append(w.Layout.Sheets, *layout)
	}
	opts.Logger.Debug("workbook imported", "book", w.Layout.BookName,
		"sheets", len(w.Layout.Sheets), "names", len(w.Layout.Names))
	return w, nil
}

// Sheet returns the layout of the named sheet, or of the first sheet when
// name is empty.
func (w *Workbook) Sheet(name string) (*models.SheetLayout, error) {
	if name == "" && len(w.Layout.Sheets) > 0 {
		return &w.Layout.Sheets[0], nil
	}
	if l := w.Layout.Sheet(name); l != nil {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// Content returns a content provider drawing the cell text of sheet.
// Every quadrant shows the same text.
func (w *Workbook) Content(sheet string) ContentFunc {
	cells := w.cells[sheet]
	return func(_ models.Quadrant, col, row int) string {
		return cells[models.CellAddress{Col: col, Row: row}]
	}
}

// Resolve turns ref into a range of sheet. ref is a defined name, "data"
// for the non-empty cells, "print" for the first print area, or an A1
// reference.
func (w *Workbook) Resolve(sheet, ref string) (models.CellRange, error) {
	l, err := w.Sheet(sheet)
	if err != nil {
		return models.CellRange{}, err
	}
	switch strings.ToLower(ref) {
	case RefDataRange:
		if l.DataRange == nil {
			return models.CellRange{}, fmt.Errorf("%w: sheet %q is empty", ErrInvalidRange, l.Name)
		}
		return *l.DataRange, nil
	case RefPrintArea:
		if len(l.PrintAreas) == 0 {
			return models.CellRange{}, fmt.Errorf("%w: sheet %q has no print area", ErrInvalidRange, l.Name)
		}
		return l.PrintAreas[0], nil
	}
	if nr, ok := w.Layout.Names[ref]; ok {
		if nr.Sheet != l.Name {
			return models.CellRange{}, fmt.Errorf("%w: %q refers to sheet %q", ErrInvalidRange, ref, nr.Sheet)
		}
		return nr.Range, nil
	}
	return ParseRange(ref)
}

// ParseRange parses an A1 reference such as "B2" or "B2:D9".
func ParseRange(ref string) (models.CellRange, error) {
	r, err := parser.ParseRange(ref)
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return r, nil
}
