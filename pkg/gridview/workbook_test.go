package gridview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// writeWorkbook saves a two-sheet fixture: "Data" has sized, hidden and
// frozen headings, a defined name and a print area; "Notes" is empty.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Data"))
	_, err := f.NewSheet("Notes")
	require.NoError(t, err)

	require.NoError(t, f.SetColWidth("Data", "B", "B", 2*9.140625))
	require.NoError(t, f.SetColVisible("Data", "C", false))
	require.NoError(t, f.SetRowHeight("Data", 4, 30))
	require.NoError(t, f.SetPanes("Data", &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}))
	for addr, v := range map[string]any{"A1": "Name", "B1": "Total", "A2": "north", "B2": 42, "D6": "end"} {
		require.NoError(t, f.SetCellValue("Data", addr, v))
	}
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Totals", RefersTo: "Data!$B$1:$B$2"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Elsewhere", RefersTo: "Notes!$A$1"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name: "_xlnm.Print_Area", RefersTo: "Data!$A$1:$D$6", Scope: "Data",
	}))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenWorkbook(t *testing.T) {
	wb, err := OpenWorkbook(writeWorkbook(t), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, wb.Warnings)
	assert.Equal(t, "book.xlsx", wb.Layout.BookName)
	require.Len(t, wb.Layout.Sheets, 2)

	l, err := wb.Sheet("")
	require.NoError(t, err)
	assert.Equal(t, "Data", l.Name)
	assert.Equal(t, map[int]int{2: 120}, l.Cols.Sizes)
	assert.Contains(t, l.Cols.Hidden, 3)
	assert.Equal(t, map[int]int{4: 40}, l.Rows.Sizes)
	assert.Equal(t, &models.CellAddress{Col: 2, Row: 2}, l.Freeze)
	assert.Equal(t, &models.CellRange{C1: 1, R1: 1, C2: 4, R2: 6}, l.DataRange)
	assert.Equal(t, []models.CellRange{{C1: 1, R1: 1, C2: 4, R2: 6}}, l.PrintAreas)

	notes, err := wb.Sheet("Notes")
	require.NoError(t, err)
	assert.Nil(t, notes.DataRange)

	_, err = wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)

	content := wb.Content("Data")
	assert.Equal(t, "42", content(models.QuadrantMain, 2, 2))
	assert.Equal(t, "Name", content(models.QuadrantCorner, 1, 1))
	assert.Empty(t, content(models.QuadrantMain, 5, 5))
	assert.Empty(t, wb.Content("Nope")(models.QuadrantMain, 1, 1))
}

func TestOpenWorkbookErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenWorkbook(filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	junk := filepath.Join(dir, "junk.xlsx")
	require.NoError(t, os.WriteFile(junk, []byte("not a workbook"), 0o644))
	_, err = OpenWorkbook(junk, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)

	opts := DefaultOptions()
	opts.RowHeight = 0
	_, err = OpenWorkbook(junk, opts)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolve(t *testing.T) {
	wb, err := OpenWorkbook(writeWorkbook(t), DefaultOptions())
	require.NoError(t, err)

	tests := []struct {
		sheet, ref string
		want       models.CellRange
		err        error
	}{
		{"Data", "Totals", models.CellRange{C1: 2, R1: 1, C2: 2, R2: 2}, nil},
		{"Data", "data", models.CellRange{C1: 1, R1: 1, C2: 4, R2: 6}, nil},
		{"Data", "Print", models.CellRange{C1: 1, R1: 1, C2: 4, R2: 6}, nil},
		{"Data", "$C$3:A1", models.CellRange{C1: 1, R1: 1, C2: 3, R2: 3}, nil},
		{"Data", "Elsewhere", models.CellRange{}, ErrInvalidRange},
		{"Data", "no such name", models.CellRange{}, ErrInvalidRange},
		{"Notes", "data", models.CellRange{}, ErrInvalidRange},
		{"Notes", "print", models.CellRange{}, ErrInvalidRange},
		{"Gone", "A1", models.CellRange{}, ErrSheetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.sheet+"/"+tt.ref, func(t *testing.T) {
			got, err := wb.Resolve(tt.sheet, tt.ref)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkbookDrivesEngine(t *testing.T) {
	wb, err := OpenWorkbook(writeWorkbook(t), DefaultOptions())
	require.NoError(t, err)
	l, err := wb.Sheet("Data")
	require.NoError(t, err)

	rec := &recorder{}
	opts := DefaultOptions()
	opts.Content = wb.Content("Data")
	opts.Events = rec.events()
	c := surface.NewCanvas()
	e, err := New(c, opts)
	require.NoError(t, err)
	e.Resize(400, 300)
	e.LoadLayout(*l)

	assert.Equal(t, cell(2, 2), e.Frozen().End)
	assert.Equal(t, cell(2, 2), e.Viewport().Origin)
	assert.True(t, e.Dims(models.AxisCols).Hidden(3))
	checkSurface(t, e, true)

	// the frozen corner shows the header text
	corner := cellAt(t, c, models.Rect{X0: 40, Y0: 20, X1: 100, Y1: 40})
	assert.Equal(t, "Name", corner.Text)

	r, err := wb.Resolve("Data", "Totals")
	require.NoError(t, err)
	e.SelectRange(r)
	assert.Equal(t, r, e.Selection())
	assert.Equal(t, cell(2, 1), e.Active())
	assert.Empty(t, rec.reports)
}

func TestImportError(t *testing.T) {
	err := error(NewImportError("Data", "layout", ErrInvalidRange))
	assert.EqualError(t, err, `import error in sheet "Data" (layout): invalid range`)
	assert.ErrorIs(t, err, ErrInvalidRange)

	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "layout", ie.Component)
}
