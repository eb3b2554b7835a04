package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridview-go/pkg/gridview/dims"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

func newMapper() *Mapper {
	return NewMapper(dims.New(60, 100), dims.New(20, 1000))
}

func TestRoundTripMapping(t *testing.T) {
	m := newMapper()
	m.Store(models.AxisCols).SetSize(3, 3, 100)
	m.Store(models.AxisCols).SetSize(5, 5, 0)
	m.Store(models.AxisRows).SetSize(7, 7, 45)
	m.Store(models.AxisRows).SetSize(10, 12, 0)
	m.Store(models.AxisRows).SetSize(30, 40, 3)

	viewports := []struct {
		origin models.CellAddress
		px     models.Point
	}{
		{models.CellAddress{Col: 1, Row: 1}, models.Point{X: 40, Y: 20}},
		{models.CellAddress{Col: 4, Row: 8}, models.Point{X: 40, Y: 20}},
		{models.CellAddress{Col: 60, Row: 500}, models.Point{X: 0, Y: 0}},
	}
	for _, vp := range viewports {
		for col := 1; col <= 100; col += 3 {
			for row := 1; row <= 1000; row += 37 {
				a := models.CellAddress{Col: col, Row: row}
				if m.Store(models.AxisCols).Hidden(col) || m.Store(models.AxisRows).Hidden(row) {
					continue
				}
				r := m.CellRect(a, vp.origin, vp.px)
				require.Equal(t, a, m.CellAt(r.Min(), vp.origin, vp.px), "cell %v from origin %v", a, vp.origin)
			}
		}
	}
}

func TestHeadingAtClamps(t *testing.T) {
	m := newMapper()
	assert.Equal(t, 1, m.HeadingAt(models.AxisCols, -500, 1, 40))
	assert.Equal(t, 100, m.HeadingAt(models.AxisCols, 1_000_000, 1, 40))
	assert.Equal(t, 1000, m.HeadingAt(models.AxisRows, 1_000_000, 990, 20))
}

func TestHeadingAtWideHeadings(t *testing.T) {
	m := newMapper()
	rows := m.Store(models.AxisRows)
	rows.SetSize(1, 50, 100)

	for _, row := range []int{1, 2, 17, 49, 50, 51, 60} {
		p0, _ := m.HeadingSpan(models.AxisRows, row, 1, 0)
		assert.Equal(t, row, m.HeadingAt(models.AxisRows, p0, 1, 0))
		assert.Equal(t, row, m.HeadingAt(models.AxisRows, p0+rows.Size(row)-1, 1, 0))
	}
}

func TestHeadingSpanBackward(t *testing.T) {
	m := newMapper()
	p0, p1 := m.HeadingSpan(models.AxisCols, 2, 5, 40)
	assert.Equal(t, 40-3*60, p0)
	assert.Equal(t, p0+60, p1)
}

func frozenPanes() *Panes {
	p := NewPanes(newMapper(), models.Point{X: 40, Y: 20})
	p.Frozen.End = models.CellAddress{Col: 3, Row: 4}
	p.Main.Origin = models.CellAddress{Col: 3, Row: 4}
	p.SyncDivider()
	p.Fit(models.Point{X: 400, Y: 300})
	return p
}

func TestSyncDividerAndFit(t *testing.T) {
	p := frozenPanes()
	assert.Equal(t, models.Point{X: 160, Y: 80}, p.Main.Pixel)
	assert.Equal(t, models.CellAddress{Col: 6, Row: 14}, p.Main.Last)
	assert.Equal(t, models.Point{X: 400, Y: 300}, p.Extent())
	assert.Equal(t, 3, p.MinOrigin(models.AxisCols))
	assert.Equal(t, 4, p.MinOrigin(models.AxisRows))
}

func TestPointQuadrant(t *testing.T) {
	p := frozenPanes()
	tests := []struct {
		pt   models.Point
		want models.Quadrant
	}{
		{models.Point{X: 100, Y: 50}, models.QuadrantCorner},
		{models.Point{X: 200, Y: 50}, models.QuadrantFrozenRows},
		{models.Point{X: 100, Y: 100}, models.QuadrantFrozenCols},
		{models.Point{X: 160, Y: 80}, models.QuadrantMain},
		{models.Point{X: 159, Y: 80}, models.QuadrantFrozenCols},
		{models.Point{X: 160, Y: 79}, models.QuadrantFrozenRows},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.PointQuadrant(tt.pt), "point %v", tt.pt)
	}
}

func TestCellQuadrant(t *testing.T) {
	p := frozenPanes()
	assert.Equal(t, models.QuadrantCorner, p.CellQuadrant(models.CellAddress{Col: 2, Row: 3}))
	assert.Equal(t, models.QuadrantFrozenRows, p.CellQuadrant(models.CellAddress{Col: 3, Row: 3}))
	assert.Equal(t, models.QuadrantFrozenCols, p.CellQuadrant(models.CellAddress{Col: 2, Row: 4}))
	assert.Equal(t, models.QuadrantMain, p.CellQuadrant(models.CellAddress{Col: 3, Row: 4}))
}

func TestUnfrozenCollapsesToMain(t *testing.T) {
	p := NewPanes(newMapper(), models.Point{X: 40, Y: 20})
	p.Fit(models.Point{X: 400, Y: 300})
	assert.Equal(t, []models.Quadrant{models.QuadrantMain}, p.Quadrants())
	assert.Equal(t, models.QuadrantMain, p.PointQuadrant(models.Point{X: 0, Y: 0}))
	assert.Equal(t, p.Frozen.Pixel, p.Main.Pixel)
}

func TestRegions(t *testing.T) {
	p := frozenPanes()
	assert.Equal(t, []models.Quadrant{
		models.QuadrantMain, models.QuadrantFrozenRows, models.QuadrantCorner, models.QuadrantFrozenCols,
	}, p.Quadrants())

	q2 := p.Region(models.QuadrantFrozenRows)
	assert.Equal(t, models.CellAddress{Col: 3, Row: 1}, q2.Origin)
	assert.Equal(t, models.Point{X: 160, Y: 20}, q2.Pixel)
	assert.Equal(t, models.CellRange{C1: 3, R1: 1, C2: 6, R2: 3}, q2.Cells)
	assert.Equal(t, models.Rect{X0: 160, Y0: 20, X1: 400, Y1: 80}, q2.Rect)

	q3 := p.Region(models.QuadrantCorner)
	assert.Equal(t, models.Rect{X0: 40, Y0: 20, X1: 160, Y1: 80}, q3.Rect)

	q4 := p.Region(models.QuadrantFrozenCols)
	assert.Equal(t, models.CellRange{C1: 1, R1: 4, C2: 2, R2: 14}, q4.Cells)
	assert.Equal(t, models.Rect{X0: 40, Y0: 80, X1: 160, Y1: 300}, q4.Rect)

	assert.Equal(t, models.Rect{X0: 40, Y0: 20, X1: 100, Y1: 40}, p.CellRect(models.CellAddress{Col: 1, Row: 1}))
	assert.Equal(t, models.CellAddress{Col: 1, Row: 1}, p.CellAt(models.Point{X: 41, Y: 21}))
	assert.Equal(t, models.CellAddress{Col: 3, Row: 4}, p.CellAt(models.Point{X: 160, Y: 80}))
}
