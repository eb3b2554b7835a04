// Package term paints a gridview surface onto a tcell screen and feeds
// terminal events back into the engine.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// Styles holds the colors of each drawable kind.
type Styles struct {
	Base        tcell.Style
	Grid        tcell.Style
	Heading     tcell.Style
	Highlighted tcell.Style
	Corner      tcell.Style
	Selection   tcell.Style
	ActiveCell  tcell.Style
	FreezeLine  tcell.Style
	DrawnArea   tcell.Style
	Status      tcell.Style
}

// DefaultStyles returns a palette close to a desktop spreadsheet: green
// headings turning blue when selected and a light blue selection.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return Styles{
		Base:        base,
		Grid:        base.Foreground(tcell.ColorGray),
		Heading:     base.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
		Highlighted: base.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
		Corner:      base.Background(tcell.ColorDarkGreen),
		Selection:   base.Background(tcell.ColorLightBlue).Foreground(tcell.ColorBlack),
		ActiveCell:  base.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack).Bold(true),
		FreezeLine:  base.Foreground(tcell.ColorRed),
		DrawnArea:   base.Foreground(tcell.ColorYellow),
		Status:      base.Reverse(true),
	}
}

// Renderer draws canvas items in character cells: one surface unit is
// one terminal column or row.
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen, styles Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Draw repaints the whole screen area above the status line from c.
// Backgrounds are painted first so text keeps the selection color.
func (r *Renderer) Draw(c *surface.Canvas, state models.PaneState) {
	w, h := r.screen.Size()
	view := models.Rect{X1: w, Y1: h}
	r.fill(view, ' ', r.styles.Base)

	for _, it := range onScreen(c, view, surface.KindSelection) {
		r.fill(it.Rect.Intersect(view), ' ', r.styles.Selection)
	}
	for _, it := range onScreen(c, view, surface.KindActiveCell) {
		r.fill(it.Rect.Intersect(view), ' ', r.styles.ActiveCell)
	}
	for _, it := range onScreen(c, view, surface.KindCell) {
		if it.Hidden {
			continue
		}
		box := it.Rect
		if state.Gridlines && box.Width() > 1 {
			r.vline(box.X1-1, box.Y0, box.Y1, '│', r.styles.Grid, view)
			box.X1--
		}
		r.text(box, it.Text, nil, view)
	}
	for _, it := range onScreen(c, view, surface.KindColHeading, surface.KindRowHeading) {
		if it.Hidden {
			continue
		}
		st := r.styles.Heading
		if it.Highlighted {
			st = r.styles.Highlighted
		}
		r.fill(it.Rect.Intersect(view), ' ', st)
		r.text(it.Rect, it.Text, &st, view)
	}
	for _, it := range onScreen(c, view, surface.KindCorner) {
		r.fill(it.Rect.Intersect(view), ' ', r.styles.Corner)
	}
	for _, it := range c.Items(surface.KindFreezeLine) {
		if it.Rect.Width() == 1 {
			r.vline(it.Rect.X0, it.Rect.Y0, it.Rect.Y1, '┃', r.styles.FreezeLine, view)
		} else {
			// a text row is one unit tall, so the divider underlines it
			r.underline(it.Rect.X0, it.Rect.X1, it.Rect.Y0, view)
		}
	}
	for _, it := range c.Items(surface.KindDrawnArea) {
		if it.Hidden {
			continue
		}
		r.outline(it.Rect, view)
	}
}

// onScreen returns the items of kinds that share a cell with view.
func onScreen(c *surface.Canvas, view models.Rect, kinds ...surface.Kind) []surface.Item {
	ids := c.Find(view, surface.Overlapping, kinds...)
	out := make([]surface.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := c.Item(id); ok {
			out = append(out, it)
		}
	}
	return out
}

// Status writes msg on the last screen row.
func (r *Renderer) Status(msg string) {
	w, h := r.screen.Size()
	if h == 0 {
		return
	}
	row := models.Rect{Y0: h - 1, X1: w, Y1: h}
	r.fill(row, ' ', r.styles.Status)
	x := 0
	for _, ch := range runewidth.Truncate(msg, w, "…") {
		r.screen.SetContent(x, h-1, ch, nil, r.styles.Status)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) fill(box models.Rect, ch rune, st tcell.Style) {
	for y := box.Y0; y < box.Y1; y++ {
		for x := box.X0; x < box.X1; x++ {
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

// text centers s on the first row of box. A nil style keeps the
// background already painted under each character.
func (r *Renderer) text(box models.Rect, s string, st *tcell.Style, view models.Rect) {
	if box.Width() <= 0 || box.Height() <= 0 {
		return
	}
	s = runewidth.Truncate(s, box.Width(), "")
	x := box.X0 + (box.Width()-runewidth.StringWidth(s))/2
	y := box.Y0 + (box.Height()-1)/2
	for _, ch := range s {
		if view.Contains(models.Point{X: x, Y: y}) {
			style := r.under(x, y)
			if st != nil {
				style = *st
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
}

// under returns the base style with the background painted at (x, y).
func (r *Renderer) under(x, y int) tcell.Style {
	_, _, st, _ := r.screen.GetContent(x, y)
	fg, bg, attrs := st.Decompose()
	if bg == tcell.ColorReset || bg == tcell.ColorDefault {
		return r.styles.Base
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs)
}

func (r *Renderer) vline(x, y0, y1 int, ch rune, st tcell.Style, view models.Rect) {
	for y := y0; y < y1; y++ {
		if view.Contains(models.Point{X: x, Y: y}) {
			_, _, under, _ := r.screen.GetContent(x, y)
			_, bg, _ := under.Decompose()
			r.screen.SetContent(x, y, ch, nil, st.Background(bg))
		}
	}
}

func (r *Renderer) hline(x0, x1, y int, ch rune, st tcell.Style, view models.Rect) {
	for x := x0; x < x1; x++ {
		if view.Contains(models.Point{X: x, Y: y}) {
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *Renderer) underline(x0, x1, y int, view models.Rect) {
	for x := x0; x < x1; x++ {
		if view.Contains(models.Point{X: x, Y: y}) {
			ch, comb, st, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, ch, comb, st.Underline(true))
		}
	}
}

func (r *Renderer) outline(box models.Rect, view models.Rect) {
	if box.Empty() {
		return
	}
	r.hline(box.X0, box.X1, box.Y0, '┄', r.styles.DrawnArea, view)
	r.hline(box.X0, box.X1, box.Y1-1, '┄', r.styles.DrawnArea, view)
	r.vline(box.X0, box.Y0, box.Y1, '┆', r.styles.DrawnArea, view)
	r.vline(box.X1-1, box.Y0, box.Y1, '┆', r.styles.DrawnArea, view)
}
