// Package gridview implements a virtualized grid viewport: it keeps only
// the visible part of a large grid as drawable items on a Surface and
// redraws incrementally as the grid is scrolled, resized or edited.
package gridview

import (
	"io"
	"log/slog"
	"time"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// Labels selects how headings are labelled.
type Labels string

const (
	// LabelsNumeric labels columns "C7" and rows "R7".
	LabelsNumeric Labels = "numeric"
	// LabelsLetters labels columns "G" and rows "7".
	LabelsLetters Labels = "letters"
)

// ContentFunc returns the text drawn in cell (col, row) of quadrant q.
type ContentFunc func(q models.Quadrant, col, row int) string

// Events receives change notifications. Nil fields are skipped.
type Events struct {
	// ActiveCell is called after the active cell moves.
	ActiveCell func(models.CellAddress)
	// Selection is called after the selected range changes.
	Selection func(models.CellRange)
	// ErrorReport is called after a redraw pass replaced drawn text.
	ErrorReport func(string)
}

// Scheduler runs fn once after d on the thread that drives the engine.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Options configures an Engine. The zero value is not usable; start from
// DefaultOptions or TerminalOptions.
type Options struct {
	// MaxCols is the number of addressable columns.
	MaxCols int
	// MaxRows is the number of addressable rows.
	MaxRows int
	// ColWidth is the default column width.
	ColWidth int
	// RowHeight is the default row height.
	RowHeight int
	// RowHeadingWidth is the width of the row heading strip.
	RowHeadingWidth int
	// ColHeadingHeight is the height of the column heading strip.
	ColHeadingHeight int
	// GlyphWidth is the width of one text column, used to detect overflow.
	GlyphWidth int
	// Labels selects the heading label style.
	Labels Labels
	// AutoScrollDelay is the interval between drag auto-scroll steps.
	AutoScrollDelay time.Duration

	// Content provides cell text. Defaults to DefaultContent.
	Content ContentFunc
	// Events receives notifications.
	Events Events
	// Scheduler drives drag auto-scroll. Auto-scroll is off when nil.
	Scheduler Scheduler
	// Logger receives debug logs. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns the pixel geometry of a desktop grid.
func DefaultOptions() Options {
	return Options{
		MaxCols:          100,
		MaxRows:          1000,
		ColWidth:         60,
		RowHeight:        20,
		RowHeadingWidth:  40,
		ColHeadingHeight: 20,
		GlyphWidth:       7,
		Labels:           LabelsNumeric,
		AutoScrollDelay:  time.Second,
	}
}

// TerminalOptions returns a geometry measured in terminal character cells.
func TerminalOptions() Options {
	o := DefaultOptions()
	o.ColWidth = 10
	o.RowHeight = 1
	o.RowHeadingWidth = 6
	o.ColHeadingHeight = 1
	o.GlyphWidth = 1
	o.AutoScrollDelay = 100 * time.Millisecond
	return o
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	positive := []struct {
		field string
		v     int
	}{
		{"MaxCols", o.MaxCols},
		{"MaxRows", o.MaxRows},
		{"ColWidth", o.ColWidth},
		{"RowHeight", o.RowHeight},
		{"RowHeadingWidth", o.RowHeadingWidth},
		{"ColHeadingHeight", o.ColHeadingHeight},
		{"GlyphWidth", o.GlyphWidth},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return NewConfigError(p.field, "must be positive, got %d", p.v)
		}
	}
	switch o.Labels {
	case "", LabelsNumeric, LabelsLetters:
	default:
		return NewConfigError("Labels", "unknown style %q", o.Labels)
	}
	if o.AutoScrollDelay < 0 {
		return NewConfigError("AutoScrollDelay", "must not be negative")
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Content == nil {
		o.Content = DefaultContent
	}
	if o.Labels == "" {
		o.Labels = LabelsNumeric
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
