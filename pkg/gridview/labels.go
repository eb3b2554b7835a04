package gridview

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// DefaultContent labels a cell with its address, prefixed by the quadrant
// for frozen quadrants.
func DefaultContent(q models.Quadrant, col, row int) string {
	if q == models.QuadrantMain {
		return fmt.Sprintf("C%dR%d", col, row)
	}
	return fmt.Sprintf("Q%d_C%dR%d", int(q), col, row)
}

func (e *Engine) headingLabel(axis models.Axis, idx int) string {
	if e.opts.Labels == LabelsLetters {
		if axis == models.AxisRows {
			return strconv.Itoa(idx)
		}
		// excelize stops at column XFD
		if name, err := excelize.ColumnNumberToName(idx); err == nil {
			return name
		}
	}
	if axis == models.AxisCols {
		return fmt.Sprintf("C%d", idx)
	}
	return fmt.Sprintf("R%d", idx)
}
