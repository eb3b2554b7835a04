package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gridview-go/pkg/gridview"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
	"github.com/ukaji3/gridview-go/pkg/gridview/term"
)

const viewHelp = "F2 headings  F3 gridlines  F4 freeze  F5 areas  + insert  - delete  0 hide  h unhide  q quit"

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [input.xlsx]",
		Short: "Browse a grid in the terminal",
		Long: `view shows the grid in the terminal. Without a workbook every cell is
labelled with its address. Arrow keys, Home, PageUp/PageDown, Return and
Tab move the active cell, the mouse selects and drags, and the wheel
scrolls.

` + viewHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}
	cmd.Flags().StringVar(&selectRef, "select", "", "Range to select: defined name, A1 range, data or print")
	cmd.Flags().BoolVar(&freeze, "freeze", false, "Freeze panes at the active cell")
	return cmd
}

// viewer owns the terminal session: the screen, the engine drawing into
// a canvas and the status line fed by engine notifications.
type viewer struct {
	screen   tcell.Screen
	canvas   *surface.Canvas
	session  *session
	renderer *term.Renderer
	input    *term.Input
	status   string
}

func runView(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{screen: screen, canvas: surface.NewCanvas(), status: viewHelp}
	opts := options(cmd, gridview.TerminalOptions())
	opts.Scheduler = term.NewScheduler(screen, logger)
	opts.Events = gridview.Events{
		ActiveCell: func(a models.CellAddress) {
			v.status = fmt.Sprintf("active %s", a)
		},
		Selection: func(r models.CellRange) {
			v.status = fmt.Sprintf("selection %s", r)
		},
		ErrorReport: func(msg string) {
			v.status = "redrawn over: " + msg
			logger.Warn("error report", "text", msg)
		},
	}
	w, h := screen.Size()
	ss, err := openSession(v.canvas, opts, path, w, h-1)
	if err != nil {
		return err
	}
	if err := ss.applyFlags(); err != nil {
		return err
	}
	v.session = ss
	v.renderer = term.NewRenderer(screen, term.DefaultStyles())
	v.input = term.NewInput(ss.engine)
	return v.loop()
}

func (v *viewer) loop() error {
	e := v.session.engine
	for {
		v.renderer.Draw(v.canvas, e.State())
		v.renderer.Status(v.status)
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			w, h := ev.Size()
			e.Resize(w, h-1)
			v.screen.Sync()
		case *tcell.EventKey:
			if v.command(ev) {
				return nil
			}
		default:
			v.input.Handle(ev)
		}
	}
}

// command handles the viewer's own keys and passes the rest to the
// engine. It reports whether the viewer should quit.
func (v *viewer) command(ev *tcell.EventKey) bool {
	e := v.session.engine
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyF2:
		e.ToggleHeadings()
	case tcell.KeyF3:
		e.ToggleGridlines()
	case tcell.KeyF4:
		e.ToggleFreezePanes()
	case tcell.KeyF5:
		e.ToggleAreasDrawn()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '+':
			v.edit(e.InsertRows, e.InsertCols)
		case '-':
			v.edit(e.DeleteRows, e.DeleteCols)
		case '0':
			v.edit(func() { e.SetRowsHeight(0) }, func() { e.SetColsWidth(0) })
		case 'h':
			v.edit(func() { e.SetRowsHeight(-1) }, func() { e.SetColsWidth(-1) })
		}
	default:
		v.input.Handle(ev)
	}
	return false
}

// edit runs rows when whole rows are selected and cols when whole columns
// are.
func (v *viewer) edit(rows, cols func()) {
	e := v.session.engine
	sel, opts := e.Selection(), e.Options()
	switch {
	case sel.C1 == 1 && sel.C2 == opts.MaxCols:
		rows()
	case sel.R1 == 1 && sel.R2 == opts.MaxRows:
		cols()
	default:
		v.status = "select whole rows or columns first"
	}
}
