// Package main provides the CLI entry point for gridview.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridview-go/pkg/gridview"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

var (
	sheetName string
	labels    string
	colWidth  int
	rowHeight int
	logFile   string
	logLevel  string
	selectRef string
	freeze    bool
	pretty    bool
	width     int
	height    int

	logger  *slog.Logger
	logSink io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridview",
		Short: "Virtualized grid viewer",
		Long: `gridview shows a large grid by drawing only the visible cells and
redrawing incrementally as it scrolls. Cell text and geometry can be
imported from an xlsx workbook.`,
		SilenceUsage:       true,
		PersistentPreRunE:  setupLogging,
		PersistentPostRunE: closeLogging,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&sheetName, "sheet", "", "Sheet to show (default: first sheet)")
	pf.StringVar(&labels, "labels", string(gridview.LabelsNumeric), "Heading labels: numeric or letters")
	pf.IntVar(&colWidth, "col-width", 0, "Default column width (default: depends on the command)")
	pf.IntVar(&rowHeight, "row-height", 0, "Default row height (default: depends on the command)")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newViewCmd(), newLayoutCmd(), newSnapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging sends logs to --log-file, or to stderr for the commands that
// do not own the terminal.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	var w io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w, logSink = f, f
	case cmd.Name() == "view":
		w = io.Discard
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

func closeLogging(*cobra.Command, []string) error {
	if logSink != nil {
		return logSink.Close()
	}
	return nil
}

// options applies the shared flags to base.
func options(cmd *cobra.Command, base gridview.Options) gridview.Options {
	base.Labels = gridview.Labels(labels)
	if cmd.Flags().Changed("col-width") {
		base.ColWidth = colWidth
	}
	if cmd.Flags().Changed("row-height") {
		base.RowHeight = rowHeight
	}
	base.Logger = logger
	return base
}

// session is an engine with the workbook sheet it shows, if any.
type session struct {
	engine *gridview.Engine
	book   *gridview.Workbook
	sheet  string
}

// openSession creates an engine drawing into s, sized width x height. With
// a path the selected sheet's text and layout are loaded.
func openSession(s surface.Surface, opts gridview.Options, path string, width, height int) (*session, error) {
	var layout *models.SheetLayout
	ss := &session{}
	if path != "" {
		wb, err := gridview.OpenWorkbook(path, opts)
		if err != nil {
			return nil, fmt.Errorf("import failed: %w", err)
		}
		layout, err = wb.Sheet(sheetName)
		if err != nil {
			return nil, err
		}
		opts.Content = wb.Content(layout.Name)
		ss.book, ss.sheet = wb, layout.Name
	}
	e, err := gridview.New(s, opts)
	if err != nil {
		return nil, err
	}
	ss.engine = e
	e.Resize(width, height)
	if layout != nil {
		e.LoadLayout(*layout)
	}
	return ss, nil
}

// resolve turns a --select value into a range.
func (ss *session) resolve(ref string) (models.CellRange, error) {
	if ss.book != nil {
		return ss.book.Resolve(ss.sheet, ref)
	}
	return gridview.ParseRange(ref)
}

// applyFlags applies --select and --freeze.
func (ss *session) applyFlags() error {
	if selectRef != "" {
		r, err := ss.resolve(selectRef)
		if err != nil {
			return err
		}
		ss.engine.SelectRange(r)
	}
	if freeze && !ss.engine.State().Freeze {
		ss.engine.ToggleFreezePanes()
	}
	return nil
}
