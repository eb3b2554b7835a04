package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridview-go/pkg/gridview"
	"github.com/ukaji3/gridview-go/pkg/gridview/output"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [input.xlsx]",
		Short: "Print the imported workbook layout as JSON",
		Long: `layout imports column widths, row heights, hidden headings, frozen
panes, defined names and print areas and prints them as JSON. With
--sheet only that sheet is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runLayout,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runLayout(cmd *cobra.Command, args []string) error {
	wb, err := gridview.OpenWorkbook(args[0], options(cmd, gridview.DefaultOptions()))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	var data []byte
	if sheetName != "" {
		l, err := wb.Sheet(sheetName)
		if err != nil {
			return err
		}
		data, err = output.ToJSON(l, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	} else {
		data, err = output.LayoutToJSON(wb.Layout, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [input.xlsx]",
		Short: "Run the engine headless and print its state as JSON",
		Long: `snapshot draws the grid on an in-memory surface of the given size,
optionally selecting a range and freezing panes at it, and prints the
viewport, frozen panes, selection and drawn item counts as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSnapshot,
	}
	f := cmd.Flags()
	f.IntVar(&width, "width", 400, "Surface width")
	f.IntVar(&height, "height", 300, "Surface height")
	f.StringVar(&selectRef, "select", "", "Range to select: defined name, A1 range, data or print")
	f.BoolVar(&freeze, "freeze", false, "Freeze panes at the active cell")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	ss, err := openSession(nil, options(cmd, gridview.DefaultOptions()), path, width, height)
	if err != nil {
		return err
	}
	if err := ss.applyFlags(); err != nil {
		return err
	}
	snap := ss.engine.Snapshot()
	data, err := output.SnapshotToJSON(&snap, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
