package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/kbinani/screenshot"
	"github.com/kirides/duplication/outputduplication"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the displays that can be duplicated",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		setDPIAware(log)
		return listDisplays(os.Stdout, log)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listDisplays(w io.Writer, log *zap.Logger) error {
	monitors, err := outputduplication.Scan(outputduplication.WithLogger(log))
	if err != nil {
		return err
	}
	defer func() {
		for _, m := range monitors {
			m.Release()
		}
	}()

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tSIZE\tROTATION\tDESKTOP\tPRIMARY\tGDI BOUNDS")
	for i, m := range monitors {
		desc, err := m.OutputDesc()
		if err != nil {
			return fmt.Errorf("display %d: %w", i, err)
		}
		primary, err := m.IsPrimary()
		if err != nil {
			log.Warn("failed to query monitor info", zap.Int("display", i), zap.Error(err))
		}

		gdi := "-"
		if i < screenshot.NumActiveDisplays() {
			gdi = screenshot.GetDisplayBounds(i).String()
		}
		r := desc.DesktopCoordinates
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t(%d,%d)-(%d,%d)\t%t\t%s\n",
			i, desc.Name(), m.Width(), m.Height(), desc.Rotation,
			r.Left, r.Top, r.Right, r.Bottom, primary, gdi)
	}
	return tw.Flush()
}
