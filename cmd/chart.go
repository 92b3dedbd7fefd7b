package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	"github.com/KaramelBytes/moonbase-cli/internal/utils"
)

var (
	chX      string
	chY      string
	chMode   string
	chOutput string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Draw a bar or line chart of two columns to PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := chart.ParseMode(strings.ToLower(chMode))
		if err != nil {
			return err
		}
		s, ras, err := newRasterSession()
		if err != nil {
			return err
		}
		if _, err := s.LoadFile(args[0]); err != nil {
			return err
		}
		if err := s.SelectX(chX); err != nil {
			return fmt.Errorf("--x: %w", err)
		}
		if err := s.SelectY(chY); err != nil {
			return fmt.Errorf("--y: %w", err)
		}
		p := s.Render(mode)
		if !p.Drawn {
			return fmt.Errorf("nothing drawn: both --x and --y are required")
		}

		out := chOutput
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			dir := "."
			if cfg != nil && cfg.OutputDir != "" {
				dir = cfg.OutputDir
			}
			out = filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, mode))
		}
		var buf bytes.Buffer
		if err := ras.WritePNG(&buf); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%s) written to %s\n", p.Title, describePlot(p), out)
		return nil
	},
}

func describePlot(p chart.Plot) string {
	switch p.Mode {
	case chart.ModeLine:
		if p.NumericX {
			return fmt.Sprintf("%d points, numeric x", len(p.Points))
		}
		return fmt.Sprintf("%d points, by row", len(p.Points))
	default:
		return fmt.Sprintf("%d bars", len(p.Bars))
	}
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chX, "x", "x", "", "column for the horizontal axis")
	chartCmd.Flags().StringVarP(&chY, "y", "y", "", "numeric column for the vertical axis")
	chartCmd.Flags().StringVarP(&chMode, "mode", "m", "bar", "chart type: bar | line")
	chartCmd.Flags().StringVarP(&chOutput, "output", "o", "", "PNG path (default <output_dir>/<file>_<mode>.png)")
}
