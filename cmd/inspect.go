package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/analysis"
	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	"github.com/KaramelBytes/moonbase-cli/internal/table"
	"github.com/KaramelBytes/moonbase-cli/internal/utils"
)

var (
	insJSON    bool
	insPreview int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <files...>",
	Short: "Profile CSV files and preview their first rows",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandInputs(args)
		if err != nil {
			return err
		}
		preview := insPreview
		if !cmd.Flags().Changed("preview") && cfg != nil && cfg.PreviewRows > 0 {
			preview = cfg.PreviewRows
		}
		l := cfg.Layout()
		s, err := newSession(chart.NewRecorder(l.Width, l.Height))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		var reports []*analysis.Report
		for _, f := range files {
			tbl, err := s.LoadFile(f)
			if err != nil {
				return err
			}
			opt := analysis.DefaultOptions()
			opt.SampleRows = preview
			rep := analysis.Profile(filepath.Base(f), tbl, opt)
			if insJSON {
				reports = append(reports, rep)
				continue
			}
			fmt.Fprint(out, rep.Markdown())
			if preview > 0 && tbl.Len() > 0 {
				fmt.Fprintln(out, "\n[PREVIEW]")
				writePreview(out, tbl, preview)
			}
			fmt.Fprintln(out)
		}
		if insJSON {
			b, err := utils.PrettyJSON(reports)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		}
		return nil
	},
}

// expandInputs resolves globs, keeps literal paths that exist and drops duplicates.
func expandInputs(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched")
	}
	sort.Strings(files)
	return files, nil
}

func writePreview(w io.Writer, t *table.Table, n int) {
	headers := t.Headers()
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	for i, row := range t.Rows() {
		if i >= n {
			break
		}
		cells := make([]string, len(headers))
		for j, f := range row.Fields() {
			if j < len(cells) {
				cells[j] = f
			}
		}
		tw.Append(cells)
	}
	tw.Render()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&insJSON, "json", false, "print the profile as JSON")
	inspectCmd.Flags().IntVar(&insPreview, "preview", 5, "number of rows to preview (0 disables)")
}
