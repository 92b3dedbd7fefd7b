package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	"github.com/KaramelBytes/moonbase-cli/internal/session"
	"github.com/KaramelBytes/moonbase-cli/internal/utils"
)

const replHelp = `Commands:
  load <file>     load a CSV file (replaces the current table)
  x <column>      choose the horizontal column
  y <column>      choose the vertical column
  bar | line      draw the chart
  save <path>     write the last chart to PNG
  cols            list columns
  help            show this help
  quit | exit     leave
Anything else is answered as a question about the data.`

var sessionCmd = &cobra.Command{
	Use:   "session [file]",
	Short: "Interactive session: load data, pick columns, draw and ask",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ras, err := newRasterSession()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			if err := replLoad(out, s, args[0]); err != nil {
				return err
			}
		}
		return runREPL(cmd.InOrStdin(), out, s, ras)
	},
}

func runREPL(in io.Reader, out io.Writer, s *session.Session, ras *chart.Raster) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(verb) {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, replHelp)
		case "load":
			if err := replLoad(out, s, rest); err != nil {
				fmt.Fprintln(out, "✗", err)
			}
		case "x", "y":
			sel := s.SelectX
			if strings.EqualFold(verb, "y") {
				sel = s.SelectY
			}
			if err := sel(rest); err != nil {
				fmt.Fprintln(out, "✗", err)
			} else {
				cur := s.Selection()
				fmt.Fprintf(out, "x=%q y=%q\n", cur.X, cur.Y)
			}
		case "cols", "columns":
			fmt.Fprintln(out, strings.Join(s.Table().Headers(), ", "))
		case "bar", "line":
			mode, _ := chart.ParseMode(strings.ToLower(verb))
			p := s.Render(mode)
			if !p.Drawn {
				fmt.Fprintln(out, "Choose both columns first (x <column>, y <column>).")
			} else {
				fmt.Fprintf(out, "Drew %s (%s)\n", p.Title, describePlot(p))
			}
		case "save":
			if rest == "" {
				fmt.Fprintln(out, "✗ usage: save <path>")
				break
			}
			var buf bytes.Buffer
			if err := ras.WritePNG(&buf); err != nil {
				fmt.Fprintln(out, "✗", err)
				break
			}
			if err := utils.SafeWriteFile(rest, buf.Bytes()); err != nil {
				fmt.Fprintln(out, "✗", err)
				break
			}
			fmt.Fprintf(out, "✓ saved %s\n", rest)
		default:
			fmt.Fprintln(out, s.Ask(line))
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func replLoad(out io.Writer, s *session.Session, path string) error {
	if path == "" {
		return fmt.Errorf("usage: load <file>")
	}
	t, err := s.LoadFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %s: %d rows, %d columns\n", path, t.Len(), len(t.Headers()))
	return nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
