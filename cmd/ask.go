package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
)

var askCmd = &cobra.Command{
	Use:   "ask <file> <question...>",
	Short: "Ask a simple question about a CSV (rows, columns, unique, mean)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := cfg.Layout()
		s, err := newSession(chart.NewRecorder(l.Width, l.Height))
		if err != nil {
			return err
		}
		if _, err := s.LoadFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Ask(strings.Join(args[1:], " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
