package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	cfgpkg "github.com/KaramelBytes/moonbase-cli/internal/config"
	"github.com/KaramelBytes/moonbase-cli/internal/logging"
	"github.com/KaramelBytes/moonbase-cli/internal/parser"
	"github.com/KaramelBytes/moonbase-cli/internal/session"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagDelimiter string

	// Loaded configuration
	cfg *cfgpkg.Global
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "moonbase",
	Short:         "Moonbase: chart and question CSV datasets from the terminal",
	Long:          `Moonbase loads a CSV file, draws bar or line charts of two of its columns to PNG, and answers simple questions about the data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.moonbase/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' | 'pipe' (overrides config and extension)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	l, err := logging.New(logging.Options{Level: level, JSON: cfg.LogJSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
		return
	}
	log = l
}

// parserOptions resolves the delimiter from the flag, then config. A zero
// delimiter lets the file extension decide.
func parserOptions() (parser.Options, error) {
	name := flagDelimiter
	if name == "" && cfg != nil {
		name = cfg.Delimiter
	}
	if name == "" {
		return parser.Options{}, nil
	}
	d, err := parser.DelimiterFor(name)
	if err != nil {
		return parser.Options{}, fmt.Errorf("--delimiter: %w", err)
	}
	return parser.Options{Delimiter: d}, nil
}

// newSession builds a session over surface using the effective config.
func newSession(surface chart.Surface) (*session.Session, error) {
	opt, err := parserOptions()
	if err != nil {
		return nil, err
	}
	return session.New(surface, cfg.Layout(), session.WithLogger(log), session.WithParserOptions(opt)), nil
}

// newRasterSession is newSession over a PNG-capable canvas.
func newRasterSession() (*session.Session, *chart.Raster, error) {
	l := cfg.Layout()
	ras, err := chart.NewRaster(l.Width, l.Height)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSession(ras)
	if err != nil {
		return nil, nil, err
	}
	return s, ras, nil
}
