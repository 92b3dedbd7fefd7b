package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/moonbase-cli/internal/config"
	"github.com/KaramelBytes/moonbase-cli/internal/parser"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Moonbase configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "canvas_width: %d\n", cfg.CanvasWidth)
		fmt.Fprintf(out, "canvas_height: %d\n", cfg.CanvasHeight)
		fmt.Fprintf(out, "padding: %.1f\n", cfg.Padding)
		fmt.Fprintf(out, "gutter: %.1f\n", cfg.Gutter)
		fmt.Fprintf(out, "min_bar_width: %.1f\n", cfg.MinBarWidth)
		fmt.Fprintf(out, "line_width: %.1f\n", cfg.LineWidth)
		fmt.Fprintf(out, "background_color: %s\n", cfg.BackgroundColor)
		fmt.Fprintf(out, "axis_color: %s\n", cfg.AxisColor)
		fmt.Fprintf(out, "bar_color: %s\n", cfg.BarColor)
		fmt.Fprintf(out, "line_color: %s\n", cfg.LineColor)
		fmt.Fprintf(out, "label_color: %s\n", cfg.LabelColor)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %s\n", cfg.Delimiter)
		}
		fmt.Fprintf(out, "preview_rows: %d\n", cfg.PreviewRows)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_json: %t\n", cfg.LogJSON)
		if cfg.OutputDir != "" {
			fmt.Fprintf(out, "output_dir: %s\n", cfg.OutputDir)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := setConfigKey(cfg, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func setConfigKey(c *cfgpkg.Global, key, val string) error {
	positiveInt := func(dst *int) error {
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid positive int for %s: %v", key, val)
		}
		*dst = i
		return nil
	}
	positiveFloat := func(dst *float64) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid positive float for %s: %v", key, val)
		}
		*dst = f
		return nil
	}
	nonNegFloat := func(dst *float64) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid float for %s: %v", key, val)
		}
		*dst = f
		return nil
	}
	color := func(dst *string) error {
		h := strings.TrimPrefix(val, "#")
		if len(h) != 3 && len(h) != 6 {
			return fmt.Errorf("invalid color for %s: %v (use rgb or rrggbb hex)", key, val)
		}
		if _, err := strconv.ParseUint(h, 16, 32); err != nil {
			return fmt.Errorf("invalid color for %s: %v (use rgb or rrggbb hex)", key, val)
		}
		*dst = h
		return nil
	}

	switch key {
	case "canvas_width":
		return positiveInt(&c.CanvasWidth)
	case "canvas_height":
		return positiveInt(&c.CanvasHeight)
	case "padding":
		return positiveFloat(&c.Padding)
	case "gutter":
		return nonNegFloat(&c.Gutter)
	case "min_bar_width":
		return positiveFloat(&c.MinBarWidth)
	case "line_width":
		return positiveFloat(&c.LineWidth)
	case "background_color":
		return color(&c.BackgroundColor)
	case "axis_color":
		return color(&c.AxisColor)
	case "bar_color":
		return color(&c.BarColor)
	case "line_color":
		return color(&c.LineColor)
	case "label_color":
		return color(&c.LabelColor)
	case "delimiter":
		if _, err := parser.DelimiterFor(val); err != nil {
			return err
		}
		c.Delimiter = val
	case "preview_rows":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for preview_rows: %v", val)
		}
		c.PreviewRows = i
	case "log_level":
		switch strings.ToLower(val) {
		case "trace", "debug", "info", "warn", "error", "disabled":
			c.LogLevel = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_level: %s", val)
		}
	case "log_json":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for log_json: %v", val)
		}
		c.LogJSON = b
	case "output_dir":
		c.OutputDir = val
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
