package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
)

// Global configuration structure.
type Global struct {
	// Canvas
	CanvasWidth     int     `mapstructure:"canvas_width" yaml:"canvas_width"`
	CanvasHeight    int     `mapstructure:"canvas_height" yaml:"canvas_height"`
	Padding         float64 `mapstructure:"padding" yaml:"padding"`
	Gutter          float64 `mapstructure:"gutter" yaml:"gutter"`
	MinBarWidth     float64 `mapstructure:"min_bar_width" yaml:"min_bar_width"`
	LineWidth       float64 `mapstructure:"line_width" yaml:"line_width"`
	BackgroundColor string  `mapstructure:"background_color" yaml:"background_color"`
	AxisColor       string  `mapstructure:"axis_color" yaml:"axis_color"`
	BarColor        string  `mapstructure:"bar_color" yaml:"bar_color"`
	LineColor       string  `mapstructure:"line_color" yaml:"line_color"`
	LabelColor      string  `mapstructure:"label_color" yaml:"label_color"`

	// Input
	Delimiter   string `mapstructure:"delimiter" yaml:"delimiter"`
	PreviewRows int    `mapstructure:"preview_rows" yaml:"preview_rows"`

	// Logging
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" yaml:"log_json"`

	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// Layout converts the canvas settings into a chart layout.
func (c *Global) Layout() chart.Layout {
	l := chart.DefaultLayout()
	if c == nil {
		return l
	}
	if c.CanvasWidth > 0 {
		l.Width = c.CanvasWidth
	}
	if c.CanvasHeight > 0 {
		l.Height = c.CanvasHeight
	}
	if c.Padding > 0 {
		l.Padding = c.Padding
	}
	if c.Gutter >= 0 {
		l.Gutter = c.Gutter
	}
	if c.MinBarWidth > 0 {
		l.MinBarWidth = c.MinBarWidth
	}
	if c.LineWidth > 0 {
		l.LineWidth = c.LineWidth
	}
	setColor(&l.Background, c.BackgroundColor)
	setColor(&l.Axis, c.AxisColor)
	setColor(&l.Bar, c.BarColor)
	setColor(&l.Line, c.LineColor)
	setColor(&l.Label, c.LabelColor)
	return l
}

func setColor(dst *drawing.Color, hex string) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 || len(hex) == 6 {
		*dst = drawing.ColorFromHex(hex)
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".moonbase"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.moonbase/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MOONBASE")
	v.AutomaticEnv()

	l := chart.DefaultLayout()
	v.SetDefault("canvas_width", l.Width)
	v.SetDefault("canvas_height", l.Height)
	v.SetDefault("padding", l.Padding)
	v.SetDefault("gutter", l.Gutter)
	v.SetDefault("min_bar_width", l.MinBarWidth)
	v.SetDefault("line_width", l.LineWidth)
	v.SetDefault("background_color", "0b1020")
	v.SetDefault("axis_color", "c8cdd8")
	v.SetDefault("bar_color", "7aa2f7")
	v.SetDefault("line_color", "e0af68")
	v.SetDefault("label_color", "e6e9ef")
	v.SetDefault("delimiter", "")
	v.SetDefault("preview_rows", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("output_dir", ".")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
