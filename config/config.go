// Package config loads chart options from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"animcharts/color"
	"animcharts/ease"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Line       LineChart `yaml:"line"`
	Pie        PieChart  `yaml:"pie"`
	PixelRatio float64   `yaml:"pixel_ratio"`
	// Trace is the Chrome trace file written by the viewer; empty disables it.
	Trace string `yaml:"trace"`
	// SystemFonts allows looking up label fonts installed on the machine.
	SystemFonts bool `yaml:"system_fonts"`
}

type LineChart struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Padding    float64       `yaml:"padding"`
	TopPadding float64       `yaml:"top_padding"`
	Duration   time.Duration `yaml:"duration"`
	Easing     string        `yaml:"easing"`
	Alpha      float64       `yaml:"alpha"`
	LineColor  string        `yaml:"line_color"`
	LineWidth  float64       `yaml:"line_width"`
	GridColor  string        `yaml:"grid_color"`
	GridWidth  float64       `yaml:"grid_width"`
}

type PieChart struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Duration     time.Duration `yaml:"duration"`
	Easing       string        `yaml:"easing"`
	Thickness    float64       `yaml:"thickness"`
	CornerRadius float64       `yaml:"corner_radius"`
	PadAngle     float64       `yaml:"pad_angle"`
	LabelColor   string        `yaml:"label_color"`
	LabelFont    string        `yaml:"label_font"`
	LabelSize    float64       `yaml:"label_size"`
	LabelWeight  string        `yaml:"label_weight"`
}

func Default() *Config {
	return &Config{
		Line: LineChart{
			Width:      500,
			Height:     200,
			Padding:    8,
			TopPadding: 8,
			Duration:   1500 * time.Millisecond,
			Easing:     "bounce",
			Alpha:      0.5,
			LineColor:  "#3366ff",
			LineWidth:  3,
			GridColor:  "#ddd",
			GridWidth:  1,
		},
		Pie: PieChart{
			Width:        500,
			Height:       300,
			Duration:     1500 * time.Millisecond,
			Easing:       "bounce-out",
			Thickness:    50,
			CornerRadius: 16,
			PadAngle:     0.02,
			LabelColor:   "#434343",
			LabelFont:    "Open Sans",
			LabelSize:    48,
			LabelWeight:  "bold",
		},
		PixelRatio:  1,
		SystemFonts: true,
	}
}

// Load reads a YAML file on fs over the defaults. A missing file is not an
// error; the defaults are returned.
func Load(fs afero.Fs, filename string) (*Config, error) {
	cfg := Default()
	data, err := afero.ReadFile(fs, filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to fs.
func Save(fs afero.Fs, filename string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filename, data, 0o644)
}

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.PixelRatio > 0, "pixel_ratio must be positive, is %g", c.PixelRatio)

	check(c.Line.Width > 2*c.Line.Padding, "line width %g leaves no room for padding %g", c.Line.Width, c.Line.Padding)
	check(c.Line.Height > 2*c.Line.Padding, "line height %g leaves no room for padding %g", c.Line.Height, c.Line.Padding)
	check(c.Line.Duration >= 0, "line duration must not be negative")
	check(c.Line.Alpha >= 0 && c.Line.Alpha <= 1, "line alpha must be within [0,1], is %g", c.Line.Alpha)
	check(c.Line.LineWidth > 0, "line_width must be positive")
	_, err := ease.ByName(c.Line.Easing)
	check(err == nil, "line easing %q", c.Line.Easing)
	check(color.Valid(c.Line.LineColor), "line_color %q", c.Line.LineColor)
	check(color.Valid(c.Line.GridColor), "grid_color %q", c.Line.GridColor)

	check(c.Pie.Width > 0 && c.Pie.Height > 0, "pie size must be positive")
	check(c.Pie.Duration >= 0, "pie duration must not be negative")
	check(c.Pie.Thickness >= 0, "pie thickness must not be negative")
	check(c.Pie.LabelSize > 0, "label_size must be positive")
	_, err = ease.ByName(c.Pie.Easing)
	check(err == nil, "pie easing %q", c.Pie.Easing)
	check(color.Valid(c.Pie.LabelColor), "label_color %q", c.Pie.LabelColor)

	return errors.Join(errs...)
}

// LineEasing resolves the configured line easing, defaulting to Bounce.
func (c *Config) LineEasing() ease.Func {
	if fn, err := ease.ByName(c.Line.Easing); err == nil {
		return fn
	}
	return ease.Bounce
}

// PieEasing resolves the configured pie easing, defaulting to BounceOut.
func (c *Config) PieEasing() ease.Func {
	if fn, err := ease.ByName(c.Pie.Easing); err == nil {
		return fn
	}
	return ease.BounceOut
}
