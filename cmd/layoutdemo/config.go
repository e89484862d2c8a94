package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/fonts"
)

// Config describes one layout to build and print.
type Config struct {
	Text    string        `yaml:"text"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Format  FormatConfig  `yaml:"format"`
	Ranges  []RangeConfig `yaml:"ranges"`
	Logging LoggingConfig `yaml:"logging"`
}

// FormatConfig holds the format defaults.
type FormatConfig struct {
	Family      string             `yaml:"family"`
	Size        float64            `yaml:"size"`
	Weight      int                `yaml:"weight"`
	Style       string             `yaml:"style"`
	Locale      string             `yaml:"locale"`
	Align       string             `yaml:"align"`
	Paragraph   string             `yaml:"paragraph"`
	Wrapping    string             `yaml:"wrapping"`
	Reading     string             `yaml:"reading"`
	LineSpacing *LineSpacingConfig `yaml:"line_spacing"`
}

// LineSpacingConfig selects uniform line spacing.
type LineSpacingConfig struct {
	Height   float64 `yaml:"height"`
	Baseline float64 `yaml:"baseline"`
}

// RangeConfig sets attributes over a rune range. Unset fields are left
// alone.
type RangeConfig struct {
	Start         int            `yaml:"start"`
	Length        int            `yaml:"length"`
	Family        string         `yaml:"family"`
	Size          float64        `yaml:"size"`
	Weight        int            `yaml:"weight"`
	Style         string         `yaml:"style"`
	Locale        string         `yaml:"locale"`
	Strikethrough *bool          `yaml:"strikethrough"`
	Underline     *bool          `yaml:"underline"`
	Kerning       *bool          `yaml:"kerning"`
	Spacing       *SpacingConfig `yaml:"spacing"`
}

// SpacingConfig is per-cluster character spacing.
type SpacingConfig struct {
	Leading    float64 `yaml:"leading"`
	Trailing   float64 `yaml:"trailing"`
	MinAdvance float64 `yaml:"min_advance"`
}

// LoggingConfig configures the demo logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Defaults returns the demo defaults.
func Defaults() Config {
	return Config{
		Text:   "The quick brown fox jumps over the lazy dog.",
		Width:  300,
		Height: 200,
		Format: FormatConfig{
			Family: fonts.FamilyGo,
			Size:   16,
			Weight: int(fonts.WeightNormal),
		},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML document over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// NewFormat builds the text format.
func (c *Config) NewFormat() (*textlayout.TextFormat, error) {
	f := c.Format
	opts := []textlayout.FormatOption{textlayout.WithWeight(fonts.Weight(f.Weight))}
	if f.Locale != "" {
		opts = append(opts, textlayout.WithLocale(f.Locale))
	}
	if f.Style != "" {
		s, err := parseStyle(f.Style)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textlayout.WithStyle(s))
	}
	if f.Align != "" {
		a, err := parseAlignment(f.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textlayout.WithTextAlignment(a))
	}
	if f.Paragraph != "" {
		a, err := lookup("paragraph alignment", f.Paragraph, map[string]textlayout.ParagraphAlignment{
			"near":   textlayout.ParagraphNear,
			"far":    textlayout.ParagraphFar,
			"center": textlayout.ParagraphCenter,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, textlayout.WithParagraphAlignment(a))
	}
	if f.Wrapping != "" {
		w, err := lookup("word wrapping", f.Wrapping, map[string]textlayout.WordWrapping{
			"wrap":      textlayout.WrapWrap,
			"nowrap":    textlayout.WrapNoWrap,
			"emergency": textlayout.WrapEmergencyBreak,
			"wholeword": textlayout.WrapWholeWord,
			"character": textlayout.WrapCharacter,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, textlayout.WithWordWrapping(w))
	}
	if f.Reading != "" {
		d, err := lookup("reading direction", f.Reading, map[string]textlayout.ReadingDirection{
			"ltr": textlayout.ReadingLeftToRight,
			"rtl": textlayout.ReadingRightToLeft,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, textlayout.WithReadingDirection(d))
	}
	if ls := f.LineSpacing; ls != nil {
		opts = append(opts, textlayout.WithLineSpacing(textlayout.LineSpacing{
			Method:   textlayout.LineSpacingUniform,
			Height:   ls.Height,
			Baseline: ls.Baseline,
		}))
	}
	return textlayout.NewTextFormat(f.Family, f.Size, opts...)
}

// Apply sets the range attributes on l.
func (r *RangeConfig) Apply(l *textlayout.TextLayout) error {
	tr := textlayout.TextRange{Start: r.Start, Length: r.Length}
	var steps []func() error
	if r.Family != "" {
		steps = append(steps, func() error { return l.SetFontFamilyName(r.Family, tr) })
	}
	if r.Size != 0 {
		steps = append(steps, func() error { return l.SetFontSize(r.Size, tr) })
	}
	if r.Weight != 0 {
		steps = append(steps, func() error { return l.SetFontWeight(fonts.Weight(r.Weight), tr) })
	}
	if r.Style != "" {
		steps = append(steps, func() error {
			s, err := parseStyle(r.Style)
			if err != nil {
				return err
			}
			return l.SetFontStyle(s, tr)
		})
	}
	if r.Locale != "" {
		steps = append(steps, func() error { return l.SetLocaleName(r.Locale, tr) })
	}
	if r.Strikethrough != nil {
		steps = append(steps, func() error { return l.SetStrikethrough(*r.Strikethrough, tr) })
	}
	if r.Underline != nil {
		steps = append(steps, func() error { return l.SetUnderline(*r.Underline, tr) })
	}
	if r.Kerning != nil {
		steps = append(steps, func() error { return l.SetPairKerning(*r.Kerning, tr) })
	}
	if sp := r.Spacing; sp != nil {
		steps = append(steps, func() error {
			return l.SetCharacterSpacing(sp.Leading, sp.Trailing, sp.MinAdvance, tr)
		})
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("range [%d,%d): %w", r.Start, r.Start+r.Length, err)
		}
	}
	return nil
}

func parseStyle(s string) (fonts.Style, error) {
	return lookup("font style", s, map[string]fonts.Style{
		"normal":  fonts.StyleNormal,
		"oblique": fonts.StyleOblique,
		"italic":  fonts.StyleItalic,
	})
}

func parseAlignment(s string) (textlayout.TextAlignment, error) {
	return lookup("text alignment", s, map[string]textlayout.TextAlignment{
		"leading":   textlayout.AlignLeading,
		"left":      textlayout.AlignLeading,
		"trailing":  textlayout.AlignTrailing,
		"right":     textlayout.AlignTrailing,
		"center":    textlayout.AlignCenter,
		"justified": textlayout.AlignJustified,
	})
}

func lookup[V any](what, s string, values map[string]V) (V, error) {
	v, ok := values[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		var zero V
		return zero, fmt.Errorf("unknown %s %q", what, s)
	}
	return v, nil
}
