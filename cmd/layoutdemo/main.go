// Command layoutdemo lays out a paragraph and prints its metrics and draw
// commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/recording"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "layoutdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("layoutdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML layout description")
		text       = fs.String("text", "", "text to lay out")
		width      = fs.Float64("width", 0, "layout box width")
		height     = fs.Float64("height", 0, "layout box height")
		align      = fs.String("align", "", "leading, trailing, center or justified")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
		logFormat  = fs.String("log-format", "", "text or json")
		logFile    = fs.String("log-file", "", "rotated JSON log file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = *text
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "align":
			cfg.Format.Align = *align
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		case "log-file":
			cfg.Logging.File = *logFile
		}
	})

	logger, closer := newLogger(cfg.Logging, stderr)
	defer closer.Close()
	textlayout.SetLogger(logger)
	defer textlayout.SetLogger(nil)

	layout, err := build(&cfg)
	if err != nil {
		return err
	}
	return report(stdout, layout)
}

func build(cfg *Config) (*textlayout.TextLayout, error) {
	format, err := cfg.NewFormat()
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	layout, err := textlayout.NewTextLayout(cfg.Text, format, cfg.Width, cfg.Height,
		textlayout.WithShapingCache(256))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	for i := range cfg.Ranges {
		if err := cfg.Ranges[i].Apply(layout); err != nil {
			return nil, err
		}
	}
	return layout, nil
}

func report(w io.Writer, layout *textlayout.TextLayout) error {
	m, err := layout.Metrics()
	if err != nil {
		return err
	}
	lines, err := layout.LineMetrics()
	if err != nil {
		return err
	}
	clusters, err := layout.ClusterMetrics()
	if err != nil {
		return err
	}
	minWidth, err := layout.DetermineMinWidth()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "box %gx%g: %d lines, left %.2f top %.2f width %.2f height %.2f\n",
		m.LayoutWidth, m.LayoutHeight, m.LineCount, m.Left, m.Top, m.Width, m.Height)
	fmt.Fprintf(w, "clusters %d, min width %.2f\n", len(clusters), minWidth)
	for i, line := range lines {
		fmt.Fprintf(w, "line %d: length %d trailing %d newline %d height %.2f baseline %.2f trimmed %t justified %t\n",
			i, line.Length, line.TrailingWhitespaceLength, line.NewlineLength,
			line.Height, line.Baseline, line.IsTrimmed, line.Justified)
	}

	rec := recording.NewRecorder()
	if err := layout.Draw(rec, 0, 0); err != nil {
		return err
	}
	r := rec.FinishRecording()
	for _, cmd := range r.Commands() {
		switch c := cmd.(type) {
		case recording.GlyphRunCommand:
			fmt.Fprintf(w, "%s at (%.2f, %.2f) %q: %d glyphs, width %.2f, level %d\n",
				c.Type(), c.X, c.Y, c.Text, len(c.Glyphs), c.Width(), c.BidiLevel)
		case recording.InlineObjectCommand:
			fmt.Fprintf(w, "%s at (%.2f, %.2f)\n", c.Type(), c.X, c.Y)
		case recording.StrikethroughCommand:
			fmt.Fprintf(w, "%s at (%.2f, %.2f): width %.2f thickness %.2f offset %.2f\n",
				c.Type(), c.X, c.Y, c.Strikethrough.Width, c.Strikethrough.Thickness, c.Strikethrough.Offset)
		}
	}
	return nil
}
