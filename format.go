package textlayout

import (
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/textlayout/fonts"
)

// maxLocaleLen is the rune limit for locale names, including room for a
// terminator in the platform APIs that share the limit.
const maxLocaleLen = 85

// defaultLocale is used when no locale is given.
const defaultLocale = "en-us"

// FormatOption configures a TextFormat.
type FormatOption func(*formatConfig)

type formatConfig struct {
	collection  *fonts.Collection
	weight      fonts.Weight
	style       fonts.Style
	stretch     fonts.Stretch
	locale      string
	textAlign   TextAlignment
	paraAlign   ParagraphAlignment
	wrapping    WordWrapping
	reading     ReadingDirection
	flow        FlowDirection
	tabStop     float64
	lineSpacing LineSpacing
	trimming    Trimming
}

func defaultFormatConfig(size float64) formatConfig {
	return formatConfig{
		weight:   fonts.WeightNormal,
		style:    fonts.StyleNormal,
		stretch:  fonts.StretchNormal,
		locale:   defaultLocale,
		wrapping: WrapWrap,
		tabStop:  4 * size,
	}
}

// WithCollection sets the font collection. The default is fonts.Default().
func WithCollection(c *fonts.Collection) FormatOption {
	return func(cfg *formatConfig) {
		cfg.collection = c
	}
}

// WithWeight sets the font weight.
func WithWeight(w fonts.Weight) FormatOption {
	return func(cfg *formatConfig) {
		cfg.weight = w
	}
}

// WithStyle sets the font style.
func WithStyle(s fonts.Style) FormatOption {
	return func(cfg *formatConfig) {
		cfg.style = s
	}
}

// WithStretch sets the font stretch.
func WithStretch(s fonts.Stretch) FormatOption {
	return func(cfg *formatConfig) {
		cfg.stretch = s
	}
}

// WithLocale sets the locale name, e.g. "en-us" or "ar-eg".
func WithLocale(locale string) FormatOption {
	return func(cfg *formatConfig) {
		cfg.locale = locale
	}
}

// WithTextAlignment sets the horizontal alignment.
func WithTextAlignment(a TextAlignment) FormatOption {
	return func(cfg *formatConfig) {
		cfg.textAlign = a
	}
}

// WithParagraphAlignment sets the vertical alignment.
func WithParagraphAlignment(a ParagraphAlignment) FormatOption {
	return func(cfg *formatConfig) {
		cfg.paraAlign = a
	}
}

// WithWordWrapping sets the wrapping mode.
func WithWordWrapping(w WordWrapping) FormatOption {
	return func(cfg *formatConfig) {
		cfg.wrapping = w
	}
}

// WithReadingDirection sets the reading direction.
func WithReadingDirection(d ReadingDirection) FormatOption {
	return func(cfg *formatConfig) {
		cfg.reading = d
	}
}

// WithFlowDirection sets the flow direction.
func WithFlowDirection(d FlowDirection) FormatOption {
	return func(cfg *formatConfig) {
		cfg.flow = d
	}
}

// WithTabStop sets the incremental tab stop. The default is four times the
// font size.
func WithTabStop(v float64) FormatOption {
	return func(cfg *formatConfig) {
		cfg.tabStop = v
	}
}

// WithLineSpacing sets the line spacing.
func WithLineSpacing(s LineSpacing) FormatOption {
	return func(cfg *formatConfig) {
		cfg.lineSpacing = s
	}
}

// WithTrimming sets the trimming options.
func WithTrimming(t Trimming) FormatOption {
	return func(cfg *formatConfig) {
		cfg.trimming = t
	}
}

// TextFormat holds the defaults a layout starts from.
//
// TextFormat is immutable after creation and safe for concurrent use.
type TextFormat struct {
	family string
	size   float64
	cfg    formatConfig
}

// NewTextFormat returns a validated format for the given family and em
// size.
func NewTextFormat(family string, size float64, opts ...FormatOption) (*TextFormat, error) {
	cfg := defaultFormatConfig(size)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.collection == nil {
		cfg.collection = fonts.Default()
	}

	f := &TextFormat{family: family, size: size, cfg: cfg}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *TextFormat) validate() error {
	c := &f.cfg
	switch {
	case !(f.size > 0):
		return invalidArg("font size %v", f.size)
	case !c.weight.Valid():
		return invalidArg("font weight %d", c.weight)
	case !c.style.Valid():
		return invalidArg("font style %d", c.style)
	case !c.stretch.Valid():
		return invalidArg("font stretch %d", c.stretch)
	case utf8.RuneCountInString(c.locale) >= maxLocaleLen:
		return invalidArg("locale name of %d runes", utf8.RuneCountInString(c.locale))
	case !c.textAlign.valid():
		return invalidArg("text alignment %d", c.textAlign)
	case !c.paraAlign.valid():
		return invalidArg("paragraph alignment %d", c.paraAlign)
	case !c.wrapping.valid():
		return invalidArg("word wrapping %d", c.wrapping)
	case !c.reading.valid():
		return invalidArg("reading direction %d", c.reading)
	case !c.flow.valid():
		return invalidArg("flow direction %d", c.flow)
	case !(c.tabStop > 0):
		return invalidArg("tab stop %v", c.tabStop)
	}
	if c.reading.IsVertical() {
		return fmt.Errorf("%w: vertical reading direction %v", ErrNotImplemented, c.reading)
	}
	if conflicts(c.reading, c.flow) {
		return ErrFlowDirectionConflicts
	}
	if err := c.lineSpacing.validate(); err != nil {
		return err
	}
	return c.trimming.validate()
}

// FontFamilyName returns the family name.
func (f *TextFormat) FontFamilyName() string { return f.family }

// FontSize returns the em size.
func (f *TextFormat) FontSize() float64 { return f.size }

// FontCollection returns the font collection.
func (f *TextFormat) FontCollection() *fonts.Collection { return f.cfg.collection }

// FontWeight returns the font weight.
func (f *TextFormat) FontWeight() fonts.Weight { return f.cfg.weight }

// FontStyle returns the font style.
func (f *TextFormat) FontStyle() fonts.Style { return f.cfg.style }

// FontStretch returns the font stretch.
func (f *TextFormat) FontStretch() fonts.Stretch { return f.cfg.stretch }

// LocaleName returns the locale name.
func (f *TextFormat) LocaleName() string { return f.cfg.locale }

// TextAlignment returns the horizontal alignment.
func (f *TextFormat) TextAlignment() TextAlignment { return f.cfg.textAlign }

// ParagraphAlignment returns the vertical alignment.
func (f *TextFormat) ParagraphAlignment() ParagraphAlignment { return f.cfg.paraAlign }

// WordWrapping returns the wrapping mode.
func (f *TextFormat) WordWrapping() WordWrapping { return f.cfg.wrapping }

// ReadingDirection returns the reading direction.
func (f *TextFormat) ReadingDirection() ReadingDirection { return f.cfg.reading }

// FlowDirection returns the flow direction.
func (f *TextFormat) FlowDirection() FlowDirection { return f.cfg.flow }

// IncrementalTabStop returns the tab stop.
func (f *TextFormat) IncrementalTabStop() float64 { return f.cfg.tabStop }

// LineSpacing returns the line spacing.
func (f *TextFormat) LineSpacing() LineSpacing { return f.cfg.lineSpacing }

// Trimming returns the trimming options.
func (f *TextFormat) Trimming() Trimming { return f.cfg.trimming }
