package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// Sentinel errors for the fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrEmptyFamily is returned when a font is added without a family name.
	ErrEmptyFamily = errors.New("fonts: empty family name")
)

// Collection is a set of font families looked up by case-insensitive name.
//
// Collection is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	families map[string]*Family
	order    []string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{families: make(map[string]*Family)}
}

// Add parses TrueType or OpenType data and registers it under family with
// the given properties.
func (c *Collection) Add(family string, weight Weight, stretch Stretch, style Style, data []byte) (*Font, error) {
	if family == "" {
		return nil, ErrEmptyFamily
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !weight.Valid() || !stretch.Valid() || !style.Valid() {
		return nil, fmt.Errorf("fonts: invalid properties %v/%v/%v for %q", weight, stretch, style, family)
	}

	// ParseTTF returns a *Face that embeds the read-only, shareable *Font.
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %q: %w", family, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(family)
	fam, ok := c.families[key]
	if !ok {
		fam = &Family{name: family}
		c.families[key] = fam
		c.order = append(c.order, family)
	}
	f := &Font{
		family:  fam,
		weight:  weight,
		stretch: stretch,
		style:   style,
		font:    parsed.Font,
	}
	fam.add(f, parsed)
	return f, nil
}

// FindFamily returns the family registered under name.
func (c *Collection) FindFamily(name string) (*Family, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fam, ok := c.families[strings.ToLower(name)]
	return fam, ok
}

// Families returns the family names in registration order.
func (c *Collection) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.order...)
}

// Family is one typeface and its fonts. Matching runs on a go-text font
// map holding only the fonts of the family.
type Family struct {
	name string

	mu     sync.Mutex
	fonts  []*Font
	fm     *fontscan.FontMap
	byFont map[*font.Font]*Font
}

// Name returns the family name as registered.
func (f *Family) Name() string { return f.name }

// Fonts returns the fonts of the family.
func (f *Family) Fonts() []*Font {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*Font(nil), f.fonts...)
}

func (f *Family) add(ft *Font, face *font.Face) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fm == nil {
		f.fm = fontscan.NewFontMap(debugLogger{})
		f.byFont = make(map[*font.Font]*Font)
	}
	loc := fontscan.Location{File: fmt.Sprintf("%s#%d", f.name, len(f.fonts))}
	f.fm.AddFace(face, loc, font.Description{Family: f.name, Aspect: ft.aspect()})
	f.byFont[face.Font] = ft
	f.fonts = append(f.fonts, ft)
}

// FirstMatchingFont returns the font closest to the request, following the
// CSS font matching order: stretch, then style, then weight. Italic and
// oblique substitute for each other before falling back to normal.
func (f *Family) FirstMatchingFont(weight Weight, stretch Stretch, style Style) (*Font, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.fonts) == 0 {
		return nil, false
	}
	f.fm.SetQuery(fontscan.Query{
		Families: []string{f.name},
		Aspect:   toAspect(weight, stretch, style),
	})
	best := f.fonts[0]
	if face := f.fm.ResolveFace(' '); face != nil {
		if ft, ok := f.byFont[face.Font]; ok {
			best = ft
		}
	}

	// go-text folds oblique into italic; prefer the exact slant among
	// otherwise equal fonts.
	if style != StyleNormal && best.style != style {
		for _, ft := range f.fonts {
			if ft.style == style && ft.weight == best.weight && ft.stretch == best.stretch {
				return ft, true
			}
		}
	}
	return best, true
}

// debugLogger routes font map diagnostics to the default slog logger.
type debugLogger struct{}

func (debugLogger) Printf(format string, args ...any) {
	slog.Debug("fonts: " + fmt.Sprintf(format, args...))
}

// Font is one face of a family with its properties.
type Font struct {
	family  *Family
	weight  Weight
	stretch Stretch
	style   Style
	font    *font.Font

	once    sync.Once
	metrics Metrics
}

// FamilyName returns the name of the owning family.
func (f *Font) FamilyName() string { return f.family.name }

// Weight returns the font weight.
func (f *Font) Weight() Weight { return f.weight }

// Stretch returns the font stretch.
func (f *Font) Stretch() Stretch { return f.stretch }

// Style returns the font style.
func (f *Font) Style() Style { return f.style }

func (f *Font) aspect() font.Aspect { return toAspect(f.weight, f.stretch, f.style) }

// CreateFace returns a face for the font. Faces of one font share its
// metrics and parsed tables.
func (f *Font) CreateFace() *Face {
	f.once.Do(func() {
		f.metrics = readMetrics(font.NewFace(f.font))
	})
	return &Face{font: f}
}
