package textlayout

import (
	"unicode/utf8"

	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/internal/ranges"
)

// checkRange validates a caller range. Ranges past the end of the text are
// clipped when stored.
func (l *TextLayout) checkRange(r TextRange) error {
	if r.Start < 0 || r.Length < 0 || r.End() < r.Start {
		return &RangeError{Range: r, Len: len(l.text)}
	}
	return nil
}

func (l *TextLayout) updateRegular(r TextRange, fn func(regularAttrs) regularAttrs) error {
	if err := l.checkRange(r); err != nil {
		return err
	}
	if l.regular.Update(r.Start, r.Length, fn) {
		l.invalidate(recomputeEverything)
	}
	return nil
}

func setRange[V any](l *TextLayout, set *ranges.Set[V], r TextRange, v V) error {
	if err := l.checkRange(r); err != nil {
		return err
	}
	if set.Set(r.Start, r.Length, v) {
		l.invalidate(recomputeEverything)
	}
	return nil
}

// valueAt returns the span value at pos or def with an empty range at pos.
func valueAt[V any](set *ranges.Set[V], pos int, def V) (V, TextRange) {
	sp, ok := set.At(pos)
	if !ok {
		return def, TextRange{Start: pos}
	}
	return sp.Value, TextRange{Start: sp.Start, Length: sp.Length}
}

func (l *TextLayout) regularAt(pos int) (regularAttrs, TextRange) {
	return valueAt(l.regular, pos, l.format.defaultAttrs())
}

// SetFontWeight sets the weight over r.
func (l *TextLayout) SetFontWeight(w fonts.Weight, r TextRange) error {
	if !w.Valid() {
		return invalidArg("font weight %d", w)
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.weight = w
		return a
	})
}

// FontWeight returns the weight at pos and the range sharing it.
func (l *TextLayout) FontWeight(pos int) (fonts.Weight, TextRange) {
	a, r := l.regularAt(pos)
	return a.weight, r
}

// SetFontStyle sets the style over r.
func (l *TextLayout) SetFontStyle(s fonts.Style, r TextRange) error {
	if !s.Valid() {
		return invalidArg("font style %d", s)
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.style = s
		return a
	})
}

// FontStyle returns the style at pos and the range sharing it.
func (l *TextLayout) FontStyle(pos int) (fonts.Style, TextRange) {
	a, r := l.regularAt(pos)
	return a.style, r
}

// SetFontStretch sets the stretch over r.
func (l *TextLayout) SetFontStretch(s fonts.Stretch, r TextRange) error {
	if !s.Valid() {
		return invalidArg("font stretch %d", s)
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.stretch = s
		return a
	})
}

// FontStretch returns the stretch at pos and the range sharing it.
func (l *TextLayout) FontStretch(pos int) (fonts.Stretch, TextRange) {
	a, r := l.regularAt(pos)
	return a.stretch, r
}

// SetFontSize sets the em size over r.
func (l *TextLayout) SetFontSize(size float64, r TextRange) error {
	if !(size > 0) {
		return invalidArg("font size %v", size)
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.size = size
		return a
	})
}

// FontSize returns the em size at pos and the range sharing it.
func (l *TextLayout) FontSize(pos int) (float64, TextRange) {
	a, r := l.regularAt(pos)
	return a.size, r
}

// SetFontFamilyName sets the family over r.
func (l *TextLayout) SetFontFamilyName(name string, r TextRange) error {
	if name == "" {
		return invalidArg("empty font family name")
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.family = name
		return a
	})
}

// FontFamilyName returns the family at pos and the range sharing it.
func (l *TextLayout) FontFamilyName(pos int) (string, TextRange) {
	a, r := l.regularAt(pos)
	return a.family, r
}

// SetFontCollection sets the collection over r. Nil selects
// fonts.Default().
func (l *TextLayout) SetFontCollection(c *fonts.Collection, r TextRange) error {
	if c == nil {
		c = fonts.Default()
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.collection = c
		return a
	})
}

// FontCollection returns the collection at pos and the range sharing it.
func (l *TextLayout) FontCollection(pos int) (*fonts.Collection, TextRange) {
	a, r := l.regularAt(pos)
	return a.collection, r
}

// SetLocaleName sets the locale over r.
func (l *TextLayout) SetLocaleName(locale string, r TextRange) error {
	if n := utf8.RuneCountInString(locale); n >= maxLocaleLen {
		return invalidArg("locale name of %d runes", n)
	}
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.locale = locale
		return a
	})
}

// LocaleName returns the locale at pos and the range sharing it.
func (l *TextLayout) LocaleName(pos int) (string, TextRange) {
	a, r := l.regularAt(pos)
	return a.locale, r
}

// SetUnderline sets the underline flag over r. Underlines are recorded but
// not drawn.
func (l *TextLayout) SetUnderline(on bool, r TextRange) error {
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.underline = on
		return a
	})
}

// Underline returns the underline flag at pos and the range sharing it.
func (l *TextLayout) Underline(pos int) (bool, TextRange) {
	a, r := l.regularAt(pos)
	return a.underline, r
}

// SetPairKerning enables or disables kerning over r.
func (l *TextLayout) SetPairKerning(on bool, r TextRange) error {
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.pairKerning = on
		return a
	})
}

// PairKerning returns the kerning flag at pos and the range sharing it.
func (l *TextLayout) PairKerning(pos int) (bool, TextRange) {
	a, r := l.regularAt(pos)
	return a.pairKerning, r
}

// SetInlineObject replaces the text in r with obj. Nil removes an object.
func (l *TextLayout) SetInlineObject(obj InlineObject, r TextRange) error {
	return l.updateRegular(r, func(a regularAttrs) regularAttrs {
		a.object = obj
		return a
	})
}

// InlineObject returns the inline object at pos and the range sharing it.
func (l *TextLayout) InlineObject(pos int) (InlineObject, TextRange) {
	a, r := l.regularAt(pos)
	return a.object, r
}

// SetStrikethrough sets the strikethrough flag over r.
func (l *TextLayout) SetStrikethrough(on bool, r TextRange) error {
	return setRange(l, l.strike, r, on)
}

// Strikethrough returns the strikethrough flag at pos and the range sharing
// it.
func (l *TextLayout) Strikethrough(pos int) (bool, TextRange) {
	return valueAt(l.strike, pos, false)
}

// SetDrawingEffect attaches an application defined effect to r. The effect
// is passed back to the Renderer and compared by identity.
func (l *TextLayout) SetDrawingEffect(effect any, r TextRange) error {
	return setRange(l, l.effects, r, effect)
}

// DrawingEffect returns the effect at pos and the range sharing it.
func (l *TextLayout) DrawingEffect(pos int) (any, TextRange) {
	return valueAt[any](l.effects, pos, nil)
}

// SetCharacterSpacing adds leading and trailing space to every cluster in
// r and widens clusters narrower than minAdvance.
func (l *TextLayout) SetCharacterSpacing(leading, trailing, minAdvance float64, r TextRange) error {
	if minAdvance < 0 {
		return invalidArg("negative minimum advance %v", minAdvance)
	}
	return setRange(l, l.spacing, r, CharacterSpacing{Leading: leading, Trailing: trailing, MinAdvance: minAdvance})
}

// CharacterSpacing returns the spacing at pos and the range sharing it.
func (l *TextLayout) CharacterSpacing(pos int) (CharacterSpacing, TextRange) {
	return valueAt(l.spacing, pos, CharacterSpacing{})
}

// SetTypography is not supported.
func (l *TextLayout) SetTypography(any, TextRange) error {
	return ErrNotImplemented
}
