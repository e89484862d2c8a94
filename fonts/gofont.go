package fonts

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Family names registered by GoFonts.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
)

type bundled struct {
	family string
	weight Weight
	style  Style
	data   []byte
}

var goFonts = []bundled{
	{FamilyGo, WeightNormal, StyleNormal, goregular.TTF},
	{FamilyGo, WeightNormal, StyleItalic, goitalic.TTF},
	{FamilyGo, WeightMedium, StyleNormal, gomedium.TTF},
	{FamilyGo, WeightMedium, StyleItalic, gomediumitalic.TTF},
	{FamilyGo, WeightBold, StyleNormal, gobold.TTF},
	{FamilyGo, WeightBold, StyleItalic, gobolditalic.TTF},
	{FamilyGoMono, WeightNormal, StyleNormal, gomono.TTF},
	{FamilyGoMono, WeightNormal, StyleItalic, gomonoitalic.TTF},
	{FamilyGoMono, WeightBold, StyleNormal, gomonobold.TTF},
	{FamilyGoMono, WeightBold, StyleItalic, gomonobolditalic.TTF},
	{FamilyGoSmallcaps, WeightNormal, StyleNormal, gosmallcaps.TTF},
	{FamilyGoSmallcaps, WeightNormal, StyleItalic, gosmallcapsitalic.TTF},
}

// GoFonts returns a new collection holding the Go font families.
func GoFonts() (*Collection, error) {
	c := NewCollection()
	for _, b := range goFonts {
		if _, err := c.Add(b.family, b.weight, StretchNormal, b.style, b.data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var defaultCollection = sync.OnceValues(GoFonts)

// Default returns the shared Go font collection. The bundled data is
// static, so a parse failure is a build defect and panics.
func Default() *Collection {
	c, err := defaultCollection()
	if err != nil {
		panic(err)
	}
	return c
}
