// Package fonts resolves font families, faces and design metrics for the
// layout engine.
//
// A Collection maps family names to Families. Each Family holds the Fonts
// of one typeface, and FirstMatchingFont picks the closest one for a
// weight, stretch and style request. A Font creates Faces, which expose
// design-unit Metrics and a github.com/go-text/typesetting face for shaping.
//
// GoFonts builds a collection from the Go font family bundled with
// golang.org/x/image, and Default returns a shared instance of it:
//
//	fam, ok := fonts.Default().FindFamily("Go")
//	f, _ := fam.FirstMatchingFont(fonts.WeightBold, fonts.StretchNormal, fonts.StyleNormal)
//	face := f.CreateFace()
//	m := face.Metrics()
package fonts
