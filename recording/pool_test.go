package recording

import (
	"testing"

	"github.com/gogpu/textlayout/fonts"
)

func goFace(t *testing.T, w fonts.Weight) *fonts.Face {
	t.Helper()

	fam, ok := fonts.Default().FindFamily(fonts.FamilyGo)
	if !ok {
		t.Fatal("Go family missing")
	}
	f, ok := fam.FirstMatchingFont(w, fonts.StretchNormal, fonts.StyleNormal)
	if !ok {
		t.Fatal("no Go font")
	}
	return f.CreateFace()
}

func TestResourcePoolFaces(t *testing.T) {
	p := NewResourcePool()
	regular := goFace(t, fonts.WeightNormal)
	bold := goFace(t, fonts.WeightBold)

	r1 := p.AddFace(regular)
	r2 := p.AddFace(bold)
	r3 := p.AddFace(regular)

	if r1 != r3 {
		t.Errorf("same face got refs %d and %d", r1, r3)
	}
	if r1 == r2 {
		t.Error("different faces share a ref")
	}
	if p.FaceCount() != 2 {
		t.Errorf("FaceCount() = %d, want 2", p.FaceCount())
	}
	if p.GetFace(r2) != bold {
		t.Error("GetFace(r2) returned the wrong face")
	}
	if p.GetFace(FaceRef(99)) != nil {
		t.Error("GetFace(99) should be nil")
	}
}

func TestResourcePoolNilFace(t *testing.T) {
	p := NewResourcePool()
	ref := p.AddFace(nil)
	if ref.IsValid() {
		t.Error("nil face should give an invalid ref")
	}
	if p.GetFace(ref) != nil {
		t.Error("GetFace(invalid) should be nil")
	}
	if p.FaceCount() != 0 {
		t.Errorf("FaceCount() = %d, want 0", p.FaceCount())
	}
}

func TestResourcePoolClearClone(t *testing.T) {
	p := NewResourcePool()
	face := goFace(t, fonts.WeightNormal)
	p.AddFace(face)

	c := p.Clone()
	p.Clear()

	if p.FaceCount() != 0 {
		t.Errorf("after Clear FaceCount() = %d, want 0", p.FaceCount())
	}
	if c.FaceCount() != 1 || c.GetFace(0) != face {
		t.Error("clone lost its face after Clear on the original")
	}
	if ref := p.AddFace(face); ref != 0 {
		t.Errorf("re-added face ref = %d, want 0", ref)
	}
}
