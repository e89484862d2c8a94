package recording

import "github.com/gogpu/textlayout/fonts"

// ResourcePool stores the faces referenced by recorded glyph runs. A face
// is stored once however many runs use it.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	faces []*fonts.Face
	index map[*fonts.Face]FaceRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		faces: make([]*fonts.Face, 0, 4),
		index: make(map[*fonts.Face]FaceRef),
	}
}

// AddFace adds a face and returns its reference. A nil face yields an
// invalid reference.
func (p *ResourcePool) AddFace(face *fonts.Face) FaceRef {
	if face == nil {
		return FaceRef(InvalidRef)
	}
	if ref, ok := p.index[face]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FaceRef(uint32(len(p.faces)))
	p.faces = append(p.faces, face)
	p.index[face] = ref
	return ref
}

// GetFace returns the face for the given reference, or nil.
func (p *ResourcePool) GetFace(ref FaceRef) *fonts.Face {
	if !ref.IsValid() || int(ref) >= len(p.faces) {
		return nil
	}
	return p.faces[ref]
}

// FaceCount returns the number of faces in the pool.
func (p *ResourcePool) FaceCount() int {
	return len(p.faces)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.faces = p.faces[:0]
	clear(p.index)
}

// Clone returns a copy of the pool. Faces are shared.
func (p *ResourcePool) Clone() *ResourcePool {
	c := &ResourcePool{
		faces: append([]*fonts.Face(nil), p.faces...),
		index: make(map[*fonts.Face]FaceRef, len(p.index)),
	}
	for k, v := range p.index {
		c.index[k] = v
	}
	return c
}
