package ranges

import "sort"

// Span is one interval of a Set with its value.
type Span[V any] struct {
	Start  int
	Length int
	Value  V
}

// End returns the exclusive end position of the span.
func (s Span[V]) End() int { return s.Start + s.Length }

// Contains reports whether pos lies inside the span.
func (s Span[V]) Contains(pos int) bool { return pos >= s.Start && pos < s.End() }

// Set is an ordered partition of [0, Len()) into spans.
//
// Set is not safe for concurrent use.
type Set[V any] struct {
	spans []Span[V]
	n     int
	equal func(a, b V) bool
}

// New creates a set of length n whose single span holds initial.
// A zero length set holds no spans.
func New[V any](n int, initial V, equal func(a, b V) bool) *Set[V] {
	s := &Set[V]{n: n, equal: equal}
	if n > 0 {
		s.spans = []Span[V]{{Start: 0, Length: n, Value: initial}}
	}
	return s
}

// Len returns the covered length.
func (s *Set[V]) Len() int { return s.n }

// Count returns the number of spans.
func (s *Set[V]) Count() int { return len(s.spans) }

// Spans returns a copy of the spans in position order.
func (s *Set[V]) Spans() []Span[V] {
	out := make([]Span[V], len(s.spans))
	copy(out, s.spans)
	return out
}

// At returns the span covering pos. It returns false for positions outside
// [0, Len()).
func (s *Set[V]) At(pos int) (Span[V], bool) {
	i := s.index(pos)
	if i < 0 {
		return Span[V]{}, false
	}
	return s.spans[i], true
}

// Set assigns v to [start, start+length) and reports whether any covered
// value changed.
func (s *Set[V]) Set(start, length int, v V) bool {
	return s.Update(start, length, func(V) V { return v })
}

// Update replaces every covered value with fn(value) and reports whether
// any of them changed. The range is clipped to [0, Len()); an empty range
// is a no-op.
func (s *Set[V]) Update(start, length int, fn func(V) V) bool {
	start, end := clip(start, length, s.n)
	if start >= end {
		return false
	}

	spans := Split(s.spans, start)
	spans = Split(spans, end)

	changed := false
	for i := range spans {
		sp := &spans[i]
		if sp.Start < start || sp.Start >= end {
			continue
		}
		nv := fn(sp.Value)
		if !s.equal(sp.Value, nv) {
			sp.Value = nv
			changed = true
		}
	}
	if !changed {
		return false
	}

	s.spans = Coalesce(spans, s.equal)
	return true
}

// index returns the index of the span covering pos, or -1.
func (s *Set[V]) index(pos int) int {
	if pos < 0 || pos >= s.n {
		return -1
	}
	i := sort.Search(len(s.spans), func(i int) bool { return s.spans[i].End() > pos })
	if i == len(s.spans) {
		return -1
	}
	return i
}

// Split returns a copy of spans where no span crosses pos. Both halves of a
// split span keep its value. The input is not modified.
func Split[V any](spans []Span[V], pos int) []Span[V] {
	out := make([]Span[V], 0, len(spans)+1)
	for _, sp := range spans {
		if pos > sp.Start && pos < sp.End() {
			out = append(out,
				Span[V]{Start: sp.Start, Length: pos - sp.Start, Value: sp.Value},
				Span[V]{Start: pos, Length: sp.End() - pos, Value: sp.Value})
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Coalesce returns a copy of spans with runs of adjacent equal values merged
// into one span. The input is not modified.
func Coalesce[V any](spans []Span[V], equal func(a, b V) bool) []Span[V] {
	out := make([]Span[V], 0, len(spans))
	for _, sp := range spans {
		if sp.Length == 0 {
			continue
		}
		if n := len(out); n > 0 && equal(out[n-1].Value, sp.Value) {
			out[n-1].Length += sp.Length
			continue
		}
		out = append(out, sp)
	}
	return out
}

func clip(start, length, n int) (int, int) {
	if length <= 0 || start >= n {
		return 0, 0
	}
	end := start + length
	if end < start || end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	return start, end
}
