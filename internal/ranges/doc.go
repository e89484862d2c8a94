// Package ranges stores per-position attribute values as a partition of
// [0, n) into spans.
//
// A Set always covers its whole length with no gaps and no overlaps, and
// adjacent spans never hold equal values. Writers split the affected spans,
// assign the new value and coalesce, returning whether any covered value
// actually changed.
//
//	s := ranges.New(10, 400, func(a, b int) bool { return a == b })
//	s.Set(2, 3, 700) // [0,2)=400 [2,5)=700 [5,10)=400
//	sp, _ := s.At(3) // sp.Start == 2, sp.Length == 3, sp.Value == 700
package ranges
