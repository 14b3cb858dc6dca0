// Package prim holds the element-level algorithms behind package seqs.
//
// Every function here is lazy: it builds a new [Source] describing the
// computation and does no work until the result is traversed. Nothing in
// this package knows about capabilities; seqs decides which results are
// bounded, non-empty or immutable and prim only has to keep traversal
// cheap.
//
// # Stack safety
//
// Long chains of operations must not grow the Go stack while iterating:
//
//   - concatenations build a tree that is walked with an explicit stack
//   - map, filter, drop, take, takeWhile and dropWhile fuse into one flat
//     stage list that a single loop evaluates per element
//   - concatenations and stage lists nested in each other share that one
//     stack, and an element passes through the enclosing stage lists in a
//     loop
//   - consecutive drops add up and consecutive takes keep the minimum
//   - slice-backed sources drop and take by re-slicing
package prim

import "iter"

// Source is a re-iterable traversal. Each call to All starts a fresh pass
// over the same logical elements.
type Source[A any] interface {
	All() iter.Seq[A]
}

// sizer is implemented by nodes of this package that may know their length
// without iterating.
type sizer interface {
	knownLen() (int, bool)
}

// lener is implemented by eagerly-readable containers.
type lener interface {
	Len() int
}

// backward is implemented by containers read last to first without
// copying.
type backward[A any] interface {
	Backward() iter.Seq[A]
}

// ends is implemented by containers holding their first and last elements
// at hand.
type ends[A any] interface {
	First() (A, bool)
	Last() (A, bool)
}

// copier is implemented by containers that hand out a copy of their
// elements.
type copier[A any] interface {
	ToSlice() []A
}

// Len reports the number of elements of src when it is known without
// iterating.
func Len[A any](src Source[A]) (int, bool) {
	switch s := src.(type) {
	case sizer:
		return s.knownLen()
	case lener:
		return s.Len(), true
	}
	return 0, false
}

// Count returns the number of elements of src, iterating only when the
// length is not known up front. It does not terminate on infinite sources.
func Count[A any](src Source[A]) int {
	if n, ok := Len(src); ok {
		return n
	}
	n := 0
	for range src.All() {
		n++
	}
	return n
}

// First returns the first element of a fresh traversal.
func First[A any](src Source[A]) (A, bool) {
	switch s := src.(type) {
	case single[A]:
		return s.v, true
	case ends[A]:
		return s.First()
	}
	for v := range src.All() {
		return v, true
	}
	var zero A
	return zero, false
}

// Last returns the final element of src. It does not terminate on infinite
// sources.
func Last[A any](src Source[A]) (A, bool) {
	switch s := src.(type) {
	case single[A]:
		return s.v, true
	case slice[A]:
		if len(s) == 0 {
			break
		}
		return s[len(s)-1], true
	case ends[A]:
		return s.Last()
	}
	var last A
	found := false
	for v := range src.All() {
		last, found = v, true
	}
	return last, found
}

// Collect gathers every element of src into a new slice.
func Collect[A any](src Source[A]) []A {
	if c, ok := src.(copier[A]); ok {
		return c.ToSlice()
	}
	var out []A
	if n, ok := Len(src); ok {
		out = make([]A, 0, n)
	}
	for v := range src.All() {
		out = append(out, v)
	}
	return out
}

// Func adapts an iter.Seq as an opaque Source.
type Func[A any] iter.Seq[A]

func (f Func[A]) All() iter.Seq[A] {
	return iter.Seq[A](f)
}

// derived is a traversal computed from other sources, with an optional way
// to derive its length from theirs.
type derived[A any] struct {
	all    iter.Seq[A]
	length func() (int, bool)
}

func (d derived[A]) All() iter.Seq[A] {
	return d.all
}

func (d derived[A]) knownLen() (int, bool) {
	if d.length == nil {
		return 0, false
	}
	return d.length()
}
