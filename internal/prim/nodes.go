package prim

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Empty
// ─────────────────────────────────────────────────────────────────────────────

type empty[A any] struct{}

// Empty returns the zero-size empty source.
func Empty[A any]() Source[A] {
	return empty[A]{}
}

// IsEmpty reports whether src is the node returned by [Empty]. It never
// iterates.
func IsEmpty[A any](src Source[A]) bool {
	_, ok := src.(empty[A])
	return ok
}

func (empty[A]) All() iter.Seq[A] {
	return func(func(A) bool) {}
}

func (empty[A]) knownLen() (int, bool) {
	return 0, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Single
// ─────────────────────────────────────────────────────────────────────────────

type single[A any] struct {
	v A
}

// Single returns a source holding exactly v.
func Single[A any](v A) Source[A] {
	return single[A]{v: v}
}

// SingleValue returns the value of a node built by [Single].
func SingleValue[A any](src Source[A]) (A, bool) {
	s, ok := src.(single[A])
	return s.v, ok
}

func (s single[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(s.v)
	}
}

func (single[A]) knownLen() (int, bool) {
	return 1, true
}

// mappedOne applies f to a single value on every traversal.
type mappedOne[A, B any] struct {
	v A
	f func(A) B
}

func (m mappedOne[A, B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		yield(m.f(m.v))
	}
}

func (mappedOne[A, B]) knownLen() (int, bool) {
	return 1, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slice
// ─────────────────────────────────────────────────────────────────────────────

type slice[A any] []A

// Slice returns a source over items. The caller must not modify items
// afterwards.
func Slice[A any](items []A) Source[A] {
	if len(items) == 0 {
		return Empty[A]()
	}
	return slice[A](items)
}

func (s slice[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s slice[A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func (s slice[A]) knownLen() (int, bool) {
	return len(s), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Repeat
// ─────────────────────────────────────────────────────────────────────────────

type repeat[A any] struct {
	v A
}

// Repeat returns an infinite source yielding v forever.
func Repeat[A any](v A) Source[A] {
	return repeat[A]{v: v}
}

func (r repeat[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for yield(r.v) {
		}
	}
}
