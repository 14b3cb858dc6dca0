package seqs

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Sources
// ─────────────────────────────────────────────────────────────────────────────

// Iterable is anything that can be traversed more than once. Each call to
// All must start a fresh traversal over the same logical elements.
type Iterable[A any] interface {
	All() iter.Seq[A]
}

// Sized is an eagerly-readable container that knows its length without
// iterating. Constructors tag a Sized source as bounded, and as non-empty
// when Len() > 0.
type Sized[A any] interface {
	Iterable[A]
	Len() int
}

// Slice adapts a Go slice as a [Sized] source. The slice is not copied;
// use [CopySlice] when later writes to it must not be observed.
type Slice[A any] []A

func (s Slice[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Slice[A]) Len() int { return len(s) }

// Func adapts an iter.Seq as an opaque source: nothing is known about it
// until it is traversed.
type Func[A any] iter.Seq[A]

func (f Func[A]) All() iter.Seq[A] { return iter.Seq[A](f) }

// ─────────────────────────────────────────────────────────────────────────────
// Capability interfaces
// ─────────────────────────────────────────────────────────────────────────────

// Sequence is implemented by every representation in this package. The
// interface is sealed: only the eight representation types satisfy it.
type Sequence[A any] interface {
	Iterable[A]
	// Caps returns the capabilities proven for this value. The tag can be
	// stronger than the static type, never weaker.
	Caps() Caps
	// IsEmpty reports whether a traversal yields nothing. It answers from
	// the tag or a known length when it can and otherwise pulls at most one
	// element.
	IsEmpty() bool
	// Iterator returns a protected pull iterator.
	Iterator() *Iterator[A]

	unwrap() rep[A]
}

// FiniteSequence is a Sequence whose traversals terminate.
type FiniteSequence[A any] interface {
	Sequence[A]
	Size() int
	ToSlice() []A
	bounded()
}

// NonEmptySequence is a Sequence with at least one element.
type NonEmptySequence[A any] interface {
	Sequence[A]
	Head() A
	nonEmpty()
}

// ImmutableSequence is a Sequence whose traversals always yield the same
// elements.
type ImmutableSequence[A any] interface {
	Sequence[A]
	immutable()
}

type NonEmptyFiniteSequence[A any] interface {
	FiniteSequence[A]
	NonEmptySequence[A]
	Last() A
}

type ImmutableFiniteSequence[A any] interface {
	FiniteSequence[A]
	ImmutableSequence[A]
}

type ImmutableNonEmptySequence[A any] interface {
	NonEmptySequence[A]
	ImmutableSequence[A]
}

type ImmutableNonEmptyFiniteSequence[A any] interface {
	NonEmptyFiniteSequence[A]
	ImmutableSequence[A]
}

// base carries the rep and the methods every representation shares.
type base[A any] struct {
	r rep[A]
}

func (b base[A]) unwrap() rep[A] { return b.r }

// All yields the elements. Each call is a fresh traversal.
func (b base[A]) All() iter.Seq[A] { return b.r.all() }

func (b base[A]) Caps() Caps { return b.r.caps }

func (b base[A]) IsEmpty() bool { return b.r.isEmpty() }

func (b base[A]) Iterator() *Iterator[A] { return Protect(b.r.all()) }

// Find returns the first element satisfying pred.
func (b base[A]) Find(pred func(A) bool) (A, bool) { return b.r.find(pred) }

// unwrapArg returns the rep of a sequence argument, rejecting nil.
func unwrapArg[A any](op string, s Sequence[A]) rep[A] {
	if s == nil {
		panic(nilSource(op))
	}
	return s.unwrap()
}

// repOf classifies an arbitrary source without consuming it.
func repOf[A any](op string, src Iterable[A]) rep[A] {
	switch s := src.(type) {
	case nil:
		panic(nilSource(op))
	case Sequence[A]:
		return s.unwrap()
	case Sized[A]:
		caps := CapBounded
		if s.Len() > 0 {
			caps |= CapNonEmpty
		}
		return rep[A]{src: s, caps: caps}
	}
	return rep[A]{src: src}
}
