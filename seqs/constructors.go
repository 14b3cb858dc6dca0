package seqs

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-seqs/collections"
	"github.com/hasbyte1/go-seqs/internal/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Entry points
// ─────────────────────────────────────────────────────────────────────────────

// Enhance wraps src as a Seq. A sequence from this package comes back with
// its tag and source untouched; a [Sized] source is tagged bounded, and
// non-empty when it has elements; anything else is tagged with nothing.
func Enhance[A any](src Iterable[A]) Seq[A] {
	return asSeq(repOf("Enhance", src))
}

// FromSeq wraps an iter.Seq. The function must be callable more than once.
func FromSeq[A any](seq iter.Seq[A]) Seq[A] {
	if seq == nil {
		panic(nilSource("FromSeq"))
	}
	return asSeq(rep[A]{src: prim.Func[A](seq)})
}

// FiniteOf wraps src as a Finite. For a source that is neither tagged nor
// sized the caller asserts that it terminates; nothing checks it.
func FiniteOf[A any](src Iterable[A]) Finite[A] {
	r := repOf("FiniteOf", src)
	r.caps |= CapBounded
	return asFinite(r)
}

// FromSlice wraps xs without copying it. Later writes to xs are observed.
func FromSlice[A any](xs []A) Finite[A] {
	return FiniteOf[A](Slice[A](xs))
}

// ImmutableOf wraps src as an Immutable.
//
// An immutable sequence is returned as is. A bounded or sized source is
// copied. A source of unknown extent cannot be copied without risking a
// traversal that never ends, so the caller's word is taken that it does not
// change.
func ImmutableOf[A any](src Iterable[A]) Immutable[A] {
	r := repOf("ImmutableOf", src)
	if r.caps.Has(CapBounded) {
		return asImmutable(r.copied())
	}
	r.caps |= CapImmutable
	return asImmutable(r)
}

// ImmutableFiniteOf wraps src as an ImmutableFinite, copying it unless it is
// already immutable. For a source that is neither tagged nor sized the
// caller asserts that it terminates.
func ImmutableFiniteOf[A any](src Iterable[A]) ImmutableFinite[A] {
	r := repOf("ImmutableFiniteOf", src)
	r.caps |= CapBounded
	return asImmutableFinite(r.copied())
}

// Empty returns the canonical empty sequence.
func Empty[A any]() ImmutableFinite[A] {
	return asImmutableFinite(emptyRep[A]())
}

// Singleton returns the sequence holding only v.
func Singleton[A any](v A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(singletonRep(v))
}

// Of returns an immutable sequence of the given values. A single value
// gives a [Singleton].
func Of[A any](first A, more ...A) ImmutableNonEmptyFinite[A] {
	if len(more) == 0 {
		return Singleton(first)
	}
	return asImmutableNonEmptyFinite(collectionRep(collections.Of(first, more...)))
}

// Repeat returns the infinite sequence v, v, v, ...
func Repeat[A any](v A) ImmutableNonEmpty[A] {
	src := prim.Repeat(v)
	caps := CapNonEmpty | CapImmutable
	return asImmutableNonEmpty(rep[A]{
		src:  src,
		caps: caps,
		cell: &cell[A]{head: v, tail: src, tailCaps: caps},
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Copies
// ─────────────────────────────────────────────────────────────────────────────

// CopyFrom takes an eager copy of src. Copying an immutable sequence
// returns it unchanged.
func CopyFrom[A any](src FiniteSequence[A]) ImmutableFinite[A] {
	return asImmutableFinite(unwrapArg("CopyFrom", src).copied())
}

// CopySlice takes a copy of xs.
func CopySlice[A any](xs []A) ImmutableFinite[A] {
	return asImmutableFinite(collectionRep(collections.From(xs)))
}

// CopyN copies at most the first n elements of src. An immutable src is not
// copied: the result is a view of its first n elements. It panics if n < 0.
func CopyN[A any](n int, src Iterable[A]) ImmutableFinite[A] {
	checkCount("CopyN", n)
	r := repOf("CopyN", src).take(n)
	return asImmutableFinite(r.copied())
}

// ─────────────────────────────────────────────────────────────────────────────
// Non-empty constructors
// ─────────────────────────────────────────────────────────────────────────────

// NonEmptyOf returns head followed by tail.
func NonEmptyOf[A any](head A, tail Iterable[A]) NonEmpty[A] {
	t := repOf("NonEmptyOf", tail)
	return asNonEmpty(consRep(head, t.source(), t.caps))
}

// NonEmptyFiniteOf returns head followed by tail.
func NonEmptyFiniteOf[A any](head A, tail FiniteSequence[A]) NonEmptyFinite[A] {
	t := unwrapArg("NonEmptyFiniteOf", tail)
	return asNonEmptyFinite(consRep(head, t.source(), t.caps))
}

// ImmutableNonEmptyOf returns head followed by tail.
func ImmutableNonEmptyOf[A any](head A, tail ImmutableSequence[A]) ImmutableNonEmpty[A] {
	t := unwrapArg("ImmutableNonEmptyOf", tail)
	return asImmutableNonEmpty(consRep(head, t.source(), t.caps))
}

// ImmutableNonEmptyFiniteOf returns head followed by tail.
func ImmutableNonEmptyFiniteOf[A any](head A, tail ImmutableFiniteSequence[A]) ImmutableNonEmptyFinite[A] {
	t := unwrapArg("ImmutableNonEmptyFiniteOf", tail)
	return asImmutableNonEmptyFinite(consRep(head, t.source(), t.caps))
}

// UnsafeNonEmpty tags src non-empty without checking. Construction stays
// lazy; if src turns out to be empty, the first traversal (or Head) panics
// with an error wrapping [ErrCapabilityViolation].
func UnsafeNonEmpty[A any](src Iterable[A]) NonEmpty[A] {
	return asNonEmpty(assertNonEmpty(repOf("UnsafeNonEmpty", src)))
}

// UnsafeNonEmptyFinite is [UnsafeNonEmpty] for a source that also terminates.
func UnsafeNonEmptyFinite[A any](src FiniteSequence[A]) NonEmptyFinite[A] {
	return asNonEmptyFinite(assertNonEmpty(unwrapArg("UnsafeNonEmptyFinite", src)))
}

func assertNonEmpty[A any](r rep[A]) rep[A] {
	if r.caps.Has(CapNonEmpty) {
		return r
	}
	violation := fmt.Errorf("%w: asserted by UnsafeNonEmpty", ErrCapabilityViolation)
	return rep[A]{src: prim.Guard(r.source(), violation), caps: r.caps | CapNonEmpty}
}

// ─────────────────────────────────────────────────────────────────────────────
// Proof
// ─────────────────────────────────────────────────────────────────────────────

// TryFinite proves src bounded from its tag or a known length. It never
// iterates; false means the question could not be settled that way.
func TryFinite[A any](src Iterable[A]) (Finite[A], bool) {
	r, ok := repOf("TryFinite", src).bounded()
	return asFinite(r), ok
}

// TryNonEmpty proves src non-empty. Unless the tag settles it, one element
// is pulled from a fresh traversal; on success that element becomes the
// head and the tail is the rest of the original source, so the element is
// neither lost nor read twice by Head and Tail.
func TryNonEmpty[A any](src Iterable[A]) (NonEmpty[A], bool) {
	r, ok := repOf("TryNonEmpty", src).uncons()
	return asNonEmpty(r), ok
}

// Uncons splits src into its first element and the rest.
func Uncons[A any](src Iterable[A]) (A, Seq[A], bool) {
	ne, ok := TryNonEmpty(src)
	if !ok {
		var zero A
		return zero, Seq[A]{}, false
	}
	return ne.Head(), ne.Tail(), true
}
