package seqs

// This file contains package-level generic functions for operations that
// change the element type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. Each comes in one variant
// per capability set worth keeping in the static type; all variants tag
// their result exactly, so the plain variant loses nothing at run time.

import (
	"github.com/hasbyte1/go-seqs/collections"
	"github.com/hasbyte1/go-seqs/internal/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func mapRep[A, B any](op string, s Sequence[A], f func(A) B) rep[B] {
	r := unwrapArg(op, s)
	if f == nil {
		panic(nilFunc(op))
	}
	return rep[B]{src: prim.Map(r.source(), f), caps: r.caps}
}

// Map applies f to every element, lazily. Mapping is one-to-one, so every
// capability of s carries over to the result's tag.
//
//	lengths := seqs.Map(words, func(w string) int { return len(w) })
func Map[A, B any](s Sequence[A], f func(A) B) Seq[B] {
	return asSeq(mapRep("Map", s, f))
}

// MapFinite is [Map] keeping boundedness in the static type.
func MapFinite[A, B any](s FiniteSequence[A], f func(A) B) Finite[B] {
	return asFinite(mapRep("MapFinite", s, f))
}

// MapNonEmpty is [Map] keeping non-emptiness in the static type.
func MapNonEmpty[A, B any](s NonEmptySequence[A], f func(A) B) NonEmpty[B] {
	return asNonEmpty(mapRep("MapNonEmpty", s, f))
}

// MapImmutable is [Map] keeping immutability in the static type.
func MapImmutable[A, B any](s ImmutableSequence[A], f func(A) B) Immutable[B] {
	return asImmutable(mapRep("MapImmutable", s, f))
}

func MapNonEmptyFinite[A, B any](s NonEmptyFiniteSequence[A], f func(A) B) NonEmptyFinite[B] {
	return asNonEmptyFinite(mapRep("MapNonEmptyFinite", s, f))
}

func MapImmutableFinite[A, B any](s ImmutableFiniteSequence[A], f func(A) B) ImmutableFinite[B] {
	return asImmutableFinite(mapRep("MapImmutableFinite", s, f))
}

func MapImmutableNonEmpty[A, B any](s ImmutableNonEmptySequence[A], f func(A) B) ImmutableNonEmpty[B] {
	return asImmutableNonEmpty(mapRep("MapImmutableNonEmpty", s, f))
}

func MapImmutableNonEmptyFinite[A, B any](s ImmutableNonEmptyFiniteSequence[A], f func(A) B) ImmutableNonEmptyFinite[B] {
	return asImmutableNonEmptyFinite(mapRep("MapImmutableNonEmptyFinite", s, f))
}

// ─────────────────────────────────────────────────────────────────────────────
// Zip
// ─────────────────────────────────────────────────────────────────────────────

func zipRep[A, B, C any](op string, a Sequence[A], b Sequence[B], f func(A, B) C) rep[C] {
	ra, rb := unwrapArg(op, a), unwrapArg(op, b)
	if f == nil {
		panic(nilFunc(op))
	}
	return rep[C]{
		src:  prim.ZipWith(ra.source(), rb.source(), f),
		caps: zipCaps(ra.caps, rb.caps),
	}
}

// ZipWith combines a and b pairwise with f, stopping at the end of the
// shorter one. The result is bounded when either input is, and non-empty
// and immutable when both are.
func ZipWith[A, B, C any](a Sequence[A], b Sequence[B], f func(A, B) C) Seq[C] {
	return asSeq(zipRep("ZipWith", a, b, f))
}

// ZipWithFinite is [ZipWith] with a bounded first input.
func ZipWithFinite[A, B, C any](a FiniteSequence[A], b Sequence[B], f func(A, B) C) Finite[C] {
	return asFinite(zipRep("ZipWithFinite", a, b, f))
}

// ZipWithNonEmpty is [ZipWith] over two non-empty inputs.
func ZipWithNonEmpty[A, B, C any](a NonEmptySequence[A], b NonEmptySequence[B], f func(A, B) C) NonEmpty[C] {
	return asNonEmpty(zipRep("ZipWithNonEmpty", a, b, f))
}

func ZipWithNonEmptyFinite[A, B, C any](a NonEmptyFiniteSequence[A], b NonEmptySequence[B], f func(A, B) C) NonEmptyFinite[C] {
	return asNonEmptyFinite(zipRep("ZipWithNonEmptyFinite", a, b, f))
}

func ZipWithImmutable[A, B, C any](a ImmutableSequence[A], b ImmutableSequence[B], f func(A, B) C) Immutable[C] {
	return asImmutable(zipRep("ZipWithImmutable", a, b, f))
}

func ZipWithImmutableFinite[A, B, C any](a ImmutableFiniteSequence[A], b ImmutableSequence[B], f func(A, B) C) ImmutableFinite[C] {
	return asImmutableFinite(zipRep("ZipWithImmutableFinite", a, b, f))
}

// Zip pairs the elements of a and b.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Seq[collections.Pair[A, B]] {
	return asSeq(zipRep("Zip", a, b, collections.MakePair[A, B]))
}

// ZipFinite is [Zip] with a bounded first input.
func ZipFinite[A, B any](a FiniteSequence[A], b Sequence[B]) Finite[collections.Pair[A, B]] {
	return asFinite(zipRep("ZipFinite", a, b, collections.MakePair[A, B]))
}

// Cross pairs every element of a with every element of b, a-major.
func Cross[A, B any](a FiniteSequence[A], b FiniteSequence[B]) Finite[collections.Pair[A, B]] {
	ra, rb := unwrapArg("Cross", a), unwrapArg("Cross", b)
	return asFinite(rep[collections.Pair[A, B]]{
		src:  prim.Cross(ra.source(), rb.source(), collections.MakePair[A, B]),
		caps: ra.caps & rb.caps,
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Distinct
// ─────────────────────────────────────────────────────────────────────────────

// Distinct keeps the first occurrence of every element.
func Distinct[A comparable](s FiniteSequence[A]) Finite[A] {
	r := unwrapArg("Distinct", s)
	return asFinite(r.distinctBy(func(v A) any { return v }))
}
