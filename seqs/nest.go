package seqs

import "github.com/hasbyte1/go-seqs/internal/prim"

// Operations yielding sequences of sequences. These are package-level
// functions rather than methods: a method of Seq[A] returning
// Seq[Seq[A]] would make the compiler instantiate Seq at ever deeper
// element types.

// ─────────────────────────────────────────────────────────────────────────────
// Tails
// ─────────────────────────────────────────────────────────────────────────────

func tailsRep[A, S any](op string, s Sequence[A], wrap func(rep[A]) S) rep[S] {
	r := unwrapArg(op, s)
	inner := r.caps &^ CapNonEmpty
	src := prim.Map(prim.Tails(r.source()), func(t prim.Source[A]) S {
		return wrap(rep[A]{src: t, caps: inner})
	})
	return rep[S]{src: src, caps: r.caps&(CapBounded|CapImmutable) | CapNonEmpty}
}

// Tails yields s, s without its first element, and so on, ending with the
// empty suffix. There is always at least one suffix. Suffixes are lazy
// views over s.
//
//	Tails(Of(1, 2, 3)) → [1 2 3] [2 3] [3] []
func Tails[A any](s Sequence[A]) NonEmpty[Seq[A]] {
	return asNonEmpty(tailsRep("Tails", s, asSeq[A]))
}

// TailsFinite is [Tails] over a bounded sequence.
func TailsFinite[A any](s FiniteSequence[A]) NonEmptyFinite[Finite[A]] {
	return asNonEmptyFinite(tailsRep("TailsFinite", s, asFinite[A]))
}

// TailsImmutable is [Tails] over an immutable sequence.
func TailsImmutable[A any](s ImmutableSequence[A]) ImmutableNonEmpty[Immutable[A]] {
	return asImmutableNonEmpty(tailsRep("TailsImmutable", s, asImmutable[A]))
}

// TailsImmutableFinite is [Tails] over a bounded, immutable sequence.
func TailsImmutableFinite[A any](s ImmutableFiniteSequence[A]) ImmutableNonEmptyFinite[ImmutableFinite[A]] {
	return asImmutableNonEmptyFinite(tailsRep("TailsImmutableFinite", s, asImmutableFinite[A]))
}

// ─────────────────────────────────────────────────────────────────────────────
// Inits
// ─────────────────────────────────────────────────────────────────────────────

func initsRep[A, S any](op string, s Sequence[A], wrap func(rep[A]) S) rep[S] {
	r := unwrapArg(op, s)
	inner := r.caps&CapImmutable | CapBounded
	src := prim.Map(prim.Inits(r.source()), func(t prim.Source[A]) S {
		if prim.IsEmpty(t) {
			return wrap(rep[A]{src: t, caps: inner})
		}
		return wrap(rep[A]{src: t, caps: inner | CapNonEmpty})
	})
	return rep[S]{src: src, caps: r.caps&(CapBounded|CapImmutable) | CapNonEmpty}
}

// Inits yields the empty prefix, then every longer prefix of s in turn.
// Prefixes are always bounded, even when s is not.
//
//	Inits(Of(1, 2, 3)) → [] [1] [1 2] [1 2 3]
func Inits[A any](s Sequence[A]) NonEmpty[Finite[A]] {
	return asNonEmpty(initsRep("Inits", s, asFinite[A]))
}

// InitsFinite is [Inits] over a bounded sequence.
func InitsFinite[A any](s FiniteSequence[A]) NonEmptyFinite[Finite[A]] {
	return asNonEmptyFinite(initsRep("InitsFinite", s, asFinite[A]))
}

// InitsImmutable is [Inits] over an immutable sequence.
func InitsImmutable[A any](s ImmutableSequence[A]) ImmutableNonEmpty[ImmutableFinite[A]] {
	return asImmutableNonEmpty(initsRep("InitsImmutable", s, asImmutableFinite[A]))
}

// InitsImmutableFinite is [Inits] over a bounded, immutable sequence.
func InitsImmutableFinite[A any](s ImmutableFiniteSequence[A]) ImmutableNonEmptyFinite[ImmutableFinite[A]] {
	return asImmutableNonEmptyFinite(initsRep("InitsImmutableFinite", s, asImmutableFinite[A]))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slide
// ─────────────────────────────────────────────────────────────────────────────

// group wraps a freshly built slice that nothing else references.
func group[A any](items []A) ImmutableNonEmptyFinite[A] {
	if len(items) == 1 {
		return Singleton(items[0])
	}
	return asImmutableNonEmptyFinite(rep[A]{
		src:  prim.Slice(items),
		caps: CapBounded | CapNonEmpty | CapImmutable,
	})
}

func slideRep[A any](op string, s Sequence[A], k int) rep[ImmutableNonEmptyFinite[A]] {
	r := unwrapArg(op, s)
	checkWindow(op, k)
	return rep[ImmutableNonEmptyFinite[A]]{
		src:  prim.Map(prim.Slide(r.source(), k), group[A]),
		caps: r.caps &^ CapNonEmpty,
	}
}

// Slide yields every run of k adjacent elements, in order. Windows are
// copies and never empty: a non-empty s shorter than k yields one window
// holding all of s, and an empty s yields no windows. It panics if k < 1.
//
//	Slide(Of(0, 1, 2, 3), 2) → [0 1] [1 2] [2 3]
func Slide[A any](s Sequence[A], k int) Seq[ImmutableNonEmptyFinite[A]] {
	return asSeq(slideRep("Slide", s, k))
}

// SlideFinite is [Slide] over a bounded sequence.
func SlideFinite[A any](s FiniteSequence[A], k int) Finite[ImmutableNonEmptyFinite[A]] {
	return asFinite(slideRep("SlideFinite", s, k))
}

// SlideImmutable is [Slide] over an immutable sequence.
func SlideImmutable[A any](s ImmutableSequence[A], k int) Immutable[ImmutableNonEmptyFinite[A]] {
	return asImmutable(slideRep("SlideImmutable", s, k))
}

// SlideImmutableFinite is [Slide] over a bounded, immutable sequence.
func SlideImmutableFinite[A any](s ImmutableFiniteSequence[A], k int) ImmutableFinite[ImmutableNonEmptyFinite[A]] {
	return asImmutableFinite(slideRep("SlideImmutableFinite", s, k))
}

// ─────────────────────────────────────────────────────────────────────────────
// MagnetizeBy
// ─────────────────────────────────────────────────────────────────────────────

func magnetizeRep[A any](op string, s Sequence[A], attract func(A, A) bool) rep[ImmutableNonEmptyFinite[A]] {
	r := unwrapArg(op, s)
	if attract == nil {
		panic(nilFunc(op))
	}
	return rep[ImmutableNonEmptyFinite[A]]{
		src:  prim.Map(prim.MagnetizeBy(r.source(), attract), group[A]),
		caps: r.caps,
	}
}

// MagnetizeBy groups runs of adjacent elements: an element joins the group
// of its predecessor while attract(predecessor, element) holds.
//
//	MagnetizeBy(Of(1, 2, 4, 5, 7), func(a, b int) bool { return b == a+1 })
//	→ [1 2] [4 5] [7]
func MagnetizeBy[A any](s Sequence[A], attract func(A, A) bool) Seq[ImmutableNonEmptyFinite[A]] {
	return asSeq(magnetizeRep("MagnetizeBy", s, attract))
}

// MagnetizeByFinite is [MagnetizeBy] over a bounded sequence.
func MagnetizeByFinite[A any](s FiniteSequence[A], attract func(A, A) bool) Finite[ImmutableNonEmptyFinite[A]] {
	return asFinite(magnetizeRep("MagnetizeByFinite", s, attract))
}

// MagnetizeByNonEmpty is [MagnetizeBy] over a non-empty sequence.
func MagnetizeByNonEmpty[A any](s NonEmptySequence[A], attract func(A, A) bool) NonEmpty[ImmutableNonEmptyFinite[A]] {
	return asNonEmpty(magnetizeRep("MagnetizeByNonEmpty", s, attract))
}

// MagnetizeByNonEmptyFinite is [MagnetizeBy] over a bounded, non-empty
// sequence.
func MagnetizeByNonEmptyFinite[A any](s NonEmptyFiniteSequence[A], attract func(A, A) bool) NonEmptyFinite[ImmutableNonEmptyFinite[A]] {
	return asNonEmptyFinite(magnetizeRep("MagnetizeByNonEmptyFinite", s, attract))
}
