package seqs

// Immutable is a sequence whose traversals always yield the same elements.
// It may be infinite or empty.
type Immutable[A any] struct {
	base[A]
}

func asImmutable[A any](r rep[A]) Immutable[A] {
	return Immutable[A]{base[A]{r}}
}

func (Immutable[A]) immutable() {}

// ToFinite returns s as ImmutableFinite[A] when boundedness is proven by the tag or a
// known length. It never iterates.
func (s Immutable[A]) ToFinite() (ImmutableFinite[A], bool) {
	r, ok := s.r.bounded()
	return asImmutableFinite(r), ok
}

// ToNonEmpty returns s as ImmutableNonEmpty[A] when it has an element. Unless the tag
// already says so, one element is pulled from a fresh traversal and kept
// as the head.
func (s Immutable[A]) ToNonEmpty() (ImmutableNonEmpty[A], bool) {
	r, ok := s.r.uncons()
	return asImmutableNonEmpty(r), ok
}

// Take returns at most the first n elements. It panics if n < 0.
func (s Immutable[A]) Take(n int) ImmutableFinite[A] { return asImmutableFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s Immutable[A]) Drop(n int) Immutable[A] { return asImmutable(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s Immutable[A]) Filter(pred func(A) bool) Immutable[A] { return asImmutable(s.r.filter(pred)) }

// TakeWhile keeps the longest prefix satisfying pred.
func (s Immutable[A]) TakeWhile(pred func(A) bool) Immutable[A] {
	return asImmutable(s.r.takeWhile(pred))
}

// DropWhile skips the longest prefix satisfying pred.
func (s Immutable[A]) DropWhile(pred func(A) bool) Immutable[A] {
	return asImmutable(s.r.dropWhile(pred))
}

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s Immutable[A]) Span(pred func(A) bool) (Immutable[A], Immutable[A]) {
	prefix, rest := s.r.span(pred)
	return asImmutable(prefix), asImmutable(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s Immutable[A]) Partition(pred func(A) bool) (Immutable[A], Immutable[A]) {
	in, out := s.r.partition(pred)
	return asImmutable(in), asImmutable(out)
}

// Append returns s followed by v.
func (s Immutable[A]) Append(v A) ImmutableNonEmpty[A] { return asImmutableNonEmpty(s.r.appended(v)) }

// Prepend returns v followed by s.
func (s Immutable[A]) Prepend(v A) ImmutableNonEmpty[A] { return asImmutableNonEmpty(s.r.prepended(v)) }

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s Immutable[A]) Concat(other Sequence[A]) Seq[A] {
	return asSeq(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatImmutable returns s followed by other.
func (s Immutable[A]) ConcatImmutable(other ImmutableSequence[A]) Immutable[A] {
	return asImmutable(s.r.concat(unwrapArg("ConcatImmutable", other)))
}

// Intersperse puts sep between adjacent elements.
func (s Immutable[A]) Intersperse(sep A) Immutable[A] { return asImmutable(s.r.intersperse(sep)) }

// PrependAll puts sep before every element.
func (s Immutable[A]) PrependAll(sep A) Immutable[A] { return asImmutable(s.r.prependAll(sep)) }

// Seq widens s to Seq[A].
func (s Immutable[A]) Seq() Seq[A] { return asSeq(s.r) }
