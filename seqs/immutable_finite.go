package seqs

// ImmutableFinite is a terminating sequence whose contents are fixed. Eager
// copies ([CopyFrom], [CopySlice], [CopyN]) and the canonical [Empty]
// have this type.
type ImmutableFinite[A any] struct {
	base[A]
}

func asImmutableFinite[A any](r rep[A]) ImmutableFinite[A] {
	return ImmutableFinite[A]{base[A]{r}}
}

func (ImmutableFinite[A]) bounded()   {}
func (ImmutableFinite[A]) immutable() {}

// ToFinite returns s itself.
func (s ImmutableFinite[A]) ToFinite() (ImmutableFinite[A], bool) { return s, true }

// ToNonEmpty returns s as ImmutableNonEmptyFinite[A] when it has an element. Unless the tag
// already says so, one element is pulled from a fresh traversal and kept
// as the head.
func (s ImmutableFinite[A]) ToNonEmpty() (ImmutableNonEmptyFinite[A], bool) {
	r, ok := s.r.uncons()
	return asImmutableNonEmptyFinite(r), ok
}

// Take returns at most the first n elements. It panics if n < 0.
func (s ImmutableFinite[A]) Take(n int) ImmutableFinite[A] { return asImmutableFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s ImmutableFinite[A]) Drop(n int) ImmutableFinite[A] { return asImmutableFinite(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s ImmutableFinite[A]) Filter(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.filter(pred))
}

// TakeWhile keeps the longest prefix satisfying pred.
func (s ImmutableFinite[A]) TakeWhile(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.takeWhile(pred))
}

// DropWhile skips the longest prefix satisfying pred.
func (s ImmutableFinite[A]) DropWhile(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.dropWhile(pred))
}

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s ImmutableFinite[A]) Span(pred func(A) bool) (ImmutableFinite[A], ImmutableFinite[A]) {
	prefix, rest := s.r.span(pred)
	return asImmutableFinite(prefix), asImmutableFinite(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s ImmutableFinite[A]) Partition(pred func(A) bool) (ImmutableFinite[A], ImmutableFinite[A]) {
	in, out := s.r.partition(pred)
	return asImmutableFinite(in), asImmutableFinite(out)
}

// Append returns s followed by v.
func (s ImmutableFinite[A]) Append(v A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.appended(v))
}

// Prepend returns v followed by s.
func (s ImmutableFinite[A]) Prepend(v A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.prepended(v))
}

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s ImmutableFinite[A]) Concat(other Sequence[A]) Seq[A] {
	return asSeq(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatFinite returns s followed by other.
func (s ImmutableFinite[A]) ConcatFinite(other FiniteSequence[A]) Finite[A] {
	return asFinite(s.r.concat(unwrapArg("ConcatFinite", other)))
}

// ConcatImmutable returns s followed by other.
func (s ImmutableFinite[A]) ConcatImmutable(other ImmutableSequence[A]) Immutable[A] {
	return asImmutable(s.r.concat(unwrapArg("ConcatImmutable", other)))
}

// ConcatImmutableFinite returns s followed by other.
func (s ImmutableFinite[A]) ConcatImmutableFinite(other ImmutableFiniteSequence[A]) ImmutableFinite[A] {
	return asImmutableFinite(s.r.concat(unwrapArg("ConcatImmutableFinite", other)))
}

// Intersperse puts sep between adjacent elements.
func (s ImmutableFinite[A]) Intersperse(sep A) ImmutableFinite[A] {
	return asImmutableFinite(s.r.intersperse(sep))
}

// PrependAll puts sep before every element.
func (s ImmutableFinite[A]) PrependAll(sep A) ImmutableFinite[A] {
	return asImmutableFinite(s.r.prependAll(sep))
}

// Size returns the number of elements, iterating only when the length is
// not known.
func (s ImmutableFinite[A]) Size() int { return s.r.size() }

// ToSlice returns the elements in a new slice.
func (s ImmutableFinite[A]) ToSlice() []A { return s.r.toSlice() }

// MarshalJSON encodes the elements as a JSON array.
func (s ImmutableFinite[A]) MarshalJSON() ([]byte, error) {
	return s.r.marshalJSON()
}

// Reverse yields the elements last to first.
func (s ImmutableFinite[A]) Reverse() ImmutableFinite[A] { return asImmutableFinite(s.r.reverse()) }

// DistinctBy keeps the first element for every key. Keys must be
// comparable; see [Distinct] for comparable elements.
func (s ImmutableFinite[A]) DistinctBy(key func(A) any) ImmutableFinite[A] {
	return asImmutableFinite(s.r.distinctBy(key))
}

// Cycle repeats s forever. Cycling an empty sequence yields nothing. Nothing
// is pulled until the result is traversed, so when s is neither tagged
// non-empty nor of known length the result is not tagged non-empty either.
func (s ImmutableFinite[A]) Cycle() Immutable[A] { return asImmutable(s.r.cycle()) }

// Seq widens s to Seq[A].
func (s ImmutableFinite[A]) Seq() Seq[A] { return asSeq(s.r) }

// Finite widens s to Finite[A].
func (s ImmutableFinite[A]) Finite() Finite[A] { return asFinite(s.r) }

// Immutable widens s to Immutable[A].
func (s ImmutableFinite[A]) Immutable() Immutable[A] { return asImmutable(s.r) }
