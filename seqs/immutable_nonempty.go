package seqs

// ImmutableNonEmpty is a fixed, non-empty sequence that may be infinite,
// such as [Repeat].
type ImmutableNonEmpty[A any] struct {
	base[A]
}

func asImmutableNonEmpty[A any](r rep[A]) ImmutableNonEmpty[A] {
	return ImmutableNonEmpty[A]{base[A]{r}}
}

func (ImmutableNonEmpty[A]) nonEmpty()  {}
func (ImmutableNonEmpty[A]) immutable() {}

// ToFinite returns s as ImmutableNonEmptyFinite[A] when boundedness is proven by the tag or a
// known length. It never iterates.
func (s ImmutableNonEmpty[A]) ToFinite() (ImmutableNonEmptyFinite[A], bool) {
	r, ok := s.r.bounded()
	return asImmutableNonEmptyFinite(r), ok
}

// ToNonEmpty returns s itself.
func (s ImmutableNonEmpty[A]) ToNonEmpty() (ImmutableNonEmpty[A], bool) { return s, true }

// Take returns at most the first n elements. It panics if n < 0.
func (s ImmutableNonEmpty[A]) Take(n int) ImmutableFinite[A] { return asImmutableFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s ImmutableNonEmpty[A]) Drop(n int) Immutable[A] { return asImmutable(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s ImmutableNonEmpty[A]) Filter(pred func(A) bool) Immutable[A] {
	return asImmutable(s.r.filter(pred))
}

// TakeWhile keeps the longest prefix satisfying pred.
func (s ImmutableNonEmpty[A]) TakeWhile(pred func(A) bool) Immutable[A] {
	return asImmutable(s.r.takeWhile(pred))
}

// DropWhile skips the longest prefix satisfying pred.
func (s ImmutableNonEmpty[A]) DropWhile(pred func(A) bool) Immutable[A] {
	return asImmutable(s.r.dropWhile(pred))
}

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s ImmutableNonEmpty[A]) Span(pred func(A) bool) (Immutable[A], Immutable[A]) {
	prefix, rest := s.r.span(pred)
	return asImmutable(prefix), asImmutable(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s ImmutableNonEmpty[A]) Partition(pred func(A) bool) (Immutable[A], Immutable[A]) {
	in, out := s.r.partition(pred)
	return asImmutable(in), asImmutable(out)
}

// Append returns s followed by v.
func (s ImmutableNonEmpty[A]) Append(v A) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.appended(v))
}

// Prepend returns v followed by s.
func (s ImmutableNonEmpty[A]) Prepend(v A) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.prepended(v))
}

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s ImmutableNonEmpty[A]) Concat(other Sequence[A]) NonEmpty[A] {
	return asNonEmpty(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatImmutable returns s followed by other.
func (s ImmutableNonEmpty[A]) ConcatImmutable(other ImmutableSequence[A]) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.concat(unwrapArg("ConcatImmutable", other)))
}

// Intersperse puts sep between adjacent elements.
func (s ImmutableNonEmpty[A]) Intersperse(sep A) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.intersperse(sep))
}

// PrependAll puts sep before every element.
func (s ImmutableNonEmpty[A]) PrependAll(sep A) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.prependAll(sep))
}

// Head returns the first element.
func (s ImmutableNonEmpty[A]) Head() A { return s.r.head() }

// Tail returns every element after the first.
func (s ImmutableNonEmpty[A]) Tail() Immutable[A] { return asImmutable(s.r.tail()) }

// Seq widens s to Seq[A].
func (s ImmutableNonEmpty[A]) Seq() Seq[A] { return asSeq(s.r) }

// NonEmpty widens s to NonEmpty[A].
func (s ImmutableNonEmpty[A]) NonEmpty() NonEmpty[A] { return asNonEmpty(s.r) }

// Immutable widens s to Immutable[A].
func (s ImmutableNonEmpty[A]) Immutable() Immutable[A] { return asImmutable(s.r) }
