package seqs

// ImmutableNonEmptyFinite carries every capability. [Of] and [Singleton]
// build it, and [Slide] and [MagnetizeBy] yield windows of this type.
type ImmutableNonEmptyFinite[A any] struct {
	base[A]
}

func asImmutableNonEmptyFinite[A any](r rep[A]) ImmutableNonEmptyFinite[A] {
	return ImmutableNonEmptyFinite[A]{base[A]{r}}
}

func (ImmutableNonEmptyFinite[A]) bounded()   {}
func (ImmutableNonEmptyFinite[A]) nonEmpty()  {}
func (ImmutableNonEmptyFinite[A]) immutable() {}

// ToFinite returns s itself.
func (s ImmutableNonEmptyFinite[A]) ToFinite() (ImmutableNonEmptyFinite[A], bool) { return s, true }

// ToNonEmpty returns s itself.
func (s ImmutableNonEmptyFinite[A]) ToNonEmpty() (ImmutableNonEmptyFinite[A], bool) { return s, true }

// Take returns at most the first n elements. It panics if n < 0.
func (s ImmutableNonEmptyFinite[A]) Take(n int) ImmutableFinite[A] {
	return asImmutableFinite(s.r.take(n))
}

// Drop skips the first n elements. It panics if n < 0.
func (s ImmutableNonEmptyFinite[A]) Drop(n int) ImmutableFinite[A] {
	return asImmutableFinite(s.r.drop(n))
}

// Filter keeps the elements satisfying pred.
func (s ImmutableNonEmptyFinite[A]) Filter(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.filter(pred))
}

// TakeWhile keeps the longest prefix satisfying pred.
func (s ImmutableNonEmptyFinite[A]) TakeWhile(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.takeWhile(pred))
}

// DropWhile skips the longest prefix satisfying pred.
func (s ImmutableNonEmptyFinite[A]) DropWhile(pred func(A) bool) ImmutableFinite[A] {
	return asImmutableFinite(s.r.dropWhile(pred))
}

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s ImmutableNonEmptyFinite[A]) Span(pred func(A) bool) (ImmutableFinite[A], ImmutableFinite[A]) {
	prefix, rest := s.r.span(pred)
	return asImmutableFinite(prefix), asImmutableFinite(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s ImmutableNonEmptyFinite[A]) Partition(pred func(A) bool) (ImmutableFinite[A], ImmutableFinite[A]) {
	in, out := s.r.partition(pred)
	return asImmutableFinite(in), asImmutableFinite(out)
}

// Append returns s followed by v.
func (s ImmutableNonEmptyFinite[A]) Append(v A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.appended(v))
}

// Prepend returns v followed by s.
func (s ImmutableNonEmptyFinite[A]) Prepend(v A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.prepended(v))
}

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s ImmutableNonEmptyFinite[A]) Concat(other Sequence[A]) NonEmpty[A] {
	return asNonEmpty(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatFinite returns s followed by other.
func (s ImmutableNonEmptyFinite[A]) ConcatFinite(other FiniteSequence[A]) NonEmptyFinite[A] {
	return asNonEmptyFinite(s.r.concat(unwrapArg("ConcatFinite", other)))
}

// ConcatImmutable returns s followed by other.
func (s ImmutableNonEmptyFinite[A]) ConcatImmutable(other ImmutableSequence[A]) ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.concat(unwrapArg("ConcatImmutable", other)))
}

// ConcatImmutableFinite returns s followed by other.
func (s ImmutableNonEmptyFinite[A]) ConcatImmutableFinite(other ImmutableFiniteSequence[A]) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.concat(unwrapArg("ConcatImmutableFinite", other)))
}

// Intersperse puts sep between adjacent elements.
func (s ImmutableNonEmptyFinite[A]) Intersperse(sep A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.intersperse(sep))
}

// PrependAll puts sep before every element.
func (s ImmutableNonEmptyFinite[A]) PrependAll(sep A) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.prependAll(sep))
}

// Size returns the number of elements, iterating only when the length is
// not known.
func (s ImmutableNonEmptyFinite[A]) Size() int { return s.r.size() }

// ToSlice returns the elements in a new slice.
func (s ImmutableNonEmptyFinite[A]) ToSlice() []A { return s.r.toSlice() }

// MarshalJSON encodes the elements as a JSON array.
func (s ImmutableNonEmptyFinite[A]) MarshalJSON() ([]byte, error) {
	return s.r.marshalJSON()
}

// Reverse yields the elements last to first.
func (s ImmutableNonEmptyFinite[A]) Reverse() ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.reverse())
}

// DistinctBy keeps the first element for every key. Keys must be
// comparable; see [Distinct] for comparable elements.
func (s ImmutableNonEmptyFinite[A]) DistinctBy(key func(A) any) ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.distinctBy(key))
}

// Cycle repeats s forever.
func (s ImmutableNonEmptyFinite[A]) Cycle() ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r.cycle())
}

// Head returns the first element.
func (s ImmutableNonEmptyFinite[A]) Head() A { return s.r.head() }

// Tail returns every element after the first.
func (s ImmutableNonEmptyFinite[A]) Tail() ImmutableFinite[A] { return asImmutableFinite(s.r.tail()) }

// Last returns the final element.
func (s ImmutableNonEmptyFinite[A]) Last() A { return s.r.last() }

// Init returns every element except the last.
func (s ImmutableNonEmptyFinite[A]) Init() ImmutableFinite[A] { return asImmutableFinite(s.r.init()) }

// ReduceLeft combines the elements from the left: op(op(x0, x1), x2)...
func (s ImmutableNonEmptyFinite[A]) ReduceLeft(op func(A, A) A) A { return s.r.reduceLeft(op) }

// ReduceRight combines the elements from the right: op(x0, op(x1, x2))...
func (s ImmutableNonEmptyFinite[A]) ReduceRight(op func(A, A) A) A { return s.r.reduceRight(op) }

// Seq widens s to Seq[A].
func (s ImmutableNonEmptyFinite[A]) Seq() Seq[A] { return asSeq(s.r) }

// Finite widens s to Finite[A].
func (s ImmutableNonEmptyFinite[A]) Finite() Finite[A] { return asFinite(s.r) }

// NonEmpty widens s to NonEmpty[A].
func (s ImmutableNonEmptyFinite[A]) NonEmpty() NonEmpty[A] { return asNonEmpty(s.r) }

// Immutable widens s to Immutable[A].
func (s ImmutableNonEmptyFinite[A]) Immutable() Immutable[A] { return asImmutable(s.r) }

// NonEmptyFinite widens s to NonEmptyFinite[A].
func (s ImmutableNonEmptyFinite[A]) NonEmptyFinite() NonEmptyFinite[A] { return asNonEmptyFinite(s.r) }

// ImmutableFinite widens s to ImmutableFinite[A].
func (s ImmutableNonEmptyFinite[A]) ImmutableFinite() ImmutableFinite[A] {
	return asImmutableFinite(s.r)
}

// ImmutableNonEmpty widens s to ImmutableNonEmpty[A].
func (s ImmutableNonEmptyFinite[A]) ImmutableNonEmpty() ImmutableNonEmpty[A] {
	return asImmutableNonEmpty(s.r)
}
