package seqs

// NonEmptyFinite is a terminating sequence with at least one element, the
// only kind that can be reduced without a seed.
type NonEmptyFinite[A any] struct {
	base[A]
}

func asNonEmptyFinite[A any](r rep[A]) NonEmptyFinite[A] {
	return NonEmptyFinite[A]{base[A]{r}}
}

func (NonEmptyFinite[A]) bounded()  {}
func (NonEmptyFinite[A]) nonEmpty() {}

// ToFinite returns s itself.
func (s NonEmptyFinite[A]) ToFinite() (NonEmptyFinite[A], bool) { return s, true }

// ToNonEmpty returns s itself.
func (s NonEmptyFinite[A]) ToNonEmpty() (NonEmptyFinite[A], bool) { return s, true }

// Take returns at most the first n elements. It panics if n < 0.
func (s NonEmptyFinite[A]) Take(n int) Finite[A] { return asFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s NonEmptyFinite[A]) Drop(n int) Finite[A] { return asFinite(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s NonEmptyFinite[A]) Filter(pred func(A) bool) Finite[A] { return asFinite(s.r.filter(pred)) }

// TakeWhile keeps the longest prefix satisfying pred.
func (s NonEmptyFinite[A]) TakeWhile(pred func(A) bool) Finite[A] {
	return asFinite(s.r.takeWhile(pred))
}

// DropWhile skips the longest prefix satisfying pred.
func (s NonEmptyFinite[A]) DropWhile(pred func(A) bool) Finite[A] {
	return asFinite(s.r.dropWhile(pred))
}

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s NonEmptyFinite[A]) Span(pred func(A) bool) (Finite[A], Finite[A]) {
	prefix, rest := s.r.span(pred)
	return asFinite(prefix), asFinite(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s NonEmptyFinite[A]) Partition(pred func(A) bool) (Finite[A], Finite[A]) {
	in, out := s.r.partition(pred)
	return asFinite(in), asFinite(out)
}

// Append returns s followed by v.
func (s NonEmptyFinite[A]) Append(v A) NonEmptyFinite[A] { return asNonEmptyFinite(s.r.appended(v)) }

// Prepend returns v followed by s.
func (s NonEmptyFinite[A]) Prepend(v A) NonEmptyFinite[A] { return asNonEmptyFinite(s.r.prepended(v)) }

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s NonEmptyFinite[A]) Concat(other Sequence[A]) NonEmpty[A] {
	return asNonEmpty(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatFinite returns s followed by other.
func (s NonEmptyFinite[A]) ConcatFinite(other FiniteSequence[A]) NonEmptyFinite[A] {
	return asNonEmptyFinite(s.r.concat(unwrapArg("ConcatFinite", other)))
}

// Intersperse puts sep between adjacent elements.
func (s NonEmptyFinite[A]) Intersperse(sep A) NonEmptyFinite[A] {
	return asNonEmptyFinite(s.r.intersperse(sep))
}

// PrependAll puts sep before every element.
func (s NonEmptyFinite[A]) PrependAll(sep A) NonEmptyFinite[A] {
	return asNonEmptyFinite(s.r.prependAll(sep))
}

// Size returns the number of elements, iterating only when the length is
// not known.
func (s NonEmptyFinite[A]) Size() int { return s.r.size() }

// ToSlice returns the elements in a new slice.
func (s NonEmptyFinite[A]) ToSlice() []A { return s.r.toSlice() }

// MarshalJSON encodes the elements as a JSON array.
func (s NonEmptyFinite[A]) MarshalJSON() ([]byte, error) {
	return s.r.marshalJSON()
}

// Reverse yields the elements last to first.
func (s NonEmptyFinite[A]) Reverse() NonEmptyFinite[A] { return asNonEmptyFinite(s.r.reverse()) }

// DistinctBy keeps the first element for every key. Keys must be
// comparable; see [Distinct] for comparable elements.
func (s NonEmptyFinite[A]) DistinctBy(key func(A) any) NonEmptyFinite[A] {
	return asNonEmptyFinite(s.r.distinctBy(key))
}

// Cycle repeats s forever.
func (s NonEmptyFinite[A]) Cycle() NonEmpty[A] { return asNonEmpty(s.r.cycle()) }

// Copy takes an eager, immutable copy of the elements.
func (s NonEmptyFinite[A]) Copy() ImmutableNonEmptyFinite[A] {
	return asImmutableNonEmptyFinite(s.r.copied())
}

// Head returns the first element.
func (s NonEmptyFinite[A]) Head() A { return s.r.head() }

// Tail returns every element after the first.
func (s NonEmptyFinite[A]) Tail() Finite[A] { return asFinite(s.r.tail()) }

// Last returns the final element.
func (s NonEmptyFinite[A]) Last() A { return s.r.last() }

// Init returns every element except the last.
func (s NonEmptyFinite[A]) Init() Finite[A] { return asFinite(s.r.init()) }

// ReduceLeft combines the elements from the left: op(op(x0, x1), x2)...
func (s NonEmptyFinite[A]) ReduceLeft(op func(A, A) A) A { return s.r.reduceLeft(op) }

// ReduceRight combines the elements from the right: op(x0, op(x1, x2))...
func (s NonEmptyFinite[A]) ReduceRight(op func(A, A) A) A { return s.r.reduceRight(op) }

// Seq widens s to Seq[A].
func (s NonEmptyFinite[A]) Seq() Seq[A] { return asSeq(s.r) }

// Finite widens s to Finite[A].
func (s NonEmptyFinite[A]) Finite() Finite[A] { return asFinite(s.r) }

// NonEmpty widens s to NonEmpty[A].
func (s NonEmptyFinite[A]) NonEmpty() NonEmpty[A] { return asNonEmpty(s.r) }
