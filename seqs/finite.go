package seqs

// Finite is a sequence whose traversals are known to terminate, so the
// operations that must see every element (Size, Reverse, DistinctBy,
// Cycle, MarshalJSON) are available.
type Finite[A any] struct {
	base[A]
}

func asFinite[A any](r rep[A]) Finite[A] {
	return Finite[A]{base[A]{r}}
}

func (Finite[A]) bounded() {}

// ToFinite returns s itself.
func (s Finite[A]) ToFinite() (Finite[A], bool) { return s, true }

// ToNonEmpty returns s as NonEmptyFinite[A] when it has an element. Unless the tag
// already says so, one element is pulled from a fresh traversal and kept
// as the head.
func (s Finite[A]) ToNonEmpty() (NonEmptyFinite[A], bool) {
	r, ok := s.r.uncons()
	return asNonEmptyFinite(r), ok
}

// Take returns at most the first n elements. It panics if n < 0.
func (s Finite[A]) Take(n int) Finite[A] { return asFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s Finite[A]) Drop(n int) Finite[A] { return asFinite(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s Finite[A]) Filter(pred func(A) bool) Finite[A] { return asFinite(s.r.filter(pred)) }

// TakeWhile keeps the longest prefix satisfying pred.
func (s Finite[A]) TakeWhile(pred func(A) bool) Finite[A] { return asFinite(s.r.takeWhile(pred)) }

// DropWhile skips the longest prefix satisfying pred.
func (s Finite[A]) DropWhile(pred func(A) bool) Finite[A] { return asFinite(s.r.dropWhile(pred)) }

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s Finite[A]) Span(pred func(A) bool) (Finite[A], Finite[A]) {
	prefix, rest := s.r.span(pred)
	return asFinite(prefix), asFinite(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s Finite[A]) Partition(pred func(A) bool) (Finite[A], Finite[A]) {
	in, out := s.r.partition(pred)
	return asFinite(in), asFinite(out)
}

// Append returns s followed by v.
func (s Finite[A]) Append(v A) NonEmptyFinite[A] { return asNonEmptyFinite(s.r.appended(v)) }

// Prepend returns v followed by s.
func (s Finite[A]) Prepend(v A) NonEmptyFinite[A] { return asNonEmptyFinite(s.r.prepended(v)) }

// Concat returns s followed by other.
//
// The result is tagged bounded and immutable when both inputs are and
// non-empty when either is. The static type only keeps non-emptiness;
// the typed variants keep the rest.
func (s Finite[A]) Concat(other Sequence[A]) Seq[A] {
	return asSeq(s.r.concat(unwrapArg("Concat", other)))
}

// ConcatFinite returns s followed by other.
func (s Finite[A]) ConcatFinite(other FiniteSequence[A]) Finite[A] {
	return asFinite(s.r.concat(unwrapArg("ConcatFinite", other)))
}

// Intersperse puts sep between adjacent elements.
func (s Finite[A]) Intersperse(sep A) Finite[A] { return asFinite(s.r.intersperse(sep)) }

// PrependAll puts sep before every element.
func (s Finite[A]) PrependAll(sep A) Finite[A] { return asFinite(s.r.prependAll(sep)) }

// Size returns the number of elements, iterating only when the length is
// not known.
func (s Finite[A]) Size() int { return s.r.size() }

// ToSlice returns the elements in a new slice.
func (s Finite[A]) ToSlice() []A { return s.r.toSlice() }

// MarshalJSON encodes the elements as a JSON array.
func (s Finite[A]) MarshalJSON() ([]byte, error) {
	return s.r.marshalJSON()
}

// Reverse yields the elements last to first.
func (s Finite[A]) Reverse() Finite[A] { return asFinite(s.r.reverse()) }

// DistinctBy keeps the first element for every key. Keys must be
// comparable; see [Distinct] for comparable elements.
func (s Finite[A]) DistinctBy(key func(A) any) Finite[A] { return asFinite(s.r.distinctBy(key)) }

// Cycle repeats s forever. Cycling an empty sequence yields nothing. Nothing
// is pulled until the result is traversed, so when s is neither tagged
// non-empty nor of known length the result is not tagged non-empty either.
func (s Finite[A]) Cycle() Seq[A] { return asSeq(s.r.cycle()) }

// Copy takes an eager, immutable copy of the elements.
func (s Finite[A]) Copy() ImmutableFinite[A] { return asImmutableFinite(s.r.copied()) }

// Seq widens s to Seq[A].
func (s Finite[A]) Seq() Seq[A] { return asSeq(s.r) }
