package seqs

// NonEmpty is a sequence known to hold at least one element. It may be
// infinite.
type NonEmpty[A any] struct {
	base[A]
}

func asNonEmpty[A any](r rep[A]) NonEmpty[A] {
	return NonEmpty[A]{base[A]{r}}
}

func (NonEmpty[A]) nonEmpty() {}

// ToFinite returns s as NonEmptyFinite[A] when boundedness is proven by the tag or a
// known length. It never iterates.
func (s NonEmpty[A]) ToFinite() (NonEmptyFinite[A], bool) {
	r, ok := s.r.bounded()
	return asNonEmptyFinite(r), ok
}

// ToNonEmpty returns s itself.
func (s NonEmpty[A]) ToNonEmpty() (NonEmpty[A], bool) { return s, true }

// Take returns at most the first n elements. It panics if n < 0.
func (s NonEmpty[A]) Take(n int) Finite[A] { return asFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s NonEmpty[A]) Drop(n int) Seq[A] { return asSeq(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s NonEmpty[A]) Filter(pred func(A) bool) Seq[A] { return asSeq(s.r.filter(pred)) }

// TakeWhile keeps the longest prefix satisfying pred.
func (s NonEmpty[A]) TakeWhile(pred func(A) bool) Seq[A] { return asSeq(s.r.takeWhile(pred)) }

// DropWhile skips the longest prefix satisfying pred.
func (s NonEmpty[A]) DropWhile(pred func(A) bool) Seq[A] { return asSeq(s.r.dropWhile(pred)) }

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s NonEmpty[A]) Span(pred func(A) bool) (Seq[A], Seq[A]) {
	prefix, rest := s.r.span(pred)
	return asSeq(prefix), asSeq(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s NonEmpty[A]) Partition(pred func(A) bool) (Seq[A], Seq[A]) {
	in, out := s.r.partition(pred)
	return asSeq(in), asSeq(out)
}

// Append returns s followed by v.
func (s NonEmpty[A]) Append(v A) NonEmpty[A] { return asNonEmpty(s.r.appended(v)) }

// Prepend returns v followed by s.
func (s NonEmpty[A]) Prepend(v A) NonEmpty[A] { return asNonEmpty(s.r.prepended(v)) }

// Concat returns s followed by other.
func (s NonEmpty[A]) Concat(other Sequence[A]) NonEmpty[A] {
	return asNonEmpty(s.r.concat(unwrapArg("Concat", other)))
}

// Intersperse puts sep between adjacent elements.
func (s NonEmpty[A]) Intersperse(sep A) NonEmpty[A] { return asNonEmpty(s.r.intersperse(sep)) }

// PrependAll puts sep before every element.
func (s NonEmpty[A]) PrependAll(sep A) NonEmpty[A] { return asNonEmpty(s.r.prependAll(sep)) }

// Head returns the first element.
func (s NonEmpty[A]) Head() A { return s.r.head() }

// Tail returns every element after the first.
func (s NonEmpty[A]) Tail() Seq[A] { return asSeq(s.r.tail()) }

// Seq widens s to Seq[A].
func (s NonEmpty[A]) Seq() Seq[A] { return asSeq(s.r) }
