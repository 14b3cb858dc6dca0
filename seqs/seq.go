package seqs

// Seq is a sequence with no proven capabilities: it may be infinite, empty,
// or backed by a source that changes between traversals. It is the result
// of [Enhance] on an opaque source and of the operations that lose every
// guarantee. Its runtime tag ([Seq.Caps]) can still record capabilities
// proven dynamically; [Seq.ToFinite] and [Seq.ToNonEmpty] recover them.
//
// All operations are lazy. Nothing is read from the source until the
// result is traversed, with the single exception of [Seq.ToNonEmpty],
// which may pull one element to prove non-emptiness.
type Seq[A any] struct {
	base[A]
}

func asSeq[A any](r rep[A]) Seq[A] {
	return Seq[A]{base[A]{r}}
}

// ToFinite returns s as Finite[A] when boundedness is proven by the tag or a
// known length. It never iterates.
func (s Seq[A]) ToFinite() (Finite[A], bool) {
	r, ok := s.r.bounded()
	return asFinite(r), ok
}

// ToNonEmpty returns s as NonEmpty[A] when it has an element. Unless the tag
// already says so, one element is pulled from a fresh traversal and kept
// as the head.
func (s Seq[A]) ToNonEmpty() (NonEmpty[A], bool) {
	r, ok := s.r.uncons()
	return asNonEmpty(r), ok
}

// Take returns at most the first n elements. It panics if n < 0.
func (s Seq[A]) Take(n int) Finite[A] { return asFinite(s.r.take(n)) }

// Drop skips the first n elements. It panics if n < 0.
func (s Seq[A]) Drop(n int) Seq[A] { return asSeq(s.r.drop(n)) }

// Filter keeps the elements satisfying pred.
func (s Seq[A]) Filter(pred func(A) bool) Seq[A] { return asSeq(s.r.filter(pred)) }

// TakeWhile keeps the longest prefix satisfying pred.
func (s Seq[A]) TakeWhile(pred func(A) bool) Seq[A] { return asSeq(s.r.takeWhile(pred)) }

// DropWhile skips the longest prefix satisfying pred.
func (s Seq[A]) DropWhile(pred func(A) bool) Seq[A] { return asSeq(s.r.dropWhile(pred)) }

// Span splits s at the first element failing pred: the prefix and the
// rest.
func (s Seq[A]) Span(pred func(A) bool) (Seq[A], Seq[A]) {
	prefix, rest := s.r.span(pred)
	return asSeq(prefix), asSeq(rest)
}

// Partition returns the elements satisfying pred and those that do not.
func (s Seq[A]) Partition(pred func(A) bool) (Seq[A], Seq[A]) {
	in, out := s.r.partition(pred)
	return asSeq(in), asSeq(out)
}

// Append returns s followed by v.
func (s Seq[A]) Append(v A) NonEmpty[A] { return asNonEmpty(s.r.appended(v)) }

// Prepend returns v followed by s.
func (s Seq[A]) Prepend(v A) NonEmpty[A] { return asNonEmpty(s.r.prepended(v)) }

// Concat returns s followed by other.
func (s Seq[A]) Concat(other Sequence[A]) Seq[A] {
	return asSeq(s.r.concat(unwrapArg("Concat", other)))
}

// Intersperse puts sep between adjacent elements.
func (s Seq[A]) Intersperse(sep A) Seq[A] { return asSeq(s.r.intersperse(sep)) }

// PrependAll puts sep before every element.
func (s Seq[A]) PrependAll(sep A) Seq[A] { return asSeq(s.r.prependAll(sep)) }
