// Package seqs provides lazy, re-iterable sequences that carry proof of
// three capabilities: whether they are bounded, non-empty and immutable.
//
// # Overview
//
// A sequence is built from any source with an All() iter.Seq[A] method and
// transformed with combinators that do no work until a traversal runs:
//
//	evens := seqs.FromSlice(nums).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(3)
//	for n := range evens.All() { ... }
//
// # Capabilities
//
// Every sequence value has a runtime tag, [Caps], made of:
//
//   - [CapBounded]: traversals terminate
//   - [CapNonEmpty]: traversals yield at least one element
//   - [CapImmutable]: traversals always yield the same elements
//
// The static type mirrors the tag where Go can express it. There is one
// representation per combination: [Seq], [Finite], [NonEmpty], [Immutable],
// [NonEmptyFinite], [ImmutableFinite], [ImmutableNonEmpty] and
// [ImmutableNonEmptyFinite]. Operations that need a capability only exist
// on the types that have it, so Reverse is a method of [Finite] but not of
// [Seq], and Head is a method of [NonEmpty] but not of [Finite].
//
// Arguments are typed with the capability interfaces ([Sequence],
// [FiniteSequence], [NonEmptySequence], ...). A stronger representation
// satisfies every weaker interface, and each representation has widening
// methods (Seq(), Finite(), ...) for the rare case a concrete weaker type is
// needed.
//
// # Inference
//
// The capabilities of a result are a function of the capabilities of the
// inputs. Take always bounds, Append always makes non-empty, Filter forgets
// non-emptiness, Concat is bounded when both inputs are and non-empty when
// either is, ZipWith is bounded when either input is. The runtime tag is
// computed exactly; the static type keeps as much of it as the receiver's
// type allows. ToFinite and ToNonEmpty recover what the tag knows:
//
//	s := seqs.Enhance(src)             // Seq: nothing known statically
//	if f, ok := s.ToFinite(); ok {     // tag or known length says bounded
//	    fmt.Println(f.Reverse().ToSlice())
//	}
//
// ToFinite never consumes input. ToNonEmpty (and [TryNonEmpty], [Uncons])
// pulls at most one element when the tag does not settle the question, and
// keeps that element as the head.
//
// # Trust boundaries
//
// Boundedness of an opaque source cannot be proven without traversing it,
// so [FiniteOf] takes the caller's word for it. Non-emptiness is never
// assumed except through [UnsafeNonEmpty] and [UnsafeNonEmptyFinite], which
// panic with [ErrCapabilityViolation] on the first traversal that finds the
// source empty.
//
// Crossing into immutability copies: [ImmutableOf], [CopyFrom], [CopySlice]
// and [CopyN] copy bounded sources into a collections.Collection. Copying
// a sequence that is already immutable returns it unchanged.
//
// # Type-changing operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [ZipWith], [Zip], [Cross], [Tails], [Inits], [Slide],
// [MagnetizeBy], [FoldLeft] and [FoldRight]. Each has variants named after
// the capabilities they keep in the static type, e.g. [MapFinite] or
// [SlideImmutableFinite].
//
// # Stack safety
//
// Building a sequence from tens of thousands of Append, Prepend, Concat,
// Drop, Filter or Map calls is fine: concatenations are walked with an
// explicit stack, and element-wise stages are fused into one flat list
// evaluated in a loop. [FoldRight] returns a [Lazy] that is forced by a
// trampoline.
//
// # Errors
//
// Invalid arguments (negative counts, a window smaller than one, nil
// functions or sources) are programming errors and panic at the call with
// an error wrapping one of the sentinels in errors.go. [Iterator.Remove]
// returns [ErrMutationNotSupported]: sequences are never modified through
// their iterators.
//
// # Concurrency
//
// Sequences are values and may be shared, but a single traversal or
// [Iterator] must not be used from more than one goroutine.
package seqs
