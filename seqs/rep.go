package seqs

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-seqs/collections"
	"github.com/hasbyte1/go-seqs/internal/prim"
)

// rep is the record shared by every representation: a source and the
// capabilities proven for it. The representation types differ only in the
// methods their static type allows.
type rep[A any] struct {
	src  prim.Source[A]
	caps Caps
	// cell caches the head taken by uncons or supplied by a cons
	// constructor. Traversals still go through src.
	cell *cell[A]
}

type cell[A any] struct {
	head     A
	tail     prim.Source[A]
	tailCaps Caps
}

func emptyRep[A any]() rep[A] {
	return rep[A]{src: prim.Empty[A](), caps: CapBounded | CapImmutable}
}

func singletonRep[A any](v A) rep[A] {
	return rep[A]{src: prim.Single(v), caps: CapBounded | CapNonEmpty | CapImmutable}
}

// consRep puts head in front of a tail with the given caps.
func consRep[A any](head A, tail prim.Source[A], tailCaps Caps) rep[A] {
	if tail == nil || prim.IsEmpty(tail) {
		r := singletonRep(head)
		r.caps = tailCaps | CapNonEmpty
		return r
	}
	return rep[A]{
		src:  prim.Cons(head, tail),
		caps: tailCaps | CapNonEmpty,
		cell: &cell[A]{head: head, tail: tail, tailCaps: tailCaps},
	}
}

// collectionRep wraps an immutable copy, choosing the canonical forms for
// zero and one elements.
func collectionRep[A any](c *collections.Collection[A]) rep[A] {
	switch c.Len() {
	case 0:
		return emptyRep[A]()
	case 1:
		v, _ := c.First()
		return singletonRep(v)
	}
	return rep[A]{src: c, caps: CapBounded | CapNonEmpty | CapImmutable}
}

// copied returns an immutable rep holding the elements of r. r must be
// bounded; an immutable r is returned as is.
func (r rep[A]) copied() rep[A] {
	if r.caps.Has(CapImmutable) {
		return r
	}
	if r.src == nil {
		return emptyRep[A]()
	}
	return collectionRep(collections.Collect(r.src.All()))
}

func (r rep[A]) source() prim.Source[A] {
	if r.src == nil {
		return prim.Empty[A]()
	}
	return r.src
}

func (r rep[A]) all() iter.Seq[A] {
	return r.source().All()
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

func (r rep[A]) isEmpty() bool {
	if r.caps.Has(CapNonEmpty) {
		return false
	}
	if n, ok := prim.Len(r.source()); ok {
		return n == 0
	}
	_, ok := prim.First(r.source())
	return !ok
}

func (r rep[A]) head() A {
	if r.cell != nil {
		return r.cell.head
	}
	v, ok := prim.First(r.source())
	if !ok {
		panic(fmt.Errorf("%w: Head", ErrCapabilityViolation))
	}
	return v
}

func (r rep[A]) last() A {
	v, ok := prim.Last(r.source())
	if !ok {
		panic(fmt.Errorf("%w: Last", ErrCapabilityViolation))
	}
	return v
}

func (r rep[A]) size() int {
	return prim.Count(r.source())
}

func (r rep[A]) toSlice() []A {
	return prim.Collect(r.source())
}

func (r rep[A]) marshalJSON() ([]byte, error) {
	c, ok := r.src.(*collections.Collection[A])
	if !ok {
		c = collections.Collect(r.all())
	}
	return c.MarshalJSON()
}

func (r rep[A]) find(pred func(A) bool) (A, bool) {
	if pred == nil {
		panic(nilFunc("Find"))
	}
	for v := range r.all() {
		if pred(v) {
			return v, true
		}
	}
	var zero A
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Promotion
// ─────────────────────────────────────────────────────────────────────────────

// bounded proves boundedness from the tag or from a known length. It never
// iterates.
func (r rep[A]) bounded() (rep[A], bool) {
	if r.caps.Has(CapBounded) {
		return r, true
	}
	if _, ok := prim.Len(r.source()); ok {
		r.caps |= CapBounded
		return r, true
	}
	return rep[A]{}, false
}

// uncons proves non-emptiness. Without a tag it pulls one element from a
// fresh traversal and keeps it as the head; the tail is a drop view over
// the original source.
func (r rep[A]) uncons() (rep[A], bool) {
	if r.caps.Has(CapNonEmpty) {
		return r, true
	}
	src := r.source()
	if n, ok := prim.Len(src); ok && n == 0 {
		return rep[A]{}, false
	}
	head, ok := prim.First(src)
	if !ok {
		return rep[A]{}, false
	}
	return rep[A]{
		src:  src,
		caps: r.caps | CapNonEmpty,
		cell: &cell[A]{head: head, tail: prim.Drop(src, 1), tailCaps: r.caps},
	}, true
}

func (r rep[A]) tail() rep[A] {
	if r.cell != nil {
		return rep[A]{src: r.cell.tail, caps: r.cell.tailCaps}
	}
	return rep[A]{src: prim.Drop(r.source(), 1), caps: r.caps &^ CapNonEmpty}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

func (r rep[A]) take(n int) rep[A] {
	checkCount("Take", n)
	if n == 0 {
		return emptyRep[A]()
	}
	if c, ok := r.src.(*collections.Collection[A]); ok {
		return rep[A]{src: c.Slice(0, n), caps: r.caps}
	}
	return rep[A]{src: prim.Take(r.source(), n), caps: r.caps | CapBounded}
}

func (r rep[A]) drop(n int) rep[A] {
	checkCount("Drop", n)
	if n == 0 {
		return r
	}
	if n == 1 && r.cell != nil {
		return r.tail()
	}
	if c, ok := r.src.(*collections.Collection[A]); ok {
		if n >= c.Len() {
			return emptyRep[A]()
		}
		return rep[A]{src: c.Slice(n, c.Len()), caps: r.caps &^ CapNonEmpty}
	}
	return rep[A]{src: prim.Drop(r.source(), n), caps: r.caps &^ CapNonEmpty}
}

func (r rep[A]) filter(pred func(A) bool) rep[A] {
	if pred == nil {
		panic(nilFunc("Filter"))
	}
	return rep[A]{src: prim.Filter(r.source(), pred), caps: r.caps &^ CapNonEmpty}
}

func (r rep[A]) takeWhile(pred func(A) bool) rep[A] {
	if pred == nil {
		panic(nilFunc("TakeWhile"))
	}
	return rep[A]{src: prim.TakeWhile(r.source(), pred), caps: r.caps &^ CapNonEmpty}
}

func (r rep[A]) dropWhile(pred func(A) bool) rep[A] {
	if pred == nil {
		panic(nilFunc("DropWhile"))
	}
	return rep[A]{src: prim.DropWhile(r.source(), pred), caps: r.caps &^ CapNonEmpty}
}

func (r rep[A]) span(pred func(A) bool) (rep[A], rep[A]) {
	if pred == nil {
		panic(nilFunc("Span"))
	}
	return r.takeWhile(pred), r.dropWhile(pred)
}

func (r rep[A]) partition(pred func(A) bool) (rep[A], rep[A]) {
	if pred == nil {
		panic(nilFunc("Partition"))
	}
	return r.filter(pred), r.filter(func(v A) bool { return !pred(v) })
}

func (r rep[A]) appended(v A) rep[A] {
	src := r.source()
	if prim.IsEmpty(src) {
		s := singletonRep(v)
		s.caps = r.caps | CapNonEmpty
		return s
	}
	if x, ok := prim.SingleValue(src); ok {
		return rep[A]{src: prim.Slice([]A{x, v}), caps: r.caps | CapNonEmpty}
	}
	return rep[A]{src: prim.Snoc(src, v), caps: r.caps | CapNonEmpty}
}

func (r rep[A]) prepended(v A) rep[A] {
	return consRep(v, r.source(), r.caps)
}

func (r rep[A]) concat(other rep[A]) rep[A] {
	return rep[A]{
		src:  prim.Concat(r.source(), other.source()),
		caps: concatCaps(r.caps, other.caps),
	}
}

func (r rep[A]) intersperse(sep A) rep[A] {
	return rep[A]{src: prim.Intersperse(r.source(), sep), caps: r.caps}
}

func (r rep[A]) prependAll(sep A) rep[A] {
	return rep[A]{src: prim.PrependAll(r.source(), sep), caps: r.caps}
}

func (r rep[A]) reverse() rep[A] {
	return rep[A]{src: prim.Reverse(r.source()), caps: r.caps}
}

func (r rep[A]) distinctBy(key func(A) any) rep[A] {
	if key == nil {
		panic(nilFunc("DistinctBy"))
	}
	return rep[A]{src: prim.Distinct(r.source(), key), caps: r.caps}
}

// cycle repeats a bounded r forever. An empty r stays empty. When neither
// the tag nor a known length tells the cases apart, the traversal finds out
// and the result is not tagged non-empty.
func (r rep[A]) cycle() rep[A] {
	src := r.source()
	caps := r.caps &^ CapBounded
	if !caps.Has(CapNonEmpty) {
		if n, ok := prim.Len(src); ok {
			if n == 0 {
				return emptyRep[A]()
			}
			caps |= CapNonEmpty
		}
	}
	return rep[A]{src: prim.Cycle(src), caps: caps}
}

func (r rep[A]) init() rep[A] {
	return rep[A]{src: prim.Init(r.source()), caps: r.caps &^ CapNonEmpty}
}

func (r rep[A]) reduceLeft(op func(A, A) A) A {
	if op == nil {
		panic(nilFunc("ReduceLeft"))
	}
	var acc A
	first := true
	for v := range r.all() {
		if first {
			acc, first = v, false
			continue
		}
		acc = op(acc, v)
	}
	if first {
		panic(fmt.Errorf("%w: ReduceLeft", ErrCapabilityViolation))
	}
	return acc
}

func (r rep[A]) reduceRight(op func(A, A) A) A {
	if op == nil {
		panic(nilFunc("ReduceRight"))
	}
	return r.reverse().reduceLeft(func(acc, v A) A { return op(v, acc) })
}
