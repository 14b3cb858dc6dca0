package seqs

import "iter"

// Iterator is a protected pull traversal. It exposes reading only: the
// removal capability of whatever iterator sits underneath is never
// reachable, and Remove always reports [ErrMutationNotSupported].
//
// An Iterator built over an iter.Seq holds a coroutine; call Stop when
// abandoning it before exhaustion.
type Iterator[A any] struct {
	next   func() (A, bool)
	stop   func()
	peeked bool
	value  A
	done   bool
}

// Protect returns an Iterator pulling from seq. The coroutine behind it
// starts on the first call to HasNext or Next.
func Protect[A any](seq iter.Seq[A]) *Iterator[A] {
	if seq == nil {
		panic(nilSource("Protect"))
	}
	it := &Iterator[A]{stop: func() {}}
	it.next = func() (A, bool) {
		next, stop := iter.Pull(seq)
		it.next, it.stop = next, stop
		return next()
	}
	return it
}

// ProtectPull wraps a pull function pair such as the one returned by
// iter.Pull. stop may be nil.
func ProtectPull[A any](next func() (A, bool), stop func()) *Iterator[A] {
	if next == nil {
		panic(nilFunc("ProtectPull"))
	}
	if stop == nil {
		stop = func() {}
	}
	return &Iterator[A]{next: next, stop: stop}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[A]) HasNext() bool {
	if it.peeked {
		return true
	}
	if it.done {
		return false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		return false
	}
	it.value, it.peeked = v, true
	return true
}

// Next returns the next element, or false once the traversal is exhausted.
func (it *Iterator[A]) Next() (A, bool) {
	if !it.HasNext() {
		var zero A
		return zero, false
	}
	v := it.value
	var zero A
	it.value, it.peeked = zero, false
	return v, true
}

// Remove always returns [ErrMutationNotSupported].
func (it *Iterator[A]) Remove() error {
	return ErrMutationNotSupported
}

// Stop releases the underlying traversal. Later calls to HasNext report
// false.
func (it *Iterator[A]) Stop() {
	it.done = true
	it.peeked = false
	it.stop()
}

// All drains the iterator as a single-use iter.Seq.
func (it *Iterator[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
