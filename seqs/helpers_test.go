package seqs_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/hasbyte1/go-seqs/seqs"
)

// counter is an opaque, infinite source 1, 2, 3, ... that records how many
// elements were pulled across all traversals.
type counter struct {
	pulled int
}

func (c *counter) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; ; i++ {
			c.pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// opaque returns a source of the given items that reveals nothing about its
// length.
func opaque[A any](items ...A) seqs.Func[A] {
	return func(yield func(A) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

func rangeInts(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func collect[A any](s seqs.Iterable[A]) []A {
	var out []A
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// assertPanicsWith checks that fn panics with an error matching target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic value %v does not match %v", r, target)
		}
	}()
	fn()
}
