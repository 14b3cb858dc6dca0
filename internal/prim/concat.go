package prim

import "iter"

// concat is a node of a concatenation tree. n is the cached total length,
// or -1 when either side's length is unknown.
type concat[A any] struct {
	left, right Source[A]
	n           int
}

// Concat returns a followed by b.
func Concat[A any](a, b Source[A]) Source[A] {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	n := -1
	if x, ok := Len(a); ok {
		if y, ok := Len(b); ok {
			n = x + y
		}
	}
	return &concat[A]{left: a, right: b, n: n}
}

// Cons returns v followed by src.
func Cons[A any](v A, src Source[A]) Source[A] {
	return Concat(Single(v), src)
}

// Snoc returns src followed by v.
func Snoc[A any](src Source[A], v A) Source[A] {
	return Concat(src, Single(v))
}

func (c *concat[A]) knownLen() (int, bool) {
	return c.n, c.n >= 0
}

func (c *concat[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		walk(c, func(v any) bool {
			a, _ := v.(A)
			return yield(a)
		})
	}
}

// open pushes the right side first so the left is visited first.
func (c *concat[A]) open(w *walker, sc *scope) {
	w.push(frameOf(c.right, sc))
	w.push(frameOf(c.left, sc))
}
