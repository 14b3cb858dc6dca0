package seqs

// FoldLeft combines the elements of s from the left, starting from z:
// op(op(op(z, x0), x1), x2)...
//
//	sum := seqs.FoldLeft(s, func(acc, n int) int { return acc + n }, 0)
func FoldLeft[A, B any](s FiniteSequence[A], op func(B, A) B, z B) B {
	r := unwrapArg("FoldLeft", s)
	if op == nil {
		panic(nilFunc("FoldLeft"))
	}
	acc := z
	for v := range r.all() {
		acc = op(acc, v)
	}
	return acc
}

// FoldRight combines the elements of s from the right: op(x0, op(x1, ...
// op(xn, z))). Nothing happens until the result is forced. The accumulator
// handed to op is itself lazy, so op can stop the fold early by not using
// it, and a fold built with [MapLazy] or [FlatMapLazy] over any number of
// elements is forced without deep recursion.
//
// s is read once, when the result is first forced.
//
//	joined := seqs.FoldRight(s, func(x string, acc seqs.Lazy[string]) seqs.Lazy[string] {
//	    return seqs.MapLazy(acc, func(rest string) string { return x + rest })
//	}, seqs.Now(""))
func FoldRight[A, B any](s FiniteSequence[A], op func(A, Lazy[B]) Lazy[B], z Lazy[B]) Lazy[B] {
	r := unwrapArg("FoldRight", s)
	if op == nil {
		panic(nilFunc("FoldRight"))
	}
	var (
		items  []A
		loaded bool
	)
	var at func(i int) Lazy[B]
	at = func(i int) Lazy[B] {
		return Defer(func() Lazy[B] {
			if !loaded {
				items, loaded = r.toSlice(), true
			}
			if i >= len(items) {
				return z
			}
			return op(items[i], at(i+1))
		})
	}
	return at(0)
}
