package prim

import "slices"

// Tails yields src, then src without its first element, and so on down to
// the empty suffix. Suffixes are drop views over src, so a traversal of the
// outer source only reads src once and each suffix re-reads it lazily.
func Tails[A any](src Source[A]) Source[Source[A]] {
	return derived[Source[A]]{
		all: func(yield func(Source[A]) bool) {
			if !yield(src) {
				return
			}
			i := 0
			for range src.All() {
				i++
				if !yield(Drop(src, i)) {
					return
				}
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			return n + 1, ok
		},
	}
}

// Inits yields the empty prefix, then the prefix of length one, and so on up
// to src itself.
func Inits[A any](src Source[A]) Source[Source[A]] {
	return derived[Source[A]]{
		all: func(yield func(Source[A]) bool) {
			if !yield(Empty[A]()) {
				return
			}
			i := 0
			for range src.All() {
				i++
				if !yield(Take(src, i)) {
					return
				}
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			return n + 1, ok
		},
	}
}

// Slide yields every window of k adjacent elements, each a fresh slice. A
// non-empty src shorter than k yields a single window holding all of it; an
// empty src yields nothing.
func Slide[A any](src Source[A], k int) Source[[]A] {
	return derived[[]A]{
		all: func(yield func([]A) bool) {
			var window []A
			emitted := false
			for v := range src.All() {
				window = append(window, v)
				if len(window) > k {
					window = window[1:]
				}
				if len(window) == k {
					emitted = true
					if !yield(slices.Clone(window)) {
						return
					}
				}
			}
			if !emitted && len(window) > 0 {
				yield(slices.Clone(window))
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			switch {
			case !ok:
				return 0, false
			case n == 0:
				return 0, true
			case n < k:
				return 1, true
			}
			return n - k + 1, true
		},
	}
}

// MagnetizeBy groups runs of adjacent elements: next joins the current
// group while attract(previous, next) holds.
func MagnetizeBy[A any](src Source[A], attract func(A, A) bool) Source[[]A] {
	return derived[[]A]{
		all: func(yield func([]A) bool) {
			var group []A
			for v := range src.All() {
				if len(group) > 0 && !attract(group[len(group)-1], v) {
					if !yield(group) {
						return
					}
					group = nil
				}
				group = append(group, v)
			}
			if len(group) > 0 {
				yield(group)
			}
		},
	}
}
