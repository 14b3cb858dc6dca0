package prim

import "iter"

// ZipWith combines the elements of a and b pairwise with f, stopping at the
// end of the shorter input.
func ZipWith[A, B, C any](a Source[A], b Source[B], f func(A, B) C) Source[C] {
	return derived[C]{
		all: func(yield func(C) bool) {
			next, stop := iter.Pull(b.All())
			defer stop()
			for x := range a.All() {
				y, ok := next()
				if !ok {
					return
				}
				if !yield(f(x, y)) {
					return
				}
			}
		},
		length: func() (int, bool) {
			x, okA := Len(a)
			y, okB := Len(b)
			switch {
			case okA && okB:
				return min(x, y), true
			case okA && x == 0, okB && y == 0:
				return 0, true
			}
			return 0, false
		},
	}
}

// Cross yields f(x, y) for every x of a and every y of b, a-major.
func Cross[A, B, C any](a Source[A], b Source[B], f func(A, B) C) Source[C] {
	return derived[C]{
		all: func(yield func(C) bool) {
			for x := range a.All() {
				for y := range b.All() {
					if !yield(f(x, y)) {
						return
					}
				}
			}
		},
		length: func() (int, bool) {
			x, okA := Len(a)
			y, okB := Len(b)
			if okA && okB {
				return x * y, true
			}
			return 0, false
		},
	}
}

// Intersperse puts sep between adjacent elements.
func Intersperse[A any](src Source[A], sep A) Source[A] {
	if IsEmpty(src) {
		return src
	}
	if _, ok := src.(single[A]); ok {
		return src
	}
	return derived[A]{
		all: func(yield func(A) bool) {
			first := true
			for v := range src.All() {
				if !first && !yield(sep) {
					return
				}
				first = false
				if !yield(v) {
					return
				}
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			if !ok {
				return 0, false
			}
			return max(2*n-1, 0), true
		},
	}
}

// PrependAll puts sep before every element.
func PrependAll[A any](src Source[A], sep A) Source[A] {
	if IsEmpty(src) {
		return src
	}
	return derived[A]{
		all: func(yield func(A) bool) {
			for v := range src.All() {
				if !yield(sep) || !yield(v) {
					return
				}
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			return 2 * n, ok
		},
	}
}

type reversed[A any] struct {
	src Source[A]
}

// Reverse yields the elements of a bounded src last to first. Unless src
// can be read backward, each traversal reads src completely before
// producing anything.
func Reverse[A any](src Source[A]) Source[A] {
	switch s := src.(type) {
	case empty[A], single[A]:
		return src
	case reversed[A]:
		return s.src
	}
	return reversed[A]{src: src}
}

func (r reversed[A]) All() iter.Seq[A] {
	if b, ok := r.src.(backward[A]); ok {
		return b.Backward()
	}
	return func(yield func(A) bool) {
		items := Collect(r.src)
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

func (r reversed[A]) knownLen() (int, bool) {
	return Len(r.src)
}

// Distinct keeps the first element for every key. Seen keys are tracked per
// traversal.
func Distinct[A any](src Source[A], key func(A) any) Source[A] {
	switch src.(type) {
	case empty[A], single[A]:
		return src
	}
	return derived[A]{
		all: func(yield func(A) bool) {
			seen := make(map[any]struct{})
			for v := range src.All() {
				k := key(v)
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Cycle repeats src forever. A pass that yields nothing ends the traversal,
// so cycling an empty source is empty rather than a busy loop.
func Cycle[A any](src Source[A]) Source[A] {
	switch s := src.(type) {
	case empty[A]:
		return s
	case single[A]:
		return Repeat(s.v)
	}
	return Func[A](func(yield func(A) bool) {
		for {
			produced := false
			for v := range src.All() {
				produced = true
				if !yield(v) {
					return
				}
			}
			if !produced {
				return
			}
		}
	})
}

// Init yields every element of src except the last one.
func Init[A any](src Source[A]) Source[A] {
	switch s := src.(type) {
	case empty[A], single[A]:
		return Empty[A]()
	case slice[A]:
		return Slice([]A(s[: len(s)-1 : len(s)-1]))
	}
	return derived[A]{
		all: func(yield func(A) bool) {
			var held A
			holding := false
			for v := range src.All() {
				if holding && !yield(held) {
					return
				}
				held, holding = v, true
			}
		},
		length: func() (int, bool) {
			n, ok := Len(src)
			return max(n-1, 0), ok
		},
	}
}

// Guard returns src, except that a traversal finding src empty panics with
// violation.
func Guard[A any](src Source[A], violation error) Source[A] {
	return guarded[A]{src: src, violation: violation}
}

type guarded[A any] struct {
	src       Source[A]
	violation error
}

func (g guarded[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		produced := false
		for v := range g.src.All() {
			produced = true
			if !yield(v) {
				return
			}
		}
		if !produced {
			panic(g.violation)
		}
	}
}

func (g guarded[A]) knownLen() (int, bool) {
	return Len(g.src)
}
