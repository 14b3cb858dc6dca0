package prim

import (
	"iter"
	"math"
)

type stageKind uint8

const (
	mapStage stageKind = iota
	filterStage
	dropStage
	takeStage
	dropWhileStage
	takeWhileStage
)

// stage is one element of a persistent, newest-first stage list. Stages are
// shared between pipes and never modified once built.
type stage struct {
	kind stageKind
	n    int
	fn   func(any) any
	pred func(any) bool
	prev *stage
}

// pipe is a base traversal followed by a fused list of stages. Element
// values travel through the stages as any so that a map stage can change
// the element type without nesting another pipe.
type pipe[A any] struct {
	base    func(sc *scope) frame
	baseLen func() (int, bool)
	last    *stage
}

// cursor is the per-traversal state of a stage.
type cursor struct {
	*stage
	count   int
	dropped bool
}

func (p *pipe[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		walk(p, func(v any) bool {
			a, _ := v.(A)
			return yield(a)
		})
	}
}

func (p *pipe[A]) open(w *walker, sc *scope) {
	w.push(p.base(&scope{
		cursors: p.cursors(),
		height:  len(w.stack),
		parent:  sc,
	}))
}

func (p *pipe[A]) cursors() []cursor {
	n := 0
	for s := p.last; s != nil; s = s.prev {
		n++
	}
	cursors := make([]cursor, n)
	for s := p.last; s != nil; s = s.prev {
		n--
		cursors[n] = cursor{stage: s}
	}
	return cursors
}

// step runs v through every stage. It reports the resulting value, whether
// it reaches the output, and whether the base should keep producing.
func step(cursors []cursor, v any) (any, bool, bool) {
	more := true
	for i := range cursors {
		c := &cursors[i]
		switch c.kind {
		case mapStage:
			v = c.fn(v)
		case filterStage:
			if !c.pred(v) {
				return v, false, more
			}
		case dropStage:
			if c.count < c.n {
				c.count++
				return v, false, more
			}
		case takeStage:
			c.count++
			if c.count >= c.n {
				more = false
			}
		case dropWhileStage:
			if !c.dropped {
				if c.pred(v) {
					return v, false, more
				}
				c.dropped = true
			}
		case takeWhileStage:
			if !c.pred(v) {
				return v, false, false
			}
		}
	}
	return v, true, more
}

func (p *pipe[A]) knownLen() (int, bool) {
	if p.baseLen == nil {
		return 0, false
	}
	n, ok := p.baseLen()
	if !ok {
		return 0, false
	}
	for _, c := range p.cursors() {
		switch c.kind {
		case mapStage:
		case dropStage:
			n = max(n-c.n, 0)
		case takeStage:
			n = min(n, c.n)
		default:
			return 0, false
		}
	}
	return n, true
}

// extend appends st to src's stage list, starting a new pipe when src is
// not one.
func extend[A, B any](src Source[A], st *stage) Source[B] {
	if p, ok := src.(*pipe[A]); ok {
		st.prev = p.last
		return &pipe[B]{base: p.base, baseLen: p.baseLen, last: st}
	}
	return &pipe[B]{
		base: func(sc *scope) frame {
			return frameOf(src, sc)
		},
		baseLen: func() (int, bool) {
			return Len(src)
		},
		last: st,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage constructors
// ─────────────────────────────────────────────────────────────────────────────

// Map applies f to every element.
func Map[A, B any](src Source[A], f func(A) B) Source[B] {
	switch s := src.(type) {
	case empty[A]:
		return Empty[B]()
	case single[A]:
		return mappedOne[A, B]{v: s.v, f: f}
	}
	return extend[A, B](src, &stage{
		kind: mapStage,
		fn: func(v any) any {
			a, _ := v.(A)
			return f(a)
		},
	})
}

// Filter keeps the elements satisfying pred.
func Filter[A any](src Source[A], pred func(A) bool) Source[A] {
	if IsEmpty(src) {
		return src
	}
	return extend[A, A](src, &stage{kind: filterStage, pred: erase(pred)})
}

// Drop skips the first n elements.
func Drop[A any](src Source[A], n int) Source[A] {
	if n <= 0 {
		return src
	}
	switch s := src.(type) {
	case empty[A]:
		return s
	case single[A]:
		return Empty[A]()
	case slice[A]:
		if n >= len(s) {
			return Empty[A]()
		}
		return s[n:]
	case *pipe[A]:
		if s.last != nil && s.last.kind == dropStage {
			total := s.last.n + n
			if total < 0 {
				total = math.MaxInt
			}
			return &pipe[A]{
				base:    s.base,
				baseLen: s.baseLen,
				last:    &stage{kind: dropStage, n: total, prev: s.last.prev},
			}
		}
	}
	return extend[A, A](src, &stage{kind: dropStage, n: n})
}

// Take keeps at most the first n elements. The traversal stops pulling from
// src as soon as the n-th element is produced.
func Take[A any](src Source[A], n int) Source[A] {
	if n <= 0 {
		return Empty[A]()
	}
	switch s := src.(type) {
	case empty[A], single[A]:
		return src
	case slice[A]:
		if n >= len(s) {
			return s
		}
		return s[:n:n]
	case *pipe[A]:
		if s.last != nil && s.last.kind == takeStage {
			return &pipe[A]{
				base:    s.base,
				baseLen: s.baseLen,
				last:    &stage{kind: takeStage, n: min(n, s.last.n), prev: s.last.prev},
			}
		}
	}
	return extend[A, A](src, &stage{kind: takeStage, n: n})
}

// TakeWhile keeps the longest prefix whose elements satisfy pred.
func TakeWhile[A any](src Source[A], pred func(A) bool) Source[A] {
	if IsEmpty(src) {
		return src
	}
	return extend[A, A](src, &stage{kind: takeWhileStage, pred: erase(pred)})
}

// DropWhile skips the longest prefix whose elements satisfy pred.
func DropWhile[A any](src Source[A], pred func(A) bool) Source[A] {
	if IsEmpty(src) {
		return src
	}
	return extend[A, A](src, &stage{kind: dropWhileStage, pred: erase(pred)})
}

func erase[A any](pred func(A) bool) func(any) bool {
	return func(v any) bool {
		a, _ := v.(A)
		return pred(a)
	}
}
