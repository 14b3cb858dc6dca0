package seqs

// Lazy is a deferred, memoized value.
//
// Lazy values compose with [MapLazy] and [FlatMapLazy] without evaluating
// anything. Forcing one with [Lazy.Value] runs a trampoline: however deep
// the chain of maps and flat-maps, evaluation uses a heap stack and a
// constant amount of Go stack. Calling Value inside a function passed to
// MapLazy or FlatMapLazy gives that guarantee up, since the inner force is
// an ordinary nested call.
//
// The zero Lazy holds the zero value of A.
type Lazy[A any] struct {
	n *lazyNode
}

// lazyNode is the untyped evaluation graph behind Lazy. Exactly one of
// the fields below done describes how to compute the value.
type lazyNode struct {
	done  bool
	value any

	thunk   func() any
	dep     *lazyNode
	k       func(any) *lazyNode
	suspend func() *lazyNode
}

// Now returns an already evaluated Lazy.
func Now[A any](v A) Lazy[A] {
	return Lazy[A]{n: &lazyNode{done: true, value: v}}
}

// Later returns a Lazy computing f on first use.
func Later[A any](f func() A) Lazy[A] {
	if f == nil {
		panic(nilFunc("Later"))
	}
	return Lazy[A]{n: &lazyNode{thunk: func() any { return f() }}}
}

// Defer returns a Lazy whose definition is itself computed on first use.
func Defer[A any](f func() Lazy[A]) Lazy[A] {
	if f == nil {
		panic(nilFunc("Defer"))
	}
	return Lazy[A]{n: &lazyNode{suspend: func() *lazyNode { return f().node() }}}
}

// MapLazy returns a Lazy applying f to the value of l.
func MapLazy[A, B any](l Lazy[A], f func(A) B) Lazy[B] {
	if f == nil {
		panic(nilFunc("MapLazy"))
	}
	return Lazy[B]{n: &lazyNode{
		dep: l.node(),
		k: func(v any) *lazyNode {
			a, _ := v.(A)
			return &lazyNode{done: true, value: f(a)}
		},
	}}
}

// FlatMapLazy returns a Lazy continuing with f(value of l).
func FlatMapLazy[A, B any](l Lazy[A], f func(A) Lazy[B]) Lazy[B] {
	if f == nil {
		panic(nilFunc("FlatMapLazy"))
	}
	return Lazy[B]{n: &lazyNode{
		dep: l.node(),
		k: func(v any) *lazyNode {
			a, _ := v.(A)
			return f(a).node()
		},
	}}
}

// Value forces l and returns its value. Later calls return the memoized
// result.
func (l Lazy[A]) Value() A {
	v, _ := l.node().force().(A)
	return v
}

// Evaluated reports whether l has been forced.
func (l Lazy[A]) Evaluated() bool {
	return l.n == nil || l.n.done
}

func (l Lazy[A]) node() *lazyNode {
	if l.n == nil {
		var zero A
		return &lazyNode{done: true, value: zero}
	}
	return l.n
}

// frame is a pending step of the trampoline. With k set, it waits for a
// dependency and then continues with k; without, it stores the value it
// receives into owner.
type frame struct {
	owner *lazyNode
	k     func(any) *lazyNode
}

func (n *lazyNode) force() any {
	var stack []frame
	cur := n
	for {
		if !cur.done {
			switch {
			case cur.thunk != nil:
				cur.value, cur.done = cur.thunk(), true
				cur.thunk = nil
			case cur.dep != nil:
				stack = append(stack, frame{owner: cur, k: cur.k})
				cur = cur.dep
				continue
			case cur.suspend != nil:
				stack = append(stack, frame{owner: cur})
				cur = cur.suspend()
				continue
			default:
				cur.done = true
			}
		}

		v := cur.value
		if len(stack) == 0 {
			return v
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.k != nil {
			stack = append(stack, frame{owner: f.owner})
			cur = f.k(v)
			continue
		}
		f.owner.value, f.owner.done = v, true
		f.owner.dep, f.owner.k, f.owner.suspend = nil, nil, nil
		cur = f.owner
	}
}
