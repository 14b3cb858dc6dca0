package prim

// A traversal of a concatenation or pipe tree runs on one explicit stack of
// frames. Inner nodes only push frames; leaves are the only sources ranged
// over. An element from a leaf passes through the stage cursors of every
// enclosing pipe, innermost first, so alternating concatenations and stages
// never nest Go calls.

// scope is one opening of a pipe: its stage cursors and the stack height
// at which its base frame was pushed. Every frame above that height belongs
// to the pipe, so finishing the pipe truncates the stack to height.
type scope struct {
	cursors []cursor
	height  int
	parent  *scope
}

// pass runs v through sc and its enclosing scopes. It reports the value,
// whether it reaches the consumer, and the height to truncate the stack to
// when a scope has finished, or -1.
func (sc *scope) pass(v any) (any, bool, int) {
	cut := -1
	for s := sc; s != nil; s = s.parent {
		out, emit, more := step(s.cursors, v)
		if !more {
			cut = s.height
		}
		if !emit {
			return nil, false, cut
		}
		v = out
	}
	return v, true, cut
}

type frame struct {
	node  inner
	leaf  func(yield func(any) bool)
	scope *scope
}

// inner is implemented by nodes the walker looks inside.
type inner interface {
	open(w *walker, sc *scope)
}

type walker struct {
	stack []frame
}

func (w *walker) push(f frame) {
	w.stack = append(w.stack, f)
}

func frameOf[A any](src Source[A], sc *scope) frame {
	if n, ok := src.(inner); ok {
		return frame{node: n, scope: sc}
	}
	return frame{
		leaf: func(yield func(any) bool) {
			for v := range src.All() {
				if !yield(v) {
					return
				}
			}
		},
		scope: sc,
	}
}

// walk yields the elements of root until yield returns false.
func walk(root inner, yield func(any) bool) {
	w := &walker{stack: []frame{{node: root}}}
	for len(w.stack) > 0 {
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if f.node != nil {
			f.node.open(w, f.scope)
			continue
		}

		cut := -1
		stopped := false
		f.leaf(func(v any) bool {
			out, emit, c := f.scope.pass(v)
			if c >= 0 {
				cut = c
			}
			if emit && !yield(out) {
				stopped = true
				return false
			}
			return c < 0
		})
		if stopped {
			return
		}
		if cut >= 0 {
			w.stack = w.stack[:cut]
		}
	}
}
