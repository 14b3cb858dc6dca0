package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.starlark.net/starlark"

	"github.com/hasbyte1/go-seqs/arr"
	"github.com/hasbyte1/go-seqs/seqs"
)

// opSpec describes one stage op: the Stage fields it needs, whether its
// input must be provably bounded, and how it transforms the sequence.
type opSpec struct {
	fn, n, k, path bool
	bounded        bool
	apply          func(s *stage, in seqs.Seq[any]) seqs.Seq[any]
}

// stage is a Stage being compiled, with what its closures need at drain
// time.
type stage struct {
	Stage
	index  int
	script *script
	// bound is the input proven bounded, for ops with opSpec.bounded set.
	bound seqs.Finite[any]
	fn    starlark.Callable
}

var ops = map[string]opSpec{

	"map": {fn: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(in, func(v any) any {
			return s.must(s.script.callValue(s.fn, v))
		})
	}},

	"filter": {fn: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Filter(s.predicate)
	}},

	"take": {n: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Take(*s.N).Seq()
	}},

	"drop": {n: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Drop(*s.N)
	}},

	"take_while": {fn: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.TakeWhile(s.predicate)
	}},

	"drop_while": {fn: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.DropWhile(s.predicate)
	}},

	"append": {apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Append(s.Value).Seq()
	}},

	"prepend": {apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Prepend(s.Value).Seq()
	}},

	"intersperse": {apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return in.Intersperse(s.Value)
	}},

	// fold runs when the pipeline is compiled and leaves a single element.
	"fold": {fn: true, bounded: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		acc := seqs.FoldLeft(s.bound, func(acc, v any) any {
			return s.must(s.script.callValue(s.fn, acc, v))
		}, s.Value)
		return seqs.Singleton(acc).Seq()
	}},

	"reverse": {bounded: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return s.bound.Reverse().Seq()
	}},

	"distinct": {bounded: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return s.bound.DistinctBy(s.key).Seq()
	}},

	"cycle": {bounded: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return s.bound.Cycle()
	}},

	"slide": {k: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(seqs.Slide[any](in, *s.K), func(w seqs.ImmutableNonEmptyFinite[any]) any {
			return w
		})
	}},

	"magnetize": {fn: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		attract := func(prev, next any) bool {
			ok, err := s.script.callTruth(s.fn, prev, next)
			s.check(err)
			return ok
		}
		return seqs.Map(seqs.MagnetizeBy[any](in, attract), func(g seqs.ImmutableNonEmptyFinite[any]) any {
			return g
		})
	}},

	// Suffixes of an unbounded input are unbounded themselves and could
	// never be rendered.
	"tails": {bounded: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(seqs.TailsFinite[any](s.bound), func(t seqs.Finite[any]) any {
			return t
		})
	}},

	"inits": {apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(seqs.Inits[any](in), func(p seqs.Finite[any]) any {
			return p
		})
	}},

	// pluck selects the value at path in each element, or value when the
	// path is missing.
	"pluck": {path: true, apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(in, func(v any) any {
			if got, ok := arr.Get(render(v), s.Path); ok {
				return got
			}
			return s.Value
		})
	}},

	"flatten": {apply: func(s *stage, in seqs.Seq[any]) seqs.Seq[any] {
		return seqs.Map(in, func(v any) any {
			return arr.Dot(render(v))
		})
	}},
}

// Ops returns the names of every stage op, sorted.
func Ops() []string {
	names := lo.Keys(ops)
	slices.Sort(names)
	return names
}

func opList() string {
	return strings.Join(Ops(), ", ")
}

func (o opSpec) check(st Stage) error {
	if o.fn && st.Fn == "" {
		return fmt.Errorf("%w: fn is required", ErrMissingFunc)
	}
	if o.n {
		if st.N == nil {
			return fmt.Errorf("%w: n is required", ErrInvalidStage)
		}
		if *st.N < 0 {
			return fmt.Errorf("%w: n must be >= 0", ErrInvalidStage)
		}
	}
	if o.path && st.Path == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidStage)
	}
	if o.k {
		if st.K == nil {
			return fmt.Errorf("%w: k is required", ErrInvalidStage)
		}
		if *st.K < 1 {
			return fmt.Errorf("%w: k must be >= 1", ErrInvalidStage)
		}
	}
	return nil
}

// stageFailure carries an error out of a lazily evaluated stage function.
// It is recovered where the pipeline is drained.
type stageFailure struct {
	err error
}

func (s *stage) check(err error) {
	if err != nil {
		panic(stageFailure{err: fmt.Errorf("stage %d (%s): %w", s.index, s.Op, err)})
	}
}

func (s *stage) must(v any, err error) any {
	s.check(err)
	return v
}

func (s *stage) predicate(v any) bool {
	ok, err := s.script.callTruth(s.fn, v)
	s.check(err)
	return ok
}

// key returns the distinct key of v: the script's key function when the
// stage names one, applied before encoding.
func (s *stage) key(v any) any {
	if s.fn != nil {
		v = s.must(s.script.callValue(s.fn, v))
	}
	b, err := resultJSON.Marshal(render(v))
	s.check(err)
	return string(b)
}
