package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"iter"
	"runtime"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusee/dscope"
	"github.com/samber/lo"
	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-seqs/logs"
	"github.com/hasbyte1/go-seqs/seqs"
)

// Module provides a *Runner.
type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Runner(
	logger logs.Logger,
) *Runner {
	return NewRunner(logger)
}

// Runner compiles and drains pipelines.
type Runner struct {
	logger logs.Logger
}

func NewRunner(logger logs.Logger) *Runner {
	return &Runner{logger: logger}
}

// Result is the drained output of a pipeline.
type Result struct {
	Values []any     `json:"values"`
	Caps   seqs.Caps `json:"caps"`
	Digest string    `json:"digest"`
}

var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Run compiles doc, checks that its result is bounded and drains it.
func (r *Runner) Run(ctx context.Context, doc *Document) (res *Result, err error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	ctx, _ = logs.WithRun(ctx)

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		switch p := p.(type) {
		case runtime.Error:
			panic(p)
		case stageFailure:
			res, err = nil, p.err
		case error:
			res, err = nil, p
		default:
			res, err = nil, fmt.Errorf("pipeline: %v", p)
		}
	}()

	sc, err := compileScript("pipeline.star", doc.Script, r.logger)
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		sc.thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	final, err := r.compile(ctx, doc, sc)
	if err != nil {
		return nil, err
	}

	values := []any{}
	for v := range final.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values = append(values, render(v))
	}

	digest, err := digestValues(values)
	if err != nil {
		return nil, err
	}
	res = &Result{
		Values: values,
		Caps:   final.Caps(),
		Digest: digest,
	}
	r.logger.InfoContext(ctx, "pipeline done",
		"stages", len(doc.Stages),
		"values", len(values),
		"caps", res.Caps,
	)
	return res, nil
}

// compile builds the lazy sequence of doc and proves it bounded.
func (r *Runner) compile(ctx context.Context, doc *Document, sc *script) (seqs.Finite[any], error) {
	cur := source(doc.Source)
	r.logger.DebugContext(ctx, "source", "caps", cur.Caps())

	for i, spec := range doc.Stages {
		if err := ctx.Err(); err != nil {
			return seqs.Finite[any]{}, err
		}
		op := ops[spec.Op]
		s := &stage{Stage: spec, index: i, script: sc}

		if spec.Fn != "" {
			fn, err := sc.function(spec.Fn)
			if err != nil {
				return seqs.Finite[any]{}, fmt.Errorf("stage %d (%s): %w", i, spec.Op, err)
			}
			s.fn = fn
		}
		if op.bounded {
			bound, ok := cur.ToFinite()
			if !ok {
				return seqs.Finite[any]{}, fmt.Errorf("stage %d (%s): %w", i, spec.Op, ErrUnbounded)
			}
			s.bound = bound
		}

		cur = op.apply(s, cur)
		r.logger.DebugContext(ctx, "stage",
			"index", i,
			"op", spec.Op,
			"caps", cur.Caps(),
		)
	}

	if f, ok := cur.ToFinite(); ok {
		return f, nil
	}
	if doc.Limit == nil {
		return seqs.Finite[any]{}, fmt.Errorf("%w: result (add a take stage or set limit)", ErrUnbounded)
	}
	r.logger.DebugContext(ctx, "limit", "n", *doc.Limit)
	return cur.Take(*doc.Limit), nil
}

func source(src Source) seqs.Seq[any] {
	switch {
	case src.Values != nil:
		return seqs.CopySlice(src.Values).Seq()
	case src.Range != nil:
		step := 1
		if src.Range.Step != nil {
			step = *src.Range.Step
		}
		return seqs.Enhance[any](rangeSource{from: src.Range.From, to: src.Range.To, step: step})
	case src.Naturals != nil:
		return seqs.Enhance[any](naturals(*src.Naturals))
	default:
		return seqs.Repeat(*src.Repeat).Seq()
	}
}

// rangeSource is an inclusive arithmetic progression. Its length is known,
// so sequences over it are tagged bounded.
type rangeSource struct {
	from, to, step int
}

func (r rangeSource) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		n := r.Len()
		for i, v := 0, r.from; i < n; i, v = i+1, v+r.step {
			if !yield(v) {
				return
			}
		}
	}
}

// Len works in uint so that spans wider than math.MaxInt do not wrap.
// Validate rejects ranges whose length itself would not fit.
func (r rangeSource) Len() int {
	switch {
	case r.step > 0 && r.from <= r.to:
		return int((uint(r.to)-uint(r.from))/uint(r.step)) + 1
	case r.step < 0 && r.from >= r.to:
		return int((uint(r.from)-uint(r.to))/(-uint(r.step))) + 1
	}
	return 0
}

// naturals counts up from its start forever.
type naturals int

func (n naturals) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := int(n); ; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// render turns nested sequences into slices.
func render(v any) any {
	if l, ok := v.(listable); ok {
		return lo.Map(l.ToSlice(), func(e any, _ int) any {
			return render(e)
		})
	}
	return v
}

// Digest is the hex blake2b-256 of b.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func digestValues(values []any) (string, error) {
	b, err := resultJSON.Marshal(values)
	if err != nil {
		return "", err
	}
	return Digest(b), nil
}
