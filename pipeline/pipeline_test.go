package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seqs/configs"
	"github.com/hasbyte1/go-seqs/logs"
	"github.com/hasbyte1/go-seqs/pipeline"
)

func newRunner() *pipeline.Runner {
	return pipeline.NewRunner(logs.New(io.Discard, false))
}

func run(t *testing.T, src string) (*pipeline.Result, error) {
	t.Helper()
	doc, err := pipeline.Parse("test.cue", []byte(src))
	require.NoError(t, err)
	return newRunner().Run(context.Background(), doc)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []any
		caps string
	}{
		{
			name: "filter map take over naturals",
			src: `pipeline: {
				source: naturals: 1
				script: "def odd(n):\n    return n % 2 == 1\ndef square(n):\n    return n * n\n"
				stages: [{op: "filter", fn: "odd"}, {op: "map", fn: "square"}, {op: "take", n: 3}]
			}`,
			want: []any{1, 9, 25},
			caps: "bounded",
		},
		{
			name: "limit bounds an unbounded result",
			src:  `pipeline: {source: naturals: 0, limit: 4}`,
			want: []any{0, 1, 2, 3},
			caps: "bounded",
		},
		{
			name: "range is bounded",
			src:  `pipeline: {source: range: {from: 1, to: 5}, stages: [{op: "reverse"}]}`,
			want: []any{5, 4, 3, 2, 1},
			caps: "bounded|nonempty",
		},
		{
			name: "range with negative step",
			src:  `pipeline: {source: range: {from: 10, to: 1, step: -4}}`,
			want: []any{10, 6, 2},
			caps: "bounded|nonempty",
		},
		{
			name: "empty range",
			src:  `pipeline: {source: range: {from: 3, to: 1}}`,
			want: []any{},
			caps: "bounded",
		},
		{
			name: "slide",
			src:  `pipeline: {source: values: [0, 1, 2, 3], stages: [{op: "slide", k: 2}]}`,
			want: []any{[]any{0, 1}, []any{1, 2}, []any{2, 3}},
			caps: "bounded|immutable",
		},
		{
			name: "slide shorter than window",
			src:  `pipeline: {source: values: [1, 2], stages: [{op: "slide", k: 5}]}`,
			want: []any{[]any{1, 2}},
			caps: "bounded|immutable",
		},
		{
			name: "cycle",
			src: `pipeline: {
				source: values: [1, 2, 3]
				stages: [{op: "cycle"}, {op: "drop", n: 9999}, {op: "take", n: 4}]
			}`,
			want: []any{1, 2, 3, 1},
			caps: "bounded|immutable",
		},
		{
			name: "cycle of empty",
			src:  `pipeline: {source: values: [], stages: [{op: "cycle"}]}`,
			want: []any{},
			caps: "bounded|immutable",
		},
		{
			name: "fold",
			src: `pipeline: {
				source: range: {from: 1, to: 100}
				script: "def add(acc, n):\n    return acc + n\n"
				stages: [{op: "fold", fn: "add", value: 0}]
			}`,
			want: []any{5050},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "distinct by encoding",
			src:  `pipeline: {source: values: [1, 2, 2, [1], [1], {a: 1}, {a: 1}], stages: [{op: "distinct"}]}`,
			want: []any{1, 2, []any{1}, map[string]any{"a": 1}},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "distinct by key",
			src: `pipeline: {
				source: values: ["a", "B", "b", "A"]
				script: "def lower(s):\n    return s.lower()\n"
				stages: [{op: "distinct", fn: "lower"}]
			}`,
			want: []any{"a", "B"},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "magnetize",
			src: `pipeline: {
				source: values: [1, 2, 4, 5, 7]
				script: "def next_to(a, b):\n    return b == a + 1\n"
				stages: [{op: "magnetize", fn: "next_to"}]
			}`,
			want: []any{[]any{1, 2}, []any{4, 5}, []any{7}},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "tails",
			src:  `pipeline: {source: values: [1, 2], stages: [{op: "tails"}]}`,
			want: []any{[]any{1, 2}, []any{2}, []any{}},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "inits over naturals",
			src:  `pipeline: {source: naturals: 1, stages: [{op: "inits"}, {op: "take", n: 3}]}`,
			want: []any{[]any{}, []any{1}, []any{1, 2}},
			caps: "bounded|nonempty",
		},
		{
			name: "append prepend intersperse",
			src: `pipeline: {
				source: values: ["b"]
				stages: [
					{op: "append", value: "c"},
					{op: "prepend", value: "a"},
					{op: "intersperse", value: "-"},
				]
			}`,
			want: []any{"a", "-", "b", "-", "c"},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "take_while drop_while",
			src: `pipeline: {
				source: naturals: 1
				script: "def small(n):\n    return n < 3\ndef under(n):\n    return n < 6\n"
				stages: [{op: "drop_while", fn: "small"}, {op: "take_while", fn: "under"}]
				limit: 100
			}`,
			want: []any{3, 4, 5},
			caps: "bounded",
		},
		{
			name: "repeat",
			src:  `pipeline: {source: repeat: {x: 1}, stages: [{op: "take", n: 2}]}`,
			want: []any{map[string]any{"x": 1}, map[string]any{"x": 1}},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "pluck",
			src: `pipeline: {
				source: values: [{user: {tags: ["a", "b"]}}, {user: {}}]
				stages: [{op: "pluck", path: "user.tags.1", value: "none"}]
			}`,
			want: []any{"b", "none"},
			caps: "bounded|nonempty|immutable",
		},
		{
			name: "pluck from windows",
			src:  `pipeline: {source: values: [5, 6, 7], stages: [{op: "slide", k: 2}, {op: "pluck", path: "1"}]}`,
			want: []any{6, 7},
			caps: "bounded|immutable",
		},
		{
			name: "flatten",
			src: `pipeline: {
				source: values: [{db: {host: "h", ports: [1, 2]}}, 3]
				stages: [{op: "flatten"}]
			}`,
			want: []any{
				map[string]any{"db.host": "h", "db.ports.0": 1, "db.ports.1": 2},
				map[string]any{"": 3},
			},
			caps: "bounded|nonempty|immutable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := run(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Values)
			assert.Equal(t, tt.caps, res.Caps.String())
		})
	}
}

func TestUnbounded(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"result", `pipeline: {source: naturals: 1}`},
		{"reverse", `pipeline: {source: naturals: 1, stages: [{op: "reverse"}], limit: 3}`},
		{"distinct", `pipeline: {source: repeat: 1, stages: [{op: "distinct"}], limit: 3}`},
		{"cycle", `pipeline: {source: naturals: 1, stages: [{op: "cycle"}], limit: 3}`},
		{"tails", `pipeline: {source: naturals: 1, stages: [{op: "tails"}], limit: 3}`},
		{"cycle then reverse", `pipeline: {source: values: [1], stages: [{op: "cycle"}, {op: "reverse"}], limit: 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			assert.ErrorIs(t, err, pipeline.ErrUnbounded)
		})
	}
}

func TestScriptErrors(t *testing.T) {
	_, err := run(t, `pipeline: {
		source: values: [1, 2]
		script: "def boom(n):\n    fail(\"boom\")\n"
		stages: [{op: "map", fn: "boom"}]
	}`)
	require.ErrorIs(t, err, pipeline.ErrScript)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "stage 0 (map)")

	_, err = run(t, `pipeline: {
		source: values: [1]
		script: "x = 1\n"
		stages: [{op: "filter", fn: "nope"}]
	}`)
	assert.ErrorIs(t, err, pipeline.ErrMissingFunc)

	_, err = run(t, `pipeline: {
		source: values: [1]
		script: "x = 1\n"
		stages: [{op: "filter", fn: "x"}]
	}`)
	assert.ErrorIs(t, err, pipeline.ErrMissingFunc)

	_, err = run(t, `pipeline: {
		source: values: [1]
		script: "def f(:\n"
	}`)
	assert.ErrorIs(t, err, pipeline.ErrScript)

	_, err = run(t, `pipeline: {
		source: values: [1]
		script: "def f(n):\n    return set([n])\n"
		stages: [{op: "map", fn: "f"}]
	}`)
	assert.ErrorIs(t, err, pipeline.ErrScript)
}

func TestScriptBytesAndTuples(t *testing.T) {
	res, err := run(t, `pipeline: {
		source: values: ["ab"]
		script: "def enc(s):\n    return (b\"ab\", [b\"c\"])\n"
		stages: [{op: "map", fn: "enc"}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"ab", []any{"c"}}}, res.Values)
}

func TestScriptDigest(t *testing.T) {
	res, err := run(t, `pipeline: {
		source: values: ["a"]
		script: "def tag(s):\n    return digest(s)\n"
		stages: [{op: "map", fn: "tag"}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, []any{pipeline.Digest([]byte("a"))}, res.Values)
}

func TestResultDigest(t *testing.T) {
	a, err := run(t, `pipeline: {source: range: {from: 1, to: 3}}`)
	require.NoError(t, err)
	b, err := run(t, `pipeline: {source: values: [1, 2, 3]}`)
	require.NoError(t, err)
	assert.Equal(t, pipeline.Digest([]byte("[1,2,3]")), a.Digest)
	assert.Equal(t, a.Digest, b.Digest)
}

func TestRangeLimits(t *testing.T) {
	_, err := pipeline.DecodeJSON([]byte(`{"source": {"range": {"from": -9223372036854775808, "to": 9223372036854775807}}}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"range": {"from": 0, "to": 9223372036854775807}}}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"range": {"from": 1, "to": 0, "step": 0}}}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)

	res, err := run(t, `pipeline: {source: range: {
		from: -9223372036854775808
		to:   9223372036854775807
		step: 4611686018427387904
	}}`)
	require.NoError(t, err)
	assert.Equal(t, []any{-1 << 63, -1 << 62, 0, 1 << 62}, res.Values)

	res, err = run(t, `pipeline: {source: range: {
		from: 9223372036854775807
		to:   -9223372036854775808
		step: -9223372036854775808
	}}`)
	require.NoError(t, err)
	assert.Equal(t, []any{1<<63 - 1, -1}, res.Values)

	res, err = run(t, `pipeline: {source: range: {from: 0, to: 9223372036854775807, step: -1}}`)
	require.NoError(t, err)
	assert.Empty(t, res.Values)
}

func TestDecodeJSON(t *testing.T) {
	_, err := pipeline.DecodeJSON([]byte(`{"source": {"naturals": 1}, "stages": [{"op": "shuffle"}]}`))
	assert.ErrorIs(t, err, pipeline.ErrUnknownOp)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"naturals": 1, "values": [1]}}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {}}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"values": [1]}, "stages": [{"op": "take"}]}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidStage)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"values": [1]}, "stages": [{"op": "pluck"}]}`))
	assert.ErrorIs(t, err, pipeline.ErrInvalidStage)

	_, err = pipeline.DecodeJSON([]byte(`{"source": {"values": [1]}, "stages": [{"op": "map"}]}`))
	assert.ErrorIs(t, err, pipeline.ErrMissingFunc)

	doc, err := pipeline.DecodeJSON([]byte(`{"source": {"values": [1, 2.5, 30000000000]}}`))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2.5, 30_000_000_000}, doc.Source.Values)
}

func TestSchema(t *testing.T) {
	_, err := pipeline.Parse("bad.cue", []byte(`pipeline: {source: naturals: 1, sauce: 1}`))
	assert.Error(t, err)

	_, err = pipeline.Parse("bad.cue", []byte(`pipeline: {source: naturals: 1, stages: [{op: "shuffle"}]}`))
	assert.Error(t, err)

	_, err = pipeline.Parse("bad.cue", []byte(`pipeline: {source: values: [1], stages: [{op: "slide", k: 0}]}`))
	assert.Error(t, err)

	_, err = pipeline.Parse("empty.cue", []byte(`other: 1`))
	assert.Error(t, err)
}

func TestCanceled(t *testing.T) {
	doc, err := pipeline.Parse("test.cue", []byte(`pipeline: {source: naturals: 1, stages: [{op: "take", n: 3}]}`))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newRunner().Run(ctx, doc)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadFiles(t *testing.T) {
	loader := configs.NewLoader([]string{
		"testdata/settings.cue",
		"testdata/odd_squares.cue",
		"testdata/windows.cue",
	}, pipeline.Schema)

	var results [][]any
	for doc, err := range pipeline.Load(loader) {
		require.NoError(t, err)
		res, err := newRunner().Run(context.Background(), doc)
		require.NoError(t, err)
		results = append(results, res.Values)
	}
	assert.Equal(t, [][]any{
		{1, 9, 25},
		{[]any{0, 1}, []any{1, 2}, []any{2, 3}},
	}, results)
}

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	doc, err := pipeline.Parse("test.cue", []byte(`pipeline: {source: values: [1, 2]}`))
	require.NoError(t, err)

	dscope.New(new(pipeline.Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		runner *pipeline.Runner,
	) {
		res, err := runner.Run(context.Background(), doc)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, res.Values)
	})

	assert.True(t, strings.Contains(buf.String(), "pipeline done"), buf.String())
}

func TestOps(t *testing.T) {
	names := pipeline.Ops()
	assert.Len(t, names, 19)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "magnetize")
}
