package pipeline

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"math/big"

	jsoniter "github.com/json-iterator/go"

	"github.com/hasbyte1/go-seqs/configs"
)

// Schema constrains the CUE documents read by [Load]. Documents hold their
// pipeline under the pipeline field.
const Schema = `
pipeline?: #Pipeline

#Pipeline: {
	source:  #Source
	script?: string
	stages?: [...#Stage]
	limit?:  int & >=0
}

#Source: {values: [...]} | {range: #Range} | {naturals: int} | {repeat: _}

#Range: {
	from:  int
	to:    int
	step?: int & !=0
}

#Stage: {
	op:     #Op
	fn?:    string
	n?:     int & >=0
	k?:     int & >=1
	path?:  string
	value?: _
}

#Op: "map" | "filter" | "take" | "drop" | "take_while" | "drop_while" |
	"append" | "prepend" | "fold" | "intersperse" | "reverse" | "distinct" |
	"cycle" | "slide" | "magnetize" | "tails" | "inits" | "pluck" | "flatten"
`

// Document is a decoded pipeline.
type Document struct {
	Source Source  `json:"source"`
	Script string  `json:"script,omitempty"`
	Stages []Stage `json:"stages,omitempty"`
	Limit  *int    `json:"limit,omitempty"`
}

// Source names where elements come from. Exactly one field is set.
type Source struct {
	Values   []any  `json:"values,omitempty"`
	Range    *Range `json:"range,omitempty"`
	Naturals *int   `json:"naturals,omitempty"`
	Repeat   *any   `json:"repeat,omitempty"`
}

// Range is the integers from From to To inclusive, Step apart.
type Range struct {
	From int  `json:"from"`
	To   int  `json:"to"`
	Step *int `json:"step,omitempty"`
}

// Stage is one operation. Which of Fn, N, K, Path and Value are used
// depends on Op.
type Stage struct {
	Op    string `json:"op"`
	Fn    string `json:"fn,omitempty"`
	N     *int   `json:"n,omitempty"`
	K     *int   `json:"k,omitempty"`
	Path  string `json:"path,omitempty"`
	Value any    `json:"value,omitempty"`
}

var documentJSON = jsoniter.Config{
	UseNumber:   true,
	SortMapKeys: true,
}.Froze()

// Load yields the pipeline of every document of loader that defines one,
// in load order. loader should validate against [Schema].
func Load(loader configs.Loader) iter.Seq2[*Document, error] {
	return func(yield func(*Document, error) bool) {
		found := false
		for b, err := range loader.AllJSON("pipeline") {
			if err != nil {
				yield(nil, err)
				return
			}
			found = true
			doc, err := DecodeJSON(b)
			if !yield(doc, err) || err != nil {
				return
			}
		}
		if !found {
			yield(nil, fmt.Errorf("%w: pipeline", configs.ErrValueNotFound))
		}
	}
}

// Parse validates src against [Schema] and decodes its pipeline.
func Parse(name string, src []byte) (*Document, error) {
	loader := configs.NewDocumentLoader([]configs.Document{
		{Name: name, Content: src},
	}, Schema)
	b, err := loader.FirstJSON("pipeline")
	if err != nil {
		return nil, err
	}
	return DecodeJSON(b)
}

// DecodeJSON decodes a pipeline from its JSON form and validates it.
// Numbers become int when integral and float64 otherwise.
func DecodeJSON(b []byte) (*Document, error) {
	doc := new(Document)
	if err := documentJSON.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	doc.normalize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) normalize() {
	for i, v := range d.Source.Values {
		d.Source.Values[i] = normalize(v)
	}
	if d.Source.Repeat != nil {
		v := normalize(*d.Source.Repeat)
		d.Source.Repeat = &v
	}
	for i := range d.Stages {
		d.Stages[i].Value = normalize(d.Stages[i].Value)
	}
}

// Validate checks what the schema cannot: the source is exactly one of its
// forms, and every stage has the fields its op needs.
func (d *Document) Validate() error {
	set := 0
	if d.Source.Values != nil {
		set++
	}
	if d.Source.Range != nil {
		set++
		if err := d.Source.Range.check(); err != nil {
			return err
		}
	}
	if d.Source.Naturals != nil {
		set++
	}
	if d.Source.Repeat != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: want exactly one of values, range, naturals, repeat; got %d", ErrInvalidSource, set)
	}
	if d.Limit != nil && *d.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0", ErrInvalidStage)
	}
	for i, st := range d.Stages {
		op, ok := ops[st.Op]
		if !ok {
			return fmt.Errorf("%w: stage %d: %q (known: %s)", ErrUnknownOp, i, st.Op, opList())
		}
		if err := op.check(st); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

// check rejects a zero step and ranges whose length does not fit in an int.
func (r *Range) check() error {
	step := big.NewInt(1)
	if r.Step != nil {
		if *r.Step == 0 {
			return fmt.Errorf("%w: range step must not be 0", ErrInvalidSource)
		}
		step.SetInt64(int64(*r.Step))
	}
	span := new(big.Int).Sub(big.NewInt(int64(r.To)), big.NewInt(int64(r.From)))
	if span.Sign() != 0 && span.Sign() != step.Sign() {
		return nil
	}
	n := span.Quo(span.Abs(span), step.Abs(step))
	if !n.IsInt64() || n.Int64() >= math.MaxInt {
		return fmt.Errorf("%w: range from %d to %d is too long", ErrInvalidSource, r.From, r.To)
	}
	return nil
}

// normalize turns decoded JSON numbers into int or float64.
func normalize(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		if n, ok := new(big.Float).SetString(v.String()); ok {
			f, _ := n.Float64()
			return f
		}
		return v.String()
	case jsoniter.Number:
		return normalize(json.Number(v))
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	}
	return v
}
