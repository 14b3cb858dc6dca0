package pipeline

import (
	"fmt"
	"math"
	"sort"

	"go.starlark.net/starlark"
)

// listable is any bounded sequence of pipeline values. Stages producing
// nested sequences emit these as elements.
type listable interface {
	ToSlice() []any
}

func toStarlarkValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case bool:
		return starlark.Bool(v), nil

	case string:
		return starlark.String(v), nil

	case int:
		return starlark.MakeInt(v), nil
	case int64:
		return starlark.MakeInt64(v), nil

	case float64:
		return starlark.Float(v), nil

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			sv, err := toStarlarkValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = sv
		}
		return starlark.NewList(elems), nil

	case map[string]any:
		d := starlark.NewDict(len(v))
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sv, err := toStarlarkValue(v[k])
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return d, nil

	case listable:
		return toStarlarkValue(v.ToSlice())

	}

	return nil, fmt.Errorf("%w: unsupported value %T", ErrScript, v)
}

func fromStarlarkValue(v starlark.Value) (any, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(v), nil

	case starlark.String:
		return string(v), nil

	case starlark.Int:
		i, ok := v.Int64()
		if !ok || i > math.MaxInt || i < math.MinInt {
			return nil, fmt.Errorf("%w: integer %s out of range", ErrScript, v)
		}
		return int(i), nil

	case starlark.Float:
		return float64(v), nil

	case starlark.Bytes:
		return string(v), nil

	case *starlark.List, starlark.Tuple:
		elems := v.(starlark.Indexable)
		out := make([]any, elems.Len())
		for i := range out {
			e, err := fromStarlarkValue(elems.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return out, nil

	case *starlark.Dict:
		out := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			k, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("%w: dict key %s is not a string", ErrScript, item[0].Type())
			}
			e, err := fromStarlarkValue(item[1])
			if err != nil {
				return nil, err
			}
			out[string(k)] = e
		}
		return out, nil

	}

	return nil, fmt.Errorf("%w: unsupported starlark value of type %s", ErrScript, v.Type())
}
