package arr

import (
	"strconv"
	"strings"
)

// Get returns the value at path inside v. An empty path selects v itself.
func Get(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for seg := range strings.SplitSeq(path, ".") {
		switch c := cur.(type) {
		case map[string]any:
			next, ok := c[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Dot flattens v into a map from paths to leaves. Empty maps and lists are
// leaves. A scalar v is stored under the empty path.
func Dot(v any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", v, out)
	return out
}

func dotFlatten(prefix string, v any, out map[string]any) {
	switch c := v.(type) {
	case map[string]any:
		if len(c) > 0 {
			for k, e := range c {
				dotFlatten(join(prefix, k), e, out)
			}
			return
		}
	case []any:
		if len(c) > 0 {
			for i, e := range c {
				dotFlatten(join(prefix, strconv.Itoa(i)), e, out)
			}
			return
		}
	}
	out[prefix] = v
}

func join(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
