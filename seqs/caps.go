package seqs

import "strings"

// Caps is the set of capabilities proven for a sequence.
//
// A missing bit means the property is not known, not that it is false: a
// sequence without CapBounded may still turn out to be finite.
type Caps uint8

const (
	// CapBounded: every traversal terminates.
	CapBounded Caps = 1 << iota
	// CapNonEmpty: every traversal yields at least one element.
	CapNonEmpty
	// CapImmutable: traversals always yield the same elements.
	CapImmutable
)

// Has reports whether c includes every capability in other.
func (c Caps) Has(other Caps) bool {
	return c&other == other
}

func (c Caps) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	if c.Has(CapBounded) {
		names = append(names, "bounded")
	}
	if c.Has(CapNonEmpty) {
		names = append(names, "nonempty")
	}
	if c.Has(CapImmutable) {
		names = append(names, "immutable")
	}
	return strings.Join(names, "|")
}

// MarshalText encodes the capability names, so Caps reads well in logs and
// JSON.
func (c Caps) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// concatCaps: bounded and immutable when both parts are, non-empty when
// either is.
func concatCaps(a, b Caps) Caps {
	return a&b&(CapBounded|CapImmutable) | (a|b)&CapNonEmpty
}

// zipCaps: bounded when either input is, non-empty and immutable when both
// are.
func zipCaps(a, b Caps) Caps {
	return (a|b)&CapBounded | a&b&(CapNonEmpty|CapImmutable)
}
