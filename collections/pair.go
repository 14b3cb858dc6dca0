package collections

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Pair holds two values of possibly different types.
// It is the element type produced by seqs.Zip and seqs.Cross.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{first, second}.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal([2]any{p.First, p.Second})
}
