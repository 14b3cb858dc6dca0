package configs

import (
	"fmt"
	"iter"
)

// AllJSON yields the JSON encoding of the value at path in every document
// defining it, in load order.
func (l Loader) AllJSON(path string) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for value, err := range l.IterCueValues(path) {
			if err != nil {
				yield(nil, err)
				return
			}
			b, err := value.MarshalJSON()
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}

// FirstJSON returns the JSON encoding of the first value found at path.
func (l Loader) FirstJSON(path string) ([]byte, error) {
	for b, err := range l.AllJSON(path) {
		return b, err
	}
	return nil, fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
