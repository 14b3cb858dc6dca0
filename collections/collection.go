package collections

import (
	"iter"

	jsoniter "github.com/json-iterator/go"
)

// Collection is an immutable, sized container of T values.
//
// Constructors copy their input and no method hands out the backing array,
// so the contents of a Collection never change after construction. That
// makes a Collection the concrete container behind every eager copy taken
// by package seqs: once a value is inside, later writes to the caller's
// slice are not observed.
//
// # Creating a collection
//
//	c := collections.Of(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(maps.Keys(m))
//
// # Reading
//
// A Collection is read through range-over-func iterators and accessors:
//
//	for v := range c.All() { ... }
//	for v := range c.Backward() { ... }
//	first, ok := c.First()
//
// Sub-ranges taken with [Collection.Slice] share the backing array, which
// is safe because nothing can write to it.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Of creates a Collection holding first followed by more, copying once.
func Of[T any](first T, more ...T) *Collection[T] {
	dst := make([]T, 0, len(more)+1)
	dst = append(dst, first)
	dst = append(dst, more...)
	return &Collection[T]{items: dst}
}

// Collect drains seq into a new Collection. It does not return for
// infinite iterators.
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All yields every item in order.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward yields every item from last to first.
func (c *Collection[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(c.items) - 1; i >= 0; i-- {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// Len returns the number of items in the collection.
func (c *Collection[T]) Len() int { return len(c.items) }

// First returns the first item.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last item.
func (c *Collection[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Slice returns the items in [from, to) as a Collection sharing this one's
// storage. Bounds are clamped to [0, Len()].
func (c *Collection[T]) Slice(from, to int) *Collection[T] {
	from = min(max(from, 0), len(c.items))
	to = min(max(to, from), len(c.items))
	return &Collection[T]{items: c.items[from:to:to]}
}

// ToSlice returns a copy of the items.
func (c *Collection[T]) ToSlice() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(c.items)
}

// MarshalJSON implements json.Marshaler.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}
