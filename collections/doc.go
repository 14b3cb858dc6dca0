// Package collections provides the immutable, sized container that backs
// eager copies in package seqs, and the Pair type used by zips.
//
// # Overview
//
// The central type is [Collection][T]. It is built once, by copying:
//
//	c := collections.Of(1, 2, 3)
//	c := collections.From(items)
//	c := collections.Collect(seq)
//
// and is only ever read afterwards:
//
//	for v := range c.All() { ... }
//	for v := range c.Backward() { ... }
//	last, ok := c.Last()
//
// A Collection satisfies seqs.Sized, so handing one to a seqs constructor
// tags the resulting sequence as bounded (and non-empty when Len() > 0)
// without iterating it. Sequences backed by a Collection reverse, take and
// drop without copying, and find their last element without a traversal.
//
// # Immutability
//
// There are no mutating methods and the backing array never escapes.
// [Collection.ToSlice] returns a copy and [Collection.Slice] returns a view
// that is itself read-only. Collection values are therefore safe to share
// across goroutines without locking.
//
// # JSON
//
// [Collection.ToJSON] and [Pair.MarshalJSON] encode with json-iterator in
// its standard-library compatible configuration.
package collections
