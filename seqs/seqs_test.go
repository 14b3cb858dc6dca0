package seqs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seqs/collections"
	"github.com/hasbyte1/go-seqs/seqs"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestEnhanceIdentity(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	e := seqs.Enhance[int](s)
	assert.Equal(t, s.Caps(), e.Caps())
	assert.Equal(t, s.Seq(), e)
}

func TestSizedSourcesAreTaggedWithoutIterating(t *testing.T) {
	assert.Equal(t, seqs.CapBounded|seqs.CapNonEmpty, seqs.Enhance[int](seqs.Slice[int]{1, 2}).Caps())
	assert.Equal(t, seqs.CapBounded, seqs.Enhance[int](seqs.Slice[int]{}).Caps())
	assert.Equal(t, seqs.CapBounded|seqs.CapNonEmpty, seqs.Enhance[int](collections.New(1)).Caps())
	assert.Equal(t, seqs.Caps(0), seqs.Enhance[int](opaque(1, 2)).Caps())
}

func TestOpaqueSourcesAreNotConsumed(t *testing.T) {
	c := &counter{}
	s := seqs.Enhance[int](c)
	_ = s.Filter(func(int) bool { return true }).Drop(3).Take(2)
	_ = seqs.Map(s, strconv.Itoa)
	_, ok := s.ToFinite()
	assert.False(t, ok)
	assert.Equal(t, 0, c.pulled)
}

func TestFiniteOfTrustsTheCaller(t *testing.T) {
	f := seqs.FiniteOf[int](opaque(1, 2, 3))
	assert.True(t, f.Caps().Has(seqs.CapBounded))
	assert.False(t, f.Caps().Has(seqs.CapNonEmpty))
	assert.Equal(t, 3, f.Size())
}

func TestFromSliceObservesWrites(t *testing.T) {
	xs := []int{1, 2, 3}
	f := seqs.FromSlice(xs)
	xs[0] = 9
	assert.Equal(t, []int{9, 2, 3}, f.ToSlice())
}

func TestImmutableCrossingCopies(t *testing.T) {
	xs := []int{1, 2, 3}
	c := seqs.CopySlice(xs)
	i := seqs.ImmutableOf[int](seqs.Slice[int](xs))
	xs[0] = 9
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, collect[int](i))
	assert.Equal(t, seqs.CapBounded|seqs.CapNonEmpty|seqs.CapImmutable, i.Caps())
}

func TestCopyingImmutableIsNoop(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	assert.Equal(t, s.ImmutableFinite(), seqs.CopyFrom[int](s))
	assert.Equal(t, s.ImmutableFinite(), seqs.ImmutableFiniteOf[int](s))
}

func TestCopyCanonicalForms(t *testing.T) {
	assert.Equal(t, seqs.Empty[int](), seqs.CopyFrom[int](seqs.FromSlice([]int{})))
	assert.Equal(t, seqs.Singleton(7).ImmutableFinite(), seqs.CopyFrom[int](seqs.FromSlice([]int{7})))
	assert.Equal(t, seqs.Empty[int](), seqs.CopyN[int](0, &counter{}))
}

func TestCopyN(t *testing.T) {
	c := &counter{}
	got := seqs.CopyN[int](4, c)
	assert.Equal(t, []int{1, 2, 3, 4}, got.ToSlice())
	assert.Equal(t, 4, c.pulled)
	assertPanicsWith(t, seqs.ErrNegativeCount, func() { seqs.CopyN[int](-1, c) })
}

func TestOfAndSingleton(t *testing.T) {
	assert.Equal(t, seqs.Singleton(1), seqs.Of(1))
	s := seqs.Of("a", "b")
	assert.Equal(t, "a", s.Head())
	assert.Equal(t, "b", s.Last())
	assert.Equal(t, 2, s.Size())
}

func TestRepeat(t *testing.T) {
	r := seqs.Repeat("x")
	assert.Equal(t, "x", r.Head())
	assert.Equal(t, []string{"x", "x", "x"}, r.Take(3).ToSlice())
	assert.Equal(t, seqs.CapNonEmpty|seqs.CapImmutable, r.Tail().Caps())
	_, ok := r.ToFinite()
	assert.False(t, ok)
}

func TestNonEmptyOf(t *testing.T) {
	s := seqs.NonEmptyOf[int](0, opaque(1, 2))
	assert.Equal(t, 0, s.Head())
	assert.Equal(t, []int{1, 2}, collect[int](s.Tail()))
	assert.Equal(t, []int{0, 1, 2}, collect[int](s))

	f := seqs.NonEmptyFiniteOf[int](0, seqs.Empty[int]())
	assert.Equal(t, []int{0}, f.ToSlice())
	assert.True(t, f.Caps().Has(seqs.CapBounded|seqs.CapNonEmpty))

	i := seqs.ImmutableNonEmptyFiniteOf[int](0, seqs.Of(1, 2))
	assert.Equal(t, seqs.CapBounded|seqs.CapNonEmpty|seqs.CapImmutable, i.Caps())
	assert.Equal(t, []int{0, 1, 2}, i.ToSlice())
}

func TestNilArguments(t *testing.T) {
	assertPanicsWith(t, seqs.ErrNilSource, func() { seqs.Enhance[int](nil) })
	assertPanicsWith(t, seqs.ErrNilSource, func() { seqs.Of(1).Concat(nil) })
	assertPanicsWith(t, seqs.ErrNilFunc, func() { seqs.Of(1).Filter(nil) })
	assertPanicsWith(t, seqs.ErrNilFunc, func() { seqs.Map[int, int](seqs.Of(1), nil) })
	assertPanicsWith(t, seqs.ErrNilFunc, func() { seqs.FoldLeft[int, int](seqs.Of(1), nil, 0) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Unsafe promotion
// ─────────────────────────────────────────────────────────────────────────────

func TestUnsafeNonEmptyIsLazy(t *testing.T) {
	s := seqs.UnsafeNonEmpty[int](opaque[int]())
	assert.True(t, s.Caps().Has(seqs.CapNonEmpty))
	assert.False(t, s.IsEmpty())
	assertPanicsWith(t, seqs.ErrCapabilityViolation, func() { collect[int](s) })
	assertPanicsWith(t, seqs.ErrCapabilityViolation, func() { s.Head() })
}

func TestUnsafeNonEmptyPassesThroughElements(t *testing.T) {
	s := seqs.UnsafeNonEmptyFinite[int](seqs.FiniteOf[int](opaque(4, 5)))
	assert.Equal(t, 4, s.Head())
	assert.Equal(t, 5, s.Last())
	assert.Equal(t, []int{5}, s.Tail().ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Promotion
// ─────────────────────────────────────────────────────────────────────────────

func TestToFiniteOnBoundedKeepsContents(t *testing.T) {
	for _, s := range []seqs.Sequence[int]{
		seqs.FromSlice([]int{3, 1, 2}),
		seqs.Of(3, 1, 2),
		seqs.Enhance[int](seqs.Slice[int]{3, 1, 2}),
		seqs.Enhance[int](opaque(3, 1, 2, 4)).Take(3),
	} {
		f, ok := seqs.TryFinite[int](s)
		require.True(t, ok)
		assert.Equal(t, collect[int](s), f.ToSlice())
	}
}

func TestToNonEmptyOnEmpty(t *testing.T) {
	_, ok := seqs.FromSlice([]int{}).ToNonEmpty()
	assert.False(t, ok)
	_, ok = seqs.Empty[int]().ToNonEmpty()
	assert.False(t, ok)
	_, ok = seqs.Enhance[int](opaque[int]()).ToNonEmpty()
	assert.False(t, ok)
}

func TestToNonEmptySplitsHeadAndTail(t *testing.T) {
	ne, ok := seqs.FromSlice([]int{1, 2, 3}).ToNonEmpty()
	require.True(t, ok)
	assert.Equal(t, 1, ne.Head())
	assert.Equal(t, []int{2, 3}, ne.Tail().ToSlice())
}

func TestUnconsConsumesExactlyOne(t *testing.T) {
	c := &counter{}
	head, tail, ok := seqs.Uncons[int](c)
	require.True(t, ok)
	assert.Equal(t, 1, head)
	assert.Equal(t, 1, c.pulled)

	assert.Equal(t, []int{2, 3}, tail.Take(2).ToSlice())
	ne, _ := seqs.TryNonEmpty[int](c)
	assert.Equal(t, 1, ne.Head())
	assert.Equal(t, []int{1, 2}, ne.Take(2).ToSlice())
}

func TestDynamicTagRecovery(t *testing.T) {
	// Concat of two bounded sequences through the untyped method keeps the
	// bound in the tag.
	s := seqs.FromSlice([]int{1}).Concat(seqs.Of(2, 3))
	f, ok := s.ToFinite()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, f.ToSlice())

	taken := seqs.Of(1, 2, 3).Take(2)
	assert.True(t, taken.Caps().Has(seqs.CapNonEmpty))
	ne, ok := taken.ToNonEmpty()
	require.True(t, ok)
	assert.Equal(t, 1, ne.Head())
}

func TestIsEmpty(t *testing.T) {
	c := &counter{}
	assert.False(t, seqs.Enhance[int](c).IsEmpty())
	assert.Equal(t, 1, c.pulled)
	assert.True(t, seqs.Empty[int]().IsEmpty())
	assert.True(t, seqs.Of(1, 2).Drop(2).IsEmpty())
	assert.False(t, seqs.Repeat(0).IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Empty and Singleton
// ─────────────────────────────────────────────────────────────────────────────

func TestSingletonTailIsCanonicalEmpty(t *testing.T) {
	assert.Equal(t, seqs.Empty[int](), seqs.Singleton(1).Tail())
	assert.Equal(t, seqs.Empty[int](), seqs.Singleton(1).Init())
}

func TestSingletonFastPaths(t *testing.T) {
	s := seqs.Singleton(5)
	assert.Equal(t, 5, s.Last())
	assert.Equal(t, s, s.Reverse())
	assert.Equal(t, s, s.DistinctBy(func(v int) any { return v }))
	assert.Equal(t, []int{5, 6}, s.Append(6).ToSlice())
	assert.Equal(t, []int{4, 5}, s.Prepend(4).ToSlice())
	assert.Equal(t, 5, s.ReduceLeft(func(a, b int) int { return a + b }))
	assert.Equal(t, []string{"5"}, seqs.MapImmutableNonEmptyFinite(s, strconv.Itoa).ToSlice())
	assert.Equal(t, []int{5, 5, 5}, s.Cycle().Take(3).ToSlice())
}

func TestEmptyAppend(t *testing.T) {
	s := seqs.Empty[int]().Append(1)
	assert.Equal(t, seqs.Singleton(1), s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Laws
// ─────────────────────────────────────────────────────────────────────────────

func TestReIterable(t *testing.T) {
	s := seqs.Map(seqs.FromSlice([]int{1, 2, 3, 4}).Filter(func(n int) bool { return n != 2 }).Seq(), strconv.Itoa)
	assert.Equal(t, collect[string](s), collect[string](s))

	ne, _ := seqs.Enhance[int](opaque(1, 2, 3)).ToNonEmpty()
	assert.Equal(t, collect[int](ne), collect[int](ne))
}

func TestFunctorLaws(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 3})
	id := seqs.MapFinite(s, func(n int) int { return n })
	assert.Equal(t, s.ToSlice(), id.ToSlice())

	f := func(n int) int { return n * 2 }
	g := strconv.Itoa
	left := seqs.MapFinite(seqs.MapFinite(s, f), g)
	right := seqs.MapFinite(s, func(n int) string { return g(f(n)) })
	assert.Equal(t, right.ToSlice(), left.ToSlice())
}

func TestTakeDropLaws(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 3})
	assert.True(t, s.Take(0).IsEmpty())
	for n := range 6 {
		assert.Equal(t, min(n, 3), s.Take(n).Size())
	}
	assert.Equal(t, s.ToSlice(), s.Drop(0).ToSlice())
	assert.True(t, s.Drop(3).IsEmpty())
	assert.True(t, s.Drop(10).IsEmpty())

	assertPanicsWith(t, seqs.ErrNegativeCount, func() { s.Take(-1) })
	assertPanicsWith(t, seqs.ErrNegativeCount, func() { s.Drop(-1) })
}

func TestConcatIdentity(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2})
	e := seqs.Empty[int]()
	assert.Equal(t, []int{1, 2}, e.ConcatFinite(s).ToSlice())
	assert.Equal(t, []int{1, 2}, s.ConcatFinite(e).ToSlice())
}

func TestReverseInvolution(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 3})
	assert.Equal(t, []int{3, 2, 1}, s.Reverse().ToSlice())
	assert.Equal(t, s.ToSlice(), s.Reverse().Reverse().ToSlice())
}

func TestDistinct(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 2, 3, 3, 3, 2, 2, 1, 4})
	assert.Equal(t, []int{1, 2, 3, 4}, seqs.Distinct[int](s).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, s.DistinctBy(func(n int) any { return n }).ToSlice())

	words := seqs.Of("a", "B", "b", "A")
	lower := func(s string) any { return string(s[0] | 0x20) }
	assert.Equal(t, []string{"a", "B"}, words.DistinctBy(lower).ToSlice())
}

func TestIteratorRejectsRemoval(t *testing.T) {
	for _, s := range []seqs.Sequence[int]{
		seqs.FromSlice([]int{1, 2}),
		seqs.Of(1, 2),
		seqs.Empty[int]().Seq(),
		seqs.Repeat(1).Seq(),
	} {
		it := s.Iterator()
		assert.ErrorIs(t, it.Remove(), seqs.ErrMutationNotSupported)
		it.HasNext()
		assert.ErrorIs(t, it.Remove(), seqs.ErrMutationNotSupported)
		it.Stop()
	}
}

func TestCopiedViews(t *testing.T) {
	c := seqs.Of(1, 2, 3, 4, 5)
	assert.Equal(t, []int{2, 3}, c.Drop(1).Take(2).ToSlice())
	assert.Equal(t, "bounded|immutable", c.Drop(1).Caps().String())
	assert.Equal(t, "bounded|nonempty|immutable", c.Take(2).Caps().String())
	assert.True(t, c.Drop(5).IsEmpty())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, c.Reverse().ToSlice())
	assert.Equal(t, 5, c.Last())

	b, err := c.Drop(3).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[4,5]", string(b))
}
