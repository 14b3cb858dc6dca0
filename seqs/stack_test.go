package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seqs/seqs"
)

func TestDeepAppend(t *testing.T) {
	s := seqs.Empty[int]().Append(0)
	for i := 1; i < 50_000; i++ {
		s = s.Append(i)
	}
	require.Equal(t, 50_000, s.Size())
	got := s.ToSlice()
	assert.Equal(t, rangeInts(0, 49_999), got)
	assert.Equal(t, 49_999, s.Last())
}

func TestDeepPrepend(t *testing.T) {
	s := seqs.Singleton(50_000)
	for i := 49_999; i >= 1; i-- {
		s = s.Prepend(i)
	}
	assert.Equal(t, 1, s.Head())
	assert.Equal(t, rangeInts(1, 50_000), s.ToSlice())
}

func TestDeepConcat(t *testing.T) {
	ten := seqs.CopySlice(rangeInts(0, 9))
	s := seqs.Empty[int]()
	for range 10_000 {
		s = s.ConcatImmutableFinite(ten)
	}
	assert.Equal(t, 100_000, s.Size())
	sum := 0
	for v := range s.All() {
		sum += v
	}
	assert.Equal(t, 45*10_000, sum)
}

func TestDeepDrop(t *testing.T) {
	s := seqs.FromSlice(rangeInts(1, 10_003))
	for range 10_000 {
		s = s.Drop(1)
	}
	assert.Equal(t, []int{10_001, 10_002, 10_003}, s.ToSlice())
}

func TestDeepDropOverOpaqueSource(t *testing.T) {
	s := seqs.FiniteOf[int](opaque(rangeInts(1, 10_003)...))
	for range 10_000 {
		s = s.Drop(1)
	}
	assert.Equal(t, []int{10_001, 10_002, 10_003}, s.ToSlice())
}

func TestDeepFilterMap(t *testing.T) {
	s := seqs.Enhance[int](&counter{})
	for range 10_000 {
		s = seqs.Map(s.Filter(func(v int) bool { return v > 0 }), func(v int) int { return v + 1 })
	}
	assert.Equal(t, []int{10_001, 10_002}, s.Take(2).ToSlice())
}

func TestDeepTails(t *testing.T) {
	n := 0
	for suffix := range seqs.TailsFinite[int](seqs.FromSlice(rangeInts(1, 10_000))).All() {
		if n == 9_999 {
			assert.Equal(t, []int{10_000}, suffix.ToSlice())
		}
		n++
	}
	assert.Equal(t, 10_001, n)
}

func TestDeepMixedChain(t *testing.T) {
	s := seqs.Empty[int]().Seq()
	var want []int
	for i := range 50_000 {
		switch i % 4 {
		case 0:
			s = s.Append(i).Seq().Append(i + 1).Seq()
			want = append(want, i, i+1)
		case 1:
			s = s.Filter(func(v int) bool { return v%5 != 0 })
			want = slices.DeleteFunc(want, func(v int) bool { return v%5 == 0 })
		case 2:
			s = s.Drop(1)
			want = want[min(1, len(want)):]
		case 3:
			s = seqs.Map(s, func(v int) int { return v + 1 })
			for j := range want {
				want[j]++
			}
		}
	}
	got := []int{}
	for v := range s.All() {
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

func TestDeepAppendFilter(t *testing.T) {
	s := seqs.Empty[int]().Seq()
	for i := range 50_000 {
		s = s.Append(i).Seq().Filter(func(v int) bool { return v%1000 == 0 })
	}
	got := []int{}
	for v := range s.All() {
		got = append(got, v)
	}
	require.Len(t, got, 50)
	assert.Equal(t, 49_000, got[49])
}
