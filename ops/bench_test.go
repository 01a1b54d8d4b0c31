package ops_test

import (
	"testing"

	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// benchN is the element count for throughput benchmarks.
const benchN = 4096

// benchElems returns 0..benchN-1.
func benchElems() []int {
	elems := make([]int, benchN)
	for i := range elems {
		elems[i] = i
	}

	return elems
}

// BenchmarkCount compares the positional counting walk against a
// constant-time counting capability over the same elements.
func BenchmarkCount(b *testing.B) {
	elems := benchElems()

	b.Run("DefaultWalk", func(b *testing.B) {
		m := fixture.NewMinimal(elems...)

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Count[int](m)
		}
	})

	b.Run("CounterOverride", func(b *testing.B) {
		set, err := fixture.NewHashSet(hashIdent, eqInt, elems...)
		if err != nil {
			b.Fatal(err)
		}

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Count[int](set)
		}
	})
}

// BenchmarkMap compares the positional projection walk against a bulk
// transform capability over the same elements.
func BenchmarkMap(b *testing.B) {
	elems := benchElems()
	double := func(e int) int { return e * 2 }

	b.Run("DefaultWalk", func(b *testing.B) {
		m := fixture.NewMinimal(elems...)

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Map(m, double)
		}
	})

	b.Run("MapperOverride", func(b *testing.B) {
		c := fixture.NewCustomMap(elems...)

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Map(c, double)
		}
	})
}

// BenchmarkFind compares a worst-case linear scan against bucketed
// lookup; the target sits at the far end of the scan order.
func BenchmarkFind(b *testing.B) {
	elems := benchElems()
	target := benchN - 1

	b.Run("DefaultScan", func(b *testing.B) {
		m := fixture.NewMinimal(elems...)

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ops.Find(m, target, eqInt)
		}
	})

	b.Run("FinderOverride", func(b *testing.B) {
		set, err := fixture.NewHashSet(hashIdent, eqInt, elems...)
		if err != nil {
			b.Fatal(err)
		}

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ops.Find(set, target, eqInt)
		}
	})
}

// BenchmarkCollect measures the effect of a size estimate on the
// collection allocation profile.
func BenchmarkCollect(b *testing.B) {
	elems := benchElems()

	b.Run("NoEstimate", func(b *testing.B) {
		m := fixture.NewMinimal(elems...)

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Collect[int](m)
		}
	})

	b.Run("PreciseEstimate", func(b *testing.B) {
		c, err := fixture.NewCounted(fixture.EstimatePrecise, elems...)
		if err != nil {
			b.Fatal(err)
		}

		b.ReportAllocs()
		b.SetBytes(int64(benchN))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = ops.Collect[int](c)
		}
	})
}

// BenchmarkSplit measures separator splitting with a cut every eighth
// element; fragments are views, so the cost is the scan itself.
func BenchmarkSplit(b *testing.B) {
	elems := benchElems()
	m := fixture.NewMinimal(elems...)
	isSep := func(e int) bool { return e%8 == 7 }

	b.ReportAllocs()
	b.SetBytes(int64(benchN))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ops.Split(m, isSep)
	}
}
