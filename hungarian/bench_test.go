package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvassign/hungarian"
)

// benchmarkSolve runs Solve on a fixed random n×n matrix with opts.
func benchmarkSolve(b *testing.B, n int, opts hungarian.Options) {
	cost := randomInts(rand.New(rand.NewSource(seedDet)), n, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hungarian.Solve(cost, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_Konig8(b *testing.B) {
	benchmarkSolve(b, 8, optsFor(hungarian.KonigCover, hungarian.ExtractCarried))
}

func BenchmarkSolve_Konig32(b *testing.B) {
	benchmarkSolve(b, 32, optsFor(hungarian.KonigCover, hungarian.ExtractCarried))
}

func BenchmarkSolve_Konig64(b *testing.B) {
	benchmarkSolve(b, 64, optsFor(hungarian.KonigCover, hungarian.ExtractCarried))
}

func BenchmarkSolve_Potentials8(b *testing.B) {
	benchmarkSolve(b, 8, optsFor(hungarian.Potentials, hungarian.ExtractCarried))
}

func BenchmarkSolve_Potentials32(b *testing.B) {
	benchmarkSolve(b, 32, optsFor(hungarian.Potentials, hungarian.ExtractCarried))
}

func BenchmarkSolve_Potentials64(b *testing.B) {
	benchmarkSolve(b, 64, optsFor(hungarian.Potentials, hungarian.ExtractCarried))
}
