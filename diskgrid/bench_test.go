package diskgrid_test

import (
	"testing"

	"github.com/katalvlaran/knotgrid/diskgrid"
)

// benchmarkNew builds the sample map with the given number of workers.
func benchmarkNew(b *testing.B, workers int) {
	for i := 0; i < b.N; i++ {
		if _, err := diskgrid.New("flqrgnkx", diskgrid.WithWorkers(workers)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Serial hashes all rows on one goroutine.
func BenchmarkNew_Serial(b *testing.B) { benchmarkNew(b, 1) }

// BenchmarkNew_Parallel8 hashes rows on eight goroutines.
func BenchmarkNew_Parallel8(b *testing.B) { benchmarkNew(b, 8) }
