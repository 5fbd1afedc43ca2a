package dfs_test

import (
	"testing"

	"github.com/katalvlaran/tessel/dfs"
)

// BenchmarkComponents_Grid256 labels a 256×256 plane (65,536 faces).
func BenchmarkComponents_Grid256(b *testing.B) {
	topo := buildGrid(b, 256, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Components(topo); err != nil {
			b.Fatal(err)
		}
	}
}
