package density

import (
	"math"
	"testing"
)

func TestISqrt(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{143, 11},
		{144, 12},
		{145, 12},
		{1 << 40, 1 << 20},
		{1<<40 - 1, 1<<20 - 1},
		{1 << 62, 1 << 31},
		{math.MaxInt64, 3037000499},
	}
	for _, tt := range tests {
		if got := ISqrt(tt.n); got != tt.want {
			t.Errorf("ISqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestISqrtMatchesFloor(t *testing.T) {
	limit := 10_000_000
	if testing.Short() {
		limit = 100_000
	}
	for n := 0; n <= limit; n++ {
		want := int(math.Sqrt(float64(n)))
		if got := ISqrt(n); got != want {
			t.Fatalf("ISqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestISqrtSquaresAndNeighbors(t *testing.T) {
	for r := 1; r < 1<<16; r += 7 {
		sq := r * r
		if got := ISqrt(sq); got != r {
			t.Fatalf("ISqrt(%d) = %d, want %d", sq, got, r)
		}
		if got := ISqrt(sq - 1); got != r-1 {
			t.Fatalf("ISqrt(%d) = %d, want %d", sq-1, got, r-1)
		}
	}
}

func BenchmarkISqrt(b *testing.B) {
	b.ReportAllocs()
	n := 0
	for i := 0; i < b.N; i++ {
		n += ISqrt(n&0xffff + 12345)
	}
	_ = n
}
