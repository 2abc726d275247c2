package workload

import "testing"

func TestQuadRes(t *testing.T) {
	tests := []struct {
		n, m int64
		want int64
	}{
		{0, 5, 1},
		{1, 5, 1},
		{2, 5, 0},
		{3, 5, 0},
		{4, 5, 1},
		{2, 7, 1}, // 3*3 mod 7 = 2
		{5, 7, 0},
		{0, 1, 1},
		{7, 5, 0},  // reduced to 2 before the scan
		{-1, 5, 1}, // reduced to 4
		{-3, 5, 0}, // reduced to 2
		{3, 0, 0},  // degenerate modulus
		{3, -2, 0},
	}

	for _, tt := range tests {
		got := QuadRes(tt.n, tt.m)
		if got != tt.want {
			t.Errorf("QuadRes(%d, %d) = %d, want %d",
				tt.n, tt.m, got, tt.want)
		}
	}
}

func TestCountQuadResSmall(t *testing.T) {
	tests := []struct {
		m    int64
		want int64
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3}, // residues mod 5 are {0, 1, 4}
		{8, 3},
		{10, 6},
	}

	for _, tt := range tests {
		got := CountQuadRes(tt.m)
		if got != tt.want {
			t.Errorf("CountQuadRes(%d) = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestCountQuadResMatchesSetReference(t *testing.T) {
	const m = DefaultModulus

	// Independent reference: mark every value i*i mod m takes, then
	// count the distinct marks.
	seen := make(map[int64]bool, m)
	for i := int64(0); i < m; i++ {
		seen[i*i%m] = true
	}

	want := int64(len(seen))

	got := CountQuadRes(m)
	if got != want {
		t.Errorf("CountQuadRes(%d) = %d, want %d", m, got, want)
	}
}

func TestCountQuadResDeterministic(t *testing.T) {
	const m = int64(997)

	first := CountQuadRes(m)
	second := CountQuadRes(m)

	if first != second {
		t.Errorf("CountQuadRes(%d) differs across runs: %d vs %d",
			m, first, second)
	}
}
