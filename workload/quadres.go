// Package workload contains the fixed computational bodies measured by
// the benchmark programs: a quadratic-residue counter, a nested-loop
// accumulator, and a Monte Carlo pi estimator. Each body is a pure
// function of its parameters and owns its accumulator locally.
package workload

// DefaultModulus is the modulus swept by the function call benchmark.
const DefaultModulus int64 = 5000

// QuadRes returns 1 if n is a quadratic residue mod m, meaning some i
// in [0, m) satisfies i*i % m == n, and 0 otherwise. n is reduced into
// [0, m) first, so negative inputs are handled. Returns 0 when m <= 0.
// The i*i product limits m to about 3e9 before overflowing int64.
func QuadRes(n, m int64) int64 {
	if m <= 0 {
		return 0
	}

	n = (n%m + m) % m

	for i := int64(0); i < m; i++ {
		if i*i%m == n {
			return 1
		}
	}

	return 0
}

// CountQuadRes counts the quadratic residues mod m by testing every n
// in [0, m), one QuadRes call per candidate. Intentionally O(m*m): the
// per-candidate call boundary is what the benchmark measures.
func CountQuadRes(m int64) int64 {
	var count int64

	for n := int64(0); n < m; n++ {
		count += QuadRes(n, m)
	}

	return count
}
