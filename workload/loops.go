package workload

// Nested-loop accumulator defaults: both indices sweep [1, 1000) and
// the accumulator is reduced mod 100000.
const (
	DefaultOuter      int64 = 1000
	DefaultInner      int64 = 1000
	DefaultSumModulus int64 = 100000
)

// LoopSum accumulates sum = (sum + i + j) % modulus over every i in
// [1, outer) and j in [1, inner), starting from zero. The reduction is
// applied after every addition step, never deferred to the end.
// modulus+outer+inner must fit in int64.
func LoopSum(outer, inner, modulus int64) int64 {
	var sum int64

	for i := int64(1); i < outer; i++ {
		for j := int64(1); j < inner; j++ {
			sum = (sum + i + j) % modulus
		}
	}

	return sum
}
