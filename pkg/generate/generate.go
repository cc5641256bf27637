package generate

import (
	"math"
	"math/rand"
)

// MaxValue is the exclusive upper bound for generated array elements.
const MaxValue = 100000

// RandomArray produces n elements, each drawn independently as
// floor(U * MaxValue) with U uniform in [0, 1). The random source is an
// explicit parameter so callers control seeding and repeatability.
func RandomArray(gen *rand.Rand, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Floor(gen.Float64() * MaxValue)
	}

	return data
}
