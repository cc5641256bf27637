package transform

import "gonum.org/v1/gonum/floats"

// Square returns a * a.
func Square(a float64) float64 {
	return a * a
}

// MxPlusB returns m*x + b.
func MxPlusB(m, x, b float64) float64 {
	return m*x + b
}

// SquareAll writes src[i]*src[i] into dst for every index.
// dst and src must have equal length.
func SquareAll(dst, src []float64) {
	floats.MulTo(dst, src, src)
}

// LinearAll writes m*src[i] + b into dst for every index.
// dst and src must have equal length.
func LinearAll(dst []float64, m float64, src []float64, b float64) {
	floats.ScaleTo(dst, m, src)
	floats.AddConst(b, dst)
}

// FieldAt sums the inverse-square-distance contribution of every element
// of arr at index i: sum over n != i of arr[n] / (i-n)^2. The term at
// n == i is skipped to avoid a zero distance. Arrays with fewer than two
// elements have no valid terms, so the result is 0.
func FieldAt(i int, arr []float64) float64 {
	var out float64

	for n := range arr {
		distance := i - n
		if distance == 0 {
			continue
		}

		sqDistance := float64(distance * distance)
		out += (1.0 / sqDistance) * arr[n]
	}

	return out
}

// FieldAll writes FieldAt(i, src) into dst for every index i. This is
// O(len(src)) per index, O(len(src)^2) for the full pass.
// dst and src must have equal length.
func FieldAll(dst, src []float64) {
	for i := range dst {
		dst[i] = FieldAt(i, src)
	}
}
