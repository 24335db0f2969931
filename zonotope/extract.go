// SPDX-License-Identifier: MIT

package zonotope

// DefaultBasisTol is the distance from {0, 1} below which a coordinate counts as integral.
const DefaultBasisTol = 1e-5

// ExtractBasis returns, ascending, the indices i with eps < y[i] < 1-eps.
// The result may be empty or of any length; callers compare it against r.
func ExtractBasis(y []float64, eps float64) []int {
	out := make([]int, 0, len(y))
	var (
		i int
		v float64
	)
	for i, v = range y {
		if v > eps && v < 1-eps {
			out = append(out, i)
		}
	}

	return out
}
