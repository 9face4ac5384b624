// Package gdmath holds small game-design math helpers built on triangular
// numbers, useful for costing and leveling curves.
package gdmath

import "math"

// Triangular returns the nth triangular number, n*(n+1)/2.
// See https://en.wikipedia.org/wiki/Triangular_number
func Triangular(n int) int {
	return n * (n + 1) / 2
}

// TriangularRoot returns the triangular root of x, the inverse of
// Triangular: TriangularRoot(Triangular(n)) == n for positive n.
func TriangularRoot(x float64) float64 {
	return (math.Sqrt(x*8+1) - 1) / 2
}

// SuperiorTriangularRoot sums factor over the triangular roots of 1..n.
// Grows a little faster than the triangular root but follows a very
// similar curve.
func SuperiorTriangularRoot(n int, factor float64) float64 {
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += factor / TriangularRoot(float64(i))
	}
	return sum
}

// TriangularRootValue returns the value of a single point at the given
// triangular level, TriangularRoot(n)/n.
func TriangularRootValue(n int) float64 {
	return TriangularRoot(float64(n)) / float64(n)
}
