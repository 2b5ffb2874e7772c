// Package colormatrix provides the catalog of named 3x3 color transform
// matrices used to simulate color vision deficiencies, and the chain
// resolution logic on top of it.
package colormatrix

// Matrix is a 3x3 linear transform over RGB pixel vectors. Rows correspond
// to output channels, columns to input channels, both in R, G, B order.
type Matrix [3][3]float64

// Apply multiplies the matrix with the given RGB vector.
//
// The result is not clipped; callers that need [0,255] byte channels are
// expected to clip and round themselves.
func (m Matrix) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

// Identity returns the matrix that maps every RGB vector to itself.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}
