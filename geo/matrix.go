package geo

// Fixed-size matrices, used purely as scratch values to host a determinant
// computation. They are constructed once from a row-major value list and
// never mutated; no caller retains one beyond the expression that built it.

type Matrix2x2[T Scalar] struct {
	vals [4]T
}

type Matrix3x3[T Scalar] struct {
	vals [9]T
}

// NewMatrix2x2 builds a 2x2 matrix from exactly four row-major values.
func NewMatrix2x2[T Scalar](values ...T) Matrix2x2[T] {
	var m Matrix2x2[T]
	if len(values) != len(m.vals) {
		fatalf("matrix: need %d values, got %d", len(m.vals), len(values))
	}
	copy(m.vals[:], values)
	return m
}

// NewMatrix3x3 builds a 3x3 matrix from exactly nine row-major values.
func NewMatrix3x3[T Scalar](values ...T) Matrix3x3[T] {
	var m Matrix3x3[T]
	if len(values) != len(m.vals) {
		fatalf("matrix: need %d values, got %d", len(m.vals), len(values))
	}
	copy(m.vals[:], values)
	return m
}

// At returns the value at the given column and row.
func (m Matrix2x2[T]) At(col, row int) T {
	return m.vals[row*2+col]
}

// At returns the value at the given column and row.
func (m Matrix3x3[T]) At(col, row int) T {
	return m.vals[row*3+col]
}

// Det is the 2x2 determinant, a*d - b*c.
func (m Matrix2x2[T]) Det() T {
	return m.At(0, 0)*m.At(1, 1) - m.At(1, 0)*m.At(0, 1)
}

// Det is the 3x3 determinant by the six-term cofactor expansion.
func (m Matrix3x3[T]) Det() T {
	return m.At(0, 0)*m.At(1, 1)*m.At(2, 2) +
		m.At(0, 1)*m.At(1, 2)*m.At(2, 0) +
		m.At(0, 2)*m.At(1, 0)*m.At(2, 1) -
		m.At(2, 0)*m.At(1, 1)*m.At(0, 2) -
		m.At(2, 1)*m.At(1, 2)*m.At(0, 0) -
		m.At(2, 2)*m.At(1, 0)*m.At(0, 1)
}
