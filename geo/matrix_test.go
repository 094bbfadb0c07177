package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixAt(t *testing.T) {
	m := NewMatrix3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	// At takes (column, row)
	assert.Equal(t, 2, m.At(1, 0))
	assert.Equal(t, 4, m.At(0, 1))
	assert.Equal(t, 9, m.At(2, 2))

	m2 := NewMatrix2x2(
		1, 2,
		3, 4,
	)
	assert.Equal(t, 2, m2.At(1, 0))
	assert.Equal(t, 3, m2.At(0, 1))
}

func TestMatrix2x2Det(t *testing.T) {
	assert.Equal(t, 1, NewMatrix2x2(1, 0, 0, 1).Det())
	assert.Equal(t, -2, NewMatrix2x2(1, 2, 3, 4).Det())
	assert.Equal(t, 0, NewMatrix2x2(2, 4, 1, 2).Det())
}

func TestMatrix3x3Det(t *testing.T) {
	assert.Equal(t, 1, NewMatrix3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	).Det())
	assert.Equal(t, 21, NewMatrix3x3(
		2, 0, 1,
		1, 3, 2,
		0, 1, 4,
	).Det())
	// Two equal rows collapse the determinant
	assert.Equal(t, 0, NewMatrix3x3(
		1, 2, 3,
		1, 2, 3,
		4, 5, 6,
	).Det())
}

func TestMatrixArity(t *testing.T) {
	assert.Panics(t, func() { NewMatrix2x2(1, 2, 3) })
	assert.Panics(t, func() { NewMatrix3x3(1, 2, 3, 4) })
}
