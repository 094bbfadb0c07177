package geo

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar constrains the coordinate types the predicates operate on: signed
// integral types with ordering, equality, and the full `+ - * / %` operator
// set. Every decision in this package is made in exact arithmetic over
// Scalar; nothing is ever compared against an epsilon.
type Scalar interface {
	constraints.Signed
}

// Point is a plain coordinate pair. The type parameter is deliberately
// unconstrained so that exact results like Point[Fraction[int64]] can reuse
// it; the predicates themselves require a Scalar.
type Point[T any] struct {
	X, Y T
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v;%v)", p.X, p.Y)
}

// Segment is the directed segment from Start to End. Swapping the endpoints
// describes the same geometric object but flips every orientation sign.
type Segment[T any] struct {
	Start, End Point[T]
}
