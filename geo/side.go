package geo

// Orientation classifies a point against a directed line as the sign of a
// determinant.
type Orientation int

const (
	Left Orientation = iota - 1
	Collinear
	Right
)

var orientationLabels = [3]string{"Left", "Collinear", "Right"}

func (o Orientation) String() string {
	return orientationLabels[o+1]
}

func sgn[T Scalar](value T) Orientation {
	switch {
	case value > 0:
		return Right
	case value < 0:
		return Left
	}
	return Collinear
}

// Side reports on which side of the directed line through seg the point
// lies. This is the cross-product orientation test: the sign of the
// determinant of the three homogeneous row vectors.
func Side[T Scalar](seg Segment[T], point Point[T]) Orientation {
	m := NewMatrix3x3(
		seg.Start.X, seg.Start.Y, 1,
		seg.End.X, seg.End.Y, 1,
		point.X, point.Y, 1,
	)
	return sgn(m.Det())
}

// SameSide reports whether both points lie on the same side of the line
// through seg. Two collinear points count as the same side; the intersection
// test depends on that.
func SameSide[T Scalar](seg Segment[T], point1, point2 Point[T]) bool {
	return Side(seg, point1) == Side(seg, point2)
}

// Contains reports whether the point lies on the segment itself: collinear
// with it and inside the inclusive bounding box of its endpoints. The box
// membership is two independent comparisons per axis.
func Contains[T Scalar](seg Segment[T], point Point[T]) bool {
	if Side(seg, point) != Collinear {
		return false
	}
	minX, maxX := minmax(seg.Start.X, seg.End.X)
	minY, maxY := minmax(seg.Start.Y, seg.End.Y)
	return minX <= point.X && point.X <= maxX &&
		minY <= point.Y && point.Y <= maxY
}

func minmax[T Scalar](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}
