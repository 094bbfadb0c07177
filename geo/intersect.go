package geo

// Intersects reports whether the two segments share at least one point. A
// proper crossing is caught by the straddling test (each segment's endpoints
// on opposite sides of the other's line); touching endpoints, T-junctions and
// collinear overlap fall through to the four containment checks.
func Intersects[T Scalar](seg1, seg2 Segment[T]) bool {
	return (!SameSide(seg1, seg2.Start, seg2.End) && !SameSide(seg2, seg1.Start, seg1.End)) ||
		Contains(seg1, seg2.Start) || Contains(seg1, seg2.End) ||
		Contains(seg2, seg1.Start) || Contains(seg2, seg1.End)
}

// Intersection computes, by Cramer's rule over 2x2 determinants, the exact
// intersection point of the two infinite lines through the segments. ok is
// false when the lines are parallel or coincident; collinear overlapping
// segments therefore get no point even when Intersects reports true. The
// point is not clamped to the segments' extents, so callers wanting a bounded
// intersection must confirm it with Intersects first.
func Intersection[T Scalar](seg1, seg2 Segment[T]) (point Point[Fraction[T]], ok bool) {
	den := NewMatrix2x2(
		seg1.Start.X-seg1.End.X, seg1.Start.Y-seg1.End.Y,
		seg2.Start.X-seg2.End.X, seg2.Start.Y-seg2.End.Y,
	)

	denDet := den.Det()

	// parallel lines
	if denDet == 0 {
		return point, false
	}

	m1 := NewMatrix2x2(
		seg1.Start.X, seg1.Start.Y,
		seg1.End.X, seg1.End.Y,
	)

	m2 := NewMatrix2x2(
		seg2.Start.X, seg2.Start.Y,
		seg2.End.X, seg2.End.Y,
	)

	xnum := NewMatrix2x2(
		m1.Det(), seg1.Start.X-seg1.End.X,
		m2.Det(), seg2.Start.X-seg2.End.X,
	)

	ynum := NewMatrix2x2(
		m1.Det(), seg1.Start.Y-seg1.End.Y,
		m2.Det(), seg2.Start.Y-seg2.End.Y,
	)

	point = Point[Fraction[T]]{
		X: NewFraction(xnum.Det(), denDet).Reduced(),
		Y: NewFraction(ynum.Det(), denDet).Reduced(),
	}
	return point, true
}
