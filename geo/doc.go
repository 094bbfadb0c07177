// An exact-arithmetic predicate package for 2D segments.
//
// This package answers orientation, containment and intersection questions
// about line segments without ever leaving integer arithmetic, so the answers
// are exact: there are no epsilon tolerances anywhere. When two non-parallel
// segments intersect, the intersection point itself is available as a pair of
// reduced fractions, again with no rounding.
//
// It is a predicate library, not a geometry engine. There is no spatial
// index, no batch query machinery, and nothing beyond single segment pairs.
package geo
