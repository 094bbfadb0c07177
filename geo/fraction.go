package geo

import "fmt"

// gcd computes the greatest common divisor by the Euclidean algorithm. For
// negative operands the result follows Go's truncated-remainder semantics and
// may come out negative; Reduced normalizes the sign afterwards.
func gcd[T Scalar](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fraction is the exact rational Num/Den. Fractions built by NewFraction
// never hold a zero denominator; beyond that they are plain values and may
// be unreduced.
type Fraction[T Scalar] struct {
	Num, Den T
}

// NewFraction builds Num/Den. A zero denominator is the single failure mode
// of this package: it panics with a domain error rather than returning one,
// since it can only be reached through a caller bug (the intersection code
// guards the parallel case before dividing).
func NewFraction[T Scalar](num, den T) Fraction[T] {
	if den == 0 {
		fatalf("fraction: division by 0")
	}
	return Fraction[T]{Num: num, Den: den}
}

// Float64 approximates the fraction for display and comparison convenience.
// No predicate in this package uses it.
func (f Fraction[T]) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// Reduced returns the equivalent fraction in lowest terms. The sign ends up
// on the numerator: the reduced denominator is always positive.
func (f Fraction[T]) Reduced() Fraction[T] {
	div := gcd(f.Num, f.Den)
	num, den := f.Num/div, f.Den/div
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction[T]{Num: num, Den: den}
}

// Reduce is the in-place form of Reduced.
func (f *Fraction[T]) Reduce() {
	*f = f.Reduced()
}

func (f Fraction[T]) String() string {
	return fmt.Sprintf("%v/%v", f.Num, f.Den)
}
