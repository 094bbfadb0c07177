package geo

import "github.com/pkg/errors"

// The only failure modes in this package are construction invariants: a
// Fraction with a zero denominator, or a matrix built from the wrong number
// of values. Both indicate a caller bug, so rather than threading error
// returns through every pure predicate, construction panics with a real
// error value and lets it propagate.

func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
