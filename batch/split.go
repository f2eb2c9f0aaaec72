package batch

import (
	"math"

	"github.com/go-sif/tidy/errors"
)

// Split divides values into numSplits contiguous, near-equal slices. Boundary i is
// round(i * (len(values) / numSplits)), rounding half to even, so slices may be empty
// when numSplits exceeds len(values). Every value appears in exactly one slice, and the
// concatenation of the slices is values.
func Split[V any](values []V, numSplits int) ([][]V, error) {
	if numSplits <= 0 {
		return nil, errors.InvalidArgumentError{Name: "numSplits", Reason: "must be at least 1"}
	}
	division := float64(len(values)) / float64(numSplits)
	boundary := func(i int) int {
		b := int(math.RoundToEven(division * float64(i)))
		if b > len(values) {
			return len(values)
		}
		return b
	}
	parts := make([][]V, numSplits)
	for i := range parts {
		start, end := boundary(i), boundary(i+1)
		parts[i] = values[start:end:end]
	}
	return parts, nil
}
