package statmech

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive or non-finite model input.
	ErrInvalidParameter = errors.New("statmech: parameter must be positive and finite")

	// ErrInvalidSamples indicates a sample count below one.
	ErrInvalidSamples = errors.New("statmech: sample count must be at least 1")
)

func positive(vals ...float64) error {
	for _, v := range vals {
		if !(v > 0) || v > 1e300 {
			return ErrInvalidParameter
		}
	}
	return nil
}
