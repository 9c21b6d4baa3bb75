package rankfit

import "errors"

var (
	// ErrConfiguration marks an invalid bin configuration, either at
	// construction or checked against the dataset size at call time.
	ErrConfiguration = errors.New("rankfit: invalid configuration")

	// ErrInputShape marks mismatched or empty score/label sequences.
	ErrInputShape = errors.New("rankfit: invalid input shape")

	// ErrInputValue marks non-binary labels or non-finite scores.
	ErrInputValue = errors.New("rankfit: invalid input value")
)
