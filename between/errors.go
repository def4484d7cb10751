package between

import "errors"

var (
	// ErrAlphabetSize indicates the input held fewer than two distinct runes.
	ErrAlphabetSize = errors.New("between: alphabet must have at least two distinct characters")
)
