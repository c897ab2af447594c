package decimal

import (
	"errors"
	"fmt"
)

// Separator is the thousands-grouping character accepted and produced.
const Separator = ','

var (
	// ErrInvalidDigitSequence is returned when an operand, after separator
	// removal, is empty or contains a character outside 0-9.
	ErrInvalidDigitSequence = errors.New("invalid digit sequence")

	// ErrMalformedGrouping is returned by strict callers when separators are
	// not placed every three digits. It wraps ErrInvalidDigitSequence.
	ErrMalformedGrouping = fmt.Errorf("malformed grouping: %w", ErrInvalidDigitSequence)
)
