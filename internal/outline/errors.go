package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the label list is missing or cannot be
	// processed as a depth-first outline.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedLabel is returned when a label is not a dotted-decimal number.
	ErrMalformedLabel = errors.New("malformed label")
)

// LabelError describes a single label that failed to parse.
type LabelError struct {
	Index  int    // Position in the input list, -1 when parsed standalone.
	Label  string // Raw label text.
	Reason string
}

func (e *LabelError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s %q: %s", ErrMalformedLabel, e.Label, e.Reason)
	}
	return fmt.Sprintf("%s %q at index %d: %s", ErrMalformedLabel, e.Label, e.Index, e.Reason)
}

func (e *LabelError) Unwrap() error {
	return ErrMalformedLabel
}
