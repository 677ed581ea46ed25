package septet

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
)

// DomainError is returned when a value that should be a septet does not fit into 7 bits.
type DomainError struct {
	// Index is the position of the offending value in the input
	Index int
	// Value is the offending value itself
	Value byte
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value 0x%02X at index %d is not a septet (must be <= 0x%02X)", e.Value, e.Index, Mask)
}

// Validate checks every value of the input and returns a *multierror.Error listing a *DomainError for
// each value out of range, or nil if the input is a valid septet sequence.
func Validate(septets []byte) error {
	var errs *multierror.Error
	for i, s := range septets {
		if s > Mask {
			errs = multierror.Append(errs, &DomainError{Index: i, Value: s})
		}
	}
	return errs.ErrorOrNil()
}

// firstInvalid returns the first out-of-range value as an error. Used by Pack to fail fast.
func firstInvalid(septets []byte) error {
	for i, s := range septets {
		if s > Mask {
			return &DomainError{Index: i, Value: s}
		}
	}
	return nil
}
