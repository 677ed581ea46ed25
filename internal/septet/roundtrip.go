package septet

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// RoundTripError is returned by Verify when unpacking the packed septets does not give back the
// original sequence
type RoundTripError struct {
	Expected []byte
	Actual   []byte
}

func (e *RoundTripError) Error() string {
	if IsAmbiguous(e.Expected) {
		return fmt.Sprintf("round trip dropped the trailing zero septet: packed %d septets, unpacked %d", len(e.Expected), len(e.Actual))
	}
	return fmt.Sprintf("round trip mismatch: packed %d septets, unpacked %d", len(e.Expected), len(e.Actual))
}

// Verify packs and unpacks the septets and checks that the result is identical to the input. The
// error is a *DomainError if the input can't be packed at all and a *RoundTripError if the result
// differs.
func Verify(septets []byte) error {
	packed, err := Pack(septets)
	if err != nil {
		return err
	}
	if unpacked := Unpack(packed); !bytes.Equal(septets, unpacked) {
		return errors.WithStack(&RoundTripError{
			Expected: septets,
			Actual:   unpacked,
		})
	}
	return nil
}
