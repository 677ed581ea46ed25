package enc

import (
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits. The
// standard basE91 alphabet is used: all printable ASCII except space, apostrophe, hyphen and backslash.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) []byte {
	return []byte(base91.StdEncoding.EncodeToString(data))
}

func (b *Base91Encoder) Decode(data []byte) ([]byte, error) {
	res, err := base91.StdEncoding.DecodeString(string(data))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base91Encoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *Base91Encoder) Ratio() float64 {
	return 16.0 / 13.0
}
