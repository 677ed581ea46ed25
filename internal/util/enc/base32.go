package enc

import (
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters using the RFC 4648 alphabet. Lower case input is
// accepted when decoding, so the output survives systems that fold case.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) []byte {
	return []byte(base32.StdEncoding.EncodeToString(data))
}

func (b *Base32Encoder) Decode(data []byte) ([]byte, error) {
	res, err := base32.StdEncoding.DecodeString(strings.ToUpper(string(data)))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
