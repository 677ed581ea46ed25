package enc

import (
	"encoding/base64"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the RFC 4648 alphabet, with padding. This is
// the form most SMSC and SMPP tooling prints binary user data in.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) []byte {
	return []byte(base64.StdEncoding.EncodeToString(data))
}

func (b *Base64Encoder) Decode(data []byte) ([]byte, error) {
	res, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}
