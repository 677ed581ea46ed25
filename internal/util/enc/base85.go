package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters (Adobe ascii85, without the `<~ ~>` delimiters). A run
// of four zero bytes is written as a single "z", which keeps zero padded user data short.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) []byte {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	return dst[:ascii85.Encode(dst, data)]
}

func (b *Base85Encoder) Decode(data []byte) ([]byte, error) {
	// "z" stands for four zero bytes
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *Base85Encoder) Ratio() float64 {
	return 5.0 / 4.0
}
