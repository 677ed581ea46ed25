package enc

import (
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// -------------------------------------------------------

// HexEncoder encodes 1 byte to 2 characters. Upper case output, but accepts both cases and spaces
// between the digits when decoding, so dumps like "E8 32 9B" can be pasted directly.
type HexEncoder struct {
}

func (b *HexEncoder) Name() string {
	return "Hex"
}

func (b *HexEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *HexEncoder) Code() byte {
	return 'H'
}

func (b *HexEncoder) Encode(data []byte) []byte {
	return []byte(strings.ToUpper(hex.EncodeToString(data)))
}

func (b *HexEncoder) Decode(data []byte) ([]byte, error) {
	src := strings.Join(strings.Fields(string(data)), "")
	res, err := hex.DecodeString(src)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *HexEncoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *HexEncoder) Ratio() float64 {
	return 2.0
}
