package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
	"unicode/utf8"
)

// cb128 maps every 7-bit group to a printable character: digits, ASCII letters, '-', '_' and the
// Latin-1 letters U+00C0 to U+00FF. The first 64 characters take one byte in UTF-8, the rest two.
var cb128 = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_" +
	"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿ")

var cb128Invert = func() map[rune]byte {
	res := make(map[rune]byte, len(cb128))
	for i, r := range cb128 {
		res[r] = byte(i)
	}
	return res
}()

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. The bytes are split into 7-bit groups MSB first,
// the same repacking as 8 septets into 7 octets the other way around, and every group is printed as
// one character of cb128.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) []byte {
	groups := base128.EncodeToString(src)
	dst := make([]rune, len(groups))
	for i := 0; i < len(groups); i++ {
		dst[i] = cb128[groups[i]&0x7F]
	}
	return []byte(string(dst))
}

func (b *Base128Encoder) Decode(data []byte) ([]byte, error) {
	groups := make([]byte, 0, len(data))
	for pos := 0; pos < len(data); {
		r, size := utf8.DecodeRune(data[pos:])
		c, ok := cb128Invert[r]
		if !ok {
			return nil, errors.Errorf("Invalid Base128 character %q at position %d", r, pos)
		}
		groups = append(groups, c)
		pos += size
	}

	res, err := base128.DecodeString(string(groups))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) TestPatterns() [][]byte {
	return packedPatterns
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
