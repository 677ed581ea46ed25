package enc

import (
	"strings"

	"github.com/pkg/errors"
)

// Encoder turns packed octets into printable text and back
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) []byte

	// Decode is the reverse process of encoding
	Decode([]byte) ([]byte, error)

	// TestPatterns returns packed octet samples the encoder must reproduce exactly
	TestPatterns() [][]byte

	// Ratio returns the number of output characters per packed octet
	Ratio() float64
}

var (
	RawEncoding     = &RawEncoder{}
	HexEncoding     = &HexEncoder{}
	Base32Encoding  = &Base32Encoder{}
	Base64Encoding  = &Base64Encoder{}
	Base85Encoding  = &Base85Encoder{}
	Base91Encoding  = &Base91Encoder{}
	Base128Encoding = &Base128Encoder{}
)

// packedPatterns are packed user data samples every encoder must survive: whole and partial 7-octet
// blocks, the all-ones block and the all-zero block that 8 '@' characters pack into.
var packedPatterns = [][]byte{
	{0xE8, 0x32, 0x9B, 0xFD, 0x46, 0x97, 0xD9, 0xEC, 0x37},
	{0xC8, 0x32, 0x9B, 0xFD, 0x66, 0x81, 0xEE, 0x6F, 0x39, 0x9B, 0x1C, 0x02},
	{0x31, 0xD9, 0x8C, 0x56, 0xB3, 0xDD, 0x00},
	{0x31, 0xD9, 0x8C, 0x56, 0xB3, 0xDD, 0x70},
	{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x0D},
}

// Encoders lists all available encoders, from the least to the most efficient one
var Encoders = []Encoder{
	RawEncoding,
	HexEncoding,
	Base32Encoding,
	Base64Encoding,
	Base85Encoding,
	Base91Encoding,
	Base128Encoding,
}

// FromName finds the encoder by its name. The lookup is case-insensitive.
func FromName(name string) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder: %v", name)
}

// FromCode finds the encoder by its one-letter code. The lookup is case-insensitive.
func FromCode(code byte) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(string(e.Code()), string(code)) {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %v", string(code))
}
