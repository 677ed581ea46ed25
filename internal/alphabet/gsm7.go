package alphabet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Escape switches to the extension table for the next septet
const Escape = 0x1B

// basicCharset is the GSM 03.38 default alphabet, one row per 16 code points. The escape code (0x1B)
// sits at its own position.
const basicCharset = "@£$¥èéùìòÇ\nØø\rÅå" +
	"Δ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ" +
	" !\"#¤%&'()*+,-./" +
	"0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNO" +
	"PQRSTUVWXYZÄÖÑÜ§" +
	"¿abcdefghijklmno" +
	"pqrstuvwxyzäöñüà"

// extensionCharset maps codes following an escape to characters
var extensionCharset = map[byte]rune{
	0x0A: '\f',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2F: '\\',
	0x3C: '[',
	0x3D: '~',
	0x3E: ']',
	0x40: '|',
	0x65: '€',
}

var (
	basicTable      = []rune(basicCharset)
	basicInvert     = make(map[rune]byte)
	extensionInvert = make(map[rune]byte)
)

func init() {
	for i, r := range basicTable {
		if i != Escape {
			basicInvert[r] = byte(i)
		}
	}
	for c, r := range extensionCharset {
		extensionInvert[r] = c
	}
}

// UnmappableError is returned when a character has no representation in the GSM alphabet
type UnmappableError struct {
	// Position is the index of the character (in runes) within the text
	Position int
	Rune     rune
}

func (e *UnmappableError) Error() string {
	return fmt.Sprintf("character %q (%U) at position %d is not in the GSM 03.38 alphabet", e.Rune, e.Rune, e.Position)
}

// GSM7 is the GSM 03.38 default alphabet with its extension table
type GSM7 struct {
}

func (g *GSM7) Name() string {
	return "gsm7"
}

func (g *GSM7) String() string {
	return "GSM 03.38"
}

// Encode converts the text to GSM septets. Characters from the extension table take two septets.
func (g *GSM7) Encode(text string) ([]byte, error) {
	res := make([]byte, 0, len(text))
	pos := 0
	for _, r := range text {
		if c, ok := basicInvert[r]; ok {
			res = append(res, c)
		} else if c, ok := extensionInvert[r]; ok {
			res = append(res, Escape, c)
		} else {
			return nil, errors.WithStack(&UnmappableError{Position: pos, Rune: r})
		}
		pos++
	}
	return res, nil
}

// Decode converts GSM septets back to text
func (g *GSM7) Decode(septets []byte) (string, error) {
	res := make([]rune, 0, len(septets))
	for i := 0; i < len(septets); i++ {
		c := septets[i]
		if int(c) >= len(basicTable) {
			return "", errors.Errorf("Invalid GSM 03.38 code 0x%02X at index %d", c, i)
		}
		if c != Escape {
			res = append(res, basicTable[c])
			continue
		}
		if i+1 >= len(septets) {
			return "", errors.Errorf("Escape code at the end of input")
		}
		i++
		if r, ok := extensionCharset[septets[i]]; ok {
			res = append(res, r)
		} else {
			return "", errors.Errorf("Invalid GSM 03.38 extension code 0x%02X at index %d", septets[i], i)
		}
	}
	return string(res), nil
}
