package alphabet

import (
	"strings"

	"github.com/pkg/errors"
)

// Alphabet maps text to a sequence of septets and back.
type Alphabet interface {
	// Name is the user-friendly name of this alphabet
	Name() string

	// Encode converts text into character codes of this alphabet
	Encode(string) ([]byte, error)

	// Decode is the reverse process of encoding
	Decode([]byte) (string, error)
}

var (
	GSM7Alphabet  = &GSM7{}
	ASCIIAlphabet = &ASCII{}
)

// Alphabets lists all known alphabets
var Alphabets = []Alphabet{
	GSM7Alphabet,
	ASCIIAlphabet,
}

// FromName returns the alphabet with the given name. The lookup is case-insensitive.
func FromName(name string) (Alphabet, error) {
	for _, a := range Alphabets {
		if strings.EqualFold(a.Name(), name) {
			return a, nil
		}
	}
	return nil, errors.Errorf("Unknown alphabet: %v", name)
}

// -------------------------------------------------------

// ASCII uses the bytes of the text as character codes, unchanged. Bytes above 127 are passed along
// as they are, so packing them will fail.
type ASCII struct {
}

func (a *ASCII) Name() string {
	return "ascii"
}

func (a *ASCII) Encode(text string) ([]byte, error) {
	return []byte(text), nil
}

func (a *ASCII) Decode(septets []byte) (string, error) {
	return string(septets), nil
}
