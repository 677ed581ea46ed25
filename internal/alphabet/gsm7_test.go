package alphabet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BasicTableSize(t *testing.T) {
	require.Len(t, basicTable, 128)
	require.Equal(t, '@', basicTable[0x00])
	require.Equal(t, 'A', basicTable[0x41])
	require.Equal(t, 'a', basicTable[0x61])
	require.Equal(t, 'à', basicTable[0x7F])
	require.Equal(t, rune(Escape), basicTable[Escape])
}

func Test_GSM7Encode(t *testing.T) {
	encoded, err := GSM7Alphabet.Encode("hello@")
	require.NoError(t, err)
	require.Equal(t, []byte{0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x00}, encoded)

	encoded, err = GSM7Alphabet.Encode("{€}")
	require.NoError(t, err)
	require.Equal(t, []byte{Escape, 0x28, Escape, 0x65, Escape, 0x29}, encoded)

	encoded, err = GSM7Alphabet.Encode("")
	require.NoError(t, err)
	require.Empty(t, encoded)
}

func Test_GSM7EncodeUnmappable(t *testing.T) {
	_, err := GSM7Alphabet.Encode("ab✓")
	require.Error(t, err)

	var unmappable *UnmappableError
	require.True(t, errors.As(err, &unmappable))
	require.Equal(t, 2, unmappable.Position)
	require.Equal(t, '✓', unmappable.Rune)

	// The escape code itself is not a character
	_, err = GSM7Alphabet.Encode("\x1b")
	require.Error(t, err)
}

func Test_GSM7RoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"Hello, world!",
		"Ça coute 5€ à Zürich",
		"[x] ~ {y} | \\z ^",
		"@£$¥èéùìòÇ",
		"ΔΦΓΛΩΠΨΣΘΞ",
	} {
		encoded, err := GSM7Alphabet.Encode(text)
		require.NoError(t, err)
		decoded, err := GSM7Alphabet.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, text, decoded)
	}
}

func Test_GSM7DecodeErrors(t *testing.T) {
	_, err := GSM7Alphabet.Decode([]byte{'a', Escape})
	require.Error(t, err)

	_, err = GSM7Alphabet.Decode([]byte{Escape, 0x41})
	require.Error(t, err)

	_, err = GSM7Alphabet.Decode([]byte{0x80})
	require.Error(t, err)
}

func Test_ASCII(t *testing.T) {
	encoded, err := ASCIIAlphabet.Encode("plain")
	require.NoError(t, err)
	require.Equal(t, []byte("plain"), encoded)

	decoded, err := ASCIIAlphabet.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "plain", decoded)
}

func Test_FromName(t *testing.T) {
	a, err := FromName("GSM7")
	require.NoError(t, err)
	require.Equal(t, GSM7Alphabet, a)

	a, err = FromName("ascii")
	require.NoError(t, err)
	require.Equal(t, ASCIIAlphabet, a)

	_, err = FromName("ucs2")
	require.Error(t, err)
}
