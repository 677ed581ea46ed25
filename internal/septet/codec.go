package septet

import (
	"github.com/pkg/errors"
)

const (
	// Bits is the width of a single septet
	Bits = 7
	// Mask selects the bits of a septet
	Mask = byte(1<<Bits - 1)
	// BlockSeptets is the number of septets in a block
	BlockSeptets = 8
	// BlockOctets is the number of octets a full block packs into
	BlockOctets = 7
)

// Pack will pack the septets into octets. Every value of the input must fit into 7 bits; the first
// one that does not is reported as a *DomainError and nothing is packed.
func Pack(septets []byte) ([]byte, error) {
	if err := firstInvalid(septets); err != nil {
		return nil, errors.WithStack(err)
	}
	return pack(septets), nil
}

// PackMasked packs the septets without validating them. Only the low 7 bits of every value are used.
func PackMasked(septets []byte) []byte {
	masked := make([]byte, len(septets))
	for i, s := range septets {
		masked[i] = s & Mask
	}
	return pack(masked)
}

// PackedLen returns the number of octets produced by packing n septets.
func PackedLen(n int) int {
	return n/BlockSeptets*BlockOctets + n%BlockSeptets
}

// IsAmbiguous returns true if the packed form of the septets will not unpack back to the same sequence.
// This happens when the septets fill whole blocks and the last one is zero: the zero septet is then
// indistinguishable from padding.
func IsAmbiguous(septets []byte) bool {
	l := len(septets)
	return l > 0 && l%BlockSeptets == 0 && septets[l-1] == 0
}

func pack(septets []byte) []byte {
	dst := make([]byte, 0, PackedLen(len(septets)))
	for i := 0; i < len(septets); i += BlockSeptets {
		end := i + BlockSeptets
		if end > len(septets) {
			end = len(septets)
		}
		dst = packBlock(dst, septets[i:end])
	}
	return dst
}

// packBlock appends the packed form of up to 8 septets. Octet j takes septet j shifted right by j
// and the low j+1 bits of septet j+1 on top. A block of k < 8 septets gives exactly k octets, the last
// one holding only the leftover high bits of the last septet.
func packBlock(dst, block []byte) []byte {
	n := len(block)
	if n > BlockOctets {
		n = BlockOctets
	}
	for j := 0; j < n; j++ {
		o := block[j] >> uint(j)
		if j+1 < len(block) {
			o |= block[j+1] << uint(Bits-j)
		}
		dst = append(dst, o)
	}
	return dst
}

// Unpack will unpack the octets into septets. Input of any length is accepted.
//
// If the input ends on a complete block of 7 octets, the 8th septet of that block is only emitted when
// it is not zero.
func Unpack(octets []byte) []byte {
	dst := make([]byte, 0, len(octets)+len(octets)/BlockOctets+1)
	i := 0
	for len(octets)-i > BlockOctets {
		dst = unpackBlock(dst, octets[i:i+BlockOctets], false)
		i += BlockOctets
	}
	if i < len(octets) {
		dst = unpackBlock(dst, octets[i:], true)
	}
	return dst
}

// unpackBlock appends the septets of up to 7 octets. Septet j is made of the carry left over from
// octet j-1 (its top j bits) and the low 7-j bits of octet j.
func unpackBlock(dst, block []byte, last bool) []byte {
	carry := byte(0)
	for j, o := range block {
		dst = append(dst, (carry|o<<uint(j))&Mask)
		carry = o >> uint(Bits-j)
	}
	if len(block) == BlockOctets && (!last || carry != 0) {
		dst = append(dst, carry)
	}
	return dst
}
