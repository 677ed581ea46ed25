// Package septet packs 7-bit character codes into 8-bit octets and back, following the GSM 03.38
// (subclause 6.1.2.1.1) packing scheme used for SMS user data.
//
// Every block of 8 septets packs into exactly 7 octets (8 * 7 = 7 * 8 = 56 bits). Bits are filled
// little-endian: bit 0 of septet i follows directly after the 7 bits of septet i-1.
//
//	septets: aaaaaaa bbbbbbb ccccccc ...
//	octet 0: baaaaaaa
//	octet 1: ccbbbbbb
//	octet 2: dddccccc
//
// The encoding is not self-describing. When the packed form of a message ends on a complete block,
// the receiver can't tell a trailing zero septet from padding, so Unpack drops it:
//
//	Unpack(Pack([]byte{0, 0, 0, 0, 0, 0, 0, 0})) // 7 zero septets, not 8
//
// IsAmbiguous reports whether a message is affected.
package septet
