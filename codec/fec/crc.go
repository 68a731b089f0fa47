/*
NAME
  crc.go

DESCRIPTION
  crc.go implements the CRC-6 and CRC-11 LTE polynomials used to
  protect polar-coded UCI information blocks, operating directly on the
  one-bit-per-byte wire representation the codec/uci package uses
  throughout.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fec

import "github.com/ausocean/uci/codec/uci"

// crc6Poly and crc11Poly are the LTE CRC generator polynomials of TS
// 38.212 §5.1, expressed as the taps below the implicit leading D^l
// term, MSB (D^(l-1)) first.
//
//	gCRC6(D)  = D^6  + D^5 + 1
//	gCRC11(D) = D^11 + D^10 + D^9 + D^5 + 1
var (
	crc6Poly  = []byte{1, 0, 0, 0, 0, 1}
	crc11Poly = []byte{1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1}
)

func polyFor(l int) []byte {
	switch l {
	case 6:
		return crc6Poly
	case 11:
		return crc11Poly
	default:
		return nil
	}
}

// crcCodec is the bit-serial CRC shift-register implementation of
// uci.CRCCodec. Unlike a byte-table CRC, it consumes one bit per byte
// to match the wire representation used throughout codec/uci.
type crcCodec struct{}

var _ uci.CRCCodec = crcCodec{}

// Checksum computes the l-bit CRC of buf by running a bit-serial
// shift register with taps poly over the info bits.
func (crcCodec) Checksum(l int, buf []byte) uint32 {
	poly := polyFor(l)
	if poly == nil {
		return 0
	}
	reg := make([]byte, l)
	for _, bit := range buf {
		feedback := bit & 1 ^ reg[0]
		for i := 0; i < l-1; i++ {
			reg[i] = reg[i+1] ^ (feedback & poly[i])
		}
		reg[l-1] = feedback & poly[l-1]
	}
	var sum uint32
	for _, b := range reg {
		sum = (sum << 1) | uint32(b)
	}
	return sum
}

// Attach appends the l-bit checksum (MSB-first) to buf and returns the
// combined sequence, reusing buf's backing array when it has capacity.
func (c crcCodec) Attach(l int, buf []byte) []byte {
	if l == 0 {
		return buf
	}
	sum := c.Checksum(l, buf)
	for i := 0; i < l; i++ {
		buf = append(buf, byte((sum>>uint(l-1-i))&1))
	}
	return buf
}

