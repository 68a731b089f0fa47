/*
NAME
  bitutil.go

DESCRIPTION
  bitutil.go provides the MSB-first bit pack/unpack helpers used to
  serialise the SR field into the one-bit-per-byte wire representation,
  equivalent to the reference implementation's bit_pack/bit_unpack
  primitives.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package uci

// bitUnpackMSB writes the n least-significant bits of v into out,
// most-significant bit first, one bit per byte.
func bitUnpackMSB(v uint64, n int, out []byte) {
	for i := 0; i < n; i++ {
		out[i] = byte((v >> uint(n-1-i)) & 1)
	}
}

// bitPackMSB is the inverse of bitUnpackMSB: it reads n one-bit-per-byte
// values, most-significant first, into a uint64.
func bitPackMSB(in []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = (v << 1) | uint64(in[i]&1)
	}
	return v
}
