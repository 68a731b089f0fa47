/*
NAME
  polarcode.go

DESCRIPTION
  polarcode.go implements the large-payload coder of §4.3: segmentation
  bookkeeping, CRC attach/strip, and the per-block polar encode/decode
  pipeline for 12 <= A <= 1706.

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

// PolarNMax is the maximum mother code order (N = 2^10 = 1024) this
// package asks the polar kernel to resolve against, per §4.3.
const PolarNMax = 10

// segmentation holds the §3 segmentation bookkeeping for one polar
// transmission.
type segmentation struct {
	iSeg int // 1 if split into two blocks, else 0.
	c    int // Number of code blocks.
	aPr  int // Padded payload length A'.
	l    int // CRC length.
	kr   int // Per-block info length, including CRC.
	er   int // Per-block coded length.
}

func newSegmentation(a, e int) segmentation {
	l := crcLen(a)
	c := 1
	if segmented(a, e) {
		c = 2
	}
	aPr := c * ceilDiv(a, c)
	return segmentation{
		iSeg: c - 1,
		c:    c,
		aPr:  aPr,
		l:    l,
		kr:   aPr/c + l,
		er:   e / c,
	}
}

// encodePolar implements the encoder sequence of §4.3 for 12 <= A <=
// 1706, returning the E-bit rate-matched output.
func (h *Handle) encodePolar(payload []byte, a, e int) ([]byte, error) {
	if e < a+crcLen(a) {
		return nil, newErr(InvalidInput, "E=%d below A+L=%d: rate matching misconfigured", e, a+crcLen(a))
	}
	seg := newSegmentation(a, e)
	if seg.er < seg.kr {
		return nil, newErr(InvalidInput, "E_r=%d below K_r=%d: rate matching misconfigured", seg.er, seg.kr)
	}
	code, err := h.polar.CodeParams(seg.kr, seg.er, PolarNMax)
	if err != nil {
		return nil, wrapErr(CodecFailure, err, "resolving polar code parameters")
	}

	out := make([]byte, seg.c*seg.er)
	pos := 0
	for r := 0; r < seg.c; r++ {
		infoLen := seg.aPr / seg.c
		block := h.c[:0]
		if r == 0 {
			pad := seg.aPr - a
			for i := 0; i < pad; i++ {
				block = append(block, 0)
			}
			infoLen -= pad
		}
		block = append(block, payload[pos:pos+infoLen]...)
		pos += infoLen

		withCRC := h.crc.Attach(seg.l, block)

		h.chanAlloc.Tx(code, withCRC, h.allocated[:code.N])
		if err := h.polar.Encode(code, h.allocated[:code.N], h.d[:code.N]); err != nil {
			return nil, wrapErr(CodecFailure, err, "polar encoding block %d", r)
		}
		h.rateMatch.Tx(code, h.d[:code.N], out[r*seg.er:(r+1)*seg.er])
	}
	h.debugf("polar encode: A=%d E=%d C=%d K_r=%d E_r=%d", a, e, seg.c, seg.kr, seg.er)
	return out, nil
}

// decodePolar implements the decoder of §4.3: mirror image of
// encodePolar, with LLR sign inversion ahead of rate-match recovery and
// a CRC check per block. decodedOK is the AND across blocks.
func (h *Handle) decodePolar(llr []int8, a, e int) (payload []byte, decodedOK bool, err error) {
	if e < a+crcLen(a) {
		return nil, false, newErr(InvalidInput, "E=%d below A+L=%d: rate matching misconfigured", e, a+crcLen(a))
	}
	seg := newSegmentation(a, e)
	if seg.er < seg.kr {
		return nil, false, newErr(InvalidInput, "E_r=%d below K_r=%d: rate matching misconfigured", seg.er, seg.kr)
	}
	code, err := h.polar.CodeParams(seg.kr, seg.er, PolarNMax)
	if err != nil {
		return nil, false, wrapErr(CodecFailure, err, "resolving polar code parameters")
	}

	inverted := make([]int8, e)
	for i, v := range llr[:e] {
		inverted[i] = invertLLR(v)
	}

	payload = make([]byte, 0, a)
	decodedOK = true
	for r := 0; r < seg.c; r++ {
		rxLLR := h.rateMatch.Rx(code, inverted[r*seg.er:(r+1)*seg.er], seg.er)
		if err := h.polar.Decode(code, rxLLR, h.d[:code.N]); err != nil {
			return nil, false, wrapErr(CodecFailure, err, "polar decoding block %d", r)
		}
		withCRC := h.c[:seg.kr]
		h.chanAlloc.Rx(code, h.d[:code.N], withCRC)

		infoLen := seg.aPr / seg.c
		info := withCRC[:infoLen]
		tail := withCRC[infoLen : infoLen+seg.l]

		checksum := h.crc.Checksum(seg.l, info)
		ok := checksumMatches(checksum, tail, seg.l)
		decodedOK = decodedOK && ok

		if r == 0 {
			pad := seg.aPr - a
			payload = append(payload, info[pad:]...)
		} else {
			payload = append(payload, info...)
		}
	}
	h.debugf("polar decode: A=%d E=%d C=%d decoded_ok=%v", a, e, seg.c, decodedOK)
	return payload, decodedOK, nil
}

// invertLLR flips the sign of an 8-bit LLR, saturating at the int8
// boundary, to translate between this package's "positive -> 0"
// convention and the polar decoder's opposite convention.
func invertLLR(v int8) int8 {
	if v == -128 {
		return 127
	}
	return -v
}

// checksumMatches compares an L-bit CRC checksum against its MSB-first
// one-bit-per-byte tail representation.
func checksumMatches(checksum uint32, tail []byte, l int) bool {
	for i := 0; i < l; i++ {
		bit := byte((checksum >> uint(l-1-i)) & 1)
		if tail[i]&1 != bit {
			return false
		}
	}
	return true
}
