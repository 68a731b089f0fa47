/*
NAME
  smallcode.go

DESCRIPTION
  smallcode.go implements the small-payload coders of §4.2: the A=1
  repetition code, the A=2 simplex-like 3-bit code, and the A∈[3,11]
  delegate to the external Reed-Muller block code.

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

import "math"

// encode1Bit implements §4.2.1: a fixed-period pattern of length Qm per
// symbol, repeated until e bits are emitted. The first bit of each
// symbol carries the payload; the second is UCI_REPETITION; any
// remaining Qm-2 bits are UCI_PLACEHOLDER.
func encode1Bit(a0 byte, qm, e int) ([]Bit, error) {
	if qm == 0 {
		return nil, newErr(InvalidInput, "encode1Bit: Qm must be nonzero")
	}
	c0 := bitOf(a0)
	out := make([]Bit, e)
	for i := 0; i < e; i++ {
		switch i % qm {
		case 0:
			out[i] = c0
		case 1:
			out[i] = UCIRepetition
		default:
			out[i] = UCIPlaceholder
		}
	}
	return out, nil
}

// decode1Bit implements the §4.2.1 decoder: correlate every qm-th LLR
// (the payload-carrying position of each symbol) and normalise against
// the accumulated power. The normalised correlation is 1 on a clean
// channel and falls towards 0 as the samples decorrelate.
func (h *Handle) decode1Bit(llr []int8, qm, e int) (bit byte, ok bool, err error) {
	if qm == 0 {
		return 0, false, newErr(InvalidInput, "decode1Bit: Qm must be nonzero")
	}
	var corr, pwr float64
	n := 0
	for i := 0; i*qm < e; i++ {
		v := float64(llr[i*qm])
		corr += v
		pwr += v * v
		n++
	}
	if pwr == 0 {
		return 0, false, newErr(CodecFailure, "decode1Bit: zero-power LLR input")
	}
	norm := math.Abs(corr) / math.Sqrt(pwr*float64(n))
	bit = byte(0)
	if corr >= 0 {
		bit = 1
	}
	return bit, norm > h.oneBitThreshold, nil
}

// twoBitPattern returns the bit identity (0, 1 or 2, selecting c0, c1
// or c2) emitted at each position of one 3-symbol group for modulation
// order qm, or -1 for a placeholder position. Patterns are those of
// §4.2.2.
func twoBitPattern(qm int) []int {
	switch qm {
	case 1, 2:
		return []int{0, 1, 2}
	case 4:
		return []int{0, 1, -1, -1, 2, 0, -1, -1, 1, 2, -1, -1}
	case 6:
		return []int{0, 1, -1, -1, -1, -1, 2, 0, -1, -1, -1, -1, 1, 2, -1, -1, -1, -1}
	case 8:
		return []int{
			0, 1, -1, -1, -1, -1, -1, -1,
			2, 0, -1, -1, -1, -1, -1, -1,
			1, 2, -1, -1, -1, -1, -1, -1,
		}
	default:
		return nil
	}
}

// encode2Bit implements §4.2.2: c0=a0, c1=a1, c2=a0^a1, interleaved
// across one QAM symbol triple and repeated until e bits are emitted.
func encode2Bit(a0, a1 byte, qm, e int) ([]Bit, error) {
	pattern := twoBitPattern(qm)
	if pattern == nil {
		return nil, newErr(InvalidInput, "encode2Bit: unsupported Qm %d", qm)
	}
	c := [3]Bit{bitOf(a0), bitOf(a1), bitOf(a0 ^ a1)}
	out := make([]Bit, e)
	for i := 0; i < e; i++ {
		sel := pattern[i%len(pattern)]
		if sel < 0 {
			out[i] = UCIPlaceholder
		} else {
			out[i] = c[sel]
		}
	}
	return out, nil
}

// decode2Bit implements the §4.2.2 decoder: sample the non-placeholder
// LLRs in emission order into a circular triple, take their signs as
// c0, c1, c2, and check the parity relation.
func decode2Bit(llr []int8, qm, e int) (a0, a1 byte, ok bool) {
	pattern := twoBitPattern(qm)
	if pattern == nil {
		return 0, 0, false
	}
	var corr [3]float64
	for i := 0; i < e; i++ {
		sel := pattern[i%len(pattern)]
		if sel < 0 {
			continue
		}
		corr[sel] += float64(llr[i])
	}
	sign := func(v float64) byte {
		if v >= 0 {
			return 1
		}
		return 0
	}
	c0, c1, c2 := sign(corr[0]), sign(corr[1]), sign(corr[2])
	return c0, c1, c2 == c0^c1
}

// encodeBlock implements §4.2.3: delegate to the external Reed-Muller
// block code for 3 <= A <= 11.
func (h *Handle) encodeBlock(bits []byte, a, e int) ([]byte, error) {
	if a == 11 && e <= 16 {
		return nil, newErr(CodecFailure, "block code refuses A=11 with E<=16 (%d)", e)
	}
	return h.block.Encode(bits, e), nil
}

// decodeBlock implements the §4.2.3 decoder.
func (h *Handle) decodeBlock(llr []int8, a, e int) (bits []byte, ok bool, err error) {
	if a == 11 && e <= 16 {
		return nil, false, newErr(CodecFailure, "block code refuses A=11 with E<=16 (%d)", e)
	}
	var pwr float64
	for _, v := range llr[:e] {
		pwr += float64(v) * float64(v)
	}
	if pwr == 0 {
		return nil, false, newErr(InvalidInput, "decodeBlock: zero-power LLR input")
	}
	corr, decoded := h.block.Decode(llr[:e], e, a)
	return decoded, corr > h.blockCodeThreshold, nil
}
