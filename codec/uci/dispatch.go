/*
NAME
  dispatch.go

DESCRIPTION
  dispatch.go implements the length-dependent coding-scheme dispatch
  described in §3: repetition for A=1, simplex for A=2, Reed-Muller
  block code for 3 <= A <= 11, segmented polar for 12 <= A <= 1706.

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

// encodeClass is the single length-dependent encode dispatch shared by
// the PUCCH framer (C6) and PUSCH multiplexer (C7).
func (h *Handle) encodeClass(bits []byte, a, e, qm int) ([]Bit, error) {
	switch {
	case e < 1:
		return nil, newErr(InvalidInput, "encodeClass: E must be at least 1, got %d", e)
	case a <= 0:
		return nil, newErr(InvalidInput, "encodeClass: A must be positive, got %d", a)
	case a == 1:
		return encode1Bit(bits[0], qm, e)
	case a == 2:
		return encode2Bit(bits[0], bits[1], qm, e)
	case a <= 11:
		coded, err := h.encodeBlock(bits, a, e)
		if err != nil {
			return nil, err
		}
		return bitsToSentinels(coded), nil
	case a <= MaxUCIBits:
		coded, err := h.encodePolar(bits, a, e)
		if err != nil {
			return nil, err
		}
		return bitsToSentinels(coded), nil
	default:
		return nil, newErr(InvalidInput, "encodeClass: A=%d exceeds MAX_UCI_BITS", a)
	}
}

// decodeClass is the matching decode dispatch. Per §6, every caller
// presents llr in the "positive -> 0" convention; classes 1, 2 and
// 3..11 are authored directly against the reference decoders' own
// "positive -> 1" convention, so this dispatcher inverts once before
// handing off to them. The polar path inverts internally (§4.3, §9)
// since it alone needs the inversion applied only ahead of rate-match
// recovery, not ahead of channel de-allocation.
func (h *Handle) decodeClass(llr []int8, a, e, qm int) (bits []byte, ok bool, err error) {
	switch {
	case e < 1:
		return nil, false, newErr(InvalidInput, "decodeClass: E must be at least 1, got %d", e)
	case len(llr) < e:
		return nil, false, newErr(InvalidInput, "decodeClass: got %d LLRs for E=%d", len(llr), e)
	case a <= 0:
		return nil, false, newErr(InvalidInput, "decodeClass: A must be positive, got %d", a)
	case a == 1:
		bit, decOK, err := h.decode1Bit(invertLLRSlice(llr[:e]), qm, e)
		if err != nil {
			return nil, false, err
		}
		return []byte{bit}, decOK, nil
	case a == 2:
		if twoBitPattern(qm) == nil {
			return nil, false, newErr(InvalidInput, "decodeClass: unsupported Qm %d", qm)
		}
		a0, a1, decOK := decode2Bit(invertLLRSlice(llr[:e]), qm, e)
		return []byte{a0, a1}, decOK, nil
	case a <= 11:
		return h.decodeBlock(invertLLRSlice(llr[:e]), a, e)
	case a <= MaxUCIBits:
		return h.decodePolar(llr, a, e)
	default:
		return nil, false, newErr(InvalidInput, "decodeClass: A=%d exceeds MAX_UCI_BITS", a)
	}
}

// invertLLRSlice returns a new slice with every LLR sign-flipped,
// translating the external "positive -> 0" convention into the
// "positive -> 1" convention the A=1/A=2/block decoders are authored
// against.
func invertLLRSlice(llr []int8) []int8 {
	out := make([]int8, len(llr))
	for i, v := range llr {
		out[i] = invertLLR(v)
	}
	return out
}

// bitsToSentinels promotes a plain one-bit-per-byte sequence (as
// produced by the Reed-Muller and polar coders, which never emit
// UCI_REPETITION/UCI_PLACEHOLDER) to the Bit sentinel representation
// shared with the A=1/A=2 encoders.
func bitsToSentinels(raw []byte) []Bit {
	out := make([]Bit, len(raw))
	for i, v := range raw {
		out[i] = bitOf(v)
	}
	return out
}
