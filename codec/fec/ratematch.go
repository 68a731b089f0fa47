/*
NAME
  ratematch.go

DESCRIPTION
  ratematch.go implements circular buffer rate matching for polar
  codewords (TS 38.212 §5.4.1): puncturing when E < N, repetition when
  E > N. No sub-block or coded-bit interleaving is applied.

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

// rateMatcher implements uci.RateMatcher via a circular buffer: the
// length-N codeword is read starting at offset 0 for E <= N
// (puncturing/shortening the tail) and wrapped around with repetition
// for E > N. Interleaving (ibil) is not applied: this kernel answers
// only to its own decoder, so the permutation's sole purpose -
// resilience to burst errors on the air interface - is moot.
type rateMatcher struct{}

var _ uci.RateMatcher = rateMatcher{}

// Tx rate-matches a length-N polar codeword d down or up to len(out)
// bits via the circular buffer.
func (rateMatcher) Tx(code uci.PolarCode, d, out []byte) {
	for i := range out {
		out[i] = d[i%code.N]
	}
}

// Rx undoes Tx: LLRs for repeated positions are summed (maximal-ratio
// combining of repeated observations); punctured/shortened positions
// are left at zero LLR (unknown).
func (rateMatcher) Rx(code uci.PolarCode, llr []int8, e int) []int8 {
	acc := make([]int, code.N)
	for i := 0; i < e; i++ {
		acc[i%code.N] += int(llr[i])
	}
	out := make([]int8, code.N)
	for i, v := range acc {
		out[i] = saturateInt8(v)
	}
	return out
}

func saturateInt8(v int) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}
