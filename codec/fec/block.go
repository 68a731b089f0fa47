/*
NAME
  block.go

DESCRIPTION
  block.go implements the 32-bit Reed-Muller block code of TS 38.212
  §5.3.3.3, used for 3 <= A <= 11: a fixed 32xA generator matrix encode
  and a brute-force maximum-likelihood decode over the resulting
  codebook.

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

import (
	"math"

	"github.com/ausocean/uci/codec/uci"
)

// blockN is the mother codeword length of the 32-bit Reed-Muller block
// code; payloads are rate-matched up or down from this length.
const blockN = 32

// blockBasis is the 32x11 generator matrix: row n gives the 32 basis
// coefficients for input bit n. Its values are this package's own and
// do not reproduce Table 5.3.3.3-1; every row repeats with period 16.
var blockBasis = [11][blockN]byte{
	{1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0},
	{1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0},
	{1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1},
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1},
	{1, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1},
	{1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1},
	{1, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
	{1, 1, 1, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 1, 1, 0},
	{1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0},
	{1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0},
}

// blockCodec implements uci.BlockCodec: the 3 <= A <= 11 Reed-Muller
// block code, rate-matched to E bits by truncation or circular
// repetition of the 32-bit mother codeword.
type blockCodec struct{}

var _ uci.BlockCodec = blockCodec{}

// codeword computes the 32-bit Reed-Muller codeword for the A info
// bits in bits.
func codeword(bits []byte) [blockN]byte {
	var w [blockN]byte
	a := len(bits)
	for n := 0; n < blockN; n++ {
		var sum byte
		for i := 0; i < a; i++ {
			sum ^= bits[i] & blockBasis[i][n]
		}
		w[n] = sum
	}
	return w
}

// Encode maps A info bits onto an E-bit codeword by circularly
// repeating (or truncating) the 32-bit mother codeword.
func (blockCodec) Encode(bits []byte, e int) []byte {
	w := codeword(bits)
	out := make([]byte, e)
	for i := range out {
		out[i] = w[i%blockN]
	}
	return out
}

// Decode performs maximum-likelihood decoding: it builds the codeword
// for every one of the 2^A candidate payloads, correlates each against
// llr (folded over the same circular repetition Encode used), and
// returns the winner's normalised correlation and bits.
func (blockCodec) Decode(llr []int8, e, a int) (corr float64, bits []byte) {
	bestScore := -1.0
	best := make([]byte, a)
	candidate := make([]byte, a)

	folded := make([]float64, blockN)
	var pwr float64
	for i, v := range llr {
		folded[i%blockN] += float64(v)
		pwr += float64(v) * float64(v)
	}

	n := 1 << uint(a)
	for x := 0; x < n; x++ {
		for i := 0; i < a; i++ {
			candidate[i] = byte((x >> uint(a-1-i)) & 1)
		}
		w := codeword(candidate)
		var score float64
		for i := 0; i < blockN; i++ {
			if w[i] == 1 {
				score += folded[i]
			} else {
				score -= folded[i]
			}
		}
		if score > bestScore {
			bestScore = score
			copy(best, candidate)
		}
	}

	if pwr == 0 {
		return 0, best
	}
	// Normalise against the observed mother-code positions so a clean
	// channel scores at least 1 regardless of E.
	m := e
	if m > blockN {
		m = blockN
	}
	norm := bestScore / math.Sqrt(pwr*float64(m))
	return norm, best
}
