/*
NAME
  smallcode_test.go

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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEncode1BitScenarioS1 checks the literal scenario of §8: A=1,
// QPSK, E=8, ack=[1].
func TestEncode1BitScenarioS1(t *testing.T) {
	got, err := encode1Bit(1, ModQPSK.Qm(), 8)
	if err != nil {
		t.Fatalf("encode1Bit: %v", err)
	}
	want := []Bit{UCIOne, UCIRepetition, UCIOne, UCIRepetition, UCIOne, UCIRepetition, UCIOne, UCIRepetition}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encode1Bit mismatch (-want +got):\n%s", diff)
	}
}

// TestEncode2BitScenarioS2 checks the literal scenario of §8: A=2,
// 16QAM, E=24, ack=[1,0].
func TestEncode2BitScenarioS2(t *testing.T) {
	got, err := encode2Bit(1, 0, Mod16QAM.Qm(), 24)
	if err != nil {
		t.Fatalf("encode2Bit: %v", err)
	}
	group := []Bit{
		UCIOne, UCIZero, UCIPlaceholder, UCIPlaceholder,
		UCIOne, UCIOne, UCIPlaceholder, UCIPlaceholder,
		UCIZero, UCIOne, UCIPlaceholder, UCIPlaceholder,
	}
	want := append(append([]Bit{}, group...), group...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encode2Bit mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode1BitUnsupportedQm(t *testing.T) {
	if _, err := encode1Bit(1, 0, 8); err == nil {
		t.Fatal("encode1Bit with Qm=0: expected error, got nil")
	}
}

// TestDecode1BitRoundTrip exercises property 1 (round-trip) for the
// A=1 class across every supported modulation order.
func TestDecode1BitRoundTrip(t *testing.T) {
	h := &Handle{oneBitThreshold: DefaultOneBitThreshold}
	for _, qm := range []int{1, 2, 4, 6, 8} {
		for _, bit := range []byte{0, 1} {
			e := qm * 4
			bits, err := encode1Bit(bit, qm, e)
			if err != nil {
				t.Fatalf("Qm=%d: encode1Bit: %v", qm, err)
			}
			llr := bitsToLLR(bits)
			got, ok, err := h.decode1Bit(llr, qm, e)
			if err != nil {
				t.Fatalf("Qm=%d: decode1Bit: %v", qm, err)
			}
			if !ok || got != bit {
				t.Errorf("Qm=%d bit=%d: decode1Bit = (%d, ok=%v), want (%d, true)", qm, bit, got, ok, bit)
			}
		}
	}
}

// TestDecode2BitRoundTrip exercises property 1 and property 6 (A=2
// parity) for the A=2 class.
func TestDecode2BitRoundTrip(t *testing.T) {
	for _, qm := range []int{1, 2, 4, 6, 8} {
		for a0 := byte(0); a0 <= 1; a0++ {
			for a1 := byte(0); a1 <= 1; a1++ {
				e := len(twoBitPattern(qm)) * 2
				bits, err := encode2Bit(a0, a1, qm, e)
				if err != nil {
					t.Fatalf("Qm=%d: encode2Bit: %v", qm, err)
				}
				llr := bitsToLLR(bits)
				g0, g1, ok := decode2Bit(llr, qm, e)
				if !ok || g0 != a0 || g1 != a1 {
					t.Errorf("Qm=%d a0=%d a1=%d: decode2Bit = (%d, %d, ok=%v), want (%d, %d, true)", qm, a0, a1, g0, g1, ok, a0, a1)
				}
			}
		}
	}
}

// TestDecode2BitParityRejection checks property 6: the decoder rejects
// a codeword whose c2 != c0^c1.
func TestDecode2BitParityRejection(t *testing.T) {
	bits, err := encode2Bit(1, 0, ModQPSK.Qm(), 3)
	if err != nil {
		t.Fatalf("encode2Bit: %v", err)
	}
	bits[2] = UCIZero // Corrupt c2 so it no longer satisfies c2 == c0^c1.
	llr := bitsToLLR(bits)
	_, _, ok := decode2Bit(llr, ModQPSK.Qm(), 3)
	if ok {
		t.Error("decode2Bit accepted a codeword violating the parity relation")
	}
}

// TestPlaceholderInvariance checks property 7: placeholders land at
// exactly the tabulated positions for every supported (Qm, class) pair.
func TestPlaceholderInvariance(t *testing.T) {
	for _, qm := range []int{1, 2, 4, 6, 8} {
		bits, err := encode1Bit(1, qm, qm*3)
		if err != nil {
			t.Fatalf("Qm=%d: encode1Bit: %v", qm, err)
		}
		for i, b := range bits {
			switch i % qm {
			case 0:
				if b != UCIOne {
					t.Errorf("A=1 Qm=%d pos %d: got %v, want payload bit", qm, i, b)
				}
			case 1:
				if b != UCIRepetition {
					t.Errorf("A=1 Qm=%d pos %d: got %v, want REP", qm, i, b)
				}
			default:
				if b != UCIPlaceholder {
					t.Errorf("A=1 Qm=%d pos %d: got %v, want PH", qm, i, b)
				}
			}
		}

		pattern := twoBitPattern(qm)
		bits2, err := encode2Bit(1, 0, qm, len(pattern)*2)
		if err != nil {
			t.Fatalf("Qm=%d: encode2Bit: %v", qm, err)
		}
		for i, b := range bits2 {
			sel := pattern[i%len(pattern)]
			if sel < 0 && b != UCIPlaceholder {
				t.Errorf("A=2 Qm=%d pos %d: got %v, want PH", qm, i, b)
			}
			if sel >= 0 && b == UCIPlaceholder {
				t.Errorf("A=2 Qm=%d pos %d: got PH, want a payload bit", qm, i)
			}
		}
	}
}

// bitsToLLR converts an encoder's Bit sentinel output directly to the
// LLR convention decode1Bit/decode2Bit are authored against ("positive
// -> 1", per their literal decision rule): UCI_1 -> strongly positive,
// UCI_0 -> strongly negative, everything else (repetition/placeholder
// positions the decoder skips) -> 0. This is the pre-inversion
// convention; callers going through the public decodeClass dispatch
// see the inverted "positive -> 0" convention instead (§6).
func bitsToLLR(bits []Bit) []int8 {
	out := make([]int8, len(bits))
	for i, b := range bits {
		switch b {
		case UCIZero:
			out[i] = -100
		case UCIOne:
			out[i] = 100
		default:
			out[i] = 0
		}
	}
	return out
}
