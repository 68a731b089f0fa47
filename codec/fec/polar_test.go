/*
NAME
  polar_test.go

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
	"testing"

	"github.com/ausocean/uci/codec/uci"
)

func TestCodeParamsKSetIsSortedAndExclusive(t *testing.T) {
	c := polarCodec{}
	code, err := c.CodeParams(30, 64, uci.PolarNMax)
	if err != nil {
		t.Fatalf("CodeParams: %v", err)
	}
	if code.K != 30 {
		t.Errorf("K = %d, want 30", code.K)
	}
	if len(code.KSet) != 30 {
		t.Errorf("len(KSet) = %d, want 30", len(code.KSet))
	}
	seen := make(map[int]bool, code.N)
	for _, k := range code.KSet {
		if seen[k] {
			t.Fatalf("KSet contains duplicate index %d", k)
		}
		seen[k] = true
	}
	for i := 1; i < len(code.KSet); i++ {
		if code.KSet[i] <= code.KSet[i-1] {
			t.Fatalf("KSet not strictly ascending at %d: %v", i, code.KSet)
		}
	}
	for _, f := range code.FSet {
		if seen[f] {
			t.Fatalf("FSet index %d also appears in KSet", f)
		}
	}
	if len(code.KSet)+len(code.FSet) != code.N {
		t.Errorf("len(KSet)+len(FSet) = %d, want N = %d", len(code.KSet)+len(code.FSet), code.N)
	}
}

func TestCodeParamsRejectsBadLengths(t *testing.T) {
	c := polarCodec{}
	if _, err := c.CodeParams(0, 64, uci.PolarNMax); err == nil {
		t.Fatal("CodeParams(K=0): expected error, got nil")
	}
	if _, err := c.CodeParams(64, 32, uci.PolarNMax); err == nil {
		t.Fatal("CodeParams(K>E): expected error, got nil")
	}
}

// TestArikanEncodeDecodeRoundTrip checks that the SC decoder recovers
// the exact information bits placed at KSet, with every frozen bit set
// to 0, across a noiseless channel.
func TestArikanEncodeDecodeRoundTrip(t *testing.T) {
	c := polarCodec{}
	code, err := c.CodeParams(20, 64, uci.PolarNMax)
	if err != nil {
		t.Fatalf("CodeParams: %v", err)
	}

	info := make([]byte, code.K)
	for i := range info {
		info[i] = byte((i * 3) % 2)
	}
	alloc := make([]byte, code.N)
	chanAllocator{}.Tx(code, info, alloc)

	coded := make([]byte, code.N)
	if err := c.Encode(code, alloc, coded); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	llr := make([]int8, code.N)
	for i, b := range coded {
		if b == 1 {
			llr[i] = 100
		} else {
			llr[i] = -100
		}
	}

	decoded := make([]byte, code.N)
	if err := c.Decode(code, llr, decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := make([]byte, code.K)
	chanAllocator{}.Rx(code, decoded, got)
	for i, b := range info {
		if got[i] != b {
			t.Errorf("info bit %d = %d, want %d", i, got[i], b)
		}
	}
	for _, f := range code.FSet {
		if decoded[f] != 0 {
			t.Errorf("frozen position %d decoded to %d, want 0", f, decoded[f])
		}
	}
}

// TestPuncturedRoundTrip checks that the frozen-set selection routes
// every information bit onto a channel the decoder can still recover
// when the rate matcher punctures the codeword tail (E < N).
func TestPuncturedRoundTrip(t *testing.T) {
	c := polarCodec{}
	rm := rateMatcher{}
	// K=35, E=120 resolves to N=128, puncturing 8 tail positions.
	code, err := c.CodeParams(35, 120, uci.PolarNMax)
	if err != nil {
		t.Fatalf("CodeParams: %v", err)
	}
	if code.N <= 120 {
		t.Fatalf("N = %d, expected a punctured configuration (N > 120)", code.N)
	}

	info := make([]byte, code.K)
	for i := range info {
		info[i] = byte((i * 5) % 2)
	}
	alloc := make([]byte, code.N)
	chanAllocator{}.Tx(code, info, alloc)
	coded := make([]byte, code.N)
	if err := c.Encode(code, alloc, coded); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	matched := make([]byte, 120)
	rm.Tx(code, coded, matched)
	llr := make([]int8, 120)
	for i, b := range matched {
		if b == 1 {
			llr[i] = 100
		} else {
			llr[i] = -100
		}
	}

	decoded := make([]byte, code.N)
	if err := c.Decode(code, rm.Rx(code, llr, 120), decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := make([]byte, code.K)
	chanAllocator{}.Rx(code, decoded, got)
	for i, b := range info {
		if got[i] != b {
			t.Errorf("info bit %d = %d, want %d", i, got[i], b)
		}
	}
}

func TestReliabilityOrderIsPermutation(t *testing.T) {
	for _, e := range []int{48, 64, 200} {
		idx := reliabilityOrder(64, e)
		if len(idx) != 64 {
			t.Fatalf("len(reliabilityOrder(64, %d)) = %d, want 64", e, len(idx))
		}
		seen := make(map[int]bool, 64)
		for _, i := range idx {
			if i < 0 || i >= 64 || seen[i] {
				t.Fatalf("reliabilityOrder(64, %d) is not a permutation of [0,64): %v", e, idx)
			}
			seen[i] = true
		}
	}
}
