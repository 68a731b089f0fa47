/*
NAME
  chanalloc_test.go

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

func TestChanAllocatorRoundTrip(t *testing.T) {
	code := uci.PolarCode{N: 8, KSet: []int{1, 3, 4, 6}}
	c := []byte{1, 0, 1, 1}
	alloc := []byte{1, 1, 1, 1, 1, 1, 1, 1} // Prefilled to check zeroing.
	(chanAllocator{}).Tx(code, c, alloc)
	for i, pos := range code.KSet {
		if alloc[pos] != c[i] {
			t.Errorf("Tx: position %d = %d, want %d", pos, alloc[pos], c[i])
		}
	}
	for i, b := range alloc {
		isK := false
		for _, pos := range code.KSet {
			if pos == i {
				isK = true
			}
		}
		if !isK && b != 0 {
			t.Errorf("Tx: frozen position %d = %d, want 0", i, b)
		}
	}

	got := make([]byte, len(code.KSet))
	(chanAllocator{}).Rx(code, alloc, got)
	for i, b := range c {
		if got[i] != b {
			t.Errorf("Rx bit %d = %d, want %d", i, got[i], b)
		}
	}
}
