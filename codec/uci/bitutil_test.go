/*
NAME
  bitutil_test.go

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

func TestBitUnpackMSB(t *testing.T) {
	out := make([]byte, 4)
	bitUnpackMSB(0b1011, 4, out)
	want := []byte{1, 0, 1, 1}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("bitUnpackMSB mismatch (-want +got):\n%s", diff)
	}
}

func TestBitPackMSB(t *testing.T) {
	got := bitPackMSB([]byte{1, 0, 1, 1}, 4)
	if got != 0b1011 {
		t.Errorf("bitPackMSB = %b, want %b", got, 0b1011)
	}
}

func TestBitPackRoundTrip(t *testing.T) {
	for n := 1; n <= 16; n++ {
		v := uint64(1)<<uint(n) - 1
		buf := make([]byte, n)
		bitUnpackMSB(v, n, buf)
		got := bitPackMSB(buf, n)
		if got != v {
			t.Errorf("round trip n=%d: got %d, want %d", n, got, v)
		}
	}
}
