/*
NAME
  csi_test.go

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package csi

import (
	"testing"

	"github.com/ausocean/uci/codec/uci"
)

func reportSlice(reps ...Report) []uci.CSIReport {
	out := make([]uci.CSIReport, len(reps))
	for i, r := range reps {
		out[i] = r
	}
	return out
}

func TestNofBitsAndHasPart2(t *testing.T) {
	in := reportSlice(
		Report{Name: "ri", Bits: 2},
		Report{Name: "cqi", Bits: 4, HasPart2: true, Part2Bits: 11},
	)
	c := Codec{}
	if got := c.NofBits(in); got != 6 {
		t.Errorf("NofBits = %d, want 6", got)
	}
	if !c.HasPart2(in) {
		t.Error("HasPart2 = false, want true")
	}

	noPart2 := reportSlice(Report{Name: "ri", Bits: 2})
	if c.HasPart2(noPart2) {
		t.Error("HasPart2 = true, want false")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	in := reportSlice(
		Report{Name: "ri", Bits: 2},
		Report{Name: "pmi", Bits: 3},
		Report{Name: "cqi", Bits: 4},
	)
	c := Codec{}
	values := []uint64{2, 5, 9}

	packed, err := c.Pack(in, values, 9)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(packed) != 9 {
		t.Fatalf("len(packed) = %d, want 9", len(packed))
	}

	got, err := c.Unpack(in, packed)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("Unpack value %d = %d, want %d", i, got[i], v)
		}
	}
}

func TestPackRejectsOverflowValue(t *testing.T) {
	in := reportSlice(Report{Name: "ri", Bits: 2})
	c := Codec{}
	if _, err := c.Pack(in, []uint64{4}, 2); err == nil {
		t.Fatal("Pack with value 4 in a 2-bit field: expected error, got nil")
	}
}

func TestPackRejectsCapacityOverrun(t *testing.T) {
	in := reportSlice(Report{Name: "ri", Bits: 2}, Report{Name: "cqi", Bits: 4})
	c := Codec{}
	if _, err := c.Pack(in, []uint64{1, 2}, 4); err == nil {
		t.Fatal("Pack with total width 6 exceeding capacity 4: expected error, got nil")
	}
}

func TestUnpackRejectsShortBuffer(t *testing.T) {
	in := reportSlice(Report{Name: "ri", Bits: 2}, Report{Name: "cqi", Bits: 4})
	c := Codec{}
	if _, err := c.Unpack(in, []byte{1, 0, 1}); err == nil {
		t.Fatal("Unpack with too few bits: expected error, got nil")
	}
}

func TestReportsRejectsForeignType(t *testing.T) {
	in := []uci.CSIReport{struct{}{}}
	c := Codec{}
	if got := c.NofBits(in); got != 0 {
		t.Errorf("NofBits with a non-csi.Report element = %d, want 0", got)
	}
}
