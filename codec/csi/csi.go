/*
NAME
  csi.go

DESCRIPTION
  csi.go implements the opaque CSI Part 1 (de)serialisation collaborator
  codec/uci consumes through uci.CSICodec: a concatenation of
  fixed-width report values into the one-bit-per-byte wire
  representation, matching the report ordering and widths the caller
  configured.

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
	"github.com/pkg/errors"

	"github.com/ausocean/uci/codec/uci"
)

// Report describes one CSI Part 1 field: a value of Bits width (RI,
// CQI, PMI or similar), and whether it is followed by a CSI Part 2
// report carrying additional, wideband-dependent fields. Part2Bits is
// advisory only; this package does not encode Part 2 content, since
// simultaneous Part 1 + Part 2 multiplexing is not implemented (see
// HasPart2).
type Report struct {
	Name      string
	Bits      int
	HasPart2  bool
	Part2Bits int
}

// Codec is the concrete implementation of uci.CSICodec registered as
// this module's default CSI Part 1 collaborator.
type Codec struct{}

var _ uci.CSICodec = Codec{}

func reports(in []uci.CSIReport) ([]Report, error) {
	out := make([]Report, len(in))
	for i, r := range in {
		rep, ok := r.(Report)
		if !ok {
			return nil, errors.Errorf("csi: report %d is not a csi.Report", i)
		}
		out[i] = rep
	}
	return out, nil
}

// NofBits returns the total packed bit width across all reports.
func (Codec) NofBits(in []uci.CSIReport) int {
	reps, err := reports(in)
	if err != nil {
		return 0
	}
	total := 0
	for _, r := range reps {
		total += r.Bits
	}
	return total
}

// HasPart2 reports whether any configured report carries a CSI Part 2
// component.
func (Codec) HasPart2(in []uci.CSIReport) bool {
	reps, err := reports(in)
	if err != nil {
		return false
	}
	for _, r := range reps {
		if r.HasPart2 {
			return true
		}
	}
	return false
}

// Pack packs one value per report, MSB-first, in report order, failing
// if the combined width exceeds cap.
func (Codec) Pack(in []uci.CSIReport, values []uint64, cap int) ([]byte, error) {
	reps, err := reports(in)
	if err != nil {
		return nil, err
	}
	if len(values) != len(reps) {
		return nil, errors.Errorf("csi: got %d values for %d reports", len(values), len(reps))
	}

	total := 0
	for _, r := range reps {
		total += r.Bits
	}
	if total > cap {
		return nil, errors.Errorf("csi: packed width %d exceeds capacity %d", total, cap)
	}

	out := make([]byte, 0, total)
	for i, r := range reps {
		if values[i] >= 1<<uint(r.Bits) {
			return nil, errors.Errorf("csi: report %q value %d overflows %d bits", r.Name, values[i], r.Bits)
		}
		for b := r.Bits - 1; b >= 0; b-- {
			out = append(out, byte((values[i]>>uint(b))&1))
		}
	}
	return out, nil
}

// Unpack is the inverse of Pack.
func (Codec) Unpack(in []uci.CSIReport, bits []byte) ([]uint64, error) {
	reps, err := reports(in)
	if err != nil {
		return nil, err
	}
	values := make([]uint64, len(reps))
	pos := 0
	for i, r := range reps {
		if pos+r.Bits > len(bits) {
			return nil, errors.Errorf("csi: report %q needs %d bits, only %d remain", r.Name, r.Bits, len(bits)-pos)
		}
		var v uint64
		for b := 0; b < r.Bits; b++ {
			v = (v << 1) | uint64(bits[pos+b]&1)
		}
		values[i] = v
		pos += r.Bits
	}
	return values, nil
}

func init() {
	uci.RegisterCSIDefault(Codec{})
}
