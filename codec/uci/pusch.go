/*
NAME
  pusch.go

DESCRIPTION
  pusch.go implements the PUSCH multiplexer entry points of §4.6: the
  independent HARQ-ACK and CSI Part 1 encode/decode paths, including the
  special ACK pad-promotion rule.

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

// EncodeACK implements the HARQ-ACK-on-PUSCH entry point of §4.6. A
// zero-length ACK field returns a nil output with no error. The special
// pad rule promotes A=0 or A=1 to A=2 when K_sum=0, more than one CSI
// report is configured, and CSI Part 2 is absent.
func (h *Handle) EncodeACK(cfg *UCIConfig, value *Value) ([]Bit, error) {
	if cfg == nil || value == nil {
		return nil, newErr(InvalidInput, "EncodeACK: nil argument")
	}
	a := cfg.OACK
	if len(value.ACK) < a {
		return nil, newErr(InvalidInput, "o_ack=%d but only %d ACK bits supplied", a, len(value.ACK))
	}
	bits := append([]byte(nil), value.ACK[:a]...)

	if cfg.PUSCH.KSum == 0 && len(cfg.CSI) > 1 && !cfg.PUSCH.CSIPart2Present && a < 2 {
		var ack0 byte
		if a == 1 {
			ack0 = bits[0]
		}
		bits = []byte{ack0, 0}
		a = 2
	}

	if a == 0 {
		return nil, nil
	}

	e, err := PUSCHACKNofBits(&cfg.PUSCH, a)
	if err != nil {
		return nil, err
	}
	h.debugf("PUSCH ACK encode: A=%d E=%d", a, e)
	return h.encodeClass(bits, a, e, cfg.PUSCH.Modulation.Qm())
}

// DecodeACK is the inverse of EncodeACK, applying the identical pad
// rule to recover the dispatch width A before decoding.
func (h *Handle) DecodeACK(cfg *UCIConfig, llr []int8, value *Value) error {
	if cfg == nil || value == nil {
		return newErr(InvalidInput, "DecodeACK: nil argument")
	}
	a := cfg.OACK
	promoted := cfg.PUSCH.KSum == 0 && len(cfg.CSI) > 1 && !cfg.PUSCH.CSIPart2Present && a < 2
	if promoted {
		a = 2
	}
	if a == 0 {
		value.ACK = nil
		value.Valid = true
		return nil
	}

	e, err := PUSCHACKNofBits(&cfg.PUSCH, a)
	if err != nil {
		return err
	}
	bits, ok, err := h.decodeClass(llr, a, e, cfg.PUSCH.Modulation.Qm())
	if err != nil {
		return err
	}
	if promoted {
		if cfg.OACK == 1 {
			bits = bits[:1]
		} else {
			bits = nil
		}
	}
	value.ACK = bits
	value.Valid = ok
	h.debugf("PUSCH ACK decode: A=%d E=%d decoded_ok=%v", a, e, ok)
	return nil
}

// EncodeCSI1 implements the CSI-Part-1-on-PUSCH entry point of §4.6. A
// zero-length packed CSI field returns a nil output with no error.
func (h *Handle) EncodeCSI1(cfg *UCIConfig, value *Value) ([]Bit, error) {
	if cfg == nil || value == nil {
		return nil, newErr(InvalidInput, "EncodeCSI1: nil argument")
	}
	bits, err := h.csi.Pack(cfg.CSI, value.CSI, MaxUCIBits)
	if err != nil {
		return nil, wrapErr(CodecFailure, err, "packing CSI part 1")
	}
	a := len(bits)
	if a == 0 {
		return nil, nil
	}

	e, err := puschCSI1NofBits(&cfg.PUSCH, cfg.OACK, a)
	if err != nil {
		return nil, err
	}
	h.debugf("PUSCH CSI1 encode: A=%d E=%d", a, e)
	return h.encodeClass(bits, a, e, cfg.PUSCH.Modulation.Qm())
}

// DecodeCSI1 is the inverse of EncodeCSI1, sizing A from the CSI
// collaborator's csi_part1_nof_bits equivalent.
func (h *Handle) DecodeCSI1(cfg *UCIConfig, llr []int8, value *Value) error {
	if cfg == nil || value == nil {
		return newErr(InvalidInput, "DecodeCSI1: nil argument")
	}
	a := h.csi.NofBits(cfg.CSI)
	if a == 0 {
		value.CSI = nil
		value.Valid = true
		return nil
	}

	e, err := puschCSI1NofBits(&cfg.PUSCH, cfg.OACK, a)
	if err != nil {
		return err
	}
	bits, ok, err := h.decodeClass(llr, a, e, cfg.PUSCH.Modulation.Qm())
	if err != nil {
		return err
	}
	values, err := h.csi.Unpack(cfg.CSI, bits)
	if err != nil {
		return wrapErr(CodecFailure, err, "unpacking CSI part 1")
	}
	value.CSI = values
	value.Valid = ok
	h.debugf("PUSCH CSI1 decode: A=%d E=%d decoded_ok=%v", a, e, ok)
	return nil
}

// TotalBits returns the combined HARQ-ACK, SR and CSI Part 1 bit width
// for cfg, equivalent to A(cfg) but exported for callers that only need
// a sizing query without a Value to pack.
func (h *Handle) TotalBits(cfg *UCIConfig) int {
	return h.A(cfg)
}
