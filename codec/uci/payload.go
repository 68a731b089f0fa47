/*
NAME
  payload.go

DESCRIPTION
  payload.go implements the UCI bit sequence generation of TS 38.212
  §6.3.1.1: concatenating HARQ-ACK, SR and CSI Part 1 into the ordered
  payload a[0..A-1], and its strict inverse.

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

// A returns the payload bit width for the layout cfg selects, without
// packing any bits.
func (h *Handle) A(cfg *UCIConfig) int {
	oCSI := h.csi.NofBits(cfg.CSI)

	// §6.3.1.1.1 HARQ-ACK/SR only.
	if oCSI == 0 {
		return cfg.OACK + cfg.OSR
	}

	// §6.3.1.1.2 CSI only.
	if cfg.OACK == 0 && cfg.OSR == 0 {
		return oCSI
	}

	// §6.3.1.1.3 HARQ-ACK/SR and CSI.
	return cfg.OACK + cfg.OSR + oCSI
}

// PackPUCCH writes the ordered payload sequence for a PUCCH
// transmission into seq and returns A, the number of bits written.
func (h *Handle) PackPUCCH(cfg *UCIConfig, value *Value, seq []byte) (int, error) {
	if cfg == nil || value == nil {
		return 0, newErr(InvalidInput, "PackPUCCH: nil argument")
	}
	if len(value.ACK) < cfg.OACK {
		return 0, newErr(InvalidInput, "o_ack=%d but only %d ACK bits supplied", cfg.OACK, len(value.ACK))
	}
	if cfg.OSR < 64 && value.SR >= 1<<uint(cfg.OSR) {
		return 0, newErr(InvalidInput, "sr=%d overflows %d bits", value.SR, cfg.OSR)
	}
	oCSI := h.csi.NofBits(cfg.CSI)
	if cfg.OACK+cfg.OSR+oCSI > MaxUCIBits {
		return 0, newErr(InvalidInput, "payload width %d exceeds %d", cfg.OACK+cfg.OSR+oCSI, MaxUCIBits)
	}

	// §6.3.1.1.1 HARQ-ACK/SR only.
	if oCSI == 0 {
		return h.packACKSR(cfg, value, seq), nil
	}

	// §9 open question: simultaneous CSI Part 1 + CSI Part 2
	// multiplexing is a Non-goal; reject rather than silently drop
	// Part 2 (uci_nr_pucch_E_uci's commented-out rejection, made real).
	if h.csi.HasPart2(cfg.CSI) {
		return 0, newErr(Unsupported, "simultaneous CSI part 1 + part 2 multiplexing is not implemented")
	}

	// §6.3.1.1.2 CSI only.
	if cfg.OACK == 0 && cfg.OSR == 0 {
		bits, err := h.csi.Pack(cfg.CSI, value.CSI, MaxUCIBits)
		if err != nil {
			return 0, wrapErr(CodecFailure, err, "packing CSI part 1")
		}
		copy(seq, bits)
		return len(bits), nil
	}

	// §6.3.1.1.3 HARQ-ACK/SR and CSI.
	return h.packACKSRCSI(cfg, value, seq)
}

// checkDecodeLayout rejects the PUCCH layouts this revision cannot
// decode: any layout whose CSI carries a Part 2 component, and the
// CSI-only layout (§4.1, §9 - the PUCCH framer is not given enough
// context to distinguish a CSI-only layout from noise on decode).
func (h *Handle) checkDecodeLayout(cfg *UCIConfig) error {
	if h.csi.NofBits(cfg.CSI) == 0 {
		return nil
	}
	if h.csi.HasPart2(cfg.CSI) {
		return newErr(Unsupported, "simultaneous CSI part 1 + part 2 multiplexing is not implemented")
	}
	if cfg.OACK == 0 && cfg.OSR == 0 {
		return newErr(Unsupported, "CSI-only decode on PUCCH is not implemented")
	}
	return nil
}

// UnpackPUCCH is the strict inverse of PackPUCCH.
func (h *Handle) UnpackPUCCH(cfg *UCIConfig, seq []byte, value *Value) error {
	if cfg == nil || value == nil {
		return newErr(InvalidInput, "UnpackPUCCH: nil argument")
	}
	if err := h.checkDecodeLayout(cfg); err != nil {
		return err
	}
	if len(seq) < cfg.OACK+cfg.OSR {
		return newErr(InvalidInput, "sequence of %d bits too short for o_ack=%d o_sr=%d", len(seq), cfg.OACK, cfg.OSR)
	}

	// §6.3.1.1.1 HARQ-ACK/SR only.
	if h.csi.NofBits(cfg.CSI) == 0 {
		h.unpackACKSR(cfg, seq, value)
		return nil
	}

	// §6.3.1.1.3 HARQ-ACK/SR and CSI.
	return h.unpackACKSRCSI(cfg, seq, value)
}

func (h *Handle) packACKSR(cfg *UCIConfig, value *Value, seq []byte) int {
	a := 0
	copy(seq[a:], value.ACK[:cfg.OACK])
	a += cfg.OACK
	bitUnpackMSB(value.SR, cfg.OSR, seq[a:])
	a += cfg.OSR
	h.debugf("packed ack/sr UCI bits: A=%d", a)
	return a
}

func (h *Handle) unpackACKSR(cfg *UCIConfig, seq []byte, value *Value) int {
	a := 0
	value.ACK = append(value.ACK[:0], seq[a:a+cfg.OACK]...)
	a += cfg.OACK
	value.SR = bitPackMSB(seq[a:], cfg.OSR)
	a += cfg.OSR
	h.debugf("unpacked ack/sr UCI bits: A=%d", a)
	return a
}

func (h *Handle) packACKSRCSI(cfg *UCIConfig, value *Value, seq []byte) (int, error) {
	a := h.packACKSR(cfg, value, seq)
	bits, err := h.csi.Pack(cfg.CSI, value.CSI, MaxUCIBits-a)
	if err != nil {
		return 0, wrapErr(CodecFailure, err, "packing CSI part 1")
	}
	copy(seq[a:], bits)
	a += len(bits)
	h.debugf("packed ack/sr/csi UCI bits: A=%d", a)
	return a, nil
}

func (h *Handle) unpackACKSRCSI(cfg *UCIConfig, seq []byte, value *Value) error {
	a := h.unpackACKSR(cfg, seq, value)
	values, err := h.csi.Unpack(cfg.CSI, seq[a:])
	if err != nil {
		return wrapErr(CodecFailure, err, "unpacking CSI part 1")
	}
	value.CSI = values
	h.debugf("unpacked ack/sr/csi UCI bits")
	return nil
}
