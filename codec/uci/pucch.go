/*
NAME
  pucch.go

DESCRIPTION
  pucch.go implements the PUCCH framer of §4.5: the E_tot sizing
  formulas for Format 2/3/4 and the PUCCH-facing encode/decode entry
  points built on the bit sequence builder (C2) and the length-dependent
  dispatch (C3/C4).

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

// PUCCHE computes E_tot for a PUCCH resource, per §4.5. Part-1/Part-2
// CSI splitting is not implemented: E_uci is always E_tot.
func PUCCHE(res *PUCCHResource) (int, error) {
	switch res.Format {
	case PUCCHFormat2:
		return 16 * res.NofSymbols * res.NofPRB, nil
	case PUCCHFormat3:
		if res.EnablePiBPSK {
			return 12 * res.NofSymbols * res.NofPRB, nil
		}
		return 24 * res.NofSymbols * res.NofPRB, nil
	case PUCCHFormat4:
		if res.OCCLength != 1 && res.OCCLength != 2 {
			return 0, newErr(InvalidInput, "PUCCH format 4 requires OCC length 1 or 2, got %d", res.OCCLength)
		}
		if res.EnablePiBPSK {
			return 12 * res.NofSymbols / res.OCCLength, nil
		}
		return 24 * res.NofSymbols / res.OCCLength, nil
	default:
		return 0, newErr(InvalidInput, "unsupported PUCCH format %d", res.Format)
	}
}

// EncodePUCCH builds the ordered payload, dispatches it through the
// length-dependent coder, and returns the E-bit sentinel-carrying
// output ready for modulation mapping.
func (h *Handle) EncodePUCCH(cfg *UCIConfig, value *Value, res *PUCCHResource) ([]Bit, error) {
	if cfg == nil || value == nil || res == nil {
		return nil, newErr(InvalidInput, "EncodePUCCH: nil argument")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := PUCCHE(res)
	if err != nil {
		return nil, err
	}

	a, err := h.PackPUCCH(cfg, value, h.bitSequence)
	if err != nil {
		return nil, err
	}
	h.debugf("PUCCH encode: A=%d E=%d format=%d", a, e, res.Format)

	return h.encodeClass(h.bitSequence[:a], a, e, res.Modulation().Qm())
}

// DecodePUCCH is the inverse of EncodePUCCH: it recovers the payload
// bit sequence via the length-dependent decoder, then unpacks it into
// value's fields. value.Valid reports the decoder's decoded_ok outcome.
func (h *Handle) DecodePUCCH(cfg *UCIConfig, llr []int8, res *PUCCHResource, value *Value) error {
	if cfg == nil || value == nil || res == nil {
		return newErr(InvalidInput, "DecodePUCCH: nil argument")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := h.checkDecodeLayout(cfg); err != nil {
		return err
	}
	e, err := PUCCHE(res)
	if err != nil {
		return err
	}

	a := h.A(cfg)
	bits, ok, err := h.decodeClass(llr, a, e, res.Modulation().Qm())
	if err != nil {
		return err
	}

	if err := h.UnpackPUCCH(cfg, bits, value); err != nil {
		return err
	}
	value.Valid = ok
	h.debugf("PUCCH decode: A=%d E=%d decoded_ok=%v", a, e, ok)
	return nil
}
