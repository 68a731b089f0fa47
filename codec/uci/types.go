/*
NAME
  types.go

DESCRIPTION
  types.go defines the UCI data model: bit sentinels, modulation orders,
  payload values, PUCCH resources and the PUSCH/UCI configuration
  structs described in §3 of the codec specification.

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

import "fmt"

// MaxUCIBits is the largest total UCI payload this codec will pack;
// A >= 1707 is invalid.
const MaxUCIBits = 1706

// MaxCRCLen is the widest CRC this codec attaches (CRC-11).
const MaxCRCLen = 11

// PolarMax is the size of the pre-encode and post-encode polar scratch
// buffers (2048 bits covers the largest N used by any UCI polar code).
const PolarMax = 2048

// Bit is a single coded-bit sentinel. Encoder output for the A=1 and
// A=2 classes carries, in addition to ordinary 0/1 payload bits, two
// reserved tags that downstream modulation mapping must recognise:
// UCIRepetition and UCIPlaceholder are not payload-carrying.
type Bit byte

const (
	UCIZero Bit = iota
	UCIOne
	UCIRepetition
	UCIPlaceholder
)

func (b Bit) String() string {
	switch b {
	case UCIZero:
		return "0"
	case UCIOne:
		return "1"
	case UCIRepetition:
		return "REP"
	case UCIPlaceholder:
		return "PH"
	default:
		return "?"
	}
}

// bitOf converts a plain payload bit (0 or 1) to its Bit sentinel.
func bitOf(v byte) Bit {
	if v == 0 {
		return UCIZero
	}
	return UCIOne
}

// Modulation is the PUSCH/PUCCH modulation order used to size and shape
// the A=1/A=2 placeholder-repetition patterns. Modulation-order lookup
// proper (mapping a physical MCS to one of these) is outside this
// codec's scope; callers supply the resolved order directly.
type Modulation int

const (
	ModBPSK Modulation = iota
	ModQPSK
	Mod16QAM
	Mod64QAM
	Mod256QAM
)

// Qm returns the number of bits carried per modulation symbol, or 0 for
// an unrecognised modulation.
func (m Modulation) Qm() int {
	switch m {
	case ModBPSK:
		return 1
	case ModQPSK:
		return 2
	case Mod16QAM:
		return 4
	case Mod64QAM:
		return 6
	case Mod256QAM:
		return 8
	default:
		return 0
	}
}

func (m Modulation) String() string {
	switch m {
	case ModBPSK:
		return "pi/2-BPSK"
	case ModQPSK:
		return "QPSK"
	case Mod16QAM:
		return "16QAM"
	case Mod64QAM:
		return "64QAM"
	case Mod256QAM:
		return "256QAM"
	default:
		return "unknown"
	}
}

// PUCCHFormat identifies a PUCCH format capable of carrying multi-bit
// UCI (Formats 0/1 carry at most 2 bits via sequence selection and are
// out of this codec's scope).
type PUCCHFormat int

const (
	PUCCHFormat2 PUCCHFormat = 2
	PUCCHFormat3 PUCCHFormat = 3
	PUCCHFormat4 PUCCHFormat = 4
)

// PUCCHResource describes the physical resource a PUCCH Format 2/3/4
// transmission occupies, sufficient to compute E_tot (§4.5).
type PUCCHResource struct {
	Format       PUCCHFormat
	NofSymbols   int
	NofPRB       int  // Unused for Format 4.
	EnablePiBPSK bool // pi/2-BPSK modulation in place of QPSK.
	OCCLength    int  // Format 4 only: 1 or 2.
}

// Modulation returns the modulation order the resource implies: Format
// 2 always uses QPSK; Formats 3 and 4 use pi/2-BPSK in place of QPSK
// when enabled.
func (r *PUCCHResource) Modulation() Modulation {
	if r.Format != PUCCHFormat2 && r.EnablePiBPSK {
		return ModBPSK
	}
	return ModQPSK
}

// PUSCHConfig carries the rate-matching parameters of §4.4 that are
// specific to multiplexing UCI onto PUSCH.
type PUSCHConfig struct {
	Modulation        Modulation
	NofLayers         int
	BetaHARQACKOffset float64
	BetaCSI1Offset    float64
	Alpha             float64 // Scaling factor, (0,1].
	R                 float64 // Code rate of the UL-SCH.
	KSum              int     // Sum of UL-SCH code block info lengths.
	MUciSC            [14]int // Usable subcarriers per OFDM symbol.
	L0                int     // First DMRS-free symbol index.
	CSIPart2Present   bool
}

// UCIConfig describes one UCI transmission: the bit widths of its
// fields and, when multiplexed on PUSCH, the resource-element sizing
// parameters needed to compute E_uci.
type UCIConfig struct {
	OACK  int
	OSR   int
	CSI   []CSIReport // Opaque CSI Part 1 report descriptors.
	PUSCH PUSCHConfig
}

// Validate checks the statically checkable §3 invariants: field widths
// within the payload budget and, when PUSCH parameters are set, a sane
// scaling factor. The CSI-dependent part of the bit budget is enforced
// at pack time, where the CSI collaborator's widths are known.
func (cfg *UCIConfig) Validate() error {
	if cfg.OACK < 0 || cfg.OSR < 0 {
		return newErr(InvalidInput, "negative field width: o_ack=%d o_sr=%d", cfg.OACK, cfg.OSR)
	}
	if cfg.OACK+cfg.OSR > MaxUCIBits {
		return newErr(InvalidInput, "o_ack+o_sr = %d exceeds %d", cfg.OACK+cfg.OSR, MaxUCIBits)
	}
	if cfg.PUSCH.Alpha < 0 || cfg.PUSCH.Alpha > 1 {
		return newErr(InvalidInput, "alpha = %v outside [0,1]", cfg.PUSCH.Alpha)
	}
	return nil
}

// CSIReport is the opaque, per-report descriptor consumed by the CSI
// Part 1 (de)serialisation collaborator (codec/csi). The codec package
// never inspects its fields beyond what CSICodec requires.
type CSIReport interface{}

// Value carries one UCI payload: HARQ-ACK bits, an SR field and CSI
// Part 1 report values. Valid is set by the decoder.
type Value struct {
	ACK   []byte // One byte per ACK bit, each 0 or 1.
	SR    uint64
	CSI   []uint64 // One opaque encoded value per CSI report.
	Valid bool
}

// String renders a short, human-readable summary of v for logging,
// mirroring the one-line UCI summary a radio stack prints per slot.
func (v Value) String() string {
	s := fmt.Sprintf("ack=%v", v.ACK)
	if len(v.CSI) > 0 {
		s += fmt.Sprintf(", csi=%v", v.CSI)
	}
	s += fmt.Sprintf(", sr=%d, valid=%v", v.SR, v.Valid)
	return s
}

// crcLen returns L(A): the CRC length attached ahead of polar coding,
// per §3.
func crcLen(a int) int {
	switch {
	case a <= 11:
		return 0
	case a <= 19:
		return 6
	default:
		return 11
	}
}

// segmented reports whether A is split into two polar code blocks, per
// the §3 segmentation rule.
func segmented(a, e int) bool {
	return (a >= 360 && e >= 1088) || a >= 1013
}

// ceilDiv returns ceil(a/b) for positive integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
