/*
NAME
  handle.go

DESCRIPTION
  handle.go provides the codec Handle: its scratch buffers, tunables
  and the external collaborators it dispatches to. A Handle is
  initialised once, may be reused sequentially for any number of
  Encode/Decode calls, and is freed once.

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

import "log"

// Default correlation/power thresholds, per §6.
const (
	DefaultBlockCodeThreshold = 0.5
	DefaultOneBitThreshold    = 0.5
)

// Args are the tunables supplied to Init.
type Args struct {
	// DisableSIMD selects the reference encoder/decoder pair over the
	// accelerated pair where the polar codec offers one. The bit-exact
	// result is identical either way.
	DisableSIMD bool

	// BlockCodeThreshold and OneBitThreshold default to 0.5 when zero.
	BlockCodeThreshold float64
	OneBitThreshold    float64

	// CRC, Block, Polar, RateMatch, ChanAlloc and CSI are the external
	// collaborators. Callers normally leave these nil and get the
	// codec/fec and codec/csi defaults wired in by Init; tests may
	// substitute fakes.
	CRC       CRCCodec
	Block     BlockCodec
	Polar     PolarCodec
	RateMatch RateMatcher
	ChanAlloc ChannelAllocator
	CSI       CSICodec

	// Logger, if non-nil, receives trace output equivalent to the
	// reference implementation's UCI_NR_INFO_TX/RX macros. Nil disables
	// logging; this package never logs by default.
	Logger *log.Logger
}

// Handle is a reusable codec instance. It holds no per-call state
// between invocations and may not be used concurrently by more than one
// goroutine at a time (§5).
type Handle struct {
	disableSIMD        bool
	blockCodeThreshold float64
	oneBitThreshold    float64

	crc       CRCCodec
	block     BlockCodec
	polar     PolarCodec
	rateMatch RateMatcher
	chanAlloc ChannelAllocator
	csi       CSICodec

	logger *log.Logger

	// Scratch buffers, sized once at Init and reused across calls.
	bitSequence []byte // MaxUCIBits.
	c           []byte // MaxUCIBits + MaxCRCLen.
	allocated   []byte // PolarMax.
	d           []byte // PolarMax.
}

// Init constructs a Handle from args. External collaborator fields left
// nil in args fall back to this module's own codec/fec and codec/csi
// implementations via the package-level defaults registered by those
// packages (see RegisterFECDefaults and RegisterCSIDefault).
func Init(args Args) (*Handle, error) {
	h := &Handle{
		disableSIMD:        args.DisableSIMD,
		blockCodeThreshold: args.BlockCodeThreshold,
		oneBitThreshold:    args.OneBitThreshold,
		crc:                args.CRC,
		block:              args.Block,
		polar:              args.Polar,
		rateMatch:          args.RateMatch,
		chanAlloc:          args.ChanAlloc,
		csi:                args.CSI,
		logger:             args.Logger,
		bitSequence:        make([]byte, MaxUCIBits),
		c:                  make([]byte, MaxUCIBits+MaxCRCLen),
		allocated:          make([]byte, PolarMax),
		d:                  make([]byte, PolarMax),
	}
	if h.blockCodeThreshold == 0 {
		h.blockCodeThreshold = DefaultBlockCodeThreshold
	}
	if h.oneBitThreshold == 0 {
		h.oneBitThreshold = DefaultOneBitThreshold
	}
	if h.crc == nil {
		h.crc = defaultFEC.CRC
	}
	if h.block == nil {
		h.block = defaultFEC.Block
	}
	if h.polar == nil {
		h.polar = defaultFEC.Polar
	}
	if h.rateMatch == nil {
		h.rateMatch = defaultFEC.RateMatch
	}
	if h.chanAlloc == nil {
		h.chanAlloc = defaultFEC.ChanAlloc
	}
	if h.csi == nil {
		h.csi = defaultCSI
	}
	if h.crc == nil || h.block == nil || h.polar == nil || h.rateMatch == nil || h.chanAlloc == nil || h.csi == nil {
		return nil, newErr(InvalidInput, "no default codec collaborators registered and none supplied")
	}
	return h, nil
}

// Free releases the Handle's scratch buffers. A freed Handle must not
// be reused.
func (h *Handle) Free() {
	h.bitSequence = nil
	h.c = nil
	h.allocated = nil
	h.d = nil
}

func (h *Handle) debugf(format string, args ...interface{}) {
	if h.logger == nil {
		return
	}
	h.logger.Printf(format, args...)
}

// FECDefaults bundles the default forward-error-correction
// collaborators codec/fec registers at init time, so that Init can
// produce a working Handle without every caller constructing its own
// CRC/polar/block-code stack.
type FECDefaults struct {
	CRC       CRCCodec
	Block     BlockCodec
	Polar     PolarCodec
	RateMatch RateMatcher
	ChanAlloc ChannelAllocator
}

var defaultFEC FECDefaults

// RegisterFECDefaults installs the package-level default FEC
// collaborators. codec/fec calls this from an init function.
func RegisterFECDefaults(d FECDefaults) { defaultFEC = d }

var defaultCSI CSICodec

// RegisterCSIDefault installs the package-level default CSI Part 1
// collaborator. codec/csi calls this from an init function.
func RegisterCSIDefault(c CSICodec) { defaultCSI = c }
