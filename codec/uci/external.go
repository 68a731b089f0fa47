/*
NAME
  external.go

DESCRIPTION
  external.go declares the interfaces this package consumes for every
  collaborator §1 names as external: CRC, the Reed-Muller block code,
  the polar code kernel (parameter derivation, encode, decode, rate
  matching, channel allocation) and CSI Part 1 (de)serialisation. The
  core package never reaches past these interfaces into their
  implementation detail; codec/fec and codec/csi provide the concrete
  collaborators wired in by Init.

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

// PolarCode is the set of parameters the polar kernel derives from a
// requested (K, E, nMax): the mother code length N = 2^n, the
// information set K_set, the parity-check set PC_set and the frozen
// set F_set.
type PolarCode struct {
	N     int
	N_log int // log2(N).
	K     int
	NPC   int
	KSet  []int
	PCSet []int
	FSet  []int
}

// CRCCodec attaches and checks the CRC trailing a polar information
// block. L is the CRC length in bits (6 or 11).
type CRCCodec interface {
	// Attach appends L CRC bits to buf and returns the combined
	// info+CRC sequence. When buf has spare capacity the append reuses
	// its backing array, so a caller handing in a scratch slice pays no
	// allocation.
	Attach(l int, buf []byte) []byte

	// Checksum computes the CRC of buf without appending it.
	Checksum(l int, buf []byte) uint32
}

// BlockCodec implements the 32-bit Reed-Muller block code used for
// 3 <= A <= 11.
type BlockCodec interface {
	// Encode maps A info bits (len(bits) == A) onto an E-bit codeword.
	Encode(bits []byte, e int) []byte

	// Decode performs maximum-likelihood decoding of an E-LLR codeword
	// back to A info bits, returning the winning codeword's correlation
	// against llr.
	Decode(llr []int8, e, a int) (corr float64, bits []byte)
}

// PolarCodec derives polar code parameters and performs the Arikan
// transform encode/decode.
type PolarCodec interface {
	// CodeParams resolves (N, K_set, PC_set, F_set) for an information
	// length k rate-matched to e bits, with mother code order capped at
	// 2^nMax.
	CodeParams(k, e, nMax int) (PolarCode, error)

	// Encode maps the length-N pre-encode sequence in preEncode (frozen
	// bits already zeroed, info/CRC bits already allocated) to a
	// length-N codeword written into out. preEncode and out may alias.
	Encode(code PolarCode, preEncode, out []byte) error

	// Decode recovers the length-N pre-encode sequence from length-N
	// LLRs using successive-cancellation decoding guided by F_set,
	// writing it into out.
	Decode(code PolarCode, llr []int8, out []byte) error
}

// RateMatcher rate-matches a length-N polar codeword to E bits and back
// (TS 38.212 §5.4.1).
type RateMatcher interface {
	// Tx rate-matches a length-N polar codeword d down or up to the
	// len(out) == e rate-matched bits written into out.
	Tx(code PolarCode, d, out []byte)

	// Rx undoes Tx, producing length-N LLRs from e rate-matched LLRs.
	Rx(code PolarCode, llr []int8, e int) []int8
}

// ChannelAllocator places/extracts the K information/CRC bits within
// the length-N polar buffer at the positions named by K_set, leaving
// the remaining positions as frozen (zero).
type ChannelAllocator interface {
	// Tx writes the K info/CRC bits of c into their K_set positions in
	// the length-N buffer out, zeroing every other position.
	Tx(code PolarCode, c, out []byte)

	// Rx reads the K info/CRC bits back out of allocated into out.
	Rx(code PolarCode, allocated, out []byte)
}

// CSICodec is the opaque CSI Part 1 (de)serialisation collaborator.
// reports is an opaque, caller-supplied descriptor list this package
// never inspects.
type CSICodec interface {
	// NofBits returns the total packed bit width of reports.
	NofBits(reports []CSIReport) int

	// Pack packs values (one per report) into at most cap bits.
	Pack(reports []CSIReport, values []uint64, cap int) ([]byte, error)

	// Unpack is the inverse of Pack.
	Unpack(reports []CSIReport, bits []byte) ([]uint64, error)

	// HasPart2 reports whether any report in reports carries a CSI
	// Part 2 component.
	HasPart2(reports []CSIReport) bool
}
