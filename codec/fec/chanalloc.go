/*
NAME
  chanalloc.go

DESCRIPTION
  chanalloc.go places and extracts the polar code's information/CRC
  bits at the K_set positions of its N-bit channel buffer, zeroing every
  other (frozen) position. PC_set is not read: CodeParams never
  allocates parity-check bits.

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

import "github.com/ausocean/uci/codec/uci"

// chanAllocator implements uci.ChannelAllocator.
type chanAllocator struct{}

var _ uci.ChannelAllocator = chanAllocator{}

// Tx places len(c) == K info/CRC bits at the positions named by
// code.KSet (ascending, since KSet is sorted) into the length-N buffer
// out, zeroing every other (frozen) position.
func (chanAllocator) Tx(code uci.PolarCode, c, out []byte) {
	for i := range out {
		out[i] = 0
	}
	for i, pos := range code.KSet {
		out[pos] = c[i]
	}
}

// Rx is the inverse of Tx: it reads the K info/CRC bits back out of
// their channel-allocated positions into out.
func (chanAllocator) Rx(code uci.PolarCode, allocated, out []byte) {
	for i, pos := range code.KSet {
		out[i] = allocated[pos]
	}
}
