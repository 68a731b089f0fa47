/*
NAME
  register.go

DESCRIPTION
  register.go wires this package's concrete CRC, block-code, polar,
  rate-matching and channel-allocation implementations into codec/uci's
  default collaborator set at package initialisation.

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

func init() {
	uci.RegisterFECDefaults(uci.FECDefaults{
		CRC:       crcCodec{},
		Block:     blockCodec{},
		Polar:     polarCodec{},
		RateMatch: rateMatcher{},
		ChanAlloc: chanAllocator{},
	})
}
