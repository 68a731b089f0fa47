/*
NAME
  doc.go

DESCRIPTION
  doc.go documents the uci package.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package uci implements the 5G NR Uplink Control Information channel
// coding and multiplexing procedures of 3GPP TS 38.212 §5.3.3 and §6.3:
// packing HARQ-ACK, Scheduling Request and CSI Part 1 values into a bit
// sequence, protecting it with a length-dependent forward error
// correction scheme, and rate-matching the result onto PUCCH or PUSCH.
//
// The package is a pure data transformation: a Handle is initialised
// once, owns its scratch buffers, and may be reused across any number
// of sequential Encode/Decode calls. It performs no I/O and holds no
// state between calls. Polar coding, Reed-Muller block coding, CRC and
// CSI Part 1 (de)serialisation are treated as external collaborators,
// consumed only through the interfaces in external.go, and supplied by
// the sibling codec/fec and codec/csi packages.
package uci
