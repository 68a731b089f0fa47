/*
NAME
  ucidemo

DESCRIPTION
  ucidemo exercises the UCI codec end to end: it packs a HARQ-ACK/SR
  payload, frames it for a PUCCH resource, encodes it, simulates a
  noiseless channel, decodes it back, and prints the sent and recovered
  values side by side.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	_ "github.com/ausocean/uci/codec/csi"
	_ "github.com/ausocean/uci/codec/fec"
	"github.com/ausocean/uci/codec/uci"
)

func main() {
	var (
		oACK    = flag.Int("ack", 1, "number of HARQ-ACK bits")
		oSR     = flag.Int("sr", 0, "number of SR bits")
		format  = flag.Int("format", 2, "PUCCH format (2, 3 or 4)")
		nSym    = flag.Int("symbols", 2, "PUCCH symbol count")
		nPRB    = flag.Int("prb", 1, "PUCCH PRB count")
		occ     = flag.Int("occ", 1, "PUCCH format 4 OCC length (1 or 2)")
		piBPSK  = flag.Bool("pi2bpsk", false, "use pi/2-BPSK in place of QPSK (formats 3 and 4)")
		logPath = flag.String("log", "", "write trace logs to this file (rotated); empty disables logging")
		verbose = flag.Bool("v", false, "log encode/decode trace to stderr")
	)
	flag.Parse()

	var logger *log.Logger
	if *logPath != "" {
		logger = log.New(&lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}, "ucidemo: ", log.LstdFlags)
	} else if *verbose {
		logger = log.New(os.Stderr, "ucidemo: ", log.LstdFlags)
	}

	h, err := uci.Init(uci.Args{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer h.Free()

	cfg := &uci.UCIConfig{OACK: *oACK, OSR: *oSR}
	res := &uci.PUCCHResource{
		Format:       uci.PUCCHFormat(*format),
		NofSymbols:   *nSym,
		NofPRB:       *nPRB,
		EnablePiBPSK: *piBPSK,
		OCCLength:    *occ,
	}

	ack := make([]byte, *oACK)
	for i := range ack {
		ack[i] = byte(i % 2)
	}
	value := &uci.Value{ACK: ack}
	if *oSR > 0 {
		value.SR = 1
	}

	encoded, err := h.EncodePUCCH(cfg, value, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}

	llr := make([]int8, len(encoded))
	for i, b := range encoded {
		switch b {
		case uci.UCIZero:
			llr[i] = 100
		case uci.UCIOne:
			llr[i] = -100
		default:
			llr[i] = 0
		}
	}

	var decoded uci.Value
	if err := h.DecodePUCCH(cfg, llr, res, &decoded); err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("sent:     %s\n", value.String())
	fmt.Printf("received: %s\n", decoded.String())
	fmt.Printf("E=%d A=%d\n", len(encoded), h.A(cfg))
}
