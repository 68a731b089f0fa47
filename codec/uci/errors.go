/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the error kinds surfaced across the uci package
  boundary, and an Error type that carries one along with a wrapped
  cause.

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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the reason an Encode/Decode call failed. A rejected
// decode has no Kind: it is not a failure of the call itself, the call
// succeeds but the recovered payload did not pass its
// correlation/CRC/parity check, so Value.Valid is false.
type Kind int

const (
	// InvalidInput covers null arguments, impossible lengths (A >= 1707,
	// E < 1, non-finite R, nof_layers = 0) and invalid modulation/OCC
	// configuration.
	InvalidInput Kind = iota

	// Unsupported covers layouts this revision explicitly declines to
	// implement: CSI-only decode on PUCCH, simultaneous CSI Part 1 +
	// CSI Part 2 multiplexing, and anything beyond TS 38.212 §6.3.1.1.3.
	Unsupported

	// CodecFailure covers an external collaborator (polar encode/decode,
	// rate matching, CSI packing) returning an error, propagated
	// unchanged.
	CodecFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case Unsupported:
		return "unsupported"
	case CodecFailure:
		return "codec failure"
	default:
		return "unknown"
	}
}

// Error is the error type returned from every Encode/Decode entry point
// in this package. It never represents a rejected-but-successful decode;
// that is reported via Value.Valid.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

// Unwrap allows errors.Is/errors.As and pkg/errors.Cause to reach the
// wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause implements pkg/errors' causer interface.
func (e *Error) Cause() error { return e.cause }

func newErr(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, cause: errors.Errorf(format, args...)}
}

func wrapErr(k Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, cause: errors.Wrapf(cause, format, args...)}
}
