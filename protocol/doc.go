// Package protocol implements the F-Ramune wire codec.
//
// This package provides pure functions translating between in-memory values
// and exact byte layouts. It performs no I/O; the framune package drives the
// exchanges.
//
// # Protocol Overview
//
// All multi-byte integers are big-endian, for every field of every exchange.
//
// Every command starts with a one-byte handshake:
//
//	host -> bridge: C        (the command byte)
//	bridge -> host: R        (echo of what it received)
//	host -> bridge: 0x00 if R == C, else 0x01
//
// Echoing the command back lets the host detect single-byte corruption on a
// noisy serial link before the stateful part of an exchange begins; the
// final confirm/deny byte tells the bridge whether the host accepted the
// echo, so both sides agree on the outcome before any payload moves.
//
// The two defined exchanges, after a confirmed handshake:
//
//	Get version (C = 0x00):
//	    bridge -> host: version (2 bytes)
//
//	Set chip (C = 0x01):
//	    host -> bridge: known mask (4 bytes), value block (7 bytes)
//	    bridge -> host: known mask (4 bytes), value block (7 bytes)
//
// # Chip Descriptor Layout
//
// The known mask carries one byte per descriptor field, 1 meaning the field
// holds a meaningful value and 0 meaning it is unknown. The value block
// carries the fields back to back in their natural widths, with zero
// placeholders for unknown fields. Field order is fixed and shared by both
// blocks:
//
//	is_operational  bool    1 byte
//	size            uint32  4 bytes
//	is_nonvolatile  bool    1 byte
//	is_eeprom       bool    1 byte
//
// Both the encode and decode paths walk the same statically declared field
// table, so the two layouts cannot drift independently.
//
// # Error Handling
//
// Decoders fail with MalformedInputError when the input length is not the
// exact expected size. That indicates mismatched constants between the two
// sides of the codec, not a transient link fault:
//
//	chip, err := protocol.DecodeChip(known, values)
//	if protocol.IsMalformedInput(err) {
//	    // programming error, not worth retrying
//	}
package protocol
