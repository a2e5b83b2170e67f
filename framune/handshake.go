package framune

import (
	"context"

	"github.com/link89/f-ramune/protocol"
)

// command runs the echo/ack handshake for a single command byte, the unit
// every exchange is built from:
//
//  1. send the command byte
//  2. read the bridge's one-byte echo
//  3. send AckConfirm if the echo matches, AckDeny if it does not
//
// The confirm/deny byte is always its own write after the comparison, never
// folded into the next exchange, so the bridge learns whether the host
// accepted the echo before any payload moves.
//
// On an echo mismatch the command is considered not executed and the
// handshake fails with IntegrityError. If the echo never arrives, the
// handshake fails with TimeoutError and no acknowledgment is sent, since
// there is nothing to acknowledge.
func (s *Session) command(ctx context.Context, code byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.write([]byte{code}); err != nil {
		return err
	}

	echo := make([]byte, 1)
	if err := s.readFull(echo); err != nil {
		return err
	}

	if echo[0] != code {
		_ = s.write([]byte{protocol.AckDeny})
		s.logError("command corrupted in transit", "command", code, "echo", echo[0])
		return &IntegrityError{Command: code, Echo: echo[0]}
	}

	return s.write([]byte{protocol.AckConfirm})
}
