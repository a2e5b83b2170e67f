package framune

import (
	"context"
	"io"

	"github.com/link89/f-ramune/memchip"
	"github.com/link89/f-ramune/protocol"
)

// Session drives the F-Ramune protocol over a byte-stream transport.
// It owns the transport exclusively for its lifetime and tracks the chip
// descriptor from the last successful negotiation.
//
// A Session is not safe for concurrent operations: every exchange is
// multi-step, and interleaving two of them would desynchronize both peers'
// notions of protocol state. Use one Session per transport; independent
// sessions on independent transports are fine.
type Session struct {
	device io.ReadWriter
	config Config
	chip   memchip.Chip
}

// New creates a Session over the given transport.
// The transport must bound every read with a timeout: a read that cannot
// produce the requested bytes in time has to fail rather than block forever.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0")
//	session := framune.New(port)
//	defer session.Close()
func New(device io.ReadWriter, opts ...Option) *Session {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		device: device,
		config: cfg,
	}
}

// Chip returns a copy of the descriptor from the last successful
// NegotiateChip, or the all-unknown descriptor if none has completed.
func (s *Session) Chip() memchip.Chip {
	return s.chip
}

// GetVersion asks the bridge for its protocol version.
// It may be called at any point in a session and changes no state.
func (s *Session) GetVersion(ctx context.Context) (uint16, error) {
	if err := s.command(ctx, protocol.CmdGetVersion); err != nil {
		return 0, err
	}

	buf := make([]byte, protocol.VersionSize)
	if err := s.readFull(buf); err != nil {
		return 0, err
	}

	version, err := protocol.DecodeUint16(buf)
	if err != nil {
		return 0, err
	}

	s.logDebug("bridge protocol version received", "version", version)
	return version, nil
}

// VersionMatches reports whether the bridge speaks the same protocol version
// as this library (protocol.Version). A mismatch is an answer, not an error.
func (s *Session) VersionMatches(ctx context.Context) (bool, error) {
	version, err := s.GetVersion(ctx)
	if err != nil {
		return false, err
	}
	return version == protocol.Version, nil
}

// NegotiateChip proposes a chip configuration and returns the bridge's own
// analysis of the attached chip. The response is authoritative, not an echo
// of the request: the bridge may have determined fields the host left
// unknown, and may report others as undeterminable.
//
// On success the decoded descriptor replaces the session's current chip
// wholesale. On any failure (timeout, integrity, malformed response) the
// stored descriptor is left exactly as it was.
func (s *Session) NegotiateChip(ctx context.Context, requested memchip.Chip) (memchip.Chip, error) {
	if err := s.command(ctx, protocol.CmdSetChip); err != nil {
		return memchip.Chip{}, err
	}

	if err := s.write(protocol.EncodeKnownMask(requested)); err != nil {
		return memchip.Chip{}, err
	}
	if err := s.write(protocol.EncodeValues(requested)); err != nil {
		return memchip.Chip{}, err
	}

	// The bridge answers with the mask first, then the value block.
	known := make([]byte, protocol.KnownMaskSize)
	if err := s.readFull(known); err != nil {
		return memchip.Chip{}, err
	}
	values := make([]byte, protocol.ValueBlockSize)
	if err := s.readFull(values); err != nil {
		return memchip.Chip{}, err
	}

	chip, err := protocol.DecodeChip(known, values)
	if err != nil {
		return memchip.Chip{}, err
	}

	s.chip = chip
	s.logInfo("chip negotiated", "chip", chip.String())
	return chip, nil
}

// ReadMemory would read length bytes starting at address from the chip
// currently connected to the bridge. The F-Ramune protocol defines no wire
// format for memory transfers, so this always fails with NotSupportedError.
func (s *Session) ReadMemory(ctx context.Context, address uint32, length int) ([]byte, error) {
	return nil, &NotSupportedError{Op: "memory read"}
}

// WriteMemory would write data to the chip currently connected to the
// bridge, starting at address. The F-Ramune protocol defines no wire format
// for memory transfers, so this always fails with NotSupportedError.
func (s *Session) WriteMemory(ctx context.Context, address uint32, data []byte) error {
	return &NotSupportedError{Op: "memory write"}
}

// Close releases the underlying transport if it owns a connection.
// Sessions should be closed on every exit path, typically with defer.
func (s *Session) Close() error {
	if closer, ok := s.device.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// write sends the whole buffer to the transport.
func (s *Session) write(p []byte) error {
	_, err := s.device.Write(p)
	return err
}

// readFull reads exactly len(buf) bytes from the transport. A short read is
// treated identically to a full timeout: the bridge failed to produce the
// expected bytes in time.
func (s *Session) readFull(buf []byte) error {
	n, err := io.ReadFull(s.device, buf)
	if err != nil {
		return &TimeoutError{Want: len(buf), Got: n, Err: err}
	}
	return nil
}
