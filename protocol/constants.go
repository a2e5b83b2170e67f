package protocol

// Version is the F-Ramune protocol version implemented by this library.
// The bridge reports its own version through the get-version exchange;
// Session.VersionMatches compares the two.
const Version uint16 = 0

// Command codes. Every command begins with the echo/ack handshake.
const (
	// CmdGetVersion asks the bridge for its protocol version (2-byte response)
	CmdGetVersion = 0x00

	// CmdSetChip proposes a chip descriptor and receives the bridge's analysis
	CmdSetChip = 0x01
)

// Acknowledgment bytes sent by the host after receiving the command echo.
const (
	// AckConfirm is sent when the echoed byte matches the command
	AckConfirm = 0x00

	// AckDeny is sent when the echoed byte differs from the command
	AckDeny = 0x01
)

// Fixed wire sizes. KnownMaskSize and ValueBlockSize are derived from the
// chip field table and must match the firmware's layout byte for byte; they
// are protocol constants, never recomputed per call.
const (
	// VersionSize is the size of the version response in bytes
	VersionSize = 2

	// KnownMaskSize is the known mask size: one byte per descriptor field
	KnownMaskSize = 4

	// ValueBlockSize is the value block size: bool(1) + u32(4) + bool(1) + bool(1)
	ValueBlockSize = 7
)
