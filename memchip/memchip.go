package memchip

import (
	"fmt"
	"strconv"
)

// OptBool is a bool whose value may be unknown. The zero value is unknown.
// The explicit Known flag keeps "false" distinct from "not determined".
type OptBool struct {
	// Known reports whether Value is meaningful
	Known bool

	// Value is the boolean value; only meaningful when Known is true
	Value bool
}

// Bool returns a known OptBool holding v.
func Bool(v bool) OptBool {
	return OptBool{Known: true, Value: v}
}

func (o OptBool) String() string {
	if !o.Known {
		return "unknown"
	}
	return strconv.FormatBool(o.Value)
}

// OptUint32 is a uint32 whose value may be unknown. The zero value is
// unknown.
type OptUint32 struct {
	// Known reports whether Value is meaningful
	Known bool

	// Value is the integer value; only meaningful when Known is true
	Value uint32
}

// Uint32 returns a known OptUint32 holding v.
func Uint32(v uint32) OptUint32 {
	return OptUint32{Known: true, Value: v}
}

func (o OptUint32) String() string {
	if !o.Known {
		return "unknown"
	}
	return strconv.FormatUint(uint64(o.Value), 10)
}

// Chip describes a memory chip as understood by the F-Ramune bridge.
// Each property is independently possibly-unknown. The zero value (all
// fields unknown) is valid: it is the state of a session before any chip
// has been negotiated, and the natural request when asking the bridge to
// analyze a chip from scratch.
//
// Chips are plain values. The session hands out copies, and a successful
// negotiation replaces the session's chip wholesale with the bridge's
// response; fields are never merged.
type Chip struct {
	// IsOperational reports whether the chip responds correctly to probing
	IsOperational OptBool

	// Size is the chip capacity in bytes
	Size OptUint32

	// IsNonvolatile reports whether contents persist without power
	IsNonvolatile OptBool

	// IsEEPROM reports whether the chip uses EEPROM-style addressing and timing
	IsEEPROM OptBool
}

func (c Chip) String() string {
	return fmt.Sprintf("MemoryChip{is_operational=%s, size=%s, is_nonvolatile=%s, is_eeprom=%s}",
		c.IsOperational, c.Size, c.IsNonvolatile, c.IsEEPROM)
}
