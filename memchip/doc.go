// Package memchip defines the memory chip descriptor exchanged with an
// F-Ramune bridge.
//
// Every property of a chip is independently possibly-unknown, so each field
// is an explicit optional value (OptBool, OptUint32) rather than a sentinel:
// a chip whose is_operational is false is a different statement than a chip
// whose is_operational has not been determined.
//
//	chip := memchip.Chip{
//	    IsOperational: memchip.Bool(true),
//	    IsNonvolatile: memchip.Bool(true),
//	    // Size and IsEEPROM stay unknown
//	}
//
// The wire layout of a descriptor lives in the protocol package.
package memchip
