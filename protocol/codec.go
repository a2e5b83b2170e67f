package protocol

import (
	"encoding/binary"

	"github.com/link89/f-ramune/memchip"
)

// byteOrder is the byte order for every multi-byte integer on the wire.
// It is protocol-wide: the same order for every field and every exchange.
var byteOrder = binary.BigEndian

// chipField describes one descriptor field: its wire width plus the
// accessors shared by the known-mask encoder, the value encoder and the
// decoder. All three walk the same table, so the mask layout and the value
// layout cannot drift apart.
type chipField struct {
	name  string
	width int
	known func(c memchip.Chip) bool
	put   func(dst []byte, c memchip.Chip)
	get   func(src []byte, c *memchip.Chip)
}

// chipFields lists the descriptor fields in wire order:
// is_operational, size, is_nonvolatile, is_eeprom.
var chipFields = []chipField{
	{
		name:  "is_operational",
		width: 1,
		known: func(c memchip.Chip) bool { return c.IsOperational.Known },
		put:   func(dst []byte, c memchip.Chip) { dst[0] = boolByte(c.IsOperational.Value) },
		get:   func(src []byte, c *memchip.Chip) { c.IsOperational = memchip.Bool(src[0] != 0) },
	},
	{
		name:  "size",
		width: 4,
		known: func(c memchip.Chip) bool { return c.Size.Known },
		put:   func(dst []byte, c memchip.Chip) { byteOrder.PutUint32(dst, c.Size.Value) },
		get:   func(src []byte, c *memchip.Chip) { c.Size = memchip.Uint32(byteOrder.Uint32(src)) },
	},
	{
		name:  "is_nonvolatile",
		width: 1,
		known: func(c memchip.Chip) bool { return c.IsNonvolatile.Known },
		put:   func(dst []byte, c memchip.Chip) { dst[0] = boolByte(c.IsNonvolatile.Value) },
		get:   func(src []byte, c *memchip.Chip) { c.IsNonvolatile = memchip.Bool(src[0] != 0) },
	},
	{
		name:  "is_eeprom",
		width: 1,
		known: func(c memchip.Chip) bool { return c.IsEEPROM.Known },
		put:   func(dst []byte, c memchip.Chip) { dst[0] = boolByte(c.IsEEPROM.Value) },
		get:   func(src []byte, c *memchip.Chip) { c.IsEEPROM = memchip.Bool(src[0] != 0) },
	},
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// EncodeUint8 encodes n as a single byte.
func EncodeUint8(n byte) []byte {
	return []byte{n}
}

// DecodeUint8 decodes a single byte.
// Fails with MalformedInputError unless b is exactly 1 byte.
func DecodeUint8(b []byte) (byte, error) {
	if len(b) != 1 {
		return 0, &MalformedInputError{What: "uint8", Got: len(b), Want: 1}
	}
	return b[0], nil
}

// EncodeUint16 encodes n as 2 bytes in wire byte order.
func EncodeUint16(n uint16) []byte {
	b := make([]byte, 2)
	byteOrder.PutUint16(b, n)
	return b
}

// DecodeUint16 decodes 2 bytes in wire byte order.
// Fails with MalformedInputError unless b is exactly 2 bytes.
func DecodeUint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, &MalformedInputError{What: "uint16", Got: len(b), Want: 2}
	}
	return byteOrder.Uint16(b), nil
}

// EncodeKnownMask returns one byte per descriptor field in wire order,
// 1 where the field carries a meaningful value and 0 where it is unknown.
func EncodeKnownMask(c memchip.Chip) []byte {
	mask := make([]byte, 0, KnownMaskSize)
	for _, f := range chipFields {
		mask = append(mask, boolByte(f.known(c)))
	}
	return mask
}

// EncodeValues returns the fixed-size value block. Each field is serialized
// in its natural width; unknown fields are encoded as zero placeholders,
// which the peer ignores wherever the corresponding known byte is 0.
func EncodeValues(c memchip.Chip) []byte {
	block := make([]byte, ValueBlockSize)
	off := 0
	for _, f := range chipFields {
		if f.known(c) {
			f.put(block[off:off+f.width], c)
		}
		off += f.width
	}
	return block
}

// DecodeChip reconstructs a chip descriptor from a known mask and a value
// block. A field is taken from the value block only if its known byte is
// nonzero; otherwise it stays unknown regardless of the placeholder bytes.
// Fails with MalformedInputError unless both inputs have their exact fixed
// sizes.
func DecodeChip(known, values []byte) (memchip.Chip, error) {
	if len(known) != KnownMaskSize {
		return memchip.Chip{}, &MalformedInputError{What: "known mask", Got: len(known), Want: KnownMaskSize}
	}
	if len(values) != ValueBlockSize {
		return memchip.Chip{}, &MalformedInputError{What: "value block", Got: len(values), Want: ValueBlockSize}
	}

	var c memchip.Chip
	off := 0
	for i, f := range chipFields {
		if known[i] != 0 {
			f.get(values[off:off+f.width], &c)
		}
		off += f.width
	}
	return c, nil
}
