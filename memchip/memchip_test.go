package memchip

import "testing"

func TestZeroValueIsAllUnknown(t *testing.T) {
	var chip Chip

	if chip.IsOperational.Known || chip.Size.Known || chip.IsNonvolatile.Known || chip.IsEEPROM.Known {
		t.Errorf("zero value chip has known fields: %v", chip)
	}
}

func TestConstructors(t *testing.T) {
	b := Bool(false)
	if !b.Known || b.Value {
		t.Errorf("Bool(false) = %+v, want known false", b)
	}

	n := Uint32(8192)
	if !n.Known || n.Value != 8192 {
		t.Errorf("Uint32(8192) = %+v, want known 8192", n)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		chip Chip
		want string
	}{
		{
			name: "all unknown",
			chip: Chip{},
			want: "MemoryChip{is_operational=unknown, size=unknown, is_nonvolatile=unknown, is_eeprom=unknown}",
		},
		{
			name: "mixed",
			chip: Chip{
				IsOperational: Bool(true),
				Size:          Uint32(32768),
				IsEEPROM:      Bool(false),
			},
			want: "MemoryChip{is_operational=true, size=32768, is_nonvolatile=unknown, is_eeprom=false}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chip.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
