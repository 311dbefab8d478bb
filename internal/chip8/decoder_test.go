package chip8

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		op   uint16
		kind Kind
	}{
		{0x00E0, KindCLS},
		{0x00EE, KindRET},
		{0x1234, KindJP},
		{0x2345, KindCALL},
		{0x3A11, KindSEVxByte},
		{0x4A11, KindSNEVxByte},
		{0x5AB0, KindSEVxVy},
		{0x6A11, KindLDVxByte},
		{0x7A11, KindADDVxByte},
		{0x8AB0, KindALU8},
		{0x8AB1, KindALU8},
		{0x8AB2, KindALU8},
		{0x8AB3, KindALU8},
		{0x8AB4, KindALU8},
		{0x8AB5, KindALU8},
		{0x8AB6, KindALU8},
		{0x8AB7, KindALU8},
		{0x8ABE, KindALU8},
		{0x9AB0, KindSNEVxVy},
		{0xA123, KindLDIAddr},
		{0xB123, KindJPV0},
		{0xCA11, KindRND},
		{0xDAB5, KindDRW},
		{0xEA9E, KindSKP},
		{0xEAA1, KindSKNP},
		{0xFA07, KindLDVxDT},
		{0xFA0A, KindLDVxK},
		{0xFA15, KindLDDTVx},
		{0xFA18, KindSTVx},
		{0xFA1E, KindADDIVx},
		{0xFA29, KindLDFVx},
		{0xFA33, KindLDBVx},
		{0xFA55, KindLDIVx},
		{0xFA65, KindLDVxI},
		{0x0123, KindSysCall},
		{0x5AB1, KindUnknown},
		{0x8AB8, KindUnknown},
	}

	for _, tt := range tests {
		kind, _ := Decode(tt.op)
		if kind != tt.kind {
			t.Errorf("Decode(%#04x) => %v; want %v", tt.op, kind, tt.kind)
		}
	}
}

func TestDecode_Operands(t *testing.T) {
	_, o := Decode(0xD1A3)

	if o.X != 0x1 {
		t.Errorf("X => %#x; want 0x1", o.X)
	}
	if o.Y != 0xA {
		t.Errorf("Y => %#x; want 0xA", o.Y)
	}
	if o.N != 0x3 {
		t.Errorf("N => %#x; want 0x3", o.N)
	}
	if o.KK != 0xA3 {
		t.Errorf("KK => %#x; want 0xA3", o.KK)
	}
	if o.NNN != 0x1A3 {
		t.Errorf("NNN => %#x; want 0x1A3", o.NNN)
	}
}

func TestDecode_8000FamilyBeatsGenericF000(t *testing.T) {
	// 8XY6 is matched by its own F00F entry, not by any of the F000-masked
	// entries, and decodes as KindALU8.
	kind, _ := Decode(0x8AB6)
	if kind != KindALU8 {
		t.Fatalf("Decode(0x8AB6) => %v; want KindALU8", kind)
	}
}
