package chip8

import "testing"

func TestRegisters_InitialState(t *testing.T) {
	r := NewRegisters()

	if r.PC() != ProgramStart {
		t.Errorf("PC => %#x; want %#x", r.PC(), ProgramStart)
	}
	if r.I() != 0 {
		t.Errorf("I => %d; want 0", r.I())
	}
	for n := byte(0); n < 16; n++ {
		if v := r.V(n); v != 0 {
			t.Errorf("V%X => %d; want 0", n, v)
		}
	}
}

func TestRegisters_SetV(t *testing.T) {
	r := NewRegisters()

	r.SetV(3, 0xAB)
	if got := r.V(3); got != 0xAB {
		t.Errorf("V3 => %#x; want 0xAB", got)
	}
}

func TestRegisters_SetFlag(t *testing.T) {
	r := NewRegisters()

	r.SetFlag(true)
	if r.V(0xF) != 1 {
		t.Errorf("VF => %d; want 1", r.V(0xF))
	}
	r.SetFlag(false)
	if r.V(0xF) != 0 {
		t.Errorf("VF => %d; want 0", r.V(0xF))
	}
}

func TestRegisters_AdvancePC(t *testing.T) {
	r := NewRegisters()
	start := r.PC()

	r.AdvancePC()
	if r.PC() != start+2 {
		t.Errorf("PC => %#x; want %#x", r.PC(), start+2)
	}
}

func TestRegisters_Reset(t *testing.T) {
	r := NewRegisters()
	r.SetV(0, 42)
	r.SetI(0x300)
	r.SetPC(0x400)
	r.SetDT(10)
	r.SetST(5)

	r.Reset()

	if r.V(0) != 0 || r.I() != 0 || r.PC() != ProgramStart || r.DT() != 0 || r.ST() != 0 {
		t.Errorf("Reset left stale state: V0=%d I=%#x PC=%#x DT=%d ST=%d", r.V(0), r.I(), r.PC(), r.DT(), r.ST())
	}
}
