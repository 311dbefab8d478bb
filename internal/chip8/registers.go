package chip8

// Registers is the logical register file: V0-VF, the address register I,
// the program counter, and the two 8-bit timers. Kept as dedicated fields
// rather than virtualised into Memory (spec §9 calls the memory-mapped
// layout a historical convenience of the original interpreter).
type Registers struct {
	v  [16]byte
	i  uint16
	pc uint16
	dt byte
	st byte
}

// NewRegisters returns a register file reset to power-on state (PC=0x200).
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset zeroes every register and sets PC to ProgramStart.
func (r *Registers) Reset() {
	r.v = [16]byte{}
	r.i = 0
	r.pc = ProgramStart
	r.dt = 0
	r.st = 0
}

// V reads general-purpose register Vn (n in 0..15).
func (r *Registers) V(n byte) byte { return r.v[n&0xF] }

// SetV stores value&0xFF in Vn.
func (r *Registers) SetV(n byte, value byte) { r.v[n&0xF] = value }

// SetFlag writes VF, the flag register shared by arithmetic/shift/draw ops.
func (r *Registers) SetFlag(b bool) {
	if b {
		r.v[0xF] = 1
	} else {
		r.v[0xF] = 0
	}
}

// I returns the address register (only the low 12 bits are meaningful).
func (r *Registers) I() uint16 { return r.i }

// SetI stores the address register.
func (r *Registers) SetI(v uint16) { r.i = v }

// PC returns the program counter.
func (r *Registers) PC() uint16 { return r.pc }

// SetPC sets the program counter.
func (r *Registers) SetPC(v uint16) { r.pc = v }

// AdvancePC steps the program counter past the current 2-byte instruction.
func (r *Registers) AdvancePC() { r.pc += 2 }

// SkipNext steps the program counter past the instruction that would
// otherwise execute next (used by the SE/SNE family).
func (r *Registers) SkipNext() { r.pc += 2 }

// DT returns the delay timer.
func (r *Registers) DT() byte { return r.dt }

// SetDT sets the delay timer.
func (r *Registers) SetDT(v byte) { r.dt = v }

// ST returns the sound timer.
func (r *Registers) ST() byte { return r.st }

// SetST sets the sound timer.
func (r *Registers) SetST(v byte) { r.st = v }
