package chip8

import (
	"math/rand"
	"time"
)

const (
	displayWidth  = 64
	displayHeight = 32
)

// Executor drives one fetch-decode-execute cycle at a time. It owns no
// clock of its own; the scheduler (scheduler.go) decides when Step runs,
// when timers tick, and when input is pumped.
type Executor struct {
	Mem   *Memory
	Reg   *Registers
	Stack *Stack
	Kbd   *Keyboard
	Cfg   Config

	rng *rand.Rand

	// pendingKeyWait holds the target register for an in-flight FX0A, or
	// nil when no wait is outstanding. Modeled as a re-entrant state
	// machine on the executor rather than a blocking OS wait (spec §9):
	// each Step call while it's set polls the keyboard latch once and
	// returns immediately, consuming a scheduler iteration's worth of
	// input-pump/timer-tick time without fetching a new instruction.
	pendingKeyWait *byte
}

// NewExecutor wires the core components together with cfg's quirk set.
func NewExecutor(mem *Memory, reg *Registers, stack *Stack, kbd *Keyboard, cfg Config) *Executor {
	return &Executor{
		Mem:   mem,
		Reg:   reg,
		Stack: stack,
		Kbd:   kbd,
		Cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Waiting reports whether a FX0A key wait is currently blocking forward
// progress of the instruction stream.
func (e *Executor) Waiting() bool {
	return e.pendingKeyWait != nil
}

// Step runs one fetch-decode-execute cycle, or, while a FX0A wait is
// pending, polls for the key release that will resolve it.
func (e *Executor) Step() error {
	if e.pendingKeyWait != nil {
		if code, ok := e.Kbd.TakeReleased(); ok {
			e.Reg.SetV(*e.pendingKeyWait, code)
			e.pendingKeyWait = nil
		}
		return nil
	}

	pc := e.Reg.PC()
	op, err := e.Mem.Read16(pc)
	if err != nil {
		return wrapExecErr(err, pc, e.Stack.SP(), 0)
	}

	kind, operands := Decode(op)
	// PC is stepped before execute (spec §9): CALL pushes the
	// already-advanced PC, JP/CALL assign PC directly, and skip handlers
	// add only the 2 bytes of the skipped instruction.
	e.Reg.AdvancePC()

	if err := e.execute(kind, operands); err != nil {
		return wrapExecErr(err, pc, e.Stack.SP(), op)
	}
	return nil
}

func (e *Executor) execute(kind Kind, o Operands) error {
	switch kind {
	case KindSysCall:
		return ErrUnsupportedOpcode

	case KindCLS:
		e.Mem.ClearFramebuffer()

	case KindRET:
		addr, err := e.Stack.Pop()
		if err != nil {
			return err
		}
		e.Reg.SetPC(addr)

	case KindJP:
		e.Reg.SetPC(o.NNN)

	case KindCALL:
		if err := e.Stack.Push(e.Reg.PC()); err != nil {
			return err
		}
		e.Reg.SetPC(o.NNN)

	case KindSEVxByte:
		if e.Reg.V(o.X) == o.KK {
			e.Reg.SkipNext()
		}

	case KindSNEVxByte:
		if e.Reg.V(o.X) != o.KK {
			e.Reg.SkipNext()
		}

	case KindSEVxVy:
		if e.Reg.V(o.X) == e.Reg.V(o.Y) {
			e.Reg.SkipNext()
		}

	case KindLDVxByte:
		e.Reg.SetV(o.X, o.KK)

	case KindADDVxByte:
		e.Reg.SetV(o.X, e.Reg.V(o.X)+o.KK)

	case KindALU8:
		e.executeALU8(o)

	case KindSNEVxVy:
		if e.Reg.V(o.X) != e.Reg.V(o.Y) {
			e.Reg.SkipNext()
		}

	case KindLDIAddr:
		e.Reg.SetI(o.NNN)

	case KindJPV0:
		e.Reg.SetPC((o.NNN + uint16(e.Reg.V(0))) & 0xFFF)

	case KindRND:
		e.Reg.SetV(o.X, byte(e.rng.Intn(256))&o.KK)

	case KindDRW:
		e.drawSprite(o)

	case KindSKP:
		if e.Kbd.IsDown(e.Reg.V(o.X) & 0xF) {
			e.Reg.SkipNext()
		}

	case KindSKNP:
		if !e.Kbd.IsDown(e.Reg.V(o.X) & 0xF) {
			e.Reg.SkipNext()
		}

	case KindLDVxDT:
		e.Reg.SetV(o.X, e.Reg.DT())

	case KindLDVxK:
		x := o.X
		e.pendingKeyWait = &x

	case KindLDDTVx:
		e.Reg.SetDT(e.Reg.V(o.X))

	case KindSTVx:
		e.Reg.SetST(e.Reg.V(o.X))

	case KindADDIVx:
		e.Reg.SetI((e.Reg.I() + uint16(e.Reg.V(o.X))) & 0xFFFF)

	case KindLDFVx:
		digit := e.Reg.V(o.X) & 0xF
		addr := uint16(digit) * 5
		if addr+5 > fontBytes {
			return ErrFontOutOfRange
		}
		e.Reg.SetI(addr)

	case KindLDBVx:
		return e.storeBCD(o.X)

	case KindLDIVx:
		return e.storeRegisters(o.X)

	case KindLDVxI:
		return e.loadRegisters(o.X)

	default: // KindUnknown
		if e.Cfg.UnknownOpcode == SkipUnknownOpcode {
			return nil
		}
		return ErrUnknownOpcode
	}
	return nil
}

func (e *Executor) executeALU8(o Operands) {
	x, y := e.Reg.V(o.X), e.Reg.V(o.Y)
	switch o.N {
	case 0x0:
		e.Reg.SetV(o.X, y)
	case 0x1:
		e.Reg.SetV(o.X, x|y)
		if e.Cfg.OrAndXorResetsVF {
			e.Reg.SetFlag(false)
		}
	case 0x2:
		e.Reg.SetV(o.X, x&y)
		if e.Cfg.OrAndXorResetsVF {
			e.Reg.SetFlag(false)
		}
	case 0x3:
		e.Reg.SetV(o.X, x^y)
		if e.Cfg.OrAndXorResetsVF {
			e.Reg.SetFlag(false)
		}
	case 0x4:
		sum := uint16(x) + uint16(y)
		e.Reg.SetV(o.X, byte(sum))
		e.Reg.SetFlag(sum > 0xFF)
	case 0x5:
		e.Reg.SetV(o.X, x-y)
		e.Reg.SetFlag(x >= y)
	case 0x6:
		src := y
		if !e.Cfg.ShiftUsesVY {
			src = x
		}
		e.Reg.SetV(o.X, src>>1)
		e.Reg.SetFlag(src&0x1 == 1)
	case 0x7:
		e.Reg.SetV(o.X, y-x)
		e.Reg.SetFlag(y >= x)
	case 0xE:
		src := y
		if !e.Cfg.ShiftUsesVY {
			src = x
		}
		e.Reg.SetV(o.X, src<<1)
		e.Reg.SetFlag((src>>7)&0x1 == 1)
	}
}

// drawSprite implements DXYN: an XOR blit of N bytes read from I, starting
// at (V[X] mod 64, V[Y] mod 32), with per-pixel collision detection and a
// configurable clip-or-wrap policy at the screen edges.
func (e *Executor) drawSprite(o Operands) {
	startX := int(e.Reg.V(o.X)) % displayWidth
	startY := int(e.Reg.V(o.Y)) % displayHeight
	rows := int(o.N)

	collision := false
	for r := 0; r < rows; r++ {
		rowByte, err := e.Mem.Read8(e.Reg.I() + uint16(r))
		if err != nil {
			break
		}
		py := startY + r
		if e.Cfg.DXYNClipElseWrap {
			if py >= displayHeight {
				continue
			}
		} else {
			py %= displayHeight
		}

		for b := 0; b < 8; b++ {
			bit := (rowByte >> uint(7-b)) & 1
			if bit == 0 {
				continue
			}
			px := startX + b
			if e.Cfg.DXYNClipElseWrap {
				if px >= displayWidth {
					continue
				}
			} else {
				px %= displayWidth
			}
			if e.Mem.xorPixel(px, py, bit) {
				collision = true
			}
		}
	}
	e.Reg.SetFlag(collision)
}

func (e *Executor) storeBCD(x byte) error {
	v := e.Reg.V(x)
	i := e.Reg.I()
	if err := e.Mem.Write8(i, v/100); err != nil {
		return err
	}
	if err := e.Mem.Write8(i+1, (v/10)%10); err != nil {
		return err
	}
	return e.Mem.Write8(i+2, v%10)
}

func (e *Executor) storeRegisters(x byte) error {
	i := e.Reg.I()
	for n := byte(0); n <= x; n++ {
		if err := e.Mem.Write8(i+uint16(n), e.Reg.V(n)); err != nil {
			return err
		}
	}
	if e.Cfg.FX55FX65IncrementsI {
		e.Reg.SetI(i + uint16(x) + 1)
	}
	return nil
}

func (e *Executor) loadRegisters(x byte) error {
	i := e.Reg.I()
	for n := byte(0); n <= x; n++ {
		v, err := e.Mem.Read8(i + uint16(n))
		if err != nil {
			return err
		}
		e.Reg.SetV(n, v)
	}
	if e.Cfg.FX55FX65IncrementsI {
		e.Reg.SetI(i + uint16(x) + 1)
	}
	return nil
}
