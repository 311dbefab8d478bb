package chip8

import "testing"

func loadedVM(t *testing.T, rom []byte) *VM {
	t.Helper()
	vm := NewVM(DefaultConfig())
	if err := vm.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	return vm
}

func stepN(t *testing.T, vm *VM, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := vm.Exec.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
}

// Scenario 1 (spec §8): clear screen, then loop forever on a self-jump.
// After several cycles the framebuffer stays clear and PC sits at the loop.
func TestScenario_ClearThenLoop(t *testing.T) {
	vm := loadedVM(t, []byte{0x00, 0xE0, 0x12, 0x02}) // CLS; JP 0x202 (jump to self)
	vm.Mem.xorPixel(5, 5, 1)                          // dirty a pixel so CLS has something to do

	stepN(t, vm, 3)

	if vm.Reg.PC() != 0x202 {
		t.Errorf("PC => %#x; want 0x202", vm.Reg.PC())
	}
	fb := vm.Mem.Framebuffer()
	for _, b := range fb {
		if b != 0 {
			t.Fatal("framebuffer non-zero after CLS")
		}
	}
}

// Scenario 2 (spec §8): CALL/RET round trip resumes at the instruction
// following the call, and the stack returns to depth 0.
func TestScenario_SubroutineRoundTrip(t *testing.T) {
	vm := loadedVM(t, []byte{0x22, 0x06, 0x12, 0x04, 0x00, 0x00, 0x00, 0xEE})

	stepN(t, vm, 1) // CALL 0x206
	if vm.Reg.PC() != 0x206 {
		t.Fatalf("PC after CALL => %#x; want 0x206", vm.Reg.PC())
	}
	if vm.Stack.SP() != 1 {
		t.Fatalf("SP after CALL => %d; want 1", vm.Stack.SP())
	}

	stepN(t, vm, 1) // RET
	if vm.Reg.PC() != 0x202 {
		t.Fatalf("PC after RET => %#x; want 0x202", vm.Reg.PC())
	}
	if vm.Stack.SP() != 0 {
		t.Fatalf("SP after RET => %d; want 0", vm.Stack.SP())
	}

	stepN(t, vm, 1) // JP 0x204
	if vm.Reg.PC() != 0x204 {
		t.Fatalf("PC after JP => %#x; want 0x204", vm.Reg.PC())
	}
}

// Scenario 3 (spec §8): 0xFF + 1 wraps to 0 and sets the carry flag.
func TestScenario_CarryFlag(t *testing.T) {
	vm := loadedVM(t, []byte{0x60, 0xFF, 0x61, 0x01, 0x80, 0x14, 0x12, 0x08})

	stepN(t, vm, 3)

	if vm.Reg.V(0) != 0x00 {
		t.Errorf("V0 => %#x; want 0x00", vm.Reg.V(0))
	}
	if vm.Reg.V(1) != 0x01 {
		t.Errorf("V1 => %#x; want 0x01", vm.Reg.V(1))
	}
	if vm.Reg.V(0xF) != 1 {
		t.Errorf("VF => %d; want 1", vm.Reg.V(0xF))
	}
}

// Scenario 4 (spec §8): FX33 writes the BCD digits of V0=255 to I..I+2.
func TestScenario_BCD(t *testing.T) {
	vm := loadedVM(t, []byte{0x60, 0xFF, 0xA3, 0x00, 0xF0, 0x33})

	stepN(t, vm, 3)

	hundreds, _ := vm.Mem.Read8(0x300)
	tens, _ := vm.Mem.Read8(0x301)
	ones, _ := vm.Mem.Read8(0x302)
	if hundreds != 2 || tens != 5 || ones != 5 {
		t.Errorf("BCD => %d %d %d; want 2 5 5", hundreds, tens, ones)
	}
}

// Scenario 5 (spec §8): drawing the same sprite twice erases it and leaves
// VF set on the second draw.
func TestScenario_SpriteDrawAndCollide(t *testing.T) {
	rom := make([]byte, 0x105)
	copy(rom, []byte{
		0xA3, 0x00, // LD I, 0x300
		0x60, 0x00, // LD V0, 0
		0x61, 0x00, // LD V1, 0
		0xD0, 0x15, // DRW V0, V1, 5
		0xD0, 0x15, // DRW V0, V1, 5
	})
	copy(rom[0x100:], []byte{0xF0, 0x90, 0x90, 0x90, 0xF0})

	vm := loadedVM(t, rom)
	stepN(t, vm, 5)

	if vm.Reg.V(0xF) != 1 {
		t.Errorf("VF => %d; want 1 after redrawing the same sprite", vm.Reg.V(0xF))
	}
	fb := vm.Mem.Framebuffer()
	for _, b := range fb {
		if b != 0 {
			t.Fatal("framebuffer non-zero after drawing the same sprite twice")
		}
	}
}

// Scenario 6 (spec §8): FX0A blocks until a key press-then-release arrives.
func TestScenario_KeyWait(t *testing.T) {
	vm := loadedVM(t, []byte{0xF1, 0x0A, 0x12, 0x04}) // LD V1, K; JP 0x204

	stepN(t, vm, 1)
	if !vm.Exec.Waiting() {
		t.Fatal("Waiting() => false; want true")
	}

	stepN(t, vm, 1) // still no key event
	if !vm.Exec.Waiting() {
		t.Fatal("Waiting() => false after a no-op poll; want true")
	}

	vm.Kbd.Press(0x7)
	vm.Kbd.Release(0x7)

	stepN(t, vm, 1)
	if vm.Exec.Waiting() {
		t.Fatal("Waiting() => true; want false once the release was observed")
	}
	if vm.Reg.V(1) != 0x7 {
		t.Errorf("V1 => %#x; want 0x7", vm.Reg.V(1))
	}
}
