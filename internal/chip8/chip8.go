// Package chip8 is the CHIP-8 fetch-decode-execute core: the memory model,
// register file, stack, opcode decoder and executor, and the scheduler that
// drives them at their independent clock rates. Rendering, audio, and
// physical key scanning are external collaborators wired in by cmd/run.go.
package chip8

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// VM bundles the core components into the unit main.go/cmd construct and
// run: Memory, register file, call stack, keyboard latch, and the executor
// and timer that operate on them.
type VM struct {
	Mem   *Memory
	Reg   *Registers
	Stack *Stack
	Kbd   *Keyboard
	Exec  *Executor
	Timer *Timer
	Cfg   Config
}

// NewVM allocates a machine in power-on state: zeroed registers, PC at
// ProgramStart, font table loaded, framebuffer clear.
func NewVM(cfg Config) *VM {
	mem := NewMemory()
	reg := NewRegisters()
	stack := NewStack()
	kbd := NewKeyboard()

	return &VM{
		Mem:   mem,
		Reg:   reg,
		Stack: stack,
		Kbd:   kbd,
		Exec:  NewExecutor(mem, reg, stack, kbd, cfg),
		Timer: NewTimer(reg, time.Now()),
		Cfg:   cfg,
	}
}

// LoadROMFile reads path and loads its contents at ProgramStart.
func (vm *VM) LoadROMFile(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading rom %q", path)
	}
	return vm.Mem.LoadROM(rom)
}

// LoadROM loads program bytes directly, bypassing the filesystem (used by
// tests and by any host embedding the core with an in-memory ROM).
func (vm *VM) LoadROM(rom []byte) error {
	return vm.Mem.LoadROM(rom)
}

// Reset restores power-on state without reloading a ROM.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.Reg.Reset()
	vm.Stack.Reset()
	vm.Exec.pendingKeyWait = nil
}

// NewScheduler builds a scheduler bound to this machine's executor and
// timer, driving display and sound collaborators at vm.Cfg.CPUHz.
func (vm *VM) NewScheduler(display Display, sound Sound) *Scheduler {
	return NewScheduler(vm.Exec, vm.Timer, display, sound)
}
