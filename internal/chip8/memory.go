package chip8

import "github.com/pkg/errors"

// System memory map
//	+---------------+= 0xFFF (4095) End Chip-8 RAM
//	| 0xF00 to 0xFFF|  Framebuffer: 256 bytes, 64x32 1-bit pixels
//	+---------------+= 0xF00 (3840)
//	| 0xEA0 to 0xEFF|  Call stack + internal registers (unused here, see registers.go/stack.go)
//	+---------------+= 0xEA0 (3744)
//	| 0x200 to 0xE9F|  Chip-8 program / data space. PC starts here.
//	+---------------+= 0x200 (512) Start of most Chip-8 programs
//	| 0x050 to 0x1FF|  Reserved for interpreter
//	+---------------+= 0x050 (80)
//	| 0x000 to 0x04F|  Built-in hex font, 16 glyphs x 5 bytes
//	+---------------+= 0x000 (0) Begin Chip-8 RAM

const (
	memorySize = 4096

	fontBase  = 0x000
	fontBytes = 5 * 16

	// ProgramStart is where ROMs are loaded and PC begins.
	ProgramStart = 0x200

	// FramebufferBase is the first byte of the packed 64x32 display.
	FramebufferBase = 0xF00
	framebufferEnd  = 0xFFF
	framebufferSize = framebufferEnd - FramebufferBase + 1

	// MaxROMSize is the largest program that fits between ProgramStart and
	// the end of the program/data area (0xE9F inclusive).
	MaxROMSize = 0xE9F - ProgramStart + 1
)

// FontSet holds the sixteen built-in hex glyphs (0-F), five bytes each.
// Each row's high nibble is the pixel pattern; the low nibble is always 0.
var FontSet = [fontBytes]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4 KiB address space. Addresses are never wrapped
// modulo 4096; anything outside [0, 4096) is ErrAddressOutOfRange.
type Memory struct {
	bytes [memorySize]byte
}

// NewMemory returns a zeroed memory image with the font table loaded at 0x000.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears every byte and reloads the font table.
func (m *Memory) Reset() {
	m.bytes = [memorySize]byte{}
	copy(m.bytes[fontBase:fontBase+fontBytes], FontSet[:])
}

func inRange(addr int) bool {
	return addr >= 0 && addr < memorySize
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) (byte, error) {
	if !inRange(int(addr)) {
		return 0, ErrAddressOutOfRange
	}
	return m.bytes[addr], nil
}

// Write8 stores value&0xFF at addr.
func (m *Memory) Write8(addr uint16, value byte) error {
	if !inRange(int(addr)) {
		return ErrAddressOutOfRange
	}
	m.bytes[addr] = value
	return nil
}

// Read16 reads a big-endian 16-bit value: high byte at addr, low byte at addr+1.
func (m *Memory) Read16(addr uint16) (uint16, error) {
	hi, err := m.Read8(addr)
	if err != nil {
		return 0, err
	}
	lo, err := m.Read8(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 stores a big-endian 16-bit value across addr and addr+1.
func (m *Memory) Write16(addr uint16, value uint16) error {
	if err := m.Write8(addr, byte(value>>8)); err != nil {
		return err
	}
	return m.Write8(addr+1, byte(value))
}

// ReadRange returns a copy of n bytes starting at addr.
func (m *Memory) ReadRange(addr uint16, n int) ([]byte, error) {
	if !inRange(int(addr)) || !inRange(int(addr)+n-1) {
		return nil, ErrAddressOutOfRange
	}
	out := make([]byte, n)
	copy(out, m.bytes[addr:int(addr)+n])
	return out, nil
}

// LoadROM copies program bytes into the program/data area starting at
// ProgramStart. It rejects ROMs that don't fit in the 0x200-0xE9F window.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return errors.Errorf("rom too large: %d bytes (max %d)", len(rom), MaxROMSize)
	}
	copy(m.bytes[ProgramStart:ProgramStart+len(rom)], rom)
	return nil
}

// ClearFramebuffer zeroes the 256-byte display region (the 00E0 instruction).
func (m *Memory) ClearFramebuffer() {
	for i := FramebufferBase; i <= framebufferEnd; i++ {
		m.bytes[i] = 0
	}
}

// Framebuffer returns a copy of the packed 256-byte display region, ready
// to hand to a rasteriser collaborator.
func (m *Memory) Framebuffer() [framebufferSize]byte {
	var fb [framebufferSize]byte
	copy(fb[:], m.bytes[FramebufferBase:framebufferEnd+1])
	return fb
}

// PixelAt reports the bit at display coordinate (x, y): bit 7-(x mod 8) of
// byte FramebufferBase + y*8 + x/8 (row-major, MSB leftmost).
func (m *Memory) PixelAt(x, y int) bool {
	addr := FramebufferBase + y*8 + x/8
	return (m.bytes[addr]>>(7-uint(x%8)))&1 == 1
}

// xorPixel XORs a single display bit in place and reports whether the
// existing bit was already set (a collision).
func (m *Memory) xorPixel(x, y int, bit byte) (collided bool) {
	addr := FramebufferBase + y*8 + x/8
	shift := uint(7 - x%8)
	existing := (m.bytes[addr] >> shift) & 1
	if bit == 1 && existing == 1 {
		collided = true
	}
	newBit := existing ^ bit
	if newBit == 1 {
		m.bytes[addr] |= 1 << shift
	} else {
		m.bytes[addr] &^= 1 << shift
	}
	return collided
}
