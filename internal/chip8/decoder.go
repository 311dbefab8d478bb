package chip8

// Kind identifies a decoded instruction. The names mirror the mnemonics in
// spec §4.3; ALU8 covers the whole 8XY_ family since its sub-opcode lives in
// the low nibble.
type Kind int

const (
	KindUnknown Kind = iota
	KindSysCall      // 0NNN, recognised but unsupported
	KindCLS
	KindRET
	KindJP
	KindCALL
	KindSEVxByte
	KindSNEVxByte
	KindSEVxVy
	KindLDVxByte
	KindADDVxByte
	KindALU8
	KindSNEVxVy
	KindLDIAddr
	KindJPV0
	KindRND
	KindDRW
	KindSKP
	KindSKNP
	KindLDVxDT
	KindLDVxK
	KindLDDTVx
	KindSTVx
	KindADDIVx
	KindLDFVx
	KindLDBVx
	KindLDIVx
	KindLDVxI
)

// Operands holds every field a handler might need, extracted once at decode
// time: X = (op>>8)&0xF, Y = (op>>4)&0xF, N = op&0xF, KK = op&0xFF, NNN = op&0xFFF.
type Operands struct {
	Op  uint16
	X   byte
	Y   byte
	N   byte
	KK  byte
	NNN uint16
}

// decodeEntry is one row of the priority-ordered dispatch table: the first
// entry whose pattern matches op&Mask wins.
type decodeEntry struct {
	mask    uint16
	pattern uint16
	kind    Kind
}

// dispatchTable is evaluated top to bottom. The 8-group has no F000 entry:
// each 8XY_ sub-opcode is matched with mask F00F, so an unused one (8XY8)
// decodes as KindUnknown. 00E0/00EE must precede the 0NNN catch-all at the
// end of the table.
var dispatchTable = []decodeEntry{
	{0xFFFF, 0x00E0, KindCLS},
	{0xFFFF, 0x00EE, KindRET},
	{0xF000, 0x1000, KindJP},
	{0xF000, 0x2000, KindCALL},
	{0xF000, 0x3000, KindSEVxByte},
	{0xF000, 0x4000, KindSNEVxByte},
	{0xF00F, 0x5000, KindSEVxVy},
	{0xF000, 0x6000, KindLDVxByte},
	{0xF000, 0x7000, KindADDVxByte},
	{0xF00F, 0x8000, KindALU8},
	{0xF00F, 0x8001, KindALU8},
	{0xF00F, 0x8002, KindALU8},
	{0xF00F, 0x8003, KindALU8},
	{0xF00F, 0x8004, KindALU8},
	{0xF00F, 0x8005, KindALU8},
	{0xF00F, 0x8006, KindALU8},
	{0xF00F, 0x8007, KindALU8},
	{0xF00F, 0x800E, KindALU8},
	{0xF00F, 0x9000, KindSNEVxVy},
	{0xF000, 0xA000, KindLDIAddr},
	{0xF000, 0xB000, KindJPV0},
	{0xF000, 0xC000, KindRND},
	{0xF000, 0xD000, KindDRW},
	{0xF0FF, 0xE09E, KindSKP},
	{0xF0FF, 0xE0A1, KindSKNP},
	{0xF0FF, 0xF007, KindLDVxDT},
	{0xF0FF, 0xF00A, KindLDVxK},
	{0xF0FF, 0xF015, KindLDDTVx},
	{0xF0FF, 0xF018, KindSTVx},
	{0xF0FF, 0xF01E, KindADDIVx},
	{0xF0FF, 0xF029, KindLDFVx},
	{0xF0FF, 0xF033, KindLDBVx},
	{0xF0FF, 0xF055, KindLDIVx},
	{0xF0FF, 0xF065, KindLDVxI},
	{0xF000, 0x0000, KindSysCall}, // 0NNN catch-all, lowest priority
}

// Decode extracts operands from op and walks the priority-ordered mask
// table, returning the first matching Kind or KindUnknown if nothing fits.
func Decode(op uint16) (Kind, Operands) {
	operands := Operands{
		Op:  op,
		X:   byte(op>>8) & 0xF,
		Y:   byte(op>>4) & 0xF,
		N:   byte(op & 0xF),
		KK:  byte(op & 0xFF),
		NNN: op & 0xFFF,
	}
	for _, entry := range dispatchTable {
		if op&entry.mask == entry.pattern {
			return entry.kind, operands
		}
	}
	return KindUnknown, operands
}
