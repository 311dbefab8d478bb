package chip8

// UnknownOpcodePolicy selects what happens when the decoder finds no
// matching pattern for a fetched opcode.
type UnknownOpcodePolicy int

const (
	// FailOnUnknownOpcode surfaces ErrUnknownOpcode as a fatal error.
	FailOnUnknownOpcode UnknownOpcodePolicy = iota
	// SkipUnknownOpcode advances PC past the word and continues, the
	// forgiving behaviour some ROMs rely on (spec §4.3).
	SkipUnknownOpcode
)

// Config holds the four COSMAC VIP / modern quirk toggles plus the CPU
// clock rate and the unknown-opcode policy, all exposed as CLI flags in
// cmd/run.go. Defaults reproduce the
// classic COSMAC VIP interpreter.
type Config struct {
	// CPUHz is the instruction-fetch rate in Hz.
	CPUHz int

	// OrAndXorResetsVF: 8XY1/8XY2/8XY3 zero VF afterward (COSMAC) when true.
	OrAndXorResetsVF bool

	// FX55FX65IncrementsI: FX55/FX65 leave I at I+X+1 (COSMAC) when true,
	// or leave I unchanged (modern) when false.
	FX55FX65IncrementsI bool

	// ShiftUsesVY: 8XY6/8XYE operate on V[Y] (COSMAC) when true, or operate
	// on V[X] alone, ignoring Y, when false.
	ShiftUsesVY bool

	// DXYNClipElseWrap: sprite pixels that fall off the right/bottom edge
	// are clipped (classic, Timendus-compatible) when true, or wrapped to
	// the opposite edge when false.
	DXYNClipElseWrap bool

	// UnknownOpcode selects the decoder's behaviour on an unmatched word.
	UnknownOpcode UnknownOpcodePolicy
}

// DefaultConfig returns the COSMAC VIP quirk set at a 500 Hz CPU rate.
func DefaultConfig() Config {
	return Config{
		CPUHz:               500,
		OrAndXorResetsVF:    true,
		FX55FX65IncrementsI: true,
		ShiftUsesVY:         true,
		DXYNClipElseWrap:    true,
		UnknownOpcode:       FailOnUnknownOpcode,
	}
}
