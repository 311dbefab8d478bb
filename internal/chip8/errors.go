package chip8

import "github.com/pkg/errors"

// Sentinel errors surfaced at the core boundary. All of them are fatal:
// Executor.Step wraps one with call-site context (PC, opcode, SP) and the
// scheduler propagates it to the host rather than recovering from it.
var (
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUnsupportedOpcode = errors.New("unsupported opcode: 0NNN")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrFontOutOfRange    = errors.New("font glyph address out of range")
)

// ExecutionError wraps a fatal core error with the machine context that was
// active when it occurred, so the host can report something actionable.
type ExecutionError struct {
	cause error
	PC    uint16
	SP    uint8
	Op    uint16
}

func (e *ExecutionError) Error() string {
	return errors.Wrapf(e.cause, "pc=%#04x sp=%d op=%#04x", e.PC, e.SP, e.Op).Error()
}

// Unwrap lets callers use errors.Is/errors.As against the sentinel cause.
func (e *ExecutionError) Unwrap() error {
	return e.cause
}

func wrapExecErr(cause error, pc uint16, sp uint8, op uint16) error {
	if cause == nil {
		return nil
	}
	return &ExecutionError{cause: cause, PC: pc, SP: sp, Op: op}
}
