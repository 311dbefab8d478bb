package chip8

import "sync"

// numKeys is the size of the CHIP-8 hex keypad: 0x0-0xF.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
const numKeys = 16

// Keyboard is the keypad latch: current down-state of all 16 keys plus the
// most recent key release, which FX0A consumes. All state is touched from
// the scheduler's single goroutine except for the release notification
// channel, which lets a blocking waiter be woken without stalling input
// pumping (spec §5, §9).
type Keyboard struct {
	mu           sync.Mutex
	down         [numKeys]bool
	lastReleased *byte
	released     chan struct{}
}

// NewKeyboard returns a keyboard with every key up and no pending release.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		released: make(chan struct{}, 1),
	}
}

// Press marks code as currently held down.
func (k *Keyboard) Press(code byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[code&0xF] = true
}

// Release marks code as up and records it as the last-released key.
func (k *Keyboard) Release(code byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	code &= 0xF
	k.down[code] = false
	k.lastReleased = &code
	select {
	case k.released <- struct{}{}:
	default:
	}
}

// IsDown reports whether code is currently held.
func (k *Keyboard) IsDown(code byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[code&0xF]
}

// TakeReleased consumes and returns the pending release, if any. It is the
// non-blocking primitive the scheduler polls once per iteration while a
// FX0A wait is pending, so input pumping and timers keep advancing instead
// of stalling the event loop (spec §9).
func (k *Keyboard) TakeReleased() (byte, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.lastReleased == nil {
		return 0, false
	}
	code := *k.lastReleased
	k.lastReleased = nil
	return code, true
}

// WaitForRelease blocks until a key release arrives or cancel fires, then
// consumes and returns it. Used by callers (tests, a non-scheduler-driven
// harness) that are fine parking a goroutine instead of re-entering a
// cooperative event loop.
func (k *Keyboard) WaitForRelease(cancel <-chan struct{}) (byte, bool) {
	for {
		if code, ok := k.TakeReleased(); ok {
			return code, true
		}
		select {
		case <-k.released:
			continue
		case <-cancel:
			return 0, false
		}
	}
}
