package chip8

import (
	"sync"
	"time"
)

// timerHz is the fixed rate at which DT and ST decrement, independent of
// the CPU's instruction rate (spec §4.6).
const timerHz = 60

var timerPeriod = time.Second / timerHz

// Timer decrements the registers' DT and ST at 60 Hz of wall-clock time and
// tells a sound collaborator when to start/stop a tone. Tick takes an
// internal mutex, which serialises Tick calls with each other only; the
// executor reads and writes DT/ST through Registers without taking it.
type Timer struct {
	mu       sync.Mutex
	regs     *Registers
	last     time.Time
	sounding bool
}

// NewTimer returns a timer bound to regs, using now as the wall-clock
// baseline, so the first decrement happens one timer period after now.
func NewTimer(regs *Registers, now time.Time) *Timer {
	return &Timer{regs: regs, last: now, sounding: regs.ST() > 0}
}

// Tick decrements DT/ST by one if at least one timer period has elapsed
// since the last decrement, and reports whether the sound collaborator
// should be toggled (started when ST becomes non-zero, stopped when it
// reaches zero) along with the desired tone state.
func (t *Timer) Tick(now time.Time) (toggled bool, shouldSound bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	wantSound := t.regs.ST() > 0
	toggled = wantSound != t.sounding
	t.sounding = wantSound

	if now.Sub(t.last) >= timerPeriod {
		t.last = now
		if dt := t.regs.DT(); dt > 0 {
			t.regs.SetDT(dt - 1)
		}
		if st := t.regs.ST(); st > 0 {
			t.regs.SetST(st - 1)
		}
	}

	return toggled, wantSound
}
