package chip8

import "time"

// Display is the rasteriser collaborator (spec §1, §6): it owns the window,
// turns the packed framebuffer into pixels, and pumps OS input events into
// the keyboard latch. internal/pixel.Window implements it.
type Display interface {
	Closed() bool
	DrawGraphics(fb [framebufferSize]byte)
	PumpInput(kbd *Keyboard)
}

// Sound is the tone collaborator: told to start/stop a beep as the sound
// timer crosses zero. internal/audio.Beeper implements it.
type Sound interface {
	Update(playing bool)
}

// Scheduler drives the three independent rates described in spec §4.6: CPU
// cycles at Cfg.CPUHz, the 60 Hz timer tick, and render/input pumping once
// per outer iteration. It is single-threaded cooperative (spec §5): all
// state is mutated from the Run goroutine.
type Scheduler struct {
	Exec    *Executor
	Timer   *Timer
	Display Display
	Sound   Sound

	cpuPeriod time.Duration

	// ShutdownC is closed when Run exits, whether from the display
	// signalling a quit or from Stop being called.
	ShutdownC chan struct{}
	stopC     chan struct{}
}

// NewScheduler wires a scheduler around an already-constructed executor and
// timer, plus the two external collaborators.
func NewScheduler(exec *Executor, timer *Timer, display Display, sound Sound) *Scheduler {
	hz := exec.Cfg.CPUHz
	if hz <= 0 {
		hz = DefaultConfig().CPUHz
	}
	return &Scheduler{
		Exec:      exec,
		Timer:     timer,
		Display:   display,
		Sound:     sound,
		cpuPeriod: time.Second / time.Duration(hz),
		ShutdownC: make(chan struct{}),
		stopC:     make(chan struct{}),
	}
}

// Stop requests a clean exit from Run; it is safe to call from another
// goroutine (e.g. a signal handler).
func (s *Scheduler) Stop() {
	select {
	case <-s.stopC:
	default:
		close(s.stopC)
	}
}

// Run pumps input, steps the CPU, ticks timers, and presents the display
// once per cpuPeriod, until the display reports closed or Stop is called.
// FX0A cooperates with this loop automatically: Exec.Step is a no-op fetch
// while a key wait is pending, so input pumping and timer ticks never
// stall on it (spec §5, §9).
func (s *Scheduler) Run() error {
	ticker := time.NewTicker(s.cpuPeriod)
	defer ticker.Stop()
	defer close(s.ShutdownC)

	for {
		select {
		case <-s.stopC:
			return nil
		case now := <-ticker.C:
			if s.Display != nil {
				if s.Display.Closed() {
					return nil
				}
				s.Display.PumpInput(s.Exec.Kbd)
			}

			if err := s.Exec.Step(); err != nil {
				return err
			}

			_, shouldSound := s.Timer.Tick(now)
			if s.Sound != nil {
				s.Sound.Update(shouldSound)
			}

			if s.Display != nil {
				s.Display.DrawGraphics(s.Exec.Mem.Framebuffer())
			}
		}
	}
}
