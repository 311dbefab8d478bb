// Package audio is the tone collaborator: it decodes a short beep clip and
// plays it through the system's default audio device whenever the sound
// timer crosses from zero to non-zero.
package audio

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper owns the decoded beep clip and the speaker device. It satisfies
// chip8.Sound.
type Beeper struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	playing  bool
}

// New opens path (an mp3 clip) and initializes the speaker. If the asset
// can't be opened or decoded, New returns a Beeper whose Update is a no-op,
// the same forgiving behaviour the teacher's ManageAudio fell back to when
// assets/beep.mp3 was missing.
func New(path string) *Beeper {
	b := &Beeper{}

	f, err := os.Open(path)
	if err != nil {
		return b
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return b
	}

	speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	b.streamer = streamer
	b.format = format
	return b
}

// Update is called once per scheduler iteration with the sound timer's
// current non-zero state. It triggers the clip on the rising edge only, so
// a multi-tick beep doesn't restart playback every 60th of a second.
func (b *Beeper) Update(playing bool) {
	if b.streamer == nil {
		return
	}
	if playing && !b.playing {
		b.streamer.Seek(0)
		speaker.Play(b.streamer)
	}
	b.playing = playing
}

// Close releases the decoded stream.
func (b *Beeper) Close() error {
	if b.streamer == nil {
		return nil
	}
	return b.streamer.Close()
}
