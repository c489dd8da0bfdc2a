// Package audio plays short synthesized cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound.
type Cue int

const (
	CueLaunch Cue = iota
	CuePaddle
	CueBrick
	CueBreak
	CueLifeLost
	CueWin
	CueLoss
)

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is the silent Player used when sound is disabled.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

type note struct {
	freq     float64 // Hz, 0 is a rest
	duration time.Duration
}

var cues = map[Cue][]note{
	CueLaunch:   {{523, 40 * time.Millisecond}, {784, 60 * time.Millisecond}},
	CuePaddle:   {{440, 30 * time.Millisecond}},
	CueBrick:    {{880, 30 * time.Millisecond}},
	CueBreak:    {{1320, 50 * time.Millisecond}},
	CueLifeLost: {{330, 100 * time.Millisecond}, {247, 150 * time.Millisecond}},
	CueWin: {
		{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond},
		{784, 100 * time.Millisecond}, {1047, 200 * time.Millisecond},
	},
	CueLoss: {
		{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond},
		{330, 150 * time.Millisecond},
	},
}

var (
	initMu      sync.Mutex
	initialized bool
)

// Speaker plays cues on the default output device.
type Speaker struct {
	volume float64
}

// NewSpeaker initializes the output device. Volume is 0..1.
func NewSpeaker(volume float64) (*Speaker, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if !initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
			return nil, err
		}
		initialized = true
	}
	return &Speaker{volume: math.Max(0, math.Min(1, volume))}, nil
}

// Play queues a cue on the mixer and returns immediately.
func (s *Speaker) Play(c Cue) {
	if st := sequence(c, s.volume); st != nil {
		speaker.Play(st)
	}
}

// Close shuts the output device down.
func (s *Speaker) Close() {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		speaker.Close()
		initialized = false
	}
}

// sequence builds the streamer for a cue, or nil for unknown cues.
func sequence(c Cue, volume float64) beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = squareWave(n.freq, n.duration, 0.2*volume)
	}
	return beep.Seq(parts...)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration, amp float64) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := amp
			if freq == 0 {
				val = 0
			} else if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
