// Package audio plays short synthesized cues for duel events.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is generated at
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound
type Cue int

const (
	CueFire Cue = iota
	CueRejected
	CueHit
	CueRoundOver
	CueDraw
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueRejected:
		return "rejected"
	case CueHit:
		return "hit"
	case CueRoundOver:
		return "round_over"
	case CueDraw:
		return "draw"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Cue lengths
const (
	fireDuration     = 60 * time.Millisecond
	rejectedDuration = 40 * time.Millisecond
	hitDuration      = 250 * time.Millisecond
	noteDuration     = 120 * time.Millisecond
)

// NewCue builds the streamer for cue at the given linear volume in [0,1].
// Every cue is finite.
func NewCue(cue Cue, volume float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch cue {
	case CueFire:
		s, err = tone(1320, fireDuration)
	case CueRejected:
		s, err = tone(220, rejectedDuration)
	case CueHit:
		s = fade(noise(SampleRate.N(hitDuration)), SampleRate.N(hitDuration))
	case CueRoundOver:
		s, err = melody(523.25, 659.25, 783.99)
	case CueDraw:
		s, err = melody(392.00, 349.23, 293.66)
	default:
		return nil, fmt.Errorf("unknown cue %d", int(cue))
	}
	if err != nil {
		return nil, fmt.Errorf("building %s cue: %w", cue, err)
	}
	return withVolume(s, volume), nil
}

// tone is a sine at freq lasting d
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := SampleRate.N(d)
	return fade(beep.Take(n, sine), n), nil
}

// melody plays notes one after another
func melody(freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		s, err := tone(f, noteDuration)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return beep.Seq(notes...), nil
}

// noise is n samples of white noise
func noise(n int) beep.Streamer {
	remaining := n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		count := len(samples)
		if count > remaining {
			count = remaining
		}
		for i := 0; i < count; i++ {
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		remaining -= count
		return count, true
	})
}

// fade ramps s linearly down to silence over total samples
func fade(s beep.Streamer, total int) beep.Streamer {
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(position)/float64(total)
			if gain < 0 {
				gain = 0
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			position++
		}
		return n, ok
	})
}

// withVolume scales s; zero or less is silent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
