package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies a game sound effect
type SoundType int

const (
	SoundBump SoundType = iota
	SoundChime
	SoundWin
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note builds one enveloped tone
func note(freq float64, dur time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, dur, wave, rate)
	return NewEnvelope(osc, dur, 5*time.Millisecond, dur/3, rate)
}

// CreateBumpSound is the dull thud of walking into a wall
func CreateBumpSound(rate beep.SampleRate) beep.Streamer {
	return note(110, 90*time.Millisecond, WaveSquare, rate)
}

// CreateChimeSound marks maze generation finishing
func CreateChimeSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(660, 120*time.Millisecond, WaveSine, rate),
		note(880, 160*time.Millisecond, WaveSine, rate),
	)
}

// CreateWinSound is the jingle for reaching the exit
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(523.25, 110*time.Millisecond, WaveSine, rate),
		note(659.25, 110*time.Millisecond, WaveSine, rate),
		note(783.99, 110*time.Millisecond, WaveSine, rate),
		note(1046.50, 220*time.Millisecond, WaveSine, rate),
	)
}

// GetSoundEffect builds the streamer for a sound type
func GetSoundEffect(sound SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case SoundBump:
		return CreateBumpSound(rate)
	case SoundChime:
		return CreateChimeSound(rate)
	case SoundWin:
		return CreateWinSound(rate)
	default:
		return nil
	}
}

// newVolume wraps a streamer with a log-scaled volume control.
// A volume of 0 mutes the stream entirely.
func newVolume(s beep.Streamer, volume float64) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 0.001)),
		Silent:   volume <= 0,
	}
}
