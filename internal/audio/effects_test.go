package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

// drain streams everything and returns the collected samples.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	dur := 50 * time.Millisecond
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(NewOscillator(440, dur, wave, testRate))
		if want := testRate.N(dur); len(samples) != want {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, want, len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Fatalf("Wave %d: sample %d out of range: %v", wave, i, s)
			}
		}
	}
}

func TestOscillatorStereoChannelsMatch(t *testing.T) {
	samples := drain(NewOscillator(440, 10*time.Millisecond, WaveSine, testRate))
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("Sample %d: channels differ: %v", i, s)
		}
	}
}

func TestEnvelopeRampsInAndOut(t *testing.T) {
	dur := 100 * time.Millisecond
	// A square wave holds +/-1, so envelope shaping is directly visible.
	osc := NewOscillator(440, dur, WaveSquare, testRate)
	samples := drain(NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, testRate))

	if len(samples) == 0 {
		t.Fatal("Expected samples from the envelope")
	}
	if first := samples[0]; first[0] != 0 {
		t.Errorf("Expected silent attack start, got %v", first[0])
	}
	last := samples[len(samples)-1]
	if last[0] < -0.01 || last[0] > 0.01 {
		t.Errorf("Expected near-silent release end, got %v", last[0])
	}

	// The sustain portion is unshaped.
	mid := samples[len(samples)/2]
	if mid[0] != 1 && mid[0] != -1 {
		t.Errorf("Expected full amplitude mid-stream, got %v", mid[0])
	}
}

func TestGetSoundEffect(t *testing.T) {
	for _, sound := range []SoundType{SoundBump, SoundChime, SoundWin} {
		s := GetSoundEffect(sound, testRate)
		if s == nil {
			t.Fatalf("Expected a streamer for sound %d", sound)
		}
		if samples := drain(s); len(samples) == 0 {
			t.Errorf("Expected sound %d to produce samples", sound)
		}
	}
	if s := GetSoundEffect(SoundType(99), testRate); s != nil {
		t.Error("Expected nil for an unknown sound type")
	}
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	v := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, testRate), 0)
	if !v.Silent {
		t.Error("Expected zero volume to mark the stream silent")
	}

	v = newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, testRate), 0.5)
	if v.Silent {
		t.Error("Expected non-zero volume to stay audible")
	}
	for _, s := range drain(v) {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("Attenuated sample out of range: %v", s)
		}
	}
}

func TestPlayBeforeInitializeIsNoOp(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	// Initialize with audio disabled must not touch the speaker, and Play
	// must be safe to call regardless.
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with disabled audio failed: %v", err)
	}
	sm.Play(SoundBump)
	sm.Cleanup()
}
