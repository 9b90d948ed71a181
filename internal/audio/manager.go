package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager from the given configuration
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize sets up the audio system. A disabled config makes this a no-op,
// so callers can Play unconditionally.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a one-shot sound effect.
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(sound, sm.rate)
	if streamer == nil {
		return
	}

	vol := sm.cfg.MasterVolume * sm.cfg.EffectVolumes[sound]

	// The mixer is owned by the speaker goroutine once playing.
	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, vol))
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns whether audio is now muted.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// Cleanup stops all sounds and shuts the audio system down
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker.Close; an empty mixer leaves no audio artifacts
	sm.initialized = false
}
