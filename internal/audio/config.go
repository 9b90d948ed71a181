package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds the audio system settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.7,
		EffectVolumes: map[SoundType]float64{
			SoundBump:  0.8,
			SoundChime: 0.6,
			SoundWin:   1.0,
		},
		SampleRate: 48000,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv("MAZE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("MAZE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("MAZE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["bump"]; ok {
				cfg.EffectVolumes[SoundBump] = v
			}
			if v, ok := volumes["chime"]; ok {
				cfg.EffectVolumes[SoundChime] = v
			}
			if v, ok := volumes["win"]; ok {
				cfg.EffectVolumes[SoundWin] = v
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("MAZE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
