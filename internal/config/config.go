// Package config loads balloonpet settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"balloonpet/internal/audio"
	"balloonpet/internal/pet"
)

// Duration is a time.Duration written as "4s" or "200ms" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config is the full settings file
type Config struct {
	Timings   TimingsConfig     `toml:"timings"`
	Materials map[string]string `toml:"materials"`
	Audio     AudioConfig       `toml:"audio"`
	UI        UIConfig          `toml:"ui"`
	Seed      int64             `toml:"seed"` // 0 picks a random seed
}

type TimingsConfig struct {
	Fade     Duration `toml:"fade"`
	Snack    Duration `toml:"snack"`
	Play     Duration `toml:"play"`
	PopDelay Duration `toml:"popDelay"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sampleRate"`
	Muted      bool    `toml:"muted"`
}

type UIConfig struct {
	FrameInterval Duration `toml:"frameInterval"`
	QuitDelay     Duration `toml:"quitDelay"`
	SlideDuration Duration `toml:"slideDuration"`
}

// Default returns the built-in settings
func Default() Config {
	t := pet.DefaultTimings()
	a := audio.DefaultConfig()
	return Config{
		Timings: TimingsConfig{
			Fade:     Duration{t.Fade},
			Snack:    Duration{t.Snack},
			Play:     Duration{t.Play},
			PopDelay: Duration{t.PopDelay},
		},
		Materials: map[string]string{
			pet.VisualIdle.String():   pet.ColorIdle,
			pet.VisualHappy.String():  pet.ColorHappy,
			pet.VisualSad.String():    pet.ColorSad,
			pet.VisualHungry.String(): pet.ColorHungry,
			pet.VisualSnack.String():  pet.ColorSnack,
			pet.VisualPlay.String():   pet.ColorPlay,
		},
		Audio: AudioConfig{
			Enabled:    a.Enabled,
			Volume:     a.Volume,
			SampleRate: a.SampleRate,
		},
		UI: UIConfig{
			FrameInterval: Duration{33 * time.Millisecond},
			QuitDelay:     Duration{200 * time.Millisecond},
			SlideDuration: Duration{500 * time.Millisecond},
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as TOML
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks ranges and colours
func (c Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"timings.fade", c.Timings.Fade.Duration},
		{"timings.snack", c.Timings.Snack.Duration},
		{"timings.play", c.Timings.Play.Duration},
		{"timings.popDelay", c.Timings.PopDelay.Duration},
		{"ui.quitDelay", c.UI.QuitDelay.Duration},
		{"ui.slideDuration", c.UI.SlideDuration.Duration},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", d.name, d.d)
		}
	}
	if c.UI.FrameInterval.Duration <= 0 {
		return fmt.Errorf("ui.frameInterval must be positive, got %s", c.UI.FrameInterval.Duration)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate < 0 {
		return fmt.Errorf("audio.sampleRate must not be negative, got %d", c.Audio.SampleRate)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// PetTimings converts the timing section for the state machine
func (c Config) PetTimings() pet.Timings {
	return pet.Timings{
		Fade:     c.Timings.Fade.Duration,
		Snack:    c.Timings.Snack.Duration,
		Play:     c.Timings.Play.Duration,
		PopDelay: c.Timings.PopDelay.Duration,
	}
}

// Palette parses the material colours
func (c Config) Palette() (pet.Palette, error) {
	return pet.ParsePalette(c.Materials)
}

// AudioSettings converts the audio section for the player
func (c Config) AudioSettings() audio.Config {
	return audio.Config{
		Enabled:    c.Audio.Enabled,
		Volume:     c.Audio.Volume,
		SampleRate: c.Audio.SampleRate,
	}
}
