// Package audio plays the balloon's sound clips through beep.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"balloonpet/internal/pet"
)

// Config controls audio output
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// DefaultConfig returns enabled audio at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// Player is the pet's audio source. Clips are mixed so a pop can overlap the
// sound already playing; Stop silences everything.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	muted       bool
	initialized bool
}

// NewPlayer creates a player. Call Initialize to open the speaker.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.volume = &effects.Volume{Streamer: p.mixer, Base: 2}
	p.applyVolume()
	return p
}

// Initialize opens the speaker. A failure is returned but the player stays
// usable and silent, so the pet works without sound.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Close stops all sound and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// PlayOneShot starts a clip on top of whatever is playing
func (p *Player) PlayOneShot(c pet.Clip) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Synthesize(c, p.rate)
	if s == nil {
		log.Printf("audio: no sound for clip %s", c)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Stop silences every clip that is still playing
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// SetMuted mutes or unmutes output without dropping clips
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if p.initialized {
		speaker.Lock()
		p.applyVolume()
		speaker.Unlock()
		return
	}
	p.applyVolume()
}

// IsPlaying reports whether any clip is still sounding
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len() > 0
}

// Muted reports whether output is muted
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Active reports whether the speaker is open
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) applyVolume() {
	vol := p.cfg.Volume
	if vol > 1 {
		vol = 1
	}
	if p.muted || vol <= 0 {
		p.volume.Silent = true
		p.volume.Volume = 0
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(vol)
}
