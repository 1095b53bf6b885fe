package audio

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"balloonpet/internal/pet"
)

// note is one tone in a clip. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var clipNotes = map[pet.Clip][]note{
	// Rising major arpeggio
	pet.ClipHappy: {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 140 * time.Millisecond}},
	// Slow fall
	pet.ClipSad: {{392.00, 180 * time.Millisecond}, {329.63, 180 * time.Millisecond}, {261.63, 260 * time.Millisecond}},
	// Two low grumbles
	pet.ClipHungry: {{220, 150 * time.Millisecond}, {0, 80 * time.Millisecond}, {196, 200 * time.Millisecond}},
	// nom nom
	pet.ClipSnack: {{440, 60 * time.Millisecond}, {0, 40 * time.Millisecond}, {440, 60 * time.Millisecond}, {0, 40 * time.Millisecond}, {523.25, 90 * time.Millisecond}},
	pet.ClipPlay:  {{659.25, 70 * time.Millisecond}, {880, 70 * time.Millisecond}, {659.25, 70 * time.Millisecond}, {987.77, 120 * time.Millisecond}},
}

const popLength = 120 * time.Millisecond

// Synthesize builds the streamer for a clip at the given sample rate. It
// returns nil for ClipNone and unknown clips.
func Synthesize(c pet.Clip, rate beep.SampleRate) beep.Streamer {
	if c == pet.ClipPop {
		return beep.Take(rate.N(popLength), newPopGenerator(rate))
	}

	notes, ok := clipNotes[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			log.Printf("audio: skipping %.0fHz note in %s clip: %v", n.freq, c, err)
			continue
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return beep.Seq(parts...)
}

// popGenerator is a fast downward sweep with an exponential decay
type popGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newPopGenerator(sr beep.SampleRate) *popGenerator {
	return &popGenerator{sr: sr}
}

func (g *popGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 900 * math.Exp(-t*18)
		envelope := math.Exp(-t * 30)
		sample := 0.6 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error {
	return nil
}
