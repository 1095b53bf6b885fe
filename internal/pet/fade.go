package pet

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps each material slot to its base colour
type Palette map[Visual]colorful.Color

// DefaultPalette returns the built-in material colours
func DefaultPalette() Palette {
	return Palette{
		VisualIdle:   mustHex(ColorIdle),
		VisualHappy:  mustHex(ColorHappy),
		VisualSad:    mustHex(ColorSad),
		VisualHungry: mustHex(ColorHungry),
		VisualSnack:  mustHex(ColorSnack),
		VisualPlay:   mustHex(ColorPlay),
	}
}

// ParsePalette builds a palette from hex strings keyed by slot name. Slots that
// are not listed keep their default colour.
func ParsePalette(hex map[string]string) (Palette, error) {
	p := DefaultPalette()
	for name, value := range hex {
		v, ok := visualByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", name, err)
		}
		p[v] = c
	}
	return p, nil
}

// Color returns the colour for a slot, falling back to the default palette
func (p Palette) Color(v Visual) colorful.Color {
	if c, ok := p[v]; ok {
		return c
	}
	return DefaultPalette()[v]
}

func visualByName(name string) (Visual, bool) {
	for _, v := range Visuals {
		if v.String() == name {
			return v, true
		}
	}
	return VisualIdle, false
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// fade interpolates the balloon tint towards a target material
type fade struct {
	from     colorful.Color
	to       colorful.Color
	target   Visual
	start    time.Time
	duration time.Duration
}

// progress returns how far the fade is at now, clamped to [0, 1]
func (f *fade) progress(now time.Time) float64 {
	if f.duration <= 0 {
		return 1
	}
	t := float64(now.Sub(f.start)) / float64(f.duration)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// colorAt returns the interpolated tint at now
func (f *fade) colorAt(now time.Time) colorful.Color {
	return f.from.BlendRgb(f.to, f.progress(now)).Clamped()
}
