package ui

import (
	"log"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"balloonpet/internal/pet"
	"balloonpet/internal/placement"
)

// Balloon is the on-screen pet. It is the presentation handle set the state
// machine drives and the body the placer moves around the plane.
type Balloon struct {
	pose     placement.Pose
	material pet.Visual
	tint     colorful.Color
	anim     Animation
	audio    pet.AudioPlayer
	removed  bool
	now      func() time.Time
}

func newBalloon(p placement.Pose, audio pet.AudioPlayer, now func() time.Time) *Balloon {
	return &Balloon{pose: p, audio: audio, now: now}
}

func (b *Balloon) Renderer() pet.Renderer { return b }
func (b *Balloon) Animator() pet.Animator { return b }
func (b *Balloon) Audio() pet.AudioPlayer { return b.audio }

// Destroy removes the balloon from the plane
func (b *Balloon) Destroy() {
	b.removed = true
	log.Printf("ui: balloon removed at %s", b.pose)
}

func (b *Balloon) MoveTo(p placement.Pose) { b.pose = p }

func (b *Balloon) ApplyMaterial(v pet.Visual) { b.material = v }

func (b *Balloon) SetTint(c colorful.Color) { b.tint = c }

// Play restarts the named animation from its first frame
func (b *Balloon) Play(name string) {
	b.anim = Animation{Name: name, StartTime: b.now()}
}

// Pose returns where the balloon sits
func (b *Balloon) Pose() placement.Pose { return b.pose }

// Material returns the last applied material
func (b *Balloon) Material() pet.Visual { return b.material }

// Tint returns the current body colour
func (b *Balloon) Tint() colorful.Color { return b.tint }

// Animation returns the playing animation
func (b *Balloon) Animation() Animation { return b.anim }

// Removed reports whether the balloon was destroyed
func (b *Balloon) Removed() bool { return b.removed }

// stage spawns balloons and holds the status line for the view
type stage struct {
	audio   pet.AudioPlayer
	now     func() time.Time
	balloon *Balloon
	status  string
}

func (s *stage) Spawn(p placement.Pose) (placement.Body, error) {
	s.balloon = newBalloon(p, s.audio, s.now)
	log.Printf("ui: balloon spawned at %s", p)
	return s.balloon, nil
}

func (s *stage) SetText(text string) { s.status = text }
