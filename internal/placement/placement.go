// Package placement turns plane taps into a single placed pet: the first tap
// spawns it, later taps move it.
package placement

import (
	"fmt"
	"log"
	"math"

	"balloonpet/internal/pet"
)

// Vec3 is a position in scene space
type Vec3 struct {
	X, Y, Z float64
}

// Pose is where a tap hit a plane: a position and a yaw around the up axis
type Pose struct {
	Position Vec3
	Yaw      float64
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f) yaw %.0f°", p.Position.X, p.Position.Y, p.Position.Z, p.Yaw*180/math.Pi)
}

// Body is a placed pet that can be relocated
type Body interface {
	pet.Instance
	MoveTo(p Pose)
}

// Spawner creates a new pet body at a pose
type Spawner interface {
	Spawn(p Pose) (Body, error)
}

// Controller is the state machine that takes ownership of spawned pets
type Controller interface {
	Bound() bool
	Initialize(inst pet.Instance)
}

// Placer keeps at most one pet in the scene
type Placer struct {
	spawner Spawner
	pets    Controller
	body    Body
	spawned int
}

// NewPlacer creates a placer that spawns through s and hands pets to c
func NewPlacer(s Spawner, c Controller) *Placer {
	return &Placer{spawner: s, pets: c}
}

// OnPlaneTapped spawns a pet at pose, or moves the live one there
func (p *Placer) OnPlaneTapped(pose Pose) {
	if p.body != nil && p.pets.Bound() {
		p.body.MoveTo(pose)
		log.Printf("placement: moved pet to %s", pose)
		return
	}

	body, err := p.spawner.Spawn(pose)
	if err != nil {
		log.Printf("placement: spawn failed: %v", err)
		return
	}
	p.body = body
	p.spawned++
	log.Printf("placement: spawned pet at %s", pose)
	p.pets.Initialize(body)
}

// Body returns the live pet body, or nil when none is placed
func (p *Placer) Body() Body {
	if p.body == nil || !p.pets.Bound() {
		return nil
	}
	return p.body
}

// Spawned returns how many bodies have been created
func (p *Placer) Spawned() int {
	return p.spawned
}
