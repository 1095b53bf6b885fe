// Package scene wires the UI and placement collaborators to the pet state
// machine. It is the only thing that calls into the Manager.
package scene

import (
	"log"
	"time"

	"balloonpet/internal/pet"
	"balloonpet/internal/placement"
)

// Options configures a Scene
type Options struct {
	Pets          *pet.Manager
	Spawner       placement.Spawner
	Audio         Muter
	Muted         bool
	QuitDelay     time.Duration
	SlideDuration time.Duration
	Clock         func() time.Time
}

// Scene owns the placed pet and the UI widgets around it
type Scene struct {
	pets      *pet.Manager
	placer    *placement.Placer
	indicator placement.Indicator
	audio     *AudioToggle
	menu      *SlideMenu
	quit      *QuitFlow
	now       func() time.Time
}

// New builds a scene around an existing state machine
func New(opts Options) *Scene {
	s := &Scene{
		pets:  opts.Pets,
		audio: newAudioToggle(opts.Audio, opts.Muted),
		menu:  newSlideMenu(opts.SlideDuration),
		quit:  newQuitFlow(opts.QuitDelay),
		now:   opts.Clock,
	}
	if s.now == nil {
		s.now = pet.TimeNow
	}
	s.placer = placement.NewPlacer(opts.Spawner, opts.Pets)
	return s
}

// Pets returns the state machine
func (s *Scene) Pets() *pet.Manager { return s.pets }

// Placer returns the placement source
func (s *Scene) Placer() *placement.Placer { return s.placer }

// Indicator returns the placement indicator
func (s *Scene) Indicator() *placement.Indicator { return &s.indicator }

// Audio returns the audio toggle
func (s *Scene) Audio() *AudioToggle { return s.audio }

// Menu returns the slide menu
func (s *Scene) Menu() *SlideMenu { return s.menu }

// Quit returns the quit flow
func (s *Scene) Quit() *QuitFlow { return s.quit }

// OnSurfaceHit updates the placement indicator from the centre raycast
func (s *Scene) OnSurfaceHit(hit *placement.Pose) {
	s.indicator.Update(hit)
}

// OnPlaneTapped places or moves the pet
func (s *Scene) OnPlaneTapped(pose placement.Pose) {
	if s.quitting() {
		log.Printf("scene: tap ignored while quitting")
		return
	}
	s.placer.OnPlaneTapped(pose)
}

// OnMoodButton switches the pet's mood
func (s *Scene) OnMoodButton(m pet.Mood) {
	if s.quitting() {
		return
	}
	s.pets.SetMood(m)
}

// OnFeedButton gives the pet a snack
func (s *Scene) OnFeedButton() {
	if s.quitting() {
		return
	}
	s.pets.Feed()
}

// OnPlayButton plays with the pet
func (s *Scene) OnPlayButton() {
	if s.quitting() {
		return
	}
	s.pets.PlayWith()
}

// OnQuitButton shows the quit confirmation
func (s *Scene) OnQuitButton() {
	s.quit.show()
}

// OnQuitConfirmed pops the pet and exits once the pop has played
func (s *Scene) OnQuitConfirmed() {
	if !s.quit.confirm(s.now()) {
		return
	}
	log.Printf("scene: quit confirmed")
	s.pets.Pop()
}

// OnQuitCancelled hides the quit confirmation
func (s *Scene) OnQuitCancelled() {
	s.quit.hide()
}

// OnAudioToggle flips sound on or off
func (s *Scene) OnAudioToggle() {
	s.audio.Toggle()
	log.Printf("scene: audio %s", s.audio.Label())
}

// OnMenuToggle slides the menu in or out
func (s *Scene) OnMenuToggle() {
	s.menu.Toggle(s.now())
}

// Tick advances every timed component
func (s *Scene) Tick(now time.Time) {
	s.pets.Tick(now)
	s.menu.Tick(now)
	s.quit.tick(now)
}

func (s *Scene) quitting() bool {
	return s.quit.Pending() || s.quit.Requested()
}
