package scene

import (
	"log"
	"time"
)

// Muter is an audio output that can be silenced
type Muter interface {
	SetMuted(muted bool)
}

// AudioToggle is the on/off sound button
type AudioToggle struct {
	muted bool
	out   Muter
}

func newAudioToggle(out Muter, muted bool) *AudioToggle {
	a := &AudioToggle{out: out, muted: muted}
	a.apply()
	return a
}

// Toggle flips mute and pushes it to the audio output
func (a *AudioToggle) Toggle() {
	a.muted = !a.muted
	a.apply()
}

// Muted reports whether sound is off
func (a *AudioToggle) Muted() bool { return a.muted }

// Label is the button text
func (a *AudioToggle) Label() string {
	if a.muted {
		return "Off"
	}
	return "On"
}

func (a *AudioToggle) apply() {
	if a.out == nil {
		log.Printf("scene: audio toggle has no output to mute")
		return
	}
	a.out.SetMuted(a.muted)
}

// SlideMenu is a panel that slides between hidden (offset 0) and shown
// (offset 1). Toggling mid-slide restarts from the current offset.
type SlideMenu struct {
	duration time.Duration
	visible  bool
	offset   float64
	from     float64
	start    time.Time
	sliding  bool
}

func newSlideMenu(d time.Duration) *SlideMenu {
	return &SlideMenu{duration: d}
}

// Toggle starts sliding towards the opposite state
func (s *SlideMenu) Toggle(now time.Time) {
	s.visible = !s.visible
	s.from = s.offset
	s.start = now
	s.sliding = true
	if s.duration <= 0 {
		s.finish()
	}
}

// Tick advances the slide
func (s *SlideMenu) Tick(now time.Time) {
	if !s.sliding {
		return
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.duration {
		s.finish()
		return
	}
	t := float64(elapsed) / float64(s.duration)
	if t < 0 {
		t = 0
	}
	s.offset = s.from + (s.target()-s.from)*t
}

func (s *SlideMenu) finish() {
	s.offset = s.target()
	s.sliding = false
}

func (s *SlideMenu) target() float64 {
	if s.visible {
		return 1
	}
	return 0
}

// Visible reports the state the menu is sliding to
func (s *SlideMenu) Visible() bool { return s.visible }

// Offset returns how far the menu is on screen, 0 to 1
func (s *SlideMenu) Offset() float64 { return s.offset }

// Sliding reports whether the menu is moving
func (s *SlideMenu) Sliding() bool { return s.sliding }

// QuitFlow is the quit button with its confirmation panel
type QuitFlow struct {
	delay     time.Duration
	open      bool
	deadline  time.Time
	pending   bool
	requested bool
}

func newQuitFlow(delay time.Duration) *QuitFlow {
	return &QuitFlow{delay: delay}
}

// Open reports whether the confirmation panel is showing
func (q *QuitFlow) Open() bool { return q.open }

// Pending reports whether a confirmed quit is waiting for the pop to finish
func (q *QuitFlow) Pending() bool { return q.pending }

// Requested reports whether the application should exit
func (q *QuitFlow) Requested() bool { return q.requested }

func (q *QuitFlow) show() {
	if q.pending || q.requested {
		return
	}
	q.open = true
}

func (q *QuitFlow) hide() { q.open = false }

func (q *QuitFlow) confirm(now time.Time) bool {
	if q.pending || q.requested {
		return false
	}
	q.open = false
	q.pending = true
	q.deadline = now.Add(q.delay)
	return true
}

func (q *QuitFlow) tick(now time.Time) {
	if q.pending && !now.Before(q.deadline) {
		q.pending = false
		q.requested = true
	}
}
