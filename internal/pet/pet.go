// Package pet implements the balloon pet's mood state machine. The Manager owns
// the current mood, drives the bound presentation handles and runs the timed
// activity, fade and pop transitions from the host's per-frame Tick.
package pet

import (
	"log"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Testable time function
var TimeNow = func() time.Time { return time.Now().UTC() }

// Timings controls how long the timed transitions last
type Timings struct {
	Fade     time.Duration
	Snack    time.Duration
	Play     time.Duration
	PopDelay time.Duration
}

// DefaultTimings returns the standard transition lengths
func DefaultTimings() Timings {
	return Timings{
		Fade:     DefaultFadeDuration,
		Snack:    DefaultSnackDuration,
		Play:     DefaultPlayDuration,
		PopDelay: DefaultPopDelay,
	}
}

// Options configures a Manager. Zero values fall back to defaults.
type Options struct {
	Timings *Timings
	Palette Palette
	Status  StatusText
	Rand    *rand.Rand
	Clock   func() time.Time
}

type pendingKind int

const (
	pendingRevert pendingKind = iota // activity override returns to Happy
	pendingDestroy
)

// pending is the single scheduled transition. Replacing it cancels the old one.
type pending struct {
	kind     pendingKind
	deadline time.Time
}

// Manager is the pet mood state machine
type Manager struct {
	timings Timings
	palette Palette
	status  StatusText
	rng     *rand.Rand
	now     func() time.Time

	h        handles
	bound    bool
	popping  bool
	mood     Mood
	activity Activity
	color    colorful.Color
	fade     *fade
	pending  *pending
	text     string
}

// NewManager creates an unbound manager
func NewManager(opts Options) *Manager {
	m := &Manager{
		timings: DefaultTimings(),
		palette: opts.Palette,
		status:  opts.Status,
		rng:     opts.Rand,
		now:     opts.Clock,
	}
	if opts.Timings != nil {
		m.timings = *opts.Timings
	}
	if m.palette == nil {
		m.palette = DefaultPalette()
	}
	if m.status == nil {
		log.Printf("pet: no status text bound, state changes will not be shown")
		m.status = nopStatus{}
	}
	if m.now == nil {
		m.now = TimeNow
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(m.now().UnixNano()))
	}
	return m
}

// Mood returns the current mood. During an activity it is the mood that was
// active before the activity started.
func (m *Manager) Mood() Mood { return m.mood }

// Activity returns the running activity override, if any
func (m *Manager) Activity() Activity { return m.activity }

// Bound reports whether a pet is placed and controlled by the manager
func (m *Manager) Bound() bool { return m.bound }

// Popping reports whether the pet is waiting to be removed
func (m *Manager) Popping() bool { return m.popping }

// Status returns the last status text written
func (m *Manager) Status() string { return m.text }

// Color returns the tint last sent to the renderer
func (m *Manager) Color() colorful.Color { return m.color }

// Fading reports whether a material cross-fade is in progress
func (m *Manager) Fading() bool { return m.fade != nil }

// Initialize binds a freshly placed pet and gives it a random base mood
func (m *Manager) Initialize(inst Instance) {
	if inst == nil {
		log.Printf("pet: initialize called without an instance")
		return
	}
	m.fade = nil
	m.pending = nil
	m.h = bindHandles(inst)
	m.bound = true
	m.popping = false
	m.activity = ActivityNone
	m.mood = BaseMoods[m.rng.Intn(len(BaseMoods))]
	log.Printf("pet: placed with initial mood %s", m.mood)

	m.h.audio.Stop()
	m.show(MoodCue(m.mood), m.mood.String(), false)
}

// SetMood switches to a base mood immediately, cross-fading the material
func (m *Manager) SetMood(mood Mood) {
	if !m.ready("set mood") {
		return
	}
	if !mood.Valid() {
		log.Printf("pet: ignoring unknown mood %d", mood)
		return
	}
	m.pending = nil
	m.activity = ActivityNone
	m.mood = mood
	log.Printf("pet: mood set to %s", mood)

	m.h.audio.Stop()
	m.show(MoodCue(mood), mood.String(), true)
}

// Feed starts the snack activity
func (m *Manager) Feed() {
	m.startActivity(ActivitySnack, m.timings.Snack)
}

// PlayWith starts the play activity
func (m *Manager) PlayWith() {
	m.startActivity(ActivityPlay, m.timings.Play)
}

func (m *Manager) startActivity(a Activity, d time.Duration) {
	if !m.ready("start " + a.String()) {
		return
	}
	m.activity = a
	m.pending = &pending{kind: pendingRevert, deadline: m.now().Add(d)}
	log.Printf("pet: %s started, back to Happy in %s", a, d)

	m.h.audio.Stop()
	m.show(ActivityCue(a), a.String(), false)
}

// Pop plays the pop animation and sound, then removes the pet after the pop
// delay. Calling it again while the pet is popping does nothing.
func (m *Manager) Pop() {
	if !m.bound {
		log.Printf("pet: pop ignored, no pet placed")
		return
	}
	if m.popping {
		log.Printf("pet: pop ignored, already popping")
		return
	}
	m.popping = true
	m.fade = nil
	m.activity = ActivityNone
	m.pending = &pending{kind: pendingDestroy, deadline: m.now().Add(m.timings.PopDelay)}
	log.Printf("pet: popping")

	m.h.animator.Play(popCue.Animation)
	m.h.audio.PlayOneShot(popCue.Clip)
}

// Tick advances the fade and fires the pending transition once its deadline
// has passed. The host calls it once per frame.
func (m *Manager) Tick(now time.Time) {
	if m.fade != nil {
		m.stepFade(now)
	}
	if m.pending == nil || now.Before(m.pending.deadline) {
		return
	}
	p := m.pending
	m.pending = nil
	switch p.kind {
	case pendingRevert:
		m.revert()
	case pendingDestroy:
		m.destroy()
	}
}

func (m *Manager) revert() {
	if !m.bound {
		return
	}
	log.Printf("pet: %s finished", m.activity)
	m.activity = ActivityNone
	m.mood = Happy
	m.h.audio.Stop()
	m.show(MoodCue(Happy), Happy.String(), false)
}

func (m *Manager) destroy() {
	inst := m.h.inst
	m.h = handles{}
	m.bound = false
	m.popping = false
	m.fade = nil
	if inst != nil {
		inst.Destroy()
	}
	log.Printf("pet: balloon removed")
}

// ready is the single bound check at the entry of user operations
func (m *Manager) ready(op string) bool {
	if !m.bound {
		log.Printf("pet: %s ignored, no pet placed", op)
		return false
	}
	if m.popping {
		log.Printf("pet: %s ignored, pet is popping", op)
		return false
	}
	return true
}

// show applies a cue and writes the status line
func (m *Manager) show(cue Cue, name string, useFade bool) {
	m.setStatus(name)
	if useFade {
		m.fadeTo(cue.Visual)
	} else {
		m.snapTo(cue.Visual)
	}
	m.h.animator.Play(cue.Animation)
	if cue.Clip != ClipNone {
		m.h.audio.PlayOneShot(cue.Clip)
	}
}

func (m *Manager) setStatus(name string) {
	m.text = StatusPrefix + name
	m.status.SetText(m.text)
}

func (m *Manager) snapTo(v Visual) {
	m.fade = nil
	m.color = m.palette.Color(v)
	m.h.renderer.ApplyMaterial(v)
	m.h.renderer.SetTint(m.color)
}

func (m *Manager) fadeTo(v Visual) {
	if m.timings.Fade <= 0 {
		m.snapTo(v)
		return
	}
	m.fade = &fade{
		from:     m.color,
		to:       m.palette.Color(v),
		target:   v,
		start:    m.now(),
		duration: m.timings.Fade,
	}
}

func (m *Manager) stepFade(now time.Time) {
	f := m.fade
	if f.progress(now) >= 1 {
		m.snapTo(f.target)
		return
	}
	m.color = f.colorAt(now)
	m.h.renderer.SetTint(m.color)
}
