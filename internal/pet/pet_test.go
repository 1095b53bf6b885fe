package pet

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// recorder is a fake pet instance that records every presentation call
type recorder struct {
	events    []string
	destroyed int
	tints     []colorful.Color
}

func (r *recorder) Renderer() Renderer { return r }
func (r *recorder) Animator() Animator { return r }
func (r *recorder) Audio() AudioPlayer { return r }
func (r *recorder) Destroy()           { r.destroyed++; r.events = append(r.events, "destroy") }
func (r *recorder) Play(name string)   { r.events = append(r.events, "anim:"+name) }
func (r *recorder) PlayOneShot(c Clip) { r.events = append(r.events, "clip:"+c.String()) }
func (r *recorder) Stop()              { r.events = append(r.events, "stop") }

func (r *recorder) ApplyMaterial(v Visual) {
	r.events = append(r.events, "material:"+v.String())
}

func (r *recorder) SetTint(c colorful.Color) { r.tints = append(r.tints, c) }

func (r *recorder) reset() {
	r.events = nil
	r.tints = nil
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// partial exposes only an animator
type partial struct {
	anims     []string
	destroyed bool
}

func (p *partial) Renderer() Renderer { return nil }
func (p *partial) Animator() Animator { return p }
func (p *partial) Audio() AudioPlayer { return nil }
func (p *partial) Destroy()           { p.destroyed = true }
func (p *partial) Play(name string)   { p.anims = append(p.anims, name) }

type statusLine struct {
	text    string
	updates int
}

func (s *statusLine) SetText(text string) {
	s.text = text
	s.updates++
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

type fixture struct {
	m      *Manager
	pet    *recorder
	status *statusLine
	clock  *fakeClock
}

func newFixture(t *testing.T, seed int64) *fixture {
	t.Helper()
	f := &fixture{
		pet:    &recorder{},
		status: &statusLine{},
		clock:  &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.m = NewManager(Options{
		Status: f.status,
		Rand:   rand.New(rand.NewSource(seed)),
		Clock:  f.clock.Now,
	})
	return f
}

func (f *fixture) placed(t *testing.T) *fixture {
	t.Helper()
	f.m.Initialize(f.pet)
	if !f.m.Bound() {
		t.Fatal("Expected manager to be bound after Initialize")
	}
	f.pet.reset()
	return f
}

// run advances the clock in frame-sized steps, ticking the manager each time
func (f *fixture) run(d time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		f.m.Tick(f.clock.advance(frame))
	}
}

func TestSetMoodStatusText(t *testing.T) {
	for _, mood := range BaseMoods {
		t.Run(mood.String(), func(t *testing.T) {
			f := newFixture(t, 1).placed(t)
			f.m.SetMood(mood)

			expected := "Pet State: " + mood.String()
			if f.status.text != expected {
				t.Errorf("Expected status %q, got %q", expected, f.status.text)
			}
			if f.m.Status() != expected {
				t.Errorf("Expected Status() %q, got %q", expected, f.m.Status())
			}
			if f.m.Mood() != mood {
				t.Errorf("Expected mood %s, got %s", mood, f.m.Mood())
			}
		})
	}
}

func TestSetMoodSideEffects(t *testing.T) {
	tests := []struct {
		mood Mood
		anim string
		clip string
	}{
		{Idle, "anim:Idle", ""},
		{Happy, "anim:Happy", "clip:happy"},
		{Sad, "anim:Sad", "clip:sad"},
		{Hungry, "anim:Hungry", "clip:hungry"},
	}

	for _, tt := range tests {
		t.Run(tt.mood.String(), func(t *testing.T) {
			f := newFixture(t, 1).placed(t)
			f.m.SetMood(tt.mood)

			if len(f.pet.events) == 0 || f.pet.events[0] != "stop" {
				t.Errorf("Expected sound to be stopped first, got %v", f.pet.events)
			}
			if f.pet.count(tt.anim) != 1 {
				t.Errorf("Expected %s once, got %v", tt.anim, f.pet.events)
			}
			clips := 0
			for _, e := range f.pet.events {
				if strings.HasPrefix(e, "clip:") {
					clips++
				}
			}
			if tt.clip == "" && clips != 0 {
				t.Errorf("Expected %s to be silent, got %v", tt.mood, f.pet.events)
			}
			if tt.clip != "" && f.pet.count(tt.clip) != 1 {
				t.Errorf("Expected %s once, got %v", tt.clip, f.pet.events)
			}
		})
	}
}

func TestSetMoodFadesMaterial(t *testing.T) {
	f := newFixture(t, 1).placed(t)
	f.m.SetMood(Sad)
	if !f.m.Fading() {
		t.Fatal("Expected a fade to be running")
	}

	f.run(DefaultFadeDuration / 2)
	if len(f.pet.tints) == 0 {
		t.Fatal("Expected intermediate tints during fade")
	}
	if f.pet.count("material:sad") != 0 {
		t.Error("Material applied before fade finished")
	}

	f.run(DefaultFadeDuration)
	if f.m.Fading() {
		t.Error("Expected fade to be finished")
	}
	if f.pet.count("material:sad") != 1 {
		t.Errorf("Expected sad material once after fade, got %v", f.pet.events)
	}
	want := DefaultPalette().Color(VisualSad)
	if f.m.Color() != want {
		t.Errorf("Expected final colour %s, got %s", want.Hex(), f.m.Color().Hex())
	}
}

func TestFadeInterpolatesBetweenColours(t *testing.T) {
	from := DefaultPalette().Color(VisualIdle)
	to := DefaultPalette().Color(VisualHappy)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fd := &fade{from: from, to: to, target: VisualHappy, start: start, duration: time.Second}

	if got := fd.colorAt(start); got.Hex() != from.Hex() {
		t.Errorf("Expected start colour %s, got %s", from.Hex(), got.Hex())
	}
	if got := fd.colorAt(start.Add(2 * time.Second)); got.Hex() != to.Hex() {
		t.Errorf("Expected end colour %s, got %s", to.Hex(), got.Hex())
	}
	mid := fd.colorAt(start.Add(500 * time.Millisecond))
	if mid.Hex() == from.Hex() || mid.Hex() == to.Hex() {
		t.Errorf("Expected midpoint colour to differ from both ends, got %s", mid.Hex())
	}
	if p := fd.progress(start.Add(-time.Second)); p != 0 {
		t.Errorf("Expected progress clamped to 0, got %f", p)
	}
}

func TestZeroFadeSnapsMaterial(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	inst := &recorder{}
	timings := DefaultTimings()
	timings.Fade = 0
	m := NewManager(Options{Timings: &timings, Rand: rand.New(rand.NewSource(3)), Clock: clock.Now})
	m.Initialize(inst)
	inst.reset()

	m.SetMood(Hungry)
	if m.Fading() {
		t.Error("Expected no fade with zero duration")
	}
	if inst.count("material:hungry") != 1 {
		t.Errorf("Expected hungry material applied immediately, got %v", inst.events)
	}
	want := DefaultPalette().Color(VisualHungry)
	if len(inst.tints) == 0 || inst.tints[len(inst.tints)-1] != want {
		t.Errorf("Expected tint %s pushed on snap, got %v", want.Hex(), inst.tints)
	}
}

func TestFeedEndsHappy(t *testing.T) {
	for _, start := range BaseMoods {
		t.Run(start.String(), func(t *testing.T) {
			f := newFixture(t, 2).placed(t)
			f.m.SetMood(start)
			f.run(DefaultFadeDuration)
			f.pet.reset()

			f.m.Feed()
			if f.m.Activity() != ActivitySnack {
				t.Fatalf("Expected snack activity, got %s", f.m.Activity())
			}
			if f.pet.count("material:snack") != 1 || f.pet.count("anim:GiveSnack") != 1 || f.pet.count("clip:snack") != 1 {
				t.Errorf("Expected snack cue, got %v", f.pet.events)
			}
			if f.pet.events[0] != "stop" {
				t.Errorf("Expected sound stopped before snack, got %v", f.pet.events)
			}

			f.run(DefaultSnackDuration - 100*time.Millisecond)
			if f.m.Activity() != ActivitySnack {
				t.Error("Snack ended before its duration")
			}

			f.run(200 * time.Millisecond)
			if f.m.Activity() != ActivityNone {
				t.Errorf("Expected snack to be over, got %s", f.m.Activity())
			}
			if f.m.Mood() != Happy {
				t.Errorf("Expected Happy after snack, got %s", f.m.Mood())
			}
			if f.status.text != "Pet State: Happy" {
				t.Errorf("Expected Happy status, got %q", f.status.text)
			}
			if f.pet.count("material:happy") != 1 || f.pet.count("anim:Happy") != 1 || f.pet.count("clip:happy") != 1 {
				t.Errorf("Expected happy cue after snack, got %v", f.pet.events)
			}
		})
	}
}

func TestPlayWithEndsHappy(t *testing.T) {
	for _, start := range BaseMoods {
		t.Run(start.String(), func(t *testing.T) {
			f := newFixture(t, 3).placed(t)
			f.m.SetMood(start)
			f.pet.reset()

			f.m.PlayWith()
			if f.m.Activity() != ActivityPlay {
				t.Fatalf("Expected play activity, got %s", f.m.Activity())
			}
			if f.m.Fading() {
				t.Error("Expected activity to cancel the running fade")
			}
			if f.pet.count("material:play") != 1 || f.pet.count("anim:Play") != 1 || f.pet.count("clip:play") != 1 {
				t.Errorf("Expected play cue, got %v", f.pet.events)
			}

			f.run(DefaultPlayDuration + 50*time.Millisecond)
			if f.m.Mood() != Happy || f.m.Activity() != ActivityNone {
				t.Errorf("Expected Happy with no activity, got %s/%s", f.m.Mood(), f.m.Activity())
			}
		})
	}
}

func TestFeedThenPlayFiresOnce(t *testing.T) {
	f := newFixture(t, 4).placed(t)

	f.m.Feed()
	f.run(time.Second)
	f.m.PlayWith()
	f.pet.reset()

	// The snack deadline passes here; it must not fire.
	f.run(DefaultSnackDuration - time.Second + 100*time.Millisecond)
	if f.pet.count("material:happy") != 0 {
		t.Fatalf("Superseded snack timer fired: %v", f.pet.events)
	}
	if f.m.Activity() != ActivityPlay {
		t.Errorf("Expected play to still be running, got %s", f.m.Activity())
	}

	f.run(DefaultPlayDuration)
	if n := f.pet.count("material:happy"); n != 1 {
		t.Errorf("Expected exactly one Happy transition, got %d", n)
	}
	if n := f.pet.count("anim:Happy"); n != 1 {
		t.Errorf("Expected exactly one Happy animation, got %d", n)
	}
}

func TestSetMoodCancelsActivity(t *testing.T) {
	f := newFixture(t, 5).placed(t)
	f.m.Feed()
	f.m.SetMood(Sad)
	f.pet.reset()

	f.run(DefaultSnackDuration + time.Second)
	if f.m.Mood() != Sad {
		t.Errorf("Expected mood to stay Sad, got %s", f.m.Mood())
	}
	if f.pet.count("anim:Happy") != 0 {
		t.Errorf("Cancelled snack still reverted to Happy: %v", f.pet.events)
	}
}

func TestInitializeUniformMood(t *testing.T) {
	const trials = 4000
	counts := make(map[Mood]int)
	for seed := int64(0); seed < trials; seed++ {
		m := NewManager(Options{
			Status: &statusLine{},
			Rand:   rand.New(rand.NewSource(seed)),
			Clock:  (&fakeClock{t: time.Now()}).Now,
		})
		m.Initialize(&recorder{})
		counts[m.Mood()]++
	}

	expected := trials / len(BaseMoods)
	for _, mood := range BaseMoods {
		got := counts[mood]
		if got < expected*85/100 || got > expected*115/100 {
			t.Errorf("Mood %s picked %d times, expected about %d", mood, got, expected)
		}
	}
}

func TestInitializeAppliesMood(t *testing.T) {
	f := newFixture(t, 6)
	f.m.Initialize(f.pet)

	mood := f.m.Mood()
	if !mood.Valid() {
		t.Fatalf("Expected a base mood, got %d", mood)
	}
	cue := MoodCue(mood)
	if f.pet.count("material:"+cue.Visual.String()) != 1 {
		t.Errorf("Expected initial material to snap, got %v", f.pet.events)
	}
	if f.pet.count("anim:"+cue.Animation) != 1 {
		t.Errorf("Expected initial animation, got %v", f.pet.events)
	}
	if f.status.text != StatusPrefix+mood.String() {
		t.Errorf("Expected initial status, got %q", f.status.text)
	}
}

func TestPopDestroysOnce(t *testing.T) {
	f := newFixture(t, 7).placed(t)

	f.m.Pop()
	f.m.Pop()
	if f.pet.count("anim:Pop") != 1 || f.pet.count("clip:pop") != 1 {
		t.Errorf("Expected a single pop cue, got %v", f.pet.events)
	}
	if !f.m.Popping() {
		t.Error("Expected manager to be popping")
	}

	f.run(DefaultPopDelay - 50*time.Millisecond)
	if f.pet.destroyed != 0 {
		t.Fatal("Pet destroyed before pop delay")
	}

	f.run(time.Second)
	if f.pet.destroyed != 1 {
		t.Errorf("Expected pet destroyed exactly once, got %d", f.pet.destroyed)
	}
	if f.m.Bound() {
		t.Error("Expected manager to be unbound after pop")
	}

	f.m.Pop()
	f.run(time.Second)
	if f.pet.destroyed != 1 {
		t.Errorf("Pop on removed pet destroyed again: %d", f.pet.destroyed)
	}
}

func TestPopCancelsActivity(t *testing.T) {
	f := newFixture(t, 8).placed(t)
	f.m.Feed()
	f.m.Pop()
	f.run(DefaultSnackDuration + time.Second)

	if f.pet.count("anim:Happy") != 0 {
		t.Errorf("Snack reverted after pop: %v", f.pet.events)
	}
	if f.pet.destroyed != 1 {
		t.Errorf("Expected one destroy, got %d", f.pet.destroyed)
	}
}

func TestOperationsWhilePoppingIgnored(t *testing.T) {
	f := newFixture(t, 9).placed(t)
	f.m.Pop()
	f.pet.reset()

	f.m.SetMood(Happy)
	f.m.Feed()
	f.m.PlayWith()
	if len(f.pet.events) != 0 {
		t.Errorf("Expected no presentation calls while popping, got %v", f.pet.events)
	}
}

func TestUnboundOperationsNoOp(t *testing.T) {
	f := newFixture(t, 10)

	f.m.SetMood(Happy)
	f.m.Feed()
	f.m.PlayWith()
	f.m.Pop()
	f.run(5 * time.Second)

	if f.status.updates != 0 {
		t.Errorf("Expected no status updates when unbound, got %d", f.status.updates)
	}
	if f.m.Bound() || f.m.Activity() != ActivityNone {
		t.Error("Unbound manager changed state")
	}
}

func TestInitializeNilInstance(t *testing.T) {
	f := newFixture(t, 11)
	f.m.Initialize(nil)
	if f.m.Bound() {
		t.Error("Expected nil instance to leave manager unbound")
	}
}

func TestMissingHandlesDegrade(t *testing.T) {
	f := newFixture(t, 12)
	p := &partial{}
	f.m.Initialize(p)

	f.m.SetMood(Hungry)
	f.m.Feed()
	f.run(DefaultSnackDuration + time.Second)
	f.m.Pop()
	f.run(time.Second)

	want := []string{MoodCue(Hungry).Animation, AnimGiveSnack, AnimHappy, AnimPop}
	if len(p.anims) < len(want) {
		t.Fatalf("Expected animations %v, got %v", want, p.anims)
	}
	got := p.anims[len(p.anims)-len(want):]
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Expected animations %v, got %v", want, got)
	}
	if !p.destroyed {
		t.Error("Expected partial instance to be destroyed")
	}
}

func TestReinitializeClearsPending(t *testing.T) {
	f := newFixture(t, 13).placed(t)
	f.m.Feed()

	other := &recorder{}
	f.m.Initialize(other)
	other.reset()
	f.run(DefaultSnackDuration + time.Second)

	if f.m.Activity() != ActivityNone {
		t.Errorf("Expected no activity after reinitialize, got %s", f.m.Activity())
	}
	if other.count("anim:Happy") != 0 {
		t.Errorf("Old snack timer fired on new pet: %v", other.events)
	}
}

func TestInvalidMoodIgnored(t *testing.T) {
	f := newFixture(t, 14).placed(t)
	before := f.m.Mood()
	f.m.SetMood(Mood(42))
	if f.m.Mood() != before {
		t.Errorf("Expected mood unchanged, got %s", f.m.Mood())
	}
	if len(f.pet.events) != 0 {
		t.Errorf("Expected no presentation calls, got %v", f.pet.events)
	}
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
		ok   bool
	}{
		{"idle", Idle, true},
		{"Happy", Happy, true},
		{"SAD", Sad, true},
		{"hungry", Hungry, true},
		{"snack", Idle, false},
	}
	for _, tt := range tests {
		got, ok := ParseMood(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMood(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCueTablesComplete(t *testing.T) {
	for _, mood := range BaseMoods {
		if MoodCue(mood).Animation == "" {
			t.Errorf("Mood %s has no animation", mood)
		}
	}
	if MoodCue(Idle).Clip != ClipNone {
		t.Error("Idle should be silent")
	}
	for _, a := range []Activity{ActivitySnack, ActivityPlay} {
		cue := ActivityCue(a)
		if cue.Animation == "" || cue.Clip == ClipNone {
			t.Errorf("Activity %s has incomplete cue %+v", a, cue)
		}
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(map[string]string{"happy": "#00ff00"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Color(VisualHappy).Hex() != "#00ff00" {
		t.Errorf("Expected override, got %s", p.Color(VisualHappy).Hex())
	}
	if p.Color(VisualSad) != DefaultPalette().Color(VisualSad) {
		t.Error("Expected untouched slot to keep default")
	}

	if _, err := ParsePalette(map[string]string{"glow": "#ffffff"}); err == nil {
		t.Error("Expected error for unknown material")
	}
	if _, err := ParsePalette(map[string]string{"sad": "blue"}); err == nil {
		t.Error("Expected error for bad hex")
	}
}
