package ui

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"balloonpet/internal/audio"
	"balloonpet/internal/config"
	"balloonpet/internal/pet"
	"balloonpet/internal/placement"
	"balloonpet/internal/scene"
)

// Layout of the screen. The plane starts below the header lines.
const (
	headerLines  = 3
	planeLeft    = 2
	artWidth     = 28
	defaultWidth = 32
	defaultDepth = 8
)

// Options configures the terminal host
type Options struct {
	Config config.Config
	Audio  *audio.Player // nil runs silently
	Rand   *rand.Rand
	Clock  func() time.Time
}

// Model represents the running scene
type Model struct {
	Scene    *scene.Scene
	Plane    placement.Plane
	CursorX  int
	CursorY  int
	Quitting bool

	stage *stage
	frame time.Duration
	now   func() time.Time
}

type frameMsg time.Time

// NewModel builds the state machine, the scene and the balloon host around
// cfg
func NewModel(opts Options) (Model, error) {
	palette, err := opts.Config.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("invalid materials: %w", err)
	}
	now := opts.Clock
	if now == nil {
		now = pet.TimeNow
	}

	st := &stage{now: now}
	var muter scene.Muter
	if opts.Audio != nil {
		st.audio = opts.Audio
		muter = opts.Audio
	}

	timings := opts.Config.PetTimings()
	pets := pet.NewManager(pet.Options{
		Timings: &timings,
		Palette: palette,
		Status:  st,
		Rand:    opts.Rand,
		Clock:   now,
	})
	sc := scene.New(scene.Options{
		Pets:          pets,
		Spawner:       st,
		Audio:         muter,
		Muted:         opts.Config.Audio.Muted,
		QuitDelay:     opts.Config.UI.QuitDelay.Duration,
		SlideDuration: opts.Config.UI.SlideDuration.Duration,
		Clock:         now,
	})

	m := Model{
		Scene: sc,
		Plane: placement.Plane{Left: planeLeft, Top: headerLines, Width: defaultWidth, Height: defaultDepth},
		stage: st,
		frame: opts.Config.UI.FrameInterval.Duration,
		now:   now,
	}
	m.CursorX, m.CursorY = m.Plane.Center()
	m.aim(m.CursorX, m.CursorY)
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return frame(m.frame)
}

func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
			return m, nil
		}
		m.aim(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.Scene.Tick(time.Time(msg))
		if m.Scene.Quit().Requested() {
			m.Quitting = true
			return m, tea.Quit
		}
		return m, frame(m.frame)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quit := m.Scene.Quit()

	switch msg.String() {
	case "ctrl+c":
		log.Printf("ui: interrupted")
		m.Quitting = true
		return m, tea.Quit
	case "q":
		m.Scene.OnQuitButton()
	case "esc", "n":
		if quit.Open() {
			m.Scene.OnQuitCancelled()
		}
	case "y":
		if quit.Open() {
			m.Scene.OnQuitConfirmed()
		}
	case "1", "2", "3", "4":
		m.Scene.OnMoodButton(pet.BaseMoods[int(msg.String()[0]-'1')])
	case "f":
		m.Scene.OnFeedButton()
	case "p":
		m.Scene.OnPlayButton()
	case "m":
		m.Scene.OnAudioToggle()
	case "tab":
		m.Scene.OnMenuToggle()
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "enter", " ":
		m.tap(m.CursorX, m.CursorY)
	}
	return m, nil
}

// aim updates the placement indicator from a screen cell
func (m *Model) aim(x, y int) {
	if hit, ok := m.Plane.Raycast(x, y); ok {
		m.Scene.OnSurfaceHit(&hit)
		return
	}
	m.Scene.OnSurfaceHit(nil)
}

func (m *Model) tap(x, y int) {
	hit, ok := m.Plane.Raycast(x, y)
	if !ok {
		return
	}
	m.CursorX, m.CursorY = x, y
	m.Scene.OnPlaneTapped(hit)
}

func (m *Model) moveCursor(dx, dy int) {
	m.CursorX = clamp(m.CursorX+dx, m.Plane.Left, m.Plane.Left+m.Plane.Width-1)
	m.CursorY = clamp(m.CursorY+dy, m.Plane.Top, m.Plane.Top+m.Plane.Height-1)
	m.aim(m.CursorX, m.CursorY)
}

// resize fits the plane to the terminal, leaving room for the balloon art
func (m *Model) resize(width, height int) {
	m.Plane.Width = clamp(width-planeLeft-artWidth, 8, 48)
	m.Plane.Height = clamp(height-headerLines-10, 4, 12)
	m.moveCursor(0, 0)
}

// Balloon returns the placed balloon, or nil before the first tap
func (m Model) Balloon() *Balloon {
	return m.stage.balloon
}

// Status returns the status line text
func (m Model) Status() string {
	return m.stage.status
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
