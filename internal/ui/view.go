package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"balloonpet/internal/pet"
)

var sceneStyles = struct {
	title     lipgloss.Style
	status    lipgloss.Style
	plane     lipgloss.Style
	indicator lipgloss.Style
	cursor    lipgloss.Style
	menu      lipgloss.Style
	menuBox   lipgloss.Style
	quitBox   lipgloss.Style
	help      lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	plane: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4B5563")),

	indicator: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22D3EE")),

	cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F9FAFB")),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	quitBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF0000")).
		Padding(0, 2),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")),
}

var menuItems = []string{
	"[1] Idle   [2] Happy",
	"[3] Sad    [4] Hungry",
	"[f] Feed   [p] Play",
	"[m] Sound  [q] Quit",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Bye!\n"
	}

	// The header must stay headerLines tall so the plane lines up with
	// mouse coordinates.
	header := []string{
		sceneStyles.title.Render("🎈 Balloon Pet"),
		sceneStyles.status.Render(m.renderStatus()),
		"",
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderPlane(), "  ", m.renderBalloon())

	sections := append(header, body, "", m.renderMenu())
	if m.Scene.Quit().Open() {
		sections = append(sections, "", sceneStyles.quitBox.Render("Pop the balloon and quit? [y/n]"))
	}
	sections = append(sections, "", sceneStyles.help.Render(m.helpText()))

	return strings.Join(sections, "\n")
}

func (m Model) renderStatus() string {
	if m.Status() == "" {
		return "Tap the plane to place your balloon"
	}
	return m.Status()
}

func (m Model) renderPlane() string {
	balloonX, balloonY := -1, -1
	var balloonStyle lipgloss.Style
	if b := m.Balloon(); b != nil && !b.Removed() {
		balloonX, balloonY = m.Plane.Cell(b.Pose())
		balloonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(b.Tint().Hex()))
	}

	indicatorX, indicatorY := -1, -1
	if ind := m.Scene.Indicator(); ind.Visible() {
		indicatorX, indicatorY = m.Plane.Cell(ind.Pose())
	}

	pad := strings.Repeat(" ", m.Plane.Left)
	rows := make([]string, 0, m.Plane.Height)
	for y := m.Plane.Top; y < m.Plane.Top+m.Plane.Height; y++ {
		var row strings.Builder
		row.WriteString(pad)
		for x := m.Plane.Left; x < m.Plane.Left+m.Plane.Width; x++ {
			switch {
			case x == balloonX && y == balloonY:
				row.WriteString(balloonStyle.Render("●"))
			case x == indicatorX && y == indicatorY:
				row.WriteString(sceneStyles.indicator.Render("◎"))
			case x == m.CursorX && y == m.CursorY:
				row.WriteString(sceneStyles.cursor.Render("+"))
			default:
				row.WriteString(sceneStyles.plane.Render("·"))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderBalloon() string {
	b := m.Balloon()
	if b == nil {
		return ""
	}
	art := GetAnimationFrame(b.Animation(), m.now())
	if b.Removed() {
		frames := AnimationFrames[pet.AnimPop]
		art = frames[len(frames)-1]
	}
	style := lipgloss.NewStyle().
		Width(artWidth).
		Foreground(lipgloss.Color(b.Tint().Hex()))
	return style.Render(strings.TrimPrefix(art, "\n"))
}

// renderMenu draws as many menu rows as the slide offset uncovers
func (m Model) renderMenu() string {
	audio := "Sound: " + m.Scene.Audio().Label()
	menu := m.Scene.Menu()
	shown := int(math.Round(menu.Offset() * float64(len(menuItems))))
	if shown == 0 {
		return sceneStyles.menu.Render(audio + "   [tab] menu")
	}

	lines := []string{audio}
	lines = append(lines, menuItems[:shown]...)
	return sceneStyles.menuBox.Render(sceneStyles.menu.Render(strings.Join(lines, "\n")))
}

func (m Model) helpText() string {
	if m.Scene.Quit().Open() {
		return "y to pop and quit • n to stay"
	}
	if m.Balloon() == nil || m.Balloon().Removed() {
		return "arrows to aim • enter to place • q to quit"
	}
	return "arrows to aim • enter to move • tab for menu • q to quit"
}
