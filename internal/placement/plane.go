package placement

// Plane is a detected horizontal surface laid out on screen cells
type Plane struct {
	Left, Top     int
	Width, Height int
	Elevation     float64
}

// Contains reports whether screen cell (x, y) lies on the plane
func (pl Plane) Contains(x, y int) bool {
	return x >= pl.Left && x < pl.Left+pl.Width && y >= pl.Top && y < pl.Top+pl.Height
}

// Raycast maps a screen cell to a pose on the plane
func (pl Plane) Raycast(x, y int) (Pose, bool) {
	if pl.Width <= 0 || pl.Height <= 0 || !pl.Contains(x, y) {
		return Pose{}, false
	}
	return Pose{
		Position: Vec3{
			X: float64(x - pl.Left),
			Y: pl.Elevation,
			Z: float64(y - pl.Top),
		},
	}, true
}

// Center returns the screen cell at the middle of the plane
func (pl Plane) Center() (int, int) {
	return pl.Left + pl.Width/2, pl.Top + pl.Height/2
}

// Cell converts a pose back to its screen cell
func (pl Plane) Cell(p Pose) (int, int) {
	return pl.Left + int(p.Position.X), pl.Top + int(p.Position.Z)
}

// Indicator marks where a pet would land. It stays hidden until the first
// hit and then keeps its last pose.
type Indicator struct {
	visible bool
	pose    Pose
}

// Update moves the indicator to hit; nil means the raycast missed
func (i *Indicator) Update(hit *Pose) {
	if hit == nil {
		return
	}
	i.pose = *hit
	i.visible = true
}

// Visible reports whether the indicator has found a surface
func (i *Indicator) Visible() bool { return i.visible }

// Pose returns the indicator's last pose
func (i *Indicator) Pose() Pose { return i.pose }
