package game

import "math"

// Camera maps between screen pixels and the infinite board plane.
// X/Y is the world-space focal point at the canvas center; Zoom is the
// on-screen pixel size of one cell, clamped to [zoomMin, zoomMax].
type Camera struct {
	X, Y float64
	Zoom float64

	isDragging  bool
	wasDragging bool
	lastMouseX  int
	lastMouseY  int
	mouseX      int
	mouseY      int
}

func NewCamera() *Camera {
	return &Camera{Zoom: baseCell}
}

// ScreenToWorld inverts the render transform
// (center-translate -> zoom-scale -> camera-translate).
func (c *Camera) ScreenToWorld(sx, sy, viewW, viewH float64) (float64, float64) {
	wx := (sx - viewW/2) * (baseCell / c.Zoom)
	wy := (sy - viewH/2) * (baseCell / c.Zoom)
	return wx + c.X, wy + c.Y
}

// WorldToScreen is the forward transform used when drawing.
func (c *Camera) WorldToScreen(wx, wy, viewW, viewH float64) (float64, float64) {
	sx := (wx - c.X) * (c.Zoom / baseCell)
	sy := (wy - c.Y) * (c.Zoom / baseCell)
	return sx + viewW/2, sy + viewH/2
}

// TileAt returns the integer tile index under a screen point.
func (c *Camera) TileAt(sx, sy, viewW, viewH float64) (int, int) {
	wx, wy := c.ScreenToWorld(sx, sy, viewW, viewH)
	return int(math.Floor(wx / baseCell)), int(math.Floor(wy / baseCell))
}

// visibleBounds returns the inclusive tile-index range covering the viewport.
func (c *Camera) visibleBounds(viewW, viewH float64) (x0, y0, x1, y1 int) {
	halfW := viewW / 2 * (baseCell / c.Zoom)
	halfH := viewH / 2 * (baseCell / c.Zoom)
	x0 = int(math.Floor((c.X - halfW) / baseCell))
	x1 = int(math.Ceil((c.X + halfW) / baseCell))
	y0 = int(math.Floor((c.Y - halfH) / baseCell))
	y1 = int(math.Ceil((c.Y + halfH) / baseCell))
	return
}

// StartDrag begins a pan gesture at a screen point.
func (c *Camera) StartDrag(mx, my int) {
	c.isDragging = true
	c.wasDragging = false
	c.lastMouseX, c.lastMouseY = mx, my
}

// DragTo pans the camera by the pointer delta. Any movement marks the
// gesture as a drag so release is not mistaken for a click.
func (c *Camera) DragTo(mx, my int) {
	if !c.isDragging {
		return
	}
	dx, dy := mx-c.lastMouseX, my-c.lastMouseY
	if dx != 0 || dy != 0 {
		c.wasDragging = true
	}
	c.X -= float64(dx) * (baseCell / c.Zoom)
	c.Y -= float64(dy) * (baseCell / c.Zoom)
	c.lastMouseX, c.lastMouseY = mx, my
}

// EndDrag finishes the gesture and reports whether it moved.
func (c *Camera) EndDrag() bool {
	c.isDragging = false
	return c.wasDragging
}

// ZoomBy applies a multiplicative zoom step anchored at the canvas center.
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = clampF(c.Zoom*factor, zoomMin, zoomMax)
}
