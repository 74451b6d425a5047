package game

import (
	"math"
	"testing"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	cams := []*Camera{
		{Zoom: baseCell},
		{X: 123.4, Y: -987.6, Zoom: 15},
		{X: -40000, Y: 40000, Zoom: 200},
		{X: 7.5, Y: 7.5, Zoom: 63},
	}
	points := [][2]float64{{0, 0}, {500, 400}, {999, 1}, {13.7, 777.2}}

	for _, cam := range cams {
		for _, p := range points {
			wx, wy := cam.ScreenToWorld(p[0], p[1], 1000, 800)
			sx, sy := cam.WorldToScreen(wx, wy, 1000, 800)
			if math.Abs(sx-p[0]) > 1e-6 || math.Abs(sy-p[1]) > 1e-6 {
				t.Fatalf("zoom=%v cam=(%v,%v): (%v,%v) -> (%v,%v)", cam.Zoom, cam.X, cam.Y, p[0], p[1], sx, sy)
			}
		}
	}
}

func TestTileAtMatchesDrawTransform(t *testing.T) {
	cam := &Camera{X: 260, Y: -130, Zoom: 55}
	// The screen point at the center of tile (3,4) must map back to (3,4).
	sx, sy := cam.WorldToScreen(3*baseCell+baseCell/2, 4*baseCell+baseCell/2, 1000, 800)
	tx, ty := cam.TileAt(sx, sy, 1000, 800)
	if tx != 3 || ty != 4 {
		t.Fatalf("want (3,4), got (%d,%d)", tx, ty)
	}
}

func TestZoomStaysClamped(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 500; i++ {
		cam.ZoomBy(1.1)
	}
	if cam.Zoom != zoomMax {
		t.Fatalf("want max %v, got %v", zoomMax, cam.Zoom)
	}
	for i := 0; i < 500; i++ {
		cam.ZoomBy(0.9)
	}
	if cam.Zoom != zoomMin {
		t.Fatalf("want min %v, got %v", zoomMin, cam.Zoom)
	}
	cam.ZoomBy(1.0000001)
	if cam.Zoom < zoomMin || cam.Zoom > zoomMax {
		t.Fatalf("zoom escaped range: %v", cam.Zoom)
	}
}

func TestPanScalesWithZoom(t *testing.T) {
	cam := &Camera{Zoom: 80} // 2x: screen pixels are half a world unit
	cam.StartDrag(100, 100)
	cam.DragTo(110, 100)
	if math.Abs(cam.X-(-5)) > 1e-9 {
		t.Fatalf("want X=-5, got %v", cam.X)
	}
}

func TestDragSuppressesClick(t *testing.T) {
	cam := NewCamera()
	cam.StartDrag(50, 50)
	if cam.EndDrag() {
		t.Fatal("no movement must not count as a drag")
	}
	cam.StartDrag(50, 50)
	cam.DragTo(51, 50)
	if !cam.EndDrag() {
		t.Fatal("movement must mark the gesture as a drag")
	}
}
