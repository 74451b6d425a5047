package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawBoard redraws the whole canvas: background grid, confirmed tiles,
// pending tiles, the ghost preview, and board-space animations. It reads
// state only, so it is safe to call every frame.
func (g *Game) drawBoard(dst *ebiten.Image) {
	dst.Fill(colBg)
	vw, vh := float64(g.viewW), float64(g.viewH)
	cell := g.cam.Zoom
	now := g.now()

	x0, y0, x1, y1 := g.cam.visibleBounds(vw, vh)

	// Background cells, viewport-culled.
	for tx := x0; tx <= x1; tx++ {
		for ty := y0; ty <= y1; ty++ {
			sx, sy := g.cam.WorldToScreen(float64(tx)*baseCell, float64(ty)*baseCell, vw, vh)
			vector.DrawFilledRect(dst, float32(sx+1), float32(sy+1), float32(cell-2), float32(cell-2), colCell, true)
			vector.StrokeRect(dst, float32(sx), float32(sy), float32(cell), float32(cell), 1, colCellLine, true)
		}
	}

	inView := func(tx, ty int) bool {
		return tx >= x0 && tx <= x1 && ty >= y0 && ty <= y1
	}

	// Confirmed tiles. Tiles mid removal-animation are suppressed so they
	// cannot flicker back before the authoritative UPDATE lands.
	if g.lastState != nil {
		for _, t := range g.lastState.Board {
			if !inView(t.X, t.Y) || g.sched.RemovalAt(t.X, t.Y) {
				continue
			}
			sx, sy := g.cam.WorldToScreen(float64(t.X)*baseCell, float64(t.Y)*baseCell, vw, vh)
			sy += g.jumpOffset(t.X, t.Y, now) * cell
			drawTileBox(dst, sx+1, sy+1, cell-2, t.Letter, t.Color, 1)
		}
		for _, t := range g.lastState.PendingTiles {
			if !inView(t.X, t.Y) {
				continue
			}
			sx, sy := g.cam.WorldToScreen(float64(t.X)*baseCell, float64(t.Y)*baseCell, vw, vh)
			drawTileBox(dst, sx+1, sy+1, cell-2, t.Letter, t.Color, 0.55)
		}
	}

	// Locally predicted placements, awaiting confirmation.
	for _, t := range g.predicted {
		if !inView(t.X, t.Y) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(float64(t.X)*baseCell, float64(t.Y)*baseCell, vw, vh)
		sy += g.jumpOffset(t.X, t.Y, now) * cell
		drawTileBox(dst, sx+1, sy+1, cell-2, t.Letter, t.Color, 0.55)
	}

	// Ghost preview under the pointer, unless it is over the rack.
	mx, my := g.cam.mouseX, g.cam.mouseY
	if !g.pointerOverRack(mx, my) && !g.dragActive {
		tx, ty := g.cam.TileAt(float64(mx), float64(my), vw, vh)
		if !g.occupiedAt(tx, ty) {
			sx, sy := g.cam.WorldToScreen(float64(tx)*baseCell, float64(ty)*baseCell, vw, vh)
			drawTileBox(dst, sx+1, sy+1, cell-2, "", g.color, 0.25)
		}
	}

	// Removal explosions: the tile scales up and fades out in place.
	for _, a := range g.sched.Live(animRemoval) {
		if !inView(a.TileX, a.TileY) {
			continue
		}
		p := a.progress(now)
		scale := 1 + 0.6*p
		size := (cell - 2) * scale
		sx, sy := g.cam.WorldToScreen(float64(a.TileX)*baseCell, float64(a.TileY)*baseCell, vw, vh)
		off := (size - (cell - 2)) / 2
		drawTileBox(dst, sx+1-off, sy+1-off, size, a.Letter, a.Color, 1-p)
	}
}

// jumpOffset returns the wiggle-jump vertical offset (in cells) for a
// freshly placed tile, zero when no jump is live there.
func (g *Game) jumpOffset(tx, ty int, now time.Time) float64 {
	for _, a := range g.sched.Live(animJump) {
		if a.TileX == tx && a.TileY == ty {
			p := a.progress(now)
			return -0.18 * math.Sin(p*math.Pi)
		}
	}
	return 0
}
