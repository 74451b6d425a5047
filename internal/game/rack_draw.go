package game

import (
	"math"
	"time"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawRack renders the rack strip, the trash/reroll controls, and any
// in-flight rack animations. Geometry comes from rackGeom so it always
// matches hit-testing.
func (g *Game) drawRack(dst *ebiten.Image) {
	rg := rackGeom(g.viewW, g.viewH)
	now := g.now()

	fillRect(dst, rg.region, colPanel)
	strokeRect(dst, rg.region, 1, colPanelLine)

	for i := 0; i < rackSlots; i++ {
		s := rg.slots[i]
		fillRect(dst, s, colBg)
		strokeRect(dst, s, 1, colPanelLine)

		if g.hand[i] == nil {
			continue
		}
		if g.dragActive && g.dragSlot == i {
			continue // drawn at the cursor below
		}

		size := float64(s.w)
		x := float64(s.x)
		y := float64(s.y) - g.hover[i].Value

		// Arrival pop: scale in from small.
		for _, a := range g.sched.Live(animArrival) {
			if a.Slot == i {
				p := a.progress(now)
				k := 0.6 + 0.4*easeOutBack(p)
				grown := size * k
				x += (size - grown) / 2
				y += (size - grown) / 2
				size = grown
			}
		}
		drawTileBox(dst, x, y, size, *g.hand[i], g.color, 1)
	}

	g.drawTrash(dst, rg)
	g.drawReroll(dst, rg, now)

	// Trash suck-in: the discarded letter shrinks toward the bin.
	for _, a := range g.sched.Live(animTrash) {
		p := a.progress(now)
		size := rackSlotSize * (1 - p)
		drawTileBox(dst, a.SX-size/2, a.SY-size/2, size, a.Letter, a.Color, 1-p)
	}

	// Dragged tile follows the cursor with its pickup offset.
	if g.dragActive && g.dragSlot >= 0 && g.hand[g.dragSlot] != nil {
		mx, my := g.cam.mouseX, g.cam.mouseY
		drawTileBox(dst, float64(mx-g.dragOffX), float64(my-g.dragOffY), rackSlotSize, *g.hand[g.dragSlot], g.color, 0.9)
	}
}

func (g *Game) drawTrash(dst *ebiten.Image, rg rackGeometry) {
	fillRect(dst, rg.trash, colDanger)
	f := fonts.Bold(20)
	drawTextCentered(dst, "X", f, rg.trash.x+rg.trash.w/2, rg.trash.y+rg.trash.h/2+7, colCell)
}

// drawReroll shows the reroll control; during cooldown a radial wedge
// counts down and the control is visually muted.
func (g *Game) drawReroll(dst *ebiten.Image, rg rackGeometry, now time.Time) {
	frac := g.rerollFrac(now)
	bg := colAccent
	if frac > 0 {
		bg = colInkSoft
	}
	fillRect(dst, rg.reroll, bg)
	f := fonts.Bold(20)
	drawTextCentered(dst, "R", f, rg.reroll.x+rg.reroll.w/2, rg.reroll.y+rg.reroll.h/2+7, colCell)

	if frac > 0 {
		cx := float32(rg.reroll.x + rg.reroll.w/2)
		cy := float32(rg.reroll.y + rg.reroll.h/2)
		radius := float32(rg.reroll.w) * 0.45

		var p vector.Path
		p.MoveTo(cx, cy)
		start := -math.Pi / 2
		p.Arc(cx, cy, radius, float32(start), float32(start+2*math.Pi*frac), vector.Clockwise)
		p.Close()

		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = 0
			vs[i].ColorG = 0
			vs[i].ColorB = 0
			vs[i].ColorA = 0.35
		}
		dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

func easeOutBack(p float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	q := p - 1
	return 1 + c3*q*q*q + c1*q*q
}

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(colCell)
	}
	return whiteImg
}
