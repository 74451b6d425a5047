package game

import (
	"time"

	"github.com/NaxiosMIV/Yeet/internal/protocol"
)

// rackGeometry is the single source of truth for rack layout; drawing and
// hit-testing both derive from it so they can never disagree.
type rackGeometry struct {
	slots  [rackSlots]rect
	region rect // whole rack strip including the action buttons
	trash  rect
	reroll rect
}

func rackGeom(viewW, viewH int) rackGeometry {
	var rg rackGeometry
	totalW := rackSlots*rackSlotSize + (rackSlots-1)*rackGap
	x0 := (viewW - totalW) / 2
	y := viewH - rackBottom - rackSlotSize

	for i := 0; i < rackSlots; i++ {
		rg.slots[i] = rect{x0 + i*(rackSlotSize+rackGap), y, rackSlotSize, rackSlotSize}
	}
	rg.trash = rect{x0 + totalW + 2*rackGap, y, rackSlotSize, rackSlotSize}
	rg.reroll = rect{rg.trash.x + rackSlotSize + rackGap, y, rackSlotSize, rackSlotSize}
	rg.region = rect{
		x0 - 2*rackGap,
		y - 2*rackGap,
		totalW + 3*rackSlotSize + 8*rackGap,
		rackSlotSize + 2*rackGap + rackBottom,
	}
	return rg
}

type dropAction int

const (
	dropNone   dropAction = iota // target occupied; tile stays put
	dropCancel                   // released over the rack; no-op
	dropTrash
	dropPlace
)

// resolveDrop decides what releasing a dragged tile does, in priority
// order: trash control, rack region, then board placement (rejected when
// the target coordinate is occupied).
func resolveDrop(mx, my int, rg rackGeometry, cam *Camera, viewW, viewH float64, occupied func(x, y int) bool) (dropAction, int, int) {
	if rg.trash.hit(mx, my) {
		return dropTrash, 0, 0
	}
	if rg.region.hit(mx, my) {
		return dropCancel, 0, 0
	}
	tx, ty := cam.TileAt(float64(mx), float64(my), viewW, viewH)
	if occupied(tx, ty) {
		return dropNone, 0, 0
	}
	return dropPlace, tx, ty
}

// startDrag begins dragging from a rack slot. Only non-empty slots can be
// picked up; the pointer offset keeps the tile from snapping to the cursor.
func (g *Game) startDrag(slot, mx, my int) bool {
	if slot < 0 || slot >= rackSlots || g.hand[slot] == nil {
		return false
	}
	rg := rackGeom(g.viewW, g.viewH)
	g.dragActive = true
	g.dragSlot = slot
	g.dragOffX = mx - rg.slots[slot].x
	g.dragOffY = my - rg.slots[slot].y
	return true
}

// finishDrag resolves a release and emits at most one intent. Placements
// and destroys clear the slot optimistically ahead of confirmation.
func (g *Game) finishDrag(mx, my int) {
	if !g.dragActive {
		return
	}
	slot := g.dragSlot
	g.dragActive = false
	g.dragSlot = -1

	letter := g.hand[slot]
	if letter == nil {
		return
	}
	rg := rackGeom(g.viewW, g.viewH)
	action, tx, ty := resolveDrop(mx, my, rg, g.cam, float64(g.viewW), float64(g.viewH), g.occupiedAt)

	switch action {
	case dropTrash:
		g.send(protocol.NewDestroyTile(slot))
		g.sched.Add(Anim{
			Kind:     animTrash,
			Start:    g.now(),
			Duration: trashDur,
			SX:       float64(rg.trash.x + rg.trash.w/2),
			SY:       float64(rg.trash.y + rg.trash.h/2),
			Letter:   *letter,
			Color:    g.color,
		})
		g.hand[slot] = nil

	case dropPlace:
		g.send(protocol.NewPlace(tx, ty, *letter, g.color, slot))
		g.predicted = append(g.predicted, protocol.BoardTile{X: tx, Y: ty, Letter: *letter, Color: g.color})
		g.sched.Add(Anim{
			Kind:     animJump,
			Start:    g.now(),
			Duration: jumpDur,
			TileX:    tx,
			TileY:    ty,
		})
		g.hand[slot] = nil

	case dropCancel, dropNone:
		// tile returns to its slot
	}
}

// clickReroll fires the reroll intent unless the cooldown is active.
func (g *Game) clickReroll() {
	now := g.now()
	if now.Before(g.rerollUntil) {
		return
	}
	g.send(protocol.NewRerollHand())
	g.rerollUntil = now.Add(rerollCooldown)
	g.sched.Start(now) // keep frames coming for the radial countdown
}

// rerollFrac returns the remaining cooldown fraction, 0 when ready.
func (g *Game) rerollFrac(now time.Time) float64 {
	left := g.rerollUntil.Sub(now)
	if left <= 0 {
		return 0
	}
	return clampF(float64(left)/float64(rerollCooldown), 0, 1)
}

// updateHover retargets the per-slot lift dampers from the pointer
// position and wakes the scheduler when a target moved.
func (g *Game) updateHover(mx, my int) {
	rg := rackGeom(g.viewW, g.viewH)
	changed := false
	for i := 0; i < rackSlots; i++ {
		target := 0.0
		if !g.dragActive && g.hand[i] != nil && rg.slots[i].hit(mx, my) {
			target = rackLiftPx
		}
		if g.hover[i].Target != target {
			g.hover[i].Target = target
			changed = true
		}
	}
	if changed {
		g.sched.Wake(g.now())
	}
}

// pointerOverRack gates the board ghost preview.
func (g *Game) pointerOverRack(mx, my int) bool {
	return rackGeom(g.viewW, g.viewH).region.hit(mx, my)
}

// slotAt returns the rack slot under the pointer, or -1.
func slotAt(rg rackGeometry, mx, my int) int {
	for i := 0; i < rackSlots; i++ {
		if rg.slots[i].hit(mx, my) {
			return i
		}
	}
	return -1
}
