package game

import (
	"testing"
	"time"

	"github.com/NaxiosMIV/Yeet/internal/protocol"
)

func TestResolveDropPriority(t *testing.T) {
	g, _, _ := newTestGame()
	rg := rackGeom(g.viewW, g.viewH)
	occupied := func(x, y int) bool { return x == 0 && y == 0 }

	// Trash wins even though it sits inside the rack region.
	a, _, _ := resolveDrop(rg.trash.x+1, rg.trash.y+1, rg, g.cam, 1000, 800, occupied)
	if a != dropTrash {
		t.Fatalf("want trash, got %v", a)
	}

	a, _, _ = resolveDrop(rg.slots[0].x+1, rg.slots[0].y+1, rg, g.cam, 1000, 800, occupied)
	if a != dropCancel {
		t.Fatalf("want cancel over rack, got %v", a)
	}

	// Canvas center is world origin = tile (0,0), which is occupied.
	a, _, _ = resolveDrop(501, 401, rg, g.cam, 1000, 800, occupied)
	if a != dropNone {
		t.Fatalf("want none over occupied tile, got %v", a)
	}

	a, tx, ty := resolveDrop(501+baseCell, 401, rg, g.cam, 1000, 800, occupied)
	if a != dropPlace || tx != 1 || ty != 0 {
		t.Fatalf("want place at (1,0), got %v (%d,%d)", a, tx, ty)
	}
}

func TestDragToOccupiedTileIsNoop(t *testing.T) {
	g, net, _ := newTestGame()
	giveLetter(g, 2, "Q")
	g.lastState = &protocol.GameState{
		Board: []protocol.BoardTile{{X: 0, Y: 0, Letter: "A", Color: "#fff"}},
	}

	rg := rackGeom(g.viewW, g.viewH)
	if !g.startDrag(2, rg.slots[2].x+10, rg.slots[2].y+10) {
		t.Fatal("drag from a full slot must start")
	}
	g.finishDrag(500, 400) // center = tile (0,0), occupied

	if len(net.sent) != 0 {
		t.Fatalf("no message may be sent, got %v", net.sent)
	}
	if g.hand[2] == nil || *g.hand[2] != "Q" {
		t.Fatal("rack slot must be unchanged")
	}
}

func TestDragToEmptyTilePlacesOptimistically(t *testing.T) {
	g, net, _ := newTestGame()
	giveLetter(g, 2, "Q")
	// Aim at tile (3,4): center of that tile in screen space.
	sx, sy := g.cam.WorldToScreen(3*baseCell+20, 4*baseCell+20, 1000, 800)

	rg := rackGeom(g.viewW, g.viewH)
	g.startDrag(2, rg.slots[2].x+10, rg.slots[2].y+10)
	g.finishDrag(int(sx), int(sy))

	if len(net.sent) != 1 {
		t.Fatalf("want exactly one message, got %d", len(net.sent))
	}
	p, ok := net.sent[0].(protocol.Place)
	if !ok {
		t.Fatalf("want Place, got %T", net.sent[0])
	}
	if p.X != 3 || p.Y != 4 || p.Letter != "Q" || p.HandIndex != 2 {
		t.Fatalf("bad place: %+v", p)
	}
	if g.hand[2] != nil {
		t.Fatal("slot must clear before server confirmation")
	}
	if !g.occupiedAt(3, 4) {
		t.Fatal("predicted tile must block further placement")
	}
}

func TestDragFromEmptySlotRefused(t *testing.T) {
	g, _, _ := newTestGame()
	if g.startDrag(0, 0, 0) {
		t.Fatal("empty slot must not start a drag")
	}
}

func TestDropOnTrashDestroys(t *testing.T) {
	g, net, _ := newTestGame()
	giveLetter(g, 7, "Z")
	rg := rackGeom(g.viewW, g.viewH)

	g.startDrag(7, rg.slots[7].x+5, rg.slots[7].y+5)
	g.finishDrag(rg.trash.x+rg.trash.w/2, rg.trash.y+rg.trash.h/2)

	if len(net.sent) != 1 {
		t.Fatalf("want one message, got %d", len(net.sent))
	}
	d, ok := net.sent[0].(protocol.DestroyTile)
	if !ok || d.HandIndex != 7 {
		t.Fatalf("want DestroyTile slot 7, got %T %+v", net.sent[0], net.sent[0])
	}
	if g.hand[7] != nil {
		t.Fatal("slot must clear optimistically")
	}
	if len(g.sched.Live(animTrash)) != 1 {
		t.Fatal("want one trash animation")
	}
}

func TestDropBackOnRackCancels(t *testing.T) {
	g, net, _ := newTestGame()
	giveLetter(g, 1, "E")
	rg := rackGeom(g.viewW, g.viewH)

	g.startDrag(1, rg.slots[1].x+5, rg.slots[1].y+5)
	g.finishDrag(rg.slots[4].x+5, rg.slots[4].y+5)

	if len(net.sent) != 0 {
		t.Fatalf("cancel must not send, got %v", net.sent)
	}
	if g.hand[1] == nil {
		t.Fatal("tile must return to its slot")
	}
}

func TestRerollCooldown(t *testing.T) {
	g, net, clk := newTestGame()

	g.clickReroll()
	if len(net.sent) != 1 {
		t.Fatalf("want one reroll, got %d", len(net.sent))
	}

	clk.advance(time.Second)
	g.clickReroll() // still cooling down
	if len(net.sent) != 1 {
		t.Fatalf("cooldown click must be ignored, got %d", len(net.sent))
	}
	if g.rerollFrac(clk.t) <= 0 {
		t.Fatal("cooldown fraction must be positive")
	}

	clk.advance(3 * time.Second)
	if g.rerollFrac(clk.t) != 0 {
		t.Fatal("cooldown must expire")
	}
	g.clickReroll()
	if len(net.sent) != 2 {
		t.Fatalf("want second reroll after cooldown, got %d", len(net.sent))
	}
}

func TestHoverLiftTargetsFollowPointer(t *testing.T) {
	g, _, _ := newTestGame()
	giveLetter(g, 0, "A")
	rg := rackGeom(g.viewW, g.viewH)

	g.updateHover(rg.slots[0].x+5, rg.slots[0].y+5)
	if g.hover[0].Target != rackLiftPx {
		t.Fatalf("hovered slot must lift, target=%v", g.hover[0].Target)
	}
	if !g.sched.Running() {
		t.Fatal("scheduler must wake for the lift")
	}

	g.updateHover(0, 0)
	if g.hover[0].Target != 0 {
		t.Fatal("lift must ease back when pointer leaves")
	}

	// Empty slots never lift.
	g.updateHover(rg.slots[3].x+5, rg.slots[3].y+5)
	if g.hover[3].Target != 0 {
		t.Fatal("empty slot must not lift")
	}
}

func TestSilentDropWhileDisconnected(t *testing.T) {
	g, net, _ := newTestGame()
	net.closed = true
	giveLetter(g, 0, "A")
	rg := rackGeom(g.viewW, g.viewH)

	g.startDrag(0, rg.slots[0].x+5, rg.slots[0].y+5)
	sx, sy := g.cam.WorldToScreen(5*baseCell+20, 5*baseCell+20, 1000, 800)
	g.finishDrag(int(sx), int(sy))

	if len(net.sent) != 0 {
		t.Fatalf("disconnected intents must be dropped, got %v", net.sent)
	}
}
