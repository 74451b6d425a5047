package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update advances one frame: drains async results and inbound messages in
// arrival order, steps the animation scheduler, then routes input for the
// active screen. All state mutation happens here, before Draw reads it.
func (g *Game) Update() error {
	select {
	case res := <-g.authCh:
		if res.err == nil && res.user != nil {
			g.user = res.user
			if g.nameInput == "" {
				g.nameInput = res.user.Name
			}
			g.hue = res.user.ColorHue
			g.color = colorForHue(g.hue)
		}
	default:
	}

	select {
	case res := <-g.connCh:
		g.connectInFlight = false
		if res.err != nil {
			g.connSt = stateIdle
			g.connErrMsg = res.err.Error()
			g.setStatus("Could not join room")
			g.scr = screenStart
			break
		}
		g.net = res.n
		g.inbox = res.n.Incoming()
		g.connSt = stateConnected
		g.scr = screenLobby
	default:
	}

	// Each message is fully handled before the next one is read.
	if g.inbox != nil {
		for done := false; !done; {
			select {
			case raw, ok := <-g.inbox:
				if !ok {
					g.onSocketClosed()
					done = true
					break
				}
				g.handle(raw)
			default:
				done = true
			}
		}
	}

	if g.sched.Running() {
		g.sched.Step(g.now())
	}

	switch g.scr {
	case screenStart:
		g.updateStart()
	case screenLobby:
		g.updateLobby()
	case screenGame:
		g.updateGame()
	}
	return nil
}

// updateGame handles board/rack input: pan, zoom, drag placement, chat.
func (g *Game) updateGame() {
	mx, my := ebiten.CursorPosition()
	g.cam.mouseX, g.cam.mouseY = mx, my

	g.updateChat()
	if !g.chatFocus && inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.chatFocus = true
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !g.pointerOverRack(mx, my) {
		if wy > 0 {
			g.cam.ZoomBy(1.1)
		} else {
			g.cam.ZoomBy(0.9)
		}
	}

	rg := rackGeom(g.viewW, g.viewH)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.gameOver {
		switch {
		case slotAt(rg, mx, my) >= 0:
			g.startDrag(slotAt(rg, mx, my), mx, my)
		case rg.reroll.hit(mx, my):
			g.clickReroll()
		case rg.trash.hit(mx, my) || rg.region.hit(mx, my):
			// rack chrome, not a pan start
		default:
			g.cam.StartDrag(mx, my)
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.DragTo(mx, my)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.dragActive {
			g.finishDrag(mx, my)
		} else {
			g.cam.EndDrag()
		}
	}

	g.updateHover(mx, my)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.scr {
	case screenStart:
		g.drawStart(screen)
	case screenLobby:
		g.drawLobby(screen)
	case screenGame:
		g.drawBoard(screen)
		g.drawRack(screen)
		g.drawChat(screen)
		g.lb.draw(screen, g.playerID, g.now())
		g.drawHUD(screen)
	}
}

// Layout tracks the window size; the board canvas fills it.
func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW < 640 {
		outsideW = 640
	}
	if outsideH < 480 {
		outsideH = 480
	}
	g.viewW, g.viewH = outsideW, outsideH
	return outsideW, outsideH
}
