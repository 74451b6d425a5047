package game

import (
	"github.com/NaxiosMIV/Yeet/internal/netcfg"
	"github.com/NaxiosMIV/Yeet/internal/protocol"
)

// joinRoom tears down any prior socket and dials the room. The dial runs
// off the frame loop; the result arrives on connCh.
func (g *Game) joinRoom(room string) {
	if g.connectInFlight {
		return
	}
	if g.net != nil {
		_ = g.net.Close()
		g.net = nil
		g.inbox = nil
	}

	g.room = room
	g.resetRoomUI()
	g.connSt = stateConnecting
	g.connErrMsg = ""
	g.connectInFlight = true

	url := netcfg.WSURL(room, g.name, g.color)
	go func() {
		n, err := NewNet(url)
		g.connCh <- connResult{n: n, err: err}
	}()
}

// resetRoomUI clears per-game state when entering a room.
func (g *Game) resetRoomUI() {
	g.playerID = ""
	g.lastState = nil
	g.predicted = nil
	g.hand = make([]*string, rackSlots)
	g.lb = newLeaderboard()
	g.chatLog = nil
	g.chatInput = ""
	g.chatFocus = false
	g.dragActive = false
	g.dragSlot = -1
	g.countdown = 0
	g.turnSecs = 0
	g.gameOver = false
	g.finalText = ""
	g.qrImg = nil
	g.qrRoom = ""
	g.cam = NewCamera()
}

// send serializes one user intent. Intents while disconnected are dropped
// silently; there is no retry queue.
func (g *Game) send(msg protocol.ClientMsg) {
	if g.net == nil || g.net.IsClosed() {
		return
	}
	if err := g.net.Send(msg); err != nil {
		debugf("NET: send failed: %v", err)
	}
}

// onSocketClosed marks the session inactive. No automatic reconnect; the
// user goes back to the start screen to rejoin.
func (g *Game) onSocketClosed() {
	g.connSt = stateClosed
	g.inbox = nil
	g.setStatus("Connection lost")
}
