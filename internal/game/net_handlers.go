package game

import (
	"fmt"

	"github.com/NaxiosMIV/Yeet/internal/protocol"
)

// handle dispatches one inbound frame. State mutation completes before
// anything renders; unknown types are dropped without error.
func (g *Game) handle(raw []byte) {
	msg, err := protocol.DecodeServer(raw)
	if err != nil {
		debugf("WS: bad frame: %v", err)
		return
	}
	now := g.now()

	switch m := msg.(type) {
	case protocol.Init:
		g.playerID = m.PlayerID
		g.applySnapshot(m.State)
		if g.lastState != nil && g.lastState.Started {
			g.scr = screenGame
		} else {
			g.scr = screenLobby
		}

	case protocol.Update:
		g.applySnapshot(m.State)

	case protocol.DrawnTiles:
		g.applySnapshot(m.State)

	case protocol.TileRemoved:
		// Animate only. The authoritative removal arrives in a follow-up
		// UPDATE; until then the renderer suppresses the animated tiles.
		for _, t := range m.Tiles {
			g.sched.Add(Anim{
				Kind:     animRemoval,
				Start:    now,
				Duration: removalDur,
				TileX:    t.X,
				TileY:    t.Y,
				Letter:   t.Letter,
				Color:    t.Color,
			})
		}

	case protocol.ChatRecv:
		g.pushChat(chatEntry{sender: m.Sender, message: m.Message, color: g.senderColor(m.SenderID)})

	case protocol.Timer:
		g.turnSecs = m.Time

	case protocol.GameStartCountdown:
		g.countdown = m.Seconds

	case protocol.GameStarted:
		g.countdown = 0
		g.scr = screenGame

	case protocol.GameOver:
		g.applySnapshot(m.State)
		g.gameOver = true
		g.finalText = g.winnerLine()

	case protocol.ErrorMsg:
		g.setStatus(m.Message)

	case nil:
		// unrecognized type
	}
}

// applySnapshot replaces the authoritative state, discards predictions,
// and diffs the rack so newly drawn letters get exactly one pop animation.
func (g *Game) applySnapshot(st *protocol.GameState) {
	if st == nil {
		return
	}
	prev := g.hand
	g.lastState = st
	g.predicted = nil

	if p, ok := st.Players[g.playerID]; ok && p.Hand != nil {
		next := make([]*string, rackSlots)
		copy(next, p.Hand)
		for i := 0; i < rackSlots; i++ {
			if next[i] != nil && (i >= len(prev) || prev[i] == nil) {
				g.sched.Add(Anim{
					Kind:     animArrival,
					Start:    g.now(),
					Duration: arrivalDur,
					Slot:     i,
					Letter:   *next[i],
				})
			}
		}
		g.hand = next
	}

	g.lb.apply(st.Players, g.now())
	if st.Settings != nil {
		g.settings = *st.Settings
	}
}

func (g *Game) senderColor(id string) string {
	if g.lastState != nil {
		if p, ok := g.lastState.Players[id]; ok {
			return p.Color
		}
	}
	return ""
}

func (g *Game) pushChat(e chatEntry) {
	g.chatLog = append([]chatEntry{e}, g.chatLog...)
	if len(g.chatLog) > chatLogCap {
		g.chatLog = g.chatLog[:chatLogCap]
	}
}

func (g *Game) winnerLine() string {
	if g.lastState == nil || len(g.lastState.Players) == 0 {
		return "Game over"
	}
	best := ""
	bestScore := -1
	for _, p := range g.lastState.Players {
		if p.Score > bestScore {
			best, bestScore = p.Name, p.Score
		}
	}
	return fmt.Sprintf("%s wins with %d points", best, bestScore)
}

// occupiedAt reports whether a board coordinate already holds a confirmed,
// pending, or locally predicted tile.
func (g *Game) occupiedAt(x, y int) bool {
	for _, t := range g.predicted {
		if t.X == x && t.Y == y {
			return true
		}
	}
	if g.lastState == nil {
		return false
	}
	for _, t := range g.lastState.Board {
		if t.X == x && t.Y == y {
			return true
		}
	}
	for _, t := range g.lastState.PendingTiles {
		if t.X == x && t.Y == y {
			return true
		}
	}
	return false
}
