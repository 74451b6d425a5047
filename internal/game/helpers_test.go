package game

import (
	"time"
)

// fakeNet records outbound intents instead of writing to a socket.
type fakeNet struct {
	sent   []any
	closed bool
}

func (f *fakeNet) Send(v any) error { f.sent = append(f.sent, v); return nil }
func (f *fakeNet) IsClosed() bool   { return f.closed }
func (f *fakeNet) Close() error     { f.closed = true; return nil }

// fakeClock drives g.now deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGame() (*Game, *fakeNet, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	net := &fakeNet{}
	g := &Game{
		scr:      screenGame,
		cam:      NewCamera(),
		sched:    NewScheduler(),
		lb:       newLeaderboard(),
		dragSlot: -1,
		hand:     make([]*string, rackSlots),
		net:      net,
		connSt:   stateConnected,
		playerID: "me",
		name:     "tester",
		color:    "#4f46e5",
		viewW:    1000,
		viewH:    800,
	}
	g.now = func() time.Time { return clk.t }
	for i := range g.hover {
		g.hover[i] = &Damper{}
		g.sched.Track(g.hover[i])
	}
	return g, net, clk
}

func strp(s string) *string { return &s }

// giveLetter fills a rack slot directly, as if drawn earlier.
func giveLetter(g *Game, slot int, letter string) {
	g.hand[slot] = strp(letter)
}
