package game

import (
	"time"

	"github.com/NaxiosMIV/Yeet/internal/protocol"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the application state container. It owns the socket, the last
// authoritative snapshot, and every piece of UI state; all mutation happens
// on the frame loop.
type Game struct {
	// connection/boot UI
	connCh          chan connResult
	connSt          connState
	connErrMsg      string
	connectInFlight bool

	net   sender
	inbox <-chan []byte

	auth   *AuthClient
	authCh chan authResult
	user   *AuthUser

	// identity / room
	scr      screen
	playerID string
	name     string
	color    string
	hue      int
	room     string

	// authoritative snapshot; overwritten wholesale on every update
	lastState *protocol.GameState

	// optimistic predictions, discarded on the next snapshot
	predicted []protocol.BoardTile

	// camera + pointer
	cam          *Camera
	viewW, viewH int

	// rack
	hand        []*string
	hover       [rackSlots]*Damper
	dragActive  bool
	dragSlot    int
	dragOffX    int
	dragOffY    int
	rerollUntil time.Time

	// animations
	sched *Scheduler

	// leaderboard
	lb *leaderboard

	// chat / activity log
	chatLog    []chatEntry
	chatInput  string
	chatFocus  bool
	statusMsg  string
	statusTill time.Time

	// start screen
	startMode  startMode // create vs join
	nameInput  string
	roomInput  string
	nameFocus  bool
	shakeUntil time.Time

	// lobby
	settings    protocol.Settings
	countdown   int
	qrImg       *ebiten.Image
	qrRoom      string
	copiedUntil time.Time

	// HUD
	turnSecs  int
	gameOver  bool
	finalText string

	// clock, swappable in tests
	now func() time.Time
}

type startMode int

const (
	modeCreate startMode = iota
	modeJoin
)

type chatEntry struct {
	sender  string
	message string
	color   string
}

// Options configures a new client.
type Options struct {
	Name string
	Room string
}

func New(opts Options) *Game {
	g := &Game{
		scr:       screenStart,
		name:      opts.Name,
		nameInput: opts.Name,
		roomInput: opts.Room,
		cam:       NewCamera(),
		sched:     NewScheduler(),
		lb:        newLeaderboard(),
		dragSlot:  -1,
		hand:      make([]*string, rackSlots),
		connCh:    make(chan connResult, 4),
		authCh:    make(chan authResult, 1),
		auth:      NewAuthClient(),
		color:     colorForHue(defaultHue),
		hue:       defaultHue,
		now:       time.Now,
	}
	if opts.Room != "" {
		g.startMode = modeJoin
		if g.name != "" {
			g.joinRoom(opts.Room)
		}
	}
	for i := range g.hover {
		g.hover[i] = &Damper{}
		g.sched.Track(g.hover[i])
	}
	go g.fetchSession()
	return g
}

// setStatus shows a transient status line (errors, copy feedback).
func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusTill = g.now().Add(3 * time.Second)
}

// myPlayer returns the local player's slice of the snapshot, if any.
func (g *Game) myPlayer() (protocol.PlayerState, bool) {
	if g.lastState == nil {
		return protocol.PlayerState{}, false
	}
	p, ok := g.lastState.Players[g.playerID]
	return p, ok
}
