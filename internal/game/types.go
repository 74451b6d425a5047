package game

import "time"

// ---- Core enums / layout constants ----

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateClosed
)

type screen int

const (
	screenStart screen = iota
	screenLobby
	screenGame
)

const (
	// World geometry. One board cell is baseCell world units; zoom is the
	// on-screen pixel size of a cell.
	baseCell = 40.0
	zoomMin  = 15.0
	zoomMax  = 200.0

	// Rack geometry, shared by drawing and hit-testing.
	rackSlots    = 10
	rackSlotSize = 48
	rackGap      = 8
	rackBottom   = 24
	rackLiftPx   = 10.0

	rerollCooldown = 3 * time.Second

	// Animation durations.
	removalDur = 450 * time.Millisecond
	arrivalDur = 300 * time.Millisecond
	jumpDur    = 350 * time.Millisecond
	trashDur   = 250 * time.Millisecond

	chatLogCap = 20

	pad  = 8
	btnW = 120
	btnH = 32
)

// ---- Small utility types ----

type rect struct{ x, y, w, h int }

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx <= r.x+r.w && my >= r.y && my <= r.y+r.h
}

// Used by async connection and auth lookups.
type connResult struct {
	n   *Net
	err error
}

type authResult struct {
	user *AuthUser
	err  error
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Standard letter values, shown in the tile corner.
var letterPoints = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
	'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
	'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
	'Y': 4, 'Z': 10,
}
