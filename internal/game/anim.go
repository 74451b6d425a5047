package game

import (
	"math"
	"time"
)

type animKind int

const (
	animRemoval animKind = iota // board tile explosion
	animArrival                 // rack slot pop
	animJump                    // board tile wiggle
	animTrash                   // rack tile sucked into the bin
)

// Anim is one time-boxed animation record. TileX/TileY address the board
// for removal/jump; Slot addresses the rack for arrival; SX/SY are the
// screen coordinates a trashed tile shrinks toward.
type Anim struct {
	Kind     animKind
	Start    time.Time
	Duration time.Duration

	TileX, TileY int
	Slot         int
	SX, SY       float64
	Letter       string
	Color        string
}

func (a Anim) done(now time.Time) bool {
	return !now.Before(a.Start.Add(a.Duration))
}

// progress returns 0..1 over the animation's lifetime.
func (a Anim) progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.Start)) / float64(a.Duration)
	return clampF(p, 0, 1)
}

// Damper eases a value toward its target every step. Used for the rack
// hover lift; the scheduler keeps running until every damper settles.
type Damper struct {
	Value  float64
	Target float64
}

const damperEps = 0.01

func (d *Damper) step(dt float64) {
	k := 1 - math.Exp(-12*dt)
	d.Value += (d.Target - d.Value) * k
	if math.Abs(d.Target-d.Value) < damperEps {
		d.Value = d.Target
	}
}

func (d *Damper) settled() bool {
	return math.Abs(d.Target-d.Value) < damperEps
}

type schedState int

const (
	schedIdle schedState = iota
	schedRunning
)

// Scheduler owns the animation list and drives it from the frame loop.
// It is started lazily when a record or an unsettled damper appears and
// moves back to Idle once everything has expired or settled, so the game
// does not pay for animation bookkeeping at rest.
type Scheduler struct {
	state    schedState
	anims    []Anim
	dampers  []*Damper
	lastStep time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Running() bool { return s.state == schedRunning }

// Start moves the scheduler to Running. Calling it while already running
// is a no-op.
func (s *Scheduler) Start(now time.Time) {
	if s.state == schedRunning {
		return
	}
	s.state = schedRunning
	s.lastStep = now
}

// Add enqueues a record and makes sure the loop is running.
func (s *Scheduler) Add(a Anim) {
	s.anims = append(s.anims, a)
	s.Start(a.Start)
}

// Track registers a damper for stepping. Dampers stay registered for the
// life of the owner; an unsettled one keeps the scheduler alive.
func (s *Scheduler) Track(d *Damper) {
	s.dampers = append(s.dampers, d)
}

// Wake restarts the loop after a damper target changed.
func (s *Scheduler) Wake(now time.Time) {
	for _, d := range s.dampers {
		if !d.settled() {
			s.Start(now)
			return
		}
	}
}

// Step advances one frame: prunes expired records, steps dampers, and
// reports whether anything is still live. When nothing is, the scheduler
// stops itself.
func (s *Scheduler) Step(now time.Time) bool {
	if s.state != schedRunning {
		return false
	}
	dt := now.Sub(s.lastStep).Seconds()
	s.lastStep = now
	if dt < 0 {
		dt = 0
	}

	kept := s.anims[:0]
	for _, a := range s.anims {
		if !a.done(now) {
			kept = append(kept, a)
		}
	}
	s.anims = kept

	settled := true
	for _, d := range s.dampers {
		d.step(dt)
		if !d.settled() {
			settled = false
		}
	}

	if len(s.anims) == 0 && settled {
		s.state = schedIdle
		return false
	}
	return true
}

// Live returns the records of one kind still in flight.
func (s *Scheduler) Live(kind animKind) []Anim {
	var out []Anim
	for _, a := range s.anims {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// RemovalAt reports whether a removal animation is playing for a board
// coordinate. The renderer suppresses the underlying tile while it is.
func (s *Scheduler) RemovalAt(x, y int) bool {
	for _, a := range s.anims {
		if a.Kind == animRemoval && a.TileX == x && a.TileY == y {
			return true
		}
	}
	return false
}
