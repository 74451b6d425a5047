package game

import (
	"fmt"
	"sort"
	"time"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/NaxiosMIV/Yeet/internal/protocol"
	"github.com/hajimehoshi/ebiten/v2"
)

const lbFlashDur = 800 * time.Millisecond

type lbRow struct {
	id    string
	name  string
	score int
	color string
}

type lbFlash struct {
	at   time.Time
	gain bool
}

// leaderboard keeps the sorted player rows plus a side table of previous
// scores, used only to trigger the flash effect on change.
type leaderboard struct {
	rows    []lbRow
	prev    map[string]int
	flashes map[string]lbFlash
}

func newLeaderboard() *leaderboard {
	return &leaderboard{
		prev:    map[string]int{},
		flashes: map[string]lbFlash{},
	}
}

// apply rebuilds the rows from a snapshot, diffing scores against the
// previous one. Rows for players absent from the snapshot disappear.
func (lb *leaderboard) apply(players map[string]protocol.PlayerState, now time.Time) {
	lb.rows = lb.rows[:0]
	for id, p := range players {
		lb.rows = append(lb.rows, lbRow{id: id, name: p.Name, score: p.Score, color: p.Color})
		if old, ok := lb.prev[id]; ok && old != p.Score {
			lb.flashes[id] = lbFlash{at: now, gain: p.Score > old}
		}
		lb.prev[id] = p.Score
	}
	sort.SliceStable(lb.rows, func(i, j int) bool {
		if lb.rows[i].score != lb.rows[j].score {
			return lb.rows[i].score > lb.rows[j].score
		}
		return lb.rows[i].name < lb.rows[j].name
	})

	for id := range lb.prev {
		if _, ok := players[id]; !ok {
			delete(lb.prev, id)
			delete(lb.flashes, id)
		}
	}
}

// flashing reports a live flash for a row and whether it was a gain.
func (lb *leaderboard) flashing(id string, now time.Time) (float64, bool, bool) {
	f, ok := lb.flashes[id]
	if !ok {
		return 0, false, false
	}
	age := now.Sub(f.at)
	if age >= lbFlashDur {
		delete(lb.flashes, id)
		return 0, false, false
	}
	// 0 at the edges, 1 mid-flash.
	p := float64(age) / float64(lbFlashDur)
	if p > 0.5 {
		p = 1 - p
	}
	return p * 2, f.gain, true
}

func (lb *leaderboard) draw(dst *ebiten.Image, localID string, now time.Time) {
	const rowH = 30
	const rowW = 190
	x := pad
	y := pad

	f := fonts.UI(14)
	fb := fonts.Bold(14)

	for i, row := range lb.rows {
		r := rect{x, y + i*(rowH+4), rowW, rowH}
		bg := colPanel
		if row.id == localID {
			bg = mix(colPanel, colAccent, 0.12)
		}
		if p, gain, ok := lb.flashing(row.id, now); ok {
			to := colGood
			if !gain {
				to = colDanger
			}
			bg = mix(bg, to, 0.45*p)
		}
		fillRect(dst, r, bg)
		strokeRect(dst, r, 1, colPanelLine)

		name := row.name
		if row.id == localID {
			name += " (you)"
		}
		swatch := rect{r.x + 6, r.y + 9, 12, 12}
		fillRect(dst, swatch, parseHexColor(row.color, colAccent))
		drawText(dst, name, fb, r.x+24, r.y+20, colInk)
		score := fmt.Sprintf("%d p", row.score)
		drawText(dst, score, f, r.x+r.w-8-textWidth(score, f), r.y+20, colInkSoft)
	}
}
