package game

import (
	"fmt"
	"image/color"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// drawHUD renders the turn timer, the start countdown, the transient
// status line, and the game-over overlay.
func (g *Game) drawHUD(dst *ebiten.Image) {
	fb := fonts.Bold(16)

	if g.turnSecs > 0 {
		c := colInk
		if g.turnSecs < 15 {
			c = colDanger
		}
		line := fmt.Sprintf("Your turn ends in %d:%02d", g.turnSecs/60, g.turnSecs%60)
		drawTextCentered(dst, line, fb, g.viewW/2, 28, c)
	}

	if g.room != "" {
		drawText(dst, "Room "+g.room, fonts.UI(14), g.viewW-110, 24, colInkSoft)
	}

	if g.statusMsg != "" && g.now().Before(g.statusTill) {
		drawTextCentered(dst, g.statusMsg, fonts.UI(14), g.viewW/2, 52, colDanger)
	}

	if g.countdown > 0 {
		g.dimScreen(dst)
		drawTextCentered(dst, fmt.Sprintf("%d", g.countdown), fonts.Bold(64), g.viewW/2, g.viewH/2, colCell)
		drawTextCentered(dst, "Game starting...", fb, g.viewW/2, g.viewH/2+40, colCell)
	}

	if g.connSt == stateClosed {
		g.dimScreen(dst)
		drawTextCentered(dst, "Connection lost", fonts.Bold(24), g.viewW/2, g.viewH/2-10, colCell)
		drawTextCentered(dst, "Restart the client to rejoin", fonts.UI(14), g.viewW/2, g.viewH/2+18, colCell)
	}

	if g.gameOver {
		g.dimScreen(dst)
		drawTextCentered(dst, "Game over", fonts.Bold(32), g.viewW/2, g.viewH/2-40, colCell)
		drawTextCentered(dst, g.finalText, fb, g.viewW/2, g.viewH/2, colCell)
	}
}

func (g *Game) dimScreen(dst *ebiten.Image) {
	fillRect(dst, rect{0, 0, g.viewW, g.viewH}, color.NRGBA{0, 0, 0, 140})
}
