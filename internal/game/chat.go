package game

import (
	"strings"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/NaxiosMIV/Yeet/internal/protocol"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// chatInputRect is the clickable chat entry box, bottom-left.
func (g *Game) chatInputRect() rect {
	return rect{pad, g.viewH - rackBottom - 28, 230, 26}
}

// updateChat handles typing and Enter-to-send. While the chat box has
// focus, keys are not interpreted as game input.
func (g *Game) updateChat() {
	if !g.chatFocus {
		return
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= ' ' && len(g.chatInput) < 200 {
			g.chatInput += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.chatInput) > 0 {
		g.chatInput = g.chatInput[:len(g.chatInput)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.chatFocus = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		msg := strings.TrimSpace(g.chatInput)
		if msg != "" {
			g.send(protocol.NewChat(msg))
		}
		g.chatInput = ""
		g.chatFocus = false
	}
}

// drawChat renders the activity log (newest first) above the input box.
func (g *Game) drawChat(dst *ebiten.Image) {
	in := g.chatInputRect()
	fillRect(dst, in, colPanel)
	border := colPanelLine
	if g.chatFocus {
		border = colAccent
	}
	strokeRect(dst, in, 1, border)

	f := fonts.UI(13)
	fb := fonts.Bold(13)
	prompt := g.chatInput
	if prompt == "" && !g.chatFocus {
		drawText(dst, "Press T to chat", f, in.x+6, in.y+17, colInkSoft)
	} else {
		cursor := ""
		if g.chatFocus {
			cursor = "_"
		}
		drawText(dst, prompt+cursor, f, in.x+6, in.y+17, colInk)
	}

	y := in.y - 10
	for _, e := range g.chatLog {
		if y < g.viewH/2 {
			break
		}
		c := parseHexColor(e.color, colAccent)
		drawText(dst, e.sender, fb, in.x, y, c)
		drawText(dst, e.message, f, in.x+textWidth(e.sender, fb)+6, y, colInk)
		y -= 18
	}
}
