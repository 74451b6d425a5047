package game

import (
	"image"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/NaxiosMIV/Yeet/internal/netcfg"
	"github.com/NaxiosMIV/Yeet/internal/protocol"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	qrcode "github.com/skip2/go-qrcode"
)

const roomCodeLen = 4

var (
	gameModes = []string{"classic", "infinite"}
	gameLangs = []string{"en", "ko"}
)

// randomRoomCode builds a short base-36 room code, upper-cased.
func randomRoomCode() string {
	const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, roomCodeLen)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}

// ---- start screen (create / join) ----

func (g *Game) startLayout() (panel, createTab, joinTab, nameBox, hueBtn, roomBox, startBtn, signOut rect) {
	w, h := 340, 300
	x := (g.viewW - w) / 2
	y := (g.viewH - h) / 2
	panel = rect{x, y, w, h}
	createTab = rect{x + 20, y + 20, (w - 48) / 2, btnH}
	joinTab = rect{x + 28 + (w-48)/2, y + 20, (w - 48) / 2, btnH}
	nameBox = rect{x + 20, y + 90, w - 48 - btnH, btnH}
	hueBtn = rect{x + w - 20 - btnH, y + 90, btnH, btnH}
	roomBox = rect{x + 20, y + 150, w - 40, btnH}
	startBtn = rect{x + 20, y + h - 60, w - 40, 40}
	signOut = rect{x + w/2 - 40, y + h + 32, 80, 20}
	return
}

func (g *Game) updateStart() {
	_, createTab, joinTab, nameBox, hueBtn, roomBox, startBtn, signOut := g.startLayout()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch {
		case createTab.hit(mx, my):
			g.startMode = modeCreate
		case joinTab.hit(mx, my):
			g.startMode = modeJoin
		case nameBox.hit(mx, my):
			g.nameFocus = true
		case hueBtn.hit(mx, my):
			g.cycleHue()
		case roomBox.hit(mx, my) && g.startMode == modeJoin:
			g.nameFocus = false
		case startBtn.hit(mx, my):
			g.pressStart()
		case signOut.hit(mx, my) && g.user != nil:
			g.pressSignOut()
		}
	}

	buf := &g.nameInput
	limit := 16
	if !g.nameFocus && g.startMode == modeJoin {
		buf = &g.roomInput
		limit = roomCodeLen
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r > ' ' && len(*buf) < limit {
			*buf += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(*buf) > 0 {
		*buf = (*buf)[:len(*buf)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.nameFocus = !g.nameFocus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.pressStart()
	}
}

// pressStart validates input locally; empty fields shake the panel and
// never reach the server.
func (g *Game) pressStart() {
	name := strings.TrimSpace(g.nameInput)
	if name == "" {
		g.shakeUntil = g.now().Add(400 * time.Millisecond)
		g.setStatus("Enter your name")
		g.sched.Start(g.now())
		return
	}
	room := randomRoomCode()
	if g.startMode == modeJoin {
		room = strings.ToUpper(strings.TrimSpace(g.roomInput))
		if room == "" {
			g.shakeUntil = g.now().Add(400 * time.Millisecond)
			g.setStatus("Enter room code")
			g.sched.Start(g.now())
			return
		}
	}
	g.name = name
	g.joinRoom(room)
}

func (g *Game) drawStart(dst *ebiten.Image) {
	dst.Fill(colBg)
	panel, createTab, joinTab, nameBox, hueBtn, roomBox, startBtn, signOut := g.startLayout()

	// Shake feedback on invalid input.
	if g.now().Before(g.shakeUntil) {
		left := float64(g.shakeUntil.Sub(g.now()).Milliseconds())
		dx := int(math.Sin(left/25) * 6)
		for _, r := range []*rect{&panel, &createTab, &joinTab, &nameBox, &hueBtn, &roomBox, &startBtn} {
			r.x += dx
		}
	}

	fillRect(dst, panel, colPanel)
	strokeRect(dst, panel, 1, colPanelLine)
	drawTextCentered(dst, "Yeet", fonts.Bold(28), panel.x+panel.w/2, panel.y-16, colInk)

	g.drawTab(dst, createTab, "Create", g.startMode == modeCreate)
	g.drawTab(dst, joinTab, "Join", g.startMode == modeJoin)

	g.drawInput(dst, nameBox, "Name", g.nameInput, g.nameFocus || g.startMode == modeCreate)
	fillRect(dst, hueBtn, parseHexColor(g.color, colAccent))
	strokeRect(dst, hueBtn, 1, colPanelLine)
	if g.startMode == modeJoin {
		g.drawInput(dst, roomBox, "Room code", g.roomInput, !g.nameFocus)
	}

	label := "+ Create New Room"
	if g.startMode == modeJoin {
		label = "> Join Room"
	}
	fillRect(dst, startBtn, colAccent)
	drawTextCentered(dst, label, fonts.Bold(16), startBtn.x+startBtn.w/2, startBtn.y+26, colCell)

	if g.user != nil {
		drawTextCentered(dst, "Signed in as "+g.user.Name, fonts.UI(13), panel.x+panel.w/2, panel.y+panel.h+24, colInkSoft)
		drawTextCentered(dst, "Sign out", fonts.UI(12), signOut.x+signOut.w/2, signOut.y+14, colAccent)
	}
	if g.statusMsg != "" && g.now().Before(g.statusTill) {
		drawTextCentered(dst, g.statusMsg, fonts.UI(14), panel.x+panel.w/2, panel.y+panel.h+72, colDanger)
	}
	if g.connSt == stateConnecting {
		drawTextCentered(dst, "Connecting...", fonts.UI(14), panel.x+panel.w/2, panel.y+panel.h+72, colInkSoft)
	}
}

func (g *Game) drawTab(dst *ebiten.Image, r rect, label string, active bool) {
	bg := colBg
	ink := colInkSoft
	if active {
		bg = colAccent
		ink = colCell
	}
	fillRect(dst, r, bg)
	drawTextCentered(dst, label, fonts.Bold(14), r.x+r.w/2, r.y+21, ink)
}

func (g *Game) drawInput(dst *ebiten.Image, r rect, placeholder, value string, focused bool) {
	fillRect(dst, r, colBg)
	border := colPanelLine
	if focused {
		border = colAccent
	}
	strokeRect(dst, r, 1, border)
	if value == "" {
		drawText(dst, placeholder, fonts.UI(14), r.x+8, r.y+21, colInkSoft)
		return
	}
	cursor := ""
	if focused {
		cursor = "_"
	}
	drawText(dst, value+cursor, fonts.UI(14), r.x+8, r.y+21, colInk)
}

// ---- in-room lobby (host flow) ----

func (g *Game) lobbyLayout() (panel, codeRow, modeBtn, langBtn, startBtn rect) {
	w, h := 380, 420
	x := (g.viewW - w) / 2
	y := (g.viewH - h) / 2
	panel = rect{x, y, w, h}
	codeRow = rect{x + 20, y + 20, w - 40, 36}
	modeBtn = rect{x + 20, y + h - 130, (w - 48) / 2, btnH}
	langBtn = rect{x + 28 + (w-48)/2, y + h - 130, (w - 48) / 2, btnH}
	startBtn = rect{x + 20, y + h - 60, w - 40, 40}
	return
}

func (g *Game) updateLobby() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, codeRow, modeBtn, langBtn, startBtn := g.lobbyLayout()

	switch {
	case codeRow.hit(mx, my):
		if err := clipboard.WriteAll(g.room); err != nil {
			log.Println("clipboard copy failed:", err)
		} else {
			g.copiedUntil = g.now().Add(2 * time.Second)
			g.sched.Start(g.now())
		}
	case modeBtn.hit(mx, my):
		g.settings.Mode = cycle(gameModes, g.settings.Mode)
		g.send(protocol.NewUpdateSettings(g.settings))
	case langBtn.hit(mx, my):
		g.settings.Lang = cycle(gameLangs, g.settings.Lang)
		g.send(protocol.NewUpdateSettings(g.settings))
	case startBtn.hit(mx, my):
		g.send(protocol.NewStartGame(g.settings))
	}
}

func cycle(opts []string, cur string) string {
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

func (g *Game) drawLobby(dst *ebiten.Image) {
	dst.Fill(colBg)
	panel, codeRow, modeBtn, langBtn, startBtn := g.lobbyLayout()

	fillRect(dst, panel, colPanel)
	strokeRect(dst, panel, 1, colPanelLine)

	fillRect(dst, codeRow, colBg)
	code := "Room " + g.room
	if g.now().Before(g.copiedUntil) {
		code = "Copied!"
	}
	drawTextCentered(dst, code, fonts.Bold(20), codeRow.x+codeRow.w/2, codeRow.y+25, colInk)
	drawTextCentered(dst, "click to copy", fonts.UI(11), codeRow.x+codeRow.w/2, codeRow.y+50, colInkSoft)

	// QR code encoding the join URL, rebuilt when the room changes.
	if img := g.roomQR(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(panel.x+panel.w/2-70), float64(codeRow.y+64))
		dst.DrawImage(img, op)
	}

	// Player list from the latest snapshot.
	y := codeRow.y + 220
	drawText(dst, "Players", fonts.Bold(14), panel.x+20, y, colInkSoft)
	y += 22
	for _, row := range g.lb.rows {
		sw := rect{panel.x + 20, y - 11, 12, 12}
		fillRect(dst, sw, parseHexColor(row.color, colAccent))
		name := row.name
		if row.id == g.playerID {
			name += " (you)"
		}
		drawText(dst, name, fonts.UI(14), panel.x+40, y, colInk)
		y += 20
	}

	g.drawTab(dst, modeBtn, "Mode: "+orDefault(g.settings.Mode, gameModes[0]), true)
	g.drawTab(dst, langBtn, "Lang: "+orDefault(g.settings.Lang, gameLangs[0]), true)

	fillRect(dst, startBtn, colGood)
	drawTextCentered(dst, "Start Game", fonts.Bold(16), startBtn.x+startBtn.w/2, startBtn.y+26, colCell)

	g.drawHUD(dst)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// roomQR lazily encodes the join URL for the current room.
func (g *Game) roomQR() *ebiten.Image {
	if g.room == "" {
		return nil
	}
	if g.qrImg != nil && g.qrRoom == g.room {
		return g.qrImg
	}
	q, err := qrcode.New(netcfg.APIBase+"/?room="+g.room, qrcode.Medium)
	if err != nil {
		log.Println("qr encode failed:", err)
		return nil
	}
	var src image.Image = q.Image(140)
	g.qrImg = ebiten.NewImageFromImage(src)
	g.qrRoom = g.room
	return g.qrImg
}
