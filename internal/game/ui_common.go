package game

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/NaxiosMIV/Yeet/internal/game/assets/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const defaultHue = 230

var (
	colBg        = color.NRGBA{241, 245, 249, 255}
	colCell      = color.NRGBA{255, 255, 255, 255}
	colCellLine  = color.NRGBA{226, 232, 240, 255}
	colPanel     = color.NRGBA{255, 255, 255, 245}
	colPanelLine = color.NRGBA{203, 213, 225, 255}
	colInk       = color.NRGBA{30, 41, 59, 255}
	colInkSoft   = color.NRGBA{100, 116, 139, 255}
	colAccent    = color.NRGBA{79, 70, 229, 255}
	colDanger    = color.NRGBA{239, 68, 68, 255}
	colGood      = color.NRGBA{16, 185, 129, 255}
)

func fillRect(dst *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, true)
}

func strokeRect(dst *ebiten.Image, r rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), width, c, true)
}

func drawText(dst *ebiten.Image, s string, f font.Face, x, y int, c color.Color) {
	text.Draw(dst, s, f, x, y, c)
}

func textWidth(s string, f font.Face) int {
	return font.MeasureString(f, s).Round()
}

func drawTextCentered(dst *ebiten.Image, s string, f font.Face, cx, y int, c color.Color) {
	drawText(dst, s, f, cx-textWidth(s, f)/2, y, c)
}

// drawTileBox draws one letter tile at an arbitrary screen rect and scale.
// Alpha < 1 renders pending/ghost variants.
func drawTileBox(dst *ebiten.Image, x, y, size float64, letter, hexColor string, alpha float64) {
	c := parseHexColor(hexColor, colAccent)
	c.A = uint8(float64(c.A) * alpha)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(size), float32(size), c, true)

	if letter == "" {
		return
	}
	ink := color.NRGBA{255, 255, 255, uint8(255 * alpha)}
	f := fonts.Bold(size * 0.5)
	drawTextCentered(dst, letter, f, int(x+size/2), int(y+size*0.62), ink)

	if pts, ok := letterPoints[firstRune(letter)]; ok && size >= 30 {
		pf := fonts.UI(size * 0.2)
		drawText(dst, strconv.Itoa(pts), pf, int(x+size-size*0.25), int(y+size-size*0.12), ink)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// parseHexColor reads "#rgb" or "#rrggbb"; anything else falls back.
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return fallback
	}
	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// colorForHue maps an account color hue to the tile color sent on join.
func colorForHue(hue int) string {
	r, g, b := hslToRGB(float64(hue%360), 0.65, 0.55)
	return "#" + hex2(r) + hex2(g) + hex2(b)
}

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0xf]})
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// mix blends two colors; t=0 gives a, t=1 gives b.
func mix(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
