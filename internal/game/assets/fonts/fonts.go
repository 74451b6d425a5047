// Package fonts caches opentype faces at the sizes the UI asks for.
package fonts

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type key struct {
	bold bool
	px   int
}

var (
	mu    sync.Mutex
	cache = map[key]font.Face{}
)

func face(bold bool, size float64) font.Face {
	// Quantize to whole pixels so zoom-derived sizes don't grow the
	// cache without bound.
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	k := key{bold, px}
	mu.Lock()
	defer mu.Unlock()

	if f, ok := cache[k]; ok {
		return f
	}
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		panic("fonts: parse: " + err.Error())
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("fonts: face: " + err.Error())
	}
	cache[k] = f
	return f
}

// UI returns the regular face at the given size.
func UI(size float64) font.Face { return face(false, size) }

// Bold returns the bold face at the given size.
func Bold(size float64) font.Face { return face(true, size) }
