package fonts

import "testing"

func TestFaceCacheQuantizesSize(t *testing.T) {
	if UI(20.2) != UI(19.8) {
		t.Fatal("near-identical sizes must share one cached face")
	}
	if UI(20.2) == UI(21.2) {
		t.Fatal("a full pixel apart must yield distinct faces")
	}
	if UI(14) == Bold(14) {
		t.Fatal("weight must be part of the cache key")
	}
}

func TestFaceTinySizeClamped(t *testing.T) {
	if UI(0.3) != UI(1) {
		t.Fatal("sub-pixel sizes must clamp to 1px")
	}
}
