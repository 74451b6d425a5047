package game

import "testing"

func TestCycleHueWrapsAndRecolors(t *testing.T) {
	g, _, _ := newTestGame()
	g.hue = 350
	g.cycleHue()
	if g.hue != 20 {
		t.Fatalf("want hue 20, got %d", g.hue)
	}
	if g.color != colorForHue(20) {
		t.Fatalf("tile color must follow the hue, got %q", g.color)
	}
}

func TestSignOutClearsUser(t *testing.T) {
	g, _, _ := newTestGame()
	g.user = &AuthUser{Name: "Ann"}
	g.pressSignOut()
	if g.user != nil {
		t.Fatal("user must be cleared")
	}
	if g.statusMsg != "Signed out" {
		t.Fatalf("want feedback, got %q", g.statusMsg)
	}
}
