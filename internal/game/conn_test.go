package game

import "testing"

func TestNewAutoJoinsWithRoomAndName(t *testing.T) {
	g := New(Options{Name: "Ann", Room: "AB12"})
	if g.room != "AB12" || g.connSt != stateConnecting {
		t.Fatalf("want immediate dial, got room=%q state=%d", g.room, g.connSt)
	}
}

func TestNewWithRoomOnlyWaitsForName(t *testing.T) {
	g := New(Options{Room: "AB12"})
	if g.connSt != stateIdle {
		t.Fatal("must not dial without a name")
	}
	if g.startMode != modeJoin || g.roomInput != "AB12" {
		t.Fatalf("join tab must be prefilled, got mode=%d room=%q", g.startMode, g.roomInput)
	}
}
