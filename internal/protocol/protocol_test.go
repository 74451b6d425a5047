package protocol

import (
	"encoding/json"
	"testing"
)

func TestDecodeUpdate(t *testing.T) {
	raw := []byte(`{"type":"UPDATE","state":{"players":{"p1":{"name":"Ann","score":12,"color":"#f0a"}},"board":[{"x":3,"y":4,"letter":"Q","color":"#f0a"}]}}`)
	m, err := DecodeServer(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	u, ok := m.(Update)
	if !ok {
		t.Fatalf("want Update, got %T", m)
	}
	if u.State == nil || len(u.State.Board) != 1 || u.State.Board[0].Letter != "Q" {
		t.Fatalf("bad state: %+v", u.State)
	}
	if u.State.Players["p1"].Score != 12 {
		t.Fatalf("bad player: %+v", u.State.Players["p1"])
	}
}

func TestDecodeInitCarriesPlayerID(t *testing.T) {
	raw := []byte(`{"type":"INIT","playerId":"abc-123","state":{"players":{},"board":[]}}`)
	m, err := DecodeServer(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	in, ok := m.(Init)
	if !ok || in.PlayerID != "abc-123" {
		t.Fatalf("want Init with id, got %T %+v", m, m)
	}
}

func TestDecodeHandNulls(t *testing.T) {
	raw := []byte(`{"type":"UPDATE","state":{"players":{"me":{"name":"B","score":0,"color":"#fff","hand":["A",null,"C"]}},"board":[]}}`)
	m, err := DecodeServer(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	hand := m.(Update).State.Players["me"].Hand
	if len(hand) != 3 || hand[0] == nil || hand[1] != nil || hand[2] == nil {
		t.Fatalf("bad hand: %v", hand)
	}
	if *hand[2] != "C" {
		t.Fatalf("want C, got %q", *hand[2])
	}
}

func TestDecodeUnknownTypeIgnored(t *testing.T) {
	m, err := DecodeServer([]byte(`{"type":"SOMETHING_NEW","x":1}`))
	if err != nil {
		t.Fatalf("unknown type must not error: %v", err)
	}
	if m != nil {
		t.Fatalf("unknown type must decode to nil, got %T", m)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := DecodeServer([]byte(`{nope`)); err == nil {
		t.Fatal("want error for malformed frame")
	}
}

func TestPlaceEncoding(t *testing.T) {
	b, err := json.Marshal(NewPlace(3, 4, "Q", "#ff00aa", 2))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != "PLACE" || got["hand_index"] != float64(2) || got["letter"] != "Q" {
		t.Fatalf("bad envelope: %v", got)
	}
}

func TestOutboundTypeTags(t *testing.T) {
	cases := []struct {
		msg  ClientMsg
		want string
	}{
		{NewDestroyTile(5), "DESTROY_TILE"},
		{NewRerollHand(), "REROLL_HAND"},
		{NewStartGame(Settings{Mode: "classic"}), "START_GAME"},
		{NewUpdateSettings(Settings{Lang: "en"}), "UPDATE_SETTINGS"},
		{NewChat("hi"), "CHAT"},
	}
	for _, c := range cases {
		b, _ := json.Marshal(c.msg)
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(b, &tag); err != nil || tag.Type != c.want {
			t.Fatalf("want tag %s, got %q (err %v)", c.want, tag.Type, err)
		}
	}
}
