// Package protocol defines the JSON wire format spoken over the game
// websocket. Every message is a flat object with a "type" discriminator;
// the server owns all game state and pushes it down as snapshots.
package protocol

import "encoding/json"

// ---- shared state structs ----

// BoardTile is one confirmed (or pending) letter on the board.
type BoardTile struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter"`
	Color  string `json:"color"`
}

// PlayerState is the per-player slice of a snapshot. Hand is only present
// for the receiving player; empty slots are null.
type PlayerState struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Color string    `json:"color"`
	Hand  []*string `json:"hand,omitempty"`
}

type Settings struct {
	Mode string `json:"mode,omitempty"`
	Lang string `json:"lang,omitempty"`
}

// GameState is the authoritative snapshot. The client overwrites its copy
// wholesale on every inbound update.
type GameState struct {
	Players      map[string]PlayerState `json:"players"`
	Board        []BoardTile            `json:"board"`
	PendingTiles []BoardTile            `json:"pending_tiles,omitempty"`
	Settings     *Settings              `json:"settings,omitempty"`
	Started      bool                   `json:"started,omitempty"`
}

// ---- client -> server ----

// ClientMsg is implemented by every outbound message.
type ClientMsg interface {
	clientMsg()
}

type Place struct {
	Type      string `json:"type"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Letter    string `json:"letter"`
	Color     string `json:"color"`
	HandIndex int    `json:"hand_index"`
}

type DestroyTile struct {
	Type      string `json:"type"`
	HandIndex int    `json:"hand_index"`
}

type RerollHand struct {
	Type string `json:"type"`
}

type StartGame struct {
	Type     string   `json:"type"`
	Settings Settings `json:"settings"`
}

type UpdateSettings struct {
	Type     string   `json:"type"`
	Settings Settings `json:"settings"`
}

type Chat struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (Place) clientMsg()          {}
func (DestroyTile) clientMsg()    {}
func (RerollHand) clientMsg()     {}
func (StartGame) clientMsg()      {}
func (UpdateSettings) clientMsg() {}
func (Chat) clientMsg()           {}

// Constructors fill in the type tag so call sites can't mistag a message.

func NewPlace(x, y int, letter, color string, handIndex int) Place {
	return Place{Type: "PLACE", X: x, Y: y, Letter: letter, Color: color, HandIndex: handIndex}
}

func NewDestroyTile(handIndex int) DestroyTile {
	return DestroyTile{Type: "DESTROY_TILE", HandIndex: handIndex}
}

func NewRerollHand() RerollHand { return RerollHand{Type: "REROLL_HAND"} }

func NewStartGame(s Settings) StartGame { return StartGame{Type: "START_GAME", Settings: s} }

func NewUpdateSettings(s Settings) UpdateSettings {
	return UpdateSettings{Type: "UPDATE_SETTINGS", Settings: s}
}

func NewChat(message string) Chat { return Chat{Type: "CHAT", Message: message} }

// ---- server -> client ----

// ServerMsg is the decoded tagged union of inbound messages.
type ServerMsg interface {
	serverMsg()
}

type Init struct {
	PlayerID string     `json:"playerId"`
	State    *GameState `json:"state"`
}

type Update struct {
	State *GameState `json:"state"`
}

type TileRemoved struct {
	Tiles []BoardTile `json:"tiles"`
}

type DrawnTiles struct {
	State *GameState `json:"state"`
}

type ChatRecv struct {
	Sender   string `json:"sender"`
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
}

type Timer struct {
	Time int `json:"time"` // seconds left in the turn
}

type GameStartCountdown struct {
	Seconds int `json:"seconds"`
}

type GameStarted struct{}

type GameOver struct {
	GameID string     `json:"game_id,omitempty"`
	State  *GameState `json:"state"`
}

type ErrorMsg struct {
	Message string `json:"message"`
}

func (Init) serverMsg()               {}
func (Update) serverMsg()             {}
func (TileRemoved) serverMsg()        {}
func (DrawnTiles) serverMsg()         {}
func (ChatRecv) serverMsg()           {}
func (Timer) serverMsg()              {}
func (GameStartCountdown) serverMsg() {}
func (GameStarted) serverMsg()        {}
func (GameOver) serverMsg()           {}
func (ErrorMsg) serverMsg()           {}

// DecodeServer parses one inbound frame. Unknown types decode to (nil, nil)
// so the caller can drop them without treating that as an error.
func DecodeServer(data []byte) (ServerMsg, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	switch tag.Type {
	case "INIT":
		var m Init
		return m, json.Unmarshal(data, &m)
	case "UPDATE":
		var m Update
		return m, json.Unmarshal(data, &m)
	case "TILE_REMOVED":
		var m TileRemoved
		return m, json.Unmarshal(data, &m)
	case "DRAWN_TILES":
		var m DrawnTiles
		return m, json.Unmarshal(data, &m)
	case "CHAT":
		var m ChatRecv
		return m, json.Unmarshal(data, &m)
	case "TIMER":
		var m Timer
		return m, json.Unmarshal(data, &m)
	case "GAME_START_COUNTDOWN":
		var m GameStartCountdown
		return m, json.Unmarshal(data, &m)
	case "GAME_STARTED":
		var m GameStarted
		return m, json.Unmarshal(data, &m)
	case "GAME_OVER":
		var m GameOver
		return m, json.Unmarshal(data, &m)
	case "ERROR":
		var m ErrorMsg
		return m, json.Unmarshal(data, &m)
	default:
		return nil, nil
	}
}
