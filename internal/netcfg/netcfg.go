// Package netcfg holds the server endpoints the client talks to.
// Values are set once at startup from the launcher flags.
package netcfg

import (
	"net/url"
	"strings"
)

var (
	// APIBase is the http(s) origin for the auth REST endpoints.
	APIBase = "http://localhost:8000"

	// WSBase is the ws(s) origin for the game socket.
	WSBase = "ws://localhost:8000"
)

// SetServer derives APIBase and WSBase from a single origin, e.g.
// "https://yeet.example.com" or "localhost:8000".
func SetServer(origin string) {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return
	}
	if !strings.Contains(origin, "://") {
		origin = "http://" + origin
	}
	u, err := url.Parse(origin)
	if err != nil {
		return
	}
	switch u.Scheme {
	case "https", "wss":
		APIBase = "https://" + u.Host
		WSBase = "wss://" + u.Host
	default:
		APIBase = "http://" + u.Host
		WSBase = "ws://" + u.Host
	}
}

// WSURL builds the game socket URL for a room join.
func WSURL(room, name, color string) string {
	q := url.Values{}
	q.Set("room", room)
	q.Set("name", name)
	q.Set("color", color)
	return WSBase + "/ws?" + q.Encode()
}
