package game

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	neturl "net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// sender is the outbound half of the game socket. It exists so the
// interaction layer can be exercised in tests without a live server.
type sender interface {
	Send(v any) error
	IsClosed() bool
	Close() error
}

// Net owns one websocket. A reader goroutine feeds raw frames into a
// buffered channel; the frame loop drains it so messages are handled
// strictly in arrival order.
type Net struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan []byte
	closed bool
}

func NewNet(wsURL string) (*Net, error) {
	debugf("WS dial: %s", wsURL)

	dialer := websocket.Dialer{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		Proxy: func(*http.Request) (*neturl.URL, error) {
			return nil, nil // disable proxies
		},
	}

	c, resp, err := dialer.Dial(wsURL, nil)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			log.Printf("WS dial failed: %s\n%s", resp.Status, string(body))
		} else {
			log.Printf("WS dial failed: %v", err)
		}
		return nil, err
	}

	n := &Net{conn: c, inCh: make(chan []byte, 128)}
	go n.reader(c)
	return n, nil
}

// reader holds its own reference to the connection; Close nils n.conn
// concurrently, so the field must not be read here.
func (n *Net) reader(c *websocket.Conn) {
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			debugf("WS read: %v", err)
			n.mu.Lock()
			n.closed = true
			n.conn = nil
			n.mu.Unlock()
			close(n.inCh)
			return
		}
		n.inCh <- data
	}
}

// Incoming exposes the inbound frame channel. It is closed when the
// socket dies, which the frame loop uses to mark the session inactive.
func (n *Net) Incoming() <-chan []byte { return n.inCh }

func (n *Net) Send(v any) error {
	n.mu.Lock()
	if n.closed || n.conn == nil {
		n.mu.Unlock()
		return errors.New("net: write on closed")
	}
	c := n.conn
	n.mu.Unlock()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
		debugf("WS write: %v", err)
		n.mu.Lock()
		n.closed = true
		n.conn = nil
		n.mu.Unlock()
		return err
	}
	return nil
}

// IsClosed reports whether Close() was called or the connection died.
func (n *Net) IsClosed() bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Close closes the websocket and marks the Net as closed.
func (n *Net) Close() error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	c := n.conn
	n.conn = nil
	n.mu.Unlock()

	var err error
	if c != nil {
		err = c.Close()
	}
	return err
}
