package websocket

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/feedviewer/internal/feed"
	"golang.org/x/net/websocket"
)

// Conn is a client connection that only reads text messages.
type Conn struct {
	ws        *websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

// Dial opens a WebSocket to url with no subprotocol and no extra headers.
func Dial(ctx context.Context, url, origin string) (*Conn, error) {
	cfg, err := websocket.NewConfig(url, origin)
	if err != nil {
		return nil, fmt.Errorf("websocket config: %w", err)
	}

	ws, err := cfg.DialContext(ctx)
	if err != nil {
		return nil, err
	}
	return &Conn{ws: ws}, nil
}

// Receive blocks for the next whole message and returns it as text.
func (c *Conn) Receive() (string, error) {
	var msg string
	if err := websocket.Message.Receive(c.ws, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}

// Dialer adapts Dial for the viewer.
func Dialer(origin string) feed.DialFunc {
	return func(ctx context.Context, url string) (feed.Stream, error) {
		c, err := Dial(ctx, url, origin)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
