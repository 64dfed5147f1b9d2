// Package transport manages the persistent connection to the game server.
// It delivers decoded events one at a time, in server order, over a channel;
// everything the events mean is the session's problem.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mythosclient/internal/debug"
	"mythosclient/internal/game/events"
)

// ConnectionState is the transport's externally visible lifecycle.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
)

const (
	maxReconnectDelay  = 30 * time.Second
	baseReconnectDelay = time.Second
)

// Client is a websocket client for the game event stream.
type Client struct {
	url   string
	token string
	log   *debug.Logger

	mu                sync.Mutex
	conn              *websocket.Conn
	state             ConnectionState
	reconnectAttempts int

	events chan events.GameEvent
	done   chan struct{}
	once   sync.Once
}

// Dial connects to the server and starts the read loop.
func Dial(ctx context.Context, url, token string, log *debug.Logger) (*Client, error) {
	c := &Client{
		url:    url,
		token:  token,
		log:    log,
		events: make(chan events.GameEvent, 64),
		done:   make(chan struct{}),
	}
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) connect(ctx context.Context) error {
	c.setState(StateConnecting)

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, header)
	if err != nil {
		c.setState(StateDisconnected)
		return fmt.Errorf("dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.setState(StateConnected)
	return nil
}

// readLoop decodes events and pushes them in order. On a read failure it
// reconnects with capped backoff until Close is called.
func (c *Client) readLoop() {
	defer close(c.events)
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				return
			default:
			}
			c.log.Printf("read failed: %v", err)
			if !c.reconnect() {
				return
			}
			continue
		}

		var ev events.GameEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.log.Printf("dropping undecodable event: %v", err)
			continue
		}

		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

func (c *Client) reconnect() bool {
	c.setState(StateDisconnected)
	for {
		c.mu.Lock()
		c.reconnectAttempts++
		attempt := c.reconnectAttempts
		c.mu.Unlock()

		delay := baseReconnectDelay * time.Duration(attempt)
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
		c.log.Printf("reconnect attempt %d in %s", attempt, delay)

		select {
		case <-c.done:
			return false
		case <-time.After(delay):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := c.connect(ctx)
		cancel()
		if err == nil {
			c.mu.Lock()
			c.reconnectAttempts = 0
			c.mu.Unlock()
			return true
		}
		c.log.Printf("reconnect failed: %v", err)
	}
}

// Events is the ordered stream of decoded server events. The channel closes
// when the client shuts down for good.
func (c *Client) Events() <-chan events.GameEvent {
	return c.events
}

// SendCommand sends a player command upstream.
func (c *Client) SendCommand(cmd string) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil || c.State() != StateConnected {
		return fmt.Errorf("not connected")
	}

	payload := map[string]string{"type": "command", "command": cmd}
	if err := conn.WriteJSON(payload); err != nil {
		return fmt.Errorf("send command: %w", err)
	}
	return nil
}

// State reports the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ReconnectAttempts reports how many reconnects the current outage has cost.
func (c *Client) ReconnectAttempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reconnectAttempts
}

func (c *Client) setState(s ConnectionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Close tears the connection down.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		c.mu.Lock()
		if c.conn != nil {
			err = c.conn.Close()
			c.conn = nil
		}
		c.state = StateDisconnected
		c.mu.Unlock()
	})
	return err
}
