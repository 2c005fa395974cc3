// Package realtime fans bus events out to connected websocket clients.
package realtime

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/backoffice/pkg/metrics"
	"github.com/google/uuid"
)

// Channel names.
const (
	DashboardChannel    = "dashboard"
	conversationChannel = "conversation:"
)

// ConversationChannel returns the channel carrying one conversation's events.
func ConversationChannel(id uuid.UUID) string {
	return conversationChannel + id.String()
}

// Message is a server frame.
type Message struct {
	Channel string `json:"channel"`
	Event   string `json:"event"`
	Data    any    `json:"data,omitempty"`
}

// Client is one connection's subscription state. Outbound is read by the
// connection's writer.
type Client struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Outbound chan Message

	channels map[string]struct{}
	closed   bool
}

// Hub tracks channel subscriptions. Broadcasting never blocks: a client
// whose buffer is full loses the message.
type Hub struct {
	mu            sync.RWMutex
	subscriptions map[string]map[*Client]struct{}
	clients       map[*Client]struct{}
	bufferSize    int
	logger        *slog.Logger
}

// NewHub creates a hub whose clients buffer up to bufferSize messages.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Hub{
		subscriptions: make(map[string]map[*Client]struct{}),
		clients:       make(map[*Client]struct{}),
		bufferSize:    bufferSize,
		logger:        logger.With("component", "realtime.Hub"),
	}
}

// NewClient registers a client for userID.
func (h *Hub) NewClient(userID uuid.UUID) *Client {
	c := &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Outbound: make(chan Message, h.bufferSize),
		channels: make(map[string]struct{}),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	metrics.RealtimeClients.Inc()
	h.logger.Debug("client connected", "clientID", c.ID, "userID", userID)
	return c
}

// ValidChannel reports whether clients may subscribe to channel.
func ValidChannel(channel string) bool {
	if channel == DashboardChannel {
		return true
	}
	id, ok := strings.CutPrefix(channel, conversationChannel)
	if !ok {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Subscribe adds c to channel. It reports false for unknown channels.
func (h *Hub) Subscribe(c *Client, channel string) bool {
	channel = strings.TrimSpace(channel)
	if !ValidChannel(channel) {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.closed {
		return false
	}
	c.channels[channel] = struct{}{}
	subs, ok := h.subscriptions[channel]
	if !ok {
		subs = make(map[*Client]struct{})
		h.subscriptions[channel] = subs
	}
	subs[c] = struct{}{}
	h.logger.Debug("client subscribed", "clientID", c.ID, "channel", channel)
	return true
}

// Unsubscribe removes c from channel.
func (h *Hub) Unsubscribe(c *Client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unsubscribeLocked(c, strings.TrimSpace(channel))
}

func (h *Hub) unsubscribeLocked(c *Client, channel string) {
	delete(c.channels, channel)
	if subs, ok := h.subscriptions[channel]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.subscriptions, channel)
		}
	}
}

// Channels returns the channels c is subscribed to.
func (h *Hub) Channels(c *Client) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(c.channels))
	for ch := range c.channels {
		out = append(out, ch)
	}
	return out
}

// Remove drops every subscription of c and closes its outbound channel.
// It is safe to call more than once.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.closed {
		return
	}
	for ch := range c.channels {
		h.unsubscribeLocked(c, ch)
	}
	delete(h.clients, c)
	c.closed = true
	close(c.Outbound)
	metrics.RealtimeClients.Dec()
	h.logger.Debug("client disconnected", "clientID", c.ID)
}

// Broadcast queues msg for every subscriber of msg.Channel.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subscriptions[msg.Channel] {
		select {
		case c.Outbound <- msg:
		default:
			metrics.RealtimeDropped.Inc()
			h.logger.Warn("dropping message; outbound buffer full",
				"clientID", c.ID, "channel", msg.Channel, "event", msg.Event)
		}
	}
}

// Send queues msg for c alone, with the same drop rule as Broadcast.
func (h *Hub) Send(c *Client, msg Message) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.Outbound <- msg:
		return true
	default:
		metrics.RealtimeDropped.Inc()
		return false
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
