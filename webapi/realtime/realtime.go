package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/middleware"
	"github.com/amirasaad/backoffice/pkg/realtime"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "ws_user_id"

// Frame is a client to server message.
type Frame struct {
	Action  string `json:"action"`
	Channel string `json:"channel,omitempty"`
}

// Routes mounts GET /ws/chat. The JWT may be passed as ?token= since
// browsers cannot set headers on a websocket handshake.
func Routes(app fiber.Router, hub *realtime.Hub, cfg *config.App, logger *slog.Logger) {
	heartbeat := 30 * time.Second
	if cfg.Realtime != nil && cfg.Realtime.Heartbeat > 0 {
		heartbeat = cfg.Realtime.Heartbeat
	}
	app.Get("/ws/chat", middleware.JwtProtected(cfg.Auth.Jwt), upgrade, websocket.New(Serve(hub, heartbeat, logger)))
}

func upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if p, ok := middleware.GetPrincipal(c); ok {
		c.Locals(userIDKey, p.UserID)
	}
	return c.Next()
}

// Serve runs one websocket connection: a reader applying client frames and
// a writer draining the client's outbound queue and sending heartbeats.
func Serve(hub *realtime.Hub, heartbeat time.Duration, logger *slog.Logger) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		userID, _ := conn.Locals(userIDKey).(uuid.UUID)
		client := hub.NewClient(userID)
		log := logger.With("clientID", client.ID, "userID", userID)
		log.Info("websocket connected")

		wait := 2 * heartbeat
		_ = conn.SetReadDeadline(time.Now().Add(wait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wait))
		})

		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			write(conn, client, heartbeat, log)
		}()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn("websocket read failed", "error", err)
				}
				break
			}
			_ = conn.SetReadDeadline(time.Now().Add(wait))
			var f Frame
			if err := json.Unmarshal(raw, &f); err != nil {
				hub.Send(client, realtime.Message{Event: "error", Data: "malformed frame"})
				continue
			}
			HandleFrame(hub, client, f)
		}
		hub.Remove(client)
		<-writerDone
		log.Info("websocket disconnected")
	}
}

func write(conn *websocket.Conn, client *realtime.Client, heartbeat time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-client.Outbound:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(msg); err != nil {
				log.Warn("websocket write failed", "error", err)
				_ = conn.Close()
				drain(client)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
				_ = conn.Close()
				drain(client)
				return
			}
		}
	}
}

// drain consumes Outbound until the hub closes it.
func drain(client *realtime.Client) {
	for range client.Outbound {
	}
}

// HandleFrame applies one client frame and queues the reply.
func HandleFrame(hub *realtime.Hub, client *realtime.Client, f Frame) {
	switch f.Action {
	case "subscribe":
		if !hub.Subscribe(client, f.Channel) {
			hub.Send(client, realtime.Message{Channel: f.Channel, Event: "error", Data: "invalid channel"})
			return
		}
		hub.Send(client, realtime.Message{Channel: f.Channel, Event: "subscribed"})
	case "unsubscribe":
		hub.Unsubscribe(client, f.Channel)
		hub.Send(client, realtime.Message{Channel: f.Channel, Event: "unsubscribed"})
	case "ping":
		hub.Send(client, realtime.Message{Event: "pong"})
	default:
		hub.Send(client, realtime.Message{Event: "error", Data: "unknown action"})
	}
}
