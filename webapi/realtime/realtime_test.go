package realtime

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/realtime"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleFrame(t *testing.T) {
	hub := realtime.NewHub(8, discard())
	client := hub.NewClient(uuid.New())
	channel := realtime.ConversationChannel(uuid.New())

	HandleFrame(hub, client, Frame{Action: "subscribe", Channel: channel})
	reply := <-client.Outbound
	assert.Equal(t, "subscribed", reply.Event)
	assert.Equal(t, []string{channel}, hub.Channels(client))

	HandleFrame(hub, client, Frame{Action: "subscribe", Channel: "secret"})
	reply = <-client.Outbound
	assert.Equal(t, "error", reply.Event)

	HandleFrame(hub, client, Frame{Action: "ping"})
	assert.Equal(t, "pong", (<-client.Outbound).Event)

	HandleFrame(hub, client, Frame{Action: "unsubscribe", Channel: channel})
	assert.Equal(t, "unsubscribed", (<-client.Outbound).Event)
	assert.Empty(t, hub.Channels(client))

	HandleFrame(hub, client, Frame{Action: "dance"})
	assert.Equal(t, "error", (<-client.Outbound).Event)
}

func TestRoutes_RequiresTokenAndUpgrade(t *testing.T) {
	cfg := &config.App{
		Auth:     &config.Auth{Jwt: &config.Jwt{Secret: "ws-secret", Expiry: time.Hour}},
		Realtime: &config.Realtime{Heartbeat: time.Second},
	}
	app := fiber.New()
	Routes(app, realtime.NewHub(4, discard()), cfg, discard())

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/chat", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  uuid.NewString(),
		"username": "alice",
		"role":     "agent",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("ws-secret"))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/ws/chat?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
