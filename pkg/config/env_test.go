package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("BACKOFFICE_TOPIC", "  events.smoke ")
	t.Setenv("BACKOFFICE_BLANK", "   ")

	assert.Equal(t, "events.smoke", EnvOr("BACKOFFICE_TOPIC", "fallback"))
	assert.Equal(t, "fallback", EnvOr("BACKOFFICE_BLANK", "fallback"))
	assert.Equal(t, "fallback", EnvOr("BACKOFFICE_UNSET", "fallback"))
}

func TestEnvList(t *testing.T) {
	t.Setenv("BACKOFFICE_BROKERS", "kafka-1:9092, ,kafka-2:9092,")

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, EnvList("BACKOFFICE_BROKERS", "localhost:9092"))
	assert.Equal(t, []string{"localhost:9092"}, EnvList("BACKOFFICE_UNSET", "localhost:9092"))
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("BACKOFFICE_TIMEOUT", "90s")
	t.Setenv("BACKOFFICE_BAD_TIMEOUT", "soon")
	t.Setenv("BACKOFFICE_NEGATIVE_TIMEOUT", "-1s")

	assert.Equal(t, 90*time.Second, EnvDuration("BACKOFFICE_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, EnvDuration("BACKOFFICE_BAD_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, EnvDuration("BACKOFFICE_NEGATIVE_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, EnvDuration("BACKOFFICE_UNSET", time.Second))
}

func TestFindUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "webapi", "account")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	envFile := filepath.Join(root, ".env.test")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_ENV=test\n"), 0o600))
	t.Chdir(nested)

	got, err := findUpward(".env.test")
	require.NoError(t, err)
	wantInfo, err := os.Stat(envFile)
	require.NoError(t, err)
	gotInfo, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo))

	_, err = findUpward(".env.missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "memory", cfg.EventBus.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Reconcile.Window)
	assert.Equal(t, "@every 5m", cfg.Reconcile.Schedule)
	assert.Equal(t, "https://api.mercadopago.com", cfg.MercadoPago.ApiUrl)
	assert.False(t, cfg.Zendesk.Enabled())
}

func TestLoadFromEnv_RequiresJwtSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "restored-after-test")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
	_, err := loadFromEnv()
	assert.Error(t, err)
}

func TestValidate_EventBusDriver(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	t.Setenv("EVENT_BUS_DRIVER", "kafka")
	_, err := loadFromEnv()
	assert.ErrorContains(t, err, "EVENT_BUS_KAFKA_BROKERS")

	t.Setenv("EVENT_BUS_KAFKA_BROKERS", "localhost:9092")
	_, err = loadFromEnv()
	assert.NoError(t, err)

	t.Setenv("EVENT_BUS_DRIVER", "nats")
	_, err = loadFromEnv()
	assert.Error(t, err)
}

func TestZendeskURL(t *testing.T) {
	z := &Zendesk{Subdomain: "acme", Email: "ops@acme.com", ApiToken: "tok"}
	assert.True(t, z.Enabled())
	assert.Equal(t, "https://acme.zendesk.com", z.URL())

	z.BaseURL = "http://127.0.0.1:9999"
	assert.Equal(t, "http://127.0.0.1:9999", z.URL())
}
