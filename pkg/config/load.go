package config

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFilePath (searching parent
// directories), falls back to .env, then processes the environment.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := findUpward(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using default .env")
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db", utils.Mask(cfg.DB.Url),
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"redis", utils.Mask(cfg.Redis.URL),
		"event_bus_driver", cfg.EventBus.Driver,
		"mercadopago_api_url", cfg.MercadoPago.ApiUrl,
		"reconcile_window", cfg.Reconcile.Window,
		"reconcile_schedule", cfg.Reconcile.Schedule,
		"zendesk_enabled", cfg.Zendesk.Enabled(),
		"zendesk_api_token", utils.Mask(cfg.Zendesk.ApiToken),
	)
	return &cfg, nil
}

// Validate checks cross-field requirements envconfig cannot express.
func (a *App) Validate() error {
	switch a.EventBus.Driver {
	case "memory":
	case "redis":
		if a.Redis.URL == "" {
			return fmt.Errorf("EVENT_BUS_DRIVER=redis requires REDIS_URL")
		}
	case "kafka":
		if a.EventBus.KafkaBrokers == "" {
			return fmt.Errorf("EVENT_BUS_DRIVER=kafka requires EVENT_BUS_KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown EVENT_BUS_DRIVER %q", a.EventBus.Driver)
	}
	if a.Reconcile.Window <= 0 {
		return fmt.Errorf("RECONCILE_WINDOW must be positive")
	}
	return nil
}
