package config

import (
	"time"
)

type DB struct {
	Url         string `envconfig:"URL"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

// Redis is optional: with an empty URL the payment cache stays in memory
// and the redis event bus driver is unavailable.
type Redis struct {
	URL          string        `envconfig:"URL" default:""`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"backoffice:"`
	Stream       string        `envconfig:"STREAM" default:"backoffice.events"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type EventBus struct {
	Driver       string `envconfig:"DRIVER" default:"memory"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"backoffice.events"`
	SASLUsername string `envconfig:"KAFKA_SASL_USERNAME"`
	SASLPassword string `envconfig:"KAFKA_SASL_PASSWORD"`
	// InstanceID names this process's consumer group. Defaults to the hostname.
	InstanceID string `envconfig:"INSTANCE_ID"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type MercadoPago struct {
	ApiUrl          string        `envconfig:"API_URL" default:"https://api.mercadopago.com"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	WebhookSecret   string        `envconfig:"WEBHOOK_SECRET"`
	PaymentCacheTTL time.Duration `envconfig:"PAYMENT_CACHE_TTL" default:"10m"`
	// Sandbox swaps the HTTP client for an in-memory gateway.
	Sandbox bool `envconfig:"SANDBOX" default:"false"`
}

type Reconcile struct {
	Window         time.Duration `envconfig:"WINDOW" default:"24h"`
	Schedule       string        `envconfig:"SCHEDULE" default:"@every 5m"`
	SearchLookback time.Duration `envconfig:"SEARCH_LOOKBACK" default:"48h"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	ExpireAfter    time.Duration `envconfig:"EXPIRE_AFTER" default:"72h"`
	BatchSize      int           `envconfig:"BATCH_SIZE" default:"100"`
}

type Zendesk struct {
	Subdomain     string        `envconfig:"SUBDOMAIN"`
	BaseURL       string        `envconfig:"BASE_URL"`
	Email         string        `envconfig:"EMAIL"`
	ApiToken      string        `envconfig:"API_TOKEN"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	WebhookSecret string        `envconfig:"WEBHOOK_SECRET"`
}

// Enabled reports whether enough is configured to call the API.
func (z *Zendesk) Enabled() bool {
	return (z.BaseURL != "" || z.Subdomain != "") && z.Email != "" && z.ApiToken != ""
}

// URL returns the API root, preferring an explicit base URL.
func (z *Zendesk) URL() string {
	if z.BaseURL != "" {
		return z.BaseURL
	}
	return "https://" + z.Subdomain + ".zendesk.com"
}

type Realtime struct {
	Heartbeat      time.Duration `envconfig:"HEARTBEAT" default:"30s"`
	OutboundBuffer int           `envconfig:"OUTBOUND_BUFFER" default:"64"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[backoffice]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env         string       `envconfig:"APP_ENV" default:"development"`
	Server      *Server      `envconfig:"SERVER"`
	Log         *Log         `envconfig:"LOG"`
	DB          *DB          `envconfig:"DATABASE"`
	Auth        *Auth        `envconfig:"AUTH"`
	Redis       *Redis       `envconfig:"REDIS"`
	EventBus    *EventBus    `envconfig:"EVENT_BUS"`
	RateLimit   *RateLimit   `envconfig:"RATE_LIMIT"`
	MercadoPago *MercadoPago `envconfig:"MERCADOPAGO"`
	Reconcile   *Reconcile   `envconfig:"RECONCILE"`
	Zendesk     *Zendesk     `envconfig:"ZENDESK"`
	Realtime    *Realtime    `envconfig:"REALTIME"`
}
