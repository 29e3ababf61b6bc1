package internal

import (
	"fmt"
	"strings"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

type Config struct {
	Mode          string `env:"MODE,default=production"`
	Stage         string `env:"STAGE,default=dev"`
	Version       string `env:"VERSION,default=dev"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
	Host          string `env:"HOST,default=0.0.0.0"`
	Port          int    `env:"PORT,default=3001"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	RegistryBackend string `env:"REGISTRY_BACKEND,default=badger"`
	RedisAddr       string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB,default=0"`

	ConnectionTTL     time.Duration `env:"CONNECTION_TTL,default=24h"`
	LimitMessages     int           `env:"LIMIT_MESSAGES,default=25"`
	DispatchTimeout   time.Duration `env:"DISPATCH_TIMEOUT,default=30s"`
	DeliveryTimeout   time.Duration `env:"DELIVERY_TIMEOUT,default=5s"`
	FanoutConcurrency int           `env:"FANOUT_CONCURRENCY,default=16"`

	SendBuffer      int           `env:"SEND_BUFFER,default=64"`
	WriteWait       time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait        time.Duration `env:"PONG_WAIT,default=60s"`
	PingPeriod      time.Duration `env:"PING_PERIOD,default=54s"`
	MaxMessageBytes int64         `env:"MAX_MESSAGE_BYTES,default=4096"`

	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=15s"`
	GrpcHealthPort   int           `env:"GRPC_HEALTH_PORT,default=0"`
	DebugPort        int           `env:"DEBUG_PORT,default=0"`
	MetricsNamespace string        `env:"METRICS_NAMESPACE,default=Chatcast"`
}

// Load reads an optional .env file then the process environment.
func Load(files ...string) (Config, error) {
	// A missing .env is fine, the environment may be complete
	_ = godotenv.Load(files...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", errors.ErrConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case !chat.Mode(c.Mode).Valid():
		return invalid("MODE must be production or development, got %q", c.Mode)
	case c.RegistryBackend != BackendBadger && c.RegistryBackend != BackendRedis:
		return invalid("REGISTRY_BACKEND must be badger or redis, got %q", c.RegistryBackend)
	case c.Port <= 0 || c.Port > 65535:
		return invalid("PORT out of range: %d", c.Port)
	case c.GrpcHealthPort < 0 || c.GrpcHealthPort > 65535:
		return invalid("GRPC_HEALTH_PORT out of range: %d", c.GrpcHealthPort)
	case strings.TrimSpace(c.Stage) == "":
		return invalid("STAGE cannot be empty")
	case c.ConnectionTTL <= 0:
		return invalid("CONNECTION_TTL must be positive")
	case c.LimitMessages <= 0:
		return invalid("LIMIT_MESSAGES must be positive")
	case c.DeliveryTimeout <= 0 || c.DispatchTimeout <= 0:
		return invalid("DELIVERY_TIMEOUT and DISPATCH_TIMEOUT must be positive")
	case c.DeliveryTimeout > c.DispatchTimeout:
		return invalid("DELIVERY_TIMEOUT (%s) cannot exceed DISPATCH_TIMEOUT (%s)", c.DeliveryTimeout, c.DispatchTimeout)
	case c.FanoutConcurrency <= 0:
		return invalid("FANOUT_CONCURRENCY must be positive")
	case c.SendBuffer <= 0:
		return invalid("SEND_BUFFER must be positive")
	case c.PingPeriod >= c.PongWait:
		return invalid("PING_PERIOD (%s) must be shorter than PONG_WAIT (%s)", c.PingPeriod, c.PongWait)
	case c.MaxMessageBytes <= 0:
		return invalid("MAX_MESSAGE_BYTES must be positive")
	case c.RegistryBackend == BackendRedis && strings.TrimSpace(c.RedisAddr) == "":
		return invalid("REDIS_ADDR is required with the redis backend")
	}
	return nil
}

func (c Config) ChatMode() chat.Mode {
	return chat.Mode(c.Mode)
}

// BaseURL is the address loopback push targets are built from.
func (c Config) BaseURL() string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/")
	}
	host := c.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.Port)
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
