package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BcryptCost outside bcrypt's accepted range falls back to 12.
	BcryptCost int `env:"BCRYPT_COST, default=12"`

	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN, default=http://localhost:53551"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	YouTube YouTubeConfig
	Admin   AdminConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET, required"`
	IdleTimeout  time.Duration `env:"SESSION_IDLE_TIMEOUT,  default=30m"`
	MaxLifetime  time.Duration `env:"SESSION_MAX_LIFETIME,  default=12h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=raid_hub"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// YouTubeConfig leaves APIKey optional; playlist requests fail with 400 until
// it is set.
type YouTubeConfig struct {
	APIKey      string        `env:"YOUTUBE_API_KEY"`
	BaseURL     string        `env:"YOUTUBE_API_BASE_URL, default=https://www.googleapis.com/youtube/v3"`
	HTTPTimeout time.Duration `env:"YOUTUBE_HTTP_TIMEOUT, default=10s"`
}

// AdminConfig seeds an enabled ADMIN account at startup when Password is set.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Parse(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Parse reads configuration through lookuper.
func Parse(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
