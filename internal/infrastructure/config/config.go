package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8000"`
	Env         string        `env:"ENV,         default=development"`
	SecretKey   string        `env:"SECRET_KEY"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=elevateu"`
}

// RedisConfig configures the login throttle store. An empty Addr disables
// throttling entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type S3Config struct {
	Endpoint      string `env:"S3_ENDPOINT"`
	Region        string `env:"S3_REGION, default=us-east-1"`
	Bucket        string `env:"S3_BUCKET, default=elevateu-media"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	return &cfg, nil
}
