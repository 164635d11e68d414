package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	ClientURL string `env:"CLIENT_URL, default=http://localhost:5173"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Stripe     StripeConfig
	Cloudinary CloudinaryConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

type CloudinaryConfig struct {
	URL string `env:"CLOUDINARY_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the service runs with production settings
// (controls, among other things, the Secure flag on auth cookies).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
