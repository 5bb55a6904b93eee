package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Supported persistence backends.
const (
	StoreMongo = "mongo"
	StoreMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"PORT,default=3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	StoreDriver   string `env:"STORE_DRIVER,default=mongo"`
	MongoURL      string `env:"MONGO_URL,default=mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE,default=storefront"`
	MySQLDSN      string `env:"MYSQL_DSN,default=user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPass       string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB,default=0"`
	ProductCacheTTL time.Duration `env:"PRODUCT_CACHE_TTL,default=1m"`

	JWTSecret          string        `env:"JWT_SECRET,default=change-me"`
	TokenTTL           time.Duration `env:"TOKEN_TTL,default=1h"`
	BcryptCost         int           `env:"BCRYPT_COST,default=10"`
	RedactPasswordHash bool          `env:"REDACT_PASSWORD_HASH,default=false"`
	AuthRateLimit      float64       `env:"AUTH_RATE_LIMIT,default=0"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS,default=*"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

// Load reads an optional .env file and builds Config from the environment.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envdecode cannot express.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMySQL:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.AuthRateLimit < 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT must not be negative, got %v", c.AuthRateLimit)
	}
	return nil
}

// AllowOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
