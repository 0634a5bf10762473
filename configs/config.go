package configs

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the application.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	AppPort  string `env:"APP_PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DB DatabaseConfig

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"72h"`

	GCSBucket          string `env:"GCS_BUCKET"`
	GCSPublicBaseURL   string `env:"GCS_PUBLIC_BASE_URL"`
	GCSCredentialsFile string `env:"GCS_CREDENTIALS_FILE"`
	UploadMaxBytes     int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"` // 10 MB

	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RSVPRateLimit    int           `env:"RSVP_RATE_LIMIT" envDefault:"10"` // per IP per minute
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER" envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" envDefault:"wedding"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone     string `env:"DB_TIMEZONE" envDefault:"UTC"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
}

// DSN builds the key/value connection string understood by the pgx driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgErr  error
)

// Load reads .env (when present) and parses the environment into a Config.
// It is safe to call multiple times; parsing happens once.
func Load() (*Config, error) {
	cfgOnce.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				cfgErr = fmt.Errorf("load .env: %w", err)
				return
			}
		}
		var c Config
		if err := ParseEnv(&c); err != nil {
			cfgErr = err
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// Get returns the loaded config. Load must have succeeded before.
func Get() *Config {
	if cfg == nil {
		panic("configs: Get called before Load")
	}
	return cfg
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
