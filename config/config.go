// Package config loads the service configuration from the environment. A .env file in
// the working directory is read first when present; variables already set win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"estate"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Scheduling struct {
		SlotStart       string `envconfig:"SLOT_START"       default:"09:00"`
		SlotEnd         string `envconfig:"SLOT_END"         default:"18:00"`
		SlotMinutes     int    `envconfig:"SLOT_MINUTES"     default:"30"`
		DueSoonDays     int    `envconfig:"DUE_SOON_DAYS"    default:"7"`
		ObserveHolidays bool   `envconfig:"OBSERVE_HOLIDAYS"`
	} `envconfig:"SCHEDULING"`

	Notification struct {
		Enable  bool   `envconfig:"ENABLE"`
		Driver  string `envconfig:"DRIVER"  default:"redis"`
		Channel string `envconfig:"CHANNEL" default:"estate.notifications"`
	} `envconfig:"NOTIFICATION"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int          `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME" default:"5"`
			MigrationTable string       `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
			Prefix         string       `envconfig:"PREFIX"`
			Read           PostgresNode `envconfig:"READ"`
			Write          PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// PostgresNode is one side of the read/write database pair.
type PostgresNode struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// URL renders the node as a postgres:// connection string. prefix is prepended to the
// database name and query is merged into the sslmode parameter. Credentials are escaped.
func (n PostgresNode) URL(prefix string, query url.Values) string {
	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}

	params.Set("sslmode", n.SSLMode)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(n.Username, n.Password),
		Host:     net.JoinHostPort(n.Host, n.Port),
		Path:     "/" + prefix + n.Name,
		RawQuery: params.Encode(),
	}

	return u.String()
}

var (
	conf Config
	once sync.Once
)

// Load reads envFile, when it exists, and decodes the environment into a fresh Config.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}

		log.Warn().Str("file", envFile).Msg("No env file found, using the process environment")
	}

	cfg := Config{}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	return &cfg, nil
}

// Init loads the process wide configuration once.
func Init() error {
	var err error

	once.Do(func() {
		var loaded *Config

		loaded, err = Load(".env")
		if err != nil {
			return
		}

		conf = *loaded

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
	})

	return err
}

// Get returns the process wide configuration, loading it on first use.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return &conf
}
