// Package config loads the service configuration from a YAML file, the
// process environment and an optional .env file, in increasing precedence
// of the environment over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins restricts CORS to these origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"marketplace" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. Only the public key is needed to serve;
	// the private key is used by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Matching tunes the match listing and the notification of talents
	Matching struct {
		// SearchRadiusKm bounds the candidates loaded around a talent
		SearchRadiusKm float64 `env:"MATCHING_SEARCH_RADIUS_KM" env-default:"150" yaml:"searchRadiusKm"`
		// CandidateLimit bounds the number of candidates scored per listing
		CandidateLimit uint `env:"MATCHING_CANDIDATE_LIMIT" env-default:"500" yaml:"candidateLimit"`
		// DefaultLimit is the page size when the caller sets none
		DefaultLimit uint `env:"MATCHING_DEFAULT_LIMIT" env-default:"20" yaml:"defaultLimit"`
		// MaxLimit caps the page size
		MaxLimit uint `env:"MATCHING_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
		// NotifyMinScore is the score from which a talent is notified of a new project
		NotifyMinScore int `env:"MATCHING_NOTIFY_MIN_SCORE" env-default:"60" yaml:"notifyMinScore"`
		// NotifyTalentLimit bounds the talents scored per published project
		NotifyTalentLimit uint `env:"MATCHING_NOTIFY_TALENT_LIMIT" env-default:"1000" yaml:"notifyTalentLimit"`
	} `yaml:"matching"`

	// Geocoder configures the postal code lookup
	Geocoder struct {
		// BaseURL of the BAN API
		BaseURL string `env:"GEOCODER_BASE_URL" env-default:"https://api-adresse.data.gouv.fr" yaml:"baseURL"`
		// Timeout of a single lookup
		Timeout time.Duration `env:"GEOCODER_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// MinScore rejects matches with a lower relevance
		MinScore float64 `env:"GEOCODER_MIN_SCORE" env-default:"0.3" yaml:"minScore"`
		// UserAgent sent to the API
		UserAgent string `env:"GEOCODER_USER_AGENT" env-default:"marketplace/1.0" yaml:"userAgent"`
	} `yaml:"geocoder"`

	// Worker configures the background job processing
	Worker struct {
		// MaxWorkers is the number of concurrent jobs per queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts before a job is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath and overrides it with the
// environment. Variables from a .env file in the working directory are
// loaded first, without replacing variables already set. A missing config
// file is not an error: the environment and defaults are used instead.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); configPath == "" || errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
