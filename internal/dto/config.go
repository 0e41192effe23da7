package dto

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            int
	DatabaseDriver  string
	DatabaseURL     string
	LogLevel        string
	LogFormat       string
	SeedEvents      int
	ShutdownTimeout time.Duration
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	cfg := Config{
		DatabaseDriver: getEnv("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:    getEnv("DATABASE_URL", "db.sqlite"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil {
		return Config{}, fmt.Errorf("%w: PORT: %v", ErrInvalidInput, err)
	}
	if cfg.SeedEvents, err = strconv.Atoi(getEnv("SEED_EVENTS", "10")); err != nil {
		return Config{}, fmt.Errorf("%w: SEED_EVENTS: %v", ErrInvalidInput, err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("%w: SHUTDOWN_TIMEOUT: %v", ErrInvalidInput, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidInput, c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: database URL is required", ErrInvalidInput)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidInput, c.Port)
	}
	if c.SeedEvents < 0 {
		return fmt.Errorf("%w: seed events must not be negative", ErrInvalidInput)
	}
	return nil
}

// ConfigureLogger applies the level and format to the global logrus logger.
func (c Config) ConfigureLogger() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	logrus.SetLevel(level)

	switch c.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
