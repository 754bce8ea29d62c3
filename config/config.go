package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string        `envconfig:"PORT"            default:"8032"`
	DatabaseDriver string        `envconfig:"DATABASE_DRIVER" default:"sqlite"`
	DatabaseURL    string        `envconfig:"DATABASE_URL"    default:"db.sqlite"`
	GrpcPort       string        `envconfig:"GRPC_PORT"       default:":50051"` // empty disables the gRPC health server
	LogLevel       string        `envconfig:"LOG_LEVEL"       default:"info"`
	GinMode        string        `envconfig:"GIN_MODE"        default:"release"`
	HealthInterval time.Duration `envconfig:"HEALTH_INTERVAL" default:"15s"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig loads the process configuration once and exits on invalid values.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: Port=%s, Driver=%s, GRPC Port=%s, LogLevel=%s",
			config.Port, config.DatabaseDriver, config.GrpcPort, config.LogLevel)
	})
	return &config
}

// Load reads the environment into a fresh Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is not set")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// HTTPAddr returns the listen address for the HTTP server. A bare port
// number is prefixed with ':'.
func (c *Config) HTTPAddr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
