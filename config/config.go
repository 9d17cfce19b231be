package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionDriverFile  = "file"
	SessionDriverRedis = "redis"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Log     LogConfig
}

type AppConfig struct {
	Env string
}

type APIConfig struct {
	BaseURL   string
	AuthURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

type SessionConfig struct {
	Driver string
	File   string
	Name   string
	TTL    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_URL", "http://localhost:8000/api")
	v.SetDefault("AUTH_URL", "http://localhost:8000")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("HTTP_RATE_LIMIT", 0)
	v.SetDefault("HTTP_RATE_BURST", 5)
	v.SetDefault("SESSION_DRIVER", SessionDriverFile)
	v.SetDefault("SESSION_FILE", defaultSessionFile())
	v.SetDefault("SESSION_NAME", "default")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	// The .env file is optional; environment variables alone are enough.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("HTTP_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 12 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL:   strings.TrimRight(v.GetString("API_URL"), "/"),
			AuthURL:   strings.TrimRight(v.GetString("AUTH_URL"), "/"),
			Timeout:   timeout,
			RateLimit: v.GetFloat64("HTTP_RATE_LIMIT"),
			RateBurst: v.GetInt("HTTP_RATE_BURST"),
		},
		Session: SessionConfig{
			Driver: strings.ToLower(v.GetString("SESSION_DRIVER")),
			File:   v.GetString("SESSION_FILE"),
			Name:   v.GetString("SESSION_NAME"),
			TTL:    sessionTTL,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API_URL is required")
	}
	if c.API.AuthURL == "" {
		return errors.New("AUTH_URL is required")
	}
	switch c.Session.Driver {
	case SessionDriverFile:
		if c.Session.File == "" {
			return errors.New("SESSION_FILE is required for the file session driver")
		}
	case SessionDriverRedis:
		if c.Session.Name == "" {
			return errors.New("SESSION_NAME is required for the redis session driver")
		}
	default:
		return fmt.Errorf("unknown SESSION_DRIVER %q", c.Session.Driver)
	}
	if c.API.RateLimit < 0 {
		return errors.New("HTTP_RATE_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "wellbeing", "session.json")
	}
	return filepath.Join(home, ".wellbeing", "session.json")
}
