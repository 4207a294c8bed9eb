package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables names
const (
	EnvTMDBAPIKey    = "TMDB_API_KEY"
	EnvListenAddr    = "LISTEN_ADDR"
	EnvTMDBRateLimit = "TMDB_RATE_LIMIT"
	EnvItemsPerPage  = "ITEMS_PER_PAGE"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogPretty     = "LOG_PRETTY"
)

type config struct {
	TMDBAPIKey    string
	ListenAddr    string
	TMDBRateLimit float64
	ItemsPerPage  int
	LogLevel      zerolog.Level
	LogPretty     bool
}

// loadConfig reads the configuration from the environment, after loading the given .env files if they exist
func loadConfig(envFiles ...string) (*config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load env file: %w", err)
	}

	cfg := &config{
		TMDBAPIKey:    strings.TrimSpace(os.Getenv(EnvTMDBAPIKey)),
		ListenAddr:    envOr(EnvListenAddr, ":8080"),
		TMDBRateLimit: 40,
		ItemsPerPage:  24,
		LogLevel:      zerolog.InfoLevel,
	}

	var err error
	if value := os.Getenv(EnvTMDBRateLimit); value != "" {
		if cfg.TMDBRateLimit, err = strconv.ParseFloat(value, 64); err != nil {
			return nil, fmt.Errorf("error getting %s: %w", EnvTMDBRateLimit, err)
		}
	}
	if value := os.Getenv(EnvItemsPerPage); value != "" {
		if cfg.ItemsPerPage, err = strconv.Atoi(value); err != nil || cfg.ItemsPerPage <= 0 {
			return nil, fmt.Errorf("error getting %s: invalid value '%s'", EnvItemsPerPage, value)
		}
	}
	if value := os.Getenv(EnvLogLevel); value != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(value)); err != nil {
			return nil, fmt.Errorf("error getting %s: %w", EnvLogLevel, err)
		}
	}
	if value := os.Getenv(EnvLogPretty); value != "" {
		if cfg.LogPretty, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("error getting %s: %w", EnvLogPretty, err)
		}
	}
	return cfg, nil
}

func (cfg config) setupLogging(out io.Writer) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
