package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	APIToken     string
	CalendarURL  string
	FallbackURL  string
	Debug        bool
}

// Defaults for the external calendar sources. CalendarURL must carry a
// {year} placeholder.
const (
	DefaultCalendarURL = "https://xmlcalendar.ru/data/ru/{year}/calendar.json"
	DefaultFallbackURL = "https://isdayoff.ru"
)

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("calendar-api", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	// External calendar sources
	fs.StringVar(&cfg.CalendarURL, "calendar-url", "", "Primary external calendar URL ({year} placeholder)")
	fs.StringVar(&cfg.FallbackURL, "fallback-url", "", "Fallback external calendar base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIToken, "token", "", "API bearer token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.CalendarURL == "" {
		cfg.CalendarURL = os.Getenv("CALENDAR_URL")
		if cfg.CalendarURL == "" {
			cfg.CalendarURL = DefaultCalendarURL
		}
	}
	if cfg.FallbackURL == "" {
		cfg.FallbackURL = os.Getenv("FALLBACK_URL")
		if cfg.FallbackURL == "" {
			cfg.FallbackURL = DefaultFallbackURL
		}
	}

	if !cfg.Debug {
		if debugStr := os.Getenv("APP_DEBUG"); debugStr != "" {
			debug, err := strconv.ParseBool(debugStr)
			if err != nil {
				return Config{}, errors.New("invalid APP_DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	// Secrets - MUST be provided
	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("API_TOKEN")
	}
	if cfg.APIToken == "" {
		return Config{}, errors.New("API_TOKEN required")
	}

	return cfg, nil
}
