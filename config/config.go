package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"programviewer/internal/domain"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort             = "8080"
	DefaultProgramSource    = "program.json"
	DefaultEnvelopeField    = "agendas"
	DefaultLoadTimeout      = 10 * time.Second
	DefaultLocationDenylist = "Reception,Catering"
	DefaultTitle            = "Conference Program"
)

var portPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

// Config holds all configuration for the application
type Config struct {
	Environment      string
	Port             string
	Title            string
	ProgramSource    string
	EnvelopeField    string
	EventID          string
	GroupingKey      domain.GroupingKey
	LoadTimeout      time.Duration
	WatchSource      bool
	LocationDenylist []string
	AllowedOrigins   []string
	JWTSecret        string
}

// Load loads configuration from environment variables.
// Outside production it first loads envFile, or .env when envFile is empty.
// A missing .env is only a warning; a missing explicit envFile is an error.
func Load(envFile string) (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		} else if err := godotenv.Load(); err != nil {
			slog.Debug(".env file not loaded", "err", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             getenv("PORT", DefaultPort),
		Title:            getenv("PROGRAM_TITLE", DefaultTitle),
		ProgramSource:    getenv("PROGRAM_SOURCE", DefaultProgramSource),
		EnvelopeField:    getenv("PROGRAM_ENVELOPE_FIELD", DefaultEnvelopeField),
		EventID:          os.Getenv("PROGRAM_EVENT_ID"),
		GroupingKey:      domain.GroupingKey(strings.ToLower(getenv("GROUPING_KEY", string(domain.GroupByID)))),
		LoadTimeout:      DefaultLoadTimeout,
		LocationDenylist: splitList(DefaultLocationDenylist),
		AllowedOrigins:   splitList(os.Getenv("ALLOWED_ORIGINS")),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if s := os.Getenv("LOAD_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse LOAD_TIMEOUT: %w", err)
		}
		cfg.LoadTimeout = d
	}
	if s := os.Getenv("WATCH_SOURCE"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse WATCH_SOURCE: %w", err)
		}
		cfg.WatchSource = b
	}
	// set but empty disables the denylist
	if s, ok := os.LookupEnv("LOCATION_DENYLIST"); ok {
		cfg.LocationDenylist = splitList(s)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field formats and cross-field requirements.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Match(portPattern)),
		validation.Field(&c.ProgramSource, validation.Required),
		validation.Field(&c.GroupingKey, validation.Required, validation.In(domain.GroupByID, domain.GroupByDate)),
		validation.Field(&c.LoadTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.EventID, validation.When(c.IsPostgresSource(), validation.Required)),
	)
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return ":" + c.Port
}

// IsPostgresSource reports whether ProgramSource is a Postgres DSN.
func (c *Config) IsPostgresSource() bool {
	return strings.HasPrefix(c.ProgramSource, "postgres://") || strings.HasPrefix(c.ProgramSource, "postgresql://")
}

// ReloadEnabled reports whether the authenticated reload endpoint can accept tokens.
func (c *Config) ReloadEnabled() bool {
	return c.JWTSecret != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
