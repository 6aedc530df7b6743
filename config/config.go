package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/seo"
)

type Config struct {
	Port                   string `env:"PORT" envDefault:"8080"`
	ReadTimeoutSeconds     int    `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds    int    `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds     int    `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`
	// AcceptedOrigins lists cross-origin callers. Empty allows none.
	AcceptedOrigins []string `env:"ACCEPTED_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// CatalogFile replaces the embedded catalog when set.
	CatalogFile string `env:"CATALOG_FILE"`
	// ProfileFile replaces the embedded owner profile when set.
	ProfileFile string `env:"PROFILE_FILE"`

	Site    SiteConfig
	Contact ContactConfig
}

type SiteConfig struct {
	URL         string `env:"SITE_URL" envDefault:"https://your-domain.com"`
	Name        string `env:"SITE_NAME" envDefault:"Portfolio"`
	Title       string `env:"SITE_TITLE" envDefault:"Web Developer Portfolio"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Modern, responsive portfolio website showcasing web development projects and skills."`
	Author      string `env:"SITE_AUTHOR" envDefault:"Your Name"`
	Twitter     string `env:"SITE_TWITTER" envDefault:"@yourusername"`
	OGImage     string `env:"SITE_OG_IMAGE" envDefault:"/og-image.jpg"`
}

type ContactConfig struct {
	ResendAPIKey   string   `env:"RESEND_API_KEY"`
	FromEmail      string   `env:"RESEND_FROM_EMAIL"`
	Recipients     []string `env:"CONTACT_RECIPIENTS" envSeparator:","`
	TimeoutSeconds int      `env:"CONTACT_TIMEOUT_SECONDS" envDefault:"10"`
	MaxRetries     uint64   `env:"CONTACT_MAX_RETRIES" envDefault:"3"`
}

// Load reads an optional .env file into the process environment and then
// parses the environment. A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AcceptedOrigins = trimAll(cfg.AcceptedOrigins)
	cfg.Contact.Recipients = trimAll(cfg.Contact.Recipients)
	return cfg, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}

func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds)
}

func (c Config) WriteTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds)
}

func (c Config) IdleTimeout() time.Duration {
	return seconds(c.IdleTimeoutSeconds)
}

func (c Config) ShutdownTimeout() time.Duration {
	return seconds(c.ShutdownTimeoutSeconds)
}

// Level parses LOG_LEVEL, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) JSONLogs() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogFormat), "json")
}

func (s SiteConfig) Site() seo.Site {
	return seo.Site{
		URL:         s.URL,
		Name:        s.Name,
		Title:       s.Title,
		Description: s.Description,
		Author:      s.Author,
		Twitter:     s.Twitter,
		OGImage:     s.OGImage,
	}
}

func (c ContactConfig) Timeout() time.Duration {
	return seconds(c.TimeoutSeconds)
}

// ResendEnabled reports whether real email delivery is configured.
func (c ContactConfig) ResendEnabled() bool {
	return c.ResendAPIKey != "" && c.FromEmail != "" && len(c.Recipients) > 0
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return trimmed
}
