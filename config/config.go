package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dadosjusbr/site/apiclient"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// SiteConfig contains all of the site settings
type SiteConfig struct {
	ListenAddrIP   string `env:"SITE_ADDR"`
	ListenAddrPort string `env:"SITE_PORT" envDefault:"8080"`

	// APIURL is the root every view request is relative to.
	APIURL   string `env:"API_URL" envDefault:"http://localhost:8083/uiapi/v1"`
	APIProxy bool   `env:"API_PROXY" envDefault:"false"`

	AnalyticsID string `env:"ANALYTICS_ID"`
	Timezone    string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
	loc         *time.Location

	WebDir    string `env:"WEB_DIR" envDefault:"web"`
	StaticDir string `env:"STATIC_DIR" envDefault:"dist"`

	PrerenderRoutes   []string `env:"PRERENDER_ROUTES" envDefault:"/,/sobre,/contato" envSeparator:","`
	PrerenderSchedule string   `env:"PRERENDER_SCHEDULE" envDefault:"@every 24h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stdout"`
	LogFile   string `env:"LOG_FILE" envDefault:"site.log"`

	Version   string `env:"SITE_VERSION" envDefault:"dev"`
	BuildDate string `env:"SITE_BUILD_DATE"`
}

// Location returns the time zone dates are shown in.
func (c SiteConfig) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Addr returns the address the server listens on.
func (c SiteConfig) Addr() string {
	return c.ListenAddrIP + ":" + c.ListenAddrPort
}

// SetupSite loads configuration and returns SiteConfig and Logger
func SetupSite() (SiteConfig, *slog.Logger, error) {
	// Load .env files (silently ignore if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")
	_ = godotenv.Load("site.env")

	cfg, err := Load()
	if err != nil {
		return SiteConfig{}, nil, err
	}

	logger := setupLogging(cfg)
	Logger = logger

	logger.Info("Site configuration loaded",
		"apiURL", cfg.APIURL,
		"apiProxy", cfg.APIProxy,
		"addr", cfg.Addr(),
		"staticDir", cfg.StaticDir,
		"prerenderRoutes", strings.Join(cfg.PrerenderRoutes, ","))
	if cfg.AnalyticsID == "" {
		logger.Info("Analytics tracking ID not set, analytics disabled")
	}

	return cfg, logger, nil
}

// Load parses the environment into a SiteConfig and validates it.
func Load() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func (c *SiteConfig) normalize() error {
	var errs []error

	apiURL, err := apiclient.NormalizeBaseURL(c.APIURL)
	if err != nil {
		errs = append(errs, err)
	}
	c.APIURL = apiURL

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err))
	}
	c.loc = loc

	routes := make([]string, 0, len(c.PrerenderRoutes))
	for _, r := range c.PrerenderRoutes {
		if r = strings.TrimSpace(r); r != "" {
			routes = append(routes, r)
		}
	}
	c.PrerenderRoutes = routes

	c.WebDir = filepath.ToSlash(c.WebDir)
	c.StaticDir = filepath.ToSlash(c.StaticDir)

	return errors.Join(errs...)
}

// parseLevel maps the LOG_LEVEL value to a slog level
func parseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogging configures the application logger
func setupLogging(cfg SiteConfig) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var logWriter io.Writer = os.Stdout
	if cfg.LogOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(cfg.LogFile))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}
