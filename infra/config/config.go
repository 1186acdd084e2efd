package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
	"github.com/CrestNiraj12/terminalhn/infra/hackernews"
)

const appDir = "terminalhn"

// Config holds application-level configuration.
type Config struct {
	APIURL           string        // Firebase API root, https only
	SiteURL          string        // Web front end for discussion links
	Timeout          time.Duration // Per-request HTTP timeout
	UserAgent        string
	PageSize         int
	Kind             domain.StoryKind
	FetchConcurrency int
	UI               UIConfig
	UIStatePath      string
}

type UIConfig struct {
	// ShowRefreshErrors surfaces a failed refresh in the status bar while the
	// previous stories stay on screen.
	ShowRefreshErrors bool
}

// fileConfig mirrors config.yaml. Pointer fields distinguish "unset" from
// zero values.
type fileConfig struct {
	APIURL           *string `yaml:"api_url"`
	SiteURL          *string `yaml:"site_url"`
	Timeout          *int    `yaml:"timeout"`
	UserAgent        *string `yaml:"user_agent"`
	PageSize         *int    `yaml:"page_size"`
	Kind             *string `yaml:"kind"`
	FetchConcurrency *int    `yaml:"fetch_concurrency"`
	UI               struct {
		ShowRefreshErrors *bool `yaml:"show_refresh_errors"`
	} `yaml:"ui"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		APIURL:           hackernews.DefaultAPIURL,
		SiteURL:          hackernews.DefaultSiteURL,
		Timeout:          hackernews.DefaultTimeout,
		UserAgent:        hackernews.DefaultUserAgent,
		PageSize:         app.DefaultPageSize,
		Kind:             domain.KindBest,
		FetchConcurrency: hackernews.DefaultConcurrency,
	}
}

// Load builds the configuration from defaults, the YAML file and the
// environment, in that order.
//
//	TERMINALHN_CONFIG     config file (default: $XDG_CONFIG_HOME/terminalhn/config.yaml)
//	TERMINALHN_API_URL    API root (https only)
//	TERMINALHN_PAGE_SIZE  stories per page, 1..50
//	TERMINALHN_KIND       best, new or top
//	TERMINALHN_TIMEOUT    request timeout in seconds
//
// path overrides TERMINALHN_CONFIG when non-empty. A missing file is fine
// unless it was named explicitly.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		if p := os.Getenv("TERMINALHN_CONFIG"); p != "" {
			path, explicit = p, true
		}
	}
	if !explicit {
		dir, err := os.UserConfigDir()
		if err == nil {
			path = filepath.Join(dir, appDir, "config.yaml")
		}
	}
	if path != "" {
		if err := applyFile(&cfg, path, explicit); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	statePath, err := DefaultUIStatePath()
	if err != nil {
		return Config{}, err
	}
	cfg.UIStatePath = statePath

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.APIURL != nil {
		cfg.APIURL = *fc.APIURL
	}
	if fc.SiteURL != nil {
		cfg.SiteURL = *fc.SiteURL
	}
	if fc.Timeout != nil {
		cfg.Timeout = time.Duration(*fc.Timeout) * time.Second
	}
	if fc.UserAgent != nil {
		cfg.UserAgent = *fc.UserAgent
	}
	if fc.PageSize != nil {
		cfg.PageSize = *fc.PageSize
	}
	if fc.Kind != nil {
		kind, err := domain.ParseStoryKind(*fc.Kind)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Kind = kind
	}
	if fc.FetchConcurrency != nil {
		cfg.FetchConcurrency = *fc.FetchConcurrency
	}
	if fc.UI.ShowRefreshErrors != nil {
		cfg.UI.ShowRefreshErrors = *fc.UI.ShowRefreshErrors
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TERMINALHN_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TERMINALHN_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TERMINALHN_PAGE_SIZE: %q is not a number", v)
		}
		cfg.PageSize = n
	}
	if v := os.Getenv("TERMINALHN_KIND"); v != "" {
		kind, err := domain.ParseStoryKind(v)
		if err != nil {
			return fmt.Errorf("invalid TERMINALHN_KIND: %w", err)
		}
		cfg.Kind = kind
	}
	if v := os.Getenv("TERMINALHN_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid TERMINALHN_TIMEOUT: %q must be a positive number of seconds", v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return nil
}

// Validate checks ranges and normalizes URLs.
func (c *Config) Validate() error {
	api, err := normalizeHTTPS("api_url", c.APIURL)
	if err != nil {
		return err
	}
	c.APIURL = api

	site, err := normalizeHTTPS("site_url", c.SiteURL)
	if err != nil {
		return err
	}
	c.SiteURL = site + "/"

	if c.PageSize < app.MinPageSize || c.PageSize > app.MaxPageSize {
		return fmt.Errorf("invalid page_size %d: must be between %d and %d", c.PageSize, app.MinPageSize, app.MaxPageSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: must be positive")
	}
	if c.FetchConcurrency <= 0 {
		return fmt.Errorf("invalid fetch_concurrency %d: must be positive", c.FetchConcurrency)
	}
	return nil
}

func normalizeHTTPS(field, raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid %s: must be an absolute URL", field)
	}
	if parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid %s: only https is allowed", field)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
