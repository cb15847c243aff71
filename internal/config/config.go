// Package config loads todos settings from defaults, a TOML file, the
// environment and flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// DefaultEndpoint is the read-only JSON endpoint fetched on start.
const DefaultEndpoint = "https://my-json-server.typicode.com/EnkiGroup/DesafioReactFrontendJunior2024/todos"

// ErrInvalid is returned when the merged configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Duration lets TOML carry "5s" style strings.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

type Config struct {
	Endpoint  string   `toml:"endpoint" validate:"required,url"`
	Timeout   Duration `toml:"timeout"`
	Route     string   `toml:"route" validate:"oneof=/ /active /completed all active completed"`
	Theme     string   `toml:"theme" validate:"oneof=classic neon mono"`
	LogLevel  string   `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string   `toml:"log_format" validate:"oneof=text json logfmt"`
	LogFile   string   `toml:"log_file"`
	Addr      string   `toml:"addr" validate:"required,hostname_port"`
}

func Default() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		Timeout:   Duration{10 * time.Second},
		Route:     "/",
		Theme:     "classic",
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      "127.0.0.1:8088",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/todos/config.toml or ~/.config/todos/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "todos", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "todos", "config.toml")
}

// Load merges defaults, the file at path (a missing file is fine) and the
// environment. Flags are applied by the caller before Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TODOS_ENDPOINT")); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TODOS_THEME")); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the merged config.
func (c Config) Validate() error {
	// Routes are parsed case-insensitively and may carry a trailing slash.
	if r := strings.ToLower(strings.TrimSpace(c.Route)); len(r) > 1 {
		c.Route = strings.TrimRight(r, "/")
	} else {
		c.Route = r
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	return nil
}

// Save writes cfg as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
