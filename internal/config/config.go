// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/joe/proxy-panel/internal/export"
	"github.com/joe/proxy-panel/pkg/filesystem"
)

// Defaults.
const (
	DefaultServer   = "http://localhost:8000"
	DefaultInterval = 4 * time.Second
	DefaultTimeout  = 10 * time.Second
)

// Validation errors.
var (
	ErrInvalidServer   = errors.New("server must be an http:// or https:// URL with a host")
	ErrInvalidInterval = errors.New("interval must be greater than zero")
	ErrInvalidTimeout  = errors.New("timeout must be greater than zero")
	ErrNegativeBound   = errors.New("must not be negative")
)

// Config holds the application configuration. Every field except ConfigFile
// can also be set from the YAML file named by --config; flags win over the file.
type Config struct {
	Server       string        `arg:"-s,--server,env:PROXY_PANEL_SERVER" help:"Base URL of the scanning service" yaml:"server"`
	Interval     time.Duration `arg:"--interval" help:"Poll interval" yaml:"interval"`
	Timeout      time.Duration `arg:"--timeout" help:"Per-request HTTP timeout" yaml:"timeout"`
	Targets      []string      `arg:"-t,--targets" help:"Initial target URLs for the scan form" yaml:"targets"`
	MaxProxies   int           `arg:"--max-proxies" help:"Initial max proxies for the scan form (0 = server default)" yaml:"max_proxies"`
	MaxPerTarget int           `arg:"--max-per-target" help:"Initial max per target for the scan form (0 = server default)" yaml:"max_per_target"`
	Filter       string        `arg:"--filter" help:"Initial glob filter for the results table" yaml:"filter"`
	Export       string        `arg:"--export" help:"Export destination: a path or sftp://user@host[:port]/path" yaml:"export"`
	LogFile      string        `arg:"--log-file" help:"Write a debug log to this file" yaml:"log_file"`
	Verbose      bool          `arg:"-v,--verbose" help:"Log every HTTP exchange to the debug log" yaml:"verbose"`
	ConfigFile   string        `arg:"-c,--config" help:"YAML config file" yaml:"-"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A terminal control panel for a remote proxy-scanning service"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "proxy-panel 1.0.0"
}

// Defaults returns a Config holding every default value.
func Defaults() *Config {
	return &Config{
		Server:   DefaultServer,
		Interval: DefaultInterval,
		Timeout:  DefaultTimeout,
		Export:   export.DefaultDestination,
	}
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	return load(func(cfg *Config) error {
		arg.MustParse(cfg)
		return nil
	})
}

// Parse is ParseFlags for an explicit argument list. Help and version requests
// are returned as arg.ErrHelp and arg.ErrVersion.
func Parse(args []string) (*Config, error) {
	return load(func(cfg *Config) error {
		parser, err := arg.NewParser(arg.Config{Program: "proxy-panel"}, cfg)
		if err != nil {
			return fmt.Errorf("failed to build argument parser: %w", err)
		}

		return parser.Parse(args) //nolint:wrapcheck // go-arg errors are already user-facing
	})
}

// LoadFile overlays the YAML file at path onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Export == "" {
		cfg.Export = export.DefaultDestination
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that can be wrong.
func (cfg *Config) Validate() error {
	serverURL, err := url.Parse(cfg.Server)
	if err != nil || (serverURL.Scheme != "http" && serverURL.Scheme != "https") || serverURL.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServer, cfg.Server)
	}

	if cfg.Interval <= 0 {
		return ErrInvalidInterval
	}

	if cfg.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if cfg.MaxProxies < 0 {
		return fmt.Errorf("max-proxies %w", ErrNegativeBound)
	}

	if cfg.MaxPerTarget < 0 {
		return fmt.Errorf("max-per-target %w", ErrNegativeBound)
	}

	if cfg.Filter != "" && !doublestar.ValidatePattern(cfg.Filter) {
		return fmt.Errorf("invalid filter pattern: %q", cfg.Filter)
	}

	if _, err := filesystem.ParseDestination(cfg.Export); err != nil {
		return fmt.Errorf("invalid export destination: %w", err)
	}

	return nil
}

// load runs parse over the defaults, and when a config file was named, runs it
// again over defaults+file so flags keep precedence.
func load(parse func(cfg *Config) error) (*Config, error) {
	cfg := Defaults()
	if err := parse(cfg); err != nil {
		return nil, err
	}

	if cfg.ConfigFile == "" {
		return PostProcessConfig(cfg)
	}

	merged := Defaults()
	if err := LoadFile(cfg.ConfigFile, merged); err != nil {
		return nil, err
	}

	if err := parse(merged); err != nil {
		return nil, err
	}

	return PostProcessConfig(merged)
}
