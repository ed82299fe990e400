package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config configures the rendering pipeline. Zero fields are set to their
// defaults. An empty trace level leaves the tracers as they are.
type Config struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	UserStylesheet string `yaml:"user-stylesheet"` // CSS text of origin User
	UserDefaults   *bool  `yaml:"user-defaults"`   // nil means true
	TraceLevel     string `yaml:"trace-level"`     // "debug", "info", "error" or empty
}

// Default viewport size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrConfig is flagged for invalid configuration values.
var ErrConfig = errors.New("invalid configuration")

// DefaultConfig returns a configuration with a viewport of 800×600 pixels,
// default user rules enabled and no user stylesheet.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML configuration. Omitted fields are set to their
// defaults.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithUserDefaults returns wether the default user stylesheet is used.
func (cfg Config) WithUserDefaults() bool {
	return cfg.UserDefaults == nil || *cfg.UserDefaults
}

func (cfg *Config) applyDefaults() {
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = DefaultWidth
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = DefaultHeight
	}
	if cfg.UserDefaults == nil {
		t := true
		cfg.UserDefaults = &t
	}
}

func (cfg Config) validate() error {
	if cfg.Viewport.Width < 0 || cfg.Viewport.Height < 0 {
		return fmt.Errorf("viewport %g×%g: %w", cfg.Viewport.Width, cfg.Viewport.Height, ErrConfig)
	}
	if _, err := traceLevel(cfg.TraceLevel); err != nil {
		return err
	}
	return nil
}

var traceKeys = []string{
	"boxflow.dom", "boxflow.style", "boxflow.cssom", "boxflow.frame", "boxflow.engine",
}

// setupTracing sets the trace level of all the pipeline's tracers, if a
// trace level is configured.
func (cfg Config) setupTracing() {
	if cfg.TraceLevel == "" {
		return
	}
	level, err := traceLevel(cfg.TraceLevel)
	if err != nil {
		return
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("trace level %q: %w", s, ErrConfig)
}
