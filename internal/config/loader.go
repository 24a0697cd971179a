package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognised by [applyEnv]. They match the
// original bridge deployment so existing environments keep working.
const (
	envAPIKey      = "NVIDIA_API_KEY"
	envFunctionID  = "A2F_FUNCTION_ID"
	envOutputFPS   = "A2F_OUTPUT_FPS"
	envBridgeToken = "A2F_BRIDGE_TOKEN"
)

// Load reads the YAML configuration file at path, applies environment
// overrides and defaults, and returns a validated [Config].
//
// A missing file is not an error: the bridge can be configured entirely from
// the environment, so Load then proceeds from an empty config.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := &Config{}
		if err := finalize(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies environment overrides
// and defaults, and validates the result. Useful in tests where configs are
// constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finalize applies environment overrides, fills defaults, and validates.
func finalize(cfg *Config) error {
	if err := applyEnv(cfg); err != nil {
		return err
	}
	applyDefaults(cfg)
	return Validate(cfg)
}

// applyEnv overlays the recognised environment variables onto cfg. A set
// variable always wins over the file value.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envAPIKey); ok {
		cfg.Inference.APIKey = v
	}
	if v, ok := os.LookupEnv(envFunctionID); ok {
		cfg.Inference.FunctionID = v
	}
	if v, ok := os.LookupEnv(envBridgeToken); ok {
		cfg.Auth.BridgeToken = v
	}
	if v, ok := os.LookupEnv(envOutputFPS); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s %q is not an integer: %w", envOutputFPS, v, err)
		}
		cfg.Inference.OutputFPS = fps
	}
	return nil
}

// applyDefaults fills zero values with the documented defaults.
func applyDefaults(cfg *Config) {
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = DefaultListenAddr
	}
	if cfg.Inference.Transport == "" {
		cfg.Inference.Transport = TransportNVCF
	}
	if cfg.Inference.FunctionID == "" {
		cfg.Inference.FunctionID = DefaultFunctionID
	}
	if cfg.Inference.OutputFPS == 0 {
		cfg.Inference.OutputFPS = DefaultOutputFPS
	}
	if cfg.Inference.RequestTimeout == 0 {
		cfg.Inference.RequestTimeout = DefaultRequestTimeout
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if !cfg.Inference.Transport.IsValid() {
		errs = append(errs, fmt.Errorf("inference.transport %q is invalid; valid values: nvcf, ace", cfg.Inference.Transport))
	}
	if cfg.Inference.Transport == TransportACE && cfg.Inference.Target == "" {
		errs = append(errs, errors.New("inference.target is required when transport is ace"))
	}
	if cfg.Inference.OutputFPS <= 0 {
		errs = append(errs, fmt.Errorf("inference.output_fps %d must be positive", cfg.Inference.OutputFPS))
	}
	if cfg.Inference.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("inference.request_timeout %s must be positive", cfg.Inference.RequestTimeout))
	}

	return errors.Join(errs...)
}
