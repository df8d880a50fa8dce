package config

import (
	"fmt"
	"os"
	"strconv"

	"fortio.org/safecast"
)

// Environment variables recognized by the EnvBuilder.
const (
	EnvTargetName       = "QEC_TARGET_NAME"
	EnvTargetConfigPath = "QEC_TARGET_CONFIG_PATH"
	EnvVerbosity        = "QEC_VERBOSITY"
	EnvMaxThreads       = "QEC_MAX_THREADS"
)

// EnvBuilder is the environment-variable configuration stage. It recognizes
// a small fixed set of variables and fails construction on malformed values
// instead of silently falling back.
type EnvBuilder struct{}

// PopulateConfig overlays any recognized environment variables onto cfg.
func (EnvBuilder) PopulateConfig(cfg *Config) error {
	var overlay Config

	if name, ok := os.LookupEnv(EnvTargetName); ok {
		overlay.TargetName = Some(name)
	}
	if path, ok := os.LookupEnv(EnvTargetConfigPath); ok {
		overlay.TargetConfigPath = Some(path)
	}
	if token, ok := os.LookupEnv(EnvVerbosity); ok {
		level, err := ParseVerbosityToken(token)
		if err != nil {
			return err
		}
		overlay.Verbosity = Some(level)
	}
	if raw, ok := os.LookupEnv(EnvMaxThreads); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("unable to parse maximum threads from %q", raw)
		}
		threads, err := safecast.Conv[uint](n)
		if err != nil {
			return fmt.Errorf("unable to parse maximum threads from %q: %w", raw, err)
		}
		overlay.MaxThreads = Some(threads)
	}

	*cfg = Merge(*cfg, overlay)
	return nil
}
