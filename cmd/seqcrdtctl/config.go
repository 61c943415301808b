package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional on-disk settings file, read once at startup.
// Flags passed on the command line override whatever it sets.
type fileConfig struct {
	Algorithm string `toml:"algorithm"`
	Agent     string `toml:"agent"`
	Verbose   bool   `toml:"verbose"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{Algorithm: "yjsMod"}
}

// loadFileConfig reads path with a two-pass decode: first into the typed
// struct, then into a raw map to flag unknown keys as warnings rather than
// fatal errors, since this file is optional and hand-edited.
func loadFileConfig(path string) (*fileConfig, error) {
	cfg := defaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := validateFileConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	for _, key := range md.Undecoded() {
		fmt.Fprintf(os.Stderr, "warning: %s: unknown config key %q\n", path, key.String())
	}

	return cfg, nil
}

func validateFileConfig(cfg *fileConfig) error {
	if _, ok := algorithmByName(cfg.Algorithm); !ok {
		return fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
	return nil
}
