package tariff

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Masterminds/semver/v3"
)

const logPrefix = "tariff:loader"

// supportedSchema is the tariff schema versions this build understands.
const supportedSchema = "^1"

// LoadConfig loads a tariff config from file paths or environment.
// It tries paths in order: first any paths passed in, then the TARIFF_FILE
// env var, then defaults. When no file is found the embedded default tariff
// is used.
func LoadConfig(paths ...string) (*Config, error) {
	all := make([]string, 0, len(paths)+3)
	for _, p := range paths {
		if p != "" {
			all = append(all, p)
		}
	}
	if envPath := os.Getenv("TARIFF_FILE"); envPath != "" {
		all = append(all, envPath)
	}
	all = append(all, "config/tariff.json", "tariff.json")

	for _, p := range all {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}

		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			slog.Warn(fmt.Sprintf("%s - Failed to parse tariff file %s: %v", logPrefix, p, err))
			continue
		}
		if err := Validate(&cfg); err != nil {
			return nil, fmt.Errorf("%s - invalid tariff file %s: %w", logPrefix, p, err)
		}

		slog.Info(fmt.Sprintf("%s - Loaded tariff config from %s", logPrefix, p))
		return &cfg, nil
	}

	slog.Info(fmt.Sprintf("%s - Using default tariff config", logPrefix))
	return DefaultConfig(), nil
}

// LoadFile loads and validates a tariff config from a single file. Unlike
// LoadConfig it never falls back: a missing, malformed, or invalid file is
// an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s - read tariff file %s: %w", logPrefix, path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s - parse tariff file %s: %w", logPrefix, path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s - invalid tariff file %s: %w", logPrefix, path, err)
	}
	return &cfg, nil
}

// Validate checks that a tariff config is structurally usable: a supported
// schema version and well-formed enabled entries.
func Validate(cfg *Config) error {
	v, err := semver.NewVersion(cfg.Version)
	if err != nil {
		return fmt.Errorf("version %q is not valid semver: %w", cfg.Version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("schema version %s is outside supported range %s", cfg.Version, supportedSchema)
	}

	for key, def := range cfg.Operations {
		if !def.Enabled {
			continue
		}
		switch def.Kind {
		case KindMarkup, KindCut:
		default:
			return fmt.Errorf("operation %q has unknown kind %q", key, def.Kind)
		}
		if def.Rate < 0 || def.Rate >= 1 {
			return fmt.Errorf("operation %q has rate %v outside [0, 1)", key, def.Rate)
		}
	}
	return nil
}
