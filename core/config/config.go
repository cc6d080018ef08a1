package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/overlay/core/bundle"
)

// Config holds the environment-driven localization settings. The library
// packages never read the environment themselves; applications load a
// Config at startup and wire the result into bundles and contexts.
type Config struct {
	// DefaultLanguage is the locale served when negotiation finds nothing
	// better. It is always part of Languages.
	DefaultLanguage string `env:"L10N_DEFAULT_LANGUAGE" envDefault:"en"`
	// Languages lists the locales the application ships bundles for.
	Languages []string `env:"L10N_LANGUAGES" envSeparator:"," envDefault:"en"`
	// LocalesDir is the directory holding active.<lang>.toml message files.
	LocalesDir string `env:"L10N_LOCALES_DIR" envDefault:"locales"`
	// DisableMarkup turns off markup reconciliation application-wide.
	DisableMarkup bool `env:"L10N_DISABLE_MARKUP" envDefault:"false"`
}

var loadEnvOnce sync.Once

// Load parses the configuration from environment variables. A .env file in
// the working directory is loaded once per process before the first parse;
// a missing file is not an error.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	if !slices.Contains(cfg.Languages, cfg.DefaultLanguage) {
		cfg.Languages = append([]string{cfg.DefaultLanguage}, cfg.Languages...)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure, for application startup.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadBundles builds one bundle per configured language from the locales
// directory, default language first. Each language loads its
// active.<lang>.toml message file.
func (c Config) LoadBundles() ([]*bundle.Bundle, error) {
	rest := slices.DeleteFunc(slices.Clone(c.Languages), func(lang string) bool {
		return lang == c.DefaultLanguage
	})
	ordered := append([]string{c.DefaultLanguage}, rest...)

	bundles := make([]*bundle.Bundle, 0, len(ordered))
	for _, lang := range ordered {
		b, err := bundle.New(lang)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(c.LocalesDir, "active."+lang+".toml")
		if err := b.LoadMessageFile(path); err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}
