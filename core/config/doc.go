// Package config provides environment-driven localization settings using
// the caarlos0/env library, with .env files loaded automatically on first
// use.
//
//	cfg := config.MustLoad()
//
//	bundles, err := cfg.LoadBundles()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Recognized variables:
//
//	L10N_DEFAULT_LANGUAGE  default locale (default "en")
//	L10N_LANGUAGES         comma-separated locale list (default "en")
//	L10N_LOCALES_DIR       directory with active.<lang>.toml files
//	L10N_DISABLE_MARKUP    disable markup reconciliation entirely
//
// The default language is always included in Languages, and LoadBundles
// returns it first so the bundle chain falls back to it.
package config
