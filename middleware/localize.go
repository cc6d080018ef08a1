package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/overlay/core/bundle"
	"github.com/dmitrymomot/overlay/core/overlay"
)

// localizeContextKey is used as a key for storing the overlay context in
// the request context.
type localizeContextKey struct{}

// LocalizeConfig configures the localization middleware.
type LocalizeConfig struct {
	// Bundles is the full bundle set to negotiate against (required).
	Bundles []*bundle.Bundle
	// Options are extra overlay context options applied per request
	// (error sink, markup parser, void tags). WithBundles is set by the
	// middleware itself from the negotiated chain.
	Options []overlay.Option
	// Skip defines a function to skip middleware execution for specific
	// requests.
	Skip func(r *http.Request) bool
	// LanguageExtractor returns the language preference string used for
	// negotiation. Default: the lang query parameter when present,
	// otherwise the Accept-Language header.
	LanguageExtractor func(r *http.Request) string
}

// Localize creates localization middleware with default configuration.
func Localize(bundles ...*bundle.Bundle) func(http.Handler) http.Handler {
	return LocalizeWithConfig(LocalizeConfig{Bundles: bundles})
}

// LocalizeWithConfig creates localization middleware that negotiates the
// request language, builds an overlay context with the matching bundle
// chain and stores it in the request context for handlers to render with.
func LocalizeWithConfig(cfg LocalizeConfig) func(http.Handler) http.Handler {
	if len(cfg.Bundles) == 0 {
		panic("localize middleware: at least one bundle is required")
	}

	// Surface bad options at construction time, not per request.
	if _, err := overlay.New(append(cfg.Options, overlay.WithBundles(cfg.Bundles...))...); err != nil {
		panic("localize middleware: " + err.Error())
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) string {
			if lang := r.URL.Query().Get("lang"); lang != "" {
				return lang
			}
			return r.Header.Get("Accept-Language")
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			chain := bundle.Negotiate(cfg.LanguageExtractor(r), cfg.Bundles)
			// Fresh option slice per request; appending to cfg.Options
			// directly would share its backing array across requests.
			opts := make([]overlay.Option, 0, len(cfg.Options)+1)
			opts = append(opts, cfg.Options...)
			opts = append(opts, overlay.WithBundles(chain...))
			lctx, err := overlay.New(opts...)
			if err != nil {
				// Options were validated at construction; serve without a
				// context rather than failing the request.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), localizeContextKey{}, lctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext retrieves the overlay context stored by the middleware.
// Returns the context and a boolean indicating whether it was found.
func FromContext(ctx context.Context) (*overlay.Context, bool) {
	lctx, ok := ctx.Value(localizeContextKey{}).(*overlay.Context)
	return lctx, ok
}
