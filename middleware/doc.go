// Package middleware provides net/http middleware that wires localization
// into request handling.
//
// Localize negotiates the request language from the lang query parameter
// or the Accept-Language header, orders the application's bundles into a
// fallback chain and stores a ready overlay context in the request
// context:
//
//	mux := http.NewServeMux()
//	mux.Handle("/", middleware.Localize(en, pl)(http.HandlerFunc(home)))
//
//	func home(w http.ResponseWriter, r *http.Request) {
//		lctx, _ := middleware.FromContext(r.Context())
//		out, _ := lctx.Render(overlay.Request{
//			ID:       "greeting",
//			Template: []*node.Node{node.Element("h1", nil)},
//			Vars:     map[string]any{"name": "Ada"},
//		})
//		_ = out.Component().Render(r.Context(), w)
//	}
//
// LocalizeWithConfig accepts a Skip predicate, a custom language extractor
// and extra overlay options (error sink, markup parser) applied to every
// per-request context.
package middleware
