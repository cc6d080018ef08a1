// Package logger provides slog attribute helpers for localization
// diagnostics and an adapter that turns a structured logger into an
// overlay error sink.
//
//	ctx, _ := overlay.New(
//		overlay.WithBundles(bundles...),
//		overlay.WithErrorSink(logger.SlogSink(slog.Default())),
//	)
//
// All helpers follow the empty-Attr pattern: zero values produce an empty
// attribute that slog drops, so call sites need no nil checks.
package logger
