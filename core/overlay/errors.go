package overlay

import "errors"

// Fatal errors mark call-site bugs. Render aborts with no output so the
// incorrect usage surfaces immediately instead of degrading silently.
var (
	// ErrMissingContext is returned when Render is invoked without a
	// localization context.
	ErrMissingContext = errors.New("overlay: localization context is required")
	// ErrInvalidChildCount is returned when the request template carries
	// more than one sibling node.
	ErrInvalidChildCount = errors.New("overlay: template must contain at most one node")
)

// Recoverable errors are reported through the context's diagnostic sink;
// rendering falls back to the caller's template so the UI never goes blank
// over a translation problem.
var (
	// ErrNoMessageID is reported when the request carries no message id.
	ErrNoMessageID = errors.New("overlay: no message id provided")
	// ErrNoBundlesLoaded is reported when the context has no bundles at all.
	ErrNoBundlesLoaded = errors.New("overlay: no bundles loaded")
	// ErrMessageNotFound is reported when no loaded bundle has the message.
	ErrMessageNotFound = errors.New("overlay: message not found")
)
