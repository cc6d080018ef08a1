package bundle

import "errors"

var (
	// ErrNoLocale is returned when a bundle is created without any locale.
	ErrNoLocale = errors.New("bundle: at least one locale is required")
	// ErrInvalidLocale is returned for locale strings that do not parse as
	// BCP 47 language tags.
	ErrInvalidLocale = errors.New("bundle: invalid locale")
	// ErrEmptyMessageID is returned when adding a message without an id.
	ErrEmptyMessageID = errors.New("bundle: message id cannot be empty")
	// ErrInvalidMessage is returned for message file entries that are
	// neither a string value nor a message table.
	ErrInvalidMessage = errors.New("bundle: invalid message definition")
)
