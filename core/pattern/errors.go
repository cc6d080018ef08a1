package pattern

import (
	"errors"
	"fmt"
)

// ErrUnknownVariable marks a placeable that had no value supplied at format
// time. Matched with errors.Is against *FormatError values.
var ErrUnknownVariable = errors.New("unknown variable reference")

// FormatError records one unresolved variable reference from a format call.
// It is recoverable: the formatted string still contains the literal
// placeable text where the value should have been.
type FormatError struct {
	// Pattern is the source text of the pattern being formatted.
	Pattern string
	// Name is the variable the pattern referenced.
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pattern %q: unknown variable reference {$%s}", e.Pattern, e.Name)
}

func (e *FormatError) Unwrap() error {
	return ErrUnknownVariable
}

// ErrorList is an append-only error batch. Each formatting or rendering
// call owns its list and flushes it before returning, so concurrent calls
// never share one. A nil *ErrorList is a valid no-op sink.
type ErrorList struct {
	errs []error
}

// Append adds an error to the batch. Nil list and nil errors are ignored.
func (l *ErrorList) Append(err error) {
	if l == nil || err == nil {
		return
	}
	l.errs = append(l.errs, err)
}

// Errors returns the accumulated errors in append order.
func (l *ErrorList) Errors() []error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Len returns the number of accumulated errors.
func (l *ErrorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.errs)
}
