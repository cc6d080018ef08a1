// Package pattern implements translation patterns: unformatted message
// content with {$name} variable placeables that becomes display text once
// variables are substituted.
//
// Patterns are compiled once (typically at bundle load) and formatted many
// times. Formatting is infallible by design: missing variables degrade to
// their literal {$name} text in the output and are recorded as
// *FormatError values in the caller's ErrorList, so a translation mistake
// never blanks the UI.
//
//	p := pattern.Compile("Hello, {$name}!")
//
//	var errs pattern.ErrorList
//	out := p.Format(map[string]any{"name": "Ada"}, &errs)
//	// out == "Hello, Ada!", errs.Len() == 0
//
//	out = p.Format(nil, &errs)
//	// out == "Hello, {$name}!", errs.Len() == 1
//
// ErrorList is the error batch shared across the overlay packages: each
// rendering call accumulates into its own list and flushes it to the
// context's diagnostic sink before returning.
package pattern
