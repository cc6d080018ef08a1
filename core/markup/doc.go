// Package markup parses formatted translation values that contain inline
// markup into flat node sequences for the overlay reconciler.
//
// The parser is an injected capability of the localization context; this
// package provides the default implementation on top of golang.org/x/net/html.
// Output is one flat level by design: text runs stay text, elements surface
// only their tag name and flattened text content. The reconciler decides
// what each entry becomes, the parser never does.
//
//	markup.Parse("Click <a>here</a> now")
//	// [{text "Click "}, {element a "here"}, {text " now"}]
//
// ContainsMarkup is the cheap pre-check the reconciler uses to keep plain
// values off the parsing path altogether.
package markup
