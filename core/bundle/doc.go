// Package bundle stores translation messages per locale and negotiates
// which bundles serve a request.
//
// A Message pairs an optional value pattern with named attribute patterns;
// a Bundle maps message ids to messages for one locale chain. Bundles are
// loaded once at startup, from TOML files or programmatically, and are
// read-only afterwards.
//
// # Loading messages
//
//	b, err := bundle.New("en")
//	if err != nil { ... }
//	if err := b.LoadMessageFile("locales/active.en.toml"); err != nil { ... }
//
// The TOML shape mirrors the message model:
//
//	save = "Save"
//
//	[greeting]
//	value = "Hello, {$name}!"
//	[greeting.attributes]
//	title = "Greeting tooltip"
//
// Messages can equally be built in code:
//
//	_ = b.AddMessage(bundle.NewMessage("farewell", "Bye, {$name}!", nil))
//
// # Locale negotiation
//
// Negotiate orders a bundle list into a fallback chain from an
// Accept-Language header using golang.org/x/text/language matching:
//
//	chain := bundle.Negotiate(r.Header.Get("Accept-Language"), []*bundle.Bundle{en, pl, de})
//
// The first bundle in the result is the best client match; resolution then
// walks the chain in order.
package bundle
