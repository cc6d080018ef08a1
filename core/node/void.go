package node

// voidTags lists the HTML element types that structurally cannot own
// children. The table is shared by template handling and allow-listed
// element handling so both sides classify tags identically.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether the tag names a void element. Matching is exact;
// callers are expected to lower-case tags first (parsers in this module
// already do).
func IsVoid(tag string) bool {
	return voidTags[tag]
}

// VoidTags returns a copy of the void element table for callers that need
// to extend or replace the classification.
func VoidTags() map[string]bool {
	out := make(map[string]bool, len(voidTags))
	for k := range voidTags {
		out[k] = true
	}
	return out
}
