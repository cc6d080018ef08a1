package bundle

import "golang.org/x/text/language"

// Negotiate orders bundles into a fallback chain for the given
// Accept-Language header: the bundle whose primary locale best matches the
// client preference comes first, the rest keep their original order. The
// input slice is never modified. With an empty or unparseable header the
// original order is returned unchanged, so the first bundle acts as the
// application default.
func Negotiate(acceptLanguage string, bundles []*Bundle) []*Bundle {
	out := append([]*Bundle(nil), bundles...)
	if len(out) < 2 || acceptLanguage == "" {
		return out
	}

	tags := make([]language.Tag, len(out))
	for i, b := range out {
		if locs := b.Locales(); len(locs) > 0 {
			tags[i] = locs[0]
		} else {
			tags[i] = language.Und
		}
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return out
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No || idx <= 0 || idx >= len(out) {
		return out
	}

	best := out[idx]
	copy(out[1:idx+1], out[:idx])
	out[0] = best
	return out
}
