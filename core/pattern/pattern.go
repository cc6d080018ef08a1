package pattern

import (
	"fmt"
	"strings"
)

// Pattern is a compiled translation pattern. Compilation splits the source
// into literal text and variable references once, so formatting is a single
// pass over pre-parsed segments.
type Pattern struct {
	source   string
	segments []segment
}

type segment struct {
	text string
	// ref is the variable name for placeable segments; empty for literals.
	ref string
}

// Compile parses pattern source text. Placeables use the {$name} form.
// Compilation never fails: anything that does not parse as a placeable is
// kept as literal text, so even malformed translations format to something
// visible rather than being dropped.
func Compile(src string) *Pattern {
	p := &Pattern{source: src}

	rest := src
	for {
		open := strings.Index(rest, "{$")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open:], "}")
		if end < 0 {
			break
		}
		name := rest[open+2 : open+end]
		if name == "" || !validName(name) {
			// Not a placeable; keep the opening brace literal and move on.
			if open+2 <= len(rest) {
				p.appendLiteral(rest[:open+2])
				rest = rest[open+2:]
				continue
			}
			break
		}
		p.appendLiteral(rest[:open])
		p.segments = append(p.segments, segment{ref: name})
		rest = rest[open+end+1:]
	}
	p.appendLiteral(rest)

	return p
}

func (p *Pattern) appendLiteral(text string) {
	if text == "" {
		return
	}
	if n := len(p.segments); n > 0 && p.segments[n-1].ref == "" {
		p.segments[n-1].text += text
		return
	}
	p.segments = append(p.segments, segment{text: text})
}

func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Format substitutes variables into the pattern and returns the result.
// An unresolved reference keeps its literal {$name} text in the output and
// appends a *FormatError to errs. Formatting never fails; the returned
// string is always usable as display content.
func (p *Pattern) Format(vars map[string]any, errs *ErrorList) string {
	if p == nil {
		return ""
	}
	if len(p.segments) == 1 && p.segments[0].ref == "" {
		return p.segments[0].text
	}

	var sb strings.Builder
	sb.Grow(len(p.source))
	for _, seg := range p.segments {
		if seg.ref == "" {
			sb.WriteString(seg.text)
			continue
		}
		if v, ok := vars[seg.ref]; ok {
			sb.WriteString(fmt.Sprintf("%v", v))
			continue
		}
		errs.Append(&FormatError{Pattern: p.source, Name: seg.ref})
		sb.WriteString("{$" + seg.ref + "}")
	}
	return sb.String()
}

// Source returns the original pattern text.
func (p *Pattern) Source() string {
	if p == nil {
		return ""
	}
	return p.source
}

// IsEmpty reports whether the pattern has no content at all.
func (p *Pattern) IsEmpty() bool {
	return p == nil || len(p.segments) == 0
}
