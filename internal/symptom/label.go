package symptom

import "strings"

// Label keeps the stored label separate from its display decoration.
type Label struct {
	Raw   string `json:"raw"`
	Glyph string `json:"glyph,omitempty"`
	Name  string `json:"name"`
	Key   string `json:"key"`
}

// Parse normalizes one raw selection. The glyph is removed exactly once here;
// downstream stages only read Key.
func Parse(raw string) Label {
	glyph, name := stripGlyph(raw)
	return Label{
		Raw:   raw,
		Glyph: glyph,
		Name:  name,
		Key:   lower(name),
	}
}

// Display re-attaches the severity glyph, if the label carried one.
func (l Label) Display() string {
	if l.Glyph == "" {
		return l.Name
	}
	return l.Glyph + " " + l.Name
}

// ParseAll parses raw selections, dropping blank entries and keeping the first
// occurrence of each normalized key.
func ParseAll(raws []string) []Label {
	seen := make(map[string]struct{}, len(raws))
	out := make([]Label, 0, len(raws))
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		l := Parse(raw)
		if l.Key == "" {
			continue
		}
		if _, dup := seen[l.Key]; dup {
			continue
		}
		seen[l.Key] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Keys returns the normalized keys in order.
func Keys(labels []Label) []string {
	keys := make([]string, len(labels))
	for i, l := range labels {
		keys[i] = l.Key
	}
	return keys
}

// Names returns the glyph-free display names in order.
func Names(labels []Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}

// Text joins the normalized keys with single spaces. Keyword rules that search
// across the whole selection match against this string.
func Text(labels []Label) string {
	return strings.Join(Keys(labels), " ")
}
