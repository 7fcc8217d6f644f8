package spanschema

import "strings"

// Tag is a key/value pair bound to a declared tag key.
type Tag struct {
	Key   TagKey
	Value string
}

// TagOf returns the tag for a static key.
func TagOf(key TagKey, value string) Tag {
	return Tag{Key: key, Value: value}
}

// Compare orders tags by key.
func (t Tag) Compare(o Tag) int {
	return strings.Compare(t.Key.Key(), o.Key.Key())
}

// FormatEvent renders the value of an event. Static events render their literal text,
// "%%" becoming "%". Dynamic events get their wildcard replaced by param; called without a
// parameter they return the template unchanged.
func FormatEvent(v EventValue, param ...string) string {
	tmpl := v.Value()
	segments := Segments(tmpl)
	switch {
	case len(segments) == 1:
		return segments[0]
	case len(param) == 0:
		return tmpl
	}
	return segments[0] + param[0] + strings.Join(segments[1:], Wildcard)
}
