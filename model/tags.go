package model

import "strconv"

// TagKind discriminates the value held by a TagValue.
type TagKind int

const (
	// TagString is a string-valued tag.
	TagString TagKind = iota
	// TagBool is a boolean-valued tag.
	TagBool
	// TagInt is an integer-valued tag.
	TagInt
	// TagFloat is a float-valued tag.
	TagFloat
)

// TagValue is a tagged variant for Jaeger tag values, which can be
// strings, booleans or numbers depending on the tag type reported by
// the client library.
type TagValue struct {
	Kind  TagKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
}

// StringTag returns a string-valued TagValue.
func StringTag(s string) TagValue {
	return TagValue{Kind: TagString, Str: s}
}

// BoolTag returns a boolean-valued TagValue.
func BoolTag(b bool) TagValue {
	return TagValue{Kind: TagBool, Bool: b}
}

// IntTag returns an integer-valued TagValue.
func IntTag(i int64) TagValue {
	return TagValue{Kind: TagInt, Int: i}
}

// FloatTag returns a float-valued TagValue.
func FloatTag(f float64) TagValue {
	return TagValue{Kind: TagFloat, Float: f}
}

// String renders the value regardless of its kind. Numeric and boolean
// values use their canonical textual form.
func (v TagValue) String() string {
	switch v.Kind {
	case TagBool:
		return strconv.FormatBool(v.Bool)
	case TagInt:
		return strconv.FormatInt(v.Int, 10)
	case TagFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return v.Str
	}
}

// Tags is a tag map keyed by tag name.
type Tags map[string]TagValue

// GetString returns the string rendering of the tag under key, or "" if
// the key is absent.
func (t Tags) GetString(key string) string {
	v, ok := t[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Has reports whether key is present.
func (t Tags) Has(key string) bool {
	_, ok := t[key]
	return ok
}
