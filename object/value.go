package object

import (
	"encoding/json"
	"time"
)

// Value is a sealed interface over the canonical in-memory property
// representations. Only String, Timestamp, Int, Bool, and List implement
// it, so a type switch over Value is exhaustive.
type Value interface {
	value() // sealed
}

// String is a canonical string property value. Identifier and reference
// properties also canonicalize to String.
type String string

func (String) value() {}

// Timestamp is a canonical timestamp property value: UTC, millisecond
// precision. Construct via NewTimestamp to guarantee normalization.
type Timestamp struct {
	t time.Time
}

func (Timestamp) value() {}

// NewTimestamp normalizes t to canonical form: UTC location, truncated to
// millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.UTC().Truncate(time.Millisecond)}
}

// Time returns the canonical time value.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// Format renders the canonical textual form: exactly three fractional
// digits and a literal Z suffix, e.g. "2016-04-06T20:06:37.000Z".
func (ts Timestamp) Format() string {
	return ts.t.Format("2006-01-02T15:04:05.000Z")
}

// Equal reports whether two timestamps denote the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// ParseTimestamp accepts an ISO-8601 / RFC 3339 string with optional
// fractional seconds and a Z or numeric offset suffix, and normalizes it
// to canonical form.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, err
	}
	return NewTimestamp(t), nil
}

// Int is a canonical integer property value. Always int64, never float.
type Int int64

func (Int) value() {}

// Bool is a canonical boolean property value.
type Bool bool

func (Bool) value() {}

// List is a canonical ordered list property value.
type List []Value

func (List) value() {}

// Equal reports deep equality of two values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && av.Equal(bv)
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// intFromRaw converts a raw numeric input to int64. JSON numbers arrive as
// json.Number (the parser decodes with UseNumber); callers may also pass
// native Go integers or whole floats.
func intFromRaw(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case Int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// stringFromRaw extracts a plain string from raw input, accepting either a
// native string or an already-canonical String value.
func stringFromRaw(raw any) (string, bool) {
	switch s := raw.(type) {
	case string:
		return s, true
	case String:
		return string(s), true
	default:
		return "", false
	}
}

// stringListFromRaw converts raw list input ([]string, []any of strings,
// or an already-canonical List of Strings) to a canonical List.
func stringListFromRaw(raw any) (List, bool) {
	switch items := raw.(type) {
	case []string:
		out := make(List, len(items))
		for i, s := range items {
			out[i] = String(s)
		}
		return out, true
	case []any:
		out := make(List, len(items))
		for i, item := range items {
			s, ok := stringFromRaw(item)
			if !ok {
				return nil, false
			}
			out[i] = String(s)
		}
		return out, true
	case List:
		for _, item := range items {
			if _, ok := item.(String); !ok {
				return nil, false
			}
		}
		return items, true
	default:
		return nil, false
	}
}
