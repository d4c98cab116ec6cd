package object

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/roach88/stixcore/schema"
)

// options carries the injectable seams for default generation.
type options struct {
	clock schema.Clock
	idGen schema.IDGenerator
}

// Option configures a single construction or parse call.
type Option func(*options)

// WithClock overrides the clock used for DefaultNow properties.
// All defaulted timestamps of one construction share a single reading.
func WithClock(c schema.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithIDGenerator overrides the UUID source for DefaultIdentifier
// properties.
func WithIDGenerator(g schema.IDGenerator) Option {
	return func(o *options) { o.idGen = g }
}

func applyOptions(opts []Option) options {
	o := options{clock: schema.SystemClock{}, idGen: schema.NewUUID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Construct validates raw input against a schema and materializes the
// immutable object.
//
// Positional arguments map onto typ.Positional in declared order and merge
// with the named arguments. Supplying the same property both positionally
// and by keyword is a MultipleValuesError - there is no silent precedence.
//
// Validation proceeds in three passes over the schema:
//  1. undeclared input names fail with ExtraPropertiesError listing all of
//     them
//  2. required properties with neither a value nor a default are collected
//     exhaustively and fail with MissingPropertiesError in schema order
//  3. values are coerced in declaration order; the first failure fails
//     fast with InvalidValueError
//
// Defaults (fixed values, generated identifiers, construction timestamps)
// are filled during the final pass.
func Construct(typ *schema.Type, positional []any, named map[string]any, opts ...Option) (*Object, error) {
	o := applyOptions(opts)
	label := typ.DisplayLabel()

	if len(positional) > len(typ.Positional) {
		return nil, &ParseError{Reason: fmt.Sprintf(
			"too many positional arguments for %s: got %d, positional properties are (%s)",
			label, len(positional), strings.Join(typ.Positional, ", "))}
	}

	merged := make(map[string]any, len(named)+len(positional))
	for i, raw := range positional {
		if raw == nil {
			continue
		}
		merged[typ.Positional[i]] = raw
	}
	for name, raw := range named {
		if _, dup := merged[name]; dup {
			return nil, &MultipleValuesError{Type: label, Property: name}
		}
		merged[name] = raw
	}

	if extra := undeclaredNames(typ, merged); len(extra) > 0 {
		return nil, &ExtraPropertiesError{Type: label, Properties: extra}
	}

	var missing []string
	for i := range typ.Properties {
		p := &typ.Properties[i]
		if _, present := merged[p.Name]; present {
			continue
		}
		if p.Fixed != "" || p.HasDefault() {
			continue
		}
		if p.Required {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingPropertiesError{Type: label, Properties: missing}
	}

	// Single clock reading so created/modified defaults agree.
	now := NewTimestamp(o.clock.Now())

	values := make(map[string]Value, len(typ.Properties))
	names := make([]string, 0, len(typ.Properties))
	for i := range typ.Properties {
		p := &typ.Properties[i]

		raw, present := merged[p.Name]
		var v Value
		if present {
			coerced, reason := coerce(p, raw)
			if reason != "" {
				return nil, &InvalidValueError{Type: label, Property: p.Name, Reason: reason}
			}
			v = coerced
		} else {
			v = defaultValue(typ, p, now, o.idGen)
			if v == nil {
				continue // optional and absent
			}
		}

		if reason := checkConstraints(p, v); reason != "" {
			return nil, &InvalidValueError{Type: label, Property: p.Name, Reason: reason}
		}

		values[p.Name] = v
		names = append(names, p.Name)
	}

	return &Object{typ: typ, values: values, names: names}, nil
}

// undeclaredNames returns input names absent from the schema, sorted for
// deterministic reporting.
func undeclaredNames(typ *schema.Type, merged map[string]any) []string {
	var extra []string
	for name := range merged {
		if typ.Property(name) == nil {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}

// defaultValue produces the value for an absent property: the fixed value
// if one is declared, otherwise the property's default generator output.
// Returns nil when the property simply stays absent.
func defaultValue(typ *schema.Type, p *schema.Property, now Timestamp, idGen schema.IDGenerator) Value {
	if p.Fixed != "" {
		return String(p.Fixed)
	}
	switch p.Default {
	case schema.DefaultIdentifier:
		return String(typ.IDPrefix() + idGen())
	case schema.DefaultNow:
		return now
	default:
		return nil
	}
}

// coerce converts a raw input value to its canonical form per the
// descriptor kind. A non-empty reason string signals failure; reasons use
// the fixed phrasing consumed by InvalidValueError.
func coerce(p *schema.Property, raw any) (Value, string) {
	switch p.Kind {
	case schema.KindString, schema.KindIdentifier:
		s, ok := stringFromRaw(raw)
		if !ok {
			return nil, "must be a string."
		}
		return String(s), ""

	case schema.KindTimestamp:
		switch t := raw.(type) {
		case time.Time:
			return NewTimestamp(t), ""
		case Timestamp:
			return t, ""
		default:
			s, ok := stringFromRaw(raw)
			if !ok {
				return nil, "must be a timestamp or an RFC 3339 string."
			}
			ts, err := ParseTimestamp(s)
			if err != nil {
				return nil, "must be an RFC 3339 timestamp string."
			}
			return ts, ""
		}

	case schema.KindReference:
		if ref, ok := raw.(*Object); ok {
			id, ok := ref.GetString("id")
			if !ok {
				return nil, "references an object with no id."
			}
			return String(id), ""
		}
		s, ok := stringFromRaw(raw)
		if !ok {
			return nil, "must be an identifier string or a constructed object."
		}
		return String(s), ""

	case schema.KindInteger:
		i, ok := intFromRaw(raw)
		if !ok {
			return nil, "must be an integer."
		}
		return Int(i), ""

	case schema.KindBoolean:
		switch b := raw.(type) {
		case bool:
			return Bool(b), ""
		case Bool:
			return b, ""
		default:
			return nil, "must be a boolean."
		}

	case schema.KindStringList:
		list, ok := stringListFromRaw(raw)
		if !ok {
			return nil, "must be a list of strings."
		}
		return list, ""

	default:
		return nil, fmt.Sprintf("has unsupported kind %s.", p.Kind)
	}
}

// checkConstraints applies the fixed-value and prefix constraints to a
// coerced value. Fixed is checked first.
func checkConstraints(p *schema.Property, v Value) string {
	if p.Fixed == "" && p.Prefix == "" {
		return ""
	}
	s, ok := v.(String)
	if !ok {
		return "" // constraints only apply to string-valued properties
	}
	if p.Fixed != "" && string(s) != p.Fixed {
		return fmt.Sprintf("must equal '%s'.", p.Fixed)
	}
	if p.Prefix != "" && !strings.HasPrefix(string(s), p.Prefix) {
		return fmt.Sprintf("must start with '%s'.", p.Prefix)
	}
	return ""
}
