package schema

// Kind identifies the validation and coercion behavior of a property.
// The set is closed: every descriptor is exactly one of these kinds, and
// the construction engine dispatches on Kind with no fallback path.
type Kind int

const (
	// KindString accepts string values as-is.
	KindString Kind = iota

	// KindTimestamp accepts timezone-aware time values or ISO-8601 strings
	// with optional fractional seconds and Z/offset suffix. Values are
	// normalized to UTC at millisecond precision.
	KindTimestamp

	// KindReference accepts an identifier string or a constructed object,
	// in which case the object's id property is extracted.
	KindReference

	// KindIdentifier accepts strings of the form "<type>--<uuid>".
	// Identifier properties usually carry a Prefix constraint and a
	// DefaultIdentifier generator.
	KindIdentifier

	// KindInteger accepts int, int64, or whole JSON numbers.
	KindInteger

	// KindBoolean accepts bool values.
	KindBoolean

	// KindStringList accepts a slice of strings (or of any holding strings).
	KindStringList
)

// String returns the kind name used in schema definitions and error text.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindReference:
		return "reference"
	case KindIdentifier:
		return "identifier"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindStringList:
		return "string-list"
	default:
		return "unknown"
	}
}

// KindFromName maps a schema-definition kind name to its Kind.
// Returns false for unrecognized names.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "string":
		return KindString, true
	case "timestamp":
		return KindTimestamp, true
	case "reference":
		return KindReference, true
	case "identifier":
		return KindIdentifier, true
	case "integer":
		return KindInteger, true
	case "boolean":
		return KindBoolean, true
	case "string-list":
		return KindStringList, true
	default:
		return 0, false
	}
}

// Default identifies the default-value source for a property whose value
// is absent from input.
type Default int

const (
	// DefaultNone means absent stays absent (and fails if Required).
	DefaultNone Default = iota

	// DefaultIdentifier generates "<type>--<uuid>" using the construction
	// options' id generator.
	DefaultIdentifier

	// DefaultNow fills the construction timestamp from the options' clock,
	// truncated to millisecond precision in UTC. All DefaultNow properties
	// of one construction share a single clock reading.
	DefaultNow
)

// Property describes validation, coercion, and defaulting for one field.
//
// Exactly one validation outcome exists per (descriptor, raw value) pair:
// either the value coerces to its canonical form, or validation reports a
// specific failure. Constraints are checked after coercion, Fixed first,
// then Prefix.
type Property struct {
	// Name is the property key in input, output, and error messages.
	Name string

	// Kind selects coercion behavior.
	Kind Kind

	// Required marks the property as mandatory when it has no default.
	Required bool

	// Fixed, when non-empty, constrains the coerced value to equal it.
	// Violations report reason "must equal '<Fixed>'."
	Fixed string

	// Prefix, when non-empty, constrains the coerced string to start with
	// it. Violations report reason "must start with '<Prefix>'."
	Prefix string

	// Default selects the generator used when the property is absent.
	Default Default

	// RefTypes optionally names the object types a KindReference property
	// may point at. Empty means any type. Informational for schema
	// consumers; reference coercion itself does not restrict targets.
	RefTypes []string
}

// HasDefault reports whether an absent value is filled by a generator.
func (p *Property) HasDefault() bool {
	return p.Default != DefaultNone
}
