package object

import (
	"fmt"
	"strings"
)

// MissingPropertiesError reports required properties absent from input.
//
// Detection is exhaustive: Properties carries every missing name in schema
// declaration order, never just the first.
type MissingPropertiesError struct {
	// Type is the display label of the object type, e.g. "Relationship".
	Type string

	// Properties lists all missing property names in schema order.
	Properties []string
}

// Error implements the error interface.
func (e *MissingPropertiesError) Error() string {
	return fmt.Sprintf("No values for required properties for %s: (%s).",
		e.Type, strings.Join(e.Properties, ", "))
}

// ExtraPropertiesError reports input properties not declared in the schema.
type ExtraPropertiesError struct {
	// Type is the display label of the object type.
	Type string

	// Properties lists all undeclared names supplied, sorted for
	// deterministic reporting (Go maps carry no caller ordering).
	Properties []string
}

// Error implements the error interface.
func (e *ExtraPropertiesError) Error() string {
	return fmt.Sprintf("Unexpected properties for %s: (%s).",
		e.Type, strings.Join(e.Properties, ", "))
}

// InvalidValueError reports a declared property whose value failed its
// coercion, fixed-value, or pattern check. Construction fails fast on the
// first invalid value in schema declaration order.
type InvalidValueError struct {
	// Type is the display label of the object type.
	Type string

	// Property is the offending property name.
	Property string

	// Reason is the fixed-template failure reason, e.g.
	// "must equal 'relationship'." or "must start with 'relationship--'."
	Reason string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid value for %s '%s': %s", e.Type, e.Property, e.Reason)
}

// MultipleValuesError reports a property supplied both positionally and by
// keyword in the same construction call.
type MultipleValuesError struct {
	// Type is the display label of the object type.
	Type string

	// Property is the doubly-supplied property name.
	Property string
}

// Error implements the error interface.
func (e *MultipleValuesError) Error() string {
	return fmt.Sprintf("Multiple values for %s '%s': supplied both positionally and by keyword.",
		e.Type, e.Property)
}

// ImmutableError reports a write attempt on a constructed object.
type ImmutableError struct {
	// Type is the display label of the object type.
	Type string

	// Property is the property the caller attempted to modify.
	Property string
}

// Error implements the error interface.
func (e *ImmutableError) Error() string {
	return fmt.Sprintf("Cannot modify '%s' property in '%s' after creation.",
		e.Property, e.Type)
}

// UnknownTypeError reports a type discriminator with no registered schema.
type UnknownTypeError struct {
	// TypeName is the unregistered discriminator value.
	TypeName string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown object type '%s'.", e.TypeName)
}

// ParseError reports malformed parse input: undecodable text, a non-object
// document, or a missing/non-string type discriminator.
type ParseError struct {
	// Reason is a human-readable description of the defect.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Cannot parse object: %s", e.Reason)
}
