package sdo

import (
	"github.com/roach88/stixcore/object"
	"github.com/roach88/stixcore/schema"
)

// Type discriminators for the built-in domain objects.
const (
	TypeRelationship = "relationship"
	TypeIndicator    = "indicator"
	TypeMalware      = "malware"
	TypeIdentity     = "identity"
)

// commonProperties is the shared property header every domain object type
// starts with: fixed type, prefixed generated id, defaulted created and
// modified timestamps. Declaration order here is canonical serialization
// order.
func commonProperties(typeName string) []schema.Property {
	return []schema.Property{
		{Name: "type", Kind: schema.KindString, Fixed: typeName},
		{Name: "id", Kind: schema.KindIdentifier, Prefix: typeName + "--", Default: schema.DefaultIdentifier},
		{Name: "created", Kind: schema.KindTimestamp, Default: schema.DefaultNow},
		{Name: "modified", Kind: schema.KindTimestamp, Default: schema.DefaultNow},
	}
}

// RelationshipSchema returns the relationship type schema. Positional
// construction order is (source_ref, relationship_type, target_ref).
func RelationshipSchema() *schema.Type {
	return &schema.Type{
		Name:  TypeRelationship,
		Label: "Relationship",
		Properties: append(commonProperties(TypeRelationship),
			schema.Property{Name: "relationship_type", Kind: schema.KindString, Required: true},
			schema.Property{Name: "description", Kind: schema.KindString},
			schema.Property{Name: "source_ref", Kind: schema.KindReference, Required: true},
			schema.Property{Name: "target_ref", Kind: schema.KindReference, Required: true},
		),
		Positional: []string{"source_ref", "relationship_type", "target_ref"},
	}
}

// IndicatorSchema returns the indicator type schema.
func IndicatorSchema() *schema.Type {
	return &schema.Type{
		Name:  TypeIndicator,
		Label: "Indicator",
		Properties: append(commonProperties(TypeIndicator),
			schema.Property{Name: "labels", Kind: schema.KindStringList, Required: true},
			schema.Property{Name: "name", Kind: schema.KindString},
			schema.Property{Name: "description", Kind: schema.KindString},
			schema.Property{Name: "pattern", Kind: schema.KindString, Required: true},
			schema.Property{Name: "valid_from", Kind: schema.KindTimestamp, Required: true, Default: schema.DefaultNow},
			schema.Property{Name: "valid_until", Kind: schema.KindTimestamp},
		),
	}
}

// MalwareSchema returns the malware type schema.
func MalwareSchema() *schema.Type {
	return &schema.Type{
		Name:  TypeMalware,
		Label: "Malware",
		Properties: append(commonProperties(TypeMalware),
			schema.Property{Name: "labels", Kind: schema.KindStringList, Required: true},
			schema.Property{Name: "name", Kind: schema.KindString, Required: true},
			schema.Property{Name: "description", Kind: schema.KindString},
		),
	}
}

// IdentitySchema returns the identity type schema.
func IdentitySchema() *schema.Type {
	return &schema.Type{
		Name:  TypeIdentity,
		Label: "Identity",
		Properties: append(commonProperties(TypeIdentity),
			schema.Property{Name: "name", Kind: schema.KindString, Required: true},
			schema.Property{Name: "description", Kind: schema.KindString},
			schema.Property{Name: "identity_class", Kind: schema.KindString, Required: true},
			schema.Property{Name: "sectors", Kind: schema.KindStringList},
			schema.Property{Name: "contact_information", Kind: schema.KindString},
		),
	}
}

// NewRegistry builds and freezes a registry of all built-in types.
func NewRegistry() *schema.Registry {
	b := schema.NewRegistryBuilder()
	b.MustRegister(RelationshipSchema())
	b.MustRegister(IndicatorSchema())
	b.MustRegister(MalwareSchema())
	b.MustRegister(IdentitySchema())
	return b.Freeze()
}

// registry is the process-wide frozen registry of built-ins. Populated at
// package initialization, read-only afterward.
var registry = NewRegistry()

// Registry returns the frozen built-in registry.
func Registry() *schema.Registry {
	return registry
}

// Parse reconstructs a built-in domain object from canonical text or an
// already-decoded mapping.
func Parse(input any, opts ...object.Option) (*object.Object, error) {
	return object.Parse(registry, input, opts...)
}
