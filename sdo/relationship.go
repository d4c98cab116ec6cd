package sdo

import (
	"github.com/roach88/stixcore/object"
)

// Relationship is a typed view over a constructed relationship object.
// Accessors read the object's canonical store directly.
type Relationship struct {
	*object.Object
}

// NewRelationship constructs a relationship positionally:
// (source, relationshipType, target). source and target accept either an
// identifier string or a constructed object, whose id is extracted.
// extra supplies any further properties by keyword; a property appearing
// both positionally and in extra fails with MultipleValuesError.
func NewRelationship(source any, relationshipType string, target any, extra map[string]any, opts ...object.Option) (Relationship, error) {
	typ, _ := registry.Lookup(TypeRelationship)
	o, err := object.Construct(typ, []any{source, relationshipType, target}, extra, opts...)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{o}, nil
}

// NewRelationshipFrom constructs a relationship from keyword properties
// only.
func NewRelationshipFrom(props map[string]any, opts ...object.Option) (Relationship, error) {
	typ, _ := registry.Lookup(TypeRelationship)
	o, err := object.Construct(typ, nil, props, opts...)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{o}, nil
}

// RelationshipType returns the relationship_type property.
func (r Relationship) RelationshipType() string {
	v, _ := r.GetString("relationship_type")
	return v
}

// SourceRef returns the source_ref property.
func (r Relationship) SourceRef() string {
	v, _ := r.GetString("source_ref")
	return v
}

// TargetRef returns the target_ref property.
func (r Relationship) TargetRef() string {
	v, _ := r.GetString("target_ref")
	return v
}
