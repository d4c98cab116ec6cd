package sdo

import (
	"github.com/roach88/stixcore/object"
)

// Identity is a typed view over a constructed identity object.
type Identity struct {
	*object.Object
}

// NewIdentity constructs an identity object from keyword properties.
func NewIdentity(props map[string]any, opts ...object.Option) (Identity, error) {
	typ, _ := registry.Lookup(TypeIdentity)
	o, err := object.Construct(typ, nil, props, opts...)
	if err != nil {
		return Identity{}, err
	}
	return Identity{o}, nil
}

// Name returns the name property.
func (i Identity) Name() string {
	v, _ := i.GetString("name")
	return v
}

// IdentityClass returns the identity_class property.
func (i Identity) IdentityClass() string {
	v, _ := i.GetString("identity_class")
	return v
}
