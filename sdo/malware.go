package sdo

import (
	"github.com/roach88/stixcore/object"
)

// Malware is a typed view over a constructed malware object.
type Malware struct {
	*object.Object
}

// NewMalware constructs a malware object from keyword properties.
func NewMalware(props map[string]any, opts ...object.Option) (Malware, error) {
	typ, _ := registry.Lookup(TypeMalware)
	o, err := object.Construct(typ, nil, props, opts...)
	if err != nil {
		return Malware{}, err
	}
	return Malware{o}, nil
}

// Name returns the name property.
func (m Malware) Name() string {
	v, _ := m.GetString("name")
	return v
}

// Labels returns the labels property.
func (m Malware) Labels() []string {
	v, _ := m.GetStringList("labels")
	return v
}
