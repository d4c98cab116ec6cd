package sdo

import (
	"time"

	"github.com/roach88/stixcore/object"
)

// Indicator is a typed view over a constructed indicator object.
type Indicator struct {
	*object.Object
}

// NewIndicator constructs an indicator from keyword properties.
func NewIndicator(props map[string]any, opts ...object.Option) (Indicator, error) {
	typ, _ := registry.Lookup(TypeIndicator)
	o, err := object.Construct(typ, nil, props, opts...)
	if err != nil {
		return Indicator{}, err
	}
	return Indicator{o}, nil
}

// Labels returns the labels property.
func (i Indicator) Labels() []string {
	v, _ := i.GetStringList("labels")
	return v
}

// Pattern returns the pattern property.
func (i Indicator) Pattern() string {
	v, _ := i.GetString("pattern")
	return v
}

// ValidFrom returns the valid_from property.
func (i Indicator) ValidFrom() time.Time {
	v, _ := i.GetTime("valid_from")
	return v
}
