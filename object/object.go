package object

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/roach88/stixcore/schema"
)

// Domain prefix for content-addressed object identity. The version suffix
// enables future algorithm migration.
const hashDomain = "stixcore/object/v1"

// Object is an immutable validated object: an ordered name-to-value
// container bound to the schema it was constructed from.
//
// Objects are created only by Construct and never change afterward, so
// they are safe for unsynchronized concurrent reads. Set and Delete exist
// solely to report the attempt as an ImmutableError.
type Object struct {
	typ    *schema.Type
	values map[string]Value
	names  []string // set properties, schema declaration order
}

// TypeName returns the type discriminator, e.g. "relationship".
func (o *Object) TypeName() string {
	return o.typ.Name
}

// Schema returns the type schema this object was constructed from.
// Schemas are shared and long-lived; the object does not own it.
func (o *Object) Schema() *schema.Type {
	return o.typ
}

// Get returns the canonical value of a property. The same read path backs
// every accessor - there is no second store.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Has reports whether the property is set.
func (o *Object) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// GetString returns a string-valued property (string, identifier, or
// reference kinds).
func (o *Object) GetString(name string) (string, bool) {
	s, ok := o.values[name].(String)
	return string(s), ok
}

// GetTime returns a timestamp-valued property as a UTC time.Time at
// millisecond precision.
func (o *Object) GetTime(name string) (time.Time, bool) {
	ts, ok := o.values[name].(Timestamp)
	return ts.Time(), ok
}

// GetInt returns an integer-valued property.
func (o *Object) GetInt(name string) (int64, bool) {
	i, ok := o.values[name].(Int)
	return int64(i), ok
}

// GetBool returns a boolean-valued property.
func (o *Object) GetBool(name string) (bool, bool) {
	b, ok := o.values[name].(Bool)
	return bool(b), ok
}

// GetStringList returns a string-list-valued property as a plain slice.
func (o *Object) GetStringList(name string) ([]string, bool) {
	list, ok := o.values[name].(List)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(String)
		if !ok {
			return nil, false
		}
		out[i] = string(s)
	}
	return out, true
}

// ID returns the object's id property, if set.
func (o *Object) ID() string {
	id, _ := o.GetString("id")
	return id
}

// PropertyNames returns the set properties in schema declaration order.
func (o *Object) PropertyNames() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// Set reports the write attempt as an ImmutableError. Objects never change
// after construction.
func (o *Object) Set(name string, _ any) error {
	return &ImmutableError{Type: o.typ.DisplayLabel(), Property: name}
}

// Delete reports the delete attempt as an ImmutableError.
func (o *Object) Delete(name string) error {
	return &ImmutableError{Type: o.typ.DisplayLabel(), Property: name}
}

// Equal reports whether two objects have identical canonical renderings.
// Equality is defined on the canonical form, so objects constructed from
// differently-ordered input compare equal.
func (o *Object) Equal(other *Object) bool {
	if other == nil {
		return false
	}
	a, errA := Serialize(o)
	b, errB := Serialize(other)
	if errA != nil || errB != nil {
		return false
	}
	return string(a) == string(b)
}

// ContentHash computes the domain-separated SHA-256 of the canonical form.
// Format: SHA256(domain + 0x00 + canonical). The null separator prevents
// domain/data boundary ambiguity. Stable across processes for equal
// objects.
func (o *Object) ContentHash() (string, error) {
	canonical, err := Serialize(o)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(hashDomain))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}
