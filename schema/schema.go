package schema

import (
	"fmt"
	"strings"
)

// Type is the schema for one object type: the discriminator name, the
// ordered property table, and the subset of properties that may be
// supplied positionally.
//
// Property order is significant - it is the canonical serialization order
// and the order in which validation failures are reported.
type Type struct {
	// Name is the type discriminator, e.g. "relationship".
	Name string

	// Label is the display name used in error messages, e.g. "Relationship".
	// Derived from Name when empty (see DeriveLabel).
	Label string

	// Properties is the ordered property table.
	Properties []Property

	// Positional lists, in call order, the property names that may be
	// supplied as positional arguments at construction time.
	Positional []string
}

// DeriveLabel converts a type discriminator to its display form:
// "relationship" -> "Relationship", "attack-pattern" -> "AttackPattern".
func DeriveLabel(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// DisplayLabel returns Label, deriving it from Name when unset.
func (t *Type) DisplayLabel() string {
	if t.Label != "" {
		return t.Label
	}
	return DeriveLabel(t.Name)
}

// Property returns the descriptor for name, or nil if undeclared.
func (t *Type) Property(name string) *Property {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}
	return nil
}

// PropertyNames returns all declared property names in declaration order.
func (t *Type) PropertyNames() []string {
	names := make([]string, len(t.Properties))
	for i := range t.Properties {
		names[i] = t.Properties[i].Name
	}
	return names
}

// IDPrefix returns the required prefix for this type's identifiers.
func (t *Type) IDPrefix() string {
	return t.Name + "--"
}

// validate checks the structural invariants a schema must satisfy before
// registration:
//   - non-empty name, non-empty property table, unique property names
//   - a "type" property, if declared, is a fixed string equal to Name
//   - an "id" property, if declared, carries the "<name>--" prefix
//   - every positional name refers to a declared property
func (t *Type) validate() error {
	if t.Name == "" {
		return fmt.Errorf("schema has no type name")
	}
	if len(t.Properties) == 0 {
		return fmt.Errorf("schema %q declares no properties", t.Name)
	}

	seen := make(map[string]bool, len(t.Properties))
	for i := range t.Properties {
		p := &t.Properties[i]
		if p.Name == "" {
			return fmt.Errorf("schema %q: property %d has no name", t.Name, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("schema %q: duplicate property %q", t.Name, p.Name)
		}
		seen[p.Name] = true

		switch p.Name {
		case "type":
			if p.Fixed != t.Name {
				return fmt.Errorf("schema %q: 'type' property must be fixed to %q, got %q",
					t.Name, t.Name, p.Fixed)
			}
		case "id":
			if p.Prefix != t.IDPrefix() {
				return fmt.Errorf("schema %q: 'id' property must carry prefix %q, got %q",
					t.Name, t.IDPrefix(), p.Prefix)
			}
		}
	}

	for _, name := range t.Positional {
		if !seen[name] {
			return fmt.Errorf("schema %q: positional name %q is not a declared property",
				t.Name, name)
		}
	}

	return nil
}
