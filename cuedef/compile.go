package cuedef

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/stixcore/schema"
)

// LoadString compiles CUE source text and returns every type declared
// under the top-level "types" struct, in declaration order.
func LoadString(src string) ([]*schema.Type, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileTypes(v.LookupPath(cue.ParsePath("types")))
}

// CompileTypes parses a CUE struct of type declarations keyed by
// discriminator name.
func CompileTypes(v cue.Value) ([]*schema.Type, error) {
	if !v.Exists() {
		return nil, &CompileError{
			Field:   "types",
			Message: "no 'types' struct declared",
		}
	}
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var types []*schema.Type
	for iter.Next() {
		t, err := CompileType(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// CompileType parses one CUE type declaration into a schema.Type. The
// label is the type discriminator; the value carries properties and the
// optional label/positional fields.
func CompileType(name string, v cue.Value) (*schema.Type, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	t := &schema.Type{Name: name}

	labelVal := v.LookupPath(cue.ParsePath("label"))
	if labelVal.Exists() {
		label, err := labelVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		t.Label = label
	}

	posVal := v.LookupPath(cue.ParsePath("positional"))
	if posVal.Exists() {
		posIter, err := posVal.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for posIter.Next() {
			p, err := posIter.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			t.Positional = append(t.Positional, p)
		}
	}

	propsVal := v.LookupPath(cue.ParsePath("properties"))
	if !propsVal.Exists() {
		return nil, &CompileError{
			Field:   fmt.Sprintf("types.%s", name),
			Message: "properties struct is required",
			Pos:     v.Pos(),
		}
	}

	propIter, err := propsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for propIter.Next() {
		prop, err := compileProperty(name, propIter.Label(), propIter.Value())
		if err != nil {
			return nil, err
		}
		t.Properties = append(t.Properties, prop)
	}

	if len(t.Properties) == 0 {
		return nil, &CompileError{
			Field:   fmt.Sprintf("types.%s.properties", name),
			Message: "at least one property is required",
			Pos:     propsVal.Pos(),
		}
	}

	return t, nil
}

// compileProperty parses one property descriptor declaration.
func compileProperty(typeName, propName string, v cue.Value) (schema.Property, error) {
	prop := schema.Property{Name: propName}
	field := fmt.Sprintf("types.%s.properties.%s", typeName, propName)

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if !kindVal.Exists() {
		return prop, &CompileError{
			Field:   field,
			Message: "kind is required",
			Pos:     v.Pos(),
		}
	}
	kindName, err := kindVal.String()
	if err != nil {
		return prop, formatCUEError(err)
	}
	kind, ok := schema.KindFromName(kindName)
	if !ok {
		return prop, &CompileError{
			Field:   field + ".kind",
			Message: fmt.Sprintf("unknown kind %q", kindName),
			Pos:     kindVal.Pos(),
		}
	}
	prop.Kind = kind

	if reqVal := v.LookupPath(cue.ParsePath("required")); reqVal.Exists() {
		required, err := reqVal.Bool()
		if err != nil {
			return prop, formatCUEError(err)
		}
		prop.Required = required
	}

	if fixedVal := v.LookupPath(cue.ParsePath("fixed")); fixedVal.Exists() {
		fixed, err := fixedVal.String()
		if err != nil {
			return prop, formatCUEError(err)
		}
		prop.Fixed = fixed
	}

	if prefixVal := v.LookupPath(cue.ParsePath("prefix")); prefixVal.Exists() {
		prefix, err := prefixVal.String()
		if err != nil {
			return prop, formatCUEError(err)
		}
		prop.Prefix = prefix
	}

	if defVal := v.LookupPath(cue.ParsePath("default")); defVal.Exists() {
		defName, err := defVal.String()
		if err != nil {
			return prop, formatCUEError(err)
		}
		switch defName {
		case "identifier":
			prop.Default = schema.DefaultIdentifier
		case "now":
			prop.Default = schema.DefaultNow
		default:
			return prop, &CompileError{
				Field:   field + ".default",
				Message: fmt.Sprintf("unknown default %q (want \"identifier\" or \"now\")", defName),
				Pos:     defVal.Pos(),
			}
		}
	}

	if refVal := v.LookupPath(cue.ParsePath("ref_types")); refVal.Exists() {
		refIter, err := refVal.List()
		if err != nil {
			return prop, formatCUEError(err)
		}
		for refIter.Next() {
			ref, err := refIter.Value().String()
			if err != nil {
				return prop, formatCUEError(err)
			}
			prop.RefTypes = append(prop.RefTypes, ref)
		}
	}

	return prop, nil
}

// CompileError represents a type-definition error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
