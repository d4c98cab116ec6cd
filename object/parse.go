package object

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/stixcore/schema"
)

// Parse reconstructs an object from canonical text or an already-decoded
// mapping, dispatching on the "type" discriminator through the registry.
//
// input may be []byte or string (JSON text) or map[string]any. Text is
// decoded with json.Number so integer properties never round through
// float64. The resulting object is validated exactly as if it had been
// constructed directly - Parse adds no leniency.
func Parse(reg *schema.Registry, input any, opts ...Option) (*Object, error) {
	raw, err := decodeInput(input)
	if err != nil {
		return nil, err
	}

	discriminator, ok := raw["type"]
	if !ok {
		return nil, &ParseError{Reason: "input has no 'type' property"}
	}
	typeName, ok := stringFromRaw(discriminator)
	if !ok {
		return nil, &ParseError{Reason: "'type' property is not a string"}
	}

	typ, ok := reg.Lookup(typeName)
	if !ok {
		return nil, &UnknownTypeError{TypeName: typeName}
	}

	return Construct(typ, nil, raw, opts...)
}

// decodeInput normalizes parse input to a raw mapping.
func decodeInput(input any) (map[string]any, error) {
	switch in := input.(type) {
	case map[string]any:
		return in, nil
	case []byte:
		return decodeText(in)
	case string:
		return decodeText([]byte(in))
	default:
		return nil, &ParseError{Reason: fmt.Sprintf(
			"input must be JSON text or a mapping, got %T", input)}
	}
}

// decodeText decodes JSON text to a mapping, preserving integers as
// json.Number.
func decodeText(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return raw, nil
}
