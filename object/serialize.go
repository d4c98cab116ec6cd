package object

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

const indent = "    " // four spaces per nesting level

// Serialize renders the canonical textual form: a 4-space-indented JSON
// object whose keys appear in schema declaration order.
//
// The rendering is deterministic and independent of input ordering - it is
// the basis for equality, hashing, and golden comparison. Strings are NFC
// normalized and emitted without HTML escaping; timestamps render as
// YYYY-MM-DDTHH:MM:SS.mmmZ.
func Serialize(o *Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		buf.WriteString(indent)

		key, err := marshalString(name)
		if err != nil {
			return nil, fmt.Errorf("serialize %s key %q: %w", o.typ.Name, name, err)
		}
		buf.Write(key)
		buf.WriteString(": ")

		if err := writeValue(&buf, o.values[name], 1); err != nil {
			return nil, fmt.Errorf("serialize %s value %q: %w", o.typ.Name, name, err)
		}
	}
	buf.WriteByte('\n')
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the canonical textual form. Serialization of a validated
// object cannot fail; the error path exists only for the exported
// Serialize contract.
func (o *Object) String() string {
	text, err := Serialize(o)
	if err != nil {
		return fmt.Sprintf("<unserializable %s: %v>", o.typ.Name, err)
	}
	return string(text)
}

// writeValue renders one canonical value at the given nesting depth.
func writeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch val := v.(type) {
	case String:
		b, err := marshalString(string(val))
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	case Timestamp:
		b, err := marshalString(val.Format())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	case Int:
		fmt.Fprintf(buf, "%d", int64(val))
		return nil
	case Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case List:
		return writeList(buf, val, depth)
	default:
		return fmt.Errorf("unknown value type %T", v)
	}
}

// writeList renders a list one element per line, matching the indented
// object layout.
func writeList(buf *bytes.Buffer, list List, depth int) error {
	if len(list) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteByte('[')
	for i, elem := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		for d := 0; d <= depth; d++ {
			buf.WriteString(indent)
		}
		if err := writeValue(buf, elem, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	for d := 0; d < depth; d++ {
		buf.WriteString(indent)
	}
	buf.WriteByte(']')
	return nil
}

// marshalString produces a canonical JSON string: NFC normalized at the
// serialization boundary, no HTML escaping (< > & stay literal).
func marshalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder appends a trailing newline, remove it.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}
