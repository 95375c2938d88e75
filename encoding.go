package vectorx

import (
	"encoding/json"
	"fmt"

	"github.com/comalice/vectorx/internal/buffer"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// A Vector encodes as a plain sequence of its live elements in JSON, YAML
// and CBOR. Decoding replaces the contents; the decoded vector's capacity
// equals its length.

var (
	_ json.Marshaler   = (*Vector[int])(nil)
	_ json.Unmarshaler = (*Vector[int])(nil)
	_ yaml.Marshaler   = (*Vector[int])(nil)
	_ yaml.Unmarshaler = (*Vector[int])(nil)
	_ cbor.Marshaler   = (*Vector[int])(nil)
	_ cbor.Unmarshaler = (*Vector[int])(nil)
)

// elems returns the live elements, never nil, so empty vectors encode as an
// empty sequence rather than null.
func (v *Vector[T]) elems() []T {
	if s := v.buf.Live(); s != nil {
		return s
	}
	return []T{}
}

func (v *Vector[T]) adopt(s []T) {
	v.buf = *buffer.Adopt(s)
}

func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems())
}

func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("vectorx: json unmarshal: %w", err)
	}
	v.adopt(s)
	return nil
}

func (v *Vector[T]) MarshalYAML() (any, error) {
	return v.elems(), nil
}

func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("vectorx: yaml unmarshal: line %d: expected a sequence", node.Line)
	}
	var s []T
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("vectorx: yaml unmarshal: %w", err)
	}
	v.adopt(s)
	return nil
}

func (v *Vector[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.elems())
}

func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	var s []T
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("vectorx: cbor unmarshal: %w", err)
	}
	v.adopt(s)
	return nil
}
