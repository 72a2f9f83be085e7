package clamped

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the current value as a plain scalar.
func (v Value[T, B]) MarshalYAML() (any, error) {
	return v.Get(), nil
}

// UnmarshalYAML decodes a scalar and clamps it.
func (v *Value[T, B]) UnmarshalYAML(node *yaml.Node) error {
	var x T
	if err := node.Decode(&x); err != nil {
		return err
	}
	v.Set(x)
	return nil
}

// MarshalJSON encodes the current value as a JSON number.
func (v Value[T, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Get())
}

// UnmarshalJSON decodes a JSON number and clamps it.
func (v *Value[T, B]) UnmarshalJSON(data []byte) error {
	var x T
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	v.Set(x)
	return nil
}
