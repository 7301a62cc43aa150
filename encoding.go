package ngau

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Deg and Rad encode as a single bare number. No unit is written, and
// decoding stores the number as is.

var (
	_ json.Marshaler   = Deg{}
	_ json.Unmarshaler = (*Deg)(nil)
	_ yaml.Marshaler   = Deg{}
	_ yaml.Unmarshaler = (*Deg)(nil)

	_ json.Marshaler   = Rad{}
	_ json.Unmarshaler = (*Rad)(nil)
	_ yaml.Marshaler   = Rad{}
	_ yaml.Unmarshaler = (*Rad)(nil)
)

func (d Deg) MarshalJSON() ([]byte, error) {
	return marshalJSON(d.value)
}

func (d *Deg) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &d.value); err != nil {
		return fmt.Errorf("decode degrees: %w", err)
	}

	return nil
}

func (d Deg) MarshalYAML() (any, error) {
	return d.value, nil
}

func (d *Deg) UnmarshalYAML(node *yaml.Node) error {
	if err := node.Decode(&d.value); err != nil {
		return fmt.Errorf("decode degrees: %w", err)
	}

	return nil
}

func (r Rad) MarshalJSON() ([]byte, error) {
	return marshalJSON(r.value)
}

func (r *Rad) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.value); err != nil {
		return fmt.Errorf("decode radians: %w", err)
	}

	return nil
}

func (r Rad) MarshalYAML() (any, error) {
	return r.value, nil
}

func (r *Rad) UnmarshalYAML(node *yaml.Node) error {
	if err := node.Decode(&r.value); err != nil {
		return fmt.Errorf("decode radians: %w", err)
	}

	return nil
}

// marshalJSON fails for NaN and infinity, as JSON has no way to represent them.
func marshalJSON(value float32) ([]byte, error) {
	buf, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode angle %v: %w", value, err)
	}

	return buf, nil
}
