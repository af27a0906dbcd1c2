// Package wire adapts the dictionary representation to the serialized forms
// external codecs exchange. JSON goes through goccy/go-json with UseNumber so
// integers survive the round trip losslessly; YAML goes through yaml.v3,
// which already decodes mappings as map[string]any. The package defines no
// format of its own.
package wire

import (
	"bytes"
	"context"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	kindred "github.com/reoring/kindred"
)

// MarshalJSON encodes the DTO as JSON bytes.
func MarshalJSON(d kindred.Dict) ([]byte, error) {
	return j.Marshal(d)
}

// UnmarshalJSON decodes JSON bytes into the open mapping form. Numbers are
// preserved as json.Number. Decoder failures and non-object documents surface
// as parse_error issues.
func UnmarshalJSON(data []byte) (map[string]any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, kindred.Issues{{Path: "/", Code: kindred.CodeParseError, Message: err.Error()}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, kindred.Issues{{Path: "/", Code: kindred.CodeParseError, Message: "top-level JSON value is not an object"}}
	}
	return m, nil
}

// PersonFromJSON decodes JSON bytes and reconstructs the entity through the
// validation dispatch. This is the transparent round-trip entry point:
// PersonFromJSON(MarshalJSON(p.Dict())) yields an entity equal to p.
func PersonFromJSON(ctx context.Context, data []byte) (kindred.Person, error) {
	m, err := UnmarshalJSON(data)
	if err != nil {
		return kindred.Person{}, err
	}
	return kindred.Validate(ctx, m)
}

// MarshalYAML encodes the DTO as a YAML document.
func MarshalYAML(d kindred.Dict) ([]byte, error) {
	return yaml.Marshal(d)
}

// UnmarshalYAML decodes a YAML document into the open mapping form.
func UnmarshalYAML(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, kindred.Issues{{Path: "/", Code: kindred.CodeParseError, Message: err.Error()}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, kindred.Issues{{Path: "/", Code: kindred.CodeParseError, Message: "top-level YAML value is not a mapping"}}
	}
	return m, nil
}

// PersonFromYAML decodes a YAML document and reconstructs the entity through
// the validation dispatch.
func PersonFromYAML(ctx context.Context, data []byte) (kindred.Person, error) {
	m, err := UnmarshalYAML(data)
	if err != nil {
		return kindred.Person{}, err
	}
	return kindred.Validate(ctx, m)
}
