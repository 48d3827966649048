package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zero-day-ai/identifier"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatProto = "proto"
)

// renderer encodes a single identifier.
type renderer func(id *identifier.Identifier) ([]byte, error)

func newRenderer(format string) (renderer, error) {
	switch format {
	case formatText:
		return func(id *identifier.Identifier) ([]byte, error) {
			return []byte(id.String()), nil
		}, nil
	case formatJSON:
		return func(id *identifier.Identifier) ([]byte, error) {
			return json.Marshal(id)
		}, nil
	case formatYAML:
		return func(id *identifier.Identifier) ([]byte, error) {
			data, err := yaml.Marshal(id)
			if err != nil {
				return nil, err
			}
			return append([]byte("---\n"), data[:len(data)-1]...), nil
		}, nil
	case formatProto:
		return func(id *identifier.Identifier) ([]byte, error) {
			s, err := id.ToStruct()
			if err != nil {
				return nil, err
			}
			return protojson.Marshal(s)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// render writes one line (or YAML document) per identifier.
func render(w io.Writer, format string, ids ...*identifier.Identifier) error {
	encode, err := newRenderer(format)
	if err != nil {
		return err
	}
	for _, id := range ids {
		data, err := encode(id)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", id, err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}
