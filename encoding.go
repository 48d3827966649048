package identifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

const (
	fieldName = "name"
	fieldID   = "id"

	opDecode     = "Identifier.Decode"
	opFromStruct = "FromStruct"
)

// record is the persisted form of an Identifier. The decoded 128-bit value is
// derived from ID and never stored.
type record struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

func (i Identifier) record() record {
	return record{Name: i.name, ID: i.ID()}
}

// restore replaces i's state with the decoded record. It is only reached from
// the decoding entry points, before the identifier is shared. The Empty
// sentinel is never overwritten.
func (i *Identifier) restore(r record) error {
	if i == Empty {
		return NewInvalidOperationError(opDecode, ErrSentinelOverwrite)
	}
	parsed, err := Parse(r.Name, r.ID)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op = opDecode
		}
		return err
	}
	*i = *parsed
	return nil
}

// MarshalJSON encodes the identifier as {"name": ..., "id": ...}.
func (i Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.record())
}

// UnmarshalJSON decodes {"name": ..., "id": ...}. A JSON null is ignored.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to decode identifier: %w", err)
	}
	return i.restore(r)
}

// MarshalYAML implements yaml.Marshaler.
func (i Identifier) MarshalYAML() (any, error) {
	return i.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Identifier) UnmarshalYAML(value *yaml.Node) error {
	var r record
	if err := value.Decode(&r); err != nil {
		return fmt.Errorf("failed to decode identifier: %w", err)
	}
	return i.restore(r)
}

// ToStruct converts the identifier into a protobuf Struct with "name" and
// "id" string fields, for embedding in protobuf messages.
func (i *Identifier) ToStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldName: i.Name(),
		fieldID:   i.ID(),
	})
}

// FromStruct restores an identifier produced by ToStruct.
func FromStruct(s *structpb.Struct) (*Identifier, error) {
	if s == nil {
		return nil, NewInvalidArgumentError(opFromStruct, ErrEmptyIdentifier)
	}
	fields := s.GetFields()
	idValue, ok := fields[fieldID]
	if !ok {
		return nil, NewInvalidArgumentError(opFromStruct, fmt.Errorf("%w: missing %q field", ErrMalformedID, fieldID))
	}
	return Parse(fields[fieldName].GetStringValue(), idValue.GetStringValue())
}
