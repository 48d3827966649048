package identifier

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const (
	hashSeed       = 17
	hashMultiplier = 31

	emptyName = "Empty"

	opJoin  = "Identifier.Join"
	opParse = "Parse"
)

// Empty is the well-known identifier representing "no identifier".
// Its id is the all-zero 128-bit value.
var Empty = newIdentifier(emptyName, uuid.Nil)

// Identifier is a named, GUID-backed value.
//
// Equality, hashing and ordering depend only on the id; the name is a display
// label and is not required to be unique. An Identifier is never mutated after
// construction, so a *Identifier may be shared freely between goroutines.
//
// The zero value has an empty name and the all-zero id, which makes it
// equivalent to Empty.
type Identifier struct {
	name string
	id   string
	uuid uuid.UUID
}

// New creates an unnamed identifier with a fresh random id.
func New() *Identifier {
	return Named("")
}

// Named creates an identifier with the given name and a fresh random id.
func Named(name string) *Identifier {
	return newIdentifier(name, uuid.New())
}

// FromUUID creates an identifier from an explicit 128-bit value.
func FromUUID(name string, u uuid.UUID) *Identifier {
	return newIdentifier(name, u)
}

// Parse restores an identifier from its persisted name and canonical id.
// The id must be a valid UUID in any form accepted by uuid.Parse; it is
// re-encoded into canonical form.
func Parse(name, id string) (*Identifier, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, NewInvalidArgumentError(opParse, fmt.Errorf("%w: %q: %v", ErrMalformedID, id, err))
	}
	return newIdentifier(name, u), nil
}

func newIdentifier(name string, u uuid.UUID) *Identifier {
	return &Identifier{
		name: name,
		id:   u.String(),
		uuid: u,
	}
}

// Name returns the display name.
func (i *Identifier) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// ID returns the canonical textual form of the 128-bit id.
func (i *Identifier) ID() string {
	if i == nil {
		return ""
	}
	if i.id == "" {
		return i.uuid.String()
	}
	return i.id
}

// UUID returns the decoded 128-bit id. The value is decoded once when the
// identifier is built, so every call returns the same value.
func (i *Identifier) UUID() uuid.UUID {
	if i == nil {
		return uuid.Nil
	}
	return i.uuid
}

// Bytes returns a copy of the 16 id bytes.
func (i *Identifier) Bytes() []byte {
	u := i.UUID()
	b := make([]byte, len(u))
	copy(b, u[:])
	return b
}

// IsEmpty reports whether i is nil or carries the all-zero id.
func (i *Identifier) IsEmpty() bool {
	return i == nil || i.uuid == uuid.Nil
}

// Equal reports whether both identifiers carry the same id. Two nil
// identifiers are equal; a nil and a non-nil identifier are not.
func (i *Identifier) Equal(other *Identifier) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil {
		return false
	}
	return i.ID() == other.ID()
}

// Hash returns a hash of the id consistent with Equal.
func (i *Identifier) Hash() uint64 {
	var hash uint64 = hashSeed
	hash = hash*hashMultiplier + xxhash.Sum64String(i.ID())
	return hash
}

// Compare orders identifiers by ordinal comparison of their canonical ids.
// Any identifier is greater than nil.
func (i *Identifier) Compare(other *Identifier) int {
	switch {
	case i == nil && other == nil:
		return 0
	case other == nil:
		return 1
	case i == nil:
		return -1
	}
	return strings.Compare(i.ID(), other.ID())
}

// Compare is the function form of (*Identifier).Compare, suitable for
// slices.SortFunc.
func Compare(a, b *Identifier) int {
	return a.Compare(b)
}

// Join merges i and other into a new identifier. The new id is the byte-wise
// XOR of both 16-byte ids and the new name is i's name followed by other's.
//
// The id of Join(a, b) equals the id of Join(b, a), but the names differ
// whenever the operand names differ. Neither operand is modified.
//
// Join fails with KindInvalidArgument when either operand is nil or Empty,
// and with KindInvalidOperation when both operands carry the same id. This
// covers the same instance and also distinct instances holding the same id
// (decoded copies, FromUUID), whose XOR would otherwise collapse to Empty.
func (i *Identifier) Join(other *Identifier) (*Identifier, error) {
	if IsEmptyOrAbsent(other) {
		return nil, NewInvalidArgumentError(opJoin, ErrEmptyIdentifier).
			WithContext(map[string]any{"operand": "other"})
	}
	if IsEmptyOrAbsent(i) {
		return nil, NewInvalidArgumentError(opJoin, ErrEmptyIdentifier).
			WithContext(map[string]any{"operand": "self"})
	}
	if i == other || i.uuid == other.uuid {
		return nil, NewInvalidOperationError(opJoin, ErrSelfJoin).
			WithContext(map[string]any{"id": i.ID()})
	}

	var merged uuid.UUID
	for idx := range merged {
		merged[idx] = i.uuid[idx] ^ other.uuid[idx]
	}
	return newIdentifier(i.name+other.name, merged), nil
}

// String returns "<name>: [<id>]". The form is meant for diagnostics and is
// not parsed back.
func (i *Identifier) String() string {
	if i == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: [%s]", i.name, i.ID())
}
