// Package identifier provides a named, GUID-backed identifier value with a
// deterministic join operation.
//
// # Core Concepts
//
// An Identifier pairs a display name with a random 128-bit id (a v4 UUID).
// Only the id takes part in equality, hashing and ordering:
//
//	a := identifier.Named("sword")
//	b := identifier.Named("sword")
//	a.Equal(b) // false, ids differ
//
// Empty is the well-known identifier with the all-zero id. Use
// IsEmptyOrAbsent to test for either nil or Empty.
//
// # Joining
//
// Join merges two identifiers into a new one whose id is the byte-wise XOR of
// the operand ids and whose name is the concatenation of the operand names:
//
//	x := identifier.Named("X")
//	y := identifier.Named("Y")
//	xy, err := x.Join(y)
//	// xy.Name() == "XY"
//
// XOR makes the id independent of argument order, so Join(a, b) and
// Join(b, a) share an id while their names differ. JoinAll folds Join over a
// sequence from left to right.
//
// # Errors
//
// Contract violations are reported as *Error values:
//   - KindInvalidArgument: a nil or Empty operand, a nil sequence, or a
//     malformed persisted id
//   - KindInvalidOperation: joining an identifier with itself, or calling
//     JoinAll with fewer than two identifiers
//
// # Serialization
//
// Identifiers persist as two fields, name and id, through JSON, YAML
// (gopkg.in/yaml.v3) and protobuf Struct values. The decoded 128-bit value is
// rebuilt from the id on load.
package identifier
