package identifier

import (
	"iter"
	"slices"
)

const opJoinAll = "JoinAll"

// IsEmptyOrAbsent reports whether id is nil or equal to Empty. Callers should
// check it before passing an identifier to Join.
func IsEmptyOrAbsent(id *Identifier) bool {
	return id.IsEmpty()
}

// JoinAll folds Join over seq from left to right:
//
//	JoinAll([a, b, c]) == Join(Join(a, b), c)
//
// The sequence is drained exactly once before folding. JoinAll fails with
// KindInvalidArgument when seq is nil and with KindInvalidOperation when it
// yields fewer than two identifiers. Errors from an individual Join carry the
// index of the rejected element.
func JoinAll(seq iter.Seq[*Identifier]) (*Identifier, error) {
	if seq == nil {
		return nil, NewInvalidArgumentError(opJoinAll, ErrNilSequence)
	}

	ids := slices.Collect(seq)
	if len(ids) < 2 {
		return nil, NewInvalidOperationError(opJoinAll, ErrTooFewIdentifiers).
			WithContext(map[string]any{"count": len(ids)})
	}

	joined := ids[0]
	for index := 1; index < len(ids); index++ {
		next, err := joined.Join(ids[index])
		if err != nil {
			return nil, wrapJoinAll(err, index)
		}
		joined = next
	}
	return joined, nil
}

// JoinSlice is JoinAll over a slice. A nil slice is treated as an empty
// sequence.
func JoinSlice(ids []*Identifier) (*Identifier, error) {
	return JoinAll(slices.Values(ids))
}

func wrapJoinAll(err error, index int) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	wrapped := &Error{Op: opJoinAll, Kind: e.Kind, Err: e.Err, Context: e.Context}
	return wrapped.WithContext(map[string]any{"index": index})
}
