package identifier

import (
	"errors"
	"fmt"
)

// Sentinel errors for identifier contract violations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrEmptyIdentifier indicates a required identifier was nil or equal to Empty.
	ErrEmptyIdentifier = errors.New("identifier is empty or absent")

	// ErrSelfJoin indicates an identifier was joined with itself.
	ErrSelfJoin = errors.New("cannot join identifier with itself")

	// ErrNilSequence indicates JoinAll received a nil sequence.
	ErrNilSequence = errors.New("identifier sequence is nil")

	// ErrTooFewIdentifiers indicates JoinAll received fewer than two identifiers.
	ErrTooFewIdentifiers = errors.New("at least two identifiers are required to join")

	// ErrMalformedID indicates a persisted id is not a canonical 128-bit value.
	ErrMalformedID = errors.New("malformed identifier id")

	// ErrSentinelOverwrite indicates a decoder targeted the shared Empty sentinel.
	ErrSentinelOverwrite = errors.New("cannot decode into the Empty sentinel")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidArgument represents an absent or empty operand.
	KindInvalidArgument = "invalid_argument"

	// KindInvalidOperation represents a structurally invalid call.
	KindInvalidOperation = "invalid_operation"
)

// Error is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "Identifier.Join",
//		Kind: KindInvalidOperation,
//		Err:  ErrSelfJoin,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Identifier.Join", "JoinAll").
	Op string

	// Kind categorizes the error (KindInvalidArgument or KindInvalidOperation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional),
	// such as which operand or element index was rejected.
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("identifier: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("identifier: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("identifier: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op when the target sets one),
// otherwise it delegates to the wrapped error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with ctx merged into its context.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	newErr.Context = merged
	return &newErr
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// NewInvalidOperationError creates a new Error with KindInvalidOperation.
func NewInvalidOperationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidOperation,
		Err:  err,
	}
}

// IsInvalidArgument reports whether err carries KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	return hasKind(err, KindInvalidArgument)
}

// IsInvalidOperation reports whether err carries KindInvalidOperation.
func IsInvalidOperation(err error) bool {
	return hasKind(err, KindInvalidOperation)
}

func hasKind(err error, kind string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
