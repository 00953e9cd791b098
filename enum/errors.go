package enum

import (
	"errors"
	"fmt"
)

// Sentinel errors for enumeration construction and definition handling.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrCapacityExceeded indicates more names were supplied than the code space can hold.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidDefinition indicates an enumeration definition is malformed.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrUnknownKind indicates a definition names an enumeration kind that does not exist.
	ErrUnknownKind = errors.New("unknown enumeration kind")
)

// Error kinds categorize errors by their type.
const (
	// KindCapacity represents errors where the name list does not fit the code space.
	KindCapacity = "capacity"

	// KindValidation represents errors related to definition validation.
	KindValidation = "validation"

	// KindParse represents errors decoding a definition document.
	KindParse = "parse"
)

// Error is a structured error that wraps an underlying error with the
// operation that failed and the category of failure.
//
// Error supports unwrapping, so errors.Is(err, ErrCapacityExceeded) holds for
// any capacity failure returned by a constructor.
type Error struct {
	// Op is the operation that failed (e.g., "NewChar", "catalog.Load").
	Op string

	// Kind categorizes the error (e.g., KindCapacity, KindValidation).
	Kind string

	// Err is the underlying error.
	Err error

	// Context carries values useful for debugging, such as the capacity limit.
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enum: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enum: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enum: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op, when the target sets one),
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
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// Limit reports the capacity limit recorded on a capacity error.
func (e *Error) Limit() (int, bool) {
	limit, ok := e.Context["limit"].(int)
	return limit, ok
}

// NewCapacityError creates an Error with KindCapacity for count names
// against a code space of limit codes.
func NewCapacityError(op string, limit, count int) *Error {
	return &Error{
		Op:   op,
		Kind: KindCapacity,
		Err:  fmt.Errorf("%w: %d names, maximum is %d", ErrCapacityExceeded, count, limit),
		Context: map[string]any{
			"limit": limit,
			"count": count,
		},
	}
}

// NewValidationError creates an Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewParseError creates an Error with KindParse.
func NewParseError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindParse,
		Err:  err,
	}
}
