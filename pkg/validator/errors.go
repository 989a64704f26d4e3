package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every *ValidationFailure through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidArgument reports a broken calling contract: a missing predicate,
	// a missing failure descriptor or a write to a field that was never
	// initialised. It is never suppressed by draft mode.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationFailure is a domain-rule violation.
// Only Message is recorded in the error list; Cause is kept for callers that
// inspect the returned error with errors.Is/As.
type ValidationFailure struct {
	Message string
	Cause   error
}

func NewValidationFailure(message string) *ValidationFailure {
	return &ValidationFailure{Message: message}
}

func WrapValidationFailure(message string, cause error) *ValidationFailure {
	return &ValidationFailure{Message: message, Cause: cause}
}

func (f *ValidationFailure) Error() string {
	if f.Message == "" {
		return ErrValidationFailed.Error()
	}
	return f.Message
}

func (f *ValidationFailure) Unwrap() error {
	return f.Cause
}

func (f *ValidationFailure) Is(target error) bool {
	return target == ErrValidationFailed
}

// IsValidationFailure reports whether err carries a *ValidationFailure.
func IsValidationFailure(err error) bool {
	return ExtractValidationFailure(err) != nil
}

// ExtractValidationFailure returns the first *ValidationFailure in err's chain.
func ExtractValidationFailure(err error) *ValidationFailure {
	if err == nil {
		return nil
	}
	var failure *ValidationFailure
	if errors.As(err, &failure) && failure != nil {
		return failure
	}
	return nil
}

// asFailure turns err into the failure a rule reports. A *ValidationFailure is
// used as is; anything else, wrapped failures included, keeps its full message
// and its chain as the cause.
func asFailure(err error) *ValidationFailure {
	if failure, ok := err.(*ValidationFailure); ok {
		return failure
	}
	return WrapValidationFailure(err.Error(), err)
}

// isNilFailure reports whether err holds a nil *ValidationFailure.
func isNilFailure(err error) bool {
	failure, ok := err.(*ValidationFailure)
	return ok && failure == nil
}

// failureFromPanic converts a value recovered from a predicate into the
// failure reported for that rule.
func failureFromPanic(rec any) *ValidationFailure {
	switch v := rec.(type) {
	case error:
		if isNilFailure(v) {
			return NewValidationFailure("")
		}
		return asFailure(v)
	case string:
		return NewValidationFailure(v)
	default:
		return NewValidationFailure(fmt.Sprint(v))
	}
}
