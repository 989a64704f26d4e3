package validator

import "fmt"

// WriteOption configures WriteField and Field.Set.
type WriteOption func(*writeConfig)

type writeConfig struct {
	validate bool
	mode     Mode
}

// ValidateOnWrite runs a validation pass right after the write, in the given
// mode, instead of waiting for the next read.
func ValidateOnWrite(mode Mode) WriteOption {
	return func(c *writeConfig) {
		c.validate = true
		c.mode = mode
	}
}

// ReadField returns value after making sure the object is valid.
// A clean validator returns immediately without evaluating any rule. A dirty
// one runs a FailFast pass first, whose failure is returned as is.
func ReadField[T any](v *Validator, value T) (T, error) {
	if v != nil && v.dirty {
		if _, err := v.Validate(FailFast); err != nil {
			var zero T
			return zero, err
		}
	}
	return value, nil
}

// WriteField stores value into dst and marks the validator dirty.
// dst must point at an initialised field; a nil dst or validator fails with
// ErrInvalidArgument.
func WriteField[T any](v *Validator, dst *T, value T, opts ...WriteOption) error {
	if v == nil {
		return fmt.Errorf("%w: validator is nil", ErrInvalidArgument)
	}
	if dst == nil {
		return fmt.Errorf("%w: field is not initialised", ErrInvalidArgument)
	}

	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	*dst = value
	v.dirty = true

	if cfg.validate {
		_, err := v.Validate(cfg.mode)
		return err
	}
	return nil
}

// Field is a value whose reads are guarded by a Validator.
// The zero Field is uninitialised: Set on it fails with ErrInvalidArgument.
type Field[T any] struct {
	v     *Validator
	value T
}

// NewField returns a field bound to v holding initial as its baseline value.
// Creating a field does not mark the validator dirty.
func NewField[T any](v *Validator, initial T) Field[T] {
	return Field[T]{v: v, value: initial}
}

// Get returns the value, validating first when the object is dirty.
func (f *Field[T]) Get() (T, error) {
	return ReadField(f.v, f.value)
}

// Set stores value and marks the object dirty.
func (f *Field[T]) Set(value T, opts ...WriteOption) error {
	if f.v == nil {
		return fmt.Errorf("%w: field is not initialised", ErrInvalidArgument)
	}
	return WriteField(f.v, &f.value, value, opts...)
}

// Peek returns the raw value without validating. Predicates use it to look at
// sibling fields.
func (f *Field[T]) Peek() T {
	return f.value
}
