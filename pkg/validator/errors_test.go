package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftkit/pkg/validator"
)

func TestValidationFailure(t *testing.T) {
	t.Run("message is the error text", func(t *testing.T) {
		err := validator.NewValidationFailure("age must be less than 100")
		assert.Equal(t, "age must be less than 100", err.Error())
		assert.NoError(t, err.Unwrap())
	})

	t.Run("empty message falls back", func(t *testing.T) {
		assert.Equal(t, "validation failed", (&validator.ValidationFailure{}).Error())
	})

	t.Run("matches the sentinel", func(t *testing.T) {
		err := validator.NewValidationFailure("x")
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotErrorIs(t, err, validator.ErrInvalidArgument)
	})

	t.Run("wraps a cause", func(t *testing.T) {
		cause := errors.New("root")
		err := validator.WrapValidationFailure("outer", cause)
		assert.Equal(t, "outer", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestExtractValidationFailure(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationFailure(nil))
		assert.False(t, validator.IsValidationFailure(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationFailure(errors.New("x")))
	})

	t.Run("typed nil failure is absent", func(t *testing.T) {
		var failure *validator.ValidationFailure
		err := fmt.Errorf("wrapped: %w", failure)
		assert.Nil(t, validator.ExtractValidationFailure(err))
		assert.False(t, validator.IsValidationFailure(err))
	})

	t.Run("wrapped failure", func(t *testing.T) {
		failure := validator.NewValidationFailure("inner")
		err := fmt.Errorf("marshal person: %w", failure)

		got := validator.ExtractValidationFailure(err)
		require.NotNil(t, got)
		assert.Same(t, failure, got)
		assert.True(t, validator.IsValidationFailure(err))
	})
}
