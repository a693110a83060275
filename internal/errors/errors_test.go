package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "physician"}
		assert.Equal(t, "physician not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "physician"}
		err2 := &NotFoundError{Entity: "physician"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "physician"}
		err2 := &NotFoundError{Entity: "schedule"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRequestNotFound, ErrRequestNotFound))
		assert.False(t, errors.Is(ErrRequestNotFound, ErrOrganizationNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading request: %w", ErrRequestNotFound)
		assert.True(t, errors.Is(wrapped, ErrRequestNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "username", Message: "already taken"}
		assert.Equal(t, "validation error: username - already taken", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "malformed payload"}
		assert.Equal(t, "validation error: malformed payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("username", "already taken")))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
		assert.Equal(t, "invalid token", ErrInvalidToken.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrInvalidStatus))
	})
}
