package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed", ValidationDetail{
		Field:   "items",
		Message: "items must not be empty",
	})

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 1)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ve)

	_, ok = IsValidationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("order with id abc not found")

	assert.Equal(t, "order with id abc not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, err, nfe)

	_, ok = IsNotFoundError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDependencyError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDependencyError("product catalog unreachable", cause)

	assert.Equal(t, "product catalog unreachable: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	de, ok := IsDependencyError(err)
	assert.True(t, ok)
	assert.Equal(t, err, de)
}

func TestDependencyError_NoCause(t *testing.T) {
	err := NewDependencyError("product catalog returned status 503", nil)

	assert.Equal(t, "product catalog returned status 503", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestInternalError(t *testing.T) {
	cause := errors.New("deadlock")
	err := NewInternalError("persisting order", cause)

	assert.Equal(t, "persisting order: deadlock", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	ie, ok := IsInternalError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ie)
}

func TestInternalError_WrappedChain(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := NewInternalError("counting orders", fmt.Errorf("counting orders: %w", cause))

	assert.True(t, errors.Is(err, cause))
}
