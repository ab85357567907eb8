package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "name", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("bad input")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	_, ok = IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
}

func TestRequestError_WithStatus(t *testing.T) {
	err := NewRequestError(503, "service unavailable", nil)

	assert.Equal(t, 503, err.StatusCode)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "service unavailable")
}

func TestRequestError_NetworkFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewRequestError(0, "request failed", cause)

	assert.Equal(t, 0, err.StatusCode)
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestRequestError_IsRequestError(t *testing.T) {
	err := NewRequestError(500, "boom", nil)

	re, ok := IsRequestError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, re.StatusCode)

	_, ok = IsRequestError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestRequestError_ErrorInterface(t *testing.T) {
	var err error = NewRequestError(404, "not found", nil)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDecodeError_Creation(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewDecodeError("decoding customer response", cause)

	assert.Contains(t, err.Error(), "decoding customer response")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.Equal(t, cause, err.Unwrap())
}

func TestDecodeError_IsDecodeError(t *testing.T) {
	err := NewDecodeError("malformed body", nil)

	de, ok := IsDecodeError(err)
	assert.True(t, ok)
	assert.Equal(t, "malformed body", de.Error())

	_, ok = IsDecodeError(NewRequestError(500, "not a decode error", nil))
	assert.False(t, ok)
}

func TestDecodeError_NilCause(t *testing.T) {
	err := NewDecodeError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
