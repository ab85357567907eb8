package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// RequestError covers every non-success outcome of a backend call: a non-2xx
// status, or a network-level failure (timeout, refused connection), in which
// case StatusCode is zero.
type RequestError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

func NewRequestError(statusCode int, message string, cause error) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

func IsRequestError(err error) (*RequestError, bool) {
	if re, ok := err.(*RequestError); ok {
		return re, true
	}
	return nil, false
}

// DecodeError means the backend answered with a success status but the body
// did not parse into the expected shape.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func NewDecodeError(message string, cause error) *DecodeError {
	return &DecodeError{
		Message: message,
		Cause:   cause,
	}
}

func IsDecodeError(err error) (*DecodeError, bool) {
	if de, ok := err.(*DecodeError); ok {
		return de, true
	}
	return nil, false
}
