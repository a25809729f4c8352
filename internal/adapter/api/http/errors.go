package http

import "fmt"

// ErrorType represents the category of API error that occurred.
type ErrorType int

const (
	ErrTypeAuthentication ErrorType = iota
	ErrTypeNotFound
	ErrTypeTransport
	ErrTypeGraphQL
	ErrTypeMalformedResponse
	ErrTypeUnknown
)

// String returns a human-readable description of the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeAuthentication:
		return "authentication error"
	case ErrTypeNotFound:
		return "not found"
	case ErrTypeTransport:
		return "transport error"
	case ErrTypeGraphQL:
		return "graphql error"
	case ErrTypeMalformedResponse:
		return "malformed response"
	case ErrTypeUnknown:
		return "unknown error"
	default:
		return "unknown error"
	}
}

// Error represents an API error with additional context.
// Operation names the GraphQL operation that failed.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Operation  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: %s (status: %d)", e.Operation, e.Type.String(), e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Type.String(), e.Message)
}

// Is implements error equality checking for errors.Is. Two Errors match
// when they carry the same type, so callers can branch on the taxonomy
// without inspecting messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewAuthenticationError creates a new authentication error.
func NewAuthenticationError(operation, message string) *Error {
	return &Error{
		Type:       ErrTypeAuthentication,
		Message:    message,
		StatusCode: 401,
		Operation:  operation,
	}
}

// NewNotFoundError creates a new not-found error.
func NewNotFoundError(operation, message string) *Error {
	return &Error{
		Type:      ErrTypeNotFound,
		Message:   message,
		Operation: operation,
	}
}

// NewTransportError creates a new transport error.
func NewTransportError(operation, message string) *Error {
	return &Error{
		Type:      ErrTypeTransport,
		Message:   message,
		Operation: operation,
	}
}

// NewGraphQLError creates a new error for a response-level GraphQL error payload.
func NewGraphQLError(operation, message string) *Error {
	return &Error{
		Type:       ErrTypeGraphQL,
		Message:    message,
		StatusCode: 200,
		Operation:  operation,
	}
}

// NewMalformedResponseError creates a new error for a well-formed response
// missing a field the operation's schema requires.
func NewMalformedResponseError(operation, message string) *Error {
	return &Error{
		Type:       ErrTypeMalformedResponse,
		Message:    message,
		StatusCode: 200,
		Operation:  operation,
	}
}
