package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
	"github.com/kmorrow/issuesheet/internal/adapter/github"
)

func TestMapHTTPError_StatusCodes(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		expected   apihttp.ErrorType
	}{
		{"unauthorized", 401, apihttp.ErrTypeAuthentication},
		{"forbidden", 403, apihttp.ErrTypeAuthentication},
		{"not found", 404, apihttp.ErrTypeNotFound},
		{"unprocessable", 422, apihttp.ErrTypeTransport},
		{"server error", 500, apihttp.ErrTypeTransport},
		{"bad gateway", 502, apihttp.ErrTypeTransport},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := github.MapHTTPError("op", tc.statusCode, []byte(`{"message":"boom"}`))

			assert.Equal(t, tc.expected, err.Type)
			assert.Equal(t, tc.statusCode, err.StatusCode)
			assert.Equal(t, "boom", err.Message)
			assert.Equal(t, "op", err.Operation)
		})
	}
}

func TestMapHTTPError_NonJSONBody_IncludesPreview(t *testing.T) {
	err := github.MapHTTPError("op", 502, []byte("<html>bad gateway</html>"))

	assert.Contains(t, err.Message, "HTTP 502")
	assert.Contains(t, err.Message, "<html>bad gateway</html>")
}

func TestMapHTTPError_EmptyBody(t *testing.T) {
	err := github.MapHTTPError("op", 503, nil)

	assert.Equal(t, "HTTP 503", err.Message)
}

func TestMapGraphQLErrors_JoinsMessages(t *testing.T) {
	err := github.MapGraphQLErrors("op", []github.GraphQLError{
		{Message: "first"},
		{Message: "second"},
	})

	assert.Equal(t, apihttp.ErrTypeGraphQL, err.Type)
	assert.Equal(t, "first; second", err.Message)
}

func TestMapGraphQLErrors_NotFoundEntry(t *testing.T) {
	err := github.MapGraphQLErrors("op", []github.GraphQLError{
		{Type: "NOT_FOUND", Message: "Could not resolve to a Repository"},
	})

	assert.Equal(t, apihttp.ErrTypeNotFound, err.Type)
}

func TestMapGraphQLErrors_InsufficientScopes(t *testing.T) {
	err := github.MapGraphQLErrors("op", []github.GraphQLError{
		{Type: "INSUFFICIENT_SCOPES", Message: "token needs project scope"},
	})

	assert.Equal(t, apihttp.ErrTypeAuthentication, err.Type)
}
