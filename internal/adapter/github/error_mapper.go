package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
)

// MapHTTPError maps GitHub API HTTP status codes to typed apihttp.Error.
// Credential rejections become authentication errors; everything else at the
// HTTP layer is a transport failure.
func MapHTTPError(operation string, statusCode int, body []byte) *apihttp.Error {
	message := parseErrorMessage(statusCode, body)

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &apihttp.Error{
			Type:       apihttp.ErrTypeAuthentication,
			Message:    message,
			StatusCode: statusCode,
			Operation:  operation,
		}

	case http.StatusNotFound:
		return &apihttp.Error{
			Type:       apihttp.ErrTypeNotFound,
			Message:    message,
			StatusCode: statusCode,
			Operation:  operation,
		}

	default:
		return &apihttp.Error{
			Type:       apihttp.ErrTypeTransport,
			Message:    message,
			StatusCode: statusCode,
			Operation:  operation,
		}
	}
}

// MapGraphQLErrors maps a response-level GraphQL error array to a typed error.
// GitHub reports missing repositories and bad credentials through this array
// on an HTTP 200, so NOT_FOUND and FORBIDDEN entries keep their taxonomy kind.
func MapGraphQLErrors(operation string, errs []GraphQLError) *apihttp.Error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	message := strings.Join(messages, "; ")

	for _, e := range errs {
		switch e.Type {
		case "NOT_FOUND":
			return apihttp.NewNotFoundError(operation, message)
		case "FORBIDDEN", "INSUFFICIENT_SCOPES":
			return apihttp.NewAuthenticationError(operation, message)
		}
	}

	return apihttp.NewGraphQLError(operation, message)
}

// parseErrorMessage extracts a user-friendly error message from GitHub's response.
func parseErrorMessage(statusCode int, body []byte) string {
	var errResp apiErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		// Include body preview for debugging non-JSON responses
		bodyPreview := string(body)
		if len(bodyPreview) > 100 {
			bodyPreview = bodyPreview[:100] + "..."
		}
		if bodyPreview == "" {
			return fmt.Sprintf("HTTP %d", statusCode)
		}
		return fmt.Sprintf("HTTP %d: %s", statusCode, bodyPreview)
	}

	if errResp.Message == "" {
		return fmt.Sprintf("HTTP %d", statusCode)
	}

	return errResp.Message
}
