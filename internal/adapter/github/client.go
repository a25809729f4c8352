package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
)

const (
	defaultEndpoint = "https://api.github.com/graphql"
	defaultTimeout  = 30 * time.Second
)

// Client is an HTTP client for the GitHub GraphQL API.
type Client struct {
	token      string
	endpoint   string
	httpClient *http.Client
	logger     apihttp.Logger
}

// NewClient creates a new GitHub GraphQL client with the given token.
// The token should be a GitHub personal access token or GITHUB_TOKEN from Actions.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetEndpoint sets a custom GraphQL endpoint URL (for testing and GHES).
func (c *Client) SetEndpoint(url string) {
	c.endpoint = strings.TrimRight(url, "/")
}

// SetTimeout sets the HTTP timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// SetLogger wires a structured logger for request/response/error events.
func (c *Client) SetLogger(logger apihttp.Logger) {
	c.logger = logger
}

// do executes one GraphQL operation and decodes the data payload into out.
// Any error array in the response, even on an HTTP 200, is a failure. There
// is no retry: a single non-2xx or GraphQL-error response is terminal.
func (c *Client) do(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return apihttp.NewTransportError(operation, fmt.Sprintf("marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return apihttp.NewTransportError(operation, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	if c.logger != nil {
		c.logger.LogRequest(ctx, apihttp.RequestLog{
			Operation: operation,
			Timestamp: start,
			Token:     c.token,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := apihttp.NewTransportError(operation, err.Error())
		c.logError(ctx, transportErr, start)
		return transportErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			httpErr := &apihttp.Error{
				Type:       apihttp.ErrTypeTransport,
				Message:    fmt.Sprintf("HTTP %d (failed to read response: %v)", resp.StatusCode, readErr),
				StatusCode: resp.StatusCode,
				Operation:  operation,
			}
			c.logError(ctx, httpErr, start)
			return httpErr
		}
		httpErr := MapHTTPError(operation, resp.StatusCode, respBody)
		c.logError(ctx, httpErr, start)
		return httpErr
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		decodeErr := apihttp.NewMalformedResponseError(operation, fmt.Sprintf("decode response: %v", err))
		c.logError(ctx, decodeErr, start)
		return decodeErr
	}

	if len(envelope.Errors) > 0 {
		gqlErr := MapGraphQLErrors(operation, envelope.Errors)
		c.logError(ctx, gqlErr, start)
		return gqlErr
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			decodeErr := apihttp.NewMalformedResponseError(operation, fmt.Sprintf("decode data payload: %v", err))
			c.logError(ctx, decodeErr, start)
			return decodeErr
		}
	}

	if c.logger != nil {
		c.logger.LogResponse(ctx, apihttp.ResponseLog{
			Operation:  operation,
			Timestamp:  time.Now(),
			Duration:   time.Since(start),
			StatusCode: resp.StatusCode,
		})
	}

	return nil
}

func (c *Client) logError(ctx context.Context, err *apihttp.Error, start time.Time) {
	if c.logger == nil {
		return
	}
	c.logger.LogError(ctx, apihttp.ErrorLog{
		Operation:  err.Operation,
		Timestamp:  time.Now(),
		Duration:   time.Since(start),
		Error:      err,
		ErrorType:  err.Type,
		StatusCode: err.StatusCode,
	})
}
