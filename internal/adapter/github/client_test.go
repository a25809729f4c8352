package github_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
	"github.com/kmorrow/issuesheet/internal/adapter/github"
)

// graphQLEnvelope mirrors the request body every operation posts.
type graphQLEnvelope struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *github.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient("test-token")
	client.SetEndpoint(server.URL)
	return client
}

func respondData(t *testing.T, w http.ResponseWriter, data string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(`{"data":` + data + `}`))
	require.NoError(t, err)
}

func TestNewClient(t *testing.T) {
	client := github.NewClient("test-token")

	require.NotNil(t, client)
}

func TestClient_SendsBearerTokenAndJSONBody(t *testing.T) {
	var received graphQLEnvelope
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		respondData(t, w, `{"repository":{"id":"R_1"}}`)
	})

	id, err := client.ResolveRepositoryID(context.Background(), "acme", "widgets")
	require.NoError(t, err)
	assert.Equal(t, "R_1", id)
	assert.Contains(t, received.Query, "repository(owner: $owner, name: $name)")
	assert.Equal(t, "acme", received.Variables["owner"])
	assert.Equal(t, "widgets", received.Variables["name"])
}

func TestSetEndpoint_TrimsTrailingSlashes(t *testing.T) {
	testCases := []struct {
		name   string
		suffix string
	}{
		{"single slash", "/"},
		{"double slash", "//"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotContains(t, r.URL.Path, "//", "URL should not contain double slashes")
				respondData(t, w, `{"repository":{"id":"R_1"}}`)
			}))
			defer server.Close()

			client := github.NewClient("test-token")
			client.SetEndpoint(server.URL + tc.suffix)

			_, err := client.ResolveRepositoryID(context.Background(), "acme", "widgets")
			require.NoError(t, err)
		})
	}
}

func TestClient_Unauthorized_MapsToAuthenticationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	})

	_, err := client.ResolveRepositoryID(context.Background(), "acme", "widgets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeAuthentication}))
	assert.Contains(t, err.Error(), "Bad credentials")
}

func TestClient_ServerError_MapsToTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateIssue(context.Background(), "R_1", "title", "body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeTransport}))
}

func TestClient_ConnectionFailure_MapsToTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := github.NewClient("test-token")
	client.SetEndpoint(server.URL)
	server.Close()

	_, err := client.ResolveRepositoryID(context.Background(), "acme", "widgets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeTransport}))
}

func TestClient_ErrorArrayOn200_MapsToGraphQLError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"Something went wrong"}]}`))
	})

	_, err := client.CreateIssue(context.Background(), "R_1", "title", "body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeGraphQL}))
	assert.Contains(t, err.Error(), "Something went wrong")
}

func TestClient_NotFoundErrorEntry_KeepsNotFoundKind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"repository":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a Repository"}]}`))
	})

	_, err := client.ResolveRepositoryID(context.Background(), "acme", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeNotFound}))
}

func TestClient_NonJSONResponse_MapsToMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})

	_, err := client.ResolveRepositoryID(context.Background(), "acme", "widgets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &apihttp.Error{Type: apihttp.ErrTypeMalformedResponse}))
}
